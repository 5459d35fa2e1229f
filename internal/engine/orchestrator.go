package engine

// Engine is the per-session IME core: one DualBuffer, one set of
// per-word flags, reset at every terminator. Created once per process;
// OnKey is its single entry point.
type Engine struct {
	buf  DualBuffer
	cfg  *EngineConfig
	hist wordHistory
	dict Dictionary

	hadTransform  bool
	hasStroke     bool
	hasTone       bool
	hasMark       bool
	hadRevert     bool
	pendingBreve  bool
	pendingBrevePos int
	vnState       Verdict
	lastTransform TransformKind
	lastToneValue ToneMark
	lastTriggerRawIdx int

	capsArmed  bool // auto-capitalize: next literal letter forced to caps
	prevRender []rune
}

// NewEngine creates an engine with the given configuration. A nil cfg
// uses DefaultConfig.
func NewEngine(cfg *EngineConfig) *Engine {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Engine{cfg: cfg, pendingBrevePos: -1, lastTriggerRawIdx: -1}
}

// SetDictionary wires an optional static wordlist into the Restore
// Policy's Impossible branch.
func (e *Engine) SetDictionary(d Dictionary) { e.dict = d }

// Config returns the live EngineConfig, so a host can flip feature
// flags between keystrokes.
func (e *Engine) Config() *EngineConfig { return e.cfg }

// Reset discards the current word and its state flags without
// treating it as a commit: no history push, no shortcut expansion.
func (e *Engine) Reset() { e.resetWord() }

// OnKey is the engine's single entry point: classify, dispatch,
// re-validate, diff against the previous emission.
func (e *Engine) OnKey(key KeyCode, caps, ctrl, shift bool) Result {
	if ctrl || !e.cfg.Enabled {
		return noneResult()
	}

	if key == KeyEscape {
		return e.handleEscape()
	}

	if isPunctKey(key) {
		r := punctRune(key)
		if e.cfg.BracketShortcut {
			if res, handled := e.handleBracketShortcut(r, caps, shift); handled {
				return res
			}
		}
		if terminatorPunct[r] {
			return e.handleTerminator(r)
		}
		return noneResult()
	}

	if isTerminatorKey(key) {
		var r rune
		switch key {
		case KeySpace:
			r = ' '
		case KeyReturn:
			r = '\n'
		case KeyTab:
			r = '\t'
		}
		return e.handleTerminator(r)
	}

	if key == KeyBackspace {
		return e.handleDelete()
	}

	switch {
	case isLetterKey(key):
		if e.cfg.InputMethod == VNI {
			e.handleVNILetter(key, caps, shift)
		} else {
			e.handleTelexLetter(key, caps, shift)
		}
	case isDigitKey(key):
		if e.cfg.InputMethod == VNI {
			e.handleVNIDigit(key, caps, shift)
		} else {
			e.appendLiteralDigit(key, baseDigit(key), caps, shift)
		}
	default:
		return noneResult()
	}

	e.revalidate()
	return e.diffResult()
}

// revalidate runs the Validator over the live transformed buffer, unless
// enable_validation is off, in which case vn_state stays Unknown and the
// Restore Policy falls back to its non-structural signals (stroke,
// pending breve, raw/transformed length gap, revert history).
func (e *Engine) revalidate() {
	if !e.cfg.EnableValidation {
		e.vnState = VerdictUnknown
		return
	}
	e.vnState = Validate(e.buf.Transformed())
}

// appendLiteral appends one plain letter to both tracks, honouring a
// pending auto-capitalize arm.
func (e *Engine) appendLiteral(key KeyCode, letter rune, caps, shift bool) {
	if letter == 0 {
		return
	}
	forcedCaps := caps
	if e.capsArmed && e.buf.TransformedLen() == 0 {
		forcedCaps = true
		shift = true
	}
	e.capsArmed = false
	_ = e.buf.PushLiteral(key, caps, shift, CharRecord{Base: letter, Caps: forcedCaps || shift})
}

func (e *Engine) appendLiteralDigit(key KeyCode, digit rune, caps, shift bool) {
	if digit == 0 {
		return
	}
	_ = e.buf.PushLiteral(key, caps, shift, CharRecord{Base: digit})
}

// diffResult compares the current render against the last emitted one
// and produces the minimal backspace+insert Result.
func (e *Engine) diffResult() Result {
	cur := e.buf.Render()
	common := commonPrefixLen(e.prevRender, cur)
	back := len(e.prevRender) - common
	add := cur[common:]
	e.prevRender = append(e.prevRender[:0], cur...)
	if back == 0 && len(add) == 0 {
		return noneResult()
	}
	return sendResult(ActionSend, back, add)
}

func commonPrefixLen(a, b []rune) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

// handleDelete pops one character from both tracks and clears any
// pending-breve reference to the removed position. The host already
// performed the physical backspace, so the core reports None: it only
// needs to keep its own model in sync.
func (e *Engine) handleDelete() Result {
	if e.pendingBreve && e.pendingBrevePos == e.buf.TransformedLen()-1 {
		e.pendingBreve = false
		e.pendingBrevePos = -1
	}
	e.buf.Pop()
	e.prevRender = e.buf.Render()
	e.revalidate()
	return noneResult()
}

// handleTerminator runs the Restore Policy, emits the commit diff for
// the terminator itself, expands any word-boundary shortcut, pushes
// history, and resets state for the next word.
func (e *Engine) handleTerminator(r rune) Result {
	transformed := e.buf.Render()
	raw := e.buf.RestoreRaw()

	st := wordState{
		hadTransform:    e.hadTransform,
		hasStroke:       e.hasStroke,
		hasTone:         e.hasTone,
		hasMark:         e.hasMark,
		hadRevert:       e.hadRevert,
		pendingBreve:    e.pendingBreve,
		vnState:         e.vnState,
		rawLen:          e.buf.RawLen(),
		transformedLen:  e.buf.TransformedLen(),
		rawWord:         string(raw),
		transformedWord: string(transformed),
	}

	english := e.cfg.EnglishAutoRestore && LooksEnglish(e.buf.Raw())
	restore := shouldRestore(st, english, e.dict)

	final := transformed
	if restore {
		final = raw
	} else if exp, ok := e.cfg.expandShortcut(string(raw)); ok {
		final = []rune(exp)
	}

	e.hist.push(transformed, raw)

	common := commonPrefixLen(e.prevRender, final)
	back := len(e.prevRender) - common
	add := make([]rune, 0, len(final)-common+1)
	add = append(add, final[common:]...)
	if r != 0 {
		add = append(add, r)
	}

	if e.cfg.AutoCapitalize && sentenceEnders[r] {
		e.capsArmed = true
	}

	e.resetWord()

	action := ActionSend
	if restore {
		action = ActionRestore
	}
	return sendResult(action, back, add)
}

// handleEscape performs the one-shot "restore last committed word"
// operation from word history, when esc_restore is enabled.
func (e *Engine) handleEscape() Result {
	if !e.cfg.EscRestore {
		return noneResult()
	}
	last, ok := e.hist.last()
	if !ok {
		return noneResult()
	}
	e.hist.popLast()
	n := len(last.transformed)
	return sendResult(ActionRestore, n, last.raw)
}

// handleBracketShortcut maps '[', ']', '{', '}' to ơ/ư/Ơ/Ư literal
// insertions, bypassing the transform stages entirely.
func (e *Engine) handleBracketShortcut(r rune, caps, shift bool) (Result, bool) {
	var rec CharRecord
	switch r {
	case '[':
		rec = CharRecord{Base: 'o', Mark: MarkHorn}
	case ']':
		rec = CharRecord{Base: 'u', Mark: MarkHorn}
	case '{':
		rec = CharRecord{Base: 'o', Mark: MarkHorn, Caps: true}
	case '}':
		rec = CharRecord{Base: 'u', Mark: MarkHorn, Caps: true}
	default:
		return Result{}, false
	}
	key := PunctKey(r)
	if err := e.buf.PushLiteral(key, caps, shift, rec); err != nil {
		return noneResult(), true
	}
	e.hasMark = true
	e.hadTransform = true
	e.revalidate()
	return e.diffResult(), true
}

// resetWord clears DualBuffer and every per-word flag, ready for the
// next word.
func (e *Engine) resetWord() {
	e.buf.Reset()
	e.hadTransform = false
	e.hasStroke = false
	e.hasTone = false
	e.hasMark = false
	e.hadRevert = false
	e.pendingBreve = false
	e.pendingBrevePos = -1
	e.vnState = VerdictUnknown
	e.lastTransform = XNone
	e.lastToneValue = ToneNone
	e.lastTriggerRawIdx = -1
	e.prevRender = nil
}
