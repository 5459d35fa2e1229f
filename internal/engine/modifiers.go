package engine

// TransformKind records which transform stage last committed, used to
// detect a same-key repeat for double-key revert.
type TransformKind uint8

const (
	XNone TransformKind = iota
	XStroke
	XTone
	XCircumflex
	XHorn
	XBreve
	XMarkRemoval
	XWAsVowel
	XLiteral
	XShortcut
)

// applyStroke handles dd (Telex) / d9 (VNI): the most recent character
// must be a bare consonant 'd' with no stroke yet. A repeat of the same
// trigger reverts it; the revert un-consumes the original trigger's raw
// record so restore-to-raw reproduces the literal keystrokes typed.
func (e *Engine) applyStroke(caps, shift bool, rawKey KeyCode) bool {
	last, idx, ok := e.buf.LastChar()
	if !ok || last.Base != 'd' {
		return false
	}
	if last.Stroke {
		if e.cfg.EnableDoubleKeyRevert && e.lastTransform == XStroke {
			last.Stroke = false
			e.buf.ReplaceAt(idx, last)
			e.buf.UnmarkConsumed(e.lastTriggerRawIdx)
			e.hadRevert = true
			e.hasStroke = false
			e.lastTransform = XNone
			e.pushTrigger(rawKey, caps, shift)
			return true
		}
		return false
	}
	last.Stroke = true
	e.buf.ReplaceAt(idx, last)
	e.hasStroke = true
	e.hadTransform = true
	e.lastTransform = XStroke
	e.lastTriggerRawIdx = e.pushTrigger(rawKey, caps, shift)
	return true
}

// applyTone handles a tone keystroke: places tone at the rule-computed
// nucleus position, or reverts if the same tone was just applied.
func (e *Engine) applyTone(tone ToneMark, caps, shift bool, rawKey KeyCode) bool {
	transformed := e.buf.Transformed()
	if len(transformed) == 0 {
		return false
	}
	s := ParseSyllable(transformed)
	nucleus := s.Nucleus(transformed)
	if len(nucleus) == 0 {
		return false
	}

	if e.lastTransform == XTone && e.lastToneValue == tone {
		e.clearTone(transformed)
		e.buf.UnmarkConsumed(e.lastTriggerRawIdx)
		e.hadRevert = true
		e.hasTone = false
		e.lastTransform = XNone
		e.pushTrigger(rawKey, caps, shift)
		return true
	}

	// An open glide+vowel nucleus (oa, oe, uy, ...) is placed as one
	// unit, so the configured ToneRule can choose between its two vowels.
	start, placed := s.GlideEnd, nucleus
	if s.GlideEnd > s.OnsetEnd && !s.HasCoda() {
		start, placed = s.OnsetEnd, transformed[s.OnsetEnd:s.NucleusEnd]
	}
	target := start + toneTargetIndex(placed, s.HasCoda(), e.cfg.ToneRule)
	c, ok := e.buf.CharAt(target)
	if !ok {
		return false
	}
	c.Tone = tone
	e.buf.ReplaceAt(target, c)
	e.hasTone = true
	e.hadTransform = true
	e.lastTransform = XTone
	e.lastToneValue = tone
	e.lastTriggerRawIdx = e.pushTrigger(rawKey, caps, shift)
	return true
}

func (e *Engine) clearTone(transformed []CharRecord) {
	for i, c := range transformed {
		if c.Tone != ToneNone {
			c.Tone = ToneNone
			e.buf.ReplaceAt(i, c)
			return
		}
	}
}

// isCircumflexable and isHornable name the two base-letter sets a mark
// keystroke can ever land on.
func isCircumflexable(r rune) bool { return r == 'a' || r == 'e' || r == 'o' }
func isHornable(r rune) bool       { return r == 'o' || r == 'u' }

// findMarkTarget scans buf[from:to] right to left for the nearest letter
// that can carry mark: either still unmarked (an apply target) or
// already carrying mark (a revert target). A letter carrying some other
// mark is skipped, not treated as blocking the search.
func findMarkTarget(buf []CharRecord, from, to int, isCandidate func(rune) bool, mark MarkKind) (int, bool) {
	for i := to - 1; i >= from; i-- {
		if !isCandidate(buf[i].Base) {
			continue
		}
		if buf[i].Mark != MarkNone && buf[i].Mark != mark {
			continue
		}
		return i, true
	}
	return -1, false
}

// toggleMark applies mark to the character at idx, or reverts it if the
// same mark is already there and the previous transform was the same
// kind (double-key revert). Shared by Telex's doubled-letter triggers
// and VNI's digit triggers, which differ only in how they pick idx.
func (e *Engine) toggleMark(idx int, mark MarkKind, kind TransformKind, caps, shift bool, rawKey KeyCode) bool {
	c, ok := e.buf.CharAt(idx)
	if !ok {
		return false
	}
	if c.Mark != MarkNone && c.Mark != mark {
		return false
	}
	if c.Mark == mark {
		if e.cfg.EnableDoubleKeyRevert && e.lastTransform == kind {
			c.Mark = MarkNone
			e.buf.ReplaceAt(idx, c)
			e.buf.UnmarkConsumed(e.lastTriggerRawIdx)
			e.hadRevert = true
			e.hasMark = e.buf.AnyMarkOrStroke()
			e.lastTransform = XNone
			e.pushTrigger(rawKey, caps, shift)
			return true
		}
		return false
	}
	c.Mark = mark
	e.buf.ReplaceAt(idx, c)
	e.hasMark = true
	e.hadTransform = true
	e.lastTransform = kind
	e.lastTriggerRawIdx = e.pushTrigger(rawKey, caps, shift)
	return true
}

// applyCircumflex handles aa/ee/oo (Telex): the previous letter must be
// the matching bare vowel, since the doubled-letter trigger is always
// adjacent to it.
func (e *Engine) applyCircumflex(vowel rune, caps, shift bool, rawKey KeyCode) bool {
	last, idx, ok := e.buf.LastChar()
	if !ok || last.Base != vowel {
		return false
	}
	return e.toggleMark(idx, MarkCircumflex, XCircumflex, caps, shift, rawKey)
}

// hornCompoundTarget finds an adjacent u,o pair within buf[from:to] that
// is either both unmarked (an apply target) or both already horned (a
// revert target): the uo/ươ nucleus takes a single horn keystroke for
// both vowels at once, wherever in the word that keystroke arrives.
func hornCompoundTarget(buf []CharRecord, from, to int) (int, int, bool) {
	for i := to - 2; i >= from; i-- {
		u, o := buf[i], buf[i+1]
		if u.Base != 'u' || o.Base != 'o' {
			continue
		}
		if u.Mark == MarkNone && o.Mark == MarkNone {
			return i, i + 1, true
		}
		if u.Mark == MarkHorn && o.Mark == MarkHorn {
			return i, i + 1, true
		}
	}
	return -1, -1, false
}

func (e *Engine) applyHornCompound(i, j int, caps, shift bool, rawKey KeyCode) bool {
	u, _ := e.buf.CharAt(i)
	o, _ := e.buf.CharAt(j)
	if u.Mark == MarkHorn {
		if !e.cfg.EnableDoubleKeyRevert || e.lastTransform != XHorn {
			return false
		}
		u.Mark = MarkNone
		o.Mark = MarkNone
		e.buf.ReplaceAt(i, u)
		e.buf.ReplaceAt(j, o)
		e.buf.UnmarkConsumed(e.lastTriggerRawIdx)
		e.hadRevert = true
		e.hasMark = e.buf.AnyMarkOrStroke()
		e.lastTransform = XNone
		e.pushTrigger(rawKey, caps, shift)
		return true
	}
	u.Mark = MarkHorn
	o.Mark = MarkHorn
	e.buf.ReplaceAt(i, u)
	e.buf.ReplaceAt(j, o)
	e.hasMark = true
	e.hadTransform = true
	e.lastTransform = XHorn
	e.lastTriggerRawIdx = e.pushTrigger(rawKey, caps, shift)
	return true
}

// applyHorn handles ow/uw (Telex) or the 7 digit (VNI), including the
// uo+w compound that horns both vowels at once, and the consonant+w+a
// rule that produces ưa in a 3-character buffer. The horn target is
// found by scanning the parsed nucleus first and, since the nucleus
// table only recognizes already-marked diphthong spellings, falling
// back to the full post-onset buffer: this is what makes the VNI
// digit-after-coda order work (cuong7 -> cương, not cuong7 literal).
func (e *Engine) applyHorn(caps, shift bool, rawKey KeyCode) bool {
	transformed := e.buf.Transformed()
	n := len(transformed)
	if n == 0 {
		return false
	}

	if n == 3 && isConsonantLetter(transformed[0].Base) && transformed[1].Base == 'w' && transformed[2].Base == 'a' {
		e.buf.ReplaceAt(1, CharRecord{Base: 'u', Mark: MarkHorn})
		e.hasMark = true
		e.hadTransform = true
		e.lastTransform = XHorn
		e.lastTriggerRawIdx = e.pushTrigger(rawKey, caps, shift)
		return true
	}

	s := ParseSyllable(transformed)

	if i, j, ok := hornCompoundTarget(transformed, s.GlideEnd, s.NucleusEnd); ok {
		return e.applyHornCompound(i, j, caps, shift, rawKey)
	}
	if i, j, ok := hornCompoundTarget(transformed, s.GlideEnd, n); ok {
		return e.applyHornCompound(i, j, caps, shift, rawKey)
	}

	if idx, ok := findMarkTarget(transformed, s.GlideEnd, s.NucleusEnd, isHornable, MarkHorn); ok {
		return e.toggleMark(idx, MarkHorn, XHorn, caps, shift, rawKey)
	}
	if idx, ok := findMarkTarget(transformed, s.GlideEnd, n, isHornable, MarkHorn); ok {
		return e.toggleMark(idx, MarkHorn, XHorn, caps, shift, rawKey)
	}
	return false
}

// applyBreve handles aw (Telex) / a8 (VNI). The breve never commits
// immediately: 'a' followed by the trigger leaves "aw" visible and
// arms pendingBreve, resolved by the next consonant or tone key, or
// abandoned if the word ends there.
func (e *Engine) applyBreve(caps, shift bool, rawKey KeyCode) bool {
	last, idx, ok := e.buf.LastChar()
	if !ok || last.Base != 'a' || last.Mark != MarkNone {
		return false
	}
	if e.pendingBreve && e.pendingBrevePos == idx {
		return false
	}
	e.pendingBreve = true
	e.pendingBrevePos = idx
	if err := e.buf.PushLiteral(rawKey, caps, shift, CharRecord{Base: 'w', Caps: caps || shift}); err != nil {
		return false
	}
	e.lastTransform = XBreve
	return true
}

// resolveBreve collapses a pending "aw" into ă, called just before a
// consonant or tone keystroke is processed.
func (e *Engine) resolveBreve() {
	if !e.pendingBreve {
		return
	}
	pos := e.pendingBrevePos
	e.pendingBreve = false
	e.pendingBrevePos = -1
	c, ok := e.buf.CharAt(pos)
	if !ok {
		return
	}
	c.Mark = MarkBreve
	e.buf.ReplaceAt(pos, c)
	e.buf.Pop() // remove the literal 'w' that followed
	e.hasMark = true
	e.hadTransform = true
}

// applyMarkRemoval handles z (Telex) / 0 (VNI): clears the most recent
// tone, else mark, else stroke on the last character. This is itself a
// revert of an earlier stage, but it never un-consumes that stage's
// trigger: the mark-removal key is an explicit, distinct keystroke the
// user chose to type, not a repeat of the original modifier.
func (e *Engine) applyMarkRemoval(caps, shift bool, rawKey KeyCode) bool {
	last, idx, ok := e.buf.LastChar()
	if !ok {
		return false
	}
	switch {
	case last.Tone != ToneNone:
		last.Tone = ToneNone
	case last.Mark != MarkNone:
		last.Mark = MarkNone
	case last.Stroke:
		last.Stroke = false
	default:
		return false
	}
	e.buf.ReplaceAt(idx, last)
	e.hadRevert = true
	e.lastTransform = XMarkRemoval
	e.pushTrigger(rawKey, caps, shift)
	return true
}

// pushTrigger records a modifier keystroke as a consumed raw record and
// returns its raw-track index.
func (e *Engine) pushTrigger(key KeyCode, caps, shift bool) int {
	idx, _ := e.buf.PushModifierTrigger(key, caps, shift)
	return idx
}
