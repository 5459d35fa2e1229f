package engine

// vniToneKeys maps a VNI tone digit to the tone it places.
var vniToneKeys = map[rune]ToneMark{
	'1': ToneSac, '2': ToneHuyen, '3': ToneHoi, '4': ToneNga, '5': ToneNang,
}

// handleVNIDigit dispatches a digit keystroke under the VNI convention.
// A digit that no stage claims (no preceding vowel, no preceding 'd')
// falls through to a literal append as a plain digit character.
func (e *Engine) handleVNIDigit(key KeyCode, caps, shift bool) {
	d := baseDigit(key)

	if e.pendingBreve && d != '0' {
		e.resolveBreve()
	}

	switch d {
	case '1', '2', '3', '4', '5':
		if e.applyTone(vniToneKeys[d], caps, shift, key) {
			return
		}
	case '6':
		if e.applyVNICircumflex(caps, shift, key) {
			return
		}
	case '7':
		if e.applyHorn(caps, shift, key) {
			return
		}
	case '8':
		if e.applyBreve(caps, shift, key) {
			return
		}
	case '9':
		if e.applyStroke(caps, shift, key) {
			return
		}
	case '0':
		if e.applyMarkRemoval(caps, shift, key) {
			return
		}
	}

	e.appendLiteralDigit(key, d, caps, shift)
}

// applyVNICircumflex dispatches digit-6 to the nearest a/e/o in the
// word. Unlike Telex's doubled-letter trigger, the VNI digit commonly
// arrives after the coda (viet6 -> viêt), so it cannot assume the
// target is the last character: it scans the parsed nucleus first and
// falls back to the full post-onset buffer, the same two-step search
// applyHorn uses for digit-7.
func (e *Engine) applyVNICircumflex(caps, shift bool, key KeyCode) bool {
	transformed := e.buf.Transformed()
	if len(transformed) == 0 {
		return false
	}
	s := ParseSyllable(transformed)
	idx, ok := findMarkTarget(transformed, s.GlideEnd, s.NucleusEnd, isCircumflexable, MarkCircumflex)
	if !ok {
		idx, ok = findMarkTarget(transformed, s.GlideEnd, len(transformed), isCircumflexable, MarkCircumflex)
	}
	if !ok {
		return false
	}
	return e.toggleMark(idx, MarkCircumflex, XCircumflex, caps, shift, key)
}

// handleVNILetter dispatches a plain letter keystroke under VNI: every
// letter is literal, since VNI's modifiers are all digits; a consonant
// first resolves a pending breve. The stroke đ is produced by d9,
// handled in the digit path above.
func (e *Engine) handleVNILetter(key KeyCode, caps, shift bool) {
	letter := baseLetter(key)
	if e.pendingBreve && isConsonantLetter(letter) {
		e.resolveBreve()
	}
	e.appendLiteral(key, letter, caps, shift)
}
