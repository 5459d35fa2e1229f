package engine

// telexToneKeys maps a Telex tone-trigger letter to the tone it places.
var telexToneKeys = map[rune]ToneMark{
	's': ToneSac, 'f': ToneHuyen, 'r': ToneHoi, 'x': ToneNga, 'j': ToneNang,
}

// telexCircumflexVowels are the three vowels that double into a
// circumflex (aa, ee, oo).
var telexCircumflexVowels = map[rune]bool{'a': true, 'e': true, 'o': true}

// handleTelexLetter dispatches one letter keystroke under the Telex
// convention, in transform-stage order, falling through to a literal
// append when no stage claims the key.
func (e *Engine) handleTelexLetter(key KeyCode, caps, shift bool) {
	letter := baseLetter(key)

	if e.pendingBreve && (isConsonantLetter(letter) || telexToneKeys[letter] != 0) {
		e.resolveBreve()
	}

	if letter == 'd' {
		if e.applyStroke(caps, shift, key) {
			return
		}
	}

	if tone, ok := telexToneKeys[letter]; ok {
		if e.applyTone(tone, caps, shift, key) {
			return
		}
	}

	if telexCircumflexVowels[letter] {
		if e.applyCircumflex(letter, caps, shift, key) {
			return
		}
	}

	if letter == 'w' {
		if e.handleTelexW(caps, shift, key) {
			return
		}
	}

	if letter == 'z' {
		if e.applyMarkRemoval(caps, shift, key) {
			return
		}
	}

	e.appendLiteral(key, letter, caps, shift)
}

// handleTelexW resolves the 'w' key's roles: horn trigger, breve
// trigger, or (word-initial, no vowel yet) the w→ư convenience
// shortcut — unless skip_w_shortcut demotes it to a literal 'w'.
// Double-w reverts a just-applied horn.
func (e *Engine) handleTelexW(caps, shift bool, key KeyCode) bool {
	transformed := e.buf.Transformed()
	if len(transformed) == 0 {
		if !e.cfg.EnableWAsVowel {
			return false
		}
		if e.cfg.SkipWShortcut {
			e.appendLiteral(key, 'w', caps, shift)
			return true
		}
		if err := e.buf.PushLiteral(key, caps, shift, CharRecord{Base: 'u', Caps: caps || shift, Mark: MarkHorn}); err != nil {
			return false
		}
		e.hasMark = true
		e.hadTransform = true
		e.lastTransform = XWAsVowel
		return true
	}

	last := transformed[len(transformed)-1]
	if last.Base == 'a' {
		return e.applyBreve(caps, shift, key)
	}
	if last.Base == 'o' || last.Base == 'u' {
		return e.applyHorn(caps, shift, key)
	}
	if len(transformed) >= 2 && transformed[len(transformed)-2].Base == 'u' && last.Base == 'o' {
		return e.applyHorn(caps, shift, key)
	}
	return e.applyHorn(caps, shift, key)
}
