package engine

import "unicode"

// keyBase maps a letter keycode to its lowercase ASCII rune.
var keyBase = [...]rune{
	KeyA: 'a', KeyB: 'b', KeyC: 'c', KeyD: 'd', KeyE: 'e', KeyF: 'f',
	KeyG: 'g', KeyH: 'h', KeyI: 'i', KeyJ: 'j', KeyK: 'k', KeyL: 'l',
	KeyM: 'm', KeyN: 'n', KeyO: 'o', KeyP: 'p', KeyQ: 'q', KeyR: 'r',
	KeyS: 's', KeyT: 't', KeyU: 'u', KeyV: 'v', KeyW: 'w', KeyX: 'x',
	KeyY: 'y', KeyZ: 'z',
}

var keyDigit = [...]rune{
	Key0: '0', Key1: '1', Key2: '2', Key3: '3', Key4: '4',
	Key5: '5', Key6: '6', Key7: '7', Key8: '8', Key9: '9',
}

// isLetterKey reports whether key is one of A-Z.
func isLetterKey(key KeyCode) bool {
	return key <= KeyZ
}

// isDigitKey reports whether key is one of 0-9.
func isDigitKey(key KeyCode) bool {
	return key >= Key0 && key <= Key9
}

// baseLetter returns the lowercase ASCII letter for a letter keycode, or
// 0 if key is not a letter.
func baseLetter(key KeyCode) rune {
	if !isLetterKey(key) {
		return 0
	}
	return keyBase[key]
}

// baseDigit returns the ASCII digit for a digit keycode, or 0 if key is
// not a digit.
func baseDigit(key KeyCode) rune {
	if !isDigitKey(key) {
		return 0
	}
	return keyDigit[key]
}

// terminators are the keys that commit the current word per spec.md §6:
// space, tab, newline, and the listed punctuation. Punctuation arrives
// as its own keycode space in real shells; this core treats any of the
// ASCII punctuation runes below, delivered via PunctKey, as a terminator
// in addition to the three named control keys.
var terminatorPunct = map[rune]bool{
	'.': true, ',': true, ';': true, ':': true, '!': true, '?': true,
	'\'': true, '"': true, '(': true, ')': true, '[': true, ']': true,
	'{': true, '}': true, '/': true, '\\': true, '-': true, '+': true,
	'=': true, '@': true, '#': true, '$': true, '%': true, '^': true,
	'&': true, '*': true, '<': true, '>': true,
}

// sentenceEnders arms auto-capitalize for the next letter.
var sentenceEnders = map[rune]bool{'.': true, '!': true, '?': true}

// isTerminatorKey reports whether key is Space, Return, or Tab.
func isTerminatorKey(key KeyCode) bool {
	return key == KeySpace || key == KeyReturn || key == KeyTab
}

// renderRawKey renders a raw keystroke back to the character the user
// actually typed, honouring caps/shift. VNI modifier keys are digits and
// always render literally; Telex modifier keys are letters and do the
// same once unconsumed.
func renderRawKey(rec RawRecord) rune {
	var r rune
	if isLetterKey(rec.Key) {
		r = baseLetter(rec.Key)
		if rec.Caps || rec.Shift {
			r = unicode.ToUpper(r)
		}
		return r
	}
	if isDigitKey(rec.Key) {
		return baseDigit(rec.Key)
	}
	return 0
}
