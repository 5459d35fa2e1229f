// Package engine provides the core Vietnamese input method engine: a
// stateless-per-word transformer from Latin keystrokes to Vietnamese
// Unicode glyphs, committing edits to the host text field via
// backspace+insert primitives.
package engine

// KeyCode identifies a physical key in the macOS keycode space. Platform
// shells that natively use another keycode space (Windows VK, X11 keysym)
// are responsible for mapping into this one before calling Engine.OnKey;
// that mapping table is a shell concern, not the core's.
type KeyCode uint16

// Letter keycodes, A-Z, contiguous and alphabetical.
const (
	KeyA KeyCode = iota
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
)

// Special keycodes, named explicitly by the host contract.
const (
	KeyReturn       KeyCode = 0x24
	KeyBackspace    KeyCode = 0x33
	KeyEscape       KeyCode = 0x35
	KeySpace        KeyCode = 0x31
	KeyBracketRight KeyCode = 0x1E // ']'
	KeyBracketLeft  KeyCode = 0x21 // '['
	KeyTab          KeyCode = 0x30
)

// Digit keycodes 0-9. Placed at 0x3A-0x43: clear of the letter range and
// of every explicitly named special key (brackets land at 0x1E/0x21).
const (
	Key0 KeyCode = 0x3A + iota
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
)

// punctMarker flags a KeyCode as carrying a literal punctuation rune
// rather than a macOS keycode, letting OnKey stay the engine's single
// entry point even though the host's punctuation keys have no fixed
// place in the macOS keycode space. Well clear of both the letter/
// digit ranges and the named special keys.
const punctMarker KeyCode = 0x4000

// PunctKey wraps a punctuation rune (terminator or bracket-shortcut
// character) as a KeyCode for OnKey.
func PunctKey(r rune) KeyCode { return punctMarker | KeyCode(r) }

func isPunctKey(k KeyCode) bool { return k&punctMarker != 0 }

func punctRune(k KeyCode) rune { return rune(k &^ punctMarker) }

// ToneMark is one of Vietnamese's six pitch contours (five writable).
type ToneMark uint8

const (
	ToneNone ToneMark = iota
	ToneSac           // sắc (á)
	ToneHuyen         // huyền (à)
	ToneHoi           // hỏi (ả)
	ToneNga           // ngã (ã)
	ToneNang          // nặng (ạ)
)

// MarkKind is a vowel-modifying diacritic, distinct from tone.
type MarkKind uint8

const (
	MarkNone MarkKind = iota
	MarkCircumflex
	MarkHorn
	MarkBreve
)

// CharRecord is a single slot in the transformed buffer: written once,
// mutated only through DualBuffer.ReplaceAt.
type CharRecord struct {
	Base   rune // lowercase base letter: a vowel or a consonant
	Caps   bool
	Tone   ToneMark
	Mark   MarkKind
	Stroke bool // đ
}

// RawRecord is a single physical keystroke in the raw log.
type RawRecord struct {
	Key      KeyCode
	Caps     bool
	Shift    bool
	Consumed bool // served as a modifier trigger; restore skips it
}

// Method selects the typing convention.
type Method uint8

const (
	Telex Method = iota
	VNI
)

// Action describes what the host must do with a Result.
type Action uint8

const (
	ActionNone    Action = iota // no visible change
	ActionSend                  // backspace N, then insert chars[:count]
	ActionRestore               // same shape, represents an ESC-style undo
)

// maxResultChars bounds the per-keystroke output, matching the spec's
// fixed-size Result value type.
const maxResultChars = 32

// Result is the fixed-size value returned from every OnKey call.
type Result struct {
	Action    Action
	Backspace uint8
	Count     uint8
	Chars     [maxResultChars]rune
}

func noneResult() Result {
	return Result{Action: ActionNone}
}

func sendResult(action Action, backspace int, chars []rune) Result {
	r := Result{Action: action}
	if backspace > 255 {
		backspace = 255
	}
	r.Backspace = uint8(backspace)
	n := len(chars)
	if n > maxResultChars {
		n = maxResultChars
	}
	copy(r.Chars[:], chars[:n])
	r.Count = uint8(n)
	return r
}
