package engine

import "testing"

var letterKey = map[rune]KeyCode{
	'a': KeyA, 'b': KeyB, 'c': KeyC, 'd': KeyD, 'e': KeyE, 'f': KeyF,
	'g': KeyG, 'h': KeyH, 'i': KeyI, 'j': KeyJ, 'k': KeyK, 'l': KeyL,
	'm': KeyM, 'n': KeyN, 'o': KeyO, 'p': KeyP, 'q': KeyQ, 'r': KeyR,
	's': KeyS, 't': KeyT, 'u': KeyU, 'v': KeyV, 'w': KeyW, 'x': KeyX,
	'y': KeyY, 'z': KeyZ,
}

var digitKey = map[rune]KeyCode{
	'0': Key0, '1': Key1, '2': Key2, '3': Key3, '4': Key4,
	'5': Key5, '6': Key6, '7': Key7, '8': Key8, '9': Key9,
}

// typeVNIWord feeds a mixed letter/digit VNI sequence through OnKey and
// returns the engine's rendering of the live buffer.
func typeVNIWord(e *Engine, keys string) string {
	for _, r := range keys {
		if k, ok := digitKey[r]; ok {
			e.OnKey(k, false, false, false)
			continue
		}
		e.OnKey(letterKey[r], false, false, false)
	}
	return string(e.buf.Render())
}

// typeWord feeds each letter of keys through OnKey and returns the
// engine's rendering of the live buffer (without committing).
func typeWord(e *Engine, keys string) string {
	for _, r := range keys {
		e.OnKey(letterKey[r], false, false, false)
	}
	return string(e.buf.Render())
}

func TestTelexToneAndCircumflex(t *testing.T) {
	cases := []struct {
		keys string
		want string
	}{
		{"bas", "bá"},
		{"tooi", "tôi"},
		{"vieetj", "việt"},
		{"hoa", "hoa"},
		{"doo", "dô"},
	}
	for _, c := range cases {
		t.Run(c.keys, func(t *testing.T) {
			e := NewEngine(DefaultConfig())
			if got := typeWord(e, c.keys); got != c.want {
				t.Errorf("typeWord(%q) = %q, want %q", c.keys, got, c.want)
			}
		})
	}
}

func TestTelexToneRevertOnRepeat(t *testing.T) {
	e := NewEngine(DefaultConfig())
	got := typeWord(e, "bass")
	if got != "ba" {
		t.Errorf("repeating the tone key should revert it: got %q, want %q", got, "ba")
	}
}

func TestTelexStroke(t *testing.T) {
	e := NewEngine(DefaultConfig())
	got := typeWord(e, "ddi")
	if got != "đi" {
		t.Errorf("typeWord(ddi) = %q, want đi", got)
	}
}

func TestVNIMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InputMethod = VNI
	e := NewEngine(cfg)
	for _, r := range "ba1" {
		var k KeyCode
		if r == '1' {
			k = Key1
		} else {
			k = letterKey[r]
		}
		e.OnKey(k, false, false, false)
	}
	if got := string(e.buf.Render()); got != "bá" {
		t.Errorf("VNI ba1 = %q, want bá", got)
	}
}

// TestVNIMarkAfterCoda pins the canonical VNI keystroke order where the
// mark digit follows the coda, not the nucleus vowel directly: the
// circumflex/horn target must be found by scanning the whole word, not
// just the last character.
func TestVNIMarkAfterCoda(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InputMethod = VNI
	cases := []struct {
		keys string
		want string
	}{
		{"viet6", "viêt"},
		{"cuong7", "cương"},
	}
	for _, c := range cases {
		t.Run(c.keys, func(t *testing.T) {
			e := NewEngine(cfg)
			if got := typeVNIWord(e, c.keys); got != c.want {
				t.Errorf("typeVNIWord(%q) = %q, want %q", c.keys, got, c.want)
			}
		})
	}
}

func TestCaseRestoreOnRevert(t *testing.T) {
	// c-a-s-s-e: 's' applies sắc, the second 's' reverts it, 'e'
	// appended literally. The word never became valid Vietnamese and
	// looks English, so the terminator should restore "case ".
	// The Result is a backspace+insert diff against what is on screen,
	// so the restored word is checked by applying it to that text.
	e := NewEngine(DefaultConfig())
	shown := []rune(typeWord(e, "casse"))
	result := e.OnKey(KeySpace, false, false, false)
	if result.Action != ActionRestore {
		t.Fatalf("expected ActionRestore, got %v", result.Action)
	}
	got := string(shown[:len(shown)-int(result.Backspace)]) + string(result.Chars[:result.Count])
	if got != "case " {
		t.Errorf("restored word = %q, want %q", got, "case ")
	}
}

func TestBackspaceKeepsTracksInSync(t *testing.T) {
	e := NewEngine(DefaultConfig())
	typeWord(e, "bas")
	e.OnKey(KeyBackspace, false, false, false)
	if e.buf.TransformedLen() != 1 {
		t.Fatalf("after backspace, transformed len = %d, want 1", e.buf.TransformedLen())
	}
}
