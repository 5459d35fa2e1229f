package engine

import (
	"testing"

	"github.com/vnimed/vnimed/internal/dictionary"
)

// TestEnglishRestoreWithDefaultDictionary pins the spec's tesla scenario:
// with the built-in wordlist wired, an Impossible-verdict buffer whose
// raw keystrokes spell a known English word restores to its raw form
// even when the 7-tier English Detector alone would not have matched it.
func TestEnglishRestoreWithDefaultDictionary(t *testing.T) {
	e := NewEngine(DefaultConfig())
	e.SetDictionary(dictionary.New())
	shown := []rune(typeWord(e, "tesla"))
	result := e.OnKey(KeySpace, false, false, false)
	if result.Action != ActionRestore {
		t.Fatalf("expected ActionRestore, got %v", result.Action)
	}
	// Apply the backspace+insert diff to the on-screen text.
	got := string(shown[:len(shown)-int(result.Backspace)]) + string(result.Chars[:result.Count])
	if got != "tesla " {
		t.Errorf("restored word = %q, want %q", got, "tesla ")
	}
}
