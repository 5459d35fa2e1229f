package engine

import "testing"

func rawOf(letters string) []RawRecord {
	var out []RawRecord
	keyOf := map[rune]KeyCode{
		'a': KeyA, 'b': KeyB, 'c': KeyC, 'd': KeyD, 'e': KeyE, 'f': KeyF,
		'g': KeyG, 'h': KeyH, 'i': KeyI, 'j': KeyJ, 'k': KeyK, 'l': KeyL,
		'm': KeyM, 'n': KeyN, 'o': KeyO, 'p': KeyP, 'q': KeyQ, 'r': KeyR,
		's': KeyS, 't': KeyT, 'u': KeyU, 'v': KeyV, 'w': KeyW, 'x': KeyX,
		'y': KeyY, 'z': KeyZ,
	}
	for _, r := range letters {
		out = append(out, RawRecord{Key: keyOf[r]})
	}
	return out
}

func TestLooksEnglish(t *testing.T) {
	cases := []struct {
		word string
		want bool
	}{
		{"ban", false},
		{"case", true},    // tier 3: "se" coda cluster
		{"black", true},   // tier 2: bl onset cluster
		{"fast", true},    // tier 1: invalid initial f
		{"hold", true},    // tier 3: ld coda cluster
		{"tea", true},     // tier 4: ea vowel pair
		{"nation", true},  // tier 4: io vowel pair (before tier 5's tion suffix)
		{"new", true},     // tier 7: ew ending
		{"nguoi", false},
	}
	for _, c := range cases {
		t.Run(c.word, func(t *testing.T) {
			if got := LooksEnglish(rawOf(c.word)); got != c.want {
				t.Errorf("LooksEnglish(%q) = %v, want %v", c.word, got, c.want)
			}
		})
	}
}
