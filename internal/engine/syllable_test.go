package engine

import "testing"

func chars(letters ...rune) []CharRecord {
	out := make([]CharRecord, len(letters))
	for i, r := range letters {
		out[i] = CharRecord{Base: r}
	}
	return out
}

func TestParseSyllable(t *testing.T) {
	cases := []struct {
		name       string
		buf        []CharRecord
		wantOK     bool
		wantOnset  int
		wantNucEnd int
	}{
		{"ba", chars('b', 'a'), true, 1, 2},
		{"nghe", chars('n', 'g', 'h', 'e'), true, 3, 4},
		{"toan", chars('t', 'o', 'a', 'n'), true, 1, 3},
		{"qua", chars('q', 'u', 'a'), true, 2, 3},
		{"a", chars('a'), true, 0, 1},
		{"bcd no vowel", chars('b', 'c', 'd'), false, 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := ParseSyllable(c.buf)
			if s.OK != c.wantOK {
				t.Fatalf("OK = %v, want %v", s.OK, c.wantOK)
			}
			if !c.wantOK {
				return
			}
			if s.OnsetEnd != c.wantOnset {
				t.Errorf("OnsetEnd = %d, want %d", s.OnsetEnd, c.wantOnset)
			}
			if s.NucleusEnd != c.wantNucEnd {
				t.Errorf("NucleusEnd = %d, want %d", s.NucleusEnd, c.wantNucEnd)
			}
		})
	}
}
