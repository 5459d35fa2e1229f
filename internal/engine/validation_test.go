package engine

import "testing"

func TestValidateVerdicts(t *testing.T) {
	cases := []struct {
		name string
		buf  []CharRecord
		want Verdict
	}{
		{"empty", nil, VerdictIncomplete},
		{"no vowel yet", chars('n', 'g'), VerdictIncomplete},
		{"complete open syllable", chars('b', 'a'), VerdictComplete},
		{"complete with coda", chars('b', 'a', 'n'), VerdictComplete},
		{"foreign coda cluster", chars('b', 'a', 'n', 'k'), VerdictImpossible},
		{"stop coda wrong tone", withTone(chars('b', 'a', 'c'), 2, ToneHuyen), VerdictImpossible},
		{"stop coda sac ok", withTone(chars('b', 'a', 'c'), 2, ToneSac), VerdictComplete},
		{"stop coda no tone", chars('b', 'a', 'c'), VerdictImpossible},
		{"ce spelling violation", chars('c', 'e'), VerdictImpossible},
		{"ke spelling ok", chars('k', 'e'), VerdictComplete},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Validate(c.buf); got != c.want {
				t.Errorf("Validate(%q) = %v, want %v", spellingOf(c.buf), got, c.want)
			}
		})
	}
}

func withTone(buf []CharRecord, idx int, tone ToneMark) []CharRecord {
	out := append([]CharRecord(nil), buf...)
	out[idx-1].Tone = tone
	return out
}
