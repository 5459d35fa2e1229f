package engine

// ToneRule selects between the two historical conventions for placing
// a tone mark on an open oa/oe/uy nucleus.
type ToneRule uint8

const (
	ToneRuleOld    ToneRule = iota // tone on the first vowel (hòa)
	ToneRuleModern                 // tone on the second vowel (hoà)
)

// toneTargetIndex returns the nucleus-relative index (0-based within
// the nucleus, not the whole buffer) that a new tone keystroke should
// land on, per the rules in the Tone & Mark Placement design: a marked
// vowel always wins; otherwise diphthong/triphthong position rules
// apply; otherwise the lone vowel takes it.
func toneTargetIndex(nucleus []CharRecord, hasCoda bool, rule ToneRule) int {
	n := len(nucleus)
	if n <= 1 {
		return 0
	}

	for i, c := range nucleus {
		if c.Mark != MarkNone {
			return i
		}
	}

	if n == 3 {
		return 1 // triphthong: middle vowel
	}

	spelling := spellingOf(nucleus)
	if !hasCoda {
		switch spelling {
		case "oa", "oe", "uy":
			if rule == ToneRuleModern {
				return 1
			}
			return 0
		case "ia":
			return 0 // traditional: nghĩa, not nghiã
		case "ua", "ưa":
			return 1
		}
	}

	if hasCoda {
		return 0 // diphthong with coda: first vowel (bán, báo, báu)
	}
	return 0 // diphthong without coda, no special case: first vowel (chào, mài, bói)
}
