package engine

// Syllable is the segmentation of a transformed buffer into its
// phonological parts, each expressed as a half-open index range over
// the buffer. A part with Start == End is absent.
type Syllable struct {
	OnsetEnd  int // [0, OnsetEnd) is the onset
	GlideEnd  int // [OnsetEnd, GlideEnd) is the glide, usually empty
	NucleusEnd int // [GlideEnd, NucleusEnd) is the vowel nucleus
	CodaEnd   int // [NucleusEnd, CodaEnd) is the coda; CodaEnd == len(buf) always
	OK        bool // false if parsing could not account for every character
}

// letterWithMark returns the letter a CharRecord spells for segmentation
// purposes: tone is irrelevant to structure, but mark and stroke are
// not (ơ and o are different letters to the parser).
func letterWithMark(c CharRecord) rune {
	if c.Stroke && c.Base == 'd' {
		return 'đ'
	}
	if isVowelLetter(c.Base) {
		return composeVowel(c.Base, c.Mark, ToneNone)
	}
	return c.Base
}

// spellingOf renders buf's structural letters into a plain lowercase
// string, the form every Data Tables lookup is keyed on.
func spellingOf(buf []CharRecord) string {
	rs := make([]rune, len(buf))
	for i, c := range buf {
		rs[i] = letterWithMark(c)
	}
	return string(rs)
}

// ParseSyllable segments buf per the longest-match-first algorithm:
// onset (3/2/1 chars), optional glide, vowel nucleus (tri/di/mono),
// coda. It never fails outright; OK reports whether every character
// in buf was consumed by some part.
func ParseSyllable(buf []CharRecord) Syllable {
	letters := make([]rune, len(buf))
	for i, c := range buf {
		letters[i] = letterWithMark(c)
	}
	n := len(letters)
	var s Syllable

	onsetEnd := 0
	if n >= 3 && validOnset(string(letters[0:3])) {
		onsetEnd = 3
	} else if n >= 2 && validOnset(string(letters[0:2])) {
		onsetEnd = 2
	} else if n >= 1 && validOnset(string(letters[0:1])) {
		onsetEnd = 1
	}
	s.OnsetEnd = onsetEnd

	// Glide: 'u' right after onset "q" is absorbed into the onset
	// itself per spec, so no separate glide slot for qu-. Otherwise a
	// single 'o'/'u' before the vowel proper, when it forms one of the
	// enumerated glide+vowel combinations, is a glide.
	glideEnd := onsetEnd
	if onsetEnd < n && (letters[onsetEnd] == 'o' || letters[onsetEnd] == 'u') && onsetEnd+1 < n {
		pair := string(letters[onsetEnd : onsetEnd+2])
		if diphthongs[pair] && isGlideCombination(pair) {
			glideEnd = onsetEnd + 1
		}
	}
	s.GlideEnd = glideEnd

	nucleusEnd := glideEnd
	if glideEnd < n {
		if glideEnd+3 <= n && triphthongs[string(letters[glideEnd:glideEnd+3])] {
			nucleusEnd = glideEnd + 3
		} else if glideEnd+2 <= n && diphthongs[string(letters[glideEnd:glideEnd+2])] {
			nucleusEnd = glideEnd + 2
		} else if glideEnd+1 <= n && isVowelLetter(letters[glideEnd]) {
			nucleusEnd = glideEnd + 1
		}
	}
	s.NucleusEnd = nucleusEnd

	s.CodaEnd = n
	codaLen := n - nucleusEnd
	switch codaLen {
	case 0:
		s.OK = nucleusEnd > glideEnd
	case 1:
		s.OK = codaSingle[letters[nucleusEnd]]
	case 2:
		s.OK = codaCluster[string(letters[nucleusEnd:n])]
	default:
		s.OK = false
	}
	if nucleusEnd == glideEnd {
		// no vowel found at all: whole parse fails regardless of coda
		s.OK = false
	}
	return s
}

// isGlideCombination reports whether pair is one of the enumerated
// glide+vowel onset combinations (oa, oă, oe, uâ, uê, uy, ...) rather
// than a plain diphthong nucleus. Both classes draw from the same
// letter pairs; the caller treats any such pair right after the onset
// as glide+vowel, including when the onset is empty.
func isGlideCombination(pair string) bool {
	switch pair {
	case "oa", "oă", "oe", "uâ", "uê", "uy", "uơ", "uô":
		return true
	default:
		return false
	}
}

// Nucleus returns the vowel-nucleus slice of buf per s.
func (s Syllable) Nucleus(buf []CharRecord) []CharRecord {
	return buf[s.GlideEnd:s.NucleusEnd]
}

// Onset returns the onset slice of buf per s.
func (s Syllable) Onset(buf []CharRecord) []CharRecord {
	return buf[:s.OnsetEnd]
}

// Coda returns the coda slice of buf per s.
func (s Syllable) Coda(buf []CharRecord) []CharRecord {
	return buf[s.NucleusEnd:s.CodaEnd]
}

// HasCoda reports whether s has a non-empty coda.
func (s Syllable) HasCoda() bool { return s.CodaEnd > s.NucleusEnd }
