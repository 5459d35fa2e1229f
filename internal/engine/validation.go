package engine

// Verdict is the Validator's classification of a transformed buffer.
type Verdict uint8

const (
	VerdictUnknown Verdict = iota
	VerdictComplete
	VerdictIncomplete
	VerdictImpossible
)

// disallowedLetters can never appear in native Vietnamese spelling;
// they only ever act as Telex modifier triggers before being consumed.
var disallowedLetters = map[rune]bool{'f': true, 'j': true, 'w': true, 'z': true}

// Validate runs the 9-layer phonotactic check over buf and returns the
// aggregate verdict. Pure: no side effects, no mutation of buf.
func Validate(buf []CharRecord) Verdict {
	if len(buf) == 0 {
		return VerdictIncomplete
	}

	// Layer 1: character class. A disallowed letter still present means
	// some earlier stage deferred it (w-as-vowel, pending breve) rather
	// than resolving it; that is never a Complete structure, but it is
	// not necessarily Impossible either (the user may still be typing).
	for _, c := range buf {
		if disallowedLetters[c.Base] {
			return VerdictIncomplete
		}
	}

	spelling := spellingOf(buf)
	runes := []rune(spelling)
	s := ParseSyllable(buf)
	if !s.OK {
		if s.NucleusEnd == s.GlideEnd {
			return VerdictIncomplete // no vowel yet
		}
		return VerdictImpossible // vowel found but leftover characters
	}

	// Layer 2/3: onset and onset cluster, already enforced by the parser
	// via validOnset, but an onset consuming 0 characters in front of a
	// leading consonant-looking letter that never matched signals a
	// foreign cluster.
	if s.OnsetEnd == 0 && isConsonantLetter(buf[0].Base) {
		if _, ok := onset1[buf[0].Base]; !ok {
			return VerdictImpossible
		}
	}

	// Layer 4: vowel pattern already enforced by the parser (diphthong/
	// triphthong/single-vowel whitelist); nothing further to check.
	nucleus := runes[s.GlideEnd:s.NucleusEnd]

	// Layer 7: tone-stop restriction. A stop coda (p/t/c/ch) can only ever
	// carry sắc or nặng; ngang (no tone) is just as invalid as huyền/hỏi/
	// ngã, since Vietnamese has no unmarked stop-coda syllable.
	coda := runes[s.NucleusEnd:s.CodaEnd]
	if len(coda) > 0 {
		tone := nucleusTone(buf, s.GlideEnd, s.NucleusEnd)
		if stopCodas[string(coda)] && tone != ToneSac && tone != ToneNang {
			return VerdictImpossible
		}
	}

	// Layer 8: spelling rules, checked over onset + first nucleus vowel.
	if s.OnsetEnd > 0 && len(nucleus) > 0 {
		key := string(runes[:s.OnsetEnd]) + string(nucleus[0])
		if _, bad := spellingRules[key]; bad {
			return VerdictImpossible
		}
	}

	// Layer 9: modifier requirement. A nucleus spelling that can only be
	// valid with a circumflex already applied, still unmarked, means
	// the structure is impossible as currently spelled (the Circumflex
	// stage should have already resolved it, so reaching here unmarked
	// means the keys arrived out of the order that would fix it).
	if len(nucleus) >= 2 {
		if modifierRequiredDiphthongs[string(nucleus[:2])] {
			return VerdictImpossible
		}
	}

	if s.NucleusEnd == s.GlideEnd {
		return VerdictIncomplete
	}
	return VerdictComplete
}

// nucleusTone returns the tone mark carried by the nucleus region, since
// Vietnamese orthography places exactly one tone per syllable and it
// always lands on a nucleus vowel.
func nucleusTone(buf []CharRecord, glideEnd, nucleusEnd int) ToneMark {
	for i := glideEnd; i < nucleusEnd; i++ {
		if buf[i].Tone != ToneNone {
			return buf[i].Tone
		}
	}
	return ToneNone
}
