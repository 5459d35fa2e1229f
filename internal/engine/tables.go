package engine

// Data Tables: character classes, valid onsets/codas/diphthongs, and the
// spelling-rule table the Validator consults. Every table here is a
// compile-time constant; classification of a single ASCII letter is a
// shift-and-mask over a 128-entry array rather than a map lookup, per the
// "bitmask matrix discipline" design note — clusters and diphthongs (2-3
// character keys) stay as small string-keyed maps, the same way the
// teacher's validInitials/validFinals tables are built.

type charClass uint8

const (
	classNone      charClass = 0
	classVowel     charClass = 1 << 0
	classConsonant charClass = 1 << 1
)

// asciiClass classifies a lowercase ASCII letter. Built once at package
// init from the closed Vietnamese Latin alphabet.
var asciiClass [128]charClass

func init() {
	for _, r := range "aeiouy" {
		asciiClass[r] = classVowel
	}
	for _, r := range "bcdghklmnpqrstvx" {
		asciiClass[r] = classConsonant
	}
	// f, j, w, z carry no native class: Vietnamese phonology never uses
	// them directly, they only ever act as Telex modifier triggers.
}

func isVowelLetter(r rune) bool {
	if r < 0 || r >= 128 {
		return false
	}
	return asciiClass[r]&classVowel != 0
}

func isConsonantLetter(r rune) bool {
	if r < 0 || r >= 128 {
		return false
	}
	return asciiClass[r]&classConsonant != 0
}

// onset3, onset2 and onset1 group valid Vietnamese initial consonant clusters by
// character count, longest-match-first per the Syllable Parser algorithm.
var onset3 = map[string]bool{"ngh": true}

var onset2 = map[string]bool{
	"ch": true, "gh": true, "gi": true, "kh": true, "kr": true,
	"ng": true, "nh": true, "ph": true, "qu": true, "th": true, "tr": true,
}

var onset1 = map[rune]bool{
	'b': true, 'c': true, 'd': true, 'đ': true, 'g': true, 'h': true,
	'k': true, 'l': true, 'm': true, 'n': true, 'p': true, 'q': true,
	'r': true, 's': true, 't': true, 'v': true, 'x': true,
}

// validOnset reports whether s (1-3 lowercase letters, đ as its own letter)
// is a recognized Vietnamese initial consonant or cluster. Validator
// layer 2/3 and the Syllable Parser's onset scan both consult this.
func validOnset(s string) bool {
	switch len([]rune(s)) {
	case 0:
		return true
	case 1:
		return onset1[[]rune(s)[0]]
	case 2:
		return onset2[s]
	case 3:
		return onset3[s]
	default:
		return false
	}
}

// Coda sets: single-character codas and the enumerated two-character
// coda clusters.
var codaSingle = map[rune]bool{
	'c': true, 'm': true, 'n': true, 'p': true, 't': true,
	'i': true, 'o': true, 'u': true, 'y': true, // semi-vowel codas
}

var codaCluster = map[string]bool{"ch": true, "ng": true, "nh": true}

// stopCodas are the codas that restrict the tone-stop rule (Validator
// layer 7) to sắc or nặng.
var stopCodas = map[string]bool{"c": true, "ch": true, "p": true, "t": true}

// Triphthongs and diphthongs for the Vowel Pattern layer and the
// Syllable Parser's longest-match nucleus scan. Listed with marks but
// without tone diacritics: the parser strips tones, not marks, before
// consulting the table.
var triphthongs = map[string]bool{
	"iêu": true, "yêu": true, "oai": true, "oay": true, "oao": true,
	"oeo": true, "uây": true, "uôi": true, "uya": true, "uyê": true,
	"uyu": true, "uêu": true, "ươi": true, "ươu": true,
}

var diphthongs = map[string]bool{
	"ai": true, "ao": true, "au": true, "ay": true, "âu": true, "ây": true,
	"eo": true, "êu": true, "ia": true, "iê": true, "iu": true,
	"oa": true, "oă": true, "oe": true, "oi": true, "ôi": true, "ơi": true,
	"oo": true, "ua": true, "uâ": true, "uê": true, "ui": true, "uy": true,
	"uo": true, "uô": true, "uơ": true, "ưa": true, "ươ": true, "ưi": true,
	"ưu": true, "yê": true,
}

// modifierRequiredDiphthongs names nucleus spellings that are only valid
// with the circumflex mark already applied (Validator layer 9): without
// the mark the raw letters spell an Impossible structure, not a merely
// incomplete one.
var modifierRequiredDiphthongs = map[string]bool{
	"eu": true, // must become êu
	"ie": true, // must become iê
	"ue": true, // must become uê
	"ye": true, // must become yê
}

// spellingRules maps an (onset, leading-vowel) pair that Vietnamese
// orthography forbids to the spelling it should have used instead.
// Validator layer 8 rejects any buffer matching a key here.
var spellingRules = map[string]string{
	"ce": "ke", "ci": "ki", "cy": "ky",
	"ka": "ca", "ko": "co", "ku": "cu",
	"ge": "ghe", "gê": "ghê",
	"nge": "nghe", "ngê": "nghê", "ngi": "nghi",
	"gha": "ga", "gho": "go", "ghu": "gu", "ghơ": "gơ", "ghư": "gư",
	"ngha": "nga", "ngho": "ngo", "nghu": "ngu",
}

// englishOnsetClusters are initial consonant clusters that never occur
// in Vietnamese, used by English Detector tier 2.
var englishOnsetClusters2 = map[string]bool{
	"bl": true, "br": true, "cl": true, "cr": true, "dr": true, "fl": true,
	"fr": true, "gl": true, "gr": true, "pl": true, "pr": true, "sc": true,
	"sk": true, "sl": true, "sm": true, "sn": true, "sp": true, "st": true,
	"sw": true, "tw": true, "wr": true,
}

var englishOnsetClusters3 = map[string]bool{
	"str": true, "spl": true, "spr": true, "scr": true, "shr": true, "thr": true,
}

// englishCodaClusters are terminal consonant clusters that never occur in
// Vietnamese, used by English Detector tier 3.
var englishCodaClusters = map[string]bool{
	"ct": true, "ft": true, "ld": true, "lf": true, "lk": true, "lm": true,
	"lp": true, "lt": true, "xt": true, "nd": true, "nk": true, "nt": true,
	"pt": true, "rb": true, "rd": true, "rk": true, "rm": true, "rn": true,
	"rp": true, "rt": true, "sk": true, "sp": true, "st": true, "sh": true,
	"ry": true, "se": true, "ks": true, "fe": true, "re": true,
}

// englishVowelPairs are adjacent-vowel digraphs that never occur in
// Vietnamese orthography, used by English Detector tier 4.
var englishVowelPairs = map[string]bool{
	"ea": true, "ee": true, "ou": true, "ei": true, "eu": true,
	"yo": true, "ae": true, "yi": true, "oo": true, "io": true,
}

// englishSuffixes are word endings essentially unique to English, used
// by English Detector tier 5.
var englishSuffixes = []string{
	"tion", "sion", "ness", "ment", "able", "ible", "ing", "ful", "ous", "ive",
}

// vcvMiddle is the consonant set for the vowel-consonant-vowel pattern
// (English Detector tier 6): core, care, base, note, file, user.
var vcvMiddle = map[rune]bool{'r': true, 'l': true, 't': true, 's': true, 'n': true, 'm': true}
