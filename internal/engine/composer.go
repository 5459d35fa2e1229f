package engine

import "unicode"

// Glyph composer: maps a CharRecord (baseKey, tone, mark, stroke, caps)
// to a single precomposed (NFC) Unicode codepoint. Grounded on the
// teacher's unicodeVowelTones/unicodeVowelMarks tables, restructured as
// a two-step compose (base+mark -> marked vowel, marked vowel+tone ->
// toned vowel) so stroke and consonants share the same entry point.

// vowelWithMark maps a plain vowel and a MarkKind to the marked vowel.
// Entries absent here (e.g. MarkHorn on 'a') simply aren't reachable by
// any transform stage.
var vowelWithMark = map[rune]map[MarkKind]rune{
	'a': {MarkBreve: 'ă', MarkCircumflex: 'â'},
	'e': {MarkCircumflex: 'ê'},
	'o': {MarkCircumflex: 'ô', MarkHorn: 'ơ'},
	'u': {MarkHorn: 'ư'},
}

// vowelTones maps a (possibly already marked) vowel and a ToneMark to
// the fully composed glyph.
var vowelTones = map[rune]map[ToneMark]rune{
	'a': {ToneNone: 'a', ToneSac: 'á', ToneHuyen: 'à', ToneHoi: 'ả', ToneNga: 'ã', ToneNang: 'ạ'},
	'ă': {ToneNone: 'ă', ToneSac: 'ắ', ToneHuyen: 'ằ', ToneHoi: 'ẳ', ToneNga: 'ẵ', ToneNang: 'ặ'},
	'â': {ToneNone: 'â', ToneSac: 'ấ', ToneHuyen: 'ầ', ToneHoi: 'ẩ', ToneNga: 'ẫ', ToneNang: 'ậ'},
	'e': {ToneNone: 'e', ToneSac: 'é', ToneHuyen: 'è', ToneHoi: 'ẻ', ToneNga: 'ẽ', ToneNang: 'ẹ'},
	'ê': {ToneNone: 'ê', ToneSac: 'ế', ToneHuyen: 'ề', ToneHoi: 'ể', ToneNga: 'ễ', ToneNang: 'ệ'},
	'i': {ToneNone: 'i', ToneSac: 'í', ToneHuyen: 'ì', ToneHoi: 'ỉ', ToneNga: 'ĩ', ToneNang: 'ị'},
	'o': {ToneNone: 'o', ToneSac: 'ó', ToneHuyen: 'ò', ToneHoi: 'ỏ', ToneNga: 'õ', ToneNang: 'ọ'},
	'ô': {ToneNone: 'ô', ToneSac: 'ố', ToneHuyen: 'ồ', ToneHoi: 'ổ', ToneNga: 'ỗ', ToneNang: 'ộ'},
	'ơ': {ToneNone: 'ơ', ToneSac: 'ớ', ToneHuyen: 'ờ', ToneHoi: 'ở', ToneNga: 'ỡ', ToneNang: 'ợ'},
	'u': {ToneNone: 'u', ToneSac: 'ú', ToneHuyen: 'ù', ToneHoi: 'ủ', ToneNga: 'ũ', ToneNang: 'ụ'},
	'ư': {ToneNone: 'ư', ToneSac: 'ứ', ToneHuyen: 'ừ', ToneHoi: 'ử', ToneNga: 'ữ', ToneNang: 'ự'},
	'y': {ToneNone: 'y', ToneSac: 'ý', ToneHuyen: 'ỳ', ToneHoi: 'ỷ', ToneNga: 'ỹ', ToneNang: 'ỵ'},
}

// composeVowel resolves base+mark+tone to the final lowercase glyph.
func composeVowel(base rune, mark MarkKind, tone ToneMark) rune {
	marked := base
	if marks, ok := vowelWithMark[base]; ok {
		if m, ok := marks[mark]; ok {
			marked = m
		}
	}
	if tones, ok := vowelTones[marked]; ok {
		if t, ok := tones[tone]; ok {
			return t
		}
	}
	return marked
}

// composeChar renders one CharRecord to its display codepoint.
func composeChar(c CharRecord) rune {
	var r rune
	if c.Stroke && c.Base == 'd' {
		r = 'đ'
	} else if isVowelLetter(c.Base) {
		r = composeVowel(c.Base, c.Mark, c.Tone)
	} else {
		r = c.Base
	}
	if c.Caps {
		return upperVietnamese(r)
	}
	return r
}

// upperVietnamese uppercases a Vietnamese precomposed glyph. Go's
// unicode.ToUpper already handles the full Latin Extended-A/B and
// Vietnamese-specific combining-free precomposed ranges correctly, so
// this is a thin, documented entry point rather than a private table.
func upperVietnamese(r rune) rune {
	if r == 'đ' {
		return 'Đ'
	}
	return unicode.ToUpper(r)
}
