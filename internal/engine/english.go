package engine

// LooksEnglish runs the seven-tier English Detector over the raw
// keystroke log. A hit at any tier is enough to call the word
// English-likely; the tiers are cheap table lookups over the rendered
// raw letters, never the transformed buffer, since English detection
// must survive a word that Vietnamese transforms have already mangled.
func LooksEnglish(raw []RawRecord) bool {
	letters := rawLetters(raw)
	n := len(letters)
	if n == 0 {
		return false
	}

	// Tier 1: invalid initial.
	if disallowedLetters[letters[0]] {
		return true
	}

	// Tier 2: onset cluster.
	if n >= 3 && englishOnsetClusters3[string(letters[0:3])] {
		return true
	}
	if n >= 2 && englishOnsetClusters2[string(letters[0:2])] {
		return true
	}

	// Tier 3: coda cluster.
	if n >= 2 && englishCodaClusters[string(letters[n-2:n])] {
		return true
	}

	// Tier 4: vowel pattern.
	for i := 0; i+1 < n; i++ {
		if isVowelLetter(letters[i]) && isVowelLetter(letters[i+1]) {
			if englishVowelPairs[string(letters[i:i+2])] {
				return true
			}
		}
	}

	// Tier 5: suffix.
	word := string(letters)
	for _, suf := range englishSuffixes {
		if len(word) > len(suf) && word[len(word)-len(suf):] == suf {
			return true
		}
	}

	// Tier 6: V-C-V pattern.
	for i := 0; i+2 < n; i++ {
		if isVowelLetter(letters[i]) && vcvMiddle[letters[i+1]] && isVowelLetter(letters[i+2]) {
			return true
		}
	}

	// Tier 7: w-as-vowel endings.
	if n >= 2 {
		end2 := string(letters[n-2:])
		if end2 == "ew" || end2 == "ow" || end2 == "aw" {
			return true
		}
	}
	if n >= 3 && containsSub(letters, "iew") {
		return true
	}

	return false
}

// rawLetters renders the raw log's letter keystrokes to lowercase ASCII,
// ignoring digit keys (VNI modifier triggers carry no English signal).
func rawLetters(raw []RawRecord) []rune {
	out := make([]rune, 0, len(raw))
	for _, r := range raw {
		if isLetterKey(r.Key) {
			out = append(out, baseLetter(r.Key))
		}
	}
	return out
}

func containsSub(letters []rune, sub string) bool {
	subr := []rune(sub)
	for i := 0; i+len(subr) <= len(letters); i++ {
		match := true
		for j, r := range subr {
			if letters[i+j] != r {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
