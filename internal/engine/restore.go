package engine

// Dictionary is an optional static wordlist consulted by the Restore
// Policy's Impossible branch. The engine core never bundles one; a
// host shell may wire in a static English wordlist at construction.
type Dictionary interface {
	Contains(word string) bool
}

// wordState is the subset of per-word engine flags the Restore Policy
// decides on. Kept as its own value type so the policy itself stays a
// pure function, independent of DualBuffer's internal representation.
type wordState struct {
	hadTransform  bool
	hasStroke     bool
	hasTone       bool
	hasMark       bool
	hadRevert     bool
	pendingBreve  bool
	vnState       Verdict
	rawLen        int
	transformedLen int
	rawWord       string
	transformedWord string
}

// shouldRestore runs the 12-step Restore Policy decision order and
// reports whether the word should be emitted as its raw keystrokes
// (true) rather than the transformed buffer (false). Every branch has
// a Keep default; a nil dict is treated as "no dictionary available".
func shouldRestore(st wordState, englishLikely bool, dict Dictionary) bool {
	// 1.
	if !st.hadTransform {
		return false
	}
	// 2.
	if st.hasStroke {
		return false
	}
	// 3.
	if st.pendingBreve {
		return true
	}
	// 4 & 5.
	if st.vnState == VerdictImpossible {
		if dict != nil {
			if dict.Contains(st.rawWord) {
				return true
			}
			if dict.Contains(st.transformedWord) {
				return false
			}
			return true
		}
		return englishLikely
	}
	// 6.
	if st.rawLen-st.transformedLen >= 2 && !st.hasTone && !st.hasMark {
		return true
	}
	// 7.
	if st.hasTone && st.vnState == VerdictComplete {
		return false
	}
	// 8.
	if st.vnState == VerdictComplete {
		return false
	}
	// 9.
	if st.hasTone && st.vnState == VerdictIncomplete {
		return englishLikely
	}
	// 10.
	if st.hasMark && !st.hasTone && st.vnState == VerdictIncomplete && englishLikely {
		return true
	}
	// 11.
	if st.hadRevert && st.vnState != VerdictComplete && englishLikely {
		return true
	}
	// 12.
	return false
}
