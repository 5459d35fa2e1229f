package engine

import (
	"testing"
	"testing/quick"
)

// telexAlphabet is the keystroke space the property suite draws from:
// every lowercase letter, with no terminators. Digits are excluded since a Telex
// sequence that wanders into VNI digits is a different input method, not
// a Telex edge case.
var telexAlphabet = []rune("abcdefghijklmnopqrstuvwxyz")

// genKeystrokes builds a pseudo-random keystroke sequence deterministically
// seeded by quick's own int64 value, so the suite stays allocation-cheap
// and doesn't need a custom rand.Source wrapper.
func genKeystrokes(seed int64, maxLen int) []rune {
	if maxLen <= 0 {
		maxLen = 1
	}
	n := int(seed%int64(maxLen)) + 1
	if n < 0 {
		n = -n
	}
	if n == 0 {
		n = 1
	}
	out := make([]rune, n)
	s := seed
	for i := range out {
		s = s*1103515245 + 12345
		idx := int(s % int64(len(telexAlphabet)))
		if idx < 0 {
			idx = -idx
		}
		out[i] = telexAlphabet[idx]
	}
	return out
}

// TestPropertyRawPreservation checks that restore_raw(apply(K)) always
// reconstructs K's literal characters, minus whatever keystrokes ended up
// consumed as modifier triggers.
func TestPropertyRawPreservation(t *testing.T) {
	f := func(seed int64) bool {
		keys := genKeystrokes(seed, 12)
		e := NewEngine(DefaultConfig())
		for _, r := range keys {
			e.OnKey(letterKey[r], false, false, false)
		}
		raw := e.buf.RestoreRaw()
		// Every rune in raw must have appeared, case-folded, in keys:
		// the raw track can only ever be a subsequence of what was typed.
		j := 0
		for _, r := range keys {
			if j < len(raw) && raw[j] == r {
				j++
			}
		}
		return j == len(raw)
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 200}); err != nil {
		t.Error(err)
	}
}

// TestPropertyDeterminism checks that the same configuration and
// keystroke sequence produce a bit-identical transformed buffer across
// independent engine instances.
func TestPropertyDeterminism(t *testing.T) {
	f := func(seed int64) bool {
		keys := genKeystrokes(seed, 12)
		render := func() string {
			e := NewEngine(DefaultConfig())
			for _, r := range keys {
				e.OnKey(letterKey[r], false, false, false)
			}
			return string(e.buf.Render())
		}
		return render() == render()
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 200}); err != nil {
		t.Error(err)
	}
}

// TestPropertyValidatorTotality checks that Validate always returns
// exactly one of the three verdicts for any prefix of any generated
// sequence, never panicking and never returning an unrecognized value.
func TestPropertyValidatorTotality(t *testing.T) {
	f := func(seed int64) bool {
		keys := genKeystrokes(seed, 12)
		e := NewEngine(DefaultConfig())
		for _, r := range keys {
			e.OnKey(letterKey[r], false, false, false)
			v := Validate(e.buf.Transformed())
			if v != VerdictComplete && v != VerdictIncomplete && v != VerdictImpossible {
				return false
			}
		}
		return true
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 200}); err != nil {
		t.Error(err)
	}
}

// TestPropertyIdempotentReset checks that a terminator always returns the
// engine to its zero-value word state, regardless of what preceded it.
func TestPropertyIdempotentReset(t *testing.T) {
	f := func(seed int64) bool {
		keys := genKeystrokes(seed, 12)
		e := NewEngine(DefaultConfig())
		for _, r := range keys {
			e.OnKey(letterKey[r], false, false, false)
		}
		e.OnKey(KeySpace, false, false, false)
		return e.buf.TransformedLen() == 0 && e.buf.RawLen() == 0 &&
			e.hadTransform == false && e.hasTone == false && e.hasMark == false &&
			e.hasStroke == false && e.pendingBreve == false && e.lastTransform == XNone
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 200}); err != nil {
		t.Error(err)
	}
}

// TestConcreteScenarios pins the spec's literal end-to-end examples.
func TestConcreteScenarios(t *testing.T) {
	cases := []struct {
		keys    string
		wantBuf string
	}{
		{"chaof", "chào"},
		{"vieejt", "việt"},
		{"ddang", "đang"},
		{"banjs", "bán"},
		{"uowc", "ươc"},
	}
	for _, c := range cases {
		t.Run(c.keys, func(t *testing.T) {
			e := NewEngine(DefaultConfig())
			got := typeWord(e, c.keys)
			if got != c.wantBuf {
				t.Errorf("buffer = %q, want %q", got, c.wantBuf)
			}
		})
	}
}
