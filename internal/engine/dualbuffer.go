package engine

// maxTransformed and maxRaw are the DualBuffer's fixed capacities. Both
// tracks are plain arrays that never grow or reallocate. The letter path
// is not allocation-free: rendering, parsing and validation each build
// short-lived slices on every keystroke.
const (
	maxTransformed = 32
	maxRaw         = 96
)

// ErrCapacity is returned by any DualBuffer mutator that would exceed a
// track's fixed capacity. The buffer is left unmutated.
type ErrCapacity struct{ Track string }

func (e ErrCapacity) Error() string { return e.Track + " buffer is full" }

// DualBuffer holds the synchronized raw-keystroke log and transformed-
// character buffer for the word currently being composed. The two
// tracks are mutated only through the methods below; callers never
// index the underlying arrays directly, which is what keeps the
// consumed-flag bridge between the tracks honest.
type DualBuffer struct {
	transformed [maxTransformed]CharRecord
	tLen        int
	raw         [maxRaw]RawRecord
	rLen        int
}

// Reset clears both tracks.
func (b *DualBuffer) Reset() {
	b.tLen = 0
	b.rLen = 0
}

// TransformedLen and RawLen report each track's current length.
func (b *DualBuffer) TransformedLen() int { return b.tLen }
func (b *DualBuffer) RawLen() int         { return b.rLen }

// PushLiteral appends one raw record (not consumed) and one transformed
// character record, in that order, as a single causal unit: a plain
// letter keystroke that becomes exactly one visible character.
func (b *DualBuffer) PushLiteral(key KeyCode, caps, shift bool, ch CharRecord) error {
	if b.tLen >= maxTransformed {
		return ErrCapacity{"transformed"}
	}
	if b.rLen >= maxRaw {
		return ErrCapacity{"raw"}
	}
	b.raw[b.rLen] = RawRecord{Key: key, Caps: caps, Shift: shift, Consumed: false}
	b.rLen++
	b.transformed[b.tLen] = ch
	b.tLen++
	return nil
}

// PushModifierTrigger appends a raw record already marked consumed: a
// keystroke that fired a stage but produced no new transformed
// character (it mutated an existing one via ReplaceAt instead). Returns
// the raw index so a later revert can call UnmarkConsumed on it.
func (b *DualBuffer) PushModifierTrigger(key KeyCode, caps, shift bool) (int, error) {
	if b.rLen >= maxRaw {
		return -1, ErrCapacity{"raw"}
	}
	idx := b.rLen
	b.raw[idx] = RawRecord{Key: key, Caps: caps, Shift: shift, Consumed: true}
	b.rLen++
	return idx, nil
}

// UnmarkConsumed reverts a previously consumed raw record back to a
// plain literal keystroke. Used by double-key revert: once a modifier
// is undone, the keystrokes that triggered it are, retroactively,
// nothing more than literal letters for restore purposes.
func (b *DualBuffer) UnmarkConsumed(rawIndex int) {
	if rawIndex < 0 || rawIndex >= b.rLen {
		return
	}
	b.raw[rawIndex].Consumed = false
}

// ReplaceAt mutates a transformed character record in place. Used by
// every modifier stage (tone, circumflex, horn, breve, stroke) to alter
// a character already in the buffer.
func (b *DualBuffer) ReplaceAt(index int, ch CharRecord) {
	if index < 0 || index >= b.tLen {
		return
	}
	b.transformed[index] = ch
}

// CharAt returns the transformed record at index and whether it exists.
func (b *DualBuffer) CharAt(index int) (CharRecord, bool) {
	if index < 0 || index >= b.tLen {
		return CharRecord{}, false
	}
	return b.transformed[index], true
}

// LastChar returns the final transformed record, if any.
func (b *DualBuffer) LastChar() (CharRecord, int, bool) {
	if b.tLen == 0 {
		return CharRecord{}, -1, false
	}
	return b.transformed[b.tLen-1], b.tLen - 1, true
}

// Transformed returns the live transformed track as a slice view sized
// to the current length. Callers must not retain it across a mutation.
func (b *DualBuffer) Transformed() []CharRecord {
	return b.transformed[:b.tLen]
}

// Raw returns the live raw track as a slice view sized to the current
// length.
func (b *DualBuffer) Raw() []RawRecord {
	return b.raw[:b.rLen]
}

// AnyMarkOrStroke reports whether any transformed character still carries
// a mark or a stroke. Used after a revert to recompute whether the word
// as a whole still has a visible modifier, since reverting one stage
// should not blindly clear a flag that another character still earns.
func (b *DualBuffer) AnyMarkOrStroke() bool {
	for i := 0; i < b.tLen; i++ {
		if b.transformed[i].Mark != MarkNone || b.transformed[i].Stroke {
			return true
		}
	}
	return false
}

// Pop removes the most recently typed character, keeping both tracks in
// sync: it pops one transformed record, then pops raw records from the
// tail until exactly one non-consumed keystroke has been removed (any
// trailing consumed modifier triggers belonging to that character go
// with it).
func (b *DualBuffer) Pop() {
	if b.tLen > 0 {
		b.tLen--
	}
	for b.rLen > 0 {
		b.rLen--
		if !b.raw[b.rLen].Consumed {
			break
		}
	}
}

// Render composes the transformed track into display codepoints using
// the glyph composer.
func (b *DualBuffer) Render() []rune {
	out := make([]rune, 0, b.tLen)
	for i := 0; i < b.tLen; i++ {
		out = append(out, composeChar(b.transformed[i]))
	}
	return out
}

// RestoreRaw reconstructs the user's literal keystrokes: every
// non-consumed raw record rendered as a character with its original
// caps/shift state.
func (b *DualBuffer) RestoreRaw() []rune {
	out := make([]rune, 0, b.rLen)
	for i := 0; i < b.rLen; i++ {
		rec := b.raw[i]
		if rec.Consumed {
			continue
		}
		out = append(out, renderRawKey(rec))
	}
	return out
}
