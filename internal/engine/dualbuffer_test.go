package engine

import "testing"

func TestDualBufferPushLiteral(t *testing.T) {
	var b DualBuffer
	if err := b.PushLiteral(KeyA, false, false, CharRecord{Base: 'a'}); err != nil {
		t.Fatalf("PushLiteral: %v", err)
	}
	if b.TransformedLen() != 1 || b.RawLen() != 1 {
		t.Fatalf("got transformed=%d raw=%d, want 1,1", b.TransformedLen(), b.RawLen())
	}
}

func TestDualBufferModifierTriggerConsumed(t *testing.T) {
	var b DualBuffer
	_ = b.PushLiteral(KeyA, false, false, CharRecord{Base: 'a'})
	idx, err := b.PushModifierTrigger(KeyS, false, false)
	if err != nil {
		t.Fatalf("PushModifierTrigger: %v", err)
	}
	if b.TransformedLen() != 1 {
		t.Fatalf("modifier trigger should not grow transformed track, got %d", b.TransformedLen())
	}
	raw := b.Raw()
	if !raw[idx].Consumed {
		t.Fatalf("trigger raw record should be marked consumed")
	}
}

func TestDualBufferUnmarkConsumedRestoresRaw(t *testing.T) {
	// "case": 's' fires tone-sắc, a revert then removes the tone and
	// un-consumes that 's', and 'e' follows. RestoreRaw must reproduce
	// "case" once the revert un-consumes the 's'.
	var b DualBuffer
	_ = b.PushLiteral(KeyC, false, false, CharRecord{Base: 'c'})
	_ = b.PushLiteral(KeyA, false, false, CharRecord{Base: 'a'})
	sIdx, _ := b.PushModifierTrigger(KeyS, false, false) // tone applied here
	b.ReplaceAt(1, CharRecord{Base: 'a', Tone: ToneSac})
	// revert: tone removed, raw 's' un-consumed
	b.ReplaceAt(1, CharRecord{Base: 'a'})
	b.UnmarkConsumed(sIdx)
	_ = b.PushLiteral(KeyE, false, false, CharRecord{Base: 'e'})

	got := string(b.RestoreRaw())
	if got != "case" {
		t.Fatalf("RestoreRaw() = %q, want %q", got, "case")
	}
}

func TestDualBufferPop(t *testing.T) {
	var b DualBuffer
	_ = b.PushLiteral(KeyA, false, false, CharRecord{Base: 'a'})
	_, _ = b.PushModifierTrigger(KeyS, false, false)
	b.Pop()
	if b.TransformedLen() != 0 || b.RawLen() != 0 {
		t.Fatalf("Pop should remove the literal and its trailing consumed trigger, got transformed=%d raw=%d", b.TransformedLen(), b.RawLen())
	}
}

func TestDualBufferCapacityExhaustion(t *testing.T) {
	var b DualBuffer
	for i := 0; i < maxTransformed; i++ {
		if err := b.PushLiteral(KeyA, false, false, CharRecord{Base: 'a'}); err != nil {
			t.Fatalf("unexpected error at %d: %v", i, err)
		}
	}
	if err := b.PushLiteral(KeyA, false, false, CharRecord{Base: 'a'}); err == nil {
		t.Fatalf("expected capacity error, got nil")
	}
	if b.TransformedLen() != maxTransformed {
		t.Fatalf("buffer should be unmutated on rejection, got len %d", b.TransformedLen())
	}
}

func TestDualBufferReset(t *testing.T) {
	var b DualBuffer
	_ = b.PushLiteral(KeyA, false, false, CharRecord{Base: 'a'})
	b.Reset()
	if b.TransformedLen() != 0 || b.RawLen() != 0 {
		t.Fatalf("Reset should clear both tracks")
	}
}
