package eye

import "testing"

func TestBlinkCycle(t *testing.T) {
	// closing duration 36000+1000, next delay 3*37000+0
	b := NewBlink(&seqRand{vals: []uint32{1000, 0}})

	if s := b.Tick(0); s != BlinkOpen {
		t.Fatalf("expected open at t=0, got %s", s)
	}
	if s := b.Tick(1); s != BlinkClosing {
		t.Fatalf("expected closing, got %s", s)
	}
	closing := b.Duration()
	if closing != 37_000 {
		t.Fatalf("closing duration %d want 37000", closing)
	}

	if s := b.Tick(1 + closing - 1); s != BlinkClosing {
		t.Fatalf("expected still closing, got %s", s)
	}
	if s := b.Tick(1 + closing); s != BlinkOpening {
		t.Fatalf("expected opening, got %s", s)
	}
	if b.Duration() != 2*closing {
		t.Fatalf("opening duration %d want exactly %d", b.Duration(), 2*closing)
	}

	openStart := 1 + closing
	if s := b.Tick(openStart + 2*closing); s != BlinkOpen {
		t.Fatalf("expected open after opening, got %s", s)
	}

	// Next blink is scheduled 3*D after the previous start.
	if s := b.Tick(1 + 3*closing); s != BlinkOpen {
		t.Fatalf("blinked before the delay elapsed")
	}
	if s := b.Tick(2 + 3*closing); s != BlinkClosing {
		t.Fatalf("expected second blink, got %s", s)
	}
}

func TestBlinkOpenness(t *testing.T) {
	b := NewBlink(constRand{})
	if got := b.Openness(0); got != OpennessFull {
		t.Fatalf("open eye openness %d", got)
	}

	b.Tick(0)
	b.Tick(1) // closing, 36000us
	if got := b.Openness(1); got != OpennessFull {
		t.Fatalf("closing start openness %d want %d", got, OpennessFull)
	}
	if got := b.Openness(1 + 18_000); got != OpennessFull-127 {
		t.Fatalf("closing midpoint openness %d", got)
	}
	if got := b.Openness(1 + 36_000); got != 1 {
		t.Fatalf("closing end openness %d", got)
	}

	b.Tick(1 + 36_000) // opening
	if got := b.Openness(1 + 36_000); got != 1 {
		t.Fatalf("opening start openness %d", got)
	}
	if got := b.Openness(1 + 36_000 + 72_000); got != OpennessFull {
		t.Fatalf("opening end openness %d", got)
	}
}

func TestBlinkZeroDurationIsComplete(t *testing.T) {
	b := &Blink{rnd: constRand{}, state: BlinkClosing, start: 10}
	if got := b.Openness(10); got != 1 {
		t.Fatalf("zero-length closing openness %d want 1", got)
	}
	if s := b.Tick(10); s != BlinkOpening {
		t.Fatalf("expected opening, got %s", s)
	}
	if s := b.Tick(10); s != BlinkOpen {
		t.Fatalf("expected open, got %s", s)
	}
}

func TestThreshold(t *testing.T) {
	if got := Threshold(ThresholdResting, OpennessFull); got != ThresholdResting {
		t.Fatalf("fully open threshold %d", got)
	}
	if got := Threshold(ThresholdResting, 1); got != ThresholdClosed {
		t.Fatalf("fully closed threshold %d", got)
	}
	prev := Threshold(ThresholdResting, 1)
	for s := uint32(2); s <= OpennessFull; s++ {
		got := Threshold(ThresholdResting, s)
		if got > prev {
			t.Fatalf("threshold increased at s=%d", s)
		}
		prev = got
	}
	if got := Threshold(ThresholdResting, 0); got != ThresholdClosed {
		t.Fatalf("clamped low openness %d", got)
	}
}

func TestBlinkStateString(t *testing.T) {
	if BlinkOpening.String() != "opening" || BlinkState(9).String() != "unknown" {
		t.Fatal("unexpected state names")
	}
}
