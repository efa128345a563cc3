package eye

import "testing"

func TestEaseEndpointsAndMonotonic(t *testing.T) {
	if Ease[0] != 0 || Ease[255] != 255 {
		t.Fatalf("unexpected endpoints: %d, %d", Ease[0], Ease[255])
	}
	for i := 1; i < len(Ease); i++ {
		if Ease[i] < Ease[i-1] {
			t.Fatalf("ease decreases at %d: %d < %d", i, Ease[i], Ease[i-1])
		}
	}
}

func TestEaseAtClamps(t *testing.T) {
	if got := EaseAt(-5); got != 0 {
		t.Fatalf("EaseAt(-5)=%d", got)
	}
	if got := EaseAt(1000); got != 255 {
		t.Fatalf("EaseAt(1000)=%d", got)
	}
	if got := EaseAt(128); got != Ease[128] {
		t.Fatalf("EaseAt(128)=%d want %d", got, Ease[128])
	}
}
