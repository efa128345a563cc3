package eye

import (
	"math/rand/v2"
	"time"
)

// Clock is a monotonic microsecond time source.
type Clock interface {
	Micros() uint64
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() uint64

func (f ClockFunc) Micros() uint64 { return f() }

// ManualClock is a Clock that only moves when told to. It is meant for tests
// and offline rendering.
type ManualClock struct {
	T uint64
}

func (c *ManualClock) Micros() uint64 { return c.T }

// Advance moves the clock forward by d (negative durations are ignored).
func (c *ManualClock) Advance(d time.Duration) {
	if d <= 0 {
		return
	}
	c.T += uint64(d / time.Microsecond)
}

// Rand is a uniform source of 32-bit values. *rand.Rand from math/rand/v2
// satisfies it.
type Rand interface {
	Uint32() uint32
}

// NewRand returns a deterministic PCG-backed source.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

// elapsed returns now-since, or 0 if the clock went backwards.
func elapsed(now, since uint64) uint64 {
	if now < since {
		return 0
	}
	return now - since
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
