package eye

// BlinkState is the phase of a blink.
type BlinkState uint8

const (
	BlinkOpen BlinkState = iota
	BlinkClosing
	BlinkOpening
)

func (s BlinkState) String() string {
	switch s {
	case BlinkOpen:
		return "open"
	case BlinkClosing:
		return "closing"
	case BlinkOpening:
		return "opening"
	default:
		return "unknown"
	}
}

const (
	// ThresholdResting is the eyelid threshold of an open eye.
	ThresholdResting = 128
	// ThresholdClosed is the eyelid threshold of a fully closed eye.
	ThresholdClosed = 254
	// OpennessFull is the Openness of an eye that is not blinking.
	OpennessFull = 256

	blinkMinMicros       = 36_000
	blinkJitterMicros    = 36_000
	blinkGapJitterMicros = 4_000_000
)

// Blink is the blink timer of one eye.
type Blink struct {
	rnd Rand

	state    BlinkState
	start    uint64
	duration uint64

	last      uint64
	nextDelay uint64
}

// NewBlink returns an open eye whose first blink starts on the first Tick after
// time 0.
func NewBlink(rnd Rand) *Blink {
	return &Blink{rnd: rnd}
}

func (b *Blink) State() BlinkState { return b.state }

// Duration returns the length of the current closing or opening phase in
// microseconds.
func (b *Blink) Duration() uint64 { return b.duration }

// Tick advances the state machine to now.
func (b *Blink) Tick(now uint64) BlinkState {
	switch b.state {
	case BlinkClosing, BlinkOpening:
		if elapsed(now, b.start) < b.duration {
			break
		}
		if b.state == BlinkClosing {
			b.state = BlinkOpening
			b.duration *= 2
			b.start = now
		} else {
			b.state = BlinkOpen
		}
		Logger().Debug("blink", "state", b.state.String(), "duration_us", b.duration)
	default:
		if elapsed(now, b.last) <= b.nextDelay {
			break
		}
		b.state = BlinkClosing
		b.start = now
		b.duration = blinkMinMicros + uint64(b.rnd.Uint32()%blinkJitterMicros)
		b.last = now
		b.nextDelay = b.duration*3 + uint64(b.rnd.Uint32()%blinkGapJitterMicros)
		Logger().Debug("blink", "state", b.state.String(), "duration_us", b.duration, "next_us", b.nextDelay)
	}
	return b.state
}

// Openness returns the blend factor s in [1, OpennessFull]: OpennessFull when the
// eye is open, falling to 1 while closing and rising back while opening.
// A zero-length phase counts as complete.
func (b *Blink) Openness(now uint64) uint32 {
	if b.state == BlinkOpen {
		return OpennessFull
	}
	p := uint64(255)
	if el := elapsed(now, b.start); b.duration > 0 && el < b.duration {
		p = 255 * el / b.duration
	}
	if b.state == BlinkOpening {
		return uint32(1 + p)
	}
	return uint32(OpennessFull - p)
}

// Threshold mixes a resting eyelid threshold towards ThresholdClosed by the
// openness s.
func Threshold(resting uint8, s uint32) uint8 {
	if s < 1 {
		s = 1
	}
	if s > OpennessFull {
		s = OpennessFull
	}
	return uint8((uint32(resting)*s + ThresholdClosed*(257-s)) / 256)
}
