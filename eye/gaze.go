package eye

// GazeMax is the largest normalized gaze coordinate.
const GazeMax = 1023

const (
	gazeStart         = 512
	gazeCenter        = 511
	dwellMaxMicros    = 3_000_000
	moveMinMicros     = 72_000
	moveJitterMicros  = 72_000
	maxTargetAttempts = 32
)

// Gaze moves a normalized eye position between random targets.
//
// It alternates between dwelling on the last target and easing towards a new one.
// Targets are drawn uniformly from the disk inscribed in [0,GazeMax]² by rejection
// sampling, which keeps the areal density flat instead of crowding the centre.
type Gaze struct {
	rnd Rand

	moving   bool
	start    uint64
	duration uint64

	oldX, oldY int
	newX, newY int
	x, y       int
}

// NewGaze returns a controller dwelling at the centre. The first move starts on
// the first Tick later than time 0.
func NewGaze(rnd Rand) *Gaze {
	return &Gaze{
		rnd:  rnd,
		oldX: gazeStart, oldY: gazeStart,
		newX: gazeStart, newY: gazeStart,
		x: gazeStart, y: gazeStart,
	}
}

// Moving reports whether the controller is between targets.
func (g *Gaze) Moving() bool { return g.moving }

// Position returns the position computed by the last Tick.
func (g *Gaze) Position() (x, y int) { return g.x, g.y }

// Target returns the current (or last reached) target.
func (g *Gaze) Target() (x, y int) { return g.newX, g.newY }

// Duration returns the length of the current dwell or move in microseconds.
func (g *Gaze) Duration() uint64 { return g.duration }

// Tick advances the controller to now and returns the normalized position.
func (g *Gaze) Tick(now uint64) (x, y int) {
	dt := elapsed(now, g.start)

	if g.moving {
		if dt >= g.duration {
			g.moving = false
			g.duration = uint64(g.rnd.Uint32() % dwellMaxMicros)
			g.start = now
			g.oldX, g.oldY = g.newX, g.newY
			g.x, g.y = g.newX, g.newY
			Logger().Debug("gaze dwell", "x", g.x, "y", g.y, "duration_us", g.duration)
			return g.x, g.y
		}
		e := int(Ease[255*dt/g.duration])
		g.x = g.oldX + (g.newX-g.oldX)*e/256
		g.y = g.oldY + (g.newY-g.oldY)*e/256
		return g.x, g.y
	}

	g.x, g.y = g.oldX, g.oldY
	if dt > g.duration {
		g.newX, g.newY = g.pickTarget()
		g.duration = moveMinMicros + uint64(g.rnd.Uint32()%moveJitterMicros)
		g.start = now
		g.moving = true
		Logger().Debug("gaze move", "x", g.newX, "y", g.newY, "duration_us", g.duration)
	}
	return g.x, g.y
}

func (g *Gaze) pickTarget() (x, y int) {
	for i := 0; i < maxTargetAttempts; i++ {
		x = int(g.rnd.Uint32() % (GazeMax + 1))
		y = int(g.rnd.Uint32() % (GazeMax + 1))
		dx := x*2 - GazeMax
		dy := y*2 - GazeMax
		if dx*dx+dy*dy <= GazeMax*GazeMax {
			return x, y
		}
	}
	return gazeCenter, gazeCenter
}

// PixelOffset maps a normalized coordinate onto [0, span] and clamps it.
func PixelOffset(n, span int) int {
	if span <= 0 {
		return 0
	}
	return clampInt(n*span/GazeMax, 0, span)
}
