package eye

// Smoothstep is the cubic Hermite ramp t²(3-2t) with t = (x-e0)/(e1-e0)
// clamped to [0,1]. A degenerate edge (e0 == e1) is a hard step at e0.
func Smoothstep(e0, e1, x float32) float32 {
	if e1 == e0 {
		if x < e0 {
			return 0
		}
		return 1
	}
	t := (x - e0) / (e1 - e0)
	if !(t > 0) {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}
