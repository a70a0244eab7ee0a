package rolodex

// easeOutQuad maps normalized progress t in [0, 1] to 2t - t². Fast at the
// start and settling toward the end, it is the interpolation used both for
// cards absorbing into the stack and for the entry-gap taper.
func easeOutQuad(t float64) float64 {
	t = clamp01(t)
	return t * (2 - t)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
