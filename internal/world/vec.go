package world

import (
	"math"
	"math/rand"
)

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
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

// normalize scales (x, y) to unit length, or returns zeros for a zero vector.
func normalize(x, y float64) (float64, float64) {
	l := math.Hypot(x, y)
	if l == 0 {
		return 0, 0
	}
	return x / l, y / l
}

// stochasticStep rounds a continuous axis component into a -1/0/+1 grid
// move: the axis advances with probability equal to the component magnitude,
// in the direction of its sign.
func stochasticStep(r *rand.Rand, v float64) int {
	p := math.Abs(v)
	if p > 1 {
		p = 1
	}
	if r.Float64() >= p {
		return 0
	}
	if v < 0 {
		return -1
	}
	return 1
}
