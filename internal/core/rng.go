package core

import "math/rand"

// NewRand creates a deterministic rand source from the provided seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// FloatRange draws a uniform value in [min, max).
func FloatRange(r *rand.Rand, min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + r.Float64()*(max-min)
}

// IntRange draws a uniform integer in [min, max).
func IntRange(r *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + r.Intn(max-min)
}
