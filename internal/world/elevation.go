package world

import (
	"math"

	"wildgrid/internal/core"
)

// hashNoise maps a coordinate pair into [-1, 1] through a deterministic
// trig hash. The constants are the classic shader one-liner; the field is a
// pure function of position, independent of the world seed.
func hashNoise(a, b float64) float64 {
	v := math.Sin(a*12.9898+b*78.233) * 43758.5453
	frac := v - math.Floor(v)
	return frac*2 - 1
}

// buildElevation computes the per-coordinate height field once. Three
// octaves at falling weights give broad landmasses with local detail.
func buildElevation(size int) *core.FloatGrid {
	field := core.NewFloatGrid(size, size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			fx := float64(x)
			fy := float64(y)
			h := 0.5*hashNoise(fx/20, fy/20) +
				0.3*hashNoise(fx/10, fy/10) +
				0.2*hashNoise(fx/5, fy/5)
			field.Set(x, y, h)
		}
	}
	return field
}

// gradientAt estimates the elevation slope at (x, y) by central differences.
// Out-of-bounds samples read the field's neutral zero.
func gradientAt(field *core.FloatGrid, x, y int) (float64, float64) {
	gx := (field.At(x+1, y) - field.At(x-1, y)) / 2
	gy := (field.At(x, y+1) - field.At(x, y-1)) / 2
	return gx, gy
}
