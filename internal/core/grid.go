package core

import "math"

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// FloatGrid stores a 2D scalar field in row-major order. Reads outside the
// bounds return the configured neutral value instead of failing, so the grid
// can back fields consulted from probabilistic code paths.
type FloatGrid struct {
	W, H    int
	Neutral float64
	data    []float64
}

// NewFloatGrid allocates a field with the given dimensions and a zero
// neutral value.
func NewFloatGrid(w, h int) *FloatGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &FloatGrid{W: w, H: h, data: make([]float64, w*h)}
}

// At returns the value at (x, y), or the neutral value out of bounds.
func (g *FloatGrid) At(x, y int) float64 {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		return g.Neutral
	}
	return g.data[y*g.W+x]
}

// Set stores v at (x, y). Out-of-bounds writes are ignored.
func (g *FloatGrid) Set(x, y int, v float64) {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		return
	}
	g.data[y*g.W+x] = v
}

// Values exposes the backing slice for bulk access.
func (g *FloatGrid) Values() []float64 { return g.data }

// Fill sets every value in the field to v.
func (g *FloatGrid) Fill(v float64) {
	for i := range g.data {
		g.data[i] = v
	}
}

// InfiniteNeutral configures the field to report +Inf out of bounds, the
// sentinel used by distance fields.
func (g *FloatGrid) InfiniteNeutral() *FloatGrid {
	g.Neutral = math.Inf(1)
	return g
}
