package world

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"wildgrid/internal/core"
)

const (
	riverStartSamples  = 30
	riverTargetWeight  = 0.6
	riverDescentWeight = 0.3
	riverMeanderStep   = 0.1
	riverFloodChance   = 0.3
	riverSpillChance   = 0.6
	tributarySearchBox = 10
)

// riverCount is the number of rivers traced on a grid of the given size.
func riverCount(size int) int {
	if size <= 0 {
		return 0
	}
	return size/30 + 1
}

// traceRivers carves rivers from high ground down to existing water bodies.
// Rivers are skipped silently when no water exists yet; generation never
// fails on a missing destination.
func (w *World) traceRivers() {
	meander := opensimplex.New(w.rng.Int63())
	for river := 0; river < riverCount(w.size); river++ {
		sx, sy := w.highestOfSamples(riverStartSamples)
		dx, dy, ok := w.nearestWaterCell(sx, sy)
		if !ok {
			continue
		}
		bend := core.FloatRange(w.rng, 0.3, 0.7)
		path := w.walkRiver(sx, sy, dx, dy, bend, meander, float64(river))
		for _, p := range path {
			w.carveRiverCell(p[0], p[1])
		}
		w.traceTributaries(path, meander, float64(river))
	}
}

// walkRiver produces the ordered path from (sx, sy) to (dx, dy). Each step
// combines a weighted vector toward the destination, the downhill elevation
// gradient and a perpendicular meander term, then rounds the result into a
// single grid step stochastically per axis. The walk stops within one cell
// of the destination or after 2·size steps; the destination coordinate is
// always the final entry.
func (w *World) walkRiver(sx, sy, dx, dy int, bend float64, meander opensimplex.Noise, channel float64) [][2]int {
	path := [][2]int{{sx, sy}}
	x, y := sx, sy
	t := 0.0
	maxSteps := 2 * w.size

	for step := 0; step < maxSteps; step++ {
		if abs(dx-x) <= 1 && abs(dy-y) <= 1 {
			break
		}

		tx, ty := normalize(float64(dx-x), float64(dy-y))
		gx, gy := gradientAt(w.elevation, x, y)
		downX, downY := normalize(-gx, -gy)
		swing := meander.Eval2(t, channel) * bend
		t += riverMeanderStep

		// Perpendicular of the destination bearing carries the meander.
		vx := riverTargetWeight*tx + riverDescentWeight*downX - ty*swing
		vy := riverTargetWeight*ty + riverDescentWeight*downY + tx*swing

		x += stochasticStep(w.rng, vx)
		y += stochasticStep(w.rng, vy)
		x = clampInt(x, 0, w.size-1)
		y = clampInt(y, 0, w.size-1)
		path = append(path, [2]int{x, y})
	}

	if x != dx || y != dy {
		path = append(path, [2]int{dx, dy})
	}
	return path
}

// traceTributaries grows secondary branches feeding the main path. Each
// starts at the highest point near a random path cell and walks back to the
// connection, carving every second step.
func (w *World) traceTributaries(path [][2]int, meander opensimplex.Noise, channel float64) {
	for trib := 0; trib < len(path)/20; trib++ {
		join := path[w.rng.Intn(len(path))]
		sx, sy := w.highestInBox(join[0], join[1], tributarySearchBox)
		bend := core.FloatRange(w.rng, 0.3, 0.7)
		branch := w.walkRiver(sx, sy, join[0], join[1], bend, meander, channel+0.5)
		for i, p := range branch {
			if i%2 != 0 {
				continue
			}
			if w.cellTypeAt(p[0], p[1]) != CellWater {
				w.cells[w.index(p[0], p[1])] = makeWaterCell(p[0], p[1], w.elevation.At(p[0], p[1]))
			}
		}
	}
}

// carveRiverCell turns a path cell into water with a chance of flooding its
// neighborhood for width variation.
func (w *World) carveRiverCell(x, y int) {
	if w.cellTypeAt(x, y) != CellWater {
		w.cells[w.index(x, y)] = makeWaterCell(x, y, w.elevation.At(x, y))
	}
	if w.rng.Float64() >= riverFloodChance {
		return
	}
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !w.inBounds(nx, ny) || w.cellTypeAt(nx, ny) == CellWater {
				continue
			}
			if w.rng.Float64() < riverSpillChance {
				w.cells[w.index(nx, ny)] = makeWaterCell(nx, ny, w.elevation.At(nx, ny))
			}
		}
	}
}

// nearestWaterCell scans the placed water cells for the one closest to
// (x, y) by Euclidean distance.
func (w *World) nearestWaterCell(x, y int) (int, int, bool) {
	best := math.Inf(1)
	bx, by := 0, 0
	found := false
	for i := range w.cells {
		c := &w.cells[i]
		if c.Type != CellWater {
			continue
		}
		d := math.Hypot(float64(c.X-x), float64(c.Y-y))
		if d < best {
			best = d
			bx, by = c.X, c.Y
			found = true
		}
	}
	return bx, by, found
}

// highestInBox returns the highest-elevation coordinate within a box of the
// given half-width around (cx, cy).
func (w *World) highestInBox(cx, cy, half int) (int, int) {
	bestX, bestY := cx, cy
	best := math.Inf(-1)
	for dy := -half; dy <= half; dy++ {
		for dx := -half; dx <= half; dx++ {
			x, y := cx+dx, cy+dy
			if !w.inBounds(x, y) {
				continue
			}
			if h := w.elevation.At(x, y); h > best {
				best = h
				bestX, bestY = x, y
			}
		}
	}
	return bestX, bestY
}

func (w *World) cellTypeAt(x, y int) CellType {
	return w.cells[w.index(x, y)].Type
}
