package world

import (
	"math"

	"wildgrid/internal/core"
)

// waterSearchHops bounds every nearest-water search. The walk is limited by
// graph hops while the reported value is Euclidean; the two metrics are
// intentionally distinct.
const waterSearchHops = 10

// NearestOfType walks the neighbor graph outward from (x, y) for at most
// maxHops hops and returns the minimum Euclidean distance to a cell of the
// requested type, or +Inf when none is found. Out-of-bounds origins report
// +Inf rather than failing.
func (w *World) NearestOfType(x, y int, t CellType, maxHops int) float64 {
	if !w.inBounds(x, y) || maxHops < 0 {
		return math.Inf(1)
	}

	visited := make(map[[2]int]bool, (2*maxHops+1)*(2*maxHops+1))
	frontier := [][2]int{{x, y}}
	visited[[2]int{x, y}] = true

	best := math.Inf(1)
	var next [][2]int
	var buf [][2]int
	for hop := 0; hop <= maxHops; hop++ {
		for _, p := range frontier {
			if w.cellTypeAt(p[0], p[1]) == t {
				d := math.Hypot(float64(p[0]-x), float64(p[1]-y))
				if d < best {
					best = d
				}
			}
			if hop == maxHops {
				continue
			}
			buf = w.Neighbors(p[0], p[1], buf[:0])
			for _, n := range buf {
				if !visited[n] {
					visited[n] = true
					next = append(next, n)
				}
			}
		}
		if len(next) == 0 {
			break
		}
		frontier, next = next, frontier[:0]
	}
	return best
}

// buildWaterDistance precomputes the distance-to-water field the way one
// multi-source pass does: every water cell relaxes the window its hop bound
// can reach. Because the neighbor graph spans the whole grid, a hop-bounded
// walk reaches exactly the Chebyshev window of the same radius, so the field
// is result-identical to running NearestOfType per cell. The field stays
// valid for the world's lifetime; water topology never changes after
// generation.
func (w *World) buildWaterDistance() *core.FloatGrid {
	field := core.NewFloatGrid(w.size, w.size).InfiniteNeutral()
	field.Fill(math.Inf(1))

	for i := range w.cells {
		c := &w.cells[i]
		if c.Type != CellWater {
			continue
		}
		for dy := -waterSearchHops; dy <= waterSearchHops; dy++ {
			for dx := -waterSearchHops; dx <= waterSearchHops; dx++ {
				x, y := c.X+dx, c.Y+dy
				if !w.inBounds(x, y) {
					continue
				}
				d := math.Hypot(float64(dx), float64(dy))
				if d < field.At(x, y) {
					field.Set(x, y, d)
				}
			}
		}
	}
	return field
}
