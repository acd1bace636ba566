package world

import (
	"math"
	"math/rand"

	"wildgrid/internal/core"
)

// World owns the cell arena, the elevation field and the cached
// water-distance field. Generation runs to completion inside Reset before
// any tick or query touches the grid; afterwards only Step and Harvest
// mutate cells, one cell at a time.
type World struct {
	cfg  Config
	size int

	cells     []Cell
	elevation *core.FloatGrid
	waterDist *core.FloatGrid
	display   *core.ByteGrid

	rng     *rand.Rand
	simTime float64
}

// Generate builds a finished world for the provided configuration. It is the
// single entry point for hosts and fails fast on bad configuration before
// any generation state exists.
func Generate(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w := NewWithConfig(cfg)
	w.Reset(cfg.Seed)
	return w, nil
}

// NewWithConfig allocates an ungenerated world. Reset must run before the
// grid is usable; most callers want Generate instead.
func NewWithConfig(cfg Config) *World {
	size := cfg.Size
	if size < 0 {
		size = 0
	}
	total := size * size
	return &World{
		cfg:     cfg,
		size:    size,
		cells:   make([]Cell, total),
		display: core.NewByteGrid(size, size),
		rng:     core.NewRand(cfg.Seed),
	}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "terra" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.size, H: w.size} }

// Cells exposes the display buffer for the renderer boundary.
func (w *World) Cells() []uint8 { return w.display.Cells() }

// SimTime reports the accumulated simulation time.
func (w *World) SimTime() float64 { return w.simTime }

// Reset regenerates the world deterministically from the seed. A zero seed
// falls back to the configured one. Phases run strictly in order: elevation,
// lakes, rivers, the cached water-distance field, tree seeding, grass
// patches. Later phases observe earlier placements.
func (w *World) Reset(seed int64) {
	if w.size == 0 {
		return
	}
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng = core.NewRand(effective)
	w.simTime = 0

	w.elevation = buildElevation(w.size)
	for y := 0; y < w.size; y++ {
		for x := 0; x < w.size; x++ {
			w.cells[w.index(x, y)] = Cell{
				X:         x,
				Y:         y,
				Type:      CellDirt,
				Fertility: core.FloatRange(w.rng, 0.7, 1.2),
				Elevation: w.elevation.At(x, y),
			}
		}
	}

	w.placeLakes()
	w.traceRivers()
	w.waterDist = w.buildWaterDistance()
	w.seedTrees()
	w.seedGrassPatches()
	w.refreshDisplay()
}

// Step advances simulation time by one tick and updates a bounded random
// sample of cells. Per-tick cost stays independent of grid size; coverage is
// eventual rather than uniform.
func (w *World) Step() {
	if len(w.cells) == 0 {
		return
	}
	dt := w.cfg.Params.TickDelta
	w.simTime += dt
	buf := w.display.Cells()
	for i := 0; i < w.cfg.Params.TickSample; i++ {
		idx := w.rng.Intn(len(w.cells))
		w.updateCell(&w.cells[idx], dt)
		buf[idx] = displayValue(&w.cells[idx])
	}
}

func (w *World) index(x, y int) int { return y*w.size + x }

func (w *World) inBounds(x, y int) bool {
	return x >= 0 && x < w.size && y >= 0 && y < w.size
}

// CellAt returns the cell at (x, y), or nil out of bounds.
func (w *World) CellAt(x, y int) *Cell {
	if !w.inBounds(x, y) {
		return nil
	}
	return &w.cells[w.index(x, y)]
}

// ElevationAt reads the height field, zero out of bounds.
func (w *World) ElevationAt(x, y int) float64 {
	if w.elevation == nil {
		return 0
	}
	return w.elevation.At(x, y)
}

// WaterDistanceAt reads the cached distance-to-water field, +Inf out of
// bounds or when no water lies within the search bound.
func (w *World) WaterDistanceAt(x, y int) float64 {
	if w.waterDist == nil {
		return math.Inf(1)
	}
	return w.waterDist.At(x, y)
}

// Neighbors appends the up-to-8 in-bounds neighbor coordinates of (x, y) to
// buf and returns it. Corner cells yield 3, edge cells 5, interior cells 8.
func (w *World) Neighbors(x, y int, buf [][2]int) [][2]int {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if w.inBounds(nx, ny) {
				buf = append(buf, [2]int{nx, ny})
			}
		}
	}
	return buf
}

func (w *World) refreshDisplay() {
	buf := w.display.Cells()
	for i := range w.cells {
		buf[i] = displayValue(&w.cells[i])
	}
}

var _ core.Sim = (*World)(nil)
