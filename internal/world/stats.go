package world

// Census tallies the grid by cell type.
type Census struct {
	Dirt  int
	Grass int
	Water int
	Tree  int
	Total int
}

// Percent returns n as a percentage of the census total.
func (c Census) Percent(n int) float64 {
	if c.Total == 0 {
		return 0
	}
	return float64(n) / float64(c.Total) * 100
}

// CountByType walks the grid once and tallies every cell.
func (w *World) CountByType() Census {
	census := Census{Total: len(w.cells)}
	for i := range w.cells {
		switch w.cells[i].Type {
		case CellDirt:
			census.Dirt++
		case CellGrass:
			census.Grass++
		case CellWater:
			census.Water++
		case CellTree:
			census.Tree++
		}
	}
	return census
}

// harvestable reports whether a cell currently yields resources: water
// always does, trees only while stocked.
func harvestable(c *Cell) bool {
	switch c.Type {
	case CellWater:
		return true
	case CellTree:
		return c.Resources > 0
	default:
		return false
	}
}

// ResourceDensity builds a heat map of local harvestable-resource density.
// Each value is the fraction of cells within the radius window that yield
// resources, in [0, 1].
func (w *World) ResourceDensity(radius int) []float64 {
	if radius < 0 {
		radius = 0
	}
	out := make([]float64, len(w.cells))
	for y := 0; y < w.size; y++ {
		for x := 0; x < w.size; x++ {
			total := 0
			stocked := 0
			for dy := -radius; dy <= radius; dy++ {
				for dx := -radius; dx <= radius; dx++ {
					nx, ny := x+dx, y+dy
					if !w.inBounds(nx, ny) {
						continue
					}
					total++
					if harvestable(&w.cells[w.index(nx, ny)]) {
						stocked++
					}
				}
			}
			if total > 0 {
				out[w.index(x, y)] = float64(stocked) / float64(total)
			}
		}
	}
	return out
}
