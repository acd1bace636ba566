package world

import (
	"math"

	"wildgrid/internal/core"
)

// seedChance maps distance-to-water to the probability that a dirt cell
// sprouts a tree at generation time. The grove band sits just off the
// shoreline; unreachable cells still get a sparse scattering.
func seedChance(dist float64) float64 {
	switch {
	case math.IsInf(dist, 1):
		return 0.05
	case dist < 1:
		return 0.10
	case dist < 3:
		return 0.40
	case dist < 6:
		return 0.20
	default:
		return 0.08
	}
}

// transformRate maps distance-to-water to the per-time-unit probability that
// a dirt or grass cell turns into a tree during ticking.
func transformRate(dist float64) float64 {
	switch {
	case math.IsInf(dist, 1):
		return 0
	case dist < 1:
		return 0.0005
	case dist < 3:
		return 0.002
	case dist < 6:
		return 0.001
	default:
		return 0.0002
	}
}

// seedTrees converts dirt cells into trees with a probability banded by the
// cached distance to water. Runs after all water is placed.
func (w *World) seedTrees() {
	for i := range w.cells {
		c := &w.cells[i]
		if c.Type != CellDirt {
			continue
		}
		if w.rng.Float64() >= seedChance(w.waterDist.At(c.X, c.Y)) {
			continue
		}
		c.Type = CellTree
		c.Resources = float64(core.IntRange(w.rng, 5, 15))
		c.GrowthStage = w.rng.Intn(4)
		c.Fertility *= 1.2
	}
}

// seedGrassPatches scatters irregular grass patches over the remaining dirt.
// Patches never overwrite water or trees.
func (w *World) seedGrassPatches() {
	p := w.cfg.Params
	if p.GrassPatchCount <= 0 {
		return
	}
	minR := p.GrassPatchRadiusMin
	maxR := p.GrassPatchRadiusMax
	if minR < 0 {
		minR = 0
	}
	if maxR < minR {
		maxR = minR
	}
	den := p.GrassPatchDensity
	if den <= 0 {
		den = 1
	}
	for patch := 0; patch < p.GrassPatchCount; patch++ {
		cx := w.rng.Intn(w.size)
		cy := w.rng.Intn(w.size)
		radius := minR
		if maxR > minR {
			radius += w.rng.Intn(maxR - minR + 1)
		}
		r2 := radius * radius
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				x, y := cx+dx, cy+dy
				if !w.inBounds(x, y) || dx*dx+dy*dy > r2 {
					continue
				}
				if w.rng.Float64() > den {
					continue
				}
				if c := &w.cells[w.index(x, y)]; c.Type == CellDirt {
					c.Type = CellGrass
				}
			}
		}
	}
}
