package world

import (
	"math"

	"wildgrid/internal/core"
)

const (
	lakeSiteSamples = 20
	lakeRadiusMin   = 3
	lakeRadiusMax   = 11
)

// lakeCount is the number of lakes placed on a grid of the given size. A
// degenerate grid yields none.
func lakeCount(size int) int {
	if size <= 0 {
		return 0
	}
	return size/20 + 2
}

// placeLakes carves water bodies at low points of the elevation field. Each
// lake center is the lowest of a handful of uniform samples; the rim is
// irregular, comparing Euclidean distance against a per-coordinate fraction
// of the maximum radius.
func (w *World) placeLakes() {
	for lake := 0; lake < lakeCount(w.size); lake++ {
		cx, cy := w.lowestOfSamples(lakeSiteSamples)
		maxRadius := core.FloatRange(w.rng, lakeRadiusMin, lakeRadiusMax)

		bound := int(math.Ceil(maxRadius))
		for dy := -bound; dy <= bound; dy++ {
			for dx := -bound; dx <= bound; dx++ {
				x, y := cx+dx, cy+dy
				if !w.inBounds(x, y) {
					continue
				}
				rim := maxRadius * (0.6 + 0.4*w.rng.Float64())
				if math.Hypot(float64(dx), float64(dy)) > rim {
					continue
				}
				w.cells[w.index(x, y)] = makeWaterCell(x, y, w.elevation.At(x, y))
			}
		}
	}
}

// lowestOfSamples draws n random coordinates and keeps the one with the
// lowest elevation.
func (w *World) lowestOfSamples(n int) (int, int) {
	bestX, bestY := w.rng.Intn(w.size), w.rng.Intn(w.size)
	best := w.elevation.At(bestX, bestY)
	for i := 1; i < n; i++ {
		x, y := w.rng.Intn(w.size), w.rng.Intn(w.size)
		if h := w.elevation.At(x, y); h < best {
			best = h
			bestX, bestY = x, y
		}
	}
	return bestX, bestY
}

// highestOfSamples draws n random coordinates and keeps the one with the
// highest elevation.
func (w *World) highestOfSamples(n int) (int, int) {
	bestX, bestY := w.rng.Intn(w.size), w.rng.Intn(w.size)
	best := w.elevation.At(bestX, bestY)
	for i := 1; i < n; i++ {
		x, y := w.rng.Intn(w.size), w.rng.Intn(w.size)
		if h := w.elevation.At(x, y); h > best {
			best = h
			bestX, bestY = x, y
		}
	}
	return bestX, bestY
}
