package world

import "wildgrid/internal/core"

// regrowthDelay is the simulation time a harvested tree waits before its
// resources regenerate, in the same units as Params.TickDelta.
const regrowthDelay = 5000

// updateCell applies one lifecycle step to a single cell. Dispatch is a
// closed switch over the type tag.
func (w *World) updateCell(c *Cell, dt float64) {
	switch c.Type {
	case CellWater:
		// Reserved for future flow mechanics.
	case CellTree:
		w.regrowTree(c)
	case CellDirt, CellGrass:
		w.maybeTransform(c, dt)
	}
}

// regrowTree restores harvested resources once the regrowth delay has
// passed. A tree that was never harvested is always eligible.
func (w *World) regrowTree(c *Cell) {
	if c.Harvested && w.simTime-c.HarvestedAt <= regrowthDelay {
		return
	}
	max := c.MaxResources()
	if c.Resources >= max {
		return
	}
	c.Resources += c.Fertility * 0.1
	if c.Resources > max {
		c.Resources = max
	}
}

// maybeTransform rolls a dirt or grass cell's chance of sprouting a tree
// this tick. The rate is banded by distance to water and scaled by elapsed
// time. Transitions are one-directional; nothing ever reverts.
func (w *World) maybeTransform(c *Cell, dt float64) {
	rate := transformRate(w.waterDist.At(c.X, c.Y))
	if rate == 0 || w.rng.Float64() >= rate*dt {
		return
	}
	c.Type = CellTree
	c.Resources = float64(core.IntRange(w.rng, 2, 7))
	c.GrowthStage = 0
	c.Fertility *= 1.1
}

// Harvest extracts up to amount resources from the cell at (x, y) and
// returns what was taken. Water is an inexhaustible source and never
// depletes; trees deduct and record the harvest time; everything else
// yields nothing.
func (w *World) Harvest(x, y int, amount float64) float64 {
	c := w.CellAt(x, y)
	if c == nil || amount <= 0 {
		return 0
	}
	switch c.Type {
	case CellWater:
		if amount < c.Resources {
			return amount
		}
		return c.Resources
	case CellTree:
		if c.Resources <= 0 {
			return 0
		}
		taken := amount
		if taken > c.Resources {
			taken = c.Resources
		}
		c.Resources -= taken
		c.Harvested = true
		c.HarvestedAt = w.simTime
		w.display.Cells()[w.index(x, y)] = displayValue(c)
		return taken
	default:
		return 0
	}
}
