package world

import (
	"fmt"
	"image/color"

	hsluv "github.com/hsluv/hsluv-go"
)

const (
	displayTypeMask   = 0x03
	displayStageShift = 2
	displayStageMask  = 0x0c
)

var worldPalette = buildWorldPalette()

// displayValue packs a cell into the byte consumed by the renderer: the type
// tag in the low bits and the growth stage above it.
func displayValue(c *Cell) uint8 {
	v := uint8(c.Type) & displayTypeMask
	if c.Type == CellTree {
		v |= uint8(c.GrowthStage) << displayStageShift & displayStageMask
	}
	return v
}

// Palette exposes the color palette used for rendering the world.
func (w *World) Palette() []color.RGBA {
	return worldPalette
}

func buildWorldPalette() []color.RGBA {
	palette := make([]color.RGBA, 16)
	for i := range palette {
		t := CellType(i & displayTypeMask)
		stage := (i & displayStageMask) >> displayStageShift
		palette[i] = paletteColorFor(t, stage)
	}
	return palette
}

func paletteColorFor(t CellType, stage int) color.RGBA {
	switch t {
	case CellWater:
		return hsluvRGBA(245, 75, 45)
	case CellGrass:
		return hsluvRGBA(118, 70, 62)
	case CellTree:
		// Older trees read darker.
		return hsluvRGBA(127, 78, 48-float64(stage)*6)
	case CellDirt:
		fallthrough
	default:
		return hsluvRGBA(40, 45, 38)
	}
}

func hsluvRGBA(h, s, l float64) color.RGBA {
	r, g, b := hsluv.HsluvToRGB(h, s, l)
	return color.RGBA{
		R: uint8(r*255 + 0.5),
		G: uint8(g*255 + 0.5),
		B: uint8(b*255 + 0.5),
		A: 255,
	}
}

// DescribeCell renders the debug string hosts show when probing a cell. The
// shape is part of the external contract.
func (w *World) DescribeCell(x, y int) string {
	c := w.CellAt(x, y)
	if c == nil {
		return ""
	}
	growth := ""
	if c.Type == CellTree {
		growth = fmt.Sprintf("Growth: %d", c.GrowthStage)
	}
	return fmt.Sprintf("%s (%d, %d)\n    Resources: %.1f,\n    Fertility: %.2f\n    %s\n    Water Distance: %.1f",
		c.Type, c.X, c.Y, c.Resources, c.Fertility, growth, w.WaterDistanceAt(x, y))
}
