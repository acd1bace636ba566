package world

// CellType enumerates the closed set of terrain variants. Behavior dispatches
// on the tag; there is no open subclassing.
type CellType uint8

const (
	CellDirt CellType = iota
	CellGrass
	CellWater
	CellTree
)

// String returns the human-readable name of the type.
func (t CellType) String() string {
	switch t {
	case CellDirt:
		return "Dirt"
	case CellGrass:
		return "Grass"
	case CellWater:
		return "Water"
	case CellTree:
		return "Tree"
	default:
		return "Unknown"
	}
}

// Cell is one location of the world grid. Cells live in a flat arena owned by
// the World and are mutated in place; neighbor relations are derived from
// coordinates, never stored as references.
type Cell struct {
	X, Y int
	Type CellType

	Resources float64
	Fertility float64
	Elevation float64

	// Tree-only state. HarvestedAt is a simulation timestamp and is only
	// meaningful while Harvested is set.
	GrowthStage int
	Harvested   bool
	HarvestedAt float64
}

// MaxResources reports the resource capacity of the cell. Only trees grow
// their capacity with stage; other types report their current level.
func (c *Cell) MaxResources() float64 {
	if c.Type == CellTree {
		return 20 + float64(c.GrowthStage)*5
	}
	return c.Resources
}

// makeWaterCell builds a fresh water cell for (x, y). Lakes and rivers
// replace the full cell state rather than patching fields.
func makeWaterCell(x, y int, elevation float64) Cell {
	return Cell{
		X:         x,
		Y:         y,
		Type:      CellWater,
		Resources: 100,
		Fertility: 1,
		Elevation: elevation,
	}
}
