package world

import (
	"slices"
	"testing"
)

func testConfig(size int, seed int64) Config {
	cfg := DefaultConfig()
	cfg.Size = size
	cfg.Seed = seed
	return cfg
}

func TestGenerateRejectsBadSize(t *testing.T) {
	for _, size := range []int{0, -1, -50} {
		if _, err := Generate(testConfig(size, 1)); err == nil {
			t.Fatalf("expected error for size %d", size)
		}
	}
}

func TestGenerateCellCount(t *testing.T) {
	for _, size := range []int{1, 7, 40} {
		w, err := Generate(testConfig(size, 5))
		if err != nil {
			t.Fatalf("generate size %d: %v", size, err)
		}
		if len(w.cells) != size*size {
			t.Fatalf("size %d: expected %d cells, got %d", size, size*size, len(w.cells))
		}
		seen := make(map[[2]int]bool, len(w.cells))
		for i := range w.cells {
			c := &w.cells[i]
			if c.X < 0 || c.X >= size || c.Y < 0 || c.Y >= size {
				t.Fatalf("cell coordinate (%d, %d) out of bounds for size %d", c.X, c.Y, size)
			}
			key := [2]int{c.X, c.Y}
			if seen[key] {
				t.Fatalf("duplicate cell coordinate (%d, %d)", c.X, c.Y)
			}
			seen[key] = true
		}
	}
}

func TestWaterCellInvariants(t *testing.T) {
	w, err := Generate(testConfig(64, 11))
	if err != nil {
		t.Fatal(err)
	}
	waterCells := 0
	for i := range w.cells {
		c := &w.cells[i]
		if c.Type != CellWater {
			continue
		}
		waterCells++
		if c.Resources != 100 {
			t.Fatalf("water cell (%d, %d) has resources %v, want 100", c.X, c.Y, c.Resources)
		}
		if c.Fertility != 1 {
			t.Fatalf("water cell (%d, %d) has fertility %v, want 1", c.X, c.Y, c.Fertility)
		}
	}
	if waterCells == 0 {
		t.Fatal("a 64-cell world should place at least one lake")
	}
}

func TestResetDeterministic(t *testing.T) {
	cfg := testConfig(48, 99)
	w := NewWithConfig(cfg)
	w.Reset(0)

	initialCells := append([]Cell(nil), w.cells...)
	initialDisplay := append([]uint8(nil), w.Cells()...)
	initialDist := append([]float64(nil), w.waterDist.Values()...)

	// Mutate state to ensure Reset rebuilds from scratch.
	w.cells[0].Type = CellTree
	w.cells[1].Resources = 9999
	w.Cells()[2] = 42

	w.Reset(0)

	if !slices.Equal(initialCells, w.cells) {
		t.Fatal("Reset with config seed not deterministic for cell arena")
	}
	if !slices.Equal(initialDisplay, w.Cells()) {
		t.Fatal("Reset with config seed not deterministic for display buffer")
	}
	if !slices.Equal(initialDist, w.waterDist.Values()) {
		t.Fatal("Reset with config seed not deterministic for water-distance field")
	}

	w.Reset(777)
	seedCells := append([]Cell(nil), w.cells...)
	w.Reset(777)
	if !slices.Equal(seedCells, w.cells) {
		t.Fatal("Reset with explicit seed not deterministic")
	}
	if slices.Equal(initialCells, seedCells) {
		t.Fatal("different seeds should produce different worlds")
	}
}

func TestNeighborCounts(t *testing.T) {
	w, err := Generate(testConfig(10, 3))
	if err != nil {
		t.Fatal(err)
	}

	count := func(x, y int) int {
		return len(w.Neighbors(x, y, nil))
	}

	for _, corner := range [][2]int{{0, 0}, {9, 0}, {0, 9}, {9, 9}} {
		if got := count(corner[0], corner[1]); got != 3 {
			t.Fatalf("corner (%d, %d): expected 3 neighbors, got %d", corner[0], corner[1], got)
		}
	}
	for _, edge := range [][2]int{{4, 0}, {0, 4}, {9, 5}, {5, 9}} {
		if got := count(edge[0], edge[1]); got != 5 {
			t.Fatalf("edge (%d, %d): expected 5 neighbors, got %d", edge[0], edge[1], got)
		}
	}
	if got := count(4, 5); got != 8 {
		t.Fatalf("interior cell: expected 8 neighbors, got %d", got)
	}

	// The relation must be symmetric everywhere.
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			for _, n := range w.Neighbors(x, y, nil) {
				back := w.Neighbors(n[0], n[1], nil)
				if !slices.Contains(back, [2]int{x, y}) {
					t.Fatalf("neighbor relation not symmetric between (%d, %d) and (%d, %d)", x, y, n[0], n[1])
				}
			}
		}
	}
}

func TestStepTransitionsAreMonotone(t *testing.T) {
	w, err := Generate(testConfig(40, 21))
	if err != nil {
		t.Fatal(err)
	}

	before := make([]CellType, len(w.cells))
	for i := range w.cells {
		before[i] = w.cells[i].Type
	}

	for tick := 0; tick < 5000; tick++ {
		w.Step()
	}

	for i := range w.cells {
		after := w.cells[i].Type
		switch before[i] {
		case CellWater:
			if after != CellWater {
				t.Fatalf("water cell %d became %v", i, after)
			}
		case CellTree:
			if after != CellTree {
				t.Fatalf("tree cell %d became %v", i, after)
			}
		case CellDirt, CellGrass:
			if after != before[i] && after != CellTree {
				t.Fatalf("cell %d went %v -> %v", i, before[i], after)
			}
		}
	}
}

func TestStepAdvancesSimTime(t *testing.T) {
	w, err := Generate(testConfig(16, 8))
	if err != nil {
		t.Fatal(err)
	}
	if w.SimTime() != 0 {
		t.Fatalf("fresh world has sim time %v", w.SimTime())
	}
	w.Step()
	w.Step()
	want := 2 * w.cfg.Params.TickDelta
	if w.SimTime() != want {
		t.Fatalf("after two steps sim time is %v, want %v", w.SimTime(), want)
	}
}
