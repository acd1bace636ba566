package core

import (
	"math"
	"testing"
)

func TestFloatGridNeutralOutOfBounds(t *testing.T) {
	g := NewFloatGrid(4, 4)
	g.Set(1, 2, 0.5)
	if got := g.At(1, 2); got != 0.5 {
		t.Fatalf("At(1,2) = %v", got)
	}
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}} {
		if got := g.At(p[0], p[1]); got != 0 {
			t.Fatalf("At%v = %v, want neutral 0", p, got)
		}
	}

	g.InfiniteNeutral()
	if got := g.At(-1, -1); !math.IsInf(got, 1) {
		t.Fatalf("infinite neutral read %v", got)
	}
	// In-bounds values are untouched by the sentinel change.
	if got := g.At(1, 2); got != 0.5 {
		t.Fatalf("At(1,2) after sentinel change = %v", got)
	}

	// Out-of-bounds writes are dropped, not stored.
	g.Set(9, 9, 3)
	if got := g.At(3, 3); got != 0 {
		t.Fatalf("stray write leaked: %v", got)
	}
}

func TestByteGridIndexing(t *testing.T) {
	g := NewByteGrid(3, 2)
	cells := g.Cells()
	if len(cells) != 6 {
		t.Fatalf("expected 6 cells, got %d", len(cells))
	}
	cells[g.Index(2, 1)] = 7
	if cells[5] != 7 {
		t.Fatal("Index(2,1) should map to the last cell")
	}
	g.Clear()
	if cells[5] != 0 {
		t.Fatal("Clear left data behind")
	}
}
