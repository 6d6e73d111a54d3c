package rules

import (
	"testing"

	"sudoku-engine/internal/core"
)

func TestXWingEliminatesAcrossBothColumns(t *testing.T) {
	g := core.NewGrid()
	// Confine digit 9 in rows 0 and 4 to columns 2 and 6 only.
	for _, r := range []int{0, 4} {
		for c := 0; c < 9; c++ {
			if c == 2 || c == 6 {
				continue
			}
			if _, err := g.Eliminate(core.NewPosition(r, c), 9); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
	}

	crossCell := core.NewPosition(2, 2)
	if !g.Cells[crossCell.Index()].HasCandidate(9) {
		t.Fatalf("sanity check failed: expected candidate 9 present before the rule runs")
	}

	changed, moves, err := XWing{}.SolveAll(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !changed || len(moves) == 0 {
		t.Fatalf("expected X-Wing to fire")
	}
	if g.Cells[crossCell.Index()].HasCandidate(9) {
		t.Fatalf("expected 9 eliminated from column 2 outside rows 0 and 4")
	}
	if g.Cells[core.NewPosition(2, 6).Index()].HasCandidate(9) {
		t.Fatalf("expected 9 eliminated from column 6 outside rows 0 and 4")
	}
}

func TestXWingNoopWithoutAConfinedPattern(t *testing.T) {
	g := core.NewGrid()
	changed, _, err := XWing{}.SolveAll(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if changed {
		t.Fatalf("expected no X-Wing pattern on a fresh grid")
	}
}
