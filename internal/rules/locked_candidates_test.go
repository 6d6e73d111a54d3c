package rules

import (
	"testing"

	"sudoku-engine/internal/core"
)

func TestLockedCandidatesPointing(t *testing.T) {
	g := core.NewGrid()
	// Confine digit 7 within box 0 to row 0 by clearing it from the rest
	// of the box.
	for r := 1; r <= 2; r++ {
		for c := 0; c <= 2; c++ {
			if _, err := g.Eliminate(core.NewPosition(r, c), 7); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
	}

	outside := core.NewPosition(0, 5)
	changed, moves, err := LockedCandidates{}.SolveAll(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !changed || len(moves) == 0 {
		t.Fatalf("expected pointing to fire")
	}
	if g.Cells[outside.Index()].HasCandidate(7) {
		t.Fatalf("expected 7 eliminated from the rest of row 0 outside box 0")
	}
}

func TestLockedCandidatesClaiming(t *testing.T) {
	g := core.NewGrid()
	// Confine digit 8 within row 0 to box 0 by clearing it from the rest
	// of the row.
	for c := 3; c < 9; c++ {
		if _, err := g.Eliminate(core.NewPosition(0, c), 8); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	outsideRowInsideBox := core.NewPosition(1, 1)
	changed, moves, err := LockedCandidates{}.SolveAll(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !changed || len(moves) == 0 {
		t.Fatalf("expected claiming to fire")
	}
	if g.Cells[outsideRowInsideBox.Index()].HasCandidate(8) {
		t.Fatalf("expected 8 eliminated from the rest of box 0 outside row 0")
	}
}
