package rules

import (
	"fmt"

	"sudoku-engine/internal/core"
)

// HiddenPair finds two digits confined to the same two cells within a unit
// and strips every other candidate from those two cells. Per the Open
// Question in spec §9, this narrows through the same RemoveCandidates path
// Naked Pair uses rather than overwriting the mask directly — one mutation
// channel for every rule.
type HiddenPair struct{}

func (HiddenPair) Name() string         { return "Hidden Pair" }
func (HiddenPair) Abbreviation() string { return "H2" }

func findHiddenPair(g *core.Grid) (u unit, idx1, idx2, d1, d2 int, elims []core.Candidate, ok bool) {
	for _, u := range allUnits() {
		var positions [10][]int
		for _, idx := range u.cells {
			if g.Cells[idx].Value != 0 {
				continue
			}
			for d := 1; d <= 9; d++ {
				if g.Cells[idx].Candidates.Has(d) {
					positions[d] = append(positions[d], idx)
				}
			}
		}
		var twoCell []int
		for d := 1; d <= 9; d++ {
			if len(positions[d]) == 2 {
				twoCell = append(twoCell, d)
			}
		}
		for i := 0; i < len(twoCell); i++ {
			for j := i + 1; j < len(twoCell); j++ {
				d1, d2 := twoCell[i], twoCell[j]
				if positions[d1][0] != positions[d2][0] || positions[d1][1] != positions[d2][1] {
					continue
				}
				idx1, idx2 := positions[d1][0], positions[d1][1]
				var elims []core.Candidate
				for _, idx := range []int{idx1, idx2} {
					for _, d := range g.Cells[idx].Candidates.Digits() {
						if d != d1 && d != d2 {
							elims = append(elims, core.Candidate{Row: core.PositionFromIndex(idx).Row, Col: core.PositionFromIndex(idx).Col, Digit: d})
						}
					}
				}
				if len(elims) > 0 {
					return u, idx1, idx2, d1, d2, elims, true
				}
			}
		}
	}
	return unit{}, 0, 0, 0, 0, nil, false
}

func hiddenPairMove(u unit, idx1, idx2, d1, d2 int, elims []core.Candidate) *core.Move {
	primary := []core.CellRef{cellRef(idx1), cellRef(idx2)}
	return eliminationMove("Hidden Pair", "H2",
		fmt.Sprintf("%d and %d only fit at %s and %s in %s, other candidates removed there", d1, d2, formatRef(idx1), formatRef(idx2), u),
		primary, elims)
}

func (HiddenPair) SolveAll(g *core.Grid) (bool, []core.Move, error) {
	var moves []core.Move
	for {
		u, idx1, idx2, d1, d2, elims, ok := findHiddenPair(g)
		if !ok {
			break
		}
		changed, err := applyEliminations(g, elims)
		if err != nil {
			return len(moves) > 0, moves, err
		}
		if !changed {
			break
		}
		moves = append(moves, *hiddenPairMove(u, idx1, idx2, d1, d2, elims))
	}
	return len(moves) > 0, moves, nil
}

func (HiddenPair) Step(g *core.Grid) (bool, *core.Move, error) {
	u, idx1, idx2, d1, d2, elims, ok := findHiddenPair(g)
	if !ok {
		return false, nil, nil
	}
	changed, err := applyEliminations(g, elims)
	if err != nil || !changed {
		return false, nil, err
	}
	return true, hiddenPairMove(u, idx1, idx2, d1, d2, elims), nil
}
