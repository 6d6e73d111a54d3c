package rules

import (
	"fmt"

	"sudoku-engine/internal/core"
)

// HiddenSingle assigns a digit that has exactly one possible cell left
// within some row, column or box, even though that cell may still carry
// other candidates.
type HiddenSingle struct{}

func (HiddenSingle) Name() string         { return "Hidden Single" }
func (HiddenSingle) Abbreviation() string { return "H1" }

// findHiddenSingle scans every unit for a digit confined to one cell and
// returns its cell index and digit, or ok=false if the whole board has none.
func findHiddenSingle(g *core.Grid) (idx, digit int, u unit, ok bool) {
	for _, u := range allUnits() {
		var positions [10]int
		var counts [10]int
		for _, cell := range u.cells {
			if g.Cells[cell].Value != 0 {
				continue
			}
			for d := 1; d <= 9; d++ {
				if g.Cells[cell].Candidates.Has(d) {
					counts[d]++
					positions[d] = cell
				}
			}
		}
		for d := 1; d <= 9; d++ {
			if counts[d] == 1 {
				return positions[d], d, u, true
			}
		}
	}
	return 0, 0, unit{}, false
}

func (r HiddenSingle) SolveAll(g *core.Grid) (bool, []core.Move, error) {
	var moves []core.Move
	for {
		idx, digit, u, ok := findHiddenSingle(g)
		if !ok {
			break
		}
		pos := core.PositionFromIndex(idx)
		if err := g.SetValuePropagating(pos, digit); err != nil {
			return len(moves) > 0, moves, err
		}
		moves = append(moves, *assignMove(r.Name(), r.Abbreviation(),
			fmt.Sprintf("%d only fits at %s within %s", digit, formatRef(idx), u),
			pos, digit))
	}
	return len(moves) > 0, moves, nil
}

func (r HiddenSingle) Step(g *core.Grid) (bool, *core.Move, error) {
	idx, digit, u, ok := findHiddenSingle(g)
	if !ok {
		return false, nil, nil
	}
	pos := core.PositionFromIndex(idx)
	if err := g.SetValuePropagating(pos, digit); err != nil {
		return false, nil, err
	}
	return true, assignMove(r.Name(), r.Abbreviation(),
		fmt.Sprintf("%d only fits at %s within %s", digit, formatRef(idx), u),
		pos, digit), nil
}
