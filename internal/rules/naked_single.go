package rules

import (
	"fmt"

	"sudoku-engine/internal/core"
)

// NakedSingle assigns any unsolved cell left with exactly one candidate.
// Outside step mode this rarely fires on its own — Grid.AutoPromote already
// promotes singles as they appear during propagation — but it is the rule
// that does the work when auto-promotion is off, as it is in step mode, and
// it anchors the bottom of the ladder everything else restarts into.
type NakedSingle struct{}

func (NakedSingle) Name() string         { return "Naked Single" }
func (NakedSingle) Abbreviation() string { return "N1" }

func (r NakedSingle) SolveAll(g *core.Grid) (bool, []core.Move, error) {
	var moves []core.Move
	for idx := 0; idx < 81; idx++ {
		cell := &g.Cells[idx]
		if cell.Value != 0 {
			continue
		}
		digit, ok := cell.Candidates.Only()
		if !ok {
			continue
		}
		pos := core.PositionFromIndex(idx)
		if err := g.SetValuePropagating(pos, digit); err != nil {
			return len(moves) > 0, moves, err
		}
		moves = append(moves, *assignMove(r.Name(), r.Abbreviation(),
			fmt.Sprintf("%s has only %d left, so it must be %d", formatRef(idx), digit, digit),
			pos, digit))
	}
	return len(moves) > 0, moves, nil
}

func (r NakedSingle) Step(g *core.Grid) (bool, *core.Move, error) {
	for idx := 0; idx < 81; idx++ {
		cell := &g.Cells[idx]
		if cell.Value != 0 {
			continue
		}
		digit, ok := cell.Candidates.Only()
		if !ok {
			continue
		}
		pos := core.PositionFromIndex(idx)
		if err := g.SetValuePropagating(pos, digit); err != nil {
			return false, nil, err
		}
		return true, assignMove(r.Name(), r.Abbreviation(),
			fmt.Sprintf("%s has only %d left, so it must be %d", formatRef(idx), digit, digit),
			pos, digit), nil
	}
	return false, nil, nil
}
