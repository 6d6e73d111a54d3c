package rules

import (
	"fmt"

	"sudoku-engine/internal/core"
)

// LockedCandidates covers both directions the original source grouped under
// one technique: pointing (a digit confined to one row or column within a
// box eliminates elsewhere in that row/column) and claiming (a digit
// confined to one box within a row or column eliminates elsewhere in that
// box).
type LockedCandidates struct{}

func (LockedCandidates) Name() string         { return "Locked Candidates" }
func (LockedCandidates) Abbreviation() string { return "LC" }

func findLockedCandidates(g *core.Grid) (primary []core.CellRef, elims []core.Candidate, explanation string, ok bool) {
	if p, e, ex, ok := findPointing(g); ok {
		return p, e, ex, true
	}
	if p, e, ex, ok := findClaiming(g); ok {
		return p, e, ex, true
	}
	return nil, nil, "", false
}

// findPointing looks inside each box for a digit confined to a single row
// or column, and eliminates it from the rest of that row/column outside
// the box.
func findPointing(g *core.Grid) ([]core.CellRef, []core.Candidate, string, bool) {
	for b := 0; b < 9; b++ {
		box := core.REGS[b]
		for d := 1; d <= 9; d++ {
			var cells []int
			for _, idx := range box {
				if g.Cells[idx].Value == 0 && g.Cells[idx].Candidates.Has(d) {
					cells = append(cells, idx)
				}
			}
			if len(cells) < 2 {
				continue
			}
			if sameRow, row := allSameRow(cells); sameRow {
				if elims, ok := eliminateOutsideBox(g, core.ROWS[row], b, d); ok {
					return refsFor(cells), elims, fmt.Sprintf("%d is confined to box %d within row %d, removed elsewhere in the row", d, b+1, row+1), true
				}
			}
			if sameCol, col := allSameCol(cells); sameCol {
				if elims, ok := eliminateOutsideBox(g, core.COLS[col], b, d); ok {
					return refsFor(cells), elims, fmt.Sprintf("%d is confined to box %d within column %d, removed elsewhere in the column", d, b+1, col+1), true
				}
			}
		}
	}
	return nil, nil, "", false
}

// findClaiming looks inside each row and column for a digit confined to a
// single box, and eliminates it from the rest of that box outside the
// row/column.
func findClaiming(g *core.Grid) ([]core.CellRef, []core.Candidate, string, bool) {
	for r := 0; r < 9; r++ {
		if p, e, ex, ok := claimingInLine(g, core.ROWS[r], "row", r); ok {
			return p, e, ex, true
		}
	}
	for c := 0; c < 9; c++ {
		if p, e, ex, ok := claimingInLine(g, core.COLS[c], "column", c); ok {
			return p, e, ex, true
		}
	}
	return nil, nil, "", false
}

func claimingInLine(g *core.Grid, line [9]int, label string, index int) ([]core.CellRef, []core.Candidate, string, bool) {
	for d := 1; d <= 9; d++ {
		var cells []int
		for _, idx := range line {
			if g.Cells[idx].Value == 0 && g.Cells[idx].Candidates.Has(d) {
				cells = append(cells, idx)
			}
		}
		if len(cells) < 2 {
			continue
		}
		box := core.PositionFromIndex(cells[0]).Region()
		sameBox := true
		for _, idx := range cells {
			if core.PositionFromIndex(idx).Region() != box {
				sameBox = false
				break
			}
		}
		if !sameBox {
			continue
		}
		var elims []core.Candidate
		for _, idx := range core.REGS[box] {
			if containsInt(cells, idx) {
				continue
			}
			if g.Cells[idx].Value == 0 && g.Cells[idx].Candidates.Has(d) {
				elims = append(elims, core.Candidate{Row: core.PositionFromIndex(idx).Row, Col: core.PositionFromIndex(idx).Col, Digit: d})
			}
		}
		if len(elims) > 0 {
			return refsFor(cells), elims, fmt.Sprintf("%d is confined to %s %d within box %d, removed elsewhere in the box", d, label, index+1, box+1), true
		}
	}
	return nil, nil, "", false
}

func eliminateOutsideBox(g *core.Grid, line [9]int, box, digit int) ([]core.Candidate, bool) {
	var elims []core.Candidate
	for _, idx := range line {
		if core.PositionFromIndex(idx).Region() == box {
			continue
		}
		if g.Cells[idx].Value == 0 && g.Cells[idx].Candidates.Has(digit) {
			elims = append(elims, core.Candidate{Row: core.PositionFromIndex(idx).Row, Col: core.PositionFromIndex(idx).Col, Digit: digit})
		}
	}
	return elims, len(elims) > 0
}

func allSameRow(cells []int) (bool, int) {
	row := core.PositionFromIndex(cells[0]).Row
	for _, idx := range cells {
		if core.PositionFromIndex(idx).Row != row {
			return false, 0
		}
	}
	return true, row
}

func allSameCol(cells []int) (bool, int) {
	col := core.PositionFromIndex(cells[0]).Col
	for _, idx := range cells {
		if core.PositionFromIndex(idx).Col != col {
			return false, 0
		}
	}
	return true, col
}

func refsFor(cells []int) []core.CellRef {
	refs := make([]core.CellRef, len(cells))
	for i, idx := range cells {
		refs[i] = cellRef(idx)
	}
	return refs
}

func (r LockedCandidates) SolveAll(g *core.Grid) (bool, []core.Move, error) {
	var moves []core.Move
	for {
		primary, elims, explanation, ok := findLockedCandidates(g)
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
		moves = append(moves, *eliminationMove(r.Name(), r.Abbreviation(), explanation, primary, elims))
	}
	return len(moves) > 0, moves, nil
}

func (r LockedCandidates) Step(g *core.Grid) (bool, *core.Move, error) {
	primary, elims, explanation, ok := findLockedCandidates(g)
	if !ok {
		return false, nil, nil
	}
	changed, err := applyEliminations(g, elims)
	if err != nil || !changed {
		return false, nil, err
	}
	return true, eliminationMove(r.Name(), r.Abbreviation(), explanation, primary, elims), nil
}
