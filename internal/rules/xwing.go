package rules

import (
	"fmt"

	"sudoku-engine/internal/core"
)

// XWing finds a digit confined to exactly the same two columns (or rows) in
// two rows (or columns), and eliminates it from the rest of those columns
// (or rows). It is the hardest rule in the ladder, tried last.
type XWing struct{}

func (XWing) Name() string         { return "X-Wing" }
func (XWing) Abbreviation() string { return "XW" }

func findXWing(g *core.Grid) ([]core.CellRef, []core.Candidate, string, bool) {
	if p, e, ex, ok := xwingOriented(g, core.ROWS, core.COLS, "row", "column"); ok {
		return p, e, ex, true
	}
	if p, e, ex, ok := xwingOriented(g, core.COLS, core.ROWS, "column", "row"); ok {
		return p, e, ex, true
	}
	return nil, nil, "", false
}

// xwingOriented searches lines (rows, or columns) for a digit that appears
// in exactly two cross-lines within two different lines, and eliminates it
// from the rest of those cross-lines. crossOf maps a cell index to its
// position within the cross-line axis (column index when lines are rows).
func xwingOriented(g *core.Grid, lines, crossLines [9][9]int, lineLabel, crossLabel string) ([]core.CellRef, []core.Candidate, string, bool) {
	for d := 1; d <= 9; d++ {
		var positions [9][]int // positions[line] = cross-line indices carrying d
		for li := 0; li < 9; li++ {
			for _, idx := range lines[li] {
				if g.Cells[idx].Value == 0 && g.Cells[idx].Candidates.Has(d) {
					positions[li] = append(positions[li], crossIndex(idx, lineLabel))
				}
			}
		}
		for l1 := 0; l1 < 9; l1++ {
			if len(positions[l1]) != 2 {
				continue
			}
			for l2 := l1 + 1; l2 < 9; l2++ {
				if len(positions[l2]) != 2 {
					continue
				}
				if positions[l1][0] != positions[l2][0] || positions[l1][1] != positions[l2][1] {
					continue
				}
				cross1, cross2 := positions[l1][0], positions[l1][1]
				var elims []core.Candidate
				var primary []core.CellRef
				for _, crossIdx := range []int{cross1, cross2} {
					for _, idx := range crossLines[crossIdx] {
						p := core.PositionFromIndex(idx)
						onLine := (lineLabel == "row" && (p.Row == l1 || p.Row == l2)) || (lineLabel == "column" && (p.Col == l1 || p.Col == l2))
						if onLine {
							primary = append(primary, cellRef(idx))
							continue
						}
						if g.Cells[idx].Value == 0 && g.Cells[idx].Candidates.Has(d) {
							elims = append(elims, core.Candidate{Row: p.Row, Col: p.Col, Digit: d})
						}
					}
				}
				if len(elims) > 0 {
					explanation := fmt.Sprintf("%d forms an X-Wing across %ss %d and %d at %ss %d and %d, removed elsewhere in those %ss",
						d, lineLabel, l1+1, l2+1, crossLabel, cross1+1, cross2+1, crossLabel)
					return primary, elims, explanation, true
				}
			}
		}
	}
	return nil, nil, "", false
}

func crossIndex(idx int, lineLabel string) int {
	p := core.PositionFromIndex(idx)
	if lineLabel == "row" {
		return p.Col
	}
	return p.Row
}

func (r XWing) SolveAll(g *core.Grid) (bool, []core.Move, error) {
	var moves []core.Move
	for {
		primary, elims, explanation, ok := findXWing(g)
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

func (r XWing) Step(g *core.Grid) (bool, *core.Move, error) {
	primary, elims, explanation, ok := findXWing(g)
	if !ok {
		return false, nil, nil
	}
	changed, err := applyEliminations(g, elims)
	if err != nil || !changed {
		return false, nil, err
	}
	return true, eliminationMove(r.Name(), r.Abbreviation(), explanation, primary, elims), nil
}
