package rules

import (
	"fmt"

	"sudoku-engine/internal/core"
)

// nakedSubset finds k unsolved cells within a single unit whose candidates,
// taken together, span exactly k digits. Every other cell in that unit may
// have those k digits eliminated. k=2 is Naked Pair, k=3 Naked Triple, k=4
// Naked Quad — the same search generalized by the teacher's own
// Combinations helper, parameterized instead of copy-pasted per k.
func nakedSubset(g *core.Grid, k int) (u unit, cells []int, mask core.Candidates, elims []core.Candidate, ok bool) {
	for _, u := range allUnits() {
		var open []int
		for _, idx := range u.cells {
			c := g.Cells[idx].Candidates.Count()
			if g.Cells[idx].Value == 0 && c >= 2 && c <= k {
				open = append(open, idx)
			}
		}
		if len(open) < k {
			continue
		}
		for _, combo := range combinations(open, k) {
			var union core.Candidates
			for _, idx := range combo {
				union = union.Union(g.Cells[idx].Candidates)
			}
			if union.Count() != k {
				continue
			}
			var elims []core.Candidate
			for _, idx := range u.cells {
				if containsInt(combo, idx) {
					continue
				}
				for _, d := range union.Digits() {
					if g.Cells[idx].Candidates.Has(d) {
						elims = append(elims, core.Candidate{Row: core.PositionFromIndex(idx).Row, Col: core.PositionFromIndex(idx).Col, Digit: d})
					}
				}
			}
			if len(elims) > 0 {
				return u, combo, union, elims, true
			}
		}
	}
	return unit{}, nil, 0, nil, false
}

func combinations(items []int, k int) [][]int {
	var out [][]int
	var pick func(start int, cur []int)
	pick = func(start int, cur []int) {
		if len(cur) == k {
			combo := make([]int, k)
			copy(combo, cur)
			out = append(out, combo)
			return
		}
		for i := start; i <= len(items)-(k-len(cur)); i++ {
			pick(i+1, append(cur, items[i]))
		}
	}
	pick(0, nil)
	return out
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

func applyEliminations(g *core.Grid, elims []core.Candidate) (bool, error) {
	changed := false
	for _, e := range elims {
		pos := core.NewPosition(e.Row, e.Col)
		did, err := g.Eliminate(pos, e.Digit)
		if err != nil {
			return changed, err
		}
		changed = changed || did
	}
	return changed, nil
}

func nakedSubsetMove(name, abbr string, u unit, cells []int, mask core.Candidates, elims []core.Candidate) *core.Move {
	primary := make([]core.CellRef, len(cells))
	var locs string
	for i, idx := range cells {
		primary[i] = cellRef(idx)
		if i > 0 {
			locs += " and "
		}
		locs += formatRef(idx)
	}
	return eliminationMove(name, abbr,
		fmt.Sprintf("%s %s share candidates %s in %s, removed elsewhere in the unit", name, locs, mask, u),
		primary, elims)
}

// NakedPair is the k=2 naked subset rule.
type NakedPair struct{}

func (NakedPair) Name() string         { return "Naked Pair" }
func (NakedPair) Abbreviation() string { return "N2" }

func (r NakedPair) SolveAll(g *core.Grid) (bool, []core.Move, error) {
	return solveAllSubsets(g, 2, r.Name(), r.Abbreviation())
}
func (r NakedPair) Step(g *core.Grid) (bool, *core.Move, error) {
	return stepSubset(g, 2, r.Name(), r.Abbreviation())
}

// NakedTriple is the k=3 naked subset rule.
type NakedTriple struct{}

func (NakedTriple) Name() string         { return "Naked Triple" }
func (NakedTriple) Abbreviation() string { return "N3" }

func (r NakedTriple) SolveAll(g *core.Grid) (bool, []core.Move, error) {
	return solveAllSubsets(g, 3, r.Name(), r.Abbreviation())
}
func (r NakedTriple) Step(g *core.Grid) (bool, *core.Move, error) {
	return stepSubset(g, 3, r.Name(), r.Abbreviation())
}

// NakedQuad is the k=4 naked subset rule.
type NakedQuad struct{}

func (NakedQuad) Name() string         { return "Naked Quad" }
func (NakedQuad) Abbreviation() string { return "N4" }

func (r NakedQuad) SolveAll(g *core.Grid) (bool, []core.Move, error) {
	return solveAllSubsets(g, 4, r.Name(), r.Abbreviation())
}
func (r NakedQuad) Step(g *core.Grid) (bool, *core.Move, error) {
	return stepSubset(g, 4, r.Name(), r.Abbreviation())
}

func solveAllSubsets(g *core.Grid, k int, name, abbr string) (bool, []core.Move, error) {
	var moves []core.Move
	for {
		u, cells, mask, elims, ok := nakedSubset(g, k)
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
		moves = append(moves, *nakedSubsetMove(name, abbr, u, cells, mask, elims))
	}
	return len(moves) > 0, moves, nil
}

func stepSubset(g *core.Grid, k int, name, abbr string) (bool, *core.Move, error) {
	u, cells, mask, elims, ok := nakedSubset(g, k)
	if !ok {
		return false, nil, nil
	}
	changed, err := applyEliminations(g, elims)
	if err != nil || !changed {
		return false, nil, err
	}
	return true, nakedSubsetMove(name, abbr, u, cells, mask, elims), nil
}
