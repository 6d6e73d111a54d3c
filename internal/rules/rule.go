// Package rules implements the ranked eight-rule deduction ladder: Naked
// Single, Hidden Single, Naked Pair, Hidden Pair, Naked Triple, Naked Quad,
// Locked Candidates and X-Wing, in that order of difficulty.
//
// Each rule is a small value implementing Rule rather than the function-
// pointer record the source used (three free functions bundled into a
// struct per technique). SolveAll and Step both take a *core.Grid directly;
// there is no abstract board interface here, since this ladder is fixed to
// a 9x9 grid and never needs to generalize to other sizes.
package rules

import "sudoku-engine/internal/core"

// Rule is one technique in the ladder.
type Rule interface {
	// Name is the human-readable technique name, e.g. "Naked Pair".
	Name() string
	// Abbreviation is the two-letter code used in rule-filter strings and
	// in Move.Refs.Slug, e.g. "N2".
	Abbreviation() string
	// SolveAll applies instances of this rule to g, rescanning from the
	// start after each one until no further instance changes the grid
	// (Naked Single makes a single pass over the cells instead), returning
	// every move it made. It reports whether anything changed.
	SolveAll(g *core.Grid) (bool, []core.Move, error)
	// Step applies only the first instance of this rule found in g and
	// returns its Move, or (false, nil, nil) if none is found.
	Step(g *core.Grid) (bool, *core.Move, error)
}

// eliminationMove builds the core.Move for an elimination-only rule: no new
// value assigned, just candidates removed from a set of target cells.
func eliminationMove(name, abbr, explanation string, primary []core.CellRef, elims []core.Candidate) *core.Move {
	return &core.Move{
		Rule:         name,
		Action:       "eliminate",
		Eliminations: elims,
		Explanation:  explanation,
		Refs:         core.TechniqueRef{Title: name, Slug: abbr},
		Highlights:   core.Highlights{Primary: primary},
	}
}

// assignMove builds the core.Move for a rule that placed a digit.
func assignMove(name, abbr, explanation string, pos core.Position, digit int) *core.Move {
	ref := core.CellRef{Row: pos.Row, Col: pos.Col}
	return &core.Move{
		Rule:        name,
		Action:      "assign",
		Digit:       digit,
		Targets:     []core.CellRef{ref},
		Explanation: explanation,
		Refs:        core.TechniqueRef{Title: name, Slug: abbr},
		Highlights:  core.Highlights{Primary: []core.CellRef{ref}},
	}
}

func cellRef(idx int) core.CellRef {
	p := core.PositionFromIndex(idx)
	return core.CellRef{Row: p.Row, Col: p.Col}
}

func formatRef(idx int) string {
	p := core.PositionFromIndex(idx)
	return formatRC(p.Row, p.Col)
}

func formatRC(row, col int) string {
	const digits = "123456789"
	return "R" + string(digits[row]) + "C" + string(digits[col])
}
