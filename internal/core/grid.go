package core

import (
	"fmt"
	"strings"
)

// State is the grid's coarse lifecycle, mirroring the four-state machine
// the original source tracked as BoardState.
type State int

const (
	// StateConstructing is set only while Parse is still reading givens.
	StateConstructing State = iota
	// StateSolving is the steady state rules and the CLI operate in.
	StateSolving
	// StateSolved means every cell carries a value.
	StateSolved
	// StateInvalid means a parsed board's givens clash with each other.
	StateInvalid
)

// Grid is the full 9x9 board: 81 cells plus the bookkeeping the solver
// driver, the generator and the renderer all share.
type Grid struct {
	Cells             [81]Cell
	StartingCellCount int
	AutoPromote       bool
	State             State
}

// NewGrid returns an empty grid: every cell unsolved with all nine
// candidates open, auto-promotion enabled.
func NewGrid() *Grid {
	g := &Grid{AutoPromote: true, State: StateConstructing}
	for i := range g.Cells {
		g.Cells[i] = NewCell()
	}
	return g
}

// Parse reads a board from its text form: up to nine newline-separated
// rows, each up to nine characters. '0' and ' ' both denote an empty cell;
// rows shorter than nine characters are zero-padded. The literal '|' is
// stripped before scanning, so callers may use it as a visual column
// separator (e.g. between regions) without it counting toward a row's
// width. Any other rune is a parse error. A board whose givens are
// mutually inconsistent (two peers sharing a digit) returns
// ErrInconsistent rather than silently continuing.
func Parse(text string) (*Grid, error) {
	text = strings.ReplaceAll(text, "|", "")
	lines := strings.Split(text, "\n")
	if len(lines) > 9 {
		return nil, fmt.Errorf("core: %w (more than 9 rows)", ErrParseInvalid)
	}

	g := NewGrid()
	// Givens are placed without auto-promotion so the parsed grid holds
	// exactly the givens; promotion is switched back on before returning.
	g.AutoPromote = false
	count := 0
	for r := 0; r < 9; r++ {
		var line []rune
		if r < len(lines) {
			line = []rune(lines[r])
		}
		if len(line) > 9 {
			return nil, fmt.Errorf("core: %w (row %d longer than 9 columns)", ErrParseInvalid, r)
		}
		for c := 0; c < 9; c++ {
			ch := ' '
			if c < len(line) {
				ch = line[c]
			}
			if ch == ' ' || ch == '0' {
				continue
			}
			if ch < '1' || ch > '9' {
				return nil, fmt.Errorf("core: %w (row %d col %d is %q)", ErrParseInvalid, r, c, ch)
			}
			digit := int(ch - '0')
			count++
			if err := g.assignGiven(NewPosition(r, c), digit); err != nil {
				return nil, err
			}
		}
	}
	g.StartingCellCount = count
	if g.State == StateInvalid {
		return nil, fmt.Errorf("core: %w", ErrInconsistent)
	}
	g.State = StateSolving
	g.AutoPromote = true
	return g, nil
}

// assignGiven places a given digit during construction, flipping the grid
// invalid instead of panicking when it clashes with an already-placed peer.
func (g *Grid) assignGiven(pos Position, digit int) error {
	cell := &g.Cells[pos.Index()]
	if !cell.Candidates.Has(digit) {
		g.State = StateInvalid
		return nil
	}
	if err := cell.SetValue(digit); err != nil {
		g.State = StateInvalid
		return nil
	}
	cell.IsGiven = true
	return g.propagateElimination(pos)
}

// SetValuePropagating assigns value at pos and eliminates it from every
// peer, recursively promoting any peer left with a single candidate when
// AutoPromote is set. This is the one channel rules use to commit a digit;
// assigning an already-matching value is a no-op, and assigning a digit a
// solved peer already ruled out returns ErrInconsistent.
func (g *Grid) SetValuePropagating(pos Position, value int) error {
	cell := &g.Cells[pos.Index()]
	if cell.Value != 0 {
		if cell.Value != value {
			return fmt.Errorf("core: overwriting %v (has %d, assigned %d): %w", pos, cell.Value, value, ErrInconsistent)
		}
		return nil
	}
	if !cell.Candidates.Has(value) {
		return fmt.Errorf("core: %d is not a candidate at %v: %w", value, pos, ErrInconsistent)
	}
	if err := cell.SetValue(value); err != nil {
		return err
	}
	return g.propagateElimination(pos)
}

// propagateElimination removes pos's just-assigned value from every row,
// column and box peer, auto-promoting and recursing into any peer that
// collapses to a single remaining candidate.
func (g *Grid) propagateElimination(pos Position) error {
	value := g.Cells[pos.Index()].Value
	for _, group := range Groups(pos) {
		for _, idx := range group {
			if idx == pos.Index() {
				continue
			}
			changed, err := g.Cells[idx].RemoveCandidate(value)
			if err != nil {
				return err
			}
			if changed && g.AutoPromote {
				if digit, promoted := g.Cells[idx].PromoteIfSingle(); promoted {
					_ = digit
					if err := g.propagateElimination(PositionFromIndex(idx)); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

// Eliminate removes digit as a candidate at pos without promoting or
// propagating further, the channel every elimination-only rule (pairs,
// locked candidates, X-Wing) uses. A cell left with a single candidate by
// an elimination is only promoted on the solver's next pass through Naked
// Single, matching the restart-from-top fixed point.
func (g *Grid) Eliminate(pos Position, digit int) (bool, error) {
	return g.Cells[pos.Index()].RemoveCandidate(digit)
}

// Unset clears a cell back to unsolved and recomputes candidates for it and
// every peer from scratch, the one operation that can make a previously
// eliminated candidate possible again.
func (g *Grid) Unset(pos Position) {
	g.Cells[pos.Index()].Reset()
	g.forceUpdateCandidates(pos)
	for _, group := range Groups(pos) {
		for _, idx := range group {
			g.forceUpdateCandidates(PositionFromIndex(idx))
		}
	}
}

// forceUpdateCandidates recomputes a single cell's candidate set directly
// from its peers' current values, ignoring whatever candidates it carried
// before. Solved cells are left alone.
func (g *Grid) forceUpdateCandidates(pos Position) {
	idx := pos.Index()
	if g.Cells[idx].Value != 0 {
		return
	}
	cand := FullCandidates
	for _, group := range Groups(pos) {
		for _, other := range group {
			if other == idx {
				continue
			}
			if v := g.Cells[other].Value; v != 0 {
				cand = cand.Remove(v)
			}
		}
	}
	g.Cells[idx].Candidates = cand
	g.Cells[idx].IsDirty = true
}

// Copy replays every assignment of g into a fresh grid via
// SetValuePropagating rather than copying candidate bitmasks directly,
// matching the original source's Clone/copy_grid: the copy's candidates
// are derived, not duplicated. The replay runs without auto-promotion, so
// the copy holds exactly g's values; autoPromote only sets the copy's
// AutoPromote flag afterwards. When copyAnswer is set, each cell's known
// answer is carried over too (used by the generator to hand the solver a
// puzzle it can cross-check against).
func (g *Grid) Copy(copyAnswer, autoPromote bool) *Grid {
	ng := NewGrid()
	ng.AutoPromote = false
	for idx := 0; idx < 81; idx++ {
		if v := g.Cells[idx].Value; v != 0 {
			_ = ng.SetValuePropagating(PositionFromIndex(idx), v)
		}
		if copyAnswer {
			ng.Cells[idx].Answer = g.Cells[idx].Answer
		}
	}
	ng.StartingCellCount = g.StartingCellCount
	ng.AutoPromote = autoPromote
	ng.State = StateSolving
	return ng
}

// IsSolved reports whether every cell carries a value.
func (g *Grid) IsSolved() bool {
	for i := range g.Cells {
		if g.Cells[i].Value == 0 {
			return false
		}
	}
	return true
}

// IsValid reports whether the grid's givens were mutually consistent.
func (g *Grid) IsValid() bool {
	return g.State != StateInvalid
}

// PercentComplete returns the fraction of non-given cells filled in so far,
// the metric the original source's get_percent exposed and SPEC_FULL's CLI
// test mode reports when the rule ladder stalls short of a solution.
func (g *Grid) PercentComplete() float64 {
	needed := 81 - g.StartingCellCount
	if needed <= 0 {
		return 1
	}
	filled := 0
	for i := range g.Cells {
		if g.Cells[i].Value != 0 {
			filled++
		}
	}
	added := filled - g.StartingCellCount
	if added < 0 {
		added = 0
	}
	return float64(added) / float64(needed)
}

// ClearDirty resets every cell's IsDirty flag. Callers invoke it after
// rendering (the CLI's step mode does so after each step) so the next
// render only highlights what changed since.
func (g *Grid) ClearDirty() {
	for i := range g.Cells {
		g.Cells[i].IsDirty = false
	}
}

// String renders the grid's values as nine lines of nine characters, a
// digit for each solved cell and '.' for each empty one, with no separators
// (see internal/render for the Compact/Card layouts); this is the %v/%s a
// bare fmt.Print on a Grid produces in logs and test failures.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := g.Cells[NewPosition(r, c).Index()].Value
			if v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(byte('0' + v))
			}
		}
		if r < 8 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
