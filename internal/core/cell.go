package core

import "fmt"

// Cell holds one square of the grid: its remaining candidates while
// unsolved, its assigned value once solved, and the bookkeeping flags the
// renderer and the solver driver rely on.
//
// Invariants (see spec §3.1):
//  1. Value == 0 and Candidates != 0, or Value != 0 and Candidates == 0 —
//     a cell is either unsolved with at least one candidate, or solved with
//     none; the two states never overlap.
//  2. IsGiven is only ever set on construction; no mutation clears it.
//  3. If Answer != 0 and Value == 0, Candidates must still contain Answer —
//     eliminating the known answer as a candidate means a rule miscomputed.
//  4. IsDirty marks a cell changed since the last Grid.ClearDirty; the
//     solver never clears it.
type Cell struct {
	Candidates Candidates
	Value      int
	Answer     int
	IsGiven    bool
	IsDirty    bool
}

// NewCell returns an unsolved cell with every digit still a candidate.
func NewCell() Cell {
	return Cell{Candidates: FullCandidates}
}

// IsSolved reports whether this cell has an assigned value.
func (c Cell) IsSolved() bool {
	return c.Value != 0
}

// HasCandidate reports whether digit is still possible in this cell. It is
// only meaningful while the cell is unsolved.
func (c Cell) HasCandidate(digit int) bool {
	if c.Value != 0 {
		return false
	}
	return c.Candidates.Has(digit)
}

// checkAnswerConsistency enforces invariant 3: if the cell's known answer
// has just been eliminated as a candidate while still unsolved, the caller
// made a mistake upstream — a rule eliminated the one digit that must
// survive.
func (c Cell) checkAnswerConsistency() error {
	if c.Answer == 0 || c.Value != 0 {
		return nil
	}
	if !c.Candidates.Has(c.Answer) {
		return fmt.Errorf("cell: %w (answer %d no longer a candidate)", ErrInconsistent, c.Answer)
	}
	return nil
}

// RemoveCandidate clears digit from the candidate set. It reports whether
// anything changed and returns ErrInconsistent if doing so would eliminate
// the cell's known answer.
func (c *Cell) RemoveCandidate(digit int) (bool, error) {
	return c.RemoveCandidates(NewCandidates(digit))
}

// RemoveCandidates clears every digit in mask from the candidate set. This
// is the single mutation channel every rule elimination and Hidden Pair's
// "keep only these two" narrowing both funnel through (spec §9 Open
// Question on H2).
func (c *Cell) RemoveCandidates(mask Candidates) (bool, error) {
	if c.Value != 0 {
		return false, nil
	}
	if c.Candidates&mask == 0 {
		return false, nil
	}
	c.Candidates = c.Candidates.RemoveAll(mask)
	c.IsDirty = true
	if err := c.checkAnswerConsistency(); err != nil {
		return true, err
	}
	return true, nil
}

// PromoteIfSingle assigns the cell's value when exactly one candidate
// remains, the bookkeeping the original source calls auto_promote. It
// reports the promoted digit alongside whether a promotion happened.
func (c *Cell) PromoteIfSingle() (int, bool) {
	if c.Value != 0 {
		return 0, false
	}
	digit, ok := c.Candidates.Only()
	if !ok {
		return 0, false
	}
	if err := c.SetValue(digit); err != nil {
		return digit, false
	}
	return digit, true
}

// SetValue assigns value to the cell, clearing its candidates. It returns
// ErrAnswerMismatch if the cell has a known answer that disagrees —
// callers that track answers (generator-produced puzzles, test fixtures)
// use this to catch a rule deriving the wrong digit.
func (c *Cell) SetValue(value int) error {
	if c.Answer != 0 && value != c.Answer {
		return fmt.Errorf("cell: assigned %d, want %d: %w", value, c.Answer, ErrAnswerMismatch)
	}
	c.Value = value
	c.Candidates = 0
	c.IsDirty = true
	return nil
}

// Reset restores the cell to a fresh unsolved state with every candidate
// open, used by Grid.Unset before candidates are recomputed from peers.
func (c *Cell) Reset() {
	c.Value = 0
	c.Candidates = FullCandidates
	c.IsDirty = true
}
