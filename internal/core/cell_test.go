package core

import (
	"errors"
	"testing"
)

func TestNewCellStartsUnsolvedWithAllCandidates(t *testing.T) {
	c := NewCell()
	if c.IsSolved() {
		t.Fatalf("expected a fresh cell to be unsolved")
	}
	if c.Candidates != FullCandidates {
		t.Fatalf("expected full candidates, got %v", c.Candidates)
	}
}

func TestSetValueClearsCandidates(t *testing.T) {
	c := NewCell()
	if err := c.SetValue(4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.IsSolved() || c.Value != 4 {
		t.Fatalf("expected cell solved with value 4, got %+v", c)
	}
	if c.Candidates != 0 {
		t.Fatalf("expected candidates cleared once solved, got %v", c.Candidates)
	}
}

func TestSetValueRejectsAnswerMismatch(t *testing.T) {
	c := NewCell()
	c.Answer = 7
	err := c.SetValue(3)
	if !errors.Is(err, ErrAnswerMismatch) {
		t.Fatalf("expected ErrAnswerMismatch, got %v", err)
	}
	if c.IsSolved() {
		t.Fatalf("a rejected assignment must not mutate the cell")
	}
}

func TestRemoveCandidateReportsChanged(t *testing.T) {
	c := NewCell()
	changed, err := c.RemoveCandidate(5)
	if err != nil || !changed {
		t.Fatalf("expected (true, nil), got (%v, %v)", changed, err)
	}
	if c.HasCandidate(5) {
		t.Fatalf("expected 5 removed from candidates")
	}

	changed, err = c.RemoveCandidate(5)
	if err != nil || changed {
		t.Fatalf("expected removing an already-absent candidate to report unchanged, got (%v, %v)", changed, err)
	}
}

func TestRemoveCandidateOnSolvedCellIsNoop(t *testing.T) {
	c := NewCell()
	_ = c.SetValue(2)
	changed, err := c.RemoveCandidate(9)
	if err != nil || changed {
		t.Fatalf("expected removing a candidate from a solved cell to be a no-op")
	}
}

func TestRemoveCandidateViolatingAnswerInvariant(t *testing.T) {
	c := NewCell()
	c.Answer = 6
	changed, err := c.RemoveCandidate(6)
	if !changed {
		t.Fatalf("expected the removal itself to still happen")
	}
	if !errors.Is(err, ErrInconsistent) {
		t.Fatalf("expected ErrInconsistent when eliminating the known answer, got %v", err)
	}
}

func TestPromoteIfSingle(t *testing.T) {
	c := NewCell()
	for d := 1; d <= 8; d++ {
		if _, err := c.RemoveCandidate(d); err != nil {
			t.Fatalf("unexpected error removing %d: %v", d, err)
		}
	}
	digit, promoted := c.PromoteIfSingle()
	if !promoted || digit != 9 {
		t.Fatalf("expected promotion to 9, got (%d, %v)", digit, promoted)
	}
	if !c.IsSolved() || c.Value != 9 {
		t.Fatalf("expected cell solved at 9, got %+v", c)
	}
}

func TestPromoteIfSingleNoopWithMultipleCandidates(t *testing.T) {
	c := NewCell()
	if _, promoted := c.PromoteIfSingle(); promoted {
		t.Fatalf("expected no promotion with all nine candidates open")
	}
}

func TestResetRestoresFullCandidates(t *testing.T) {
	c := NewCell()
	_ = c.SetValue(1)
	c.Reset()
	if c.IsSolved() {
		t.Fatalf("expected reset cell to be unsolved")
	}
	if c.Candidates != FullCandidates {
		t.Fatalf("expected full candidates after reset, got %v", c.Candidates)
	}
}
