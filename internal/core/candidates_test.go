package core

import "testing"

func TestCandidatesAddHasRemove(t *testing.T) {
	var c Candidates
	c = c.Add(3).Add(7)

	if !c.Has(3) || !c.Has(7) {
		t.Fatalf("expected 3 and 7 to be candidates, got %v", c)
	}
	if c.Has(1) {
		t.Fatalf("did not expect 1 to be a candidate, got %v", c)
	}

	c = c.Remove(3)
	if c.Has(3) {
		t.Fatalf("expected 3 to be removed, got %v", c)
	}
}

func TestCandidatesOutOfRangeIsNoop(t *testing.T) {
	var c Candidates
	c = c.Add(0).Add(10)
	if !c.IsEmpty() {
		t.Fatalf("expected out-of-range adds to be ignored, got %v", c)
	}
	if c.Has(0) || c.Has(10) {
		t.Fatalf("out-of-range digits should never report as candidates")
	}
}

func TestFullCandidatesCoversOneToNine(t *testing.T) {
	for d := 1; d <= 9; d++ {
		if !FullCandidates.Has(d) {
			t.Fatalf("expected FullCandidates to contain %d", d)
		}
	}
	if FullCandidates.Count() != 9 {
		t.Fatalf("expected 9 candidates, got %d", FullCandidates.Count())
	}
}

func TestCandidatesOnly(t *testing.T) {
	c := NewCandidates(5)
	digit, ok := c.Only()
	if !ok || digit != 5 {
		t.Fatalf("expected Only to report (5, true), got (%d, %v)", digit, ok)
	}

	c = NewCandidates(5, 6)
	if _, ok := c.Only(); ok {
		t.Fatalf("expected Only to report false for two candidates")
	}
}

func TestCandidatesIntersectUnion(t *testing.T) {
	a := NewCandidates(1, 2, 3)
	b := NewCandidates(2, 3, 4)

	if got := a.Intersect(b); !got.Equals(NewCandidates(2, 3)) {
		t.Fatalf("expected intersection {2,3}, got %v", got)
	}
	if got := a.Union(b); !got.Equals(NewCandidates(1, 2, 3, 4)) {
		t.Fatalf("expected union {1,2,3,4}, got %v", got)
	}
}

func TestCandidatesDigitsAscending(t *testing.T) {
	c := NewCandidates(9, 1, 5)
	got := c.Digits()
	want := []int{1, 5, 9}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestCandidatesString(t *testing.T) {
	if NewCandidates().String() != "{}" {
		t.Fatalf("expected empty set to render as {}")
	}
	if got := NewCandidates(2, 5, 9).String(); got != "{2,5,9}" {
		t.Fatalf("expected {2,5,9}, got %s", got)
	}
}
