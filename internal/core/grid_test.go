package core

import (
	"errors"
	"testing"
)

const gentlePuzzle = "003020600\n" +
	"900305001\n" +
	"001806400\n" +
	"008102900\n" +
	"700000008\n" +
	"006708200\n" +
	"002609500\n" +
	"800203009\n" +
	"005010300"

func TestParseGentlePuzzle(t *testing.T) {
	g, err := Parse(gentlePuzzle)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !g.IsValid() {
		t.Fatalf("expected a valid grid")
	}
	if g.State != StateSolving {
		t.Fatalf("expected StateSolving after a clean parse, got %v", g.State)
	}
	if g.StartingCellCount == 0 {
		t.Fatalf("expected a nonzero starting cell count")
	}
	if g.Cells[NewPosition(0, 2).Index()].Value != 3 {
		t.Fatalf("expected R1C3 to be given as 3")
	}
	if !g.Cells[NewPosition(0, 2).Index()].IsGiven {
		t.Fatalf("expected R1C3 to be marked given")
	}
}

func TestParseStripsPipeSeparators(t *testing.T) {
	withPipes := "003|020|600\n" +
		"900|305|001\n" +
		"001|806|400\n" +
		"008|102|900\n" +
		"700|000|008\n" +
		"006|708|200\n" +
		"002|609|500\n" +
		"800|203|009\n" +
		"005|010|300"

	got, err := Parse(withPipes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, err := Parse(gentlePuzzle)
	if err != nil {
		t.Fatalf("unexpected error parsing the unpiped reference board: %v", err)
	}
	if got.String() != want.String() {
		t.Fatalf("expected a |-separated board to parse identically to its unpiped form")
	}
}

func TestParseRejectsBadCharacter(t *testing.T) {
	_, err := Parse("00302060x\n900305001")
	if !errors.Is(err, ErrParseInvalid) {
		t.Fatalf("expected ErrParseInvalid, got %v", err)
	}
}

func TestParseRejectsTooManyRows(t *testing.T) {
	text := ""
	for i := 0; i < 10; i++ {
		text += "000000000\n"
	}
	_, err := Parse(text)
	if !errors.Is(err, ErrParseInvalid) {
		t.Fatalf("expected ErrParseInvalid for 10 rows, got %v", err)
	}
}

func TestParseDetectsConflictingGivens(t *testing.T) {
	conflicting := "110000000\n" +
		"000000000\n" +
		"000000000\n" +
		"000000000\n" +
		"000000000\n" +
		"000000000\n" +
		"000000000\n" +
		"000000000\n" +
		"000000000"
	_, err := Parse(conflicting)
	if !errors.Is(err, ErrInconsistent) {
		t.Fatalf("expected ErrInconsistent for two 1s in the same row, got %v", err)
	}
}

func TestSetValuePropagatingEliminatesPeers(t *testing.T) {
	g := NewGrid()
	pos := NewPosition(0, 0)
	if err := g.SetValuePropagating(pos, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	peer := NewPosition(0, 3)
	if g.Cells[peer.Index()].HasCandidate(5) {
		t.Fatalf("expected row peer to have 5 eliminated")
	}
	peer = NewPosition(3, 0)
	if g.Cells[peer.Index()].HasCandidate(5) {
		t.Fatalf("expected column peer to have 5 eliminated")
	}
	peer = NewPosition(1, 1)
	if g.Cells[peer.Index()].HasCandidate(5) {
		t.Fatalf("expected box peer to have 5 eliminated")
	}
}

func TestSetValuePropagatingRejectsConflict(t *testing.T) {
	g := NewGrid()
	_ = g.SetValuePropagating(NewPosition(0, 0), 5)
	err := g.SetValuePropagating(NewPosition(0, 1), 5)
	if !errors.Is(err, ErrInconsistent) {
		t.Fatalf("expected ErrInconsistent assigning a peer's eliminated digit, got %v", err)
	}
}

func TestSetValuePropagatingSameValueIsNoop(t *testing.T) {
	g := NewGrid()
	_ = g.SetValuePropagating(NewPosition(0, 0), 5)
	if err := g.SetValuePropagating(NewPosition(0, 0), 5); err != nil {
		t.Fatalf("expected re-assigning the same value to be a no-op, got %v", err)
	}
}

func TestEliminateDoesNotAutoPromote(t *testing.T) {
	g := NewGrid()
	pos := NewPosition(0, 0)
	for d := 1; d <= 7; d++ {
		if _, err := g.Eliminate(pos, d); err != nil {
			t.Fatalf("unexpected error eliminating %d: %v", d, err)
		}
	}
	cell := g.Cells[pos.Index()]
	if cell.IsSolved() {
		t.Fatalf("Eliminate must never assign a value on its own")
	}
	if cell.Candidates.Count() != 2 {
		t.Fatalf("expected 2 candidates remaining, got %d", cell.Candidates.Count())
	}
}

func TestUnsetRestoresCandidatesFromPeers(t *testing.T) {
	g := NewGrid()
	pos := NewPosition(0, 0)
	_ = g.SetValuePropagating(pos, 5)
	peer := NewPosition(0, 1)
	if g.Cells[peer.Index()].HasCandidate(5) {
		t.Fatalf("sanity check: peer should not have 5 as a candidate before Unset")
	}

	g.Unset(pos)
	if g.Cells[pos.Index()].IsSolved() {
		t.Fatalf("expected cleared cell to be unsolved")
	}
	if !g.Cells[peer.Index()].HasCandidate(5) {
		t.Fatalf("expected peer to regain 5 as a candidate after Unset")
	}
}

func TestCopyReplaysAssignmentsNotBitmasks(t *testing.T) {
	g, err := Parse(gentlePuzzle)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	cp := g.Copy(false, true)
	for i := range g.Cells {
		if g.Cells[i].Value != cp.Cells[i].Value {
			t.Fatalf("expected copy to match values at index %d", i)
		}
	}
	if cp.StartingCellCount != g.StartingCellCount {
		t.Fatalf("expected copy to carry over starting cell count")
	}
}

func TestPercentCompleteTracksOnlyNonGivenCells(t *testing.T) {
	g, err := Parse(gentlePuzzle)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if pct := g.PercentComplete(); pct != 0 {
		t.Fatalf("expected 0%% complete right after parse, got %v", pct)
	}

	fullySolved := "478593612" +
		"593612478" +
		"612478593" +
		"785936124" +
		"936124785" +
		"124785936" +
		"859361247" +
		"361247859" +
		"247859361"
	full, err := Parse(insertNewlines(fullySolved))
	if err != nil {
		t.Fatalf("unexpected parse error for a fully solved grid: %v", err)
	}
	if pct := full.PercentComplete(); pct != 1 {
		t.Fatalf("expected 100%% complete for a fully given grid, got %v", pct)
	}
}

func insertNewlines(flat string) string {
	var out string
	for r := 0; r < 9; r++ {
		if r > 0 {
			out += "\n"
		}
		out += flat[r*9 : r*9+9]
	}
	return out
}

func TestIsSolvedFalseUntilEveryCellHasAValue(t *testing.T) {
	g := NewGrid()
	if g.IsSolved() {
		t.Fatalf("expected a fresh empty grid to be unsolved")
	}
}

func TestGridStringRendersDotsForEmpty(t *testing.T) {
	g := NewGrid()
	_ = g.SetValuePropagating(NewPosition(0, 0), 7)
	s := g.String()
	if len(s) == 0 {
		t.Fatalf("expected non-empty rendering")
	}
	if s[0] != '7' {
		t.Fatalf("expected rendering to start with the assigned digit, got %q", s[0])
	}
}
