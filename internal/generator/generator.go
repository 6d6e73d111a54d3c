package generator

import (
	"math/rand"

	"sudoku-engine/internal/core"
	"sudoku-engine/internal/rules"
)

// Generate builds a complete puzzle: Fill produces a random complete
// solution, then Prune greedily removes clues from it, always keeping
// every removal that the enabled rule set can still fully solve the
// result with, until no further removal would. Difficulty is tuned purely
// by which rules the caller enables — a narrower enabled set makes fewer
// removals recoverable and so leaves more givens behind; the full ladder
// carves the deepest. seed makes the result reproducible for tests;
// callers generating for real use should seed from crypto/rand or the
// current time.
func Generate(enabled []rules.Rule, seed int64) (*core.Grid, error) {
	rng := rand.New(rand.NewSource(seed))

	solved, err := Fill(rng)
	if err != nil {
		return nil, err
	}
	return Prune(solved, enabled, rng)
}
