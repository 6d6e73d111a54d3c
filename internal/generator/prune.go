package generator

import (
	"fmt"
	"math/rand"

	"sudoku-engine/internal/core"
	"sudoku-engine/internal/rules"
)

// Prune carves clues out of a complete solution grid, one at a time,
// always picking the removal that maximises difficulty: at every round it
// simulates removing every cell still in the candidate pool, drops any
// cell whose simulated solve (run with enabled) can't recover that cell's
// original answer, scores every surviving candidate, and commits one of
// the cells tied for the highest score, chosen uniformly at random. It
// stops when a round finds no removable cell left — at that point no
// further removal can improve difficulty, which is normal termination,
// not an error; the engine has no backtracking-based uniqueness check, so
// "the simulated solve recovers the answer" is the only notion of "still
// a valid puzzle" it has.
func Prune(solved *core.Grid, enabled []rules.Rule, rng *rand.Rand) (*core.Grid, error) {
	puzzle := solved.Copy(true, true)
	for i := range puzzle.Cells {
		puzzle.Cells[i].IsGiven = true
	}

	removable := make([]bool, len(puzzle.Cells))
	for i := range removable {
		removable[i] = true
	}

	for {
		bestScore := -1
		var tied []int
		for idx, inPool := range removable {
			if !inPool {
				continue
			}
			pos := core.PositionFromIndex(idx)
			recovered, s, err := simulateRemoval(puzzle, pos, enabled)
			if err != nil {
				return nil, fmt.Errorf("generator: inconsistency simulating removal at %v: %w", pos, err)
			}
			if !recovered {
				removable[idx] = false
				continue
			}
			switch {
			case s > bestScore:
				bestScore = s
				tied = tied[:0]
				tied = append(tied, idx)
			case s == bestScore:
				tied = append(tied, idx)
			}
		}

		if len(tied) == 0 {
			break
		}

		chosen := tied[rng.Intn(len(tied))]
		puzzle.Unset(core.PositionFromIndex(chosen))
		removable[chosen] = false
	}

	finalize(puzzle)
	return puzzle, nil
}

// finalize marks every cell still carrying a value as a given and clears
// the dirty flags Unset left behind, so the returned grid is ready to hand
// to a fresh solving session.
func finalize(puzzle *core.Grid) {
	count := 0
	for i := range puzzle.Cells {
		if puzzle.Cells[i].Value != 0 {
			puzzle.Cells[i].IsGiven = true
			count++
		} else {
			puzzle.Cells[i].IsGiven = false
		}
	}
	puzzle.StartingCellCount = count
	puzzle.ClearDirty()
}
