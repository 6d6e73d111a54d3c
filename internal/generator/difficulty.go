package generator

import (
	"sudoku-engine/internal/core"
	"sudoku-engine/internal/rules"
	"sudoku-engine/internal/solver"
)

// scoreBase is the exponent base of the difficulty score: a rule at ladder
// position i contributes count*base^i, so leaning on any harder rule even
// once outweighs leaning on every easier rule any number of times.
const scoreBase = 5

// ladderIndex maps a rule's abbreviation to its position in rules.Ladder,
// the fixed easy->hard weighting order every score uses regardless of
// which subset of rules a particular solve was actually allowed to use.
var ladderIndex = func() map[string]int {
	m := make(map[string]int, len(rules.Ladder))
	for i, r := range rules.Ladder {
		m[r.Abbreviation()] = i
	}
	return m
}()

// weighMoves turns a completed solve's move list into the weighted
// difficulty score Σ counts[i]*scoreBase^i, where counts[i] is how many
// times the rule at ladder position i fired. A puzzle solvable with only
// Naked/Hidden Single scores from counts[0] and counts[1] alone; one
// requiring X-Wing carries scoreBase^7 for every occurrence, dwarfing any
// number of easy moves.
func weighMoves(moves []core.Move) int {
	counts := make([]int, len(rules.Ladder))
	for _, mv := range moves {
		if i, ok := ladderIndex[mv.Refs.Slug]; ok {
			counts[i]++
		}
	}
	total, weight := 0, 1
	for _, c := range counts {
		total += c * weight
		weight *= scoreBase
	}
	return total
}

// simulateRemoval copies puzzle, clears pos, and solves the copy with
// enabled. It reports whether that solve recovers pos's original answer
// (the only sense in which a removal is "allowed" to stick) and, if so,
// the weighted difficulty score of the solve that recovered it. An error
// here means the enabled rule set hit a genuine invariant violation, not
// merely that the removal failed — generator.Prune treats that as fatal.
func simulateRemoval(puzzle *core.Grid, pos core.Position, enabled []rules.Rule) (recovered bool, difficultyScore int, err error) {
	trial := puzzle.Copy(true, true)
	answer := trial.Cells[pos.Index()].Answer
	trial.Unset(pos)

	solved, moves, err := solver.Solve(trial, enabled)
	if err != nil {
		return false, 0, err
	}
	if !solved || trial.Cells[pos.Index()].Value != answer {
		return false, 0, nil
	}
	return true, weighMoves(moves), nil
}
