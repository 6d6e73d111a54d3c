// Package solver drives the rule ladder to a fixed point, either all at
// once (Solve) or one visible step at a time (StepSolve).
package solver

import (
	"context"

	"sudoku-engine/internal/core"
	"sudoku-engine/internal/rules"
)

// MaxRestarts bounds the number of times the ladder restarts from the top
// after a rule succeeds, the same backstop the teacher's MaxSolverSteps
// constant provided against a rule that never actually converges.
const MaxRestarts = 2000

// Solve runs enabled rules to a fixed point: on every pass it tries each
// rule in order and, the moment one makes progress, restarts from the
// first rule again. It stops when a full pass finds nothing left to do.
// The returned bool reports whether the grid ended up fully solved; a
// false result with a nil error means the ladder stalled short of a
// solution (spec's "Unsolvable-by-rules" case), not that anything broke.
func Solve(g *core.Grid, enabled []rules.Rule) (bool, []core.Move, error) {
	var moves []core.Move
	for restarts := 0; restarts < MaxRestarts; restarts++ {
		progressed := false
		for _, r := range enabled {
			changed, stepMoves, err := r.SolveAll(g)
			if err != nil {
				return g.IsSolved(), moves, err
			}
			if changed {
				for i := range stepMoves {
					stepMoves[i].StepIndex = len(moves) + i + 1
				}
				moves = append(moves, stepMoves...)
				progressed = true
				break
			}
		}
		if !progressed {
			break
		}
	}
	return g.IsSolved(), moves, nil
}

// OnStep is called after StepSolve applies a single move, so the caller can
// render the grid and pace the next step — sleep on a timer, or block for
// a keypress, depending on the CLI's -a flag. Returning an error (including
// ctx.Err() surfacing from a cancelled context) stops the loop early.
type OnStep func(g *core.Grid, step int, move *core.Move) error

// StepSolve runs the same restart-from-top ladder as Solve but applies only
// one rule instance at a time, calling onStep after each. AutoPromote
// should already be false on g: step mode exists to show single-candidate
// promotions as their own Naked Single steps rather than folding them
// silently into whatever assignment caused them.
func StepSolve(ctx context.Context, g *core.Grid, enabled []rules.Rule, onStep OnStep) (bool, []core.Move, error) {
	var moves []core.Move
	step := 0
	for restarts := 0; restarts < MaxRestarts; restarts++ {
		if err := ctx.Err(); err != nil {
			return g.IsSolved(), moves, err
		}
		progressed := false
		for _, r := range enabled {
			changed, move, err := r.Step(g)
			if err != nil {
				return g.IsSolved(), moves, err
			}
			if !changed {
				continue
			}
			step++
			move.StepIndex = step
			moves = append(moves, *move)
			if onStep != nil {
				if err := onStep(g, step, move); err != nil {
					return g.IsSolved(), moves, err
				}
			}
			progressed = true
			break
		}
		if !progressed {
			break
		}
	}
	return g.IsSolved(), moves, nil
}
