package generator

import (
	"fmt"
	"math/rand"

	"sudoku-engine/internal/core"
)

// Fill produces a complete, valid solution grid by permuting a single base
// Latin square rather than by backtracking search: the engine has no
// search-based filler, only transformations of one fixed pattern that are
// themselves guaranteed sudoku-valid.
//
// The base pattern is base(r,c) = (c + 3*(r%3) + r/3) mod 9, the standard
// "shifted diagonal" Latin square whose rows, columns and boxes are each a
// permutation of 0-8 by construction. Three transformations are applied,
// all of which preserve sudoku validity:
//
//  1. a random relabeling of the nine digits;
//  2. an independent shuffle of the three bands (row-groups) and, within
//     each band, the three rows inside it;
//  3. the same shuffle applied to stacks (column-groups) and the columns
//     inside each stack.
//
// This samples one specific isomorphism class of completed grids, not a
// uniform draw over all ~6.67e21 valid grids — spec's Fill Randomness Open
// Question names this directly and accepts it as a known, not a defect.
func Fill(rng *rand.Rand) (*core.Grid, error) {
	relabel := rng.Perm(9)

	rowOrder := bandStackOrder(rng)
	colOrder := bandStackOrder(rng)

	g := core.NewGrid()
	for r := 0; r < 9; r++ {
		srcRow := rowOrder[r]
		for c := 0; c < 9; c++ {
			srcCol := colOrder[c]
			base := (srcCol + 3*(srcRow%3) + srcRow/3) % 9
			value := relabel[base] + 1
			pos := core.NewPosition(r, c)
			if err := g.SetValuePropagating(pos, value); err != nil {
				return nil, fmt.Errorf("generator: fill produced an inconsistent assignment at %v: %w", pos, err)
			}
			g.Cells[pos.Index()].Answer = value
		}
	}
	return g, nil
}

// bandStackOrder returns a permutation of 0-8 built by shuffling the order
// of the three bands/stacks and, independently, the three rows/columns
// within each one — never moving a row/column across band/stack
// boundaries, which is what keeps the result sudoku-valid.
func bandStackOrder(rng *rand.Rand) [9]int {
	bandOrder := rng.Perm(3)
	var within [3][3]int
	for b := 0; b < 3; b++ {
		within[b] = [3]int(rng.Perm(3))
	}
	var order [9]int
	for slot, band := range bandOrder {
		for i := 0; i < 3; i++ {
			order[slot*3+i] = band*3 + within[band][i]
		}
	}
	return order
}
