package rules

import (
	"fmt"

	"sudoku-engine/internal/core"
)

// unit is a single row, column or box together with the label a move
// explanation should use for it.
type unit struct {
	label string
	index int
	cells [9]int
}

func (u unit) String() string {
	return fmt.Sprintf("%s %d", u.label, u.index+1)
}

// allUnits returns the 27 units in row, column, box order.
func allUnits() []unit {
	units := make([]unit, 0, 27)
	for r := 0; r < 9; r++ {
		units = append(units, unit{label: "row", index: r, cells: core.ROWS[r]})
	}
	for c := 0; c < 9; c++ {
		units = append(units, unit{label: "column", index: c, cells: core.COLS[c]})
	}
	for b := 0; b < 9; b++ {
		units = append(units, unit{label: "box", index: b, cells: core.REGS[b]})
	}
	return units
}
