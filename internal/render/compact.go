// Package render turns a core.Grid into terminal output, in the two modes
// spec §4.7 names: a plain 25-wide ASCII board, and a stylised "card" board
// with a glyph per cell and fatih/color highlighting for givens and cells
// dirtied by the last solver step.
package render

import "sudoku-engine/internal/core"

// Compact renders the grid as a plain 25-column ASCII board, one line per
// row plus box-separator rules — the same layout the original source's
// print_board produced, minus its color calls (Compact is the uncolored
// mode; Card below carries the coloring).
func Compact(g *core.Grid) string {
	out := make([]byte, 0, 25*13)
	rule := func() {
		for i := 0; i < 25; i++ {
			out = append(out, '-')
		}
		out = append(out, '\n')
	}
	rule()
	for r := 0; r < 9; r++ {
		out = append(out, "| "...)
		for c := 0; c < 9; c++ {
			v := g.Cells[core.NewPosition(r, c).Index()].Value
			if v == 0 {
				out = append(out, '.', ' ')
			} else {
				out = append(out, byte('0'+v), ' ')
			}
			if c%3 == 2 {
				out = append(out, "| "...)
			}
		}
		out = out[:len(out)-1]
		out = append(out, '\n')
		if r%3 == 2 {
			rule()
		}
	}
	return string(out[:len(out)-1])
}
