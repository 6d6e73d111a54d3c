package render

import (
	"strings"

	"github.com/fatih/color"

	"sudoku-engine/internal/core"
)

// solvedGlyphs holds, for each digit 1-9, its three-line card — adapted
// from the boxed-digit look of the original source's get_print_card, but
// drawn with a plain box-drawing frame instead of reusing its glyph table.
var solvedGlyphs = [9][3]string{
	{"┌─┐", "│1│", "└─┘"},
	{"┌─┐", "│2│", "└─┘"},
	{"┌─┐", "│3│", "└─┘"},
	{"┌─┐", "│4│", "└─┘"},
	{"┌─┐", "│5│", "└─┘"},
	{"┌─┐", "│6│", "└─┘"},
	{"┌─┐", "│7│", "└─┘"},
	{"┌─┐", "│8│", "└─┘"},
	{"┌─┐", "│9│", "└─┘"},
}

var (
	givenColor = color.New(color.FgGreen)
	dirtyColor = color.New(color.FgYellow)
)

// candidateCard renders an unsolved cell as a 3x3 grid of its candidates —
// digit shown if still possible, blank otherwise — the same layout the
// original source's Debug impl produced for an empty cell before
// get_print_card reformatted it onto three lines.
func candidateCard(c core.Candidates) [3]string {
	var lines [3]string
	for row := 0; row < 3; row++ {
		var sb strings.Builder
		for col := 0; col < 3; col++ {
			digit := row*3 + col + 1
			if c.Has(digit) {
				sb.WriteByte(byte('0' + digit))
			} else {
				sb.WriteByte(' ')
			}
		}
		lines[row] = sb.String()
	}
	return lines
}

func cellCard(cell core.Cell) [3]string {
	if cell.Value != 0 {
		return solvedGlyphs[cell.Value-1]
	}
	return candidateCard(cell.Candidates)
}

func colorize(cell core.Cell, lines [3]string) [3]string {
	var paint *color.Color
	switch {
	case cell.IsGiven:
		paint = givenColor
	case cell.IsDirty:
		paint = dirtyColor
	default:
		return lines
	}
	var out [3]string
	for i, l := range lines {
		out[i] = paint.Sprint(l)
	}
	return out
}

// Card renders the grid as a framed board of 3x3 cell cards: solved cells
// show a boxed digit, unsolved cells show their remaining candidates laid
// out like a numeric keypad. Givens are colored green, cells touched by the
// most recent solver step yellow, matching the original source's
// green-given/blue-dirty scheme with fatih/color's palette.
func Card(g *core.Grid) string {
	var lines []string
	lines = append(lines, "╔═══╦═══╦═══╦═══╦═══╦═══╦═══╦═══╦═══╗")
	for r := 0; r < 9; r++ {
		if r > 0 {
			if r%3 == 0 {
				lines = append(lines, "╠═══╬═══╬═══╬═══╬═══╬═══╬═══╬═══╬═══╣")
			} else {
				lines = append(lines, "┆   ┆   ┆   ┆   ┆   ┆   ┆   ┆   ┆   ┆")
			}
		}
		var rowLines [3]strings.Builder
		for i := 0; i < 3; i++ {
			rowLines[i].WriteByte('|')
		}
		for c := 0; c < 9; c++ {
			cell := g.Cells[core.NewPosition(r, c).Index()]
			card := colorize(cell, cellCard(cell))
			for i := 0; i < 3; i++ {
				rowLines[i].WriteString(card[i])
				rowLines[i].WriteByte('|')
			}
		}
		for i := 0; i < 3; i++ {
			lines = append(lines, rowLines[i].String())
		}
	}
	lines = append(lines, "╚═══╩═══╩═══╩═══╩═══╩═══╩═══╩═══╩═══╝")
	return strings.Join(lines, "\n")
}
