// Package verify provides a backtracking solver and solution counter kept
// apart from the solving path the engine ships (the engine has no
// backtracking search; see generator.Prune's doc comment). No other package
// imports it; only its own tests exercise it.
package verify

import "sudoku-engine/internal/core"

// Values flattens a grid's assigned values into a plain 81-length array,
// the format this package's backtracking routines operate on.
func Values(g *core.Grid) []int {
	values := make([]int, 81)
	for i := range g.Cells {
		values[i] = g.Cells[i].Value
	}
	return values
}

// Solve finds any solution via backtracking, returning nil if none exists.
func Solve(grid []int) []int {
	board := make([]int, 81)
	copy(board, grid)
	for i, v := range board {
		if v == 0 {
			continue
		}
		board[i] = 0
		ok := isValid(board, i/9, i%9, v)
		board[i] = v
		if !ok {
			return nil
		}
	}
	if solve(board) {
		return board
	}
	return nil
}

// HasUniqueSolution reports whether grid has exactly one solution.
func HasUniqueSolution(grid []int) bool {
	return CountSolutions(grid, 2) == 1
}

// CountSolutions counts solutions up to maxCount, stopping early once the
// cap is reached — callers checking uniqueness only ever need maxCount=2.
func CountSolutions(grid []int, maxCount int) int {
	board := make([]int, 81)
	copy(board, grid)
	count := 0
	countSolutions(board, &count, maxCount)
	return count
}

func countSolutions(board []int, count *int, maxCount int) {
	if *count >= maxCount {
		return
	}
	idx := firstEmpty(board)
	if idx == -1 {
		*count++
		return
	}
	row, col := idx/9, idx%9
	for digit := 1; digit <= 9; digit++ {
		if isValid(board, row, col, digit) {
			board[idx] = digit
			countSolutions(board, count, maxCount)
			board[idx] = 0
			if *count >= maxCount {
				return
			}
		}
	}
}

func solve(board []int) bool {
	idx := firstEmpty(board)
	if idx == -1 {
		return true
	}
	row, col := idx/9, idx%9
	for digit := 1; digit <= 9; digit++ {
		if isValid(board, row, col, digit) {
			board[idx] = digit
			if solve(board) {
				return true
			}
			board[idx] = 0
		}
	}
	return false
}

func firstEmpty(board []int) int {
	for i, v := range board {
		if v == 0 {
			return i
		}
	}
	return -1
}

func isValid(board []int, row, col, digit int) bool {
	for c := 0; c < 9; c++ {
		if board[row*9+c] == digit {
			return false
		}
	}
	for r := 0; r < 9; r++ {
		if board[r*9+col] == digit {
			return false
		}
	}
	boxRow, boxCol := (row/3)*3, (col/3)*3
	for r := boxRow; r < boxRow+3; r++ {
		for c := boxCol; c < boxCol+3; c++ {
			if board[r*9+c] == digit {
				return false
			}
		}
	}
	return true
}
