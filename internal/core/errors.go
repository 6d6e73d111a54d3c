package core

import "errors"

// ErrParseInvalid is returned by Parse when the input text cannot be read
// as an 81-cell board: a row is too long, or a character is neither a
// digit, a space nor '0'.
var ErrParseInvalid = errors.New("core: board text is not a valid sudoku layout")

// ErrInconsistent is returned by Parse when a given clashes with a peer
// already placed in the same row, column or box. It is also returned while
// solving when a value is assigned over a different one or where it is no
// longer a candidate, and when an elimination removes a cell's known answer.
var ErrInconsistent = errors.New("core: board givens are mutually inconsistent")

// ErrAnswerMismatch is returned by SetValuePropagating when a caller-known
// answer is supplied and the value being assigned does not match it.
var ErrAnswerMismatch = errors.New("core: assigned value does not match known answer")
