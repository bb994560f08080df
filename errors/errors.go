// Package errors defines all exported error sentinels for the sudoku core.
//
// This is the single source of truth for error values. The top-level sudoku
// package imports from here, ensuring errors.Is checks work across package
// boundaries.
package errors

import "errors"

// Input errors
var (
	ErrInvalidBoard = errors.New("sudoku: board is not 81 characters of '.', '0'-'9'")
	ErrBadDigit     = errors.New("sudoku: digit out of range [1,9]")
)

// Usage errors
var (
	ErrClosedSolver = errors.New("sudoku: solver used after Close")
	ErrBadCeiling   = errors.New("sudoku: All-mode display ceiling must be >= 1")
)

// Internal errors (debug-only invariant checks, never surfaced on well-formed input)
var (
	ErrInvariantBroken = errors.New("sudoku: internal invariant violated")
)
