package sudoku

import (
	"strings"

	"github.com/dlxsudoku/core/internal/geometry"
	"github.com/spaolacci/murmur3"

	sudokuerrors "github.com/dlxsudoku/core/errors"
)

// Board is an 81-cell Sudoku grid, row-major: Board[pos] is 0 for an empty
// cell or 1..9 for a given/placed digit (spec §3, §4.2, §6).
type Board [geometry.Cells]byte

// Parse decodes an 81-character board string. '.' and '0' both denote an
// empty cell; '1'..'9' denote a given digit. No newline is required or
// accepted; any other length or character is rejected with ErrInvalidBoard
// (spec §7.1: "the core rejects with a structured kind InvalidBoard").
func Parse(s string) (Board, error) {
	var b Board
	if len(s) != geometry.Cells {
		return b, sudokuerrors.ErrInvalidBoard
	}
	for i := 0; i < geometry.Cells; i++ {
		c := s[i]
		switch {
		case c == '.' || c == '0':
			b[i] = 0
		case c >= '1' && c <= '9':
			b[i] = c - '0'
		default:
			return Board{}, sudokuerrors.ErrInvalidBoard
		}
	}
	return b, nil
}

// String renders b back to its 81-character encoding, using '.' for empty
// cells.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow(geometry.Cells)
	for _, v := range b {
		if v == 0 {
			sb.WriteByte('.')
		} else {
			sb.WriteByte('0' + v)
		}
	}
	return sb.String()
}

// Empties returns the number of empty (zero) cells in b.
func (b Board) Empties() int {
	n := 0
	for _, v := range b {
		if v == 0 {
			n++
		}
	}
	return n
}

// Equal reports whether b and other hold identical values in every cell.
func (b Board) Equal(other Board) bool {
	return b == other
}

// Hash returns a stable 64-bit fingerprint of b, for callers that want to
// dedupe or index boards across a SolveAll batch (spec §4.2's "equality"
// operation's natural companion).
func (b Board) Hash() uint64 {
	return murmur3.Sum64(b[:])
}

// givens converts b into the internal Givens representation the candidate
// and dlx packages operate on.
func (b Board) givens() [geometry.Cells]int8 {
	var g [geometry.Cells]int8
	for i, v := range b {
		g[i] = int8(v)
	}
	return g
}
