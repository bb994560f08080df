package sudoku

import (
	"strings"
	"testing"

	sudokuerrors "github.com/dlxsudoku/core/errors"
)

const solvedBoard = "123456789456789123789123456231564897564897231897231564312645978645978312978312645"

func TestParseRoundTrip(t *testing.T) {
	b, err := Parse(solvedBoard)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := b.String(); got != solvedBoard {
		t.Fatalf("String() = %q, want %q", got, solvedBoard)
	}
	if b.Empties() != 0 {
		t.Fatalf("Empties() = %d, want 0 for a fully solved board", b.Empties())
	}
}

func TestParseAcceptsDotAndZeroForEmpty(t *testing.T) {
	dots, err := Parse(strings.Repeat(".", 81))
	if err != nil {
		t.Fatalf("Parse(dots): %v", err)
	}
	zeros, err := Parse(strings.Repeat("0", 81))
	if err != nil {
		t.Fatalf("Parse(zeros): %v", err)
	}
	if !dots.Equal(zeros) {
		t.Fatal("'.' and '0' boards should be Equal")
	}
	if dots.Empties() != 81 {
		t.Fatalf("Empties() = %d, want 81", dots.Empties())
	}
}

func TestParseRejectsWrongLength(t *testing.T) {
	if _, err := Parse("123"); err != sudokuerrors.ErrInvalidBoard {
		t.Fatalf("Parse(short) error = %v, want ErrInvalidBoard", err)
	}
}

func TestParseRejectsBadCharacter(t *testing.T) {
	s := "x23456789456789123789123456231564897564897231897231564312645978645978312978312645"
	if len(s) != 81 {
		t.Fatalf("test fixture length = %d, want 81", len(s))
	}
	if _, err := Parse(s); err != sudokuerrors.ErrInvalidBoard {
		t.Fatalf("Parse(bad char) error = %v, want ErrInvalidBoard", err)
	}
}

func TestBoardEqualAndHash(t *testing.T) {
	a, _ := Parse(solvedBoard)
	b, _ := Parse(solvedBoard)
	if !a.Equal(b) {
		t.Fatal("identical boards should be Equal")
	}
	if a.Hash() != b.Hash() {
		t.Fatal("identical boards should hash identically")
	}

	other := a
	other[0] = 9
	if a.Equal(other) {
		t.Fatal("boards differing in one cell should not be Equal")
	}
}
