package search

import (
	"testing"

	"github.com/dlxsudoku/core/internal/candidate"
	"github.com/dlxsudoku/core/internal/dlx"
)

func buildMatrix(t *testing.T, grid [81]byte) *dlx.Matrix {
	t.Helper()
	m := dlx.New()
	m.Build(toGivens(grid))
	return m
}

func TestDLXEmptyBoardFirstSolution(t *testing.T) {
	grid := parseGrid(t, emptyBoard)
	m := buildMatrix(t, grid)
	solutions, _ := DLX(m, grid, FirstSolution, DefaultAllCeiling)
	if len(solutions) != 1 {
		t.Fatalf("len(solutions) = %d, want 1", len(solutions))
	}
	isValidCompletion(t, grid, solutions[0])
}

func TestDLXAlreadySolvedZeroBranches(t *testing.T) {
	grid := parseGrid(t, solvedBoard)
	m := buildMatrix(t, grid)
	solutions, stats := DLX(m, grid, FirstSolution, DefaultAllCeiling)
	if len(solutions) != 1 || solutions[0] != grid {
		t.Fatalf("expected the input itself as the only solution")
	}
	if stats.Guesses != 0 || stats.FailedReturns != 0 {
		t.Fatalf("stats = %+v, want zero guesses and failed returns", stats)
	}
}

func TestDLXSeventeenClueUniqueUnderUpToTwo(t *testing.T) {
	grid := parseGrid(t, seventeenClue)
	m := buildMatrix(t, grid)
	solutions, _ := DLX(m, grid, UpToTwo, DefaultAllCeiling)
	if len(solutions) != 1 {
		t.Fatalf("len(solutions) = %d, want 1", len(solutions))
	}
	isValidCompletion(t, grid, solutions[0])
}

func TestDLXContradictoryGivensNoSolution(t *testing.T) {
	grid := parseGrid(t, contradictoryBoard)
	m := buildMatrix(t, grid)
	solutions, _ := DLX(m, grid, FirstSolution, DefaultAllCeiling)
	if len(solutions) != 0 {
		t.Fatalf("len(solutions) = %d, want 0 for contradictory givens", len(solutions))
	}
}

func TestDLXTwoSolutionBoard(t *testing.T) {
	grid := parseGrid(t, twoSolutionBoard)

	m := buildMatrix(t, grid)
	upToTwo, _ := DLX(m, grid, UpToTwo, DefaultAllCeiling)
	if len(upToTwo) != 2 {
		t.Fatalf("UpToTwo: len(solutions) = %d, want 2", len(upToTwo))
	}
	for _, s := range upToTwo {
		isValidCompletion(t, grid, s)
	}
	if upToTwo[0] == upToTwo[1] {
		t.Fatal("UpToTwo returned the same completion twice")
	}

	m2 := buildMatrix(t, grid)
	all, _ := DLX(m2, grid, All, DefaultAllCeiling)
	if len(all) != 2 {
		t.Fatalf("All: len(solutions) = %d, want 2", len(all))
	}
}

// TestCoresAgreeOnSolutionSet is spec P3: under All mode, DLX and
// literal-count return the same solution set.
func TestCoresAgreeOnSolutionSet(t *testing.T) {
	grid := parseGrid(t, twoSolutionBoard)

	m := buildMatrix(t, grid)
	dlxAll, _ := DLX(m, grid, All, DefaultAllCeiling)

	state := candidate.FromGivens(candidate.OrderCellRowColBox, toGivens(grid))
	litAll, _ := Literal(state, grid, All, DefaultAllCeiling)

	toSet := func(boards [][81]byte) map[[81]byte]bool {
		out := make(map[[81]byte]bool, len(boards))
		for _, b := range boards {
			out[b] = true
		}
		return out
	}
	dlxSet, litSet := toSet(dlxAll), toSet(litAll)
	if len(dlxSet) != len(litSet) {
		t.Fatalf("solution set sizes differ: dlx=%d literal=%d", len(dlxSet), len(litSet))
	}
	for b := range dlxSet {
		if !litSet[b] {
			t.Fatalf("DLX solution %v missing from literal-count's set", b)
		}
	}
}

// TestCoresAgreeOnFoundness is spec P3: DLX and literal-count either both
// report found or both report not-found, for FirstSolution.
func TestCoresAgreeOnFoundness(t *testing.T) {
	for _, board := range []string{emptyBoard, solvedBoard, seventeenClue, contradictoryBoard, twoSolutionBoard} {
		grid := parseGrid(t, board)

		m := buildMatrix(t, grid)
		dlxSolutions, _ := DLX(m, grid, FirstSolution, DefaultAllCeiling)

		state := candidate.FromGivens(candidate.OrderCellRowColBox, toGivens(grid))
		litSolutions, _ := Literal(state, grid, FirstSolution, DefaultAllCeiling)

		if (len(dlxSolutions) > 0) != (len(litSolutions) > 0) {
			t.Fatalf("board %q: DLX found=%v literal found=%v disagree", board, len(dlxSolutions) > 0, len(litSolutions) > 0)
		}
		if len(dlxSolutions) > 0 {
			isValidCompletion(t, grid, dlxSolutions[0])
			isValidCompletion(t, grid, litSolutions[0])
		}
	}
}
