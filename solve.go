package sudoku

import (
	"context"

	"golang.org/x/sync/errgroup"

	sudokuerrors "github.com/dlxsudoku/core/errors"
	"github.com/dlxsudoku/core/internal/candidate"
	"github.com/dlxsudoku/core/internal/dlx"
	"github.com/dlxsudoku/core/internal/geometry"
	"github.com/dlxsudoku/core/internal/search"
)

// Result is the outcome of one Solve call (spec §6).
type Result struct {
	Found     bool
	Solutions []Board
	Stats     Stats
}

// Solve searches b for completions under the given options (spec §6).
// Contradictory givens are not an error: Solve returns Found=false with no
// solutions (spec §7.2 — "this is not an error but an ordinary 'no solution'
// answer"). Solve never mutates b.
func Solve(b Board, opts ...Option) (Result, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.allCeiling < 1 {
		return Result{}, sudokuerrors.ErrBadCeiling
	}

	givens := candidate.Givens(b.givens())
	grid := [geometry.Cells]byte(b)

	var rawSolutions [][geometry.Cells]byte
	var stats search.Stats
	switch cfg.core {
	case LiteralCount:
		state := candidate.FromGivens(cfg.order.internal(), givens)
		rawSolutions, stats = search.Literal(state, grid, cfg.mode.internal(), cfg.allCeiling)
	default:
		m := dlx.New()
		m.Build(givens)
		rawSolutions, stats = search.DLX(m, grid, cfg.mode.internal(), cfg.allCeiling)
	}

	solutions := make([]Board, len(rawSolutions))
	for i, s := range rawSolutions {
		solutions[i] = Board(s)
	}
	return Result{
		Found:     len(solutions) > 0,
		Solutions: solutions,
		Stats:     fromInternal(stats),
	}, nil
}

// SolveAll solves every board in boards concurrently, one solver instance
// per goroutine sharing no mutable state — the concurrency model spec §5
// describes ("Multiple puzzles may be solved concurrently by holding one
// solver instance per thread; instances share no mutable state"). Results
// are returned in the same order as boards. The first error encountered
// (e.g. an invalid WithAllCeiling) cancels the remaining work via ctx.
func SolveAll(ctx context.Context, boards []Board, opts ...Option) ([]Result, error) {
	results := make([]Result, len(boards))
	g, gctx := errgroup.WithContext(ctx)
	for i, b := range boards {
		i, b := i, b
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			r, err := Solve(b, opts...)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
