// Package sudoku implements a high-performance 9×9 Sudoku solver core built
// on exact-cover constraint propagation.
//
// Two interchangeable solver cores are provided: a Dancing Links (DLX) exact
// cover solver over an index-addressed toroidal matrix, and a literal-count
// solver that tracks remaining-candidate bitsets directly. Both share the
// same 4·81=324 constraint model and the same minimum-remaining-values (MRV)
// branching rule, and both produce the same solution set for any input.
//
// # Basic Usage
//
// Solving a single board:
//
//	b, err := sudoku.Parse(puzzle)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := sudoku.Solve(b)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if result.Found {
//	    fmt.Println(result.Solutions[0].String())
//	}
//
// Solving many independent boards concurrently:
//
//	results, err := sudoku.SolveAll(ctx, boards, sudoku.WithCore(sudoku.DLX))
//
// # Package Structure
//
// The implementation is organized as follows:
//
//   - Public API: board.go (Board, Parse), solve.go (Solve, SolveAll, Result)
//   - Configuration: options.go (Option, With* functions, CoreKind, ConstraintOrder)
//   - Observability: stats.go (Stats and its derived ratios)
//   - Bit primitives: internal/bits (TrailingZero16, PopCount16, IsolateLSB16)
//   - Geometry: internal/geometry (CellInfo, BoxInfo, Neighbours)
//   - Candidate state: internal/candidate (bitset families, Assign/Undo)
//   - MRV selection: internal/minarg (HorizontalMin, scalar + chunked wide path)
//   - Matrix core: internal/dlx (index-addressed toroidal matrix, cover/uncover)
//   - Search kernels: internal/search (DLX, Literal, Mode policy, Stats)
package sudoku
