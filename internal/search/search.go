// Package search implements the two recursive solver kernels — DLX and
// literal-count — sharing the Mode search policy and Stats accumulator
// (spec §4.4, §4.5, §4.6). Neither kernel allocates in its steady-state
// recursion: the DLX row stack is allocated once per call with room for
// every cell, and the literal-count kernel keeps its undo entries on the Go
// stack. Recorded solutions are appended to a slice that grows as needed;
// only All mode caps it at the caller's ceiling.
package search

import (
	"github.com/zeebo/xxh3"

	"github.com/dlxsudoku/core/internal/geometry"
)

// solutionSet is an internal duplicate guard used by All mode: a well-formed
// exact-cover search tree never visits the same completed board twice, but
// the guard costs one hash per recorded solution and catches it cheaply if
// it ever does (spec P2 — the returned set must equal the set of valid
// completions, with no duplicates).
type solutionSet struct {
	seen map[uint64]struct{}
}

// addIfNew reports whether grid has not been recorded before, marking it
// seen as a side effect.
func (s *solutionSet) addIfNew(grid [geometry.Cells]byte) bool {
	if s.seen == nil {
		s.seen = make(map[uint64]struct{})
	}
	h := xxh3.Hash(grid[:])
	if _, ok := s.seen[h]; ok {
		return false
	}
	s.seen[h] = struct{}{}
	return true
}

// Mode selects how much of the search tree a kernel explores before
// returning (spec §4.6).
type Mode int

const (
	// FirstSolution unwinds every pending frame as soon as one solution is
	// recorded; the result holds 0 or 1 solutions.
	FirstSolution Mode = iota
	// UpToTwo continues until a second solution is recorded or the tree is
	// exhausted; used to test uniqueness.
	UpToTwo
	// All enumerates the entire tree, capping the *reported* solutions at
	// an implementation-defined ceiling without affecting the search itself.
	All
)

// DefaultAllCeiling is the display ceiling used by All mode when the caller
// does not override it (spec §4.6: "e.g. 100").
const DefaultAllCeiling = 100

// Stats are the monotone counters a kernel accumulates over one Run (spec
// §6): guesses, forced (unique-candidate) steps, and failed backtracks.
// All three are reset only by constructing a fresh kernel.
type Stats struct {
	Guesses              uint64
	UniqueCandidateSteps uint64
	FailedReturns        uint64
}

// Total is the number of branch points the kernel took, forced or guessed.
func (s Stats) Total() uint64 { return s.Guesses + s.UniqueCandidateSteps }

// GuessRatio is the fraction of branch points that were genuine guesses
// (m >= 2 remaining alternatives) rather than forced single-candidate steps.
// Returns 0 when the kernel took no branch points at all (e.g. the input was
// already fully solved).
func (s Stats) GuessRatio() float64 {
	total := s.Total()
	if total == 0 {
		return 0
	}
	return float64(s.Guesses) / float64(total)
}

// recordStep classifies a branch point by its remaining-alternative count m,
// per spec §4.5 step 5: m == 1 is a unique-candidate (forced) step, m >= 2 is
// a guess.
func (s *Stats) recordStep(m int) {
	if m == 1 {
		s.UniqueCandidateSteps++
	} else {
		s.Guesses++
	}
}
