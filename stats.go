package sudoku

import "github.com/dlxsudoku/core/internal/search"

// Stats are the monotone counters a solve run accumulates (spec §6): the
// number of guessed branch points, forced (unique-candidate) branch points,
// and failed backtracks. They are statistics only — they never affect
// correctness (spec §4.5 step 5) — and are reset fresh by every Solve call.
type Stats struct {
	Guesses              uint64
	UniqueCandidateSteps uint64
	FailedReturns        uint64
}

func fromInternal(s search.Stats) Stats {
	return Stats{
		Guesses:              s.Guesses,
		UniqueCandidateSteps: s.UniqueCandidateSteps,
		FailedReturns:        s.FailedReturns,
	}
}

// Total is the number of branch points taken, forced or guessed.
func (s Stats) Total() uint64 { return s.Guesses + s.UniqueCandidateSteps }

// GuessRatio is the fraction of branch points that were genuine guesses
// (two or more remaining alternatives) rather than forced steps. Returns 0
// if no branch points were taken at all.
func (s Stats) GuessRatio() float64 {
	total := s.Total()
	if total == 0 {
		return 0
	}
	return float64(s.Guesses) / float64(total)
}
