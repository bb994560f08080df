package sudoku

import (
	"github.com/dlxsudoku/core/internal/candidate"
	"github.com/dlxsudoku/core/internal/search"
)

// CoreKind selects which solver core Solve/SolveAll dispatches to. Both
// cores implement the same contract and return the same solution set for
// any input (spec P3).
type CoreKind int

const (
	// DLX is Knuth's Dancing Links exact-cover core (spec §4.4).
	DLX CoreKind = iota
	// LiteralCount is the direct bitset core (spec §4.5).
	LiteralCount
)

// ConstraintOrder selects the layout of the 324-entry constraint table used
// by the literal-count core's MRV tie-break. It is a runtime option; it
// affects which branch is chosen on ties and therefore the statistics
// counters. The DLX core is unaffected: its matrix
// columns are built directly from geometry and do not use this ordering.
type ConstraintOrder int

const (
	// OrderCellRowColBox is the normative layout of spec §6:
	// [Cell, Row×Digit, Col×Digit, Box×Digit].
	OrderCellRowColBox ConstraintOrder = iota
	// OrderCellBoxRowCol reorders the last three families to
	// [Cell, Box×Digit, Row×Digit, Col×Digit].
	OrderCellBoxRowCol
)

func (o ConstraintOrder) internal() candidate.Order {
	if o == OrderCellBoxRowCol {
		return candidate.OrderCellBoxRowCol
	}
	return candidate.OrderCellRowColBox
}

// Mode selects how much of the search tree Solve explores (spec §4.6).
type Mode int

const (
	// FirstSolution stops at the first solution found; Result.Solutions
	// holds 0 or 1 boards.
	FirstSolution Mode = iota
	// UpToTwo runs until a second solution is found or the tree is
	// exhausted — the standard way to test uniqueness.
	UpToTwo
	// All enumerates every solution, capped for reporting at the
	// configured ceiling (WithAllCeiling), without affecting the search.
	All
)

func (m Mode) internal() search.Mode {
	switch m {
	case UpToTwo:
		return search.UpToTwo
	case All:
		return search.All
	default:
		return search.FirstSolution
	}
}

// config holds the resolved options for one Solve/SolveAll call.
type config struct {
	core       CoreKind
	order      ConstraintOrder
	mode       Mode
	allCeiling int
}

func defaultConfig() *config {
	return &config{
		core:       DLX,
		order:      OrderCellRowColBox,
		mode:       FirstSolution,
		allCeiling: search.DefaultAllCeiling,
	}
}

// Option configures a Solve or SolveAll call.
type Option func(*config)

// WithCore selects the solver core. Default is DLX.
func WithCore(k CoreKind) Option {
	return func(c *config) { c.core = k }
}

// WithConstraintOrder selects the literal-count core's constraint layout.
// Has no effect when paired with WithCore(DLX). Default is
// OrderCellRowColBox.
func WithConstraintOrder(o ConstraintOrder) Option {
	return func(c *config) { c.order = o }
}

// WithMode selects the search-mode policy. Default is FirstSolution.
func WithMode(m Mode) Option {
	return func(c *config) { c.mode = m }
}

// WithAllCeiling sets the display ceiling for All mode: the maximum number
// of solutions returned (search itself is never capped). Default 100.
// Values < 1 are rejected by Solve with ErrBadCeiling.
func WithAllCeiling(n int) Option {
	return func(c *config) { c.allCeiling = n }
}
