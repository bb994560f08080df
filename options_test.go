package sudoku

import (
	"testing"

	"github.com/dlxsudoku/core/internal/search"
)

func TestDefaultConfig(t *testing.T) {
	c := defaultConfig()
	if c.core != DLX {
		t.Errorf("default core = %v, want DLX", c.core)
	}
	if c.order != OrderCellRowColBox {
		t.Errorf("default order = %v, want OrderCellRowColBox", c.order)
	}
	if c.mode != FirstSolution {
		t.Errorf("default mode = %v, want FirstSolution", c.mode)
	}
	if c.allCeiling != search.DefaultAllCeiling {
		t.Errorf("default allCeiling = %d, want %d", c.allCeiling, search.DefaultAllCeiling)
	}
}

func TestOptionsOverrideDefaults(t *testing.T) {
	c := defaultConfig()
	for _, opt := range []Option{
		WithCore(LiteralCount),
		WithConstraintOrder(OrderCellBoxRowCol),
		WithMode(All),
		WithAllCeiling(7),
	} {
		opt(c)
	}
	if c.core != LiteralCount || c.order != OrderCellBoxRowCol || c.mode != All || c.allCeiling != 7 {
		t.Fatalf("config after options = %+v, want overridden fields", c)
	}
}

func TestModeInternalMapping(t *testing.T) {
	cases := map[Mode]search.Mode{
		FirstSolution: search.FirstSolution,
		UpToTwo:       search.UpToTwo,
		All:           search.All,
	}
	for pub, want := range cases {
		if got := pub.internal(); got != want {
			t.Errorf("Mode(%v).internal() = %v, want %v", pub, got, want)
		}
	}
}
