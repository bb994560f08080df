package search

import (
	"github.com/dlxsudoku/core/internal/dlx"
	"github.com/dlxsudoku/core/internal/geometry"
)

// wideColThreshold is the header-ring size at or above which column selection
// dispatches to the horizontal-min primitive over the column-size array
// instead of a scalar ring walk (spec §4.4: "below a small threshold
// (≈8 empties) a scalar walk of the header ring is faster").
const wideColThreshold = 8

// DLX runs the DLX kernel (spec §4.4) over an already-built matrix. grid is
// the board's given-cell layout, used to seed each recorded solution.
func DLX(m *dlx.Matrix, grid [geometry.Cells]byte, mode Mode, ceiling int) ([][geometry.Cells]byte, Stats) {
	k := &dlxKernel{m: m, grid: grid, mode: mode, ceiling: ceiling}
	k.rowStack = make([]int, 0, geometry.Cells)
	k.run()
	return k.solutions, k.stats
}

type dlxKernel struct {
	m    *dlx.Matrix
	grid [geometry.Cells]byte
	mode Mode

	ceiling   int
	stats     Stats
	solutions [][geometry.Cells]byte
	stop      bool
	rowStack  []int
	seen      solutionSet
}

func (k *dlxKernel) run() { k.step() }

func (k *dlxKernel) step() bool {
	if k.m.IsEmpty() {
		k.recordSolution()
		return k.stop
	}

	colID, size := k.selectColumn()
	if size == 0 {
		k.stats.FailedReturns++
		return false
	}
	k.stats.recordStep(size)

	k.m.Cover(colID)
	for r := k.m.Down(colID); r != colID; r = k.m.Down(r) {
		k.rowStack = append(k.rowStack, k.m.NodeRow(r))
		for j := k.m.Next(r); j != r; j = k.m.Next(j) {
			k.m.Cover(k.m.NodeColumn(j))
		}

		stop := k.step()

		for j := k.m.Prev(r); j != r; j = k.m.Prev(j) {
			k.m.Uncover(k.m.NodeColumn(j))
		}
		k.rowStack = k.rowStack[:len(k.rowStack)-1]

		if stop {
			k.m.Uncover(colID)
			return true
		}
	}
	k.m.Uncover(colID)
	return false
}

// selectColumn picks the minimum-size live column, dispatching to the
// horizontal-min primitive once the header ring is large enough to make it
// worthwhile (spec §4.4).
func (k *dlxKernel) selectColumn() (id int, size int) {
	if k.m.LiveCols() >= wideColThreshold {
		return k.m.MinColumnWide()
	}
	return k.m.MinColumn()
}

func (k *dlxKernel) recordSolution() {
	grid := k.grid
	for _, r := range k.rowStack {
		pos, d := k.m.RowInfo(r)
		grid[pos] = byte(d + 1)
	}

	switch k.mode {
	case FirstSolution:
		k.solutions = append(k.solutions, grid)
		k.stop = true
	case UpToTwo:
		k.solutions = append(k.solutions, grid)
		if len(k.solutions) >= 2 {
			k.stop = true
		}
	case All:
		if len(k.solutions) < k.ceiling && k.seen.addIfNew(grid) {
			k.solutions = append(k.solutions, grid)
		}
	}
}
