package search

import (
	intbits "github.com/dlxsudoku/core/internal/bits"
	"github.com/dlxsudoku/core/internal/candidate"
	"github.com/dlxsudoku/core/internal/geometry"
	"github.com/dlxsudoku/core/internal/minarg"
)

// Literal runs the literal-count kernel (spec §4.5) over state, which must
// already hold the given board's assignments (candidate.FromGivens). grid is
// the board's given-cell layout; the kernel fills in the empty cells of a
// copy as it searches. ceiling bounds how many solutions All mode reports.
func Literal(state *candidate.State, grid [geometry.Cells]byte, mode Mode, ceiling int) ([][geometry.Cells]byte, Stats) {
	k := &literalKernel{state: state, grid: grid, mode: mode, ceiling: ceiling}
	k.run()
	return k.solutions, k.stats
}

type literalKernel struct {
	state   *candidate.State
	grid    [geometry.Cells]byte
	mode    Mode
	ceiling int

	stats     Stats
	solutions [][geometry.Cells]byte
	stop      bool
	seen      solutionSet
}

func (k *literalKernel) run() { k.step() }

// step explores one level of the search tree and reports whether the caller
// should unwind immediately (mode's stop condition was reached).
func (k *literalKernel) step() bool {
	minVal, minIdx := minarg.HorizontalMin(k.state.Counts[:], k.state.Disabled[:])
	if minIdx < 0 {
		// Every constraint disabled: the board is fully assigned (spec §4.5
		// step 2's m==0 check is distinct from this — an empty ring here
		// means solved, never infeasible).
		k.recordSolution()
		return k.stop
	}
	if minVal == 0 {
		k.stats.FailedReturns++
		return false
	}
	k.stats.recordStep(int(minVal))

	fam, a, b := k.state.Decode(minIdx)
	switch fam {
	case candidate.FamilyCell:
		pos := a
		mask := k.state.CellCandidates(pos)
		for mask != 0 {
			d := intbits.TrailingZero16(mask)
			mask &^= uint16(1) << uint(d)
			if k.tryAssign(pos, d) {
				return true
			}
		}
	case candidate.FamilyRowDigit:
		d, row := a, b
		mask := k.state.RowCandidates(d, row)
		for mask != 0 {
			col := intbits.TrailingZero16(mask)
			mask &^= uint16(1) << uint(col)
			if k.tryAssign(row*geometry.Size+col, d) {
				return true
			}
		}
	case candidate.FamilyColDigit:
		d, col := a, b
		mask := k.state.ColCandidates(d, col)
		for mask != 0 {
			row := intbits.TrailingZero16(mask)
			mask &^= uint16(1) << uint(row)
			if k.tryAssign(row*geometry.Size+col, d) {
				return true
			}
		}
	case candidate.FamilyBoxDigit:
		d, box := a, b
		mask := k.state.BoxCandidates(d, box)
		for mask != 0 {
			cib := intbits.TrailingZero16(mask)
			mask &^= uint16(1) << uint(cib)
			pos := geometry.PosInBox(box, cib)
			if k.tryAssign(pos, d) {
				return true
			}
		}
	}
	return false
}

// tryAssign assigns digit d at pos, recurses, and restores state on return —
// the fill/undo-fill primitive of spec §2's data flow, specialised to the
// literal-count core's Assign/Undo pair.
func (k *literalKernel) tryAssign(pos, d int) bool {
	eff := k.state.Assign(pos, d)
	k.grid[pos] = byte(d + 1)
	stop := k.step()
	k.grid[pos] = 0
	k.state.Undo(eff)
	return stop
}

func (k *literalKernel) recordSolution() {
	switch k.mode {
	case FirstSolution:
		k.solutions = append(k.solutions, k.grid)
		k.stop = true
	case UpToTwo:
		k.solutions = append(k.solutions, k.grid)
		if len(k.solutions) >= 2 {
			k.stop = true
		}
	case All:
		if len(k.solutions) < k.ceiling && k.seen.addIfNew(k.grid) {
			k.solutions = append(k.solutions, k.grid)
		}
	}
}
