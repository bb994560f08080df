// Package candidate implements the literal-count core's state: the four
// candidate bitset families (cell, row×digit, col×digit, box×digit) and the
// 324-entry constraint-count table maintained in lock-step (spec §3, §4.3).
//
// The DLX core uses this package's Givens type and NumConstraints constant;
// both cores share the same underlying problem model (spec §2).
package candidate

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	intbits "github.com/dlxsudoku/core/internal/bits"
	"github.com/dlxsudoku/core/internal/geometry"
)

// Order selects the layout of the 324-entry constraint table.
// OrderCellRowColBox is the normative layout (spec §6) and OrderCellBoxRowCol
// its permitted reordering; the choice only affects MRV tie-breaks and
// therefore the statistics counters, never correctness.
type Order int

const (
	// OrderCellRowColBox lays constraints out as
	// [Cell(0..81), Row×Digit(0..81), Col×Digit(0..81), Box×Digit(0..81)].
	OrderCellRowColBox Order = iota
	// OrderCellBoxRowCol reorders the last three families to
	// [Cell, Box×Digit, Row×Digit, Col×Digit].
	OrderCellBoxRowCol
)

const (
	// NumConstraints is the total constraint count: 4 families of 81 (spec §3).
	NumConstraints = 324
	familySize     = 81
	fullDigitMask  = uint16(0x1FF) // 9 low bits set
)

type offsets struct {
	cell, row, col, box int
}

func offsetsFor(o Order) offsets {
	if o == OrderCellBoxRowCol {
		return offsets{cell: 0, box: familySize, row: 2 * familySize, col: 3 * familySize}
	}
	return offsets{cell: 0, row: familySize, col: 2 * familySize, box: 3 * familySize}
}

// Givens is an 81-cell board snapshot: 0 = empty, 1..9 = given digit.
type Givens [geometry.Cells]int8

// State holds the four candidate bitset families and the 324-entry
// constraint-count table, maintained in lock-step per spec invariants I1, I2.
type State struct {
	order Order
	off   offsets

	cellNums [geometry.Cells]uint16 // [pos] -> live digit bitmask
	rowNums  [geometry.Cells]uint16 // [d*9+row] -> live column bitmask
	colNums  [geometry.Cells]uint16 // [d*9+col] -> live row bitmask
	boxNums  [geometry.Cells]uint16 // [d*9+box] -> live cellInBox bitmask

	Counts   [NumConstraints]uint8
	Disabled [NumConstraints]bool
}

// New returns a State in the all-candidates-live, nothing-disabled state —
// the candidate state of a fully empty board.
func New(order Order) *State {
	s := &State{order: order, off: offsetsFor(order)}
	s.Reset()
	return s
}

// FromGivens returns a State with every given cell assigned, ready for search
// over the remaining empty cells.
func FromGivens(order Order, g Givens) *State {
	s := New(order)
	for pos, v := range g {
		if v > 0 {
			s.Assign(pos, int(v-1))
		}
	}
	return s
}

// Order reports the constraint layout this state was constructed with.
func (s *State) Order() Order { return s.order }

// Reset restores s to the all-candidates-live state without reallocating, so
// a State can be reused across puzzles (spec §5 lifecycle).
func (s *State) Reset() {
	for i := range s.cellNums {
		s.cellNums[i] = fullDigitMask
		s.rowNums[i] = fullDigitMask
		s.colNums[i] = fullDigitMask
		s.boxNums[i] = fullDigitMask
	}
	for i := range s.Counts {
		s.Counts[i] = geometry.Digits
		s.Disabled[i] = false
	}
}

// Constraint index accessors (spec §6's normative layout, or its permitted
// reordering — see Order).
func (s *State) CellConstraint(pos int) int        { return s.off.cell + pos }
func (s *State) RowDigitConstraint(d, row int) int { return s.off.row + d*9 + row }
func (s *State) ColDigitConstraint(d, col int) int { return s.off.col + d*9 + col }
func (s *State) BoxDigitConstraint(d, box int) int { return s.off.box + d*9 + box }

// Family identifies which of the four constraint families a constraint index
// belongs to (spec §4.5 step 3/4: "if k designates a cell-constraint...
// otherwise k designates a (digit, group) constraint").
type Family int

const (
	FamilyCell Family = iota
	FamilyRowDigit
	FamilyColDigit
	FamilyBoxDigit
)

// Decode maps a constraint index back to its family and family-local
// parameters: (pos, 0) for FamilyCell, (digit, row) for FamilyRowDigit,
// (digit, col) for FamilyColDigit, (digit, box) for FamilyBoxDigit. The
// mapping respects whichever Order s was built with.
func (s *State) Decode(idx int) (fam Family, a int, b int) {
	switch {
	case idx >= s.off.cell && idx < s.off.cell+familySize:
		return FamilyCell, idx - s.off.cell, 0
	case idx >= s.off.row && idx < s.off.row+familySize:
		local := idx - s.off.row
		return FamilyRowDigit, local / 9, local % 9
	case idx >= s.off.col && idx < s.off.col+familySize:
		local := idx - s.off.col
		return FamilyColDigit, local / 9, local % 9
	default:
		local := idx - s.off.box
		return FamilyBoxDigit, local / 9, local % 9
	}
}

// CellCandidates returns the digit bitmask (bit d set means digit d+1 is
// still possible) live at pos.
func (s *State) CellCandidates(pos int) uint16 { return s.cellNums[pos] }

// RowCandidates returns the column bitmask where digit d may still go in row.
func (s *State) RowCandidates(d, row int) uint16 { return s.rowNums[d*9+row] }

// ColCandidates returns the row bitmask where digit d may still go in col.
func (s *State) ColCandidates(d, col int) uint16 { return s.colNums[d*9+col] }

// BoxCandidates returns the cellInBox bitmask where digit d may still go in box.
func (s *State) BoxCandidates(d, box int) uint16 { return s.boxNums[d*9+box] }

// Effect is the undo-log entry written by Assign: enough information for Undo
// to be an exact inverse without recording a sequence, only the affected set
// (spec §4.3). Fixed-size value type: zero heap allocation in the hot path.
type Effect struct {
	Pos           uint8
	Digit         uint8
	Cleared       uint16 // digits cleared at Pos (includes Digit only if it was still live there)
	NeighbourMask uint32 // bit i set => the i-th neighbour of Pos had Digit cleared
}

// Assign places digit at pos: clears every remaining candidate at pos from
// all four families, disables the four constraints this placement satisfies,
// and eliminates digit from pos's 20 neighbours. Assign is total: it never
// fails, even on a pos whose candidate set no longer contains digit (this is
// how contradictory givens surface — as an emptied cell elsewhere, detected
// at the next MRV step, never as a panic; spec §7.2).
func (s *State) Assign(pos, digit int) Effect {
	eff := Effect{Pos: uint8(pos), Digit: uint8(digit)}

	cleared := s.cellNums[pos]
	eff.Cleared = cleared
	for cleared != 0 {
		d := intbits.TrailingZero16(cleared)
		s.clearCandidate(pos, d)
		cleared &^= uint16(1) << uint(d)
	}

	info := geometry.CellAt(pos)
	s.Disabled[s.CellConstraint(pos)] = true
	s.Disabled[s.RowDigitConstraint(digit, int(info.Row))] = true
	s.Disabled[s.ColDigitConstraint(digit, int(info.Col))] = true
	s.Disabled[s.BoxDigitConstraint(digit, int(info.Box))] = true

	for i, n := range geometry.Neighbours(pos) {
		if s.clearCandidate(int(n), digit) {
			eff.NeighbourMask |= uint32(1) << uint(i)
		}
	}
	return eff
}

// Undo reverses an Effect produced by Assign. Sequential undos of a sequence
// of assigns, applied in reverse order, restore the entire candidate state to
// bit-identical its pre-sequence value (spec P4).
func (s *State) Undo(eff Effect) {
	pos := int(eff.Pos)
	digit := int(eff.Digit)

	neighbours := geometry.Neighbours(pos)
	for i := geometry.Neighbors - 1; i >= 0; i-- {
		if eff.NeighbourMask&(uint32(1)<<uint(i)) != 0 {
			s.restoreCandidate(int(neighbours[i]), digit)
		}
	}

	info := geometry.CellAt(pos)
	s.Disabled[s.CellConstraint(pos)] = false
	s.Disabled[s.RowDigitConstraint(digit, int(info.Row))] = false
	s.Disabled[s.ColDigitConstraint(digit, int(info.Col))] = false
	s.Disabled[s.BoxDigitConstraint(digit, int(info.Box))] = false

	cleared := eff.Cleared
	for cleared != 0 {
		d := intbits.TrailingZero16(cleared)
		s.restoreCandidate(pos, d)
		cleared &^= uint16(1) << uint(d)
	}
}

// clearCandidate clears digit from pos across all four bitset families and
// decrements the four corresponding constraint counters, keeping I1 and I2 in
// sync. Returns false (no-op) if digit was already gone from pos.
func (s *State) clearCandidate(pos, digit int) bool {
	bit := uint16(1) << uint(digit)
	if s.cellNums[pos]&bit == 0 {
		return false
	}
	info := geometry.CellAt(pos)
	row, col, box, cib := int(info.Row), int(info.Col), int(info.Box), int(info.CellInBox)

	s.cellNums[pos] &^= bit
	s.rowNums[digit*9+row] &^= uint16(1) << uint(col)
	s.colNums[digit*9+col] &^= uint16(1) << uint(row)
	s.boxNums[digit*9+box] &^= uint16(1) << uint(cib)

	s.Counts[s.CellConstraint(pos)]--
	s.Counts[s.RowDigitConstraint(digit, row)]--
	s.Counts[s.ColDigitConstraint(digit, col)]--
	s.Counts[s.BoxDigitConstraint(digit, box)]--
	return true
}

// restoreCandidate is the exact inverse of clearCandidate.
func (s *State) restoreCandidate(pos, digit int) {
	bit := uint16(1) << uint(digit)
	info := geometry.CellAt(pos)
	row, col, box, cib := int(info.Row), int(info.Col), int(info.Box), int(info.CellInBox)

	s.cellNums[pos] |= bit
	s.rowNums[digit*9+row] |= uint16(1) << uint(col)
	s.colNums[digit*9+col] |= uint16(1) << uint(row)
	s.boxNums[digit*9+box] |= uint16(1) << uint(cib)

	s.Counts[s.CellConstraint(pos)]++
	s.Counts[s.RowDigitConstraint(digit, row)]++
	s.Counts[s.ColDigitConstraint(digit, col)]++
	s.Counts[s.BoxDigitConstraint(digit, box)]++
}

// Checksum fingerprints the entire mutable state — all four bitset families
// plus the 324 counters — with a single xxhash pass. It exists for tests
// that verify spec P4 ("undo is a true inverse") and P5 ("counter
// consistency") without hand-writing a field-by-field comparator: two
// checksums equal implies (with overwhelming probability) bit-identical
// state, exactly what P4 requires after a matched assign/undo sequence.
func (s *State) Checksum() uint64 {
	var buf [4*2*geometry.Cells + NumConstraints]byte
	off := 0
	putFamily := func(family [geometry.Cells]uint16) {
		for _, v := range family {
			binary.LittleEndian.PutUint16(buf[off:], v)
			off += 2
		}
	}
	putFamily(s.cellNums)
	putFamily(s.rowNums)
	putFamily(s.colNums)
	putFamily(s.boxNums)
	for i, c := range s.Counts {
		b := c
		if s.Disabled[i] {
			b |= 0x80
		}
		buf[off] = b
		off++
	}
	return xxhash.Sum64(buf[:off])
}
