// Package dlx implements Knuth's Dancing Links over an index-addressed,
// toroidal four-way linked list: parallel uint16 arrays instead of pointers,
// so the whole matrix lives in one contiguous allocation reused across
// puzzles (spec §4.4).
package dlx

import (
	"github.com/dlxsudoku/core/internal/candidate"
	"github.com/dlxsudoku/core/internal/geometry"
	"github.com/dlxsudoku/core/internal/minarg"
)

const (
	// NumConstraints is the exact-cover matrix's column count: 4 families of
	// 81 (cell, row×digit, col×digit, box×digit).
	NumConstraints = candidate.NumConstraints

	maxCandidateRows = geometry.Cells * geometry.Digits // 729

	// Capacity holds the header ring (NumConstraints+1, including the
	// sentinel head at index 0) plus 4 nodes per candidate row, rounded up
	// to an even number as the original's FixedDlxNodeList does.
	rawCapacity = NumConstraints + 1 + 4*maxCandidateRows
	Capacity    = (rawCapacity + 1) / 2 * 2

	unusedCol = 0xFFFF
)

// Matrix is the reusable exact-cover matrix. Call Build once per puzzle
// before calling Cover/Uncover; a zero Matrix from New is ready to Build.
type Matrix struct {
	prev, next, up, down, row, col []uint16
	colSize                        []uint8
	dead                           []bool // dead[c]: column c currently covered (out of the header ring)

	colIndex [NumConstraints + 1]uint16 // constraint id (1-based) -> compacted col, or unusedCol

	rowPos   []uint8 // row-id -> board position
	rowDigit []uint8 // row-id -> digit (0-based)

	lastIdx  int
	numCols  int
	liveCols int
}

// New allocates a Matrix sized for one Sudoku puzzle's exact-cover problem.
func New() *Matrix {
	return &Matrix{
		prev:     make([]uint16, Capacity),
		next:     make([]uint16, Capacity),
		up:       make([]uint16, Capacity),
		down:     make([]uint16, Capacity),
		row:      make([]uint16, Capacity),
		col:      make([]uint16, Capacity),
		colSize:  make([]uint8, NumConstraints+1),
		dead:     make([]bool, NumConstraints+1),
		rowPos:   make([]uint8, maxCandidateRows+1),
		rowDigit: make([]uint8, maxCandidateRows+1),
	}
}

// LiveCols returns the number of columns currently linked into the header
// ring — used by the search kernel to decide whether the wide horizontal-min
// path is worth dispatching to (spec §4.4's "≈8 empties" threshold).
func (m *Matrix) LiveCols() int { return m.liveCols }

// IsEmpty reports whether every column has been covered: the header ring
// holds only the sentinel, meaning the exact-cover problem is solved.
func (m *Matrix) IsEmpty() bool { return m.next[0] == 0 }

// Cols returns the number of live columns built for the current puzzle.
func (m *Matrix) Cols() int { return m.numCols }

// RowInfo returns the (position, digit) a candidate row id stands for.
func (m *Matrix) RowInfo(rowID int) (pos, digit int) {
	return int(m.rowPos[rowID]), int(m.rowDigit[rowID])
}

// filterUnusedCols marks every constraint already satisfied by a given cell
// as unused, then compacts the remaining constraints into a dense
// [1, numCols] column-id space. Returns numCols.
func (m *Matrix) filterUnusedCols(g candidate.Givens) int {
	for i := range m.colIndex {
		m.colIndex[i] = 0
	}

	for pos, v := range g {
		if v <= 0 {
			continue
		}
		num := int(v - 1)
		info := geometry.CellAt(pos)
		m.colIndex[0+pos+1] = unusedCol
		m.colIndex[81*1+int(info.Row)*9+num+1] = unusedCol
		m.colIndex[81*2+int(info.Col)*9+num+1] = unusedCol
		m.colIndex[81*3+int(info.Box)*9+num+1] = unusedCol
	}

	index := uint16(1)
	for i := 1; i <= NumConstraints; i++ {
		if m.colIndex[i] == 0 {
			m.colIndex[i] = index
			index++
		}
	}
	return int(index - 1)
}

// Build resets m and constructs the exact-cover matrix for g: one column per
// live constraint, one row per (empty cell, usable digit) pair.
func (m *Matrix) Build(g candidate.Givens) {
	m.numCols = m.filterUnusedCols(g)

	for c := 0; c <= m.numCols; c++ {
		m.prev[c] = uint16(c - 1)
		m.next[c] = uint16(c + 1)
		m.up[c] = uint16(c)
		m.down[c] = uint16(c)
	}
	m.prev[0] = uint16(m.numCols)
	m.next[m.numCols] = 0

	for i := 0; i <= m.numCols; i++ {
		m.colSize[i] = 0
		m.dead[i] = false
	}
	m.lastIdx = m.numCols + 1
	m.liveCols = m.numCols

	var bitRows, bitCols, bitBoxes [geometry.Size]uint16
	for pos, v := range g {
		if v <= 0 {
			continue
		}
		num := uint16(v - 1)
		info := geometry.CellAt(pos)
		bitRows[info.Row] |= 1 << num
		bitCols[info.Col] |= 1 << num
		bitBoxes[info.Box] |= 1 << num
	}

	rowIdx := 1
	for pos, v := range g {
		if v != 0 {
			continue
		}
		info := geometry.CellAt(pos)
		usable := ^(bitRows[info.Row] | bitCols[info.Col] | bitBoxes[info.Box]) & 0x1FF
		for num := 0; num < geometry.Digits; num++ {
			if usable&(1<<uint(num)) == 0 {
				continue
			}
			head := m.lastIdx
			idx := m.lastIdx

			m.insert(idx+0, rowIdx, 0+pos+1)
			m.insert(idx+1, rowIdx, 81*1+int(info.Row)*9+num+1)
			m.insert(idx+2, rowIdx, 81*2+int(info.Col)*9+num+1)
			m.insert(idx+3, rowIdx, 81*3+int(info.Box)*9+num+1)

			m.rowPos[rowIdx] = uint8(pos)
			m.rowDigit[rowIdx] = uint8(num)
			idx += 4
			rowIdx++

			m.next[idx-1] = uint16(head)
			m.prev[head] = uint16(idx - 1)
			m.lastIdx = idx
		}
	}
}

// insert links node index into the column identified by constraint id col
// (1-based, pre-compaction) and into the row-id's horizontal ring.
func (m *Matrix) insert(index, rowID, col int) {
	c := m.colIndex[col]
	if c == unusedCol {
		panic("dlx: insert into filtered-out column")
	}
	m.prev[index] = uint16(index - 1)
	m.next[index] = uint16(index + 1)
	m.up[index] = m.up[c]
	m.down[index] = c
	m.row[index] = uint16(rowID)
	m.col[index] = c

	m.down[m.up[index]] = uint16(index)
	m.up[c] = uint16(index)
	m.colSize[c]++
}

// MinColumn returns the id of the lowest-size live column, scanning the
// header ring left to right (lowest index wins ties, spec §4.1). It returns
// (0, 0) when the ring is empty — callers must check IsEmpty first, since an
// empty ring means solved, not infeasible.
func (m *Matrix) MinColumn() (id int, size int) {
	first := int(m.next[0])
	if first == 0 {
		return 0, 0
	}
	minSize := int(m.colSize[first])
	minID := first
	if minSize == 0 {
		return minID, minSize
	}
	for i := int(m.next[first]); i != 0; i = int(m.next[i]) {
		s := int(m.colSize[i])
		if s < minSize {
			minSize = s
			minID = i
			if s == 0 {
				break
			}
		}
	}
	return minID, minSize
}

// MinColumnWide is MinColumn's counterpart using the horizontal-min
// primitive over the column-size array directly, for use once the header
// ring is large enough that a vector scan beats the ring walk (spec §4.4's
// "≈8 empties" threshold). It returns (0, 0) under the same condition as
// MinColumn: callers must check IsEmpty first.
func (m *Matrix) MinColumnWide() (id int, size int) {
	if m.numCols == 0 || m.liveCols == 0 {
		return 0, 0
	}
	v, idx := minarg.HorizontalMin(m.colSize[1:m.numCols+1], m.dead[1:m.numCols+1])
	if idx < 0 {
		return 0, 0
	}
	return idx + 1, int(v)
}

// Down, Up, Next, Prev expose the raw four-way links for the search kernel's
// hand-rolled, breakable traversal loops (the ForEach* helpers below cannot
// signal early termination through a callback).
func (m *Matrix) Down(node int) int { return int(m.down[node]) }
func (m *Matrix) Up(node int) int   { return int(m.up[node]) }
func (m *Matrix) Next(node int) int { return int(m.next[node]) }
func (m *Matrix) Prev(node int) int { return int(m.prev[node]) }

// Cover removes column index from the header ring and, for every row that
// intersects it, removes every other node in that row from its column —
// the standard DLX "cover" step (named remove() in the original).
func (m *Matrix) Cover(index int) {
	prev := m.prev[index]
	next := m.next[index]
	m.next[prev] = next
	m.prev[next] = prev
	m.dead[index] = true
	m.liveCols--

	for r := int(m.down[index]); r != index; r = int(m.down[r]) {
		for c := int(m.next[r]); c != r; c = int(m.next[c]) {
			up := m.up[c]
			down := m.down[c]
			m.down[up] = down
			m.up[down] = up
			m.colSize[m.col[c]]--
		}
	}
}

// Uncover is the exact inverse of Cover, restoring index and every node
// touched on its behalf (named restore() in the original). Callers must
// call Uncover in the reverse order their Covers happened.
func (m *Matrix) Uncover(index int) {
	for r := int(m.up[index]); r != index; r = int(m.up[r]) {
		for c := int(m.prev[r]); c != r; c = int(m.prev[c]) {
			down := m.down[c]
			up := m.up[c]
			m.up[down] = uint16(c)
			m.down[up] = uint16(c)
			m.colSize[m.col[c]]++
		}
	}

	next := m.next[index]
	prev := m.prev[index]
	m.prev[next] = uint16(index)
	m.next[prev] = uint16(index)
	m.dead[index] = false
	m.liveCols++
}

// NodeColumn returns the column id a node belongs to.
func (m *Matrix) NodeColumn(node int) int { return int(m.col[node]) }

// NodeRow returns the row id a node belongs to.
func (m *Matrix) NodeRow(node int) int { return int(m.row[node]) }
