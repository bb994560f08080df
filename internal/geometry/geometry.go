// Package geometry holds the immutable, precomputed layout tables shared by
// every solver core: which row/column/box a cell belongs to, and which 20
// other cells are its peers. These tables are built once at package init and
// never mutated (spec §3, §5: "the only process-wide state is immutable
// precomputed geometry... initialised before first search").
package geometry

const (
	// Size is the board dimension (9x9).
	Size = 9
	// Cells is the total number of board cells (81).
	Cells = Size * Size
	// Neighbors is the number of distinct peers of any cell (20).
	Neighbors = 20
	// Digits is the number of digits (9), used for per-digit bitset families.
	Digits = 9
)

// CellInfo describes the row, column, box, and position-within-box of a cell.
type CellInfo struct {
	Row       uint8
	Col       uint8
	Box       uint8
	CellInBox uint8
}

// cellInfo[pos] is the (row, col, box, cellInBox) tuple for board cell pos.
var cellInfo [Cells]CellInfo

// boxInfo[box*9+cellInBox] is the inverse of cellInfo: the board position.
var boxInfo [Cells]uint8

// neighbours[pos] holds the 20 distinct peers of pos (same row, column, or
// box, excluding pos itself), in a fixed deterministic order.
var neighbours [Cells][Neighbors]uint8

func init() {
	for pos := 0; pos < Cells; pos++ {
		row := pos / Size
		col := pos % Size
		box := (row/3)*3 + col/3
		cellInBox := (row%3)*3 + col%3
		cellInfo[pos] = CellInfo{Row: uint8(row), Col: uint8(col), Box: uint8(box), CellInBox: uint8(cellInBox)}
		boxInfo[box*9+cellInBox] = uint8(pos)
	}

	for pos := 0; pos < Cells; pos++ {
		info := cellInfo[pos]
		n := 0
		for other := 0; other < Cells; other++ {
			if other == pos {
				continue
			}
			oi := cellInfo[other]
			if oi.Row == info.Row || oi.Col == info.Col || oi.Box == info.Box {
				neighbours[pos][n] = uint8(other)
				n++
			}
		}
		if n != Neighbors {
			panic("geometry: neighbour count invariant violated")
		}
	}
}

// CellAt returns the precomputed (row, col, box, cellInBox) info for pos.
func CellAt(pos int) CellInfo {
	return cellInfo[pos]
}

// PosInBox returns the board position of the cell at cellInBox within box.
func PosInBox(box, cellInBox int) int {
	return int(boxInfo[box*9+cellInBox])
}

// Neighbours returns the 20 peers of pos.
func Neighbours(pos int) [Neighbors]uint8 {
	return neighbours[pos]
}
