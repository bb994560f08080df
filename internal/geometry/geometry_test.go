package geometry

import "testing"

func TestCellAtKnownPositions(t *testing.T) {
	cases := []struct {
		pos                           int
		row, col, box, cellInBox uint8
	}{
		{0, 0, 0, 0, 0},
		{8, 0, 8, 2, 2},
		{9, 1, 0, 0, 3},
		{40, 4, 4, 4, 4},
		{80, 8, 8, 8, 8},
	}
	for _, c := range cases {
		got := CellAt(c.pos)
		want := CellInfo{Row: c.row, Col: c.col, Box: c.box, CellInBox: c.cellInBox}
		if got != want {
			t.Errorf("CellAt(%d) = %+v, want %+v", c.pos, got, want)
		}
	}
}

func TestPosInBoxIsInverseOfCellAt(t *testing.T) {
	for pos := 0; pos < Cells; pos++ {
		info := CellAt(pos)
		got := PosInBox(int(info.Box), int(info.CellInBox))
		if got != pos {
			t.Errorf("PosInBox(%d,%d) = %d, want %d (inverse of CellAt(%d)=%+v)",
				info.Box, info.CellInBox, got, pos, pos, info)
		}
	}
}

func TestNeighboursAreDistinctAndExclSelf(t *testing.T) {
	for pos := 0; pos < Cells; pos++ {
		seen := make(map[uint8]bool, Neighbors)
		for _, n := range Neighbours(pos) {
			if int(n) == pos {
				t.Errorf("Neighbours(%d) contains self", pos)
			}
			if seen[n] {
				t.Errorf("Neighbours(%d) contains duplicate %d", pos, n)
			}
			seen[n] = true
		}
		if len(seen) != Neighbors {
			t.Errorf("Neighbours(%d) has %d entries, want %d", pos, len(seen), Neighbors)
		}
	}
}

func TestNeighboursShareRowColOrBox(t *testing.T) {
	for pos := 0; pos < Cells; pos++ {
		info := CellAt(pos)
		for _, n := range Neighbours(pos) {
			ni := CellAt(int(n))
			if ni.Row != info.Row && ni.Col != info.Col && ni.Box != info.Box {
				t.Errorf("Neighbours(%d): %d shares neither row, col, nor box", pos, n)
			}
		}
	}
}

func TestNeighboursSymmetric(t *testing.T) {
	for pos := 0; pos < Cells; pos++ {
		for _, n := range Neighbours(pos) {
			found := false
			for _, back := range Neighbours(int(n)) {
				if int(back) == pos {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("neighbour relation not symmetric: %d -> %d but not back", pos, n)
			}
		}
	}
}
