package blocks

// Fits reports whether the piece's shape can occupy the grid with its
// top-left corner at (row, col): every occupied cell must be in bounds
// and land on an empty grid cell.
func Fits(g *Grid, p Piece, row, col int) bool {
	side := p.Shape.Side()
	for i := 0; i < side; i++ {
		for j := 0; j < side; j++ {
			if p.Shape.At(i, j) && !g.IsEmpty(row+i, col+j) {
				return false
			}
		}
	}
	return true
}

// ExceedsColumnBounds reports whether any occupied cell lies outside
// [0, cols), ignoring rows and occupancy.
func ExceedsColumnBounds(g *Grid, p Piece) bool {
	return columnOverflow(g, p) != 0
}

// ExceedsBounds reports whether any occupied cell lies outside the grid
// rectangle, ignoring occupancy.
func ExceedsBounds(g *Grid, p Piece) bool {
	for _, c := range p.Cells() {
		if !g.InBounds(c.Row, c.Col) {
			return true
		}
	}
	return false
}

// columnOverflow returns -1 when an occupied cell lies left of column 0,
// +1 when one lies right of the last column, and 0 otherwise.
func columnOverflow(g *Grid, p Piece) int {
	for _, c := range p.Cells() {
		if c.Col < 0 {
			return -1
		}
		if c.Col >= g.Cols() {
			return 1
		}
	}
	return 0
}
