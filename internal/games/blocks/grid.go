package blocks

// Empty marks a grid cell that holds no locked block.
const Empty = -1

// Default board dimensions.
const (
	DefaultRows = 20
	DefaultCols = 10
)

// Grid is the fixed-size board of locked cells.
// Each cell is Empty or a palette color index. Dimensions never change
// after construction.
type Grid struct {
	rows  int
	cols  int
	cells [][]int
}

// NewGrid creates an empty grid with the given dimensions.
func NewGrid(rows, cols int) *Grid {
	g := &Grid{rows: rows, cols: cols}
	g.cells = make([][]int, rows)
	for r := range g.cells {
		g.cells[r] = emptyRow(cols)
	}
	return g
}

func emptyRow(cols int) []int {
	row := make([]int, cols)
	for c := range row {
		row[c] = Empty
	}
	return row
}

// Rows returns the grid height.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid width.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (row, col) lies inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Get returns the cell value, or Empty when out of bounds.
func (g *Grid) Get(row, col int) int {
	if !g.InBounds(row, col) {
		return Empty
	}
	return g.cells[row][col]
}

// Set writes a cell value. Out-of-bounds writes are ignored.
func (g *Grid) Set(row, col, value int) {
	if g.InBounds(row, col) {
		g.cells[row][col] = value
	}
}

// IsEmpty reports whether an in-bounds cell is free.
// Out-of-bounds cells are never empty.
func (g *Grid) IsEmpty(row, col int) bool {
	return g.InBounds(row, col) && g.cells[row][col] == Empty
}

// RowFull reports whether every cell in the row is occupied.
func (g *Grid) RowFull(row int) bool {
	if row < 0 || row >= g.rows {
		return false
	}
	for _, v := range g.cells[row] {
		if v == Empty {
			return false
		}
	}
	return true
}

// removeRow deletes the row and inserts a fresh empty row at the top.
// Rows above the removed one shift down by one; rows below keep their index.
func (g *Grid) removeRow(row int) {
	if row < 0 || row >= g.rows {
		return
	}
	copy(g.cells[1:row+1], g.cells[:row])
	g.cells[0] = emptyRow(g.cols)
}

// Clear empties every cell.
func (g *Grid) Clear() {
	for r := range g.cells {
		for c := range g.cells[r] {
			g.cells[r][c] = Empty
		}
	}
}

// Snapshot returns a deep copy of the cell values.
func (g *Grid) Snapshot() [][]int {
	out := make([][]int, g.rows)
	for r, row := range g.cells {
		out[r] = make([]int, g.cols)
		copy(out[r], row)
	}
	return out
}
