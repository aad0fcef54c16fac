package blocks

// Piece is the falling, player-controlled block.
// Row and Col locate the top-left corner of the shape's bounding square.
type Piece struct {
	Row   int
	Col   int
	Shape Shape
	Color int
}

// Point is a grid coordinate.
type Point struct {
	Row, Col int
}

// Cells returns the absolute grid coordinates of every occupied cell.
func (p Piece) Cells() []Point {
	side := p.Shape.Side()
	cells := make([]Point, 0, side*side)
	for i := 0; i < side; i++ {
		for j := 0; j < side; j++ {
			if p.Shape.At(i, j) {
				cells = append(cells, Point{Row: p.Row + i, Col: p.Col + j})
			}
		}
	}
	return cells
}
