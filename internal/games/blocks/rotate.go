package blocks

// rotated computes the clockwise rotation of p resolved against the grid.
// It shifts the candidate horizontally back inside the walls, then pushes it
// up until it fits. It returns false when no placement exists; p itself is
// never modified.
func rotated(g *Grid, p Piece) (Piece, bool) {
	cand := p
	cand.Shape = p.Shape.Rotate()
	side := cand.Shape.Side()

	for i := 0; ExceedsColumnBounds(g, cand); i++ {
		if i >= side {
			return p, false
		}
		cand.Col -= columnOverflow(g, cand)
	}

	for i := 0; !Fits(g, cand, cand.Row, cand.Col); i++ {
		if i >= side {
			return p, false
		}
		cand.Row--
		if ExceedsBounds(g, cand) {
			return p, false
		}
	}

	return cand, true
}
