package blocks

// Ghost returns where the current piece would land if dropped now.
// It is a throwaway copy; the engine never stores it.
func (e *Engine) Ghost() (Piece, bool) {
	if !e.hasPiece {
		return Piece{}, false
	}
	g := e.piece
	for Fits(e.grid, g, g.Row+1, g.Col) {
		g.Row++
	}
	return g, true
}
