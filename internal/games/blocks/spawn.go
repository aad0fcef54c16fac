package blocks

// spawn replaces the current piece with a random shape and color at the
// spawn point. If the spawn point is blocked, it retreats upward one row at
// a time down to -SpawnAttempts; when nothing fits the game ends and no
// piece remains in play.
func (e *Engine) spawn() {
	p := Piece{
		Row:   e.opts.SpawnRow,
		Col:   e.opts.SpawnCol,
		Color: e.rng.Intn(len(e.opts.Palette)),
		Shape: e.opts.Catalog[e.rng.Intn(len(e.opts.Catalog))],
	}

	for !Fits(e.grid, p, p.Row, p.Col) {
		p.Row--
		if p.Row < -e.opts.SpawnAttempts {
			e.gameOver = true
			e.hasPiece = false
			return
		}
	}

	e.piece = p
	e.hasPiece = true
}
