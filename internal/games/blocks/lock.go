package blocks

// LockResult describes one lock event.
type LockResult struct {
	Rows    []int // indices of cleared rows, top to bottom, before removal
	Cleared int
}

// lock burns the piece into the grid, clears completed rows and spawns the
// next piece.
func (e *Engine) lock(p Piece) LockResult {
	for _, c := range p.Cells() {
		e.grid.Set(c.Row, c.Col, p.Color)
	}
	e.hasPiece = false
	e.locked++

	rows := e.clearFullRows(p.Row, p.Row+p.Shape.Side()-1)
	e.score += len(rows)
	e.lastResult = LockResult{Rows: rows, Cleared: len(rows)}

	e.spawn()
	return e.lastResult
}

// clearFullRows removes every full row in [from, to]. All full rows are
// found first; removal then runs top to bottom so each removal only shifts
// rows above the next index still to be removed.
func (e *Engine) clearFullRows(from, to int) []int {
	from = max(from, 0)
	to = min(to, e.grid.Rows()-1)

	var full []int
	for r := from; r <= to; r++ {
		if e.grid.RowFull(r) {
			full = append(full, r)
		}
	}
	for _, r := range full {
		e.grid.removeRow(r)
	}
	return full
}
