package blocks

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
)

const (
	cellWidth  = 2  // terminal columns per board cell
	panelWidth = 20 // side panel with stats and controls
	panelGap   = 2
)

// boardSize returns the terminal area needed for the bordered board plus
// the title line above it.
func boardSize(rows, cols int) (w, h int) {
	return cols*cellWidth + 2, rows + 3
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.engine == nil {
		return
	}

	w, h := dst.Width(), dst.Height()
	boardW, boardH := boardSize(g.engine.Rows(), g.engine.Cols())
	if w < boardW || h < boardH {
		g.renderTooSmall(dst)
		return
	}

	// Side panel only when there is room for it.
	showPanel := w >= boardW+panelGap+panelWidth
	totalW := boardW
	if showPanel {
		totalW += panelGap + panelWidth
	}

	boardX := (w - totalW) / 2
	boardY := (h-boardH)/2 + 1

	title := g.Title()
	dst.DrawText(boardX+(boardW-len(title))/2, boardY-1, title)

	g.renderBoard(dst, boardX, boardY)
	if showPanel {
		g.renderPanel(dst, boardX+boardW+panelGap, boardY)
	}
	g.renderOverlays(dst, boardX, boardY, boardW, boardH-1)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// drawCell paints one board cell (two terminal columns) if it is visible.
func (g *Game) drawCell(dst *core.Screen, boardX, boardY, row, col int, r rune, c core.Color) {
	if !core.NewRect(0, 0, g.engine.Cols(), g.engine.Rows()).Contains(col, row) {
		return
	}
	x := boardX + 1 + col*cellWidth
	y := boardY + 1 + row
	for i := range cellWidth {
		dst.SetColored(x+i, y, r, c)
	}
}

// renderBoard draws the border, locked cells, ghost and falling piece.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	e := g.engine
	boardW, boardH := boardSize(e.Rows(), e.Cols())
	dst.DrawBox(core.NewRect(boardX, boardY, boardW, boardH-1), core.ColorGray)

	palette := e.Palette()
	for r := range e.Rows() {
		for c := range e.Cols() {
			v := e.Cell(r, c)
			if v == Empty {
				dst.SetColored(boardX+1+c*cellWidth, boardY+1+r, '·', core.ColorDarkGray)
				continue
			}
			g.drawCell(dst, boardX, boardY, r, c, '█', palette.Color(v))
		}
	}

	piece, ok := e.Piece()
	if !ok {
		return
	}
	if ghost, ok := e.Ghost(); ok && ghost.Row != piece.Row {
		for _, p := range ghost.Cells() {
			g.drawCell(dst, boardX, boardY, p.Row, p.Col, '░', core.ColorGray)
		}
	}
	for _, p := range piece.Cells() {
		g.drawCell(dst, boardX, boardY, p.Row, p.Col, '█', palette.Color(piece.Color))
	}
}

// renderPanel draws stats and the control reference.
func (g *Game) renderPanel(dst *core.Screen, x, y int) {
	e := g.engine
	lines := []string{
		fmt.Sprintf("Lines:  %d", e.Score()),
		fmt.Sprintf("Pieces: %d", e.Locked()),
		"",
		"←/→   move",
		"↓     step down",
		"↑     rotate",
		"Space drop",
		"P     pause",
		"X     give up",
		"Q     quit",
	}
	for i, line := range lines {
		dst.DrawText(x, y+1+i, line)
	}

	if last := e.LastLock(); last.Cleared > 1 {
		dst.DrawColoredText(x, y+1+len(lines)+1, fmt.Sprintf("%d rows at once!", last.Cleared), core.ColorYellow)
	}
}

// renderOverlays draws pause and game over messages over the board.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	var lines []string
	switch {
	case g.engine.GameOver():
		lines = []string{
			"GAME OVER",
			fmt.Sprintf("Lines: %d", g.engine.Score()),
			"R to restart",
		}
	case g.paused:
		lines = []string{"PAUSED", "P to resume"}
	default:
		return
	}

	startY := boardY + (boardH-len(lines))/2
	for i, line := range lines {
		x := boardX + (boardW-len([]rune(line)))/2
		dst.DrawColoredText(x, startY+i, line, core.ColorWhite)
	}
}
