package blocks

import (
	"math/rand"
)

// Direction is a movement request for the current piece.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirDown
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// Options configures an Engine.
type Options struct {
	Rows          int
	Cols          int
	SpawnRow      int
	SpawnCol      int
	SpawnAttempts int // rows above row 0 a spawn may retreat to
	GravityTicks  int // 0 disables gravity
	Catalog       Catalog
	Palette       Palette
}

// DefaultOptions returns the standard 20x10 setup without gravity.
func DefaultOptions() Options {
	return Options{
		Rows:          DefaultRows,
		Cols:          DefaultCols,
		SpawnRow:      2,
		SpawnCol:      3,
		SpawnAttempts: 3,
		Catalog:       DefaultCatalog(),
		Palette:       DefaultPalette(),
	}
}

// Engine owns the complete game state: grid, current piece, score and the
// terminal flag. All mutation goes through its methods. Illegal requests
// are ignored and leave state untouched.
type Engine struct {
	opts Options
	rng  *rand.Rand

	grid     *Grid
	piece    Piece
	hasPiece bool
	score    int
	gameOver bool

	tick       uint64
	locked     int
	lastResult LockResult
}

// NewEngine creates an engine and spawns the first piece.
// The random source drives shape and color selection.
func NewEngine(opts Options, rng *rand.Rand) *Engine {
	if len(opts.Catalog) == 0 {
		opts.Catalog = DefaultCatalog()
	}
	if len(opts.Palette) == 0 {
		opts.Palette = DefaultPalette()
	}
	if opts.Rows <= 0 || opts.Cols <= 0 {
		opts.Rows, opts.Cols = DefaultRows, DefaultCols
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(0))
	}

	e := &Engine{
		opts: opts,
		rng:  rng,
		grid: NewGrid(opts.Rows, opts.Cols),
	}
	e.Reset()
	return e
}

// Reset empties the grid, zeroes the score, clears the terminal flag and
// spawns a new piece.
func (e *Engine) Reset() {
	e.grid.Clear()
	e.score = 0
	e.gameOver = false
	e.tick = 0
	e.locked = 0
	e.lastResult = LockResult{}
	e.spawn()
}

// Move shifts the piece one cell if the target position fits.
func (e *Engine) Move(d Direction) {
	e.tryMove(d)
}

func (e *Engine) tryMove(d Direction) bool {
	if e.gameOver || !e.hasPiece {
		return false
	}

	row, col := e.piece.Row, e.piece.Col
	switch d {
	case DirLeft:
		col--
	case DirRight:
		col++
	case DirDown:
		row++
	default:
		return false
	}

	if !Fits(e.grid, e.piece, row, col) {
		return false
	}
	e.piece.Row, e.piece.Col = row, col
	return true
}

// Rotate turns the piece clockwise, nudging it back inside the walls and
// upward out of collisions. A rotation with no legal placement is dropped.
func (e *Engine) Rotate() {
	if e.gameOver || !e.hasPiece {
		return
	}
	if p, ok := rotated(e.grid, e.piece); ok {
		e.piece = p
	}
}

// HardDrop locks the piece at its ghost position.
func (e *Engine) HardDrop() {
	if e.gameOver || !e.hasPiece {
		return
	}
	ghost, _ := e.Ghost()
	e.lock(ghost)
}

// Forfeit ends the game as if the next spawn had failed. The grid and
// score are kept so the result can still be recorded.
func (e *Engine) Forfeit() {
	if e.gameOver {
		return
	}
	e.gameOver = true
	e.hasPiece = false
}

// Tick advances the simulation by one step. With gravity enabled the piece
// falls one row every GravityTicks ticks and locks once it can fall no
// further.
func (e *Engine) Tick() {
	if e.gameOver {
		return
	}
	e.tick++
	if e.opts.GravityTicks <= 0 || e.tick%uint64(e.opts.GravityTicks) != 0 {
		return
	}
	if !e.tryMove(DirDown) && e.hasPiece {
		e.lock(e.piece)
	}
}

// Rows returns the grid height.
func (e *Engine) Rows() int { return e.grid.Rows() }

// Cols returns the grid width.
func (e *Engine) Cols() int { return e.grid.Cols() }

// Cell returns the locked cell value at (row, col).
func (e *Engine) Cell(row, col int) int { return e.grid.Get(row, col) }

// GridSnapshot returns a copy of the locked cells.
func (e *Engine) GridSnapshot() [][]int { return e.grid.Snapshot() }

// Piece returns a copy of the current piece. The second result is false
// when no piece is in play (after game over).
func (e *Engine) Piece() (Piece, bool) { return e.piece, e.hasPiece }

// Score returns the number of cleared rows.
func (e *Engine) Score() int { return e.score }

// GameOver reports whether the terminal flag is set.
func (e *Engine) GameOver() bool { return e.gameOver }

// Locked returns how many pieces have been locked since the last reset.
func (e *Engine) Locked() int { return e.locked }

// Ticks returns the number of ticks since the last reset.
func (e *Engine) Ticks() uint64 { return e.tick }

// LastLock returns the result of the most recent lock.
func (e *Engine) LastLock() LockResult { return e.lastResult }

// Palette returns the color table pieces index into.
func (e *Engine) Palette() Palette { return e.opts.Palette }

// Catalog returns the shapes pieces are drawn from.
func (e *Engine) Catalog() Catalog { return e.opts.Catalog }
