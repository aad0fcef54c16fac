package blocks

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	horizontalI = MustParseShape("..../####/..../....")
	verticalI   = horizontalI.Rotate() // occupies column 2 of its square
	shapeTee    = MustParseShape(shapeT)
)

func newTestEngine(t *testing.T, seed int64) *Engine {
	t.Helper()
	return NewEngine(DefaultOptions(), rand.New(rand.NewSource(seed)))
}

// place puts a piece in play at an exact position, bypassing spawn.
func place(t *testing.T, e *Engine, p Piece) {
	t.Helper()
	require.True(t, Fits(e.grid, p, p.Row, p.Col), "test piece must fit")
	e.piece = p
	e.hasPiece = true
}

// requireConsistent checks the invariants that must hold after every command.
func requireConsistent(t *testing.T, e *Engine) {
	t.Helper()

	snap := e.GridSnapshot()
	require.Len(t, snap, DefaultRows)
	for _, row := range snap {
		require.Len(t, row, DefaultCols)
	}

	p, ok := e.Piece()
	if e.GameOver() {
		require.False(t, ok, "no piece in play after game over")
		return
	}
	require.True(t, ok)
	for _, c := range p.Cells() {
		require.True(t, e.grid.InBounds(c.Row, c.Col), "piece cell %v out of bounds", c)
		require.Equal(t, Empty, e.Cell(c.Row, c.Col), "piece overlaps locked cell %v", c)
	}
}

func TestNewEngineSpawnsPiece(t *testing.T) {
	e := newTestEngine(t, 1)

	p, ok := e.Piece()
	require.True(t, ok)
	assert.Equal(t, 2, p.Row)
	assert.Equal(t, 3, p.Col)
	assert.GreaterOrEqual(t, p.Color, 0)
	assert.Less(t, p.Color, len(DefaultPalette()))
	assert.False(t, e.GameOver())
	assert.Zero(t, e.Score())
	assert.Zero(t, filledCount(e.grid))
}

func TestSpawnDrawsFromCatalogAndPalette(t *testing.T) {
	e := newTestEngine(t, 7)
	cat := e.Catalog()

	for range 200 {
		e.Reset()
		p, ok := e.Piece()
		require.True(t, ok)
		assert.Less(t, p.Color, len(e.Palette()))

		found := false
		for _, s := range cat {
			if s.Equal(p.Shape) {
				found = true
				break
			}
		}
		assert.True(t, found, "shape %s not in catalog", p.Shape)
	}
}

func TestMoveStopsAtWalls(t *testing.T) {
	e := newTestEngine(t, 1)
	place(t, e, Piece{Row: 5, Col: 3, Shape: horizontalI, Color: 1})

	for range DefaultCols {
		e.Move(DirLeft)
	}
	p, _ := e.Piece()
	assert.Equal(t, 0, p.Col)

	for range DefaultCols {
		e.Move(DirRight)
	}
	p, _ = e.Piece()
	assert.Equal(t, 6, p.Col)
	requireConsistent(t, e)
}

func TestMoveDownStopsAtFloor(t *testing.T) {
	e := newTestEngine(t, 1)
	place(t, e, Piece{Row: 0, Col: 3, Shape: horizontalI, Color: 1})

	for range DefaultRows * 2 {
		e.Move(DirDown)
	}
	p, _ := e.Piece()
	assert.Equal(t, 18, p.Row, "row 1 of the bitmap rests on the floor")
	assert.Zero(t, e.Locked(), "soft drop never locks")
}

func TestRejectedCommandIsIdempotent(t *testing.T) {
	e := newTestEngine(t, 1)
	place(t, e, Piece{Row: 4, Col: -2, Shape: verticalI, Color: 2})

	before, _ := e.Piece()
	grid := e.GridSnapshot()
	for range 3 {
		e.Move(DirLeft)
	}
	after, _ := e.Piece()

	assert.Equal(t, before, after)
	assert.Equal(t, grid, e.GridSnapshot())
	assert.Zero(t, e.Score())
}

func TestMoveBlockedByStack(t *testing.T) {
	e := newTestEngine(t, 1)
	e.grid.Set(6, 2, 0)
	place(t, e, Piece{Row: 5, Col: 3, Shape: horizontalI, Color: 1})

	e.Move(DirLeft)
	p, _ := e.Piece()
	assert.Equal(t, 3, p.Col)
}

func TestRotateTPiece(t *testing.T) {
	e := newTestEngine(t, 1)
	place(t, e, Piece{Row: 5, Col: 4, Shape: shapeTee, Color: 3})

	e.Rotate()
	p, _ := e.Piece()
	assert.Equal(t, ".#./.##/.#.", p.Shape.String())
	assert.Equal(t, 5, p.Row)
	assert.Equal(t, 4, p.Col)
	assert.Equal(t, 3, p.Color)
}

func TestRotateDoesNotMutateCatalog(t *testing.T) {
	e := newTestEngine(t, 1)
	before := make([]string, len(e.Catalog()))
	for i, s := range e.Catalog() {
		before[i] = s.String()
	}

	for range 10 {
		e.Rotate()
	}

	for i, s := range e.Catalog() {
		assert.Equal(t, before[i], s.String())
	}
}

func TestRotateKicksOffLeftWall(t *testing.T) {
	e := newTestEngine(t, 1)
	place(t, e, Piece{Row: 5, Col: -2, Shape: verticalI, Color: 1})

	e.Rotate()
	p, _ := e.Piece()
	assert.Equal(t, "..../..../####/....", p.Shape.String())
	assert.Equal(t, 0, p.Col)
	assert.Equal(t, 5, p.Row)
	requireConsistent(t, e)
}

func TestRotateKicksOffRightWall(t *testing.T) {
	e := newTestEngine(t, 1)
	place(t, e, Piece{Row: 5, Col: 7, Shape: verticalI, Color: 1})

	e.Rotate()
	p, _ := e.Piece()
	assert.Equal(t, 6, p.Col)
	assert.Equal(t, 5, p.Row)
	requireConsistent(t, e)
}

func TestRotateKicksUpFromFloor(t *testing.T) {
	e := newTestEngine(t, 1)
	place(t, e, Piece{Row: 18, Col: 4, Shape: shapeTee, Color: 1})

	e.Rotate()
	p, _ := e.Piece()
	assert.Equal(t, ".#./.##/.#.", p.Shape.String())
	assert.Equal(t, 17, p.Row)
	assert.Equal(t, 4, p.Col)
	requireConsistent(t, e)
}

func TestRotateAbortsWhenPushedOutOfGrid(t *testing.T) {
	e := newTestEngine(t, 1)
	start := Piece{Row: 18, Col: 3, Shape: horizontalI, Color: 1}
	place(t, e, start)

	e.Rotate()
	p, _ := e.Piece()
	assert.Equal(t, start, p)
}

func TestRotateAbortsAgainstStack(t *testing.T) {
	e := newTestEngine(t, 1)
	for r := range 16 {
		fillRow(e.grid, r, 1)
	}
	for r := 16; r < DefaultRows; r++ {
		fillRow(e.grid, r, 1, 5)
	}
	start := Piece{Row: 16, Col: 3, Shape: verticalI, Color: 2}
	place(t, e, start)
	grid := e.GridSnapshot()

	e.Rotate()
	p, _ := e.Piece()
	assert.Equal(t, start, p)
	assert.Equal(t, grid, e.GridSnapshot())
}

func TestHardDropLocksAtGhost(t *testing.T) {
	e := newTestEngine(t, 1)
	place(t, e, Piece{Row: 0, Col: 2, Shape: shapeTee, Color: 5})

	ghost, ok := e.Ghost()
	require.True(t, ok)
	e.HardDrop()

	for _, c := range ghost.Cells() {
		assert.Equal(t, 5, e.Cell(c.Row, c.Col))
	}
	assert.Equal(t, 4, filledCount(e.grid))
	assert.Equal(t, 1, e.Locked())
	assert.Zero(t, e.Score())

	next, ok := e.Piece()
	require.True(t, ok, "a new piece spawns after locking")
	assert.Equal(t, 2, next.Row)
	assert.Equal(t, 3, next.Col)
}

func TestSingleRowClear(t *testing.T) {
	e := newTestEngine(t, 1)
	fillRow(e.grid, 19, 1, 3, 4, 5, 6)
	e.grid.Set(18, 0, 2)
	place(t, e, Piece{Row: 0, Col: 3, Shape: horizontalI, Color: 4})

	e.HardDrop()

	assert.Equal(t, 1, e.Score())
	assert.Equal(t, []int{19}, e.LastLock().Rows)
	assert.Equal(t, 2, e.Cell(19, 0), "row above shifts down")
	assert.Equal(t, 1, filledCount(e.grid))
	for c := range DefaultCols {
		assert.Equal(t, Empty, e.Cell(0, c), "empty row inserted at top")
	}
	requireConsistent(t, e)
}

func TestFourRowClear(t *testing.T) {
	e := newTestEngine(t, 1)
	for r := 16; r < DefaultRows; r++ {
		fillRow(e.grid, r, 1, 0)
	}
	place(t, e, Piece{Row: 0, Col: -2, Shape: verticalI, Color: 4})

	e.HardDrop()

	assert.Equal(t, 4, e.Score())
	assert.Equal(t, []int{16, 17, 18, 19}, e.LastLock().Rows)
	assert.Zero(t, filledCount(e.grid))
	requireConsistent(t, e)
}

func TestNonAdjacentRowClear(t *testing.T) {
	e := newTestEngine(t, 1)
	fillRow(e.grid, 17, 1, 0)
	fillRow(e.grid, 18, 1, 0, 5)
	fillRow(e.grid, 19, 1, 0)
	place(t, e, Piece{Row: 0, Col: -2, Shape: verticalI, Color: 4})

	e.HardDrop()

	assert.Equal(t, 2, e.Score())
	assert.Equal(t, []int{17, 19}, e.LastLock().Rows)

	// Old row 18 is now the bottom row, old row 16 sits above it.
	assert.Equal(t, 4, e.Cell(19, 0))
	assert.Equal(t, 1, e.Cell(19, 1))
	assert.Equal(t, Empty, e.Cell(19, 5))
	assert.Equal(t, 4, e.Cell(18, 0))
	assert.Equal(t, Empty, e.Cell(18, 1))
	for c := range DefaultCols {
		assert.Equal(t, Empty, e.Cell(17, c))
	}
	assert.Equal(t, 10, filledCount(e.grid))
	requireConsistent(t, e)
}

func TestSpawnRetreatsUpward(t *testing.T) {
	opts := DefaultOptions()
	opts.Catalog = Catalog{horizontalI}
	e := NewEngine(opts, rand.New(rand.NewSource(1)))
	for r := 1; r < DefaultRows; r++ {
		fillRow(e.grid, r, 1, 9)
	}

	e.spawn()

	p, ok := e.Piece()
	require.True(t, ok)
	assert.False(t, e.GameOver())
	assert.Equal(t, -1, p.Row, "bitmap row 1 lands on grid row 0")
	requireConsistent(t, e)
}

// blockSpawn fills the top rows so no catalog shape can enter the grid.
func blockSpawn(e *Engine) {
	for r := range 6 {
		fillRow(e.grid, r, 1, 9)
	}
}

func TestGameOverWhenSpawnBlocked(t *testing.T) {
	e := newTestEngine(t, 1)
	blockSpawn(e)

	e.spawn()

	assert.True(t, e.GameOver())
	_, ok := e.Piece()
	assert.False(t, ok)
	_, ok = e.Ghost()
	assert.False(t, ok)
	requireConsistent(t, e)
}

func TestCommandsIgnoredAfterGameOver(t *testing.T) {
	e := newTestEngine(t, 1)
	blockSpawn(e)
	e.spawn()
	require.True(t, e.GameOver())

	grid := e.GridSnapshot()
	score, ticks, locked := e.Score(), e.Ticks(), e.Locked()

	e.Move(DirLeft)
	e.Move(DirRight)
	e.Move(DirDown)
	e.Rotate()
	e.HardDrop()
	e.Tick()

	assert.True(t, e.GameOver())
	assert.Equal(t, grid, e.GridSnapshot())
	assert.Equal(t, score, e.Score())
	assert.Equal(t, ticks, e.Ticks())
	assert.Equal(t, locked, e.Locked())
}

func TestForfeitKeepsBoardAndScore(t *testing.T) {
	e := newTestEngine(t, 1)
	fillRow(e.grid, 19, 1, 0)
	place(t, e, Piece{Row: 0, Col: -2, Shape: verticalI, Color: 0})
	e.HardDrop()
	require.Equal(t, 1, e.Score())
	grid := e.GridSnapshot()

	e.Forfeit()

	assert.True(t, e.GameOver())
	_, ok := e.Piece()
	assert.False(t, ok)
	assert.Equal(t, 1, e.Score())
	assert.Equal(t, grid, e.GridSnapshot())

	e.Forfeit()
	assert.True(t, e.GameOver(), "forfeit after game over is a no-op")
	requireConsistent(t, e)
}

func TestResetAfterGameOver(t *testing.T) {
	e := newTestEngine(t, 1)
	fillRow(e.grid, 19, 1, 0)
	place(t, e, Piece{Row: 0, Col: -2, Shape: verticalI, Color: 0})
	e.HardDrop()
	require.Equal(t, 1, e.Score())

	blockSpawn(e)
	e.spawn()
	require.True(t, e.GameOver())

	e.Reset()

	assert.False(t, e.GameOver())
	assert.Zero(t, e.Score())
	assert.Zero(t, e.Locked())
	assert.Zero(t, filledCount(e.grid))
	p, ok := e.Piece()
	require.True(t, ok)
	assert.Equal(t, 2, p.Row)
	assert.Equal(t, 3, p.Col)
}

func TestGhostLandsOnStack(t *testing.T) {
	e := newTestEngine(t, 1)
	e.grid.Set(12, 4, 0)
	place(t, e, Piece{Row: 2, Col: 3, Shape: horizontalI, Color: 1})

	ghost, ok := e.Ghost()
	require.True(t, ok)
	assert.Equal(t, 10, ghost.Row)
	assert.Equal(t, 3, ghost.Col)
	assert.True(t, Fits(e.grid, ghost, ghost.Row, ghost.Col))
	assert.False(t, Fits(e.grid, ghost, ghost.Row+1, ghost.Col))

	p, _ := e.Piece()
	assert.Equal(t, 2, p.Row, "ghost never moves the piece")
}

func TestGravityMovesAndLocks(t *testing.T) {
	opts := DefaultOptions()
	opts.GravityTicks = 3
	e := NewEngine(opts, rand.New(rand.NewSource(3)))
	place(t, e, Piece{Row: 2, Col: 3, Shape: horizontalI, Color: 1})

	e.Tick()
	e.Tick()
	p, _ := e.Piece()
	assert.Equal(t, 2, p.Row)

	e.Tick()
	p, _ = e.Piece()
	assert.Equal(t, 3, p.Row)

	ghost, _ := e.Ghost()
	place(t, e, ghost)
	for range 3 {
		e.Tick()
	}
	assert.Equal(t, 1, e.Locked())
	assert.Equal(t, 4, filledCount(e.grid))
}

func TestNoGravityByDefault(t *testing.T) {
	e := newTestEngine(t, 1)
	start, _ := e.Piece()
	for range 100 {
		e.Tick()
	}
	p, _ := e.Piece()
	assert.Equal(t, start, p)
	assert.Equal(t, uint64(100), e.Ticks())
}

// playRandom issues n random commands and checks invariants after each.
func playRandom(t *testing.T, e *Engine, seed int64, n int) {
	t.Helper()
	cmds := rand.New(rand.NewSource(seed))
	lastScore := 0
	for range n {
		switch cmds.Intn(6) {
		case 0:
			e.Move(DirLeft)
		case 1:
			e.Move(DirRight)
		case 2:
			e.Move(DirDown)
		case 3:
			e.Rotate()
		case 4:
			e.HardDrop()
		case 5:
			e.Tick()
		}
		requireConsistent(t, e)
		require.GreaterOrEqual(t, e.Score(), lastScore, "score never decreases")
		lastScore = e.Score()
	}
}

func TestRandomPlayKeepsInvariants(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		opts := DefaultOptions()
		opts.GravityTicks = 2
		e := NewEngine(opts, rand.New(rand.NewSource(seed)))
		playRandom(t, e, seed*31, 1500)
	}
}

func TestDeterministicBySeed(t *testing.T) {
	a := newTestEngine(t, 42)
	b := newTestEngine(t, 42)

	playRandom(t, a, 9, 800)
	playRandom(t, b, 9, 800)

	assert.Equal(t, a.GridSnapshot(), b.GridSnapshot())
	assert.Equal(t, a.Score(), b.Score())
	assert.Equal(t, a.GameOver(), b.GameOver())
	pa, oka := a.Piece()
	pb, okb := b.Piece()
	assert.Equal(t, oka, okb)
	assert.Equal(t, pa, pb)
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "left", DirLeft.String())
	assert.Equal(t, "right", DirRight.String())
	assert.Equal(t, "down", DirDown.String())
	assert.Equal(t, "unknown", Direction(9).String())
}
