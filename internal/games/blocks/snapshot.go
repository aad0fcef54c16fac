package blocks

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	EngineTick uint64 // ticks the engine ran; paused ticks are not counted
	Score      int
	Locked     int
	Board      [][]int
	HasPiece   bool
	Piece      Piece
	GhostRow   int // -1 when no piece is in play
	State      GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.engine.GameOver():
		state = StateGameOver
	case g.tooSmall():
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	}

	piece, ok := g.engine.Piece()
	ghostRow := -1
	if ghost, gok := g.engine.Ghost(); gok {
		ghostRow = ghost.Row
	}

	return Snapshot{
		Tick:       g.tick,
		EngineTick: g.engine.Ticks(),
		Score:      g.engine.Score(),
		Locked:     g.engine.Locked(),
		Board:      g.engine.GridSnapshot(),
		HasPiece:   ok,
		Piece:      piece,
		GhostRow:   ghostRow,
		State:      state,
	}
}
