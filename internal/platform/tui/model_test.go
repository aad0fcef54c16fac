package tui

import (
	"bytes"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/logging"
	"github.com/vovakirdan/blockfall/internal/storage"
)

// fakeGame records what the model asks of it.
type fakeGame struct {
	resets  []core.RuntimeConfig
	frames  [][]core.Action
	resized [2]int
	state   core.GameState
	pieces  int
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets = append(g.resets, cfg)
	g.state = core.GameState{}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone().Actions)
	if in.Has(core.ActionForfeit) {
		g.state.GameOver = true
	}
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "fake") }
func (g *fakeGame) State() core.GameState   { return g.state }
func (g *fakeGame) Resize(w, h int)         { g.resized = [2]int{w, h} }
func (g *fakeGame) Pieces() int             { return g.pieces }

func newTestModel(t *testing.T, game *fakeGame, store *storage.Store) Model {
	t.Helper()
	m := NewModel(game, store, logging.Discard(), core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 5})
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func TestModelInitResetsGame(t *testing.T) {
	game := &fakeGame{}
	newTestModel(t, game, nil)

	require.Len(t, game.resets, 1)
	assert.Equal(t, int64(5), game.resets[0].Seed)
	assert.Equal(t, 24-helpHeight, game.resets[0].ScreenH, "help bar row is reserved")
}

func TestModelForwardsKeysInOrder(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(t, game, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, cmd := update(t, m, TickMsg{})

	assert.NotNil(t, cmd, "tick loop continues")
	require.Len(t, game.frames, 1)
	assert.Equal(t, []core.Action{core.ActionLeft, core.ActionRotate, core.ActionDrop}, game.frames[0])

	// Input is consumed by the tick.
	update(t, m, TickMsg{})
	require.Len(t, game.frames, 2)
	assert.Empty(t, game.frames[1])
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, &fakeGame{}, nil)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestModelResizeKeepsGame(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(t, game, nil)

	update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Equal(t, [2]int{100, 40 - helpHeight}, game.resized)
	assert.Len(t, game.resets, 1, "resizable games are not restarted")
}

func TestModelSavesResultOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	game := &fakeGame{}
	m := newTestModel(t, game, store)

	game.state = core.GameState{Score: 7, GameOver: true}
	game.pieces = 30
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, TickMsg{})

	scores, err := store.TopScores("fake", 10)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, 7, scores[0].Score)
	assert.Equal(t, 30, scores[0].Pieces)
	assert.Equal(t, int64(5), scores[0].Seed)
	assert.True(t, m.GameState().GameOver)
}

func TestModelForfeitSavesResult(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	game := &fakeGame{}
	m := newTestModel(t, game, store)

	game.state = core.GameState{Score: 4}
	game.pieces = 12
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	m, _ = update(t, m, TickMsg{})

	assert.True(t, m.GameState().GameOver)
	scores, err := store.TopScores("fake", 10)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, 4, scores[0].Score)
	assert.Equal(t, 12, scores[0].Pieces)
}

func TestModelSkipsEmptyResult(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	game := &fakeGame{}
	m := newTestModel(t, game, store)

	game.state = core.GameState{GameOver: true}
	update(t, m, TickMsg{})

	high, err := store.HighScore("fake")
	require.NoError(t, err)
	assert.Zero(t, high)
}

func TestModelRestartAfterGameOver(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(t, game, nil)

	game.state = core.GameState{Score: 1, GameOver: true}
	m, _ = update(t, m, TickMsg{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m, _ = update(t, m, TickMsg{})

	require.Len(t, game.resets, 2)
	assert.NotEqual(t, game.resets[0].Seed, game.resets[1].Seed, "restart draws a new seed")
	assert.False(t, m.GameState().GameOver)
}

func TestModelLogsGameOver(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(&buf, "info")
	require.NoError(t, err)

	game := &fakeGame{}
	m := NewModel(game, nil, logger, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})
	m.Init()

	game.state = core.GameState{Score: 3, GameOver: true}
	update(t, m, TickMsg{})

	assert.Contains(t, buf.String(), "game over")
	assert.Contains(t, buf.String(), "lines=3")
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, &fakeGame{}, nil)
	out := m.View()
	assert.Contains(t, out, "fake")
	assert.Contains(t, out, "rotate")
}
