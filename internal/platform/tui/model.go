package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/logging"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

// helpHeight is the number of terminal rows reserved for the help bar.
const helpHeight = 1

// Optional game capabilities the model uses when present.
type (
	resizer interface {
		Resize(w, h int)
	}
	configReporter interface {
		ConfigError() error
		ConfigSource() string
	}
	pieceCounter interface {
		Pieces() int
	}
)

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	keys       *KeyMapper
	help       help.Model
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether the result has been handled for the current game over
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = logging.Discard()
	}
	cfg.ScreenH = max(cfg.ScreenH-helpHeight, 0)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		keys:       NewKeyMapper(),
		help:       help.New(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
// The value receiver drops gameState; it is refreshed on the first tick.
func (m Model) Init() tea.Cmd {
	m.startGame()
	return tickCmd(m.config.TickRate)
}

// startGame resets the game with the current config and logs the outcome.
func (m *Model) startGame() {
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.scoreSaved = false

	if cr, ok := m.game.(configReporter); ok {
		if err := cr.ConfigError(); err != nil {
			m.logger.Warn("config problem, using defaults", "error", err)
		}
		m.logger.Debug("config loaded", "source", cr.ConfigSource())
	}
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(msg.Height-helpHeight, 0)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	// Games that can adapt keep their state; others start over.
	if r, ok := m.game.(resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	m.gameState = m.game.State()

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Restart with a fresh seed so the next piece sequence differs
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.startGame()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if result.Cleared > 0 {
		m.logger.Debug("rows cleared", "rows", result.Cleared, "total", m.gameState.Score)
	}

	if m.gameState.GameOver && !m.scoreSaved {
		m.recordGameOver()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// recordGameOver logs the final result and saves it when it is worth keeping.
func (m *Model) recordGameOver() {
	res := storage.GameResult{
		GameID: m.game.ID(),
		Lines:  m.gameState.Score,
		Seed:   m.config.Seed,
	}
	if pc, ok := m.game.(pieceCounter); ok {
		res.Pieces = pc.Pieces()
	}
	m.logger.Info("game over", "game", res.GameID, "lines", res.Lines, "pieces", res.Pieces)

	if m.store == nil || res.Lines == 0 {
		return
	}
	if _, err := m.store.SaveResult(res); err != nil {
		m.logger.Error("could not save score", "error", err)
	}
}

// GameState returns the state observed on the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
