package blocks

import (
	"math/rand"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// Variant selects the built-in shape catalog.
type Variant string

const (
	VariantStandard Variant = "blocks"
	VariantClassic  Variant = "blocks_classic"
)

// Game adapts the Engine to the platform's registry.Game interface.
type Game struct {
	variant Variant
	engine  *Engine
	cfg     config.BlocksConfig
	rng     *rand.Rand
	tick    uint64

	screenW int
	screenH int

	paused    bool
	configErr error
}

// Package-level config path, set by the CLI before the game is created.
var configPath string

// SetConfigPath sets the YAML config file used by subsequent Resets.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a game using the five-shape catalog.
func New() *Game {
	return &Game{variant: VariantStandard}
}

// NewClassic creates a game using all seven tetrominoes.
func NewClassic() *Game {
	return &Game{variant: VariantClassic}
}

func init() {
	registry.Register(string(VariantStandard), func() registry.Game {
		return New()
	})
	registry.Register(string(VariantClassic), func() registry.Game {
		return NewClassic()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.variant)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantClassic {
		return "Blockfall (Classic)"
	}
	return "Blockfall"
}

// Description returns a one-line summary for listings.
func (g *Game) Description() string {
	if g.variant == VariantClassic {
		return "All seven tetrominoes"
	}
	return "O, T, J, L and I pieces"
}

// Reset loads configuration and starts a fresh engine seeded from cfg.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.configErr = nil

	bc, err := config.LoadBlocks(configPath)
	if err != nil {
		g.configErr = err
		bc = config.DefaultBlocksConfig()
	}
	g.cfg = bc

	g.engine = NewEngine(g.options(bc), g.rng)
}

// options converts the YAML config into engine options. Invalid shapes or
// colors fall back to the built-in tables and are reported via ConfigError.
func (g *Game) options(bc config.BlocksConfig) Options {
	opts := Options{
		Rows:          bc.Board.Rows,
		Cols:          bc.Board.Cols,
		SpawnRow:      bc.Spawn.Row,
		SpawnCol:      bc.Spawn.Col,
		SpawnAttempts: bc.Spawn.Attempts,
		GravityTicks:  bc.Gravity.EveryTicks,
		Catalog:       g.builtinCatalog(),
		Palette:       DefaultPalette(),
	}

	if len(bc.Shapes) > 0 {
		if cat, err := NewCatalog(bc.Shapes); err != nil {
			g.configErr = err
		} else {
			opts.Catalog = cat
		}
	}

	if p, err := PaletteFromNames(bc.Palette); err != nil {
		g.configErr = err
	} else {
		opts.Palette = p
	}

	return opts
}

func (g *Game) builtinCatalog() Catalog {
	if g.variant == VariantClassic {
		return ClassicCatalog()
	}
	return DefaultCatalog()
}

// ConfigError returns the problem found while loading configuration, if
// any. The game still runs on defaults.
func (g *Game) ConfigError() error {
	return g.configErr
}

// ConfigSource reports where the active configuration came from.
func (g *Game) ConfigSource() string {
	return g.cfg.Source
}

// Engine exposes the rule engine for inspection.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Pieces returns how many pieces were locked in the current game.
func (g *Game) Pieces() int {
	if g.engine == nil {
		return 0
	}
	return g.engine.Locked()
}

// Resize records new screen dimensions without restarting the game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Step advances the game by one tick, applying input in arrival order.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.engine.GameOver() {
		if in.Has(core.ActionRestart) {
			g.engine.Reset()
			g.paused = false
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionForfeit) {
		g.engine.Forfeit()
		g.paused = false
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall() {
		return core.StepResult{State: g.State()}
	}

	before := g.engine.Score()
	for _, a := range in.Actions {
		switch a {
		case core.ActionLeft:
			g.engine.Move(DirLeft)
		case core.ActionRight:
			g.engine.Move(DirRight)
		case core.ActionDown:
			g.engine.Move(DirDown)
		case core.ActionRotate:
			g.engine.Rotate()
		case core.ActionDrop:
			g.engine.HardDrop()
		}
	}
	g.engine.Tick()

	return core.StepResult{
		State:   g.State(),
		Cleared: g.engine.Score() - before,
	}
}

// tooSmall reports whether the known screen cannot show the board.
// Unknown (zero) dimensions never block play.
func (g *Game) tooSmall() bool {
	if g.screenW == 0 && g.screenH == 0 {
		return false
	}
	w, h := boardSize(g.engine.Rows(), g.engine.Cols())
	return g.screenW < w || g.screenH < h
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.engine.Score(),
		GameOver: g.engine.GameOver(),
		Paused:   g.paused || g.tooSmall(),
	}
}
