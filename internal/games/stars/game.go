package stars

import (
	"github.com/vovakirdan/star-catcher/internal/config"
	"github.com/vovakirdan/star-catcher/internal/core"
	"github.com/vovakirdan/star-catcher/internal/registry"
)

// GameID is the registry identifier.
const GameID = "stars"

// Game adapts a Driver to registry.Game.
// Control actions in the input frame drive the phase transitions:
// Confirm starts or plays again, Pause toggles pause, Restart resets.
type Game struct {
	cfg       config.StarsConfig
	fixedCfg  bool // cfg was given explicitly; Reset does not reload it
	runtime   core.RuntimeConfig
	driver    *Driver
	lastState core.GameState
}

// New creates a game that loads its configuration from the default locations on Reset.
func New() *Game {
	return &Game{cfg: config.DefaultStarsConfig()}
}

// NewWithConfig creates a game with a fixed configuration.
func NewWithConfig(cfg config.StarsConfig) *Game {
	return &Game{cfg: cfg, fixedCfg: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Star Catcher"
}

// Reset loads the configuration and creates a stopped session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.fixedCfg {
		cfg, err := config.LoadStars("")
		if err != nil {
			cfg = config.DefaultStarsConfig()
		}
		g.cfg = cfg
	}

	g.driver = NewDriver(g.cfg, runtime.Seed, runtime.TickRate)
	g.lastState = g.driver.World().State()
}

// Step applies control actions, then advances one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.driver == nil {
		g.Reset(g.runtime)
	}
	d := g.driver

	switch {
	case in.Has(core.ActionRestart):
		d.Reset()
	case in.Has(core.ActionConfirm):
		switch d.Phase() {
		case core.PhaseStopped:
			d.Start()
		case core.PhaseGameOver:
			d.PlayAgain()
		}
	case in.Has(core.ActionPause):
		d.TogglePause()
	}

	events := d.Tick(in)
	g.lastState = d.World().State()

	return core.StepResult{
		State:  g.lastState,
		Events: events,
	}
}

// WorldSize returns the canvas dimensions.
func (g *Game) WorldSize() (float64, float64) {
	return g.cfg.Canvas.Width, g.cfg.Canvas.Height
}

// Render draws the current session onto dst.
func (g *Game) Render(dst core.Canvas) {
	if g.driver == nil {
		return
	}
	Render(g.driver.World(), dst)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.lastState
}

// Driver returns the session driver, or nil before the first Reset.
func (g *Game) Driver() *Driver {
	return g.driver
}

// Register the game
func init() {
	registry.Register(GameID, func() registry.Game { return New() })
}
