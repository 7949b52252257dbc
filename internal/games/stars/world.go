// Package stars implements Star Catcher: a player circle that runs and jumps
// across a fixed canvas collecting stars while bouncing obstacles cost lives.
//
// World holds the simulation, Driver the session phases, and Game adapts
// both to the registry so any front-end can run it.
package stars

import (
	"math/rand"

	"github.com/vovakirdan/star-catcher/internal/config"
	"github.com/vovakirdan/star-catcher/internal/core"
)

// World is the complete simulation context. A World is driven by a single
// goroutine and owns its entities exclusively.
type World struct {
	cfg config.StarsConfig
	rng *rand.Rand

	Player    Player
	Stars     []Star
	Obstacles []Obstacle

	// Counters
	Phase    core.Phase
	Score    int
	Lives    int
	Level    int
	Time     float64 // Game seconds spent running
	GameOver bool
	Won      bool

	hitFlash Effect
}

// NewWorld creates a level 1 world with a full life pool.
// All randomness is drawn from rng.
func NewWorld(cfg config.StarsConfig, rng *rand.Rand) *World {
	w := &World{
		cfg:   cfg,
		rng:   rng,
		Phase: core.PhaseStopped,
		Lives: cfg.Rules.Lives,
		Level: 1,
	}

	w.Player = Player{
		X:      cfg.Canvas.Width/2 - cfg.Player.StartOffsetX,
		Y:      cfg.Canvas.Height - cfg.Player.StartOffsetY,
		Radius: cfg.Player.Radius,
	}
	w.Stars = w.spawnStars(cfg.Stars.Count)
	w.Obstacles = w.spawnObstacles(cfg.Obstacles.Count, cfg.Obstacles.InitialSpeed)

	return w
}

// Config returns the configuration the world was built from.
func (w *World) Config() config.StarsConfig {
	return w.cfg
}

// Width returns the canvas width.
func (w *World) Width() float64 {
	return w.cfg.Canvas.Width
}

// Height returns the canvas height.
func (w *World) Height() float64 {
	return w.cfg.Canvas.Height
}

// GroundY returns the y coordinate of the top of the ground strip.
func (w *World) GroundY() float64 {
	return w.cfg.Canvas.Height - w.cfg.Canvas.GroundHeight
}

// RemainingStars returns the number of uncollected stars.
func (w *World) RemainingStars() int {
	n := 0
	for _, s := range w.Stars {
		if !s.Collected {
			n++
		}
	}
	return n
}

// Flashing reports whether the hit flash is active.
func (w *World) Flashing() bool {
	return w.hitFlash.Active()
}

// Over reports whether the session has reached an end condition.
func (w *World) Over() bool {
	return w.Lives <= 0 || w.Won
}

// State returns the counters as a platform game state.
func (w *World) State() core.GameState {
	return core.GameState{
		Phase:    w.Phase,
		Score:    w.Score,
		Lives:    w.Lives,
		Level:    w.Level,
		Time:     w.Time,
		GameOver: w.GameOver,
		Won:      w.Won,
		Paused:   w.Phase == core.PhasePaused,
	}
}

func (w *World) event(kind core.EventKind) core.Event {
	return core.Event{
		Kind:  kind,
		Score: w.Score,
		Lives: w.Lives,
		Level: w.Level,
	}
}
