package stars

import (
	"math/rand"

	"github.com/vovakirdan/star-catcher/internal/config"
	"github.com/vovakirdan/star-catcher/internal/core"
)

// Driver runs a session through its phases:
//
//	Stopped --Start--> Running <--TogglePause--> Paused
//	Running --lives gone or last level cleared--> GameOver
//	any --Reset/PlayAgain--> Running (fresh world)
type Driver struct {
	cfg   config.StarsConfig
	rng   *rand.Rand
	dt    float64
	world *World
}

// NewDriver creates a stopped session. tickRate sets the game time added per tick.
func NewDriver(cfg config.StarsConfig, seed int64, tickRate int) *Driver {
	rc := core.RuntimeConfig{TickRate: tickRate}
	d := &Driver{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)), //#nosec G404 -- gameplay randomness
		dt:  rc.TickSeconds(),
	}
	d.world = NewWorld(cfg, d.rng)
	return d
}

// World returns the current simulation context.
func (d *Driver) World() *World {
	return d.world
}

// Phase returns the session phase.
func (d *Driver) Phase() core.Phase {
	return d.world.Phase
}

// Start begins play. Only valid while Stopped; returns false otherwise.
func (d *Driver) Start() bool {
	if d.world.Phase != core.PhaseStopped {
		return false
	}
	d.world.Phase = core.PhaseRunning
	return true
}

// TogglePause switches between Running and Paused.
// Returns false in any other phase.
func (d *Driver) TogglePause() bool {
	switch d.world.Phase {
	case core.PhaseRunning:
		d.world.Phase = core.PhasePaused
	case core.PhasePaused:
		d.world.Phase = core.PhaseRunning
	default:
		return false
	}
	return true
}

// Reset replaces the world with a fresh one and starts running it.
func (d *Driver) Reset() {
	d.world = NewWorld(d.cfg, d.rng)
	d.world.Phase = core.PhaseRunning
}

// PlayAgain dismisses a finished game and starts a new one.
func (d *Driver) PlayAgain() {
	d.Reset()
}

// Tick advances one fixed step while Running; other phases are left untouched.
// Reaching an end condition moves the session to GameOver.
func (d *Driver) Tick(in core.InputFrame) []core.Event {
	w := d.world
	if w.Phase != core.PhaseRunning {
		return nil
	}

	w.Time += d.dt
	events := w.Update(in)

	if w.Over() {
		w.Phase = core.PhaseGameOver
		w.GameOver = true
		events = append(events, w.event(core.EventGameOver))
	}

	return events
}
