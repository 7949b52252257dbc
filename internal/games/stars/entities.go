package stars

import "github.com/vovakirdan/star-catcher/internal/core"

// PlayerColor is the player's current tint.
type PlayerColor int

const (
	PlayerNormal PlayerColor = iota
	PlayerHit
)

// Player is the controllable circle.
type Player struct {
	X, Y   float64
	Radius float64

	SpeedX float64
	SpeedY float64

	Jumping bool // Airborne; jumps are ignored until the player lands
	Color   PlayerColor
}

// Circle returns the player's collision shape.
func (p Player) Circle() core.Circle {
	return core.Circle{X: p.X, Y: p.Y, R: p.Radius}
}

// Star is a pickup worth points. Once Collected it stays collected.
type Star struct {
	X, Y      float64
	Radius    float64
	Collected bool
}

// Circle returns the star's collision shape.
func (s Star) Circle() core.Circle {
	return core.Circle{X: s.X, Y: s.Y, R: s.Radius}
}

// Obstacle is a rectangle that moves horizontally and bounces off the side walls.
type Obstacle struct {
	X, Y          float64
	Width, Height float64
	SpeedX        float64
}

// Box returns the obstacle's collision shape.
func (o Obstacle) Box() core.Box {
	return core.Box{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
}

// Effect is a timed effect that ends at ExpiresAt (game seconds).
type Effect struct {
	ExpiresAt float64
	active    bool
}

// Start activates the effect until now+duration.
// Starting an active effect extends it instead of stacking a second one.
func (e *Effect) Start(now, duration float64) {
	end := now + duration
	if !e.active || end > e.ExpiresAt {
		e.ExpiresAt = end
	}
	e.active = true
}

// Active reports whether the effect is running.
func (e Effect) Active() bool {
	return e.active
}

// Expire ends the effect if its time has passed. Returns true if it just ended.
func (e *Effect) Expire(now float64) bool {
	if e.active && now >= e.ExpiresAt {
		e.active = false
		return true
	}
	return false
}
