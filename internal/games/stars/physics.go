package stars

import "github.com/vovakirdan/star-catcher/internal/core"

// Update advances the world by one tick and returns what happened.
// Order: player, obstacles and their hits, stars and level-up, timed effects.
// Time is advanced by the caller before Update.
func (w *World) Update(in core.InputFrame) []core.Event {
	var events []core.Event

	w.updatePlayer(in)
	events = append(events, w.updateObstacles()...)
	events = append(events, w.updateStars()...)

	if w.hitFlash.Expire(w.Time) {
		w.Player.Color = PlayerNormal
	}

	return events
}

func (w *World) updatePlayer(in core.InputFrame) {
	p := &w.Player
	pc := w.cfg.Player

	switch {
	case in.Has(core.ActionLeft):
		p.SpeedX = -pc.MoveSpeed
	case in.Has(core.ActionRight):
		p.SpeedX = pc.MoveSpeed
	default:
		p.SpeedX *= pc.Friction
	}

	// Up is checked first, so holding both on the ground gives a normal jump
	if in.Has(core.ActionJump) && !p.Jumping {
		p.SpeedY = -pc.JumpPower
		p.Jumping = true
	}
	if in.Has(core.ActionSuperJump) && !p.Jumping {
		p.SpeedY = -pc.JumpPower * pc.SuperJumpScale
		p.Jumping = true
	}

	p.SpeedY += pc.Gravity

	p.X += p.SpeedX
	p.Y += p.SpeedY

	p.X = core.ClampF(p.X, p.Radius, w.Width()-p.Radius)

	if floor := w.GroundY() - p.Radius; p.Y > floor {
		p.Y = floor
		p.SpeedY = 0
		p.Jumping = false
	}
	if p.Y < p.Radius {
		p.Y = p.Radius
		p.SpeedY = 0
	}
}

func (w *World) updateObstacles() []core.Event {
	var events []core.Event

	for i := range w.Obstacles {
		o := &w.Obstacles[i]

		o.X += o.SpeedX
		if o.X <= 0 || o.X+o.Width >= w.Width() {
			o.SpeedX = -o.SpeedX
		}

		if !core.CircleIntersectsBox(w.Player.Circle(), o.Box()) {
			continue
		}
		if w.hit(*o) {
			events = append(events, w.event(core.EventHit))
		}
	}

	return events
}

// hit applies an obstacle hit: one life lost, knockback, hit flash.
// Returns false when there were no lives left to lose.
func (w *World) hit(o Obstacle) bool {
	if w.Lives <= 0 {
		return false
	}

	rules := w.cfg.Rules
	w.Lives--
	w.Player.SpeedY = -rules.KnockbackY
	w.Player.SpeedX = o.SpeedX * rules.KnockbackScale
	w.Player.Color = PlayerHit
	w.hitFlash.Start(w.Time, rules.HitFlash)

	return true
}

func (w *World) updateStars() []core.Event {
	var events []core.Event

	player := w.Player.Circle()
	for i := range w.Stars {
		s := &w.Stars[i]
		if s.Collected || !core.CirclesOverlap(player, s.Circle()) {
			continue
		}
		s.Collected = true
		w.Score += w.cfg.Stars.Points
		events = append(events, w.event(core.EventStarCollected))
	}

	if len(events) > 0 && w.RemainingStars() == 0 {
		events = append(events, w.levelUp()...)
	}

	return events
}
