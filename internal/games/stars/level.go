package stars

import (
	"github.com/vovakirdan/star-catcher/internal/config"
	"github.com/vovakirdan/star-catcher/internal/core"
)

// spawnStars creates n uncollected stars at random positions.
func (w *World) spawnStars(n int) []Star {
	stars := make([]Star, n)
	for i := range stars {
		stars[i] = Star{
			X:      w.rng.Float64()*(w.Width()-2*config.StarMarginX) + config.StarMarginX,
			Y:      w.spawnY(),
			Radius: w.cfg.Stars.Radius,
		}
	}
	return stars
}

// spawnObstacles creates n obstacles with speeds drawn from (r-0.5)*spread.
func (w *World) spawnObstacles(n int, spread float64) []Obstacle {
	obstacles := make([]Obstacle, n)
	for i := range obstacles {
		obstacles[i] = Obstacle{
			X:      w.rng.Float64()*(w.Width()-2*config.ObstacleMarginX) + config.ObstacleMarginX,
			Y:      w.spawnY(),
			Width:  w.cfg.Obstacles.Width,
			Height: w.cfg.Obstacles.Height,
			SpeedX: (w.rng.Float64() - 0.5) * spread,
		}
	}
	return obstacles
}

func (w *World) spawnY() float64 {
	return w.rng.Float64()*(w.Height()-config.SpawnTop-config.SpawnBottomGap) + config.SpawnTop
}

// levelUp advances to the next level: new stars and obstacles, one life back.
// With a level cap, clearing the last level wins the game instead.
func (w *World) levelUp() []core.Event {
	if w.cfg.Rules.MaxLevel > 0 && w.Level >= w.cfg.Rules.MaxLevel {
		w.Won = true
		return nil
	}

	w.Level++
	w.Stars = w.spawnStars(w.cfg.Stars.Count + w.Level)
	w.Obstacles = w.spawnObstacles(
		w.cfg.Obstacles.Count+w.Level,
		w.cfg.Obstacles.BaseSpeed+w.cfg.Obstacles.SpeedStep*float64(w.Level),
	)
	w.Lives = core.Min(w.Lives+1, w.cfg.Rules.MaxLives)

	return []core.Event{w.event(core.EventLevelUp)}
}
