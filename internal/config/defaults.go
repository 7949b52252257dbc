package config

import (
	_ "embed"
)

//go:embed defaults/stars.yaml
var defaultStarsYAML []byte

// DefaultStarsConfig returns the default star catcher configuration.
// It mirrors defaults/stars.yaml.
func DefaultStarsConfig() StarsConfig {
	return StarsConfig{
		Canvas: CanvasConfig{
			Width:        800,
			Height:       600,
			GroundHeight: 20,
		},
		Player: PlayerConfig{
			Radius:         20,
			Gravity:        0.5,
			JumpPower:      12,
			SuperJumpScale: 1.5,
			MoveSpeed:      6,
			Friction:       0.9,
			StartOffsetX:   15,
			StartOffsetY:   60,
		},
		Stars: StarConfig{
			Count:  5,
			Radius: 12,
			Points: 10,
		},
		Obstacles: ObstacleConfig{
			Count:        3,
			Width:        40,
			Height:       40,
			InitialSpeed: 4,
			BaseSpeed:    3,
			SpeedStep:    0.5,
		},
		Rules: RulesConfig{
			Lives:          3,
			MaxLives:       3,
			KnockbackY:     8,
			KnockbackScale: 2,
			HitFlash:       0.3,
			MaxLevel:       0,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultStarsYAML
}
