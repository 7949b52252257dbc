// Package config provides YAML-based game configuration loading for the
// star catcher game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned (wrapped) when a configuration fails validation.
var ErrInvalid = errors.New("invalid config")

// Spawn area margins in canvas units. Stars spawn at x in
// [StarMarginX, width-StarMarginX), obstacles at x in
// [ObstacleMarginX, width-ObstacleMarginX), both at y in
// [SpawnTop, height-SpawnBottomGap).
const (
	StarMarginX     = 15
	ObstacleMarginX = 30
	SpawnTop        = 50
	SpawnBottomGap  = 150
)

// StarsConfig contains all configuration for the star catcher game.
type StarsConfig struct {
	Canvas    CanvasConfig   `yaml:"canvas"`
	Player    PlayerConfig   `yaml:"player"`
	Stars     StarConfig     `yaml:"stars"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Rules     RulesConfig    `yaml:"rules"`
}

// CanvasConfig defines the world dimensions in canvas units.
type CanvasConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
}

// PlayerConfig defines player physics. Speeds are per tick.
type PlayerConfig struct {
	Radius         float64 `yaml:"radius"`
	Gravity        float64 `yaml:"gravity"`
	JumpPower      float64 `yaml:"jump_power"`
	SuperJumpScale float64 `yaml:"super_jump_scale"`
	MoveSpeed      float64 `yaml:"move_speed"`

	// Friction multiplies horizontal speed on ticks with no direction held.
	Friction float64 `yaml:"friction"`

	// The player spawns at (width/2 - StartOffsetX, height - StartOffsetY).
	StartOffsetX float64 `yaml:"start_offset_x"`
	StartOffsetY float64 `yaml:"start_offset_y"`
}

// StarConfig defines star pickups.
type StarConfig struct {
	Count  int     `yaml:"count"` // Stars in the first level; level N has count+N
	Radius float64 `yaml:"radius"`
	Points int     `yaml:"points"`
}

// ObstacleConfig defines bouncing obstacles.
type ObstacleConfig struct {
	Count  int     `yaml:"count"` // Obstacles in the first level; level N has count+N
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Horizontal speed is drawn from (r-0.5)*spread. The first level uses
	// InitialSpeed as spread; after a level-up it is BaseSpeed + SpeedStep*level.
	InitialSpeed float64 `yaml:"initial_speed"`
	BaseSpeed    float64 `yaml:"base_speed"`
	SpeedStep    float64 `yaml:"speed_step"`
}

// RulesConfig defines scoring, damage and progression rules.
type RulesConfig struct {
	Lives          int     `yaml:"lives"`
	MaxLives       int     `yaml:"max_lives"`
	KnockbackY     float64 `yaml:"knockback_y"`     // Upward speed applied on hit
	KnockbackScale float64 `yaml:"knockback_scale"` // Obstacle speed multiplier applied on hit
	HitFlash       float64 `yaml:"hit_flash"`       // Seconds of hit coloring
	MaxLevel       int     `yaml:"max_level"`       // 0 = endless
}

// Validate checks that the configuration describes a playable game.
func (c StarsConfig) Validate() error {
	switch {
	case c.Canvas.Width <= 0 || c.Canvas.Height <= 0:
		return fmt.Errorf("%w: canvas must have positive size, got %gx%g", ErrInvalid, c.Canvas.Width, c.Canvas.Height)
	case c.Canvas.GroundHeight < 0 || c.Canvas.GroundHeight >= c.Canvas.Height:
		return fmt.Errorf("%w: ground_height %g must be in [0, %g)", ErrInvalid, c.Canvas.GroundHeight, c.Canvas.Height)
	case c.Canvas.Height-SpawnBottomGap <= SpawnTop:
		return fmt.Errorf("%w: canvas height %g leaves no spawn area (need more than %d)", ErrInvalid, c.Canvas.Height, SpawnTop+SpawnBottomGap)
	case c.Canvas.Width-2*ObstacleMarginX <= 0:
		return fmt.Errorf("%w: canvas width %g leaves no spawn area (need more than %d)", ErrInvalid, c.Canvas.Width, 2*ObstacleMarginX)
	case c.Player.Radius <= 0:
		return fmt.Errorf("%w: player radius must be positive", ErrInvalid)
	case 2*c.Player.Radius > c.Canvas.Width || 2*c.Player.Radius > c.Canvas.Height-c.Canvas.GroundHeight:
		return fmt.Errorf("%w: player radius %g does not fit the canvas", ErrInvalid, c.Player.Radius)
	case c.Player.Friction < 0 || c.Player.Friction > 1:
		return fmt.Errorf("%w: friction %g must be in [0, 1]", ErrInvalid, c.Player.Friction)
	case c.Stars.Count <= 0:
		return fmt.Errorf("%w: stars count must be positive", ErrInvalid)
	case c.Stars.Radius <= 0:
		return fmt.Errorf("%w: star radius must be positive", ErrInvalid)
	case c.Obstacles.Count < 0:
		return fmt.Errorf("%w: obstacles count must not be negative", ErrInvalid)
	case c.Obstacles.Width <= 0 || c.Obstacles.Height <= 0:
		return fmt.Errorf("%w: obstacle size must be positive", ErrInvalid)
	case c.Rules.MaxLives <= 0:
		return fmt.Errorf("%w: max_lives must be positive", ErrInvalid)
	case c.Rules.Lives <= 0 || c.Rules.Lives > c.Rules.MaxLives:
		return fmt.Errorf("%w: lives %d must be in [1, %d]", ErrInvalid, c.Rules.Lives, c.Rules.MaxLives)
	case c.Rules.MaxLevel < 0:
		return fmt.Errorf("%w: max_level must not be negative", ErrInvalid)
	}
	return nil
}
