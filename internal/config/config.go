// Package config provides YAML-based game configuration loading and
// difficulty presets for the brick breaker.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config contains all tunable parameters of a brick breaker session.
// Coordinates are in world units; the default world is 800x600.
type Config struct {
	World    WorldConfig    `yaml:"world"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Ball     BallConfig     `yaml:"ball"`
	Bricks   BricksConfig   `yaml:"bricks"`
	PowerUps PowerUpsConfig `yaml:"powerups"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Timing   TimingConfig   `yaml:"timing"`
}

// WorldConfig defines the playfield size.
type WorldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PaddleConfig defines the paddle's start geometry.
type PaddleConfig struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BallConfig defines the start state of every freshly served ball.
type BallConfig struct {
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	Size       float64 `yaml:"size"`
	VX         float64 `yaml:"vx"`
	VY         float64 `yaml:"vy"`
	SlowFactor float64 `yaml:"slow_factor"` // Speed multiplier applied by the slow-ball power-up
	MinSpeed   float64 `yaml:"min_speed"`   // Slow-ball never brings a ball below this speed
}

// BricksConfig defines the brick grid layout and its row tiers.
type BricksConfig struct {
	Rows       int      `yaml:"rows"`
	Cols       int      `yaml:"cols"`
	Width      int      `yaml:"width"`
	Height     int      `yaml:"height"`
	GapX       int      `yaml:"gap_x"`
	GapY       int      `yaml:"gap_y"`
	TopOffset  int      `yaml:"top_offset"`
	SideOffset int      `yaml:"side_offset"`
	Colors     []string `yaml:"colors"` // Row palette, cycled by row index
	Points     []int    `yaml:"points"` // Row point values, cycled by row index
}

// PowerUpsConfig defines power-up spawning and effect strength.
type PowerUpsConfig struct {
	SpawnChance     int     `yaml:"spawn_chance"` // Percent chance per destroyed brick (0-100)
	Size            float64 `yaml:"size"`
	FallSpeed       float64 `yaml:"fall_speed"`
	ScoreBonus      int     `yaml:"score_bonus"`
	PaddleIncrement int     `yaml:"paddle_increment"`
	MultiBallLow    float64 `yaml:"multiball_low"`  // Velocity scale for the damped axis
	MultiBallHigh   float64 `yaml:"multiball_high"` // Velocity scale for the boosted axis
}

// GameplayConfig defines session rules.
type GameplayConfig struct {
	Lives int   `yaml:"lives"`
	Seed  int64 `yaml:"seed"` // 0 = seed from the clock
}

// TimingConfig defines the tick interval of every update loop in milliseconds.
type TimingConfig struct {
	PhysicsMS   int `yaml:"physics_ms"`
	CollisionMS int `yaml:"collision_ms"`
	PowerUpMS   int `yaml:"powerup_ms"`
	RenderMS    int `yaml:"render_ms"`
}

// PhysicsInterval returns the ball/paddle loop tick.
func (t TimingConfig) PhysicsInterval() time.Duration {
	return time.Duration(t.PhysicsMS) * time.Millisecond
}

// CollisionInterval returns the brick collision loop tick.
func (t TimingConfig) CollisionInterval() time.Duration {
	return time.Duration(t.CollisionMS) * time.Millisecond
}

// PowerUpInterval returns the power-up loop tick.
func (t TimingConfig) PowerUpInterval() time.Duration {
	return time.Duration(t.PowerUpMS) * time.Millisecond
}

// RenderInterval returns the redraw request cadence.
func (t TimingConfig) RenderInterval() time.Duration {
	return time.Duration(t.RenderMS) * time.Millisecond
}

// Validate reports every invalid field of the config.
func (c Config) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("world.width", float64(c.World.Width))
	positive("world.height", float64(c.World.Height))
	positive("paddle.width", float64(c.Paddle.Width))
	positive("paddle.height", float64(c.Paddle.Height))
	positive("ball.size", c.Ball.Size)
	positive("ball.slow_factor", c.Ball.SlowFactor)
	positive("bricks.rows", float64(c.Bricks.Rows))
	positive("bricks.cols", float64(c.Bricks.Cols))
	positive("bricks.width", float64(c.Bricks.Width))
	positive("bricks.height", float64(c.Bricks.Height))
	positive("powerups.size", c.PowerUps.Size)
	positive("powerups.fall_speed", c.PowerUps.FallSpeed)
	positive("gameplay.lives", float64(c.Gameplay.Lives))
	positive("timing.physics_ms", float64(c.Timing.PhysicsMS))
	positive("timing.collision_ms", float64(c.Timing.CollisionMS))
	positive("timing.powerup_ms", float64(c.Timing.PowerUpMS))
	positive("timing.render_ms", float64(c.Timing.RenderMS))

	if c.Ball.SlowFactor > 1 {
		errs = append(errs, fmt.Errorf("ball.slow_factor must be at most 1, got %v", c.Ball.SlowFactor))
	}
	if c.PowerUps.SpawnChance < 0 || c.PowerUps.SpawnChance > 100 {
		errs = append(errs, fmt.Errorf("powerups.spawn_chance must be within [0, 100], got %d", c.PowerUps.SpawnChance))
	}
	if len(c.Bricks.Colors) == 0 {
		errs = append(errs, errors.New("bricks.colors must not be empty"))
	}
	if len(c.Bricks.Points) == 0 {
		errs = append(errs, errors.New("bricks.points must not be empty"))
	}
	if c.Paddle.Y+c.Paddle.Height > c.World.Height {
		errs = append(errs, fmt.Errorf("paddle must fit inside the world height %d", c.World.Height))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}
