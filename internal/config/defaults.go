package config

import (
	_ "embed"
)

//go:embed defaults/brickbreaker.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in brick breaker configuration: an 800x600
// world, an 8x8 brick grid and three lives.
func DefaultConfig() Config {
	return Config{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Paddle: PaddleConfig{
			X:      350,
			Y:      530,
			Width:  100,
			Height: 15,
		},
		Ball: BallConfig{
			X:          400,
			Y:          400,
			Size:       10,
			VX:         3,
			VY:         -3,
			SlowFactor: 0.7,
			MinSpeed:   1.5,
		},
		Bricks: BricksConfig{
			Rows:       8,
			Cols:       8,
			Width:      75,
			Height:     20,
			GapX:       10,
			GapY:       5,
			TopOffset:  50,
			SideOffset: 50,
			Colors:     []string{"red", "orange", "yellow", "green", "blue", "magenta", "pink", "cyan"},
			Points:     []int{7, 7, 5, 5, 3, 3, 1, 1},
		},
		PowerUps: PowerUpsConfig{
			SpawnChance:     25,
			Size:            20,
			FallSpeed:       2.0,
			ScoreBonus:      25,
			PaddleIncrement: 30,
			MultiBallLow:    0.9,
			MultiBallHigh:   1.1,
		},
		Gameplay: GameplayConfig{
			Lives: 3,
		},
		Timing: TimingConfig{
			PhysicsMS:   16,
			CollisionMS: 10,
			PowerUpMS:   16,
			RenderMS:    16,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
