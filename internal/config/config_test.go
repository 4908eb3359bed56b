package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchDefaultConfig(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(DefaultYAML()) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("Embedded YAML differs from DefaultConfig():\n got  %+v\n want %+v", cfg, DefaultConfig())
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, expected nil", err)
	}
}

func TestParseKeepsMissingFields(t *testing.T) {
	cfg, err := Parse([]byte("gameplay:\n  lives: 9\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Gameplay.Lives != 9 {
		t.Errorf("Lives = %d, expected 9", cfg.Gameplay.Lives)
	}
	if cfg.Bricks.Rows != 8 || cfg.Ball.VX != 3 {
		t.Errorf("Missing fields should keep defaults, got rows=%d vx=%v", cfg.Bricks.Rows, cfg.Ball.VX)
	}
}

func TestParseReplacesLists(t *testing.T) {
	cfg, err := Parse([]byte("bricks:\n  points: [10, 20]\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !reflect.DeepEqual(cfg.Bricks.Points, []int{10, 20}) {
		t.Errorf("Points = %v, expected [10 20]", cfg.Bricks.Points)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("ball:\n  vx: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}
	if cfg.Ball.VX != 5 {
		t.Errorf("Ball.VX = %v, expected 5", cfg.Ball.VX)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load should fail for a missing custom file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("world: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(bad)
	if err == nil {
		t.Fatal("Load should fail for malformed YAML")
	}
	if !strings.HasPrefix(err.Error(), "config:") {
		t.Errorf("Error should be package-prefixed, got %q", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"zero world width", func(c *Config) { c.World.Width = 0 }, "world.width"},
		{"negative ball size", func(c *Config) { c.Ball.Size = -1 }, "ball.size"},
		{"chance above 100", func(c *Config) { c.PowerUps.SpawnChance = 101 }, "powerups.spawn_chance"},
		{"slow factor above 1", func(c *Config) { c.Ball.SlowFactor = 1.5 }, "ball.slow_factor"},
		{"empty palette", func(c *Config) { c.Bricks.Colors = nil }, "bricks.colors"},
		{"empty points", func(c *Config) { c.Bricks.Points = nil }, "bricks.points"},
		{"zero tick", func(c *Config) { c.Timing.CollisionMS = 0 }, "timing.collision_ms"},
		{"paddle below world", func(c *Config) { c.Paddle.Y = 595 }, "paddle must fit"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, expected error")
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("Validate() = %q, expected mention of %q", err, tc.field)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
		wantErr  bool
	}{
		{"", DifficultyNormal, false},
		{"normal", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.expected {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	normal := DefaultConfig()
	ApplyPreset(&normal, DifficultyNormal)
	if !reflect.DeepEqual(normal, DefaultConfig()) {
		t.Error("Normal preset should leave the defaults unchanged")
	}

	easy := DefaultConfig()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Gameplay.Lives <= normal.Gameplay.Lives || easy.Paddle.Width <= normal.Paddle.Width {
		t.Errorf("Easy preset should add lives and widen the paddle, got %+v", easy.Gameplay)
	}

	hard := DefaultConfig()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Gameplay.Lives >= normal.Gameplay.Lives || hard.Ball.VX <= normal.Ball.VX {
		t.Errorf("Hard preset should remove lives and speed up the ball, got %+v", hard.Ball)
	}

	for _, cfg := range []Config{easy, hard} {
		if cfg.Paddle.X+cfg.Paddle.Width/2 != cfg.World.Width/2 {
			t.Errorf("Paddle should stay centered, x=%d width=%d", cfg.Paddle.X, cfg.Paddle.Width)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("Preset produced invalid config: %v", err)
		}
	}
}

func TestTimingIntervals(t *testing.T) {
	timing := DefaultConfig().Timing
	if timing.PhysicsInterval() != 16*time.Millisecond {
		t.Errorf("PhysicsInterval() = %v, expected 16ms", timing.PhysicsInterval())
	}
	if timing.CollisionInterval() != 10*time.Millisecond {
		t.Errorf("CollisionInterval() = %v, expected 10ms", timing.CollisionInterval())
	}
}
