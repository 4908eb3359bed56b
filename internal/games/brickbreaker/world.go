package brickbreaker

import "github.com/vovakirdan/brickbreaker/internal/config"

// World is the shared mutable game state. Every read and write must happen
// while holding the owning Engine's lock.
type World struct {
	Paddle   *Paddle
	Balls    []*Ball
	Bricks   *BrickField
	PowerUps []*PowerUp
	Score    ScoreManager
	Lives    int

	Running  bool // Cleared once on shutdown; loops exit when they see it
	Paused   bool
	GameOver bool // Set on losing the last life or clearing the field
	Victory  bool // Set together with GameOver when the field is cleared

	cfg config.Config
	rng Rand
}

func newWorld(cfg config.Config, rng Rand) *World {
	w := &World{cfg: cfg, rng: rng}
	w.reset()
	return w
}

// reset restores the start state of a session. Running is left untouched.
func (w *World) reset() {
	w.Paddle = NewPaddle(w.cfg.Paddle)
	w.Balls = []*Ball{NewBall(w.cfg.Ball)}
	w.Bricks = NewBrickField(w.cfg.Bricks)
	w.PowerUps = nil
	w.Score.Reset()
	w.Lives = w.cfg.Gameplay.Lives
	w.Paused = false
	w.GameOver = false
	w.Victory = false
}

// stepPhysics moves every ball, bounces it off walls and paddle and drops the
// balls that fell out of the bottom. Losing the last ball costs a life and
// serves a fresh ball, or ends the game. Returns the number of balls lost.
func (w *World) stepPhysics() int {
	width := float64(w.cfg.World.Width)
	height := float64(w.cfg.World.Height)
	paddle := w.Paddle.Bounds()

	lost := 0
	kept := w.Balls[:0]
	for _, b := range w.Balls {
		b.Move()

		if b.X <= 0 {
			b.X = 0
			if b.VX < 0 {
				b.ReverseX()
			}
		} else if b.X >= width-b.Size {
			b.X = width - b.Size
			if b.VX > 0 {
				b.ReverseX()
			}
		}
		if b.Y <= 0 {
			b.Y = 0
			if b.VY < 0 {
				b.ReverseY()
			}
		}

		if b.Y >= height {
			lost++
			continue
		}

		if b.VY > 0 && b.Bounds().Intersects(paddle) {
			angle := BounceAngle(b, w.Paddle)
			b.ReverseY()
			b.AdjustVelocity(angle)
		}
		kept = append(kept, b)
	}
	clear(w.Balls[len(kept):])
	w.Balls = kept

	if lost > 0 && len(w.Balls) == 0 {
		w.Lives--
		if w.Lives <= 0 {
			w.Lives = 0
			w.GameOver = true
		} else {
			w.Balls = append(w.Balls, NewBall(w.cfg.Ball))
		}
	}
	return lost
}

// stepBricks resolves ball/brick collisions. Every hit bounces the ball,
// awards the brick's points and may drop a power-up from the brick's center.
// Clearing the field ends the game with a victory. Returns the number of hits.
func (w *World) stepBricks() int {
	balls := make([]*Ball, len(w.Balls))
	copy(balls, w.Balls)

	hits := 0
	for _, b := range balls {
		brick := w.Bricks.CheckCollision(b)
		if brick == nil {
			continue
		}
		hits++
		b.ReverseY()
		w.Score.AddPoints(brick.Points)
		w.trySpawnPowerUp(brick)
	}

	if hits > 0 && w.Bricks.IsEmpty() {
		w.Victory = true
		w.GameOver = true
	}
	return hits
}

// trySpawnPowerUp rolls the spawn chance for a destroyed brick.
func (w *World) trySpawnPowerUp(brick *Brick) *PowerUp {
	cfg := w.cfg.PowerUps
	if w.rng.Intn(100) >= cfg.SpawnChance {
		return nil
	}

	cx, cy := brick.Bounds().Center()
	p := &PowerUp{
		Type:      PowerUpType(w.rng.Intn(int(PowerUpCount))),
		X:         cx,
		Y:         cy,
		Size:      cfg.Size,
		FallSpeed: cfg.FallSpeed,
	}
	w.PowerUps = append(w.PowerUps, p)
	return p
}

// stepPowerUps moves falling power-ups, drops those past the bottom and
// applies those caught by the paddle. Returns the collected types.
func (w *World) stepPowerUps() []PowerUpType {
	height := float64(w.cfg.World.Height)

	var collected []PowerUpType
	kept := w.PowerUps[:0]
	for _, p := range w.PowerUps {
		p.Move()
		if p.Y > height {
			continue
		}
		if p.Intersects(w.Paddle) {
			w.applyPowerUp(p.Type)
			collected = append(collected, p.Type)
			continue
		}
		kept = append(kept, p)
	}
	clear(w.PowerUps[len(kept):])
	w.PowerUps = kept
	return collected
}

// applyPowerUp applies a collected power-up's effect and its score bonus.
func (w *World) applyPowerUp(t PowerUpType) {
	cfg := w.cfg.PowerUps
	switch t {
	case PowerUpMultiBall:
		// Only balls present at activation split; new balls are not revisited.
		low, high := cfg.MultiBallLow, cfg.MultiBallHigh
		n := len(w.Balls)
		for i := 0; i < n; i++ {
			b := w.Balls[i]
			w.Balls = append(w.Balls,
				&Ball{X: b.X, Y: b.Y, Size: b.Size, VX: b.VX * low, VY: b.VY * high},
				&Ball{X: b.X, Y: b.Y, Size: b.Size, VX: b.VX * high, VY: b.VY * low},
			)
		}
	case PowerUpExtraLife:
		w.Lives++
	case PowerUpWiderPaddle:
		w.Paddle.Widen(cfg.PaddleIncrement, w.cfg.World.Width)
	case PowerUpSlowBall:
		for _, b := range w.Balls {
			b.SlowDown(w.cfg.Ball.SlowFactor, w.cfg.Ball.MinSpeed)
		}
	}
	w.Score.AddPoints(cfg.ScoreBonus)
}
