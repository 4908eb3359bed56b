package brickbreaker

import "math"

// Snapshot is a detached copy of the world, safe to read without the lock.
type Snapshot struct {
	Paddle   Paddle
	Balls    []Ball
	PowerUps []PowerUp
	Bricks   []bool // Active flags, row-major

	BricksRemaining int
	Score           int
	Lives           int

	Running  bool
	Paused   bool
	GameOver bool
	Victory  bool
}

func (w *World) snapshot() Snapshot {
	balls := make([]Ball, len(w.Balls))
	for i, b := range w.Balls {
		balls[i] = *b
	}

	powerUps := make([]PowerUp, len(w.PowerUps))
	for i, p := range w.PowerUps {
		powerUps[i] = *p
	}

	bricks := make([]bool, 0, w.Bricks.Rows()*w.Bricks.Cols())
	for row := 0; row < w.Bricks.Rows(); row++ {
		for col := 0; col < w.Bricks.Cols(); col++ {
			bricks = append(bricks, w.Bricks.Brick(row, col).Active)
		}
	}

	return Snapshot{
		Paddle:          *w.Paddle,
		Balls:           balls,
		PowerUps:        powerUps,
		Bricks:          bricks,
		BricksRemaining: w.Bricks.ActiveCount(),
		Score:           w.Score.Score(),
		Lives:           w.Lives,
		Running:         w.Running,
		Paused:          w.Paused,
		GameOver:        w.GameOver,
		Victory:         w.Victory,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(17)
	mix := func(v uint64) { h = h*31 + v }
	mixInt := func(v int) { mix(uint64(v)) } //#nosec G115 -- hash computation
	mixBool := func(v bool) {
		if v {
			mix(1)
		} else {
			mix(0)
		}
	}

	mixInt(snap.Paddle.X)
	mixInt(snap.Paddle.Width)
	mixInt(snap.Score)
	mixInt(snap.Lives)
	mixInt(snap.BricksRemaining)
	mixBool(snap.Paused)
	mixBool(snap.GameOver)
	mixBool(snap.Victory)

	for _, b := range snap.Balls {
		mix(math.Float64bits(b.X))
		mix(math.Float64bits(b.Y))
		mix(math.Float64bits(b.VX))
		mix(math.Float64bits(b.VY))
	}
	for _, p := range snap.PowerUps {
		mixInt(int(p.Type))
		mix(math.Float64bits(p.X))
		mix(math.Float64bits(p.Y))
	}
	for _, active := range snap.Bricks {
		mixBool(active)
	}
	return h
}
