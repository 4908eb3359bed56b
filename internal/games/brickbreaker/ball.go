// Package brickbreaker implements the brick breaker world and the concurrent
// engine that drives it: a physics loop, a brick collision loop, a power-up
// loop and a redraw trigger sharing one lock and one pause condition.
package brickbreaker

import (
	"math"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

// maxBounceAngle bounds the paddle bounce angle in radians from vertical.
const maxBounceAngle = 0.75

// Ball is a square ball in world coordinates. X and Y are the top-left corner.
type Ball struct {
	X, Y   float64
	Size   float64
	VX, VY float64
}

// NewBall creates a ball at the configured start position and velocity.
func NewBall(cfg config.BallConfig) *Ball {
	return &Ball{X: cfg.X, Y: cfg.Y, Size: cfg.Size, VX: cfg.VX, VY: cfg.VY}
}

// Move advances the ball by one tick of velocity.
func (b *Ball) Move() {
	b.X += b.VX
	b.Y += b.VY
}

// ReverseX negates the horizontal velocity.
func (b *Ball) ReverseX() {
	b.VX = -b.VX
}

// ReverseY negates the vertical velocity.
func (b *Ball) ReverseY() {
	b.VY = -b.VY
}

// Speed returns the velocity magnitude.
func (b *Ball) Speed() float64 {
	return math.Hypot(b.VX, b.VY)
}

// Bounds returns the ball's bounding box.
func (b *Ball) Bounds() core.RectF {
	return core.NewRectF(b.X, b.Y, b.Size, b.Size)
}

// CenterX returns the horizontal center of the ball.
func (b *Ball) CenterX() float64 {
	return b.X + b.Size/2
}

// CenterY returns the vertical center of the ball.
func (b *Ball) CenterY() float64 {
	return b.Y + b.Size/2
}

// AdjustVelocity rotates the velocity so it makes angle radians with the
// vertical axis. Speed and the vertical direction are kept.
func (b *Ball) AdjustVelocity(angle float64) {
	speed := b.Speed()
	b.VX = speed * math.Sin(angle)
	b.VY = math.Copysign(speed*math.Cos(angle), b.VY)
}

// SlowDown scales the velocity by factor without going below minSpeed.
// A ball already at or below minSpeed is left alone.
func (b *Ball) SlowDown(factor, minSpeed float64) {
	speed := b.Speed()
	if speed == 0 {
		return
	}
	target := math.Max(speed*factor, minSpeed)
	if target >= speed {
		return
	}
	scale := target / speed
	b.VX *= scale
	b.VY *= scale
}

// BounceAngle maps where the ball hit the paddle to an angle in
// [-maxBounceAngle, maxBounceAngle]. The left edge gives the most negative
// angle, the center zero.
func BounceAngle(b *Ball, p *Paddle) float64 {
	rel := (b.CenterX() - float64(p.X)) / float64(p.Width)
	rel = core.ClampF(rel, 0, 1)
	return (rel - 0.5) * 2 * maxBounceAngle
}
