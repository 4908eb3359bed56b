package brickbreaker

import (
	"math"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Paddle is the player-controlled bar near the bottom of the world.
type Paddle struct {
	X, Y          int
	Width, Height int
}

// NewPaddle creates a paddle from its configured start geometry.
func NewPaddle(cfg config.PaddleConfig) *Paddle {
	return &Paddle{X: cfg.X, Y: cfg.Y, Width: cfg.Width, Height: cfg.Height}
}

// MoveTo centers the paddle on px, keeping it inside [0, worldW].
func (p *Paddle) MoveTo(px float64, worldW int) {
	x := int(math.Round(px)) - p.Width/2
	p.X = core.Clamp(x, 0, core.Max(0, worldW-p.Width))
}

// Widen grows the paddle by amount, capped at maxWidth.
// The paddle is shifted left if it would stick out of the world.
func (p *Paddle) Widen(amount, maxWidth int) {
	p.Width = min(p.Width+amount, maxWidth)
	p.X = core.Clamp(p.X, 0, maxWidth-p.Width)
}

// CenterX returns the horizontal center of the paddle.
func (p *Paddle) CenterX() float64 {
	return float64(p.X) + float64(p.Width)/2
}

// Bounds returns the paddle's bounding box.
func (p *Paddle) Bounds() core.RectF {
	return core.NewRectF(float64(p.X), float64(p.Y), float64(p.Width), float64(p.Height))
}
