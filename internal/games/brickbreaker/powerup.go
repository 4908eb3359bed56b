package brickbreaker

import "github.com/vovakirdan/brickbreaker/internal/core"

// PowerUpType identifies the effect of a falling power-up.
type PowerUpType int

const (
	PowerUpMultiBall   PowerUpType = iota // Two extra balls per ball in play
	PowerUpExtraLife                      // One more life
	PowerUpWiderPaddle                    // Permanently wider paddle
	PowerUpSlowBall                       // Slow every ball down
	PowerUpCount                          // Sentinel for counting types
)

// String returns the name of the power-up type.
func (t PowerUpType) String() string {
	switch t {
	case PowerUpMultiBall:
		return "MultiBall"
	case PowerUpExtraLife:
		return "ExtraLife"
	case PowerUpWiderPaddle:
		return "WiderPaddle"
	case PowerUpSlowBall:
		return "SlowBall"
	default:
		return "?"
	}
}

// Glyph returns the display character for a power-up type.
func (t PowerUpType) Glyph() rune {
	switch t {
	case PowerUpMultiBall:
		return 'M'
	case PowerUpExtraLife:
		return 'L'
	case PowerUpWiderPaddle:
		return 'W'
	case PowerUpSlowBall:
		return 'S'
	default:
		return '?'
	}
}

// Color returns the display color for a power-up type.
func (t PowerUpType) Color() core.Color {
	switch t {
	case PowerUpMultiBall:
		return core.ColorMagenta
	case PowerUpExtraLife:
		return core.ColorRed
	case PowerUpWiderPaddle:
		return core.ColorBlue
	case PowerUpSlowBall:
		return core.ColorCyan
	default:
		return core.ColorDefault
	}
}

// PowerUp is a falling collectible. X and Y are its center.
type PowerUp struct {
	Type      PowerUpType
	X, Y      float64
	Size      float64
	FallSpeed float64
}

// Move advances the power-up downwards by its fall speed.
func (p *PowerUp) Move() {
	p.Y += p.FallSpeed
}

// Intersects reports whether the power-up touches the paddle: its center must
// lie within the paddle's horizontal span and its vertical extent must reach
// the paddle's rows.
func (p *PowerUp) Intersects(paddle *Paddle) bool {
	left := float64(paddle.X)
	top := float64(paddle.Y)
	return p.X >= left && p.X <= left+float64(paddle.Width) &&
		p.Y+p.Size/2 >= top && p.Y-p.Size/2 <= top+float64(paddle.Height)
}
