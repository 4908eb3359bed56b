package brickbreaker

import (
	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Brick is a destructible target. Only Active changes after creation.
type Brick struct {
	X, Y          int
	Width, Height int
	Color         core.Color
	Points        int
	Active        bool
}

// Bounds returns the brick's bounding box.
func (b *Brick) Bounds() core.RectF {
	return core.NewRectF(float64(b.X), float64(b.Y), float64(b.Width), float64(b.Height))
}

// BrickField is the fixed rows x cols grid of bricks.
type BrickField struct {
	rows, cols int
	bricks     [][]Brick
}

// NewBrickField lays out a full grid. Row colors and point values cycle
// through the configured tiers by row index.
func NewBrickField(cfg config.BricksConfig) *BrickField {
	f := &BrickField{
		rows:   cfg.Rows,
		cols:   cfg.Cols,
		bricks: make([][]Brick, cfg.Rows),
	}

	for row := 0; row < cfg.Rows; row++ {
		color := core.ColorWhite
		if len(cfg.Colors) > 0 {
			if c, ok := core.ParseColor(cfg.Colors[row%len(cfg.Colors)]); ok {
				color = c
			}
		}
		points := 0
		if len(cfg.Points) > 0 {
			points = cfg.Points[row%len(cfg.Points)]
		}

		f.bricks[row] = make([]Brick, cfg.Cols)
		for col := 0; col < cfg.Cols; col++ {
			f.bricks[row][col] = Brick{
				X:      cfg.SideOffset + col*(cfg.Width+cfg.GapX),
				Y:      cfg.TopOffset + row*(cfg.Height+cfg.GapY),
				Width:  cfg.Width,
				Height: cfg.Height,
				Color:  color,
				Points: points,
				Active: true,
			}
		}
	}
	return f
}

// CheckCollision scans the grid row by row and deactivates the first active
// brick the ball overlaps. It returns that brick, or nil if nothing was hit.
// At most one brick is destroyed per call.
func (f *BrickField) CheckCollision(b *Ball) *Brick {
	bounds := b.Bounds()
	for row := range f.bricks {
		for col := range f.bricks[row] {
			brick := &f.bricks[row][col]
			if !brick.Active || !brick.Bounds().Intersects(bounds) {
				continue
			}
			brick.Active = false
			return brick
		}
	}
	return nil
}

// IsEmpty reports whether every brick has been destroyed.
func (f *BrickField) IsEmpty() bool {
	for row := range f.bricks {
		for col := range f.bricks[row] {
			if f.bricks[row][col].Active {
				return false
			}
		}
	}
	return true
}

// ActiveCount returns the number of bricks still standing.
func (f *BrickField) ActiveCount() int {
	n := 0
	for row := range f.bricks {
		for col := range f.bricks[row] {
			if f.bricks[row][col].Active {
				n++
			}
		}
	}
	return n
}

// Rows returns the number of brick rows.
func (f *BrickField) Rows() int { return f.rows }

// Cols returns the number of brick columns.
func (f *BrickField) Cols() int { return f.cols }

// Brick returns the brick at (row, col), or nil if out of range.
func (f *BrickField) Brick(row, col int) *Brick {
	if row < 0 || row >= f.rows || col < 0 || col >= f.cols {
		return nil
	}
	return &f.bricks[row][col]
}
