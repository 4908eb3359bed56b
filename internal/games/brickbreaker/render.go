package brickbreaker

import (
	"fmt"
	"math"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Glyphs used to draw the world.
const (
	BrickGlyph  = '█'
	PaddleGlyph = '▀'
	BallGlyph   = '●'
)

// viewport maps world coordinates onto screen cells. Row 0 is the HUD;
// the world fills the rows below it.
type viewport struct {
	scaleX, scaleY float64
	top            int
}

func newViewport(dst *core.Screen, worldW, worldH int) viewport {
	return viewport{
		scaleX: float64(dst.Width()) / float64(worldW),
		scaleY: float64(dst.Height()-1) / float64(worldH),
		top:    1,
	}
}

func (v viewport) cellX(x float64) int {
	return int(math.Floor(x * v.scaleX))
}

func (v viewport) cellY(y float64) int {
	return v.top + int(math.Floor(y*v.scaleY))
}

// cellRect converts a world box to a cell rectangle at least one cell large.
func (v viewport) cellRect(r core.RectF) core.Rect {
	x0, y0 := v.cellX(r.X), v.cellY(r.Y)
	x1, y1 := v.cellX(r.Right()), v.cellY(r.Bottom())
	return core.NewRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

// WorldX maps a screen column back to a world x coordinate (the column's center).
func WorldX(cellX, screenW, worldW int) float64 {
	if screenW <= 0 {
		return 0
	}
	return (float64(cellX) + 0.5) * float64(worldW) / float64(screenW)
}

// renderWorld draws the world into dst. Caller holds the engine lock.
func renderWorld(dst *core.Screen, w *World) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() < 2 {
		return
	}

	v := newViewport(dst, w.cfg.World.Width, w.cfg.World.Height)

	renderHUD(dst, w)

	for row := 0; row < w.Bricks.Rows(); row++ {
		for col := 0; col < w.Bricks.Cols(); col++ {
			brick := w.Bricks.Brick(row, col)
			if !brick.Active {
				continue
			}
			r := v.cellRect(brick.Bounds())
			r.H = 1 // Keep adjacent rows from bleeding into each other
			dst.DrawRect(r, BrickGlyph, brick.Color)
		}
	}

	for _, p := range w.PowerUps {
		dst.SetColored(v.cellX(p.X), v.cellY(p.Y), p.Type.Glyph(), p.Type.Color())
	}

	paddle := v.cellRect(w.Paddle.Bounds())
	paddle.H = 1
	dst.DrawRect(paddle, PaddleGlyph, core.ColorWhite)

	for _, b := range w.Balls {
		dst.SetColored(v.cellX(b.CenterX()), v.cellY(b.CenterY()), BallGlyph, core.ColorWhite)
	}

	renderOverlay(dst, w)
}

// renderHUD draws score on the left, ball count and lives on the right.
func renderHUD(dst *core.Screen, w *World) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", w.Score.Score()))

	right := fmt.Sprintf("Balls: %d  Lives: %d", len(w.Balls), w.Lives)
	dst.DrawText(dst.Width()-len(right)-1, 0, right)
}

// renderOverlay draws game state messages.
func renderOverlay(dst *core.Screen, w *World) {
	switch {
	case w.Victory:
		drawCenteredBox(dst, "VICTORY!", fmt.Sprintf("Final Score: %d", w.Score.Score()), "Press R to restart")
	case w.GameOver:
		drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Final Score: %d", w.Score.Score()), "Press R to restart")
	case w.Paused:
		drawCenteredBox(dst, "PAUSED", "Press SPACE to continue")
	}
}

// drawCenteredBox draws a centered message box with one line per string.
func drawCenteredBox(dst *core.Screen, lines ...string) {
	width := 0
	for _, l := range lines {
		width = core.Max(width, len([]rune(l)))
	}

	boxW := width + 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	for i, l := range lines {
		x := boxX + (boxW-len([]rune(l)))/2
		dst.DrawTextColored(x, boxY+1+i, l, core.ColorYellow)
	}
}
