package brickbreaker

import "testing"

func TestPowerUpIntersects(t *testing.T) {
	paddle := &Paddle{X: 350, Y: 530, Width: 100, Height: 15}

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"bottom edge touches top", 400, 520, true},
		{"just above", 400, 519, false},
		{"left of paddle", 349, 535, false},
		{"right edge inclusive", 450, 540, true},
		{"top edge touches bottom", 400, 555, true},
		{"below paddle", 400, 556, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := &PowerUp{X: tc.x, Y: tc.y, Size: 20}
			if got := p.Intersects(paddle); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestPowerUpMove(t *testing.T) {
	p := &PowerUp{X: 100, Y: 100, Size: 20, FallSpeed: 2}
	p.Move()
	if p.X != 100 || p.Y != 102 {
		t.Errorf("Move() -> (%v, %v), expected (100, 102)", p.X, p.Y)
	}
}

func TestPowerUpTypesAreDistinct(t *testing.T) {
	glyphs := make(map[rune]PowerUpType)
	names := make(map[string]PowerUpType)

	for typ := PowerUpType(0); typ < PowerUpCount; typ++ {
		if prev, ok := glyphs[typ.Glyph()]; ok {
			t.Errorf("%v and %v share glyph %q", prev, typ, typ.Glyph())
		}
		if prev, ok := names[typ.String()]; ok {
			t.Errorf("%v and %v share name %q", prev, typ, typ.String())
		}
		glyphs[typ.Glyph()] = typ
		names[typ.String()] = typ
	}

	if PowerUpCount.Glyph() != '?' || PowerUpCount.String() != "?" {
		t.Error("Unknown type should render as '?'")
	}
}
