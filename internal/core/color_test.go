package core

import (
	"image/color"
	"testing"
)

func TestGradientAt(t *testing.T) {
	g := Gradient{
		From: color.RGBA{R: 0, G: 100, B: 200, A: 255},
		To:   color.RGBA{R: 200, G: 100, B: 0, A: 255},
	}

	if got := g.At(0, 1); got != g.From {
		t.Errorf("At(0, 1) = %+v, expected From for horizontal gradient", got)
	}
	if got := g.At(1, 0); got != g.To {
		t.Errorf("At(1, 0) = %+v, expected To for horizontal gradient", got)
	}
	if got := g.At(0.5, 0); got.R != 100 || got.B != 100 {
		t.Errorf("At(0.5, 0) = %+v, expected midpoint", got)
	}

	g.Vertical = true
	if got := g.At(1, 0); got != g.From {
		t.Errorf("vertical At(1, 0) = %+v, expected From", got)
	}
	if got := g.At(0, 7); got != g.To {
		t.Errorf("vertical At(0, 7) = %+v, expected clamped To", got)
	}
}

func TestPaletteCoversBrushes(t *testing.T) {
	for b := BrushBackground; b <= BrushHintText; b++ {
		if _, ok := Palette[b]; !ok {
			t.Errorf("Palette is missing brush %s", b)
		}
	}
}
