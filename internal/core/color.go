package core

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Colors the terminal canvas paints brushes with.
const (
	ColorDefault Color = iota
	ColorBlue
	ColorCyan
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
)

// Brush names what a shape or text is painted with. Shells decide how a
// brush looks on their medium; Palette gives the reference colors.
type Brush uint8

const (
	BrushBackground Brush = iota
	BrushAvatar
	BrushBarrier
	BrushScoreText
	BrushBannerText
	BrushHintText
)

// String returns a human-readable name for the brush.
func (b Brush) String() string {
	switch b {
	case BrushBackground:
		return "Background"
	case BrushAvatar:
		return "Avatar"
	case BrushBarrier:
		return "Barrier"
	case BrushScoreText:
		return "ScoreText"
	case BrushBannerText:
		return "BannerText"
	case BrushHintText:
		return "HintText"
	default:
		return "Unknown"
	}
}

// Gradient is a two-stop linear gradient across the unit square of a shape.
// Vertical gradients run from the top edge (v=0) to the bottom edge (v=1),
// horizontal ones from the left edge (u=0) to the right edge (u=1).
// Text brushes use From only.
type Gradient struct {
	From, To color.RGBA
	Vertical bool
}

// At returns the gradient color at unit coordinates (u, v).
func (g Gradient) At(u, v float64) color.RGBA {
	t := u
	if g.Vertical {
		t = v
	}
	t = ClampF(t, 0, 1)
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
	}
	return color.RGBA{
		R: lerp(g.From.R, g.To.R),
		G: lerp(g.From.G, g.To.G),
		B: lerp(g.From.B, g.To.B),
		A: lerp(g.From.A, g.To.A),
	}
}

func rgb(hex uint32) color.RGBA {
	return color.RGBA{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: 0xff}
}

// Palette maps every brush to its reference gradient.
var Palette = map[Brush]Gradient{
	BrushBackground: {From: colornames.Whitesmoke, To: colornames.Lightskyblue, Vertical: true},
	BrushAvatar:     {From: colornames.Whitesmoke, To: colornames.Darkcyan},
	BrushBarrier:    {From: colornames.Whitesmoke, To: colornames.Lightskyblue, Vertical: true},
	BrushScoreText:  {From: rgb(0x0063b1), To: rgb(0x0063b1)},
	BrushBannerText: {From: rgb(0xea005e), To: rgb(0xea005e)},
	BrushHintText:   {From: colornames.Teal, To: colornames.Teal},
}
