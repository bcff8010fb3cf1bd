package tui

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// CellAspect is how many surface pixels tall one terminal cell is; cells
// are one pixel wide. Terminal cells are roughly twice as tall as wide.
const CellAspect = 2

// shadeRamp goes from the first gradient stop to the second.
var shadeRamp = []rune{'░', '▒', '▓', '█'}

// brushColors maps brushes to terminal colors.
var brushColors = map[core.Brush]core.Color{
	core.BrushBackground: core.ColorDefault,
	core.BrushAvatar:     core.ColorBrightCyan,
	core.BrushBarrier:    core.ColorBrightBlue,
	core.BrushScoreText:  core.ColorBlue,
	core.BrushBannerText: core.ColorBrightMagenta,
	core.BrushHintText:   core.ColorCyan,
}

// Canvas is a core.Surface that rasterizes shapes into a character grid.
// A shape covers a cell when the cell's centre falls inside it.
type Canvas struct {
	screen *core.Screen
}

// NewCanvas creates a canvas of cols x rows cells.
func NewCanvas(cols, rows int) *Canvas {
	return &Canvas{screen: core.NewScreen(cols, rows)}
}

// Resize changes the grid size and clears it.
func (c *Canvas) Resize(cols, rows int) {
	c.screen.Resize(cols, rows)
}

// Screen returns the character grid of the last frame.
func (c *Canvas) Screen() *core.Screen {
	return c.screen
}

func (c *Canvas) Size() (float64, float64) {
	return float64(c.screen.Width()), float64(c.screen.Height() * CellAspect)
}

func (c *Canvas) Begin() {
	c.screen.Clear()
}

func (c *Canvas) FillBackground(b core.Brush) {
	c.screen.Fill(core.Cell{Rune: ' ', Color: brushColors[b]})
}

func (c *Canvas) FillRect(m core.Affine, b core.Brush) {
	c.fill(m, b, func(u, v float64) bool {
		return u >= 0 && u <= 1 && v >= 0 && v <= 1
	})
}

func (c *Canvas) FillEllipse(m core.Affine, b core.Brush) {
	c.fill(m, b, func(u, v float64) bool {
		du, dv := u-0.5, v-0.5
		return du*du+dv*dv <= 0.25
	})
}

func (c *Canvas) fill(m core.Affine, b core.Brush, inside func(u, v float64) bool) {
	inv, ok := m.Invert()
	if !ok {
		return
	}

	minP, maxP := m.Bounds()
	x0, y0 := int(math.Floor(minP.X)), int(math.Floor(minP.Y/CellAspect))
	x1, y1 := int(math.Ceil(maxP.X)), int(math.Ceil(maxP.Y/CellAspect))
	area := core.NewRect(x0, y0, x1-x0+1, y1-y0+1).Intersect(c.screen.Bounds())
	if area.Empty() {
		return
	}

	grad := core.Palette[b]
	color := brushColors[b]
	for cy := area.Y; cy < area.Bottom(); cy++ {
		for cx := area.X; cx < area.Right(); cx++ {
			p := inv.Apply(core.Vec2{X: float64(cx) + 0.5, Y: (float64(cy) + 0.5) * CellAspect})
			if !inside(p.X, p.Y) {
				continue
			}
			c.screen.SetCell(cx, cy, core.Cell{Rune: shade(grad, p.X, p.Y), Color: color})
		}
	}
}

// shade picks a ramp rune for the gradient position at (u, v).
func shade(g core.Gradient, u, v float64) rune {
	t := u
	if g.Vertical {
		t = v
	}
	i := int(core.ClampF(t, 0, 1) * float64(len(shadeRamp)))
	return shadeRamp[min(i, len(shadeRamp)-1)]
}

// DrawText centres one line of text at the row nearest t.Y.
func (c *Canvas) DrawText(t core.Text) {
	row := int(t.Y * float64(c.screen.Height()))
	c.screen.DrawTextCentered(row, t.Content, brushColors[t.Brush])
}

func (c *Canvas) End() error {
	return nil
}
