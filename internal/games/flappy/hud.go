package flappy

import (
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// HUD layout as fractions of the surface height.
const (
	scoreTextSize = 0.08
	scoreTextY    = 0.1

	bannerText     = "Game Over"
	bannerTextSize = 0.1
	bannerStartY   = 0.3
	bannerRestY    = 0.4
	bannerDuration = 0.35

	hintText     = "Press any key to restart."
	hintTextSize = 0.04
	hintTextY    = 0.6
)

// Banner drops the game-over title into place when a round ends.
type Banner struct {
	tween   *gween.Tween
	visible bool
	y       float64
}

// NewBanner creates a hidden banner.
func NewBanner() *Banner {
	return &Banner{y: bannerStartY}
}

// Show starts the drop animation from the top.
func (b *Banner) Show() {
	b.tween = gween.New(bannerStartY, bannerRestY, bannerDuration, ease.OutBounce)
	b.visible = true
	b.y = bannerStartY
}

// Hide removes the banner and stops any animation.
func (b *Banner) Hide() {
	b.tween = nil
	b.visible = false
	b.y = bannerStartY
}

// Update advances the animation by dt seconds.
func (b *Banner) Update(dt float64) {
	if b.tween == nil {
		return
	}
	y, finished := b.tween.Update(float32(dt))
	b.y = float64(y)
	if finished {
		b.y = bannerRestY
		b.tween = nil
	}
}

func (b *Banner) Visible() bool {
	return b.visible
}

// Y returns the banner's current top as a fraction of the surface height.
func (b *Banner) Y() float64 {
	return b.y
}

// HUD returns the text lines to draw over the scene.
func (g *Game) HUD() []core.Text {
	lines := []core.Text{{
		Content: fmt.Sprintf("%d", g.score),
		Size:    scoreTextSize,
		Y:       scoreTextY,
		Brush:   core.BrushScoreText,
	}}
	if g.state == StateOver && g.banner.Visible() {
		lines = append(lines,
			core.Text{Content: bannerText, Size: bannerTextSize, Y: g.banner.Y(), Brush: core.BrushBannerText},
			core.Text{Content: hintText, Size: hintTextSize, Y: hintTextY, Brush: core.BrushHintText},
		)
	}
	return lines
}
