package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/physics"
)

// Sprite is one filled shape in surface space: the unit square (or the
// circle inscribed in it) mapped through Transform.
type Sprite struct {
	Role      physics.Role
	Shape     core.ShapeKind
	Brush     core.Brush
	Transform core.Affine
}

// WorldTransform maps world units onto a surface of the given size.
// The world's y axis points up, so it is flipped and moved to the bottom
// edge; the world is centred horizontally.
func (g *Game) WorldTransform(surfaceW, surfaceH float64) core.Affine {
	s := surfaceH / g.cfg.World.Height
	return core.Scale(s, -s).Then(core.Translate((surfaceW-g.worldWidth*s)/2, surfaceH))
}

// Sprites projects the visible bodies onto a surface. It never changes
// game state.
func (g *Game) Sprites(surfaceW, surfaceH float64) []Sprite {
	world := g.WorldTransform(surfaceW, surfaceH)

	sprites := make([]Sprite, 0, 1+2*len(g.barriers))
	for _, b := range g.barriers {
		for _, f := range b.body.Fixtures() {
			switch f.Role {
			case physics.RoleBarrierBottom:
				sprites = append(sprites, fixtureSprite(f, 0, core.BrushBarrier, world))
			case physics.RoleBarrierTop:
				// Rotated half a turn so the gradient runs away from the gap.
				sprites = append(sprites, fixtureSprite(f, math.Pi, core.BrushBarrier, world))
			}
		}
	}
	for _, f := range g.avatar.Fixtures() {
		sprites = append(sprites, fixtureSprite(f, 0, core.BrushAvatar, world))
	}
	return sprites
}

func fixtureSprite(f *physics.Fixture, extraAngle float64, brush core.Brush, world core.Affine) Sprite {
	body := f.Body()
	w, h := 2*f.HalfWidth, 2*f.HalfHeight
	corner := body.Position().Add(f.Center).Sub(core.Vec2{X: f.HalfWidth, Y: f.HalfHeight})

	m := core.Scale(w, h).
		Then(core.RotateAbout(body.Angle()+extraAngle, w/2, h/2)).
		Then(core.Translate(corner.X, corner.Y)).
		Then(world)

	shape := core.ShapeRect
	if f.Shape == physics.ShapeCircle {
		shape = core.ShapeEllipse
	}
	return Sprite{Role: f.Role, Shape: shape, Brush: brush, Transform: m}
}

// Render draws one frame. The surface's End error is returned unchanged.
func (g *Game) Render(surface core.Surface) error {
	w, h := surface.Size()

	surface.Begin()
	surface.FillBackground(core.BrushBackground)
	for _, s := range g.Sprites(w, h) {
		switch s.Shape {
		case core.ShapeEllipse:
			surface.FillEllipse(s.Transform, s.Brush)
		default:
			surface.FillRect(s.Transform, s.Brush)
		}
	}
	for _, t := range g.HUD() {
		surface.DrawText(t)
	}
	return surface.End()
}
