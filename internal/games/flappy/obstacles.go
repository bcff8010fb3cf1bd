package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/physics"
)

// Barrier is a static body holding a bottom block, a gap sensor and a top
// block stacked from the ground to the top of the world.
type Barrier struct {
	body *physics.Body

	HalfWidth  float64
	BottomHalf float64 // Half height of the bottom block
	GapHalf    float64
	TopHalf    float64
}

// X returns the horizontal centre of the barrier.
func (b *Barrier) X() float64 {
	return b.body.Position().X
}

// Body returns the underlying static body.
func (b *Barrier) Body() *physics.Body {
	return b.body
}

// Height returns the stacked height of all three parts.
func (b *Barrier) Height() float64 {
	return 2 * (b.BottomHalf + b.GapHalf + b.TopHalf)
}

// AddBarrier appends a barrier one spacing step behind the last one, or
// just past the right edge of the world when the queue is empty.
func (g *Game) AddBarrier() *Barrier {
	bc := g.cfg.Barriers
	width := g.cfg.BarrierWidth()

	x := g.worldWidth + width/2 + bc.SpawnMargin
	if n := len(g.barriers); n > 0 {
		x = g.barriers[n-1].X() + bc.Distance
	}

	height := g.cfg.World.Height
	half := height / 2
	b := &Barrier{
		HalfWidth:  width / 2,
		BottomHalf: half * g.rng.Float(bc.MinBottomRatio, bc.MaxBottomRatio),
		GapHalf:    g.cfg.GapHalfHeight(),
	}
	b.TopHalf = half - b.GapHalf - b.BottomHalf

	b.body = g.world.CreateBody(physics.BodyDef{Position: core.Vec2{X: x}})
	solid := func(role physics.Role) physics.FixtureDef {
		return physics.FixtureDef{Role: role, Friction: bc.Friction}
	}
	b.body.AddBox(b.HalfWidth, b.BottomHalf, core.Vec2{Y: b.BottomHalf}, solid(physics.RoleBarrierBottom))
	b.body.AddBox(b.HalfWidth, b.GapHalf, core.Vec2{Y: 2*b.BottomHalf + b.GapHalf}, physics.FixtureDef{
		Role:   physics.RoleGap,
		Sensor: true,
	})
	b.body.AddBox(b.HalfWidth, b.TopHalf, core.Vec2{Y: height - b.TopHalf}, solid(physics.RoleBarrierTop))

	g.barriers = append(g.barriers, b)
	return b
}

// PrefillCount returns how many barriers a round starts with: enough to
// cover the visible width plus the one scrolling out on the left.
func (g *Game) PrefillCount() int {
	n := int(math.Ceil((g.worldWidth + g.cfg.BarrierWidth()) / g.cfg.Barriers.Distance))
	return max(n, 1)
}

// recycleBarriers replaces the oldest barrier once it has fully left the
// screen on the left.
func (g *Game) recycleBarriers() {
	if len(g.barriers) == 0 {
		return
	}
	front := g.barriers[0]
	if front.X()+front.HalfWidth >= 0 {
		return
	}

	g.AddBarrier()
	g.world.DestroyBody(front.body)
	g.barriers[0] = nil
	g.barriers = g.barriers[1:]
	g.logger.Debug("barrier recycled", "queued", len(g.barriers))
}

// Barriers returns the queued barriers, oldest first.
func (g *Game) Barriers() []*Barrier {
	return g.barriers
}
