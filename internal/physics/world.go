// Package physics wraps the Box2D world used by the game. It keeps the
// engine types out of game code and turns contact callbacks into plain
// values tagged with the role each fixture plays.
package physics

import (
	"github.com/ByteArena/box2d"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Default solver iterations per step.
const (
	DefaultVelocityIterations = 8
	DefaultPositionIterations = 3
)

// ContactFunc receives contact notifications during Step or DestroyBody.
// Handlers must not create or destroy bodies.
type ContactFunc func(Contact)

// World is a rigid-body simulation. It must not be copied after NewWorld.
type World struct {
	b2     box2d.B2World
	bodies []*Body

	velocityIterations int
	positionIterations int

	onBegin ContactFunc
	onEnd   ContactFunc
}

// NewWorld creates an empty world with the given gravity.
func NewWorld(gravity core.Vec2) *World {
	w := &World{
		b2:                 box2d.MakeB2World(vec(gravity)),
		velocityIterations: DefaultVelocityIterations,
		positionIterations: DefaultPositionIterations,
	}
	w.b2.SetContactListener(listener{w})
	return w
}

// SetIterations overrides the solver iteration counts. Non-positive
// values keep the current setting.
func (w *World) SetIterations(velocity, position int) {
	if velocity > 0 {
		w.velocityIterations = velocity
	}
	if position > 0 {
		w.positionIterations = position
	}
}

// SetGravity changes the gravity applied to dynamic bodies.
func (w *World) SetGravity(g core.Vec2) {
	w.b2.SetGravity(vec(g))
}

// Gravity returns the current gravity.
func (w *World) Gravity() core.Vec2 {
	return fromVec(w.b2.GetGravity())
}

// OnBeginContact registers the handler for contacts that start touching.
func (w *World) OnBeginContact(fn ContactFunc) {
	w.onBegin = fn
}

// OnEndContact registers the handler for contacts that stop touching.
func (w *World) OnEndContact(fn ContactFunc) {
	w.onEnd = fn
}

// CreateBody adds a body to the world.
func (w *World) CreateBody(def BodyDef) *Body {
	bd := box2d.MakeB2BodyDef()
	if def.Dynamic {
		bd.Type = box2d.B2BodyType.B2_dynamicBody
	} else {
		bd.Type = box2d.B2BodyType.B2_staticBody
	}
	bd.Position = vec(def.Position)
	bd.LinearVelocity = vec(def.Velocity)

	b := &Body{
		world: w,
		b2:    w.b2.CreateBody(&bd),
	}
	w.bodies = append(w.bodies, b)
	return b
}

// DestroyBody removes a body and its fixtures. End-contact handlers fire
// for any contact the body was still touching.
func (w *World) DestroyBody(b *Body) {
	if b == nil || b.world != w {
		return
	}
	w.b2.DestroyBody(b.b2)
	for i, other := range w.bodies {
		if other == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			break
		}
	}
	b.world = nil
}

// Bodies returns live bodies in creation order.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// Step advances the simulation by dt seconds.
func (w *World) Step(dt float64) {
	w.b2.Step(dt, w.velocityIterations, w.positionIterations)
}

// ShiftOrigin moves the world origin to newOrigin. Every body position
// decreases by newOrigin; velocities are unchanged.
func (w *World) ShiftOrigin(newOrigin core.Vec2) {
	w.b2.ShiftOrigin(vec(newOrigin))
}

func (w *World) dispatch(fn ContactFunc, c box2d.B2ContactInterface) {
	if fn == nil {
		return
	}
	a, b := fixtureOf(c.GetFixtureA()), fixtureOf(c.GetFixtureB())
	if a == nil || b == nil {
		return
	}
	fn(Contact{A: a, B: b})
}

// listener adapts Box2D callbacks to the world's handlers.
type listener struct {
	w *World
}

func (l listener) BeginContact(c box2d.B2ContactInterface) {
	l.w.dispatch(l.w.onBegin, c)
}

func (l listener) EndContact(c box2d.B2ContactInterface) {
	l.w.dispatch(l.w.onEnd, c)
}

func (listener) PreSolve(box2d.B2ContactInterface, box2d.B2Manifold) {}

func (listener) PostSolve(box2d.B2ContactInterface, *box2d.B2ContactImpulse) {}

func vec(v core.Vec2) box2d.B2Vec2 {
	return box2d.MakeB2Vec2(v.X, v.Y)
}

func fromVec(v box2d.B2Vec2) core.Vec2 {
	return core.Vec2{X: v.X, Y: v.Y}
}
