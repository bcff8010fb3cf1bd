package physics

import (
	"github.com/ByteArena/box2d"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// BodyDef describes a body to create.
type BodyDef struct {
	Dynamic  bool
	Position core.Vec2
	Velocity core.Vec2
}

// FixtureDef holds the material of a fixture.
type FixtureDef struct {
	Role     Role
	Density  float64
	Friction float64
	Sensor   bool
}

// Body is a rigid body owned by a World.
type Body struct {
	world    *World
	b2       *box2d.B2Body
	fixtures []*Fixture
}

// AddBox attaches an axis-aligned box centred at center in body space.
func (b *Body) AddBox(halfWidth, halfHeight float64, center core.Vec2, def FixtureDef) *Fixture {
	shape := box2d.MakeB2PolygonShape()
	shape.SetAsBoxFromCenterAndAngle(halfWidth, halfHeight, vec(center), 0)

	f := &Fixture{
		Role:       def.Role,
		Shape:      ShapeBox,
		Center:     center,
		HalfWidth:  halfWidth,
		HalfHeight: halfHeight,
		Sensor:     def.Sensor,
	}
	return b.attach(f, &shape, def)
}

// AddCircle attaches a circle centred on the body origin.
func (b *Body) AddCircle(radius float64, def FixtureDef) *Fixture {
	shape := box2d.MakeB2CircleShape()
	shape.M_radius = radius

	f := &Fixture{
		Role:       def.Role,
		Shape:      ShapeCircle,
		Radius:     radius,
		HalfWidth:  radius,
		HalfHeight: radius,
		Sensor:     def.Sensor,
	}
	return b.attach(f, &shape, def)
}

func (b *Body) attach(f *Fixture, shape box2d.B2ShapeInterface, def FixtureDef) *Fixture {
	fd := box2d.MakeB2FixtureDef()
	fd.Shape = shape
	fd.Density = def.Density
	fd.Friction = def.Friction
	fd.IsSensor = def.Sensor
	fd.UserData = f

	f.body = b
	f.b2 = b.b2.CreateFixtureFromDef(&fd)
	b.fixtures = append(b.fixtures, f)
	return f
}

// Fixtures returns the body's fixtures in attach order.
func (b *Body) Fixtures() []*Fixture {
	return b.fixtures
}

func (b *Body) Position() core.Vec2 {
	return fromVec(b.b2.GetPosition())
}

func (b *Body) Angle() float64 {
	return b.b2.GetAngle()
}

// SetTransform teleports the body.
func (b *Body) SetTransform(pos core.Vec2, angle float64) {
	b.b2.SetTransform(vec(pos), angle)
}

func (b *Body) LinearVelocity() core.Vec2 {
	return fromVec(b.b2.GetLinearVelocity())
}

func (b *Body) SetLinearVelocity(v core.Vec2) {
	b.b2.SetLinearVelocity(vec(v))
}
