package physics

import (
	"github.com/ByteArena/box2d"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Role tags what a fixture stands for in the game.
type Role int

const (
	RoleUnknown Role = iota
	RoleGround
	RoleAvatar
	RoleBarrierBottom
	RoleBarrierTop
	RoleGap
)

var roleNames = map[Role]string{
	RoleUnknown:       "unknown",
	RoleGround:        "ground",
	RoleAvatar:        "avatar",
	RoleBarrierBottom: "barrier-bottom",
	RoleBarrierTop:    "barrier-top",
	RoleGap:           "gap",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}

// Shape is the geometric kind of a fixture.
type Shape int

const (
	ShapeBox Shape = iota
	ShapeCircle
)

// Fixture describes one shape attached to a body. Geometry is in body
// space; for circles HalfWidth and HalfHeight equal Radius.
type Fixture struct {
	Role       Role
	Shape      Shape
	Center     core.Vec2
	HalfWidth  float64
	HalfHeight float64
	Radius     float64
	Sensor     bool

	body *Body
	b2   *box2d.B2Fixture
}

// Body returns the owning body.
func (f *Fixture) Body() *Body {
	return f.body
}

func fixtureOf(f *box2d.B2Fixture) *Fixture {
	if f == nil {
		return nil
	}
	fx, _ := f.GetUserData().(*Fixture)
	return fx
}

// Contact is a pair of touching fixtures.
type Contact struct {
	A, B *Fixture
}

// Solid reports whether neither fixture is a sensor.
func (c Contact) Solid() bool {
	return !c.A.Sensor && !c.B.Sensor
}

// HasSensor reports whether at least one fixture is a sensor.
func (c Contact) HasSensor() bool {
	return c.A.Sensor || c.B.Sensor
}

// Involves reports whether either fixture has the given role.
func (c Contact) Involves(role Role) bool {
	return c.A.Role == role || c.B.Role == role
}
