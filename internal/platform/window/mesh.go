package window

import (
	"image/color"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// ellipseSegments is the number of fan triangles approximating a circle.
const ellipseSegments = 48

// vertex is a surface-space point with a straight (non-premultiplied) color.
type vertex struct {
	X, Y  float32
	Color color.RGBA
}

// mesh is an indexed triangle list.
type mesh struct {
	vertices []vertex
	indices  []uint16
}

func (m *mesh) reset() {
	m.vertices = m.vertices[:0]
	m.indices = m.indices[:0]
}

// addPoint maps the unit-square point (u, v) through t and colors it from g.
func (m *mesh) addPoint(t core.Affine, g core.Gradient, u, v float64) uint16 {
	p := t.Apply(core.Vec2{X: u, Y: v})
	m.vertices = append(m.vertices, vertex{X: float32(p.X), Y: float32(p.Y), Color: g.At(u, v)})
	return uint16(len(m.vertices) - 1)
}

// appendQuad adds the unit square mapped through t.
func (m *mesh) appendQuad(t core.Affine, g core.Gradient) {
	a := m.addPoint(t, g, 0, 0)
	b := m.addPoint(t, g, 1, 0)
	c := m.addPoint(t, g, 1, 1)
	d := m.addPoint(t, g, 0, 1)
	m.indices = append(m.indices, a, b, c, a, c, d)
}

// appendEllipse adds a triangle fan for the circle inscribed in the unit
// square mapped through t.
func (m *mesh) appendEllipse(t core.Affine, g core.Gradient) {
	mid := core.Vec2{X: 0.5, Y: 0.5}
	centre := m.addPoint(t, g, mid.X, mid.Y)
	first := uint16(len(m.vertices))
	for i := 0; i < ellipseSegments; i++ {
		rim := mid.Add(core.Vec2{X: 0.5}.Rotate(2 * math.Pi * float64(i) / ellipseSegments))
		m.addPoint(t, g, rim.X, rim.Y)
	}
	for i := uint16(0); i < ellipseSegments; i++ {
		next := (i + 1) % ellipseSegments
		m.indices = append(m.indices, centre, first+i, first+next)
	}
}
