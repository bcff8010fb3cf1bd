package core

import "math"

// Affine is a 2D affine transform in row-vector form:
//
//	x' = A*x + C*y + E
//	y' = B*x + D*y + F
//
// m.Then(n) applies m first and n second, so transforms read left to right
// in the order they happen to a point.
type Affine struct {
	A, B, C, D, E, F float64
}

// Identity returns the transform that leaves points unchanged.
func Identity() Affine {
	return Affine{A: 1, D: 1}
}

// Scale returns a transform scaling by (sx, sy) about the origin.
func Scale(sx, sy float64) Affine {
	return Affine{A: sx, D: sy}
}

// Translate returns a transform moving points by (dx, dy).
func Translate(dx, dy float64) Affine {
	return Affine{A: 1, D: 1, E: dx, F: dy}
}

// Rotate returns a rotation by angle radians about the origin.
func Rotate(angle float64) Affine {
	sin, cos := math.Sincos(angle)
	return Affine{A: cos, B: sin, C: -sin, D: cos}
}

// RotateAbout returns a rotation by angle radians about (cx, cy).
func RotateAbout(angle, cx, cy float64) Affine {
	return Translate(-cx, -cy).Then(Rotate(angle)).Then(Translate(cx, cy))
}

// Then returns the transform that applies m followed by n.
func (m Affine) Then(n Affine) Affine {
	return Affine{
		A: m.A*n.A + m.B*n.C,
		B: m.A*n.B + m.B*n.D,
		C: m.C*n.A + m.D*n.C,
		D: m.C*n.B + m.D*n.D,
		E: m.E*n.A + m.F*n.C + n.E,
		F: m.E*n.B + m.F*n.D + n.F,
	}
}

// Apply maps a point through the transform.
func (m Affine) Apply(p Vec2) Vec2 {
	return Vec2{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// Det returns the determinant of the linear part.
func (m Affine) Det() float64 {
	return m.A*m.D - m.B*m.C
}

// Invert returns the inverse transform. ok is false for degenerate
// transforms (zero-area shapes), which callers skip.
func (m Affine) Invert() (inv Affine, ok bool) {
	det := m.Det()
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Affine{}, false
	}
	inv = Affine{
		A: m.D / det,
		B: -m.B / det,
		C: -m.C / det,
		D: m.A / det,
	}
	inv.E = -(m.E*inv.A + m.F*inv.C)
	inv.F = -(m.E*inv.B + m.F*inv.D)
	return inv, true
}

// Bounds returns the axis-aligned bounding box of the unit square [0,1]²
// after transformation, as min and max corners.
func (m Affine) Bounds() (minP, maxP Vec2) {
	corners := [4]Vec2{
		m.Apply(Vec2{0, 0}),
		m.Apply(Vec2{1, 0}),
		m.Apply(Vec2{0, 1}),
		m.Apply(Vec2{1, 1}),
	}
	minP, maxP = corners[0], corners[0]
	for _, c := range corners[1:] {
		minP.X = math.Min(minP.X, c.X)
		minP.Y = math.Min(minP.Y, c.Y)
		maxP.X = math.Max(maxP.X, c.X)
		maxP.Y = math.Max(maxP.Y, c.Y)
	}
	return minP, maxP
}
