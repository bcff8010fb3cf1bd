package core

// ShapeKind selects the primitive a surface fills under a transform.
type ShapeKind uint8

const (
	// ShapeRect is the unit square [0,1]x[0,1].
	ShapeRect ShapeKind = iota
	// ShapeEllipse is the circle of radius 0.5 centred at (0.5, 0.5).
	ShapeEllipse
)

// Text is one centred line of HUD text. Size and Y are fractions of the
// surface height; Y is the top of the line box.
type Text struct {
	Content string
	Size    float64
	Y       float64
	Brush   Brush
}

// Surface is the drawing target the game renders into. Implementations
// live in the platform shells. Only End reports failures; a failed frame is
// returned to the caller unchanged.
type Surface interface {
	// Size returns the output size in surface pixels.
	Size() (width, height float64)

	Begin()
	FillBackground(b Brush)
	// FillRect fills the unit square mapped through m.
	FillRect(m Affine, b Brush)
	// FillEllipse fills the unit-square-inscribed circle mapped through m.
	FillEllipse(m Affine, b Brush)
	DrawText(t Text)
	End() error
}
