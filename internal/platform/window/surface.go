package window

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// ErrNoTarget is returned by End when a frame was drawn without a target
// image.
var ErrNoTarget = errors.New("window: no render target")

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Surface is a core.Surface drawing gradient-filled triangles and
// text/v2 text onto an ebiten image.
type Surface struct {
	target        *ebiten.Image
	width, height float64

	font  *text.GoTextFaceSource
	mesh  mesh
	verts []ebiten.Vertex
}

// NewSurface creates a surface of the given size with the Go Regular font.
func NewSurface(width, height int) (*Surface, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("window: failed to parse font: %w", err)
	}
	return &Surface{
		width:  float64(width),
		height: float64(height),
		font:   source,
	}, nil
}

// SetTarget sets the image the next frame is drawn on.
func (s *Surface) SetTarget(img *ebiten.Image) {
	s.target = img
}

// SetSize updates the logical output size.
func (s *Surface) SetSize(width, height int) {
	s.width, s.height = float64(width), float64(height)
}

func (s *Surface) Size() (float64, float64) {
	return s.width, s.height
}

func (s *Surface) Begin() {
	s.mesh.reset()
}

func (s *Surface) FillBackground(b core.Brush) {
	s.mesh.appendQuad(core.Scale(s.width, s.height), core.Palette[b])
}

func (s *Surface) FillRect(m core.Affine, b core.Brush) {
	s.mesh.appendQuad(m, core.Palette[b])
}

func (s *Surface) FillEllipse(m core.Affine, b core.Brush) {
	s.mesh.appendEllipse(m, core.Palette[b])
}

// DrawText flushes the shapes queued so far so text lands on top of them.
func (s *Surface) DrawText(t core.Text) {
	if s.target == nil {
		return
	}
	s.flush()

	face := &text.GoTextFace{Source: s.font, Size: t.Size * s.height}
	w, _ := text.Measure(t.Content, face, 0)

	op := &text.DrawOptions{}
	op.GeoM.Translate((s.width-w)/2, t.Y*s.height)
	op.ColorScale.ScaleWithColor(core.Palette[t.Brush].From)
	text.Draw(s.target, t.Content, face, op)
}

// End submits the queued shapes.
func (s *Surface) End() error {
	if s.target == nil {
		s.mesh.reset()
		return ErrNoTarget
	}
	s.flush()
	return nil
}

func (s *Surface) flush() {
	if len(s.mesh.indices) == 0 {
		return
	}
	s.verts = s.verts[:0]
	for _, v := range s.mesh.vertices {
		a := float32(v.Color.A) / 0xff
		s.verts = append(s.verts, ebiten.Vertex{
			DstX:   v.X,
			DstY:   v.Y,
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(v.Color.R) / 0xff * a,
			ColorG: float32(v.Color.G) / 0xff * a,
			ColorB: float32(v.Color.B) / 0xff * a,
			ColorA: a,
		})
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	s.target.DrawTriangles(s.verts, s.mesh.indices, whiteSubImage, op)
	s.mesh.reset()
}
