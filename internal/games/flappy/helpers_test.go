package flappy

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

const step = 1.0 / 60

// fixedRandom returns the same point of every requested range.
type fixedRandom float64

func (r fixedRandom) Float(min, max float64) float64 {
	return min + (max-min)*float64(r)
}

func newTestGame(t *testing.T, worldWidth float64) *Game {
	t.Helper()
	return New(config.DefaultFlappyConfig(), fixedRandom(0.5), worldWidth)
}

func approx(a, b float64) bool {
	return math.Abs(a-b) <= 1e-6
}

// runUntil steps the game until cond holds or the step limit is reached.
func runUntil(g *Game, steps int, cond func() bool) bool {
	for i := 0; i < steps; i++ {
		g.Update(step, float64(i+1)*step)
		if cond() {
			return true
		}
	}
	return false
}

// recordingSurface records draw calls in order.
type recordingSurface struct {
	w, h     float64
	calls    []string
	rects    []core.Affine
	ellipses []core.Affine
	texts    []core.Text
	endErr   error
}

func (s *recordingSurface) Size() (float64, float64) { return s.w, s.h }

func (s *recordingSurface) Begin() {
	s.calls = append(s.calls, "begin")
}

func (s *recordingSurface) FillBackground(core.Brush) {
	s.calls = append(s.calls, "background")
}

func (s *recordingSurface) FillRect(m core.Affine, _ core.Brush) {
	s.calls = append(s.calls, "rect")
	s.rects = append(s.rects, m)
}

func (s *recordingSurface) FillEllipse(m core.Affine, _ core.Brush) {
	s.calls = append(s.calls, "ellipse")
	s.ellipses = append(s.ellipses, m)
}

func (s *recordingSurface) DrawText(t core.Text) {
	s.calls = append(s.calls, "text")
	s.texts = append(s.texts, t)
}

func (s *recordingSurface) End() error {
	s.calls = append(s.calls, "end")
	return s.endErr
}

func (s *recordingSurface) count(call string) int {
	n := 0
	for _, c := range s.calls {
		if c == call {
			n++
		}
	}
	return n
}

// manualClock is a clock advanced by hand.
type manualClock struct {
	now time.Time
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time { return c.now }

func (c *manualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// sequenceRandom cycles through fixed points of the requested ranges.
type sequenceRandom struct {
	points []float64
	next   int
}

func (r *sequenceRandom) Float(min, max float64) float64 {
	p := r.points[r.next%len(r.points)]
	r.next++
	return min + (max-min)*p
}
