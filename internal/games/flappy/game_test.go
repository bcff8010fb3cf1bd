package flappy

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/physics"
)

func TestNewGameInitialState(t *testing.T) {
	g := newTestGame(t, 16)

	if g.State() != StateNotStarted {
		t.Errorf("state: got %v, expected %v", g.State(), StateNotStarted)
	}
	if g.Score() != 0 {
		t.Errorf("score: got %d, expected 0", g.Score())
	}
	if len(g.Barriers()) != 0 {
		t.Errorf("barriers: got %d, expected 0", len(g.Barriers()))
	}
	if p := g.Avatar().Position(); !approx(p.X, 7.5) || !approx(p.Y, 6) {
		t.Errorf("avatar spawn: got %+v, expected (7.5, 6)", p)
	}
	if v := g.Avatar().LinearVelocity(); !approx(v.X, 2) || !approx(v.Y, 0) {
		t.Errorf("avatar velocity: got %+v, expected (2, 0)", v)
	}
	if gr := g.World().Gravity(); gr.X != 0 || gr.Y != 0 {
		t.Errorf("gravity before start: got %+v, expected zero", gr)
	}
	if p := g.Ground().Position(); !approx(p.X, 8) || !approx(p.Y, -0.1) {
		t.Errorf("ground: got %+v, expected (8, -0.1)", p)
	}
}

func TestFlyUpStartsRound(t *testing.T) {
	g := newTestGame(t, 16)
	g.FlyUp()

	if g.State() != StateRunning {
		t.Fatalf("state: got %v, expected %v", g.State(), StateRunning)
	}
	if gr := g.World().Gravity(); !approx(gr.Y, -10) {
		t.Errorf("gravity: got %+v, expected (0, -10)", gr)
	}
	if got := len(g.Barriers()); got != g.PrefillCount() || got != 4 {
		t.Errorf("barriers: got %d, expected %d", got, g.PrefillCount())
	}
	v := g.Avatar().LinearVelocity()
	if !approx(v.Y, math.Sqrt(2*10*1.7)) {
		t.Errorf("impulse vy: got %v, expected %v", v.Y, math.Sqrt(34))
	}
	if !approx(v.X, 2) {
		t.Errorf("impulse changed vx: got %v", v.X)
	}
}

func TestIdleBob(t *testing.T) {
	g := newTestGame(t, 16)
	omega := 2 * math.Pi / 0.8

	for _, total := range []float64{0.05, 0.2, 0.37, 0.6, 1.25} {
		g.Update(step, total)
		expected := -0.1 * omega * math.Sin(omega*total)
		if vy := g.Avatar().LinearVelocity().Y; !approx(vy, expected) {
			t.Errorf("t=%v: vy got %v, expected %v", total, vy, expected)
		}
	}
	if g.State() != StateNotStarted {
		t.Errorf("idle bob changed state to %v", g.State())
	}
}

func TestOriginShiftKeepsAvatarAndGroundInPlace(t *testing.T) {
	g := newTestGame(t, 16)
	runUntil(g, 90, func() bool { return false })

	if x := g.Avatar().Position().X; !approx(x, 7.5) {
		t.Errorf("avatar x: got %v, expected 7.5", x)
	}
	if x := g.Ground().Position().X; !approx(x, 8) {
		t.Errorf("ground x: got %v, expected 8", x)
	}
}

func TestBarriersScrollLeft(t *testing.T) {
	g := newTestGame(t, 16)
	g.FlyUp()
	first := g.Barriers()[0].X()

	runUntil(g, 60, func() bool { return false })

	if got := g.Barriers()[0].X(); !approx(got, first-2) {
		t.Errorf("barrier x after 1s: got %v, expected %v", got, first-2)
	}
}

func TestFallingToGroundEndsRound(t *testing.T) {
	g := newTestGame(t, 16)
	g.FlyUp()

	if !runUntil(g, 300, func() bool { return g.State() == StateOver }) {
		t.Fatalf("round still %v after 5s of falling", g.State())
	}
	if g.Score() != 0 {
		t.Errorf("score: got %d, expected 0", g.Score())
	}

	runUntil(g, 60, func() bool { return false })
	if g.State() != StateOver || g.Score() != 0 {
		t.Errorf("after more updates: state %v score %d", g.State(), g.Score())
	}

	v := g.Avatar().LinearVelocity()
	g.FlyUp()
	if got := g.Avatar().LinearVelocity(); got.Y > v.Y+1 {
		t.Errorf("impulse applied after game over: vy %v", got.Y)
	}
}

func TestHittingBarrierEndsRound(t *testing.T) {
	g := newTestGame(t, 16)
	g.FlyUp()
	g.World().SetGravity(core.Vec2{})

	// Fly level at the height of the bottom block into the first barrier.
	avatar := g.Avatar()
	avatar.SetTransform(core.Vec2{X: 7.5, Y: 2}, 0)
	avatar.SetLinearVelocity(core.Vec2{X: 2})
	front := g.Barriers()[0]
	front.Body().SetTransform(core.Vec2{X: 10.5}, 0)

	if !runUntil(g, 180, func() bool { return g.State() == StateOver }) {
		t.Fatal("expected collision with bottom block")
	}
	if g.Score() != 0 {
		t.Errorf("score: got %d, expected 0", g.Score())
	}
}

func TestPassingGapScores(t *testing.T) {
	g := newTestGame(t, 16)
	g.FlyUp()
	g.World().SetGravity(core.Vec2{})

	avatar := g.Avatar()
	avatar.SetLinearVelocity(core.Vec2{X: 2})
	front := g.Barriers()[0]
	front.Body().SetTransform(core.Vec2{X: avatar.Position().X + 2}, 0)

	runUntil(g, 180, func() bool { return false })

	if g.State() != StateRunning {
		t.Fatalf("state: got %v, expected %v", g.State(), StateRunning)
	}
	if g.Score() != 1 {
		t.Errorf("score: got %d, expected 1", g.Score())
	}
}

func TestResetAfterOver(t *testing.T) {
	g := newTestGame(t, 16)
	g.FlyUp()
	runUntil(g, 300, func() bool { return g.State() == StateOver })
	oldWorld := g.World()

	g.OnKeyDown(core.KeyOther, false)

	if g.State() != StateNotStarted {
		t.Errorf("state: got %v, expected %v", g.State(), StateNotStarted)
	}
	if g.Score() != 0 || len(g.Barriers()) != 0 {
		t.Errorf("score %d barriers %d, expected 0 and 0", g.Score(), len(g.Barriers()))
	}
	if g.World() == oldWorld {
		t.Error("reset reused the previous world")
	}
	if p := g.Avatar().Position(); !approx(p.X, 7.5) || !approx(p.Y, 6) {
		t.Errorf("avatar after reset: got %+v, expected (7.5, 6)", p)
	}
	if len(g.World().Bodies()) != 2 {
		t.Errorf("bodies after reset: got %d, expected ground and avatar", len(g.World().Bodies()))
	}
	if g.Banner().Visible() {
		t.Error("banner still visible after reset")
	}
}

func TestInputHandling(t *testing.T) {
	tests := []struct {
		name     string
		input    func(g *Game)
		expected State
	}{
		{"space starts", func(g *Game) { g.OnKeyDown(core.KeySpace, false) }, StateRunning},
		{"repeated space ignored", func(g *Game) { g.OnKeyDown(core.KeySpace, true) }, StateNotStarted},
		{"other key ignored", func(g *Game) { g.OnKeyDown(core.KeyEnter, false) }, StateNotStarted},
		{"primary button starts", func(g *Game) { g.OnPointerDown(core.ButtonPrimary) }, StateRunning},
		{"primary with secondary starts", func(g *Game) { g.OnPointerDown(core.ButtonPrimary | core.ButtonSecondary) }, StateRunning},
		{"secondary button ignored", func(g *Game) { g.OnPointerDown(core.ButtonSecondary) }, StateNotStarted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, 16)
			tt.input(g)
			if g.State() != tt.expected {
				t.Errorf("got %v, expected %v", g.State(), tt.expected)
			}
		})
	}
}

func TestPointerRestartsAfterOver(t *testing.T) {
	g := newTestGame(t, 16)
	g.FlyUp()
	runUntil(g, 300, func() bool { return g.State() == StateOver })

	g.OnPointerDown(core.ButtonSecondary)
	if g.State() != StateNotStarted {
		t.Errorf("got %v, expected %v", g.State(), StateNotStarted)
	}
}

func TestResizeKeepsAvatarOnScreen(t *testing.T) {
	tests := []struct {
		name    string
		w, h    float64
		avatarX float64
	}{
		{"narrower", 400, 900, 12*400.0/900/2 - 0.5},
		{"square", 900, 900, 5.5},
		{"wider", 2400, 900, 15.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, 16)
			g.FlyUp()
			gap := g.Barriers()[1].X() - g.Barriers()[0].X()
			y := g.Avatar().Position().Y

			width := WorldWidth(g.WorldHeight(), tt.w, tt.h)
			g.Resize(width)

			if g.WorldWidth() != width {
				t.Errorf("world width: got %v, expected %v", g.WorldWidth(), width)
			}
			pos := g.Avatar().Position()
			if !approx(pos.X, tt.avatarX) {
				t.Errorf("avatar x: got %v, expected %v", pos.X, tt.avatarX)
			}
			if pos.Y != y {
				t.Errorf("avatar y: got %v, expected %v", pos.Y, y)
			}
			if got := g.Barriers()[1].X() - g.Barriers()[0].X(); !approx(got, gap) {
				t.Errorf("barrier spacing: got %v, expected %v", got, gap)
			}

			var avatar Sprite
			for _, s := range g.Sprites(tt.w, tt.h) {
				if s.Role == physics.RoleAvatar {
					avatar = s
				}
			}
			minP, maxP := avatar.Transform.Bounds()
			if minP.X < 0 || maxP.X > tt.w {
				t.Errorf("avatar sprite x span [%v, %v] outside %vpx surface", minP.X, maxP.X, tt.w)
			}
			if g.State() != StateRunning {
				t.Errorf("resize changed state to %v", g.State())
			}
		})
	}
}

func TestStateString(t *testing.T) {
	if StateOver.String() != "over" || State(7).String() != "unknown" {
		t.Errorf("state names: %q %q", StateOver.String(), State(7).String())
	}
}
