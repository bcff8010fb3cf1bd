// Package flappy implements a Flappy Bird-style game on a Box2D world.
// The avatar drifts right at constant speed while the world origin follows
// it, so the avatar stays put on screen and the barriers scroll past.
package flappy

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/physics"
)

// State is the phase of a round.
type State int

const (
	StateNotStarted State = iota
	StateRunning
	StateOver
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not-started"
	case StateRunning:
		return "running"
	case StateOver:
		return "over"
	default:
		return "unknown"
	}
}

// Game owns the physics world and the rules layered on top of it.
type Game struct {
	cfg    config.FlappyConfig
	rng    core.Random
	logger *log.Logger

	world    *physics.World
	ground   *physics.Body
	avatar   *physics.Body
	barriers []*Barrier

	state      State
	score      int
	worldWidth float64

	banner *Banner
}

type options struct {
	logger *log.Logger
	clock  func() time.Time
}

// Option configures a Game or an App.
type Option func(*options)

// WithLogger sets the logger for state transitions. The default discards.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithClock replaces time.Now for the App's step timer.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.clock = now
	}
}

func collectOptions(opts []Option) options {
	o := options{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// New creates a game whose visible world is worldWidth units wide and
// builds the initial world.
func New(cfg config.FlappyConfig, rng core.Random, worldWidth float64, opts ...Option) *Game {
	g := &Game{
		cfg:        cfg,
		rng:        rng,
		logger:     collectOptions(opts).logger,
		worldWidth: worldWidth,
		banner:     NewBanner(),
	}
	g.initializeWorld()
	return g
}

// initializeWorld replaces the world, avatar, ground, barrier queue and
// score with fresh ones. Nothing from the previous round is reused.
func (g *Game) initializeWorld() {
	cfg := g.cfg

	w := physics.NewWorld(core.Vec2{})
	w.SetIterations(cfg.World.VelocityIterations, cfg.World.PositionIterations)
	w.OnBeginContact(g.beginContact)
	w.OnEndContact(g.endContact)

	g.ground = w.CreateBody(physics.BodyDef{
		Position: core.Vec2{X: g.worldWidth / 2, Y: -cfg.World.GroundHalfHeight},
	})
	g.ground.AddBox(cfg.World.GroundHalfWidth, cfg.World.GroundHalfHeight, core.Vec2{}, physics.FixtureDef{
		Role:     physics.RoleGround,
		Friction: cfg.World.GroundFriction,
	})

	g.avatar = w.CreateBody(physics.BodyDef{
		Dynamic:  true,
		Position: g.spawnPoint(),
		Velocity: core.Vec2{X: cfg.Avatar.ForwardSpeed},
	})
	g.avatar.AddCircle(cfg.Avatar.Radius, physics.FixtureDef{
		Role:     physics.RoleAvatar,
		Density:  cfg.Avatar.Density,
		Friction: cfg.Avatar.Friction,
	})

	g.world = w
	g.barriers = nil
	g.score = 0
	g.state = StateNotStarted
	g.banner.Hide()
}

func (g *Game) spawnPoint() core.Vec2 {
	return core.Vec2{
		X: g.worldWidth/2 - g.cfg.Avatar.Radius,
		Y: g.cfg.World.Height / 2,
	}
}

// Reset discards the round and starts a new one in StateNotStarted.
func (g *Game) Reset() {
	g.initializeWorld()
	g.logger.Info("round reset")
}

// FlyUp gives the avatar an upward impulse. The first impulse of a round
// starts it. Ignored once the round is over.
func (g *Game) FlyUp() {
	switch g.state {
	case StateOver:
		return
	case StateNotStarted:
		g.start()
	}

	gravity := math.Abs(g.world.Gravity().Y)
	v := g.avatar.LinearVelocity()
	v.Y = gravity * math.Sqrt(2*g.cfg.JumpHeight()/gravity)
	g.avatar.SetLinearVelocity(v)
}

func (g *Game) start() {
	g.world.SetGravity(core.Vec2{Y: -g.cfg.World.Gravity})
	for i := 0; i < g.PrefillCount(); i++ {
		g.AddBarrier()
	}
	g.state = StateRunning
	g.logger.Info("round started", "barriers", len(g.barriers))
}

// Update advances the round by elapsed seconds. total is the time since
// the app started and drives the idle bob.
func (g *Game) Update(elapsed, total float64) {
	if g.state == StateNotStarted {
		omega := 2 * math.Pi / g.cfg.Idle.Period
		v := g.avatar.LinearVelocity()
		v.Y = -g.cfg.Idle.Amplitude * omega * math.Sin(omega*total)
		g.avatar.SetLinearVelocity(v)
	}

	before := g.avatar.Position().X
	g.world.Step(elapsed)
	dx := g.avatar.Position().X - before

	// The ground moves with the avatar so the shift below leaves it in place.
	gp := g.ground.Position()
	g.ground.SetTransform(core.Vec2{X: gp.X + dx, Y: gp.Y}, g.ground.Angle())
	g.world.ShiftOrigin(core.Vec2{X: dx})

	if g.state == StateRunning {
		g.recycleBarriers()
	}
	g.banner.Update(elapsed)
}

func (g *Game) beginContact(c physics.Contact) {
	if !c.Solid() || g.state != StateRunning {
		return
	}
	hit := "barrier"
	if c.Involves(physics.RoleGround) {
		hit = "ground"
	}
	g.state = StateOver
	g.banner.Show()
	g.logger.Info("round over", "score", g.score, "hit", hit)
}

func (g *Game) endContact(c physics.Contact) {
	if !c.HasSensor() || g.state != StateRunning {
		return
	}
	g.score++
	g.logger.Debug("gap passed", "score", g.score)
}

// Resize changes the visible world width. The origin shifts by half the
// change so the avatar keeps its place relative to the screen centre.
func (g *Game) Resize(worldWidth float64) {
	g.world.ShiftOrigin(core.Vec2{X: (g.worldWidth - worldWidth) / 2})
	g.worldWidth = worldWidth
}

// OnKeyDown handles a key press: any key restarts a finished round,
// otherwise a fresh Space press flies up.
func (g *Game) OnKeyDown(key core.Key, isRepeat bool) {
	if g.state == StateOver {
		g.Reset()
		return
	}
	if key == core.KeySpace && !isRepeat {
		g.FlyUp()
	}
}

// OnPointerDown handles a pointer press: any button restarts a finished
// round, otherwise the primary button flies up.
func (g *Game) OnPointerDown(buttons core.Buttons) {
	if g.state == StateOver {
		g.Reset()
		return
	}
	if buttons.Has(core.ButtonPrimary) {
		g.FlyUp()
	}
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) Score() int {
	return g.score
}

// WorldWidth returns the visible width in world units.
func (g *Game) WorldWidth() float64 {
	return g.worldWidth
}

// WorldHeight returns the visible height in world units.
func (g *Game) WorldHeight() float64 {
	return g.cfg.World.Height
}

// Avatar returns the avatar body.
func (g *Game) Avatar() *physics.Body {
	return g.avatar
}

// Ground returns the ground body.
func (g *Game) Ground() *physics.Body {
	return g.ground
}

// World returns the physics world of the current round.
func (g *Game) World() *physics.World {
	return g.world
}

// Banner returns the game-over banner animation.
func (g *Game) Banner() *Banner {
	return g.banner
}
