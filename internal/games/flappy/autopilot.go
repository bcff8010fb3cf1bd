package flappy

// DefaultAutopilotMargin is the clearance kept above a bottom block when
// Autopilot.Margin is not set.
const DefaultAutopilotMargin = 0.02

// Autopilot decides when to flap for headless runs. It holds the avatar
// just above the bottom block of the next gap: a flap lifts it by the jump
// height, which the gap leaves room for only when flapping from low in it.
type Autopilot struct {
	// Margin is the clearance between the avatar and the bottom block that
	// triggers a flap.
	Margin float64
}

// ShouldFlap reports whether the avatar should fly up now, given the step
// the next Update will advance by.
func (p Autopilot) ShouldFlap(g *Game, dt float64) bool {
	switch g.State() {
	case StateOver:
		return false
	case StateNotStarted:
		return true
	}

	pos := g.avatar.Position()
	v := g.avatar.LinearVelocity()
	next := pos.Y + (v.Y+g.world.Gravity().Y*dt)*dt
	return next < p.floor(g)
}

// floor returns the lowest height the avatar centre may reach: just above
// the bottom block of the first gap it has not yet cleared, or mid-world
// when there is none.
func (p Autopilot) floor(g *Game) float64 {
	margin := p.Margin
	if margin <= 0 {
		margin = DefaultAutopilotMargin
	}
	r := g.cfg.Avatar.Radius
	left := g.avatar.Position().X - r
	for _, b := range g.barriers {
		if b.X()+b.HalfWidth >= left {
			return 2*b.BottomHalf + r + margin
		}
	}
	return g.cfg.World.Height / 2
}
