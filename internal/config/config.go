// Package config provides YAML-based game configuration loading and
// validation for the game.
package config

import (
	"errors"
	"fmt"
)

// FlappyConfig contains all tunables of the simulation.
type FlappyConfig struct {
	World    WorldConfig   `yaml:"world"`
	Avatar   AvatarConfig  `yaml:"avatar"`
	Idle     IdleConfig    `yaml:"idle"`
	Barriers BarrierConfig `yaml:"barriers"`
	Timer    TimerConfig   `yaml:"timer"`
}

// WorldConfig defines the physics world and the ground.
type WorldConfig struct {
	Height             float64 `yaml:"height"`  // Visible world height; width follows the aspect ratio
	Gravity            float64 `yaml:"gravity"` // Downward acceleration once the game runs
	VelocityIterations int     `yaml:"velocity_iterations"`
	PositionIterations int     `yaml:"position_iterations"`
	GroundHalfWidth    float64 `yaml:"ground_half_width"`
	GroundHalfHeight   float64 `yaml:"ground_half_height"`
	GroundFriction     float64 `yaml:"ground_friction"`
}

// AvatarConfig defines the player-controlled body.
type AvatarConfig struct {
	Radius       float64 `yaml:"radius"`
	Density      float64 `yaml:"density"`
	Friction     float64 `yaml:"friction"`
	ForwardSpeed float64 `yaml:"forward_speed"`
	// JumpHeightFactor scales the avatar diameter into the height one
	// impulse lifts it against gravity.
	JumpHeightFactor float64 `yaml:"jump_height_factor"`
}

// IdleConfig defines the floating bob shown before the first impulse.
type IdleConfig struct {
	Amplitude float64 `yaml:"amplitude"`
	Period    float64 `yaml:"period"` // Seconds per oscillation
}

// BarrierConfig defines obstacle pair generation.
type BarrierConfig struct {
	WidthFactor         float64 `yaml:"width_factor"` // Times the avatar diameter
	Distance            float64 `yaml:"distance"`     // Centre-to-centre step between pairs
	SpawnMargin         float64 `yaml:"spawn_margin"` // Gap between the right world edge and the first pair
	GapHalfHeightFactor float64 `yaml:"gap_half_height_factor"`
	MinBottomRatio      float64 `yaml:"min_bottom_ratio"` // Of half the world height
	MaxBottomRatio      float64 `yaml:"max_bottom_ratio"`
	Friction            float64 `yaml:"friction"`
}

// TimerConfig defines step timing.
type TimerConfig struct {
	MaxDelta float64 `yaml:"max_delta"` // Longest single step in seconds
}

// BarrierWidth returns the horizontal size of an obstacle pair.
func (c FlappyConfig) BarrierWidth() float64 {
	return c.Avatar.Radius * 2 * c.Barriers.WidthFactor
}

// GapHalfHeight returns half the height of the passable gap.
func (c FlappyConfig) GapHalfHeight() float64 {
	return c.Avatar.Radius * c.Barriers.GapHalfHeightFactor
}

// JumpHeight returns the height one impulse lifts the avatar.
func (c FlappyConfig) JumpHeight() float64 {
	return c.Avatar.Radius * 2 * c.Avatar.JumpHeightFactor
}

// Validate reports every setting that would break the simulation.
func (c FlappyConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.World.Height > 0, "world.height must be positive, got %v", c.World.Height)
	check(c.World.Gravity > 0, "world.gravity must be positive, got %v", c.World.Gravity)
	check(c.World.VelocityIterations > 0, "world.velocity_iterations must be positive, got %d", c.World.VelocityIterations)
	check(c.World.PositionIterations > 0, "world.position_iterations must be positive, got %d", c.World.PositionIterations)
	check(c.World.GroundHalfWidth > 0 && c.World.GroundHalfHeight > 0, "world ground half size must be positive")
	check(c.Avatar.Radius > 0, "avatar.radius must be positive, got %v", c.Avatar.Radius)
	check(c.Avatar.Density > 0, "avatar.density must be positive, got %v", c.Avatar.Density)
	check(c.Avatar.JumpHeightFactor > 0, "avatar.jump_height_factor must be positive, got %v", c.Avatar.JumpHeightFactor)
	check(c.Idle.Period > 0, "idle.period must be positive, got %v", c.Idle.Period)
	check(c.Barriers.WidthFactor > 0, "barriers.width_factor must be positive, got %v", c.Barriers.WidthFactor)
	check(c.Barriers.Distance > c.BarrierWidth(), "barriers.distance (%v) must exceed the barrier width (%v)", c.Barriers.Distance, c.BarrierWidth())
	check(c.Barriers.GapHalfHeightFactor > 0, "barriers.gap_half_height_factor must be positive, got %v", c.Barriers.GapHalfHeightFactor)
	check(c.Barriers.MinBottomRatio > 0 && c.Barriers.MinBottomRatio <= c.Barriers.MaxBottomRatio,
		"barriers bottom ratio range [%v, %v] is invalid", c.Barriers.MinBottomRatio, c.Barriers.MaxBottomRatio)
	check(c.Timer.MaxDelta > 0, "timer.max_delta must be positive, got %v", c.Timer.MaxDelta)

	// The top block must keep a positive height for the tallest bottom block.
	half := c.World.Height / 2
	check(half*c.Barriers.MaxBottomRatio+c.GapHalfHeight() < half,
		"gap (%v) and max bottom block leave no room for the top block", 2*c.GapHalfHeight())

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid flappy config: %w", errors.Join(errs...))
	}
	return nil
}
