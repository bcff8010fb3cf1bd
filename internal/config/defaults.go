package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default game configuration.
// Kept in sync with defaults/flappy.yaml.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: WorldConfig{
			Height:             12,
			Gravity:            10,
			VelocityIterations: 8,
			PositionIterations: 3,
			GroundHalfWidth:    50,
			GroundHalfHeight:   0.1,
			GroundFriction:     0.6,
		},
		Avatar: AvatarConfig{
			Radius:           0.5,
			Density:          1,
			Friction:         0.5,
			ForwardSpeed:     2,
			JumpHeightFactor: 1.7,
		},
		Idle: IdleConfig{
			Amplitude: 0.1,
			Period:    0.8,
		},
		Barriers: BarrierConfig{
			WidthFactor:         1.7,
			Distance:            5,
			SpawnMargin:         1,
			GapHalfHeightFactor: 2.8,
			MinBottomRatio:      0.3,
			MaxBottomRatio:      0.5,
			Friction:            0.3,
		},
		Timer: TimerConfig{
			MaxDelta: 0.1,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultFlappyYAML
}
