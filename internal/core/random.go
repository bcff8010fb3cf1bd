package core

import (
	"math/rand"
	"time"
)

// Random provides uniform floats for procedural generation.
type Random interface {
	// Float returns a uniform value in [min, max).
	Float(min, max float64) float64
}

// SeededRandom is a Random backed by math/rand.
type SeededRandom struct {
	rng *rand.Rand
}

// NewRandom creates a random source. A zero seed picks one from the clock.
func NewRandom(seed int64) *SeededRandom {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &SeededRandom{rng: rand.New(rand.NewSource(seed))}
}

// Float returns a uniform value in [min, max).
func (r *SeededRandom) Float(min, max float64) float64 {
	return min + (max-min)*r.rng.Float64()
}
