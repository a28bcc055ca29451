package rng

import "time"

// Generator is a Mulberry32 pseudo-random generator: a single 32-bit state
// advanced by a fixed xorshift-multiply mix on every draw. The zero value
// is a valid (all-zeros-seeded) generator, but callers normally construct
// one via New or NewFromTime.
type Generator struct {
	state uint32
	seed  uint32
}

// New returns a Generator seeded with the given 32-bit seed.
// Complexity: O(1).
func New(seed uint32) *Generator {
	return &Generator{state: seed, seed: seed}
}

// NewFromTime returns a Generator seeded from the current wall clock.
// Used when construction options carry no explicit seed; the resulting
// stream is deterministic only after the seed is captured via Seed.
func NewFromTime() *Generator {
	return New(uint32(time.Now().UnixNano()))
}

// Seed returns the seed this generator was constructed with, so a replay
// can capture it alongside the call sequence.
func (g *Generator) Seed() uint32 { return g.seed }

// Reset rewinds the generator to its construction seed.
func (g *Generator) Reset() { g.state = g.seed }

// Float64 advances the state once and returns the next value in [0,1).
// Mulberry32: state += golden-ratio increment, then two xorshift-multiply
// rounds and a final shift before scaling by 2^-32.
// Complexity: O(1).
func (g *Generator) Float64() float64 {
	g.state += 0x6D2B79F5
	t := g.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0
}

// FloatRange returns a value in [min, max) drawn from the stream.
// Complexity: O(1), one draw.
func (g *Generator) FloatRange(min, max float64) float64 {
	return min + g.Float64()*(max-min)
}

// IntN returns an integer in [0, n). n must be positive; n <= 0 returns 0
// rather than panicking, matching the engine's no-crash policy.
// Complexity: O(1), one draw.
func (g *Generator) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return int(g.Float64() * float64(n))
}

// Pick returns a uniformly drawn element of p, or 0 for an empty slice.
// Complexity: O(1), one draw.
func (g *Generator) Pick(p []float64) float64 {
	if len(p) == 0 {
		return 0
	}
	return p[g.IntN(len(p))]
}

// DeriveSeed mixes a parent seed and a stream identifier into a new
// decorrelated 32-bit seed. The avalanche constants are the usual 32-bit
// murmur-style finalizer; small input changes diffuse across all bits, so
// consecutive stream ids yield unrelated child streams.
// Complexity: O(1).
func DeriveSeed(parent, stream uint32) uint32 {
	s := parent ^ (stream * 2654435761)
	s = (s ^ (s >> 16)) * 0x85ebca6b
	s = (s ^ (s >> 13)) * 0xc2b2ae35
	return s ^ (s >> 16)
}
