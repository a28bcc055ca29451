// Core timeline types, generation options and sentinel errors.

package timeline

import (
	"errors"

	"github.com/Domusgpt/vib34d-music-video-choreographer-alternative-sub001/rng"
)

// Sentinel errors for blueprint generation.
var (
	// ErrNonPositiveDuration indicates a requested total duration ≤ 0.
	ErrNonPositiveDuration = errors.New("timeline: total duration must be positive")
	// ErrEmptyProfile indicates neither an energy profile nor a phase
	// template was supplied.
	ErrEmptyProfile = errors.New("timeline: energy profile or phase template required")
)

// Segment duration bounds in seconds. The nominal per-segment share is
// jittered by ±20% and clamped into this window before the coverage
// correction.
const (
	minSegmentSeconds = 12.0
	maxSegmentSeconds = 24.0
)

// defaultSystems is the system cycle used when options carry none.
var defaultSystems = []string{"faceted", "quantum", "holographic"}

// GenerateOptions configures one blueprint generation run.
//
// Exactly one of EnergyProfile and Phases drives the segment count:
// EnergyProfile wins when both are set.
type GenerateOptions struct {
	// TotalDuration is the requested run length in seconds (>0).
	TotalDuration float64
	// EnergyProfile holds one energy in [0,1] per segment.
	EnergyProfile []float64
	// Phases expands to an energy profile when EnergyProfile is empty.
	Phases *PhaseTemplate
	// Systems are cycled across segments; empty uses the default cycle.
	Systems []string
	// DurationOverrides, when non-empty, replaces the jittered per-segment
	// durations (padded/truncated to the segment count). Overrides that do
	// not sum to TotalDuration are corrected on the last segment so
	// coverage stays exact.
	DurationOverrides []float64
	// GeometryPalette is the index palette handed to every segment's
	// geometry config; empty uses the 8-slot default.
	GeometryPalette []float64
}

// DefaultGenerateOptions returns options for a total-duration run driven by
// the default phase template and system cycle.
func DefaultGenerateOptions(totalDuration float64) GenerateOptions {
	tpl := DefaultPhaseTemplate()
	return GenerateOptions{
		TotalDuration: totalDuration,
		Phases:        &tpl,
	}
}

// Generator synthesizes blueprints. It owns a private seeded RNG; two
// generators with the same seed produce identical blueprints for identical
// options.
type Generator struct {
	rng *rng.Generator
}

// New constructs a Generator. Seed 0 derives one from the current time
// (capture it via Seed for replay).
func New(seed uint32) *Generator {
	if seed == 0 {
		return &Generator{rng: rng.NewFromTime()}
	}
	return &Generator{rng: rng.New(seed)}
}

// Seed reports the generator's construction seed.
func (g *Generator) Seed() uint32 { return g.rng.Seed() }
