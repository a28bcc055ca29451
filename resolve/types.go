// Engine construction, options and shared resolver defaults.

package resolve

import (
	"github.com/Domusgpt/vib34d-music-video-choreographer-alternative-sub001/rng"
)

// Options configures an Engine.
type Options struct {
	// Seed initializes the engine's private random stream. 0 means "derive
	// from the current time" (non-reproducible unless captured afterwards
	// via Engine.Seed).
	Seed uint32
	// DisallowSystemExpansion restricts segments to the base system set:
	// an expanded selector falls back to the context's current system.
	// The zero value permits expansion, matching DefaultOptions.
	DisallowSystemExpansion bool
}

// DefaultOptions returns the construction defaults: time-derived seed,
// system expansion allowed.
func DefaultOptions() Options {
	return Options{}
}

// baseSystems are the selectors every deployment renders; anything else is
// an expansion system gated by Options.DisallowSystemExpansion.
var baseSystems = map[string]bool{
	"faceted":     true,
	"quantum":     true,
	"holographic": true,
}

// Engine is the top-level blueprint evaluator. It owns one private RNG
// (never shared across instances) and carries no other mutable state.
type Engine struct {
	rng  *rng.Generator
	opts Options
}

// New constructs an Engine from opts. A zero Seed draws one from the
// current time, matching the "default: current time" construction
// contract.
func New(opts Options) *Engine {
	var g *rng.Generator
	if opts.Seed == 0 {
		g = rng.NewFromTime()
	} else {
		g = rng.New(opts.Seed)
	}
	return &Engine{rng: g, opts: opts}
}

// Seed reports the seed the engine's stream was constructed with, so a
// reproducible replay can capture it.
func (e *Engine) Seed() uint32 { return e.rng.Seed() }

// Shared resolver defaults. Named here so the resolvers stay free of magic
// numbers and the segment builder can rely on the same values.
const (
	defaultRotationFreq  = 0.6
	defaultOrbitSpeed    = 1.0
	defaultTwistMax      = 5.0
	defaultTwistFreq     = 1.0
	defaultPulseFreq     = 4.0
	defaultEnergyGate    = 0.75
	peakEnergyGate       = 0.9
	spikeWindow          = 0.02
	glitchFlickerAmp     = 0.01 // flicker floor peaks at 2*amp = 0.02
	glitchFlickerRate    = 17.0
	glitchMaxIntensity   = 2.0
	vignetteMaxStrength  = 0.8
	defaultOrbitRadius   = 8.0
	minOrbitRadius       = 1.0
	maxOrbitElevation    = 1.5
	defaultPulseBase     = 1.0
	degreesPerCircle     = 360.0
	harmonicYW           = 0.75
	harmonicZW           = 1.2
	modHarmonicXW        = 1.0
	modHarmonicYW        = 0.8
	modHarmonicZW        = 0.6
)
