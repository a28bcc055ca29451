// Core blueprint types and sentinel errors.

package blueprint

import "errors"

// Sentinel errors for blueprint handling.
var (
	// ErrLegacySegment signals a segment tagged KindLegacy was handed to the
	// declarative evaluator. Callers must treat this as "fall back to the
	// legacy evaluator", never as a failure.
	ErrLegacySegment = errors.New("blueprint: segment is not declarative")
	// ErrEmptyBlueprint indicates decoded input contained no segments.
	ErrEmptyBlueprint = errors.New("blueprint: no segments")
)

// SegmentKind tags the schema variant of a segment, decided once at decode
// time instead of per-frame key sniffing.
type SegmentKind int

const (
	// KindDeclarative marks a segment carrying an EffectSet this engine
	// evaluates.
	KindDeclarative SegmentKind = iota
	// KindLegacy marks a segment in an older schema; the evaluator refuses
	// it with ErrLegacySegment so callers can dispatch elsewhere.
	KindLegacy
)

// Blueprint is the full ordered segment sequence describing one
// choreography run. Slice order is playback order.
type Blueprint struct {
	Segments []Segment `json:"segments"`
}

// TotalDuration sums all segment durations.
// Complexity: O(n).
func (b *Blueprint) TotalDuration() float64 {
	var total float64
	for i := range b.Segments {
		total += b.Segments[i].Duration
	}
	return total
}

// SegmentAt returns the segment covering absolute time t and the progress
// within it, or (nil, 0) when t lies outside the blueprint's span.
// Complexity: O(n); blueprints are short (≤ a few dozen segments).
func (b *Blueprint) SegmentAt(t float64) (*Segment, float64) {
	if t < 0 {
		return nil, 0
	}
	for i := range b.Segments {
		s := &b.Segments[i]
		if t >= s.Start && t < s.Start+s.Duration {
			return s, (t - s.Start) / s.Duration
		}
	}
	// Exact end of the run maps to the last segment at progress 1.
	if n := len(b.Segments); n > 0 {
		last := &b.Segments[n-1]
		if t == last.Start+last.Duration {
			return last, 1
		}
	}
	return nil, 0
}

// Segment is one time-bounded span of the blueprint with its own effect
// configuration. Immutable once handed to an evaluator.
type Segment struct {
	Kind     SegmentKind `json:"-"`
	Start    float64     `json:"start"`
	Duration float64     `json:"duration"`
	Effects  EffectSet   `json:"effects"`
}

// EffectSet maps parameter names to their declarative descriptors, plus the
// named composite configurations. Absent entries mean "no override for this
// instant" and are skipped by the evaluator.
type EffectSet struct {
	// Params holds the baseline parameter descriptors keyed by name
	// (speed, chaos, gridDensity, morphFactor, hue, intensity,
	// saturation, dimension, ...). Unknown names are carried through
	// untouched.
	Params map[string]*ParamSpec

	// Geometry selects the geometry index; nil when absent or when the
	// source carried a legacy string selector.
	Geometry *GeometryConfig

	// Rotation drives the three 4D rotation axes.
	Rotation *RotationConfig

	// Custom holds user-defined parameters resolved alongside the baseline
	// set and reported with their definitions.
	Custom map[string]*ParamSpec

	// Extended groups the narrow composite resolvers.
	Extended Extended

	// System optionally overrides the active visual system for this
	// segment; empty means "keep the context's current system".
	System string

	// MetaSummary is free text describing the segment (energy band, anchor
	// color swatch); never interpreted by the engine.
	MetaSummary string
}

// Extended groups the optional self-contained composite effect configs.
type Extended struct {
	CameraOrbit *OrbitConfig
	LayerPulse  *PulseConfig
	Glitch      *GlitchConfig
	Vignette    *VignetteConfig
}

// GeometryConfig drives the geometry index resolver. A numeric source
// short-circuits to Literal; otherwise one of three mutually exclusive
// modes computes a base index, after which the audio-driven override
// stages may re-pick randomly.
type GeometryConfig struct {
	// Literal, when set, bypasses all modes: the rounded value is the index.
	Literal *float64
	// Mode is "progressive", "ai-dynamic" (both eased-progress sampling)
	// or "pulse"; empty means neither.
	Mode string
	// Palette is the ordered index sequence sampled by the modes; empty
	// falls back to the 8-slot default.
	Palette []float64
	// Easing names the curve for progressive/ai-dynamic sampling.
	Easing string
	// Frequency is the pulse oscillation rate (default 4).
	Frequency float64
	// ChangeEveryBeats, when positive, steps the index every N beats.
	ChangeEveryBeats float64
	// AllowEnergyBreaks enables a random re-pick when audio energy exceeds
	// EnergyGate.
	AllowEnergyBreaks bool
	// EnergyGate is the energy-break threshold (default 0.75).
	EnergyGate float64
	// RandomizeOnPeaks enables an independent random re-pick when audio
	// energy exceeds 0.9.
	RandomizeOnPeaks bool
}

// RotationConfig drives the three-axis rotation field.
type RotationConfig struct {
	// Frequency scales absolute time into the shared phase (default 0.6).
	Frequency float64
	// OrbitSpeed scales the progress contribution to the phase (default 1).
	OrbitSpeed float64
	// Modulation is the amplitude of the second, progress-timed oscillation
	// layer shared by all axes at per-axis harmonics.
	Modulation float64
	// Audio weights the band feeding each axis: Bass→XW, Mid→YW, High→ZW.
	Audio AudioWeights
	// Twist, when present, emits one extra clamped output.
	Twist *TwistConfig
}

// TwistConfig adds an extra rotation output clamped to ±Max.
type TwistConfig struct {
	// Max bounds the twist output (default 5).
	Max float64
	// Frequency is the twist oscillation rate (default 1).
	Frequency float64
}

// OrbitConfig drives the camera orbit resolver.
type OrbitConfig struct {
	// Speed is the yaw revolution rate in cycles per second.
	Speed float64
	// Radius is the base orbit distance.
	Radius float64
	// Elevation is the base pitch offset.
	Elevation float64
	// Audio adds band-weighted terms: Energy→speed, Bass→radius,
	// Mid→elevation.
	Audio AudioWeights
}

// PulseConfig drives the layer brightness/pulse resolver.
type PulseConfig struct {
	// Base is the resting brightness.
	Base float64
	// Amount is the amplitude of the progress-timed pulse.
	Amount float64
	// Audio adds band-weighted brightness.
	Audio AudioWeights
}

// GlitchConfig drives the glitch intensity resolver.
type GlitchConfig struct {
	// Base is the resting glitch intensity.
	Base float64
	// Decay shapes how a spike's contribution falls off across its window
	// (default 1, linear).
	Decay float64
	// Audio adds band-weighted intensity (typically High and Energy).
	Audio AudioWeights
	// Spikes are discrete timed bursts; a spike fires whenever progress is
	// within SpikeWindow of At. Multi-fire across consecutive frames inside
	// the window is accepted, not deduplicated.
	Spikes []Spike
}

// Spike is one discrete timed glitch burst.
type Spike struct {
	// At is the progress position of the burst peak.
	At float64 `json:"at"`
	// Intensity is the contribution at the peak.
	Intensity float64 `json:"intensity"`
}

// VignetteConfig drives the vignette strength resolver.
type VignetteConfig struct {
	// Base is the resting vignette strength.
	Base float64
	// Pulse is the amplitude of the progress-timed breathing term.
	Pulse float64
	// Audio adds band-weighted strength.
	Audio AudioWeights
}
