package blueprint

// AudioWeights maps per-band audio energies onto additive parameter terms.
// Unset weights default to 0: the band contributes nothing.
type AudioWeights struct {
	Energy float64 `json:"energy"`
	Bass   float64 `json:"bass"`
	Mid    float64 `json:"mid"`
	High   float64 `json:"high"`
}

// Zero reports whether every weight is zero.
func (w AudioWeights) Zero() bool {
	return w.Energy == 0 && w.Bass == 0 && w.Mid == 0 && w.High == 0
}

// Apply returns the weighted sum of the frame's bands.
// Complexity: O(1).
func (w AudioWeights) Apply(a AudioFrame) float64 {
	return a.Energy*w.Energy + a.Bass*w.Bass + a.Mid*w.Mid + a.High*w.High
}

// Automation is an ambient override supplied per evaluation, distinct from
// any descriptor. Its Range takes final precedence over the descriptor's
// eased component; Bump adds a single-hump envelope peaking at the segment
// midpoint.
type Automation struct {
	Range  *[2]float64
	Easing string
	Bump   float64
}

// ParamSpec is the declarative descriptor for one parameter: either a
// literal constant (Literal set, all else ignored) or a structured
// definition combining a base value, range interpolation, path sampling,
// drift, periodic modulation, audio weighting and hard clamps.
//
// Invariant: when both Range and Path are present, Path wins for the value
// computation, but audio weighting and clamping/wrap still apply after.
type ParamSpec struct {
	// Literal short-circuits the descriptor to a constant.
	Literal *float64

	// Base is the default value before any term applies (default 0).
	Base float64
	// Range interpolates between its two bounds by eased progress.
	Range *[2]float64
	// Easing names the curve for Range interpolation (default linear).
	Easing string
	// Drift adds Drift·progress, a linear ramp over the segment.
	Drift float64
	// Modulation adds sin(progress·2π + absoluteTime)·Modulation — a global
	// phase shared by all parameters so equal modulations stay phase-locked.
	Modulation float64
	// Audio weights the per-band additive terms, applied after everything
	// but the clamps.
	Audio AudioWeights
	// Min/Max are hard clamps applied after all additive terms.
	Min *float64
	Max *float64
	// Wrap folds the value into [0,360) — applied once before audio terms
	// for numeric stability and re-applied after the clamps, so wrapped
	// parameters (hue) always land in [0,360).
	Wrap bool
	// Path, when non-empty, is sampled by position progress·(len-1) and
	// overrides the Range result.
	Path []float64
}

// Lit builds a literal descriptor. Convenience for tests and builders.
func Lit(v float64) *ParamSpec {
	return &ParamSpec{Literal: &v}
}

// Ptr returns a pointer to v. Convenience for optional Min/Max bounds.
func Ptr(v float64) *float64 { return &v }
