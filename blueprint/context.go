package blueprint

// AudioFrame is one sampled snapshot of per-band audio energy, supplied by
// the external analysis collaborator once per evaluation. Magnitudes are
// nominally in [0,~1+] but nothing here enforces a bound; descriptor clamps
// are the only limit.
type AudioFrame struct {
	Bass   float64 `json:"bass"`
	Mid    float64 `json:"mid"`
	High   float64 `json:"high"`
	Energy float64 `json:"energy"`
}

// Context carries the runtime inputs for one evaluation call.
type Context struct {
	// Progress is the normalized position in [0,1] within the current
	// segment.
	Progress float64
	// AbsoluteTime is global seconds since run start (≥0).
	AbsoluteTime float64
	// BPM is the current tempo estimate (>0); used by beat-quantized
	// geometry stepping.
	BPM float64
	// Audio is the current feature frame.
	Audio AudioFrame
	// CurrentSystem is the fallback system identity when a segment carries
	// no selector.
	CurrentSystem string
	// Automation optionally overrides descriptor ranges ambiently for this
	// call; nil means no override.
	Automation *Automation
}

// CustomValue pairs a resolved custom parameter with its definition, so the
// rendering layer can inspect how the value was produced.
type CustomValue struct {
	Value float64
	Spec  *ParamSpec
}

// Frame is the resolved output for one instant: the flat parameter map plus
// the nested composite sub-maps, handed to the rendering layer once per
// rendered frame.
type Frame struct {
	// Parameters maps parameter name → resolved number.
	Parameters map[string]float64
	// Geometry is the resolved geometry index; nil when not applicable.
	Geometry *int
	// System is the active system for this instant.
	System string
	// Custom maps custom parameter names to value+definition pairs.
	Custom map[string]CustomValue
	// Extended holds the composite sub-maps keyed cameraOrbit, layerPulse,
	// glitch, vignette.
	Extended map[string]map[string]float64
}
