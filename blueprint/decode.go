// Tolerant JSON decoding for blueprint data.
//
// Policy (never crash): absent, non-object or wrong-typed optional fields
// degrade to documented defaults. Decode errors surface only for input that
// is not JSON at all; a structurally odd blueprint still decodes, it just
// carries fewer overrides.

package blueprint

import (
	"encoding/json"
)

// Decode parses a full blueprint. Accepts either {"segments":[...]} or a
// bare segment array. Returns ErrEmptyBlueprint when no segments decode.
// Complexity: O(input size).
func Decode(data []byte) (*Blueprint, error) {
	var wrapped struct {
		Segments []json.RawMessage `json:"segments"`
	}
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Segments != nil {
		raws = wrapped.Segments
	} else {
		// Fall back to a bare array of segments.
		if err2 := json.Unmarshal(data, &raws); err2 != nil {
			return nil, err2
		}
	}

	bp := &Blueprint{Segments: make([]Segment, 0, len(raws))}
	for _, r := range raws {
		var s Segment
		if err := json.Unmarshal(r, &s); err != nil {
			continue // malformed entry: skip, never fail the run
		}
		bp.Segments = append(bp.Segments, s)
	}
	if len(bp.Segments) == 0 {
		return nil, ErrEmptyBlueprint
	}
	return bp, nil
}

// UnmarshalJSON classifies the segment variant exactly once: a segment is
// KindDeclarative iff it carries an "effects" object. Everything else is
// KindLegacy and will be refused by the declarative evaluator.
func (s *Segment) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.Start, _ = asFloat(raw["start"])
	s.Duration, _ = asFloat(raw["duration"])

	eff, ok := raw["effects"]
	if !ok || !isObject(eff) {
		s.Kind = KindLegacy
		return nil
	}
	s.Kind = KindDeclarative
	return s.Effects.UnmarshalJSON(eff)
}

// effectKeys are the reserved EffectSet member names; every other key in an
// effects object is a baseline parameter descriptor.
var effectKeys = map[string]bool{
	"geometry":         true,
	"rotation":         true,
	"customParameters": true,
	"extended":         true,
	"system":           true,
	"metaSummary":      true,
}

// UnmarshalJSON decodes an effects object. Unknown keys become Params
// entries; reserved keys populate the composite members.
func (e *EffectSet) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	e.Geometry = decodeGeometry(raw["geometry"])
	e.Rotation = decodeRotation(raw["rotation"])
	e.System, _ = asString(raw["system"])
	e.MetaSummary, _ = asString(raw["metaSummary"])
	e.Custom = decodeSpecMap(raw["customParameters"])
	e.Extended = decodeExtended(raw["extended"])

	for key, val := range raw {
		if effectKeys[key] {
			continue
		}
		var spec ParamSpec
		if err := json.Unmarshal(val, &spec); err != nil {
			continue // wrong-typed parameter: skip it
		}
		if e.Params == nil {
			e.Params = make(map[string]*ParamSpec)
		}
		sp := spec
		e.Params[key] = &sp
	}
	return nil
}

// UnmarshalJSON accepts either a bare number (literal descriptor) or a
// structured object. Wrong-typed fields inside the object degrade to their
// zero values individually.
func (p *ParamSpec) UnmarshalJSON(data []byte) error {
	var lit float64
	if err := json.Unmarshal(data, &lit); err == nil {
		p.Literal = &lit
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.Base, _ = asFloat(raw["base"])
	p.Range = asPair(raw["range"])
	p.Easing, _ = asString(raw["easing"])
	p.Drift, _ = asFloat(raw["drift"])
	p.Modulation, _ = asFloat(raw["modulation"])
	p.Audio = decodeAudioWeights(raw["audio"])
	p.Min = asFloatPtr(raw["min"])
	p.Max = asFloatPtr(raw["max"])
	p.Wrap, _ = asBool(raw["wrap"])
	p.Path = asFloats(raw["path"])
	return nil
}

// decodeGeometry handles the geometry slot: nil and legacy strings map to
// "not applicable" (nil config), numbers short-circuit to a literal, and
// objects decode field by field.
func decodeGeometry(raw json.RawMessage) *GeometryConfig {
	if len(raw) == 0 {
		return nil
	}
	var lit float64
	if err := json.Unmarshal(raw, &lit); err == nil {
		return &GeometryConfig{Literal: &lit}
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil // legacy string selector or other shape: not applicable
	}
	g := &GeometryConfig{}
	g.Mode, _ = asString(m["mode"])
	g.Palette = asFloats(m["palette"])
	g.Easing, _ = asString(m["easing"])
	g.Frequency, _ = asFloat(m["frequency"])
	g.ChangeEveryBeats, _ = asFloat(m["changeEveryBeats"])
	g.AllowEnergyBreaks, _ = asBool(m["allowEnergyBreaks"])
	g.EnergyGate, _ = asFloat(m["energyGate"])
	g.RandomizeOnPeaks, _ = asBool(m["randomizeOnPeaks"])
	return g
}

func decodeRotation(raw json.RawMessage) *RotationConfig {
	m, ok := asObject(raw)
	if !ok {
		return nil
	}
	r := &RotationConfig{}
	r.Frequency, _ = asFloat(m["frequency"])
	r.OrbitSpeed, _ = asFloat(m["orbitSpeed"])
	r.Modulation, _ = asFloat(m["modulation"])
	r.Audio = decodeAudioWeights(m["audio"])
	if tm, ok := asObject(m["twist"]); ok {
		t := &TwistConfig{}
		t.Max, _ = asFloat(tm["max"])
		t.Frequency, _ = asFloat(tm["frequency"])
		r.Twist = t
	}
	return r
}

func decodeExtended(raw json.RawMessage) Extended {
	var ext Extended
	m, ok := asObject(raw)
	if !ok {
		return ext
	}
	if om, ok := asObject(m["cameraOrbit"]); ok {
		o := &OrbitConfig{}
		o.Speed, _ = asFloat(om["speed"])
		o.Radius, _ = asFloat(om["radius"])
		o.Elevation, _ = asFloat(om["elevation"])
		o.Audio = decodeAudioWeights(om["audio"])
		ext.CameraOrbit = o
	}
	if pm, ok := asObject(m["layerPulse"]); ok {
		p := &PulseConfig{}
		p.Base, _ = asFloat(pm["base"])
		p.Amount, _ = asFloat(pm["amount"])
		p.Audio = decodeAudioWeights(pm["audio"])
		ext.LayerPulse = p
	}
	if gm, ok := asObject(m["glitch"]); ok {
		g := &GlitchConfig{}
		g.Base, _ = asFloat(gm["base"])
		g.Decay, _ = asFloat(gm["decay"])
		g.Audio = decodeAudioWeights(gm["audio"])
		if sp := gm["spikes"]; len(sp) > 0 {
			_ = json.Unmarshal(sp, &g.Spikes)
		}
		ext.Glitch = g
	}
	if vm, ok := asObject(m["vignette"]); ok {
		v := &VignetteConfig{}
		v.Base, _ = asFloat(vm["base"])
		v.Pulse, _ = asFloat(vm["pulse"])
		v.Audio = decodeAudioWeights(vm["audio"])
		ext.Vignette = v
	}
	return ext
}

func decodeSpecMap(raw json.RawMessage) map[string]*ParamSpec {
	m, ok := asObject(raw)
	if !ok {
		return nil
	}
	out := make(map[string]*ParamSpec, len(m))
	for name, val := range m {
		var spec ParamSpec
		if err := json.Unmarshal(val, &spec); err != nil {
			continue
		}
		sp := spec
		out[name] = &sp
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func decodeAudioWeights(raw json.RawMessage) AudioWeights {
	var w AudioWeights
	m, ok := asObject(raw)
	if !ok {
		return w
	}
	w.Energy, _ = asFloat(m["energy"])
	w.Bass, _ = asFloat(m["bass"])
	w.Mid, _ = asFloat(m["mid"])
	w.High, _ = asFloat(m["high"])
	return w
}

// --- tolerant primitives ---

func isObject(raw json.RawMessage) bool {
	for _, c := range raw {
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}

func asObject(raw json.RawMessage) (map[string]json.RawMessage, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, false
	}
	return m, true
}

func asFloat(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 {
		return 0, false
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, false
	}
	return v, true
}

func asFloatPtr(raw json.RawMessage) *float64 {
	if v, ok := asFloat(raw); ok {
		return &v
	}
	return nil
}

func asBool(raw json.RawMessage) (bool, bool) {
	if len(raw) == 0 {
		return false, false
	}
	var v bool
	if err := json.Unmarshal(raw, &v); err != nil {
		return false, false
	}
	return v, true
}

func asString(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", false
	}
	return v, true
}

func asPair(raw json.RawMessage) *[2]float64 {
	if len(raw) == 0 {
		return nil
	}
	var arr []float64
	if err := json.Unmarshal(raw, &arr); err != nil || len(arr) < 2 {
		return nil
	}
	return &[2]float64{arr[0], arr[1]}
}

func asFloats(raw json.RawMessage) []float64 {
	if len(raw) == 0 {
		return nil
	}
	var arr []float64
	if err := json.Unmarshal(raw, &arr); err != nil {
		return nil
	}
	return arr
}
