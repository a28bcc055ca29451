// JSON encoding for blueprint data. The wire shape mirrors decode.go:
// literals stay bare numbers, absent composites are omitted, and parameter
// descriptors live inline in the effects object next to the reserved keys.

package blueprint

import "encoding/json"

// MarshalJSON emits a literal descriptor as a bare number and a structured
// one as an object holding only its meaningful fields.
func (p *ParamSpec) MarshalJSON() ([]byte, error) {
	if p.Literal != nil {
		return json.Marshal(*p.Literal)
	}
	m := make(map[string]any, 8)
	if p.Base != 0 {
		m["base"] = p.Base
	}
	if p.Range != nil {
		m["range"] = []float64{p.Range[0], p.Range[1]}
	}
	if p.Easing != "" {
		m["easing"] = p.Easing
	}
	if p.Drift != 0 {
		m["drift"] = p.Drift
	}
	if p.Modulation != 0 {
		m["modulation"] = p.Modulation
	}
	if !p.Audio.Zero() {
		m["audio"] = audioMap(p.Audio)
	}
	if p.Min != nil {
		m["min"] = *p.Min
	}
	if p.Max != nil {
		m["max"] = *p.Max
	}
	if p.Wrap {
		m["wrap"] = true
	}
	if len(p.Path) > 0 {
		m["path"] = p.Path
	}
	return json.Marshal(m)
}

// MarshalJSON emits the effects object: baseline and custom descriptors plus
// the reserved composite keys, omitting absent members.
func (e EffectSet) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(e.Params)+6)
	for name, spec := range e.Params {
		m[name] = spec
	}
	if e.Geometry != nil {
		m["geometry"] = geometryMap(e.Geometry)
	}
	if e.Rotation != nil {
		m["rotation"] = rotationMap(e.Rotation)
	}
	if len(e.Custom) > 0 {
		m["customParameters"] = e.Custom
	}
	if ext := extendedMap(e.Extended); len(ext) > 0 {
		m["extended"] = ext
	}
	if e.System != "" {
		m["system"] = e.System
	}
	if e.MetaSummary != "" {
		m["metaSummary"] = e.MetaSummary
	}
	return json.Marshal(m)
}

func audioMap(w AudioWeights) map[string]float64 {
	m := make(map[string]float64, 4)
	if w.Energy != 0 {
		m["energy"] = w.Energy
	}
	if w.Bass != 0 {
		m["bass"] = w.Bass
	}
	if w.Mid != 0 {
		m["mid"] = w.Mid
	}
	if w.High != 0 {
		m["high"] = w.High
	}
	return m
}

func geometryMap(g *GeometryConfig) any {
	if g.Literal != nil {
		return *g.Literal
	}
	m := make(map[string]any, 8)
	if g.Mode != "" {
		m["mode"] = g.Mode
	}
	if len(g.Palette) > 0 {
		m["palette"] = g.Palette
	}
	if g.Easing != "" {
		m["easing"] = g.Easing
	}
	if g.Frequency != 0 {
		m["frequency"] = g.Frequency
	}
	if g.ChangeEveryBeats != 0 {
		m["changeEveryBeats"] = g.ChangeEveryBeats
	}
	if g.AllowEnergyBreaks {
		m["allowEnergyBreaks"] = true
	}
	if g.EnergyGate != 0 {
		m["energyGate"] = g.EnergyGate
	}
	if g.RandomizeOnPeaks {
		m["randomizeOnPeaks"] = true
	}
	return m
}

func rotationMap(r *RotationConfig) map[string]any {
	m := make(map[string]any, 5)
	if r.Frequency != 0 {
		m["frequency"] = r.Frequency
	}
	if r.OrbitSpeed != 0 {
		m["orbitSpeed"] = r.OrbitSpeed
	}
	if r.Modulation != 0 {
		m["modulation"] = r.Modulation
	}
	if !r.Audio.Zero() {
		m["audio"] = audioMap(r.Audio)
	}
	if r.Twist != nil {
		tm := make(map[string]any, 2)
		if r.Twist.Max != 0 {
			tm["max"] = r.Twist.Max
		}
		if r.Twist.Frequency != 0 {
			tm["frequency"] = r.Twist.Frequency
		}
		m["twist"] = tm
	}
	return m
}

func extendedMap(ext Extended) map[string]any {
	m := make(map[string]any, 4)
	if o := ext.CameraOrbit; o != nil {
		om := make(map[string]any, 4)
		if o.Speed != 0 {
			om["speed"] = o.Speed
		}
		if o.Radius != 0 {
			om["radius"] = o.Radius
		}
		if o.Elevation != 0 {
			om["elevation"] = o.Elevation
		}
		if !o.Audio.Zero() {
			om["audio"] = audioMap(o.Audio)
		}
		m["cameraOrbit"] = om
	}
	if p := ext.LayerPulse; p != nil {
		pm := make(map[string]any, 3)
		if p.Base != 0 {
			pm["base"] = p.Base
		}
		if p.Amount != 0 {
			pm["amount"] = p.Amount
		}
		if !p.Audio.Zero() {
			pm["audio"] = audioMap(p.Audio)
		}
		m["layerPulse"] = pm
	}
	if g := ext.Glitch; g != nil {
		gm := make(map[string]any, 4)
		if g.Base != 0 {
			gm["base"] = g.Base
		}
		if g.Decay != 0 {
			gm["decay"] = g.Decay
		}
		if !g.Audio.Zero() {
			gm["audio"] = audioMap(g.Audio)
		}
		if len(g.Spikes) > 0 {
			gm["spikes"] = g.Spikes
		}
		m["glitch"] = gm
	}
	if v := ext.Vignette; v != nil {
		vm := make(map[string]any, 3)
		if v.Base != 0 {
			vm["base"] = v.Base
		}
		if v.Pulse != 0 {
			vm["pulse"] = v.Pulse
		}
		if !v.Audio.Zero() {
			vm["audio"] = audioMap(v.Audio)
		}
		m["vignette"] = vm
	}
	return m
}
