package resolve

import (
	"math"

	"github.com/Domusgpt/vib34d-music-video-choreographer-alternative-sub001/blueprint"
)

// Rotation is the resolved three-axis rotation field. Twist is non-nil only
// when the config carries a twist sub-config.
type Rotation struct {
	XW, YW, ZW float64
	Twist      *float64
}

// ResolveRotation computes the rotation field from a shared phase
//
//	phase = absoluteTime·Frequency + progress·2π·OrbitSpeed
//
// combined per axis at fixed harmonic multipliers (1, 0.75, 1.2) with
// sine/cosine offsets, band-weighted audio (Bass→XW, Mid→YW, High→ZW) and a
// second, progress-timed modulation layer at harmonics (1, 0.8, 0.6). The
// modulation layer is deliberately timed to progress rather than phase: an
// independent oscillation that keeps the field lively even when the phase
// is slow.
//
// Pure; nil config yields the zero field.
func ResolveRotation(cfg *blueprint.RotationConfig, ctx *blueprint.Context) Rotation {
	var r Rotation
	if cfg == nil {
		return r
	}

	freq := cfg.Frequency
	if freq == 0 {
		freq = defaultRotationFreq
	}
	orbit := cfg.OrbitSpeed
	if orbit == 0 {
		orbit = defaultOrbitSpeed
	}
	phase := ctx.AbsoluteTime*freq + ctx.Progress*2*math.Pi*orbit

	r.XW = math.Sin(phase)
	r.YW = math.Cos(phase * harmonicYW)
	r.ZW = math.Sin(phase * harmonicZW)

	r.XW += ctx.Audio.Bass * cfg.Audio.Bass
	r.YW += ctx.Audio.Mid * cfg.Audio.Mid
	r.ZW += ctx.Audio.High * cfg.Audio.High

	if cfg.Modulation != 0 {
		p := ctx.Progress * 2 * math.Pi
		r.XW += cfg.Modulation * math.Sin(p*modHarmonicXW)
		r.YW += cfg.Modulation * math.Sin(p*modHarmonicYW)
		r.ZW += cfg.Modulation * math.Sin(p*modHarmonicZW)
	}

	if cfg.Twist != nil {
		max := cfg.Twist.Max
		if max == 0 {
			max = defaultTwistMax
		}
		tf := cfg.Twist.Frequency
		if tf == 0 {
			tf = defaultTwistFreq
		}
		tw := math.Sin(phase*tf)*max + ctx.Audio.Energy*cfg.Audio.Energy
		tw = clamp(tw, -max, max)
		r.Twist = &tw
	}

	return r
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
