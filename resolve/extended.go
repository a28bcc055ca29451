// Narrow composite resolvers: camera orbit, layer pulse, glitch, vignette.
// Each follows the same template: read config defaults, add audio-weighted
// terms, clamp where physically meaningful.

package resolve

import (
	"math"

	"github.com/Domusgpt/vib34d-music-video-choreographer-alternative-sub001/blueprint"
)

// ResolveOrbit computes the camera orbit sub-map: yaw (degrees, wrapped),
// radius (clamped to a physical minimum) and elevation (clamped pitch).
// Audio mapping: Energy speeds the yaw, Bass widens the radius, Mid lifts
// the elevation.
func ResolveOrbit(cfg *blueprint.OrbitConfig, ctx *blueprint.Context) map[string]float64 {
	if cfg == nil {
		return nil
	}
	radius := cfg.Radius
	if radius == 0 {
		radius = defaultOrbitRadius
	}

	yaw := ctx.AbsoluteTime*cfg.Speed*degreesPerCircle +
		ctx.Audio.Energy*cfg.Audio.Energy
	radius += ctx.Audio.Bass * cfg.Audio.Bass
	elevation := cfg.Elevation + ctx.Audio.Mid*cfg.Audio.Mid

	if radius < minOrbitRadius {
		radius = minOrbitRadius
	}
	return map[string]float64{
		"yaw":       wrap360(yaw),
		"radius":    radius,
		"elevation": clamp(elevation, -maxOrbitElevation, maxOrbitElevation),
	}
}

// ResolvePulse computes the layer brightness: a resting base plus a
// progress-timed pulse at the shared global phase plus audio terms,
// floored at zero.
func ResolvePulse(cfg *blueprint.PulseConfig, ctx *blueprint.Context) map[string]float64 {
	if cfg == nil {
		return nil
	}
	base := cfg.Base
	if base == 0 {
		base = defaultPulseBase
	}
	brightness := base +
		cfg.Amount*math.Sin(ctx.Progress*2*math.Pi+ctx.AbsoluteTime) +
		cfg.Audio.Apply(ctx.Audio)
	if brightness < 0 {
		brightness = 0
	}
	return map[string]float64{"brightness": brightness}
}

// ResolveGlitch computes glitch intensity in [0,2]: base + a small
// sinusoidal flicker floor (≤0.02) + audio terms + any spikes whose At lies
// within the 0.02-progress window.
//
// A spike re-contributes on every evaluation while progress stays inside
// its window. Frame evaluation is far more frequent than the window is
// wide, so the multi-fire reads as a negligible flicker; it is accepted
// rather than deduplicated.
func ResolveGlitch(cfg *blueprint.GlitchConfig, ctx *blueprint.Context) map[string]float64 {
	if cfg == nil {
		return nil
	}
	decay := cfg.Decay
	if decay == 0 {
		decay = 1
	}

	intensity := cfg.Base +
		glitchFlickerAmp*(1+math.Sin(ctx.AbsoluteTime*glitchFlickerRate)) +
		cfg.Audio.Apply(ctx.Audio)

	for _, sp := range cfg.Spikes {
		d := math.Abs(ctx.Progress - sp.At)
		if d > spikeWindow {
			continue
		}
		// Full intensity at the spike center, falling off across the
		// window; Decay sharpens or softens the falloff.
		intensity += sp.Intensity * math.Pow(1-d/spikeWindow, decay)
	}

	return map[string]float64{"intensity": clamp(intensity, 0, glitchMaxIntensity)}
}

// ResolveVignette computes vignette strength in [0,0.8]: base + a
// progress-timed breathing term + audio terms.
func ResolveVignette(cfg *blueprint.VignetteConfig, ctx *blueprint.Context) map[string]float64 {
	if cfg == nil {
		return nil
	}
	strength := cfg.Base +
		cfg.Pulse*math.Sin(ctx.Progress*2*math.Pi) +
		cfg.Audio.Apply(ctx.Audio)
	return map[string]float64{"strength": clamp(strength, 0, vignetteMaxStrength)}
}
