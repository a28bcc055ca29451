package timeline

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/Domusgpt/vib34d-music-video-choreographer-alternative-sub001/blueprint"
)

// Energy thresholds steering the per-segment geometry mode and the
// optional twist block.
const (
	pulseModeEnergy  = 0.75
	beatModeEnergy   = 0.45
	energyBreakGate  = 0.5
	peakRandomGate   = 0.8
	twistEnergyFloor = 0.6

	maxSpikes = 4
)

// easingCycle is the curve pool the builder draws range easings from.
var easingCycle = []string{"linear", "easeInCubic", "easeOutCubic", "easeInOutCubic", "easeOutQuad", "easeInOutQuad"}

// beatSteps is the pool of beat-quantized geometry step lengths.
var beatSteps = []float64{2, 4, 8}

// BuildSegment derives one declarative segment from its slot in the run.
//
// The RNG draw order is fixed and independent of energy, so two builds
// from equally seeded generators differ only through the energy terms;
// chaos, speed and gridDensity bases and the glitch/orbit drive are
// strictly increasing in energy under that comparison.
// Complexity: O(1).
func (g *Generator) BuildSegment(index int, start, duration float64, system string, energy float64, pal []float64, anchorHue float64) blueprint.Segment {
	energy = clampF(energy, 0, 1)

	// All draws happen up front, unconditionally.
	jSpeed := g.rng.FloatRange(-0.05, 0.05)
	jChaos := g.rng.FloatRange(-0.03, 0.03)
	jGrid := g.rng.FloatRange(-1, 1)
	hueDrift := g.rng.FloatRange(-50, 50)
	curve := easingCycle[g.rng.IntN(len(easingCycle))]
	pulseFreq := g.rng.FloatRange(2, 6)
	beats := beatSteps[g.rng.IntN(len(beatSteps))]
	jElev := g.rng.FloatRange(-0.1, 0.1)
	spikes := make([]blueprint.Spike, maxSpikes)
	for i := range spikes {
		spikes[i] = blueprint.Spike{
			At:        g.rng.FloatRange(0.1, 0.9),
			Intensity: g.rng.FloatRange(0.4, 1),
		}
	}

	params := map[string]*blueprint.ParamSpec{
		"speed": {
			Base:  0.7 + 0.9*energy + jSpeed,
			Audio: blueprint.AudioWeights{Energy: 0.2 + 0.3*energy},
			Min:   blueprint.Ptr(0.1), Max: blueprint.Ptr(3),
		},
		"chaos": {
			Base:  0.08 + 0.72*energy + jChaos,
			Audio: blueprint.AudioWeights{High: 0.15 + 0.25*energy},
			Min:   blueprint.Ptr(0), Max: blueprint.Ptr(1),
		},
		"gridDensity": {
			Base:  8 + 14*energy + jGrid,
			Audio: blueprint.AudioWeights{Bass: 2 + 4*energy},
			Min:   blueprint.Ptr(4), Max: blueprint.Ptr(30),
		},
		"morphFactor": {
			Range:  &[2]float64{0.3, 0.8 + 0.6*energy},
			Easing: curve,
			Min:    blueprint.Ptr(0), Max: blueprint.Ptr(2),
		},
		"hue": {
			Base:  anchorHue,
			Drift: hueDrift,
			Audio: blueprint.AudioWeights{High: 10 + 20*energy},
			Wrap:  true,
		},
		"intensity": {
			Base:  0.35 + 0.35*energy,
			Audio: blueprint.AudioWeights{Energy: 0.25},
			Min:   blueprint.Ptr(0), Max: blueprint.Ptr(1),
		},
		"saturation": {
			Base: 0.65 + 0.25*energy,
			Min:  blueprint.Ptr(0), Max: blueprint.Ptr(1),
		},
		"dimension": {
			Base: 3.4 + 0.6*energy,
			Min:  blueprint.Ptr(3), Max: blueprint.Ptr(4.5),
		},
	}

	geometry := &blueprint.GeometryConfig{
		Palette:           pal,
		AllowEnergyBreaks: energy > energyBreakGate,
		RandomizeOnPeaks:  energy > peakRandomGate,
	}
	switch {
	case energy >= pulseModeEnergy:
		geometry.Mode = "pulse"
		geometry.Frequency = pulseFreq
	case energy >= beatModeEnergy:
		geometry.ChangeEveryBeats = beats
	default:
		geometry.Mode = "progressive"
		geometry.Easing = "easeInOutCubic"
	}

	rotation := &blueprint.RotationConfig{
		Frequency:  0.4 + 0.4*energy,
		OrbitSpeed: 0.5 + energy,
		Modulation: 0.08 + 0.22*energy,
		Audio: blueprint.AudioWeights{
			Bass: 0.25 + 0.35*energy,
			Mid:  0.15 + 0.2*energy,
			High: 0.1 + 0.2*energy,
		},
	}
	if energy > twistEnergyFloor {
		rotation.Twist = &blueprint.TwistConfig{
			Max:       2 + 3*energy,
			Frequency: 1 + energy,
		}
	}

	custom := map[string]*blueprint.ParamSpec{
		"glow": {
			Base:  0.2 + 0.5*energy,
			Audio: blueprint.AudioWeights{Energy: 0.3},
			Min:   blueprint.Ptr(0), Max: blueprint.Ptr(1.5),
		},
		"trailFade": {
			Base: 0.92 - 0.2*energy,
			Min:  blueprint.Ptr(0.5), Max: blueprint.Ptr(1),
		},
	}

	extended := blueprint.Extended{
		CameraOrbit: &blueprint.OrbitConfig{
			Speed:     0.04 + 0.16*energy,
			Radius:    11 - 4*energy,
			Elevation: 0.15 + jElev,
			Audio: blueprint.AudioWeights{
				Energy: 15 + 35*energy,
				Bass:   0.8 + 1.2*energy,
				Mid:    0.25,
			},
		},
		LayerPulse: &blueprint.PulseConfig{
			Base:   0.9 + 0.25*energy,
			Amount: 0.12 + 0.3*energy,
			Audio:  blueprint.AudioWeights{Energy: 0.2 + 0.4*energy},
		},
		Glitch: &blueprint.GlitchConfig{
			Base:  0.18 * energy,
			Decay: 1 + energy,
			Audio: blueprint.AudioWeights{
				High:   0.3 + 0.5*energy,
				Energy: 0.35 * energy,
			},
			Spikes: spikes[:spikeCount(energy)],
		},
		Vignette: &blueprint.VignetteConfig{
			Base:  0.38 - 0.18*energy,
			Pulse: 0.05 + 0.05*energy,
			Audio: blueprint.AudioWeights{Energy: 0.08},
		},
	}

	return blueprint.Segment{
		Kind:     blueprint.KindDeclarative,
		Start:    start,
		Duration: duration,
		Effects: blueprint.EffectSet{
			Params:      params,
			Geometry:    geometry,
			Rotation:    rotation,
			Custom:      custom,
			Extended:    extended,
			System:      system,
			MetaSummary: metaSummary(index, energy, anchorHue),
		},
	}
}

// spikeCount scales the spike budget with energy, capped at maxSpikes.
func spikeCount(energy float64) int {
	n := int(math.Round(energy * maxSpikes))
	if n > maxSpikes {
		n = maxSpikes
	}
	return n
}

// metaSummary renders the human-readable segment label with the anchor
// color as an sRGB hex swatch.
func metaSummary(index int, energy, anchorHue float64) string {
	swatch := colorful.Hsv(math.Mod(math.Mod(anchorHue, 360)+360, 360), 0.72, 0.92).Hex()
	return fmt.Sprintf("segment %d · %s · energy %.2f · anchor %s", index, energyBand(energy), energy, swatch)
}

// energyBand names the coarse energy tier for summaries.
func energyBand(energy float64) string {
	switch {
	case energy < 0.3:
		return "calm"
	case energy < 0.6:
		return "driving"
	case energy < 0.85:
		return "intense"
	default:
		return "peak"
	}
}
