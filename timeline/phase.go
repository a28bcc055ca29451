package timeline

import "github.com/Domusgpt/vib34d-music-video-choreographer-alternative-sub001/rng"

// PhaseTemplate describes a musical arc as segment counts per phase. Each
// phase expands into a short energy ramp; the concatenation is the energy
// profile Generate consumes.
type PhaseTemplate struct {
	Intro   int
	Build   int
	Peak    int
	Release int
}

// DefaultPhaseTemplate returns the stock ten-segment arc.
func DefaultPhaseTemplate() PhaseTemplate {
	return PhaseTemplate{Intro: 2, Build: 3, Peak: 3, Release: 2}
}

// SegmentCount sums the phase counts.
func (p PhaseTemplate) SegmentCount() int {
	return p.Intro + p.Build + p.Peak + p.Release
}

// Per-phase energy ramp endpoints. Release ramps downward.
const (
	introEnergyFrom   = 0.15
	introEnergyTo     = 0.30
	buildEnergyFrom   = 0.40
	buildEnergyTo     = 0.70
	peakEnergyFrom    = 0.80
	peakEnergyTo      = 0.95
	releaseEnergyFrom = 0.55
	releaseEnergyTo   = 0.20

	phaseEnergyJitter = 0.04
)

// expand turns the template into an energy profile, jittering every entry
// by ±phaseEnergyJitter from r.
func (p PhaseTemplate) expand(r *rng.Generator) []float64 {
	profile := make([]float64, 0, p.SegmentCount())
	profile = appendRamp(profile, r, p.Intro, introEnergyFrom, introEnergyTo)
	profile = appendRamp(profile, r, p.Build, buildEnergyFrom, buildEnergyTo)
	profile = appendRamp(profile, r, p.Peak, peakEnergyFrom, peakEnergyTo)
	profile = appendRamp(profile, r, p.Release, releaseEnergyFrom, releaseEnergyTo)
	return profile
}

// appendRamp appends n jittered energies linearly interpolated from..to.
func appendRamp(dst []float64, r *rng.Generator, n int, from, to float64) []float64 {
	for i := 0; i < n; i++ {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		e := from + (to-from)*t + r.FloatRange(-phaseEnergyJitter, phaseEnergyJitter)
		dst = append(dst, clampF(e, 0.05, 1))
	}
	return dst
}
