package timeline

import (
	"github.com/Domusgpt/vib34d-music-video-choreographer-alternative-sub001/blueprint"
	"github.com/Domusgpt/vib34d-music-video-choreographer-alternative-sub001/palette"
)

// Hue anchor spacing: each segment advances the wheel by a fixed step and
// energy pushes it further toward warm/saturated territory.
const (
	anchorHueBase       = 180.0
	anchorHueStep       = 45.0
	anchorHueEnergySpan = 120.0
)

// Generate synthesizes a blueprint covering opts.TotalDuration.
//
// One segment per energy-profile entry. Generated durations are the
// per-segment share jittered by ±20% and clamped to [12,24] seconds; the
// last segment absorbs the rounding difference so coverage is exact. When
// the correction would push the last segment non-positive (short runs with
// many segments), all durations are rescaled proportionally instead.
// DurationOverrides skip the jitter and clamp but receive the same
// coverage correction: totals are covered exactly in every case.
// Complexity: O(n) in the segment count.
func (g *Generator) Generate(opts GenerateOptions) (*blueprint.Blueprint, error) {
	if opts.TotalDuration <= 0 {
		return nil, ErrNonPositiveDuration
	}

	profile := opts.EnergyProfile
	if len(profile) == 0 {
		if opts.Phases == nil || opts.Phases.SegmentCount() == 0 {
			return nil, ErrEmptyProfile
		}
		profile = opts.Phases.expand(g.rng)
	}
	count := len(profile)

	systems := opts.Systems
	if len(systems) == 0 {
		systems = defaultSystems
	}
	pal := opts.GeometryPalette
	if len(pal) == 0 {
		pal = palette.DefaultGeometry()
	}

	durations := g.segmentDurations(opts, count)

	segments := make([]blueprint.Segment, 0, count)
	start := 0.0
	for i, e := range profile {
		energy := clampF(e, 0, 1)
		anchorHue := anchorHueBase + float64(i)*anchorHueStep + energy*anchorHueEnergySpan
		system := systems[i%len(systems)]
		segments = append(segments, g.BuildSegment(i, start, durations[i], system, energy, pal, anchorHue))
		start += durations[i]
	}

	return &blueprint.Blueprint{Segments: segments}, nil
}

// segmentDurations computes per-segment durations with exact coverage of
// the requested total. Overrides replace the jittered shares but are
// subject to the same coverage correction.
func (g *Generator) segmentDurations(opts GenerateOptions, count int) []float64 {
	durations := make([]float64, count)
	share := opts.TotalDuration / float64(count)

	var sum float64
	if len(opts.DurationOverrides) > 0 {
		for i := range durations {
			if i < len(opts.DurationOverrides) && opts.DurationOverrides[i] > 0 {
				durations[i] = opts.DurationOverrides[i]
			} else {
				durations[i] = share
			}
			sum += durations[i]
		}
	} else {
		for i := range durations {
			durations[i] = clampF(share*g.rng.FloatRange(0.8, 1.2), minSegmentSeconds, maxSegmentSeconds)
			sum += durations[i]
		}
	}

	// Absorb the residue into the last segment; rescale all of them when
	// that would underflow.
	if last := durations[count-1] + (opts.TotalDuration - sum); last > 0 {
		durations[count-1] = last
	} else {
		scale := opts.TotalDuration / sum
		for i := range durations {
			durations[i] *= scale
		}
	}
	return durations
}

// clampF bounds v to [lo, hi].
func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
