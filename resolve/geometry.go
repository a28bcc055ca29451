package resolve

import (
	"math"

	"github.com/Domusgpt/vib34d-music-video-choreographer-alternative-sub001/blueprint"
	"github.com/Domusgpt/vib34d-music-video-choreographer-alternative-sub001/easing"
	"github.com/Domusgpt/vib34d-music-video-choreographer-alternative-sub001/palette"
)

// ResolveGeometry computes the geometry index for this instant.
// ok is false for a nil config (absent or legacy-string source).
//
// A numeric config short-circuits to its rounded value. Otherwise a base
// index comes from one of three mutually exclusive modes, each overriding
// the previous when its trigger holds:
//
//	(a) progressive / ai-dynamic — eased-progress position over the palette
//	(b) pulse                    — sinusoid at Frequency mapped to an index
//	(c) ChangeEveryBeats         — beat-quantized stepping, palette-wrapped
//
// After the mode result, the audio override stages run unconditionally if
// enabled: an energy break (Energy > EnergyGate) re-picks randomly from the
// palette via the engine's RNG, and a peak (Energy > 0.9) re-picks again,
// independently. The final index is floored and non-negative.
//
// This is the one per-frame path that consumes RNG state; replays must
// account for it.
func (e *Engine) ResolveGeometry(cfg *blueprint.GeometryConfig, ctx *blueprint.Context) (int, bool) {
	if cfg == nil {
		return 0, false
	}
	if cfg.Literal != nil {
		n := int(math.Round(*cfg.Literal))
		if n < 0 {
			n = 0
		}
		return n, true
	}

	pal := cfg.Palette
	if len(pal) == 0 {
		pal = palette.DefaultGeometry()
	}
	span := float64(len(pal) - 1)

	var idx float64
	switch cfg.Mode {
	case "ai-dynamic", "progressive":
		pos := easing.Ease(ctx.Progress, easing.ParseCurve(cfg.Easing)) * span
		idx = palette.Sample(pal, pos)
	case "pulse":
		freq := cfg.Frequency
		if freq == 0 {
			freq = defaultPulseFreq
		}
		pulse := 0.5 + 0.5*math.Sin(ctx.AbsoluteTime*freq*2*math.Pi)
		idx = palette.Sample(pal, pulse*span)
	}

	if cfg.ChangeEveryBeats > 0 && ctx.BPM > 0 {
		beats := ctx.AbsoluteTime * ctx.BPM / 60
		step := int(beats / cfg.ChangeEveryBeats)
		idx = pal[step%len(pal)]
	}

	if cfg.AllowEnergyBreaks {
		gate := cfg.EnergyGate
		if gate == 0 {
			gate = defaultEnergyGate
		}
		if ctx.Audio.Energy > gate {
			idx = e.rng.Pick(pal)
		}
	}
	if cfg.RandomizeOnPeaks && ctx.Audio.Energy > peakEnergyGate {
		idx = e.rng.Pick(pal)
	}

	n := int(math.Floor(idx))
	if n < 0 {
		n = 0
	}
	return n, true
}
