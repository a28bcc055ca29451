package resolve

import (
	"math"

	"github.com/Domusgpt/vib34d-music-video-choreographer-alternative-sub001/blueprint"
	"github.com/Domusgpt/vib34d-music-video-choreographer-alternative-sub001/easing"
	"github.com/Domusgpt/vib34d-music-video-choreographer-alternative-sub001/palette"
)

// ResolveParam evaluates one declarative descriptor against ctx.
// ok is false only for a nil spec — "no override, skip this parameter".
//
// The steps run in fixed order; see the package doc for the full list.
// Two subtleties worth naming:
//
//   - Wrap folds into [0,360) twice: once before the audio terms so the
//     pre-audio value is numerically stable, and again after the clamps so
//     wrapped parameters (hue) always land in [0,360) no matter how far
//     audio pushed them.
//   - An ambient automation range overrides the eased component only;
//     drift and modulation terms already accumulated are retained.
//
// Pure: no hidden state, no RNG. Complexity: O(1) (O(len(path)) never
// exceeds a handful of entries).
func ResolveParam(spec *blueprint.ParamSpec, ctx *blueprint.Context) (float64, bool) {
	if spec == nil {
		return 0, false
	}

	var value, additive float64

	if spec.Literal != nil {
		value = *spec.Literal
	} else {
		value = spec.Base

		if spec.Range != nil {
			curve := spec.Easing
			if curve == "" && ctx.Automation != nil {
				curve = ctx.Automation.Easing
			}
			t := easing.Ease(ctx.Progress, easing.ParseCurve(curve))
			value = spec.Range[0] + (spec.Range[1]-spec.Range[0])*t
		}

		// Path precedence: overrides the range result, audio and clamps
		// still apply afterwards.
		if len(spec.Path) > 0 {
			value = palette.Sample(spec.Path, ctx.Progress*float64(len(spec.Path)-1))
		}

		if spec.Drift != 0 {
			d := spec.Drift * ctx.Progress
			value += d
			additive += d
		}

		if spec.Wrap {
			value = wrap360(value)
		}

		if spec.Modulation != 0 {
			// Global phase: progress·2π + absolute time, shared by every
			// parameter so equal modulations stay phase-locked.
			m := math.Sin(ctx.Progress*2*math.Pi+ctx.AbsoluteTime) * spec.Modulation
			value += m
			additive += m
		}
	}

	if auto := ctx.Automation; auto != nil {
		if auto.Range != nil {
			t := easing.Ease(ctx.Progress, easing.ParseCurve(auto.Easing))
			value = auto.Range[0] + (auto.Range[1]-auto.Range[0])*t + additive
		}
		if auto.Bump != 0 {
			// Single-hump envelope peaking at the segment midpoint.
			value += auto.Bump * math.Sin(ctx.Progress*math.Pi)
		}
	}

	value += spec.Audio.Apply(ctx.Audio)

	if spec.Min != nil && value < *spec.Min {
		value = *spec.Min
	}
	if spec.Max != nil && value > *spec.Max {
		value = *spec.Max
	}

	if spec.Wrap {
		value = wrap360(value)
	}

	return value, true
}

// wrap360 folds v into [0,360), correct for negative inputs.
func wrap360(v float64) float64 {
	return math.Mod(math.Mod(v, degreesPerCircle)+degreesPerCircle, degreesPerCircle)
}
