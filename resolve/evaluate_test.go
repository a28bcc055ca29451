package resolve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Domusgpt/vib34d-music-video-choreographer-alternative-sub001/blueprint"
	"github.com/Domusgpt/vib34d-music-video-choreographer-alternative-sub001/resolve"
)

// declarativeSegment assembles a representative segment for evaluator
// tests.
func declarativeSegment() *blueprint.Segment {
	return &blueprint.Segment{
		Kind:     blueprint.KindDeclarative,
		Start:    0,
		Duration: 20,
		Effects: blueprint.EffectSet{
			Params: map[string]*blueprint.ParamSpec{
				"speed": {Base: 1.2},
				"hue":   {Base: 380, Wrap: true},
			},
			Geometry: &blueprint.GeometryConfig{Mode: "progressive", Easing: "linear", Palette: []float64{0, 1, 2, 3}},
			Rotation: &blueprint.RotationConfig{Frequency: 0.6, OrbitSpeed: 1, Twist: &blueprint.TwistConfig{Max: 3}},
			Custom: map[string]*blueprint.ParamSpec{
				"warp": {Base: 0.3, Audio: blueprint.AudioWeights{Energy: 0.5}},
			},
			Extended: blueprint.Extended{
				CameraOrbit: &blueprint.OrbitConfig{Speed: 0.1, Radius: 8},
				LayerPulse:  &blueprint.PulseConfig{Base: 1, Amount: 0.2},
				Glitch:      &blueprint.GlitchConfig{Base: 0.1, Decay: 1},
				Vignette:    &blueprint.VignetteConfig{Base: 0.3},
			},
			System: "quantum",
		},
	}
}

// TestEvaluate_LegacyDispatch verifies the sentinel routing signal for
// non-declarative segments.
func TestEvaluate_LegacyDispatch(t *testing.T) {
	e := resolve.New(resolve.Options{Seed: 1})

	_, err := e.Evaluate(nil, quietCtx(0))
	assert.ErrorIs(t, err, blueprint.ErrLegacySegment)

	legacy := &blueprint.Segment{Kind: blueprint.KindLegacy, Duration: 10}
	_, err = e.Evaluate(legacy, quietCtx(0))
	assert.ErrorIs(t, err, blueprint.ErrLegacySegment,
		"legacy segments route to the fallback evaluator, never crash")
}

// TestEvaluate_FullFrame verifies the evaluator assembles every section of
// the output frame.
func TestEvaluate_FullFrame(t *testing.T) {
	e := resolve.New(resolve.Options{Seed: 1})
	ctx := quietCtx(0.5)
	ctx.AbsoluteTime = 10
	ctx.CurrentSystem = "faceted"

	frame, err := e.Evaluate(declarativeSegment(), ctx)
	require.NoError(t, err)

	assert.InDelta(t, 1.2, frame.Parameters["speed"], 1e-12)
	assert.InDelta(t, 20.0, frame.Parameters["hue"], 1e-9, "wrapped hue folds into [0,360)")

	assert.Contains(t, frame.Parameters, "rot4dXW")
	assert.Contains(t, frame.Parameters, "rot4dYW")
	assert.Contains(t, frame.Parameters, "rot4dZW")
	assert.Contains(t, frame.Parameters, "rot4dTwist")

	require.NotNil(t, frame.Geometry)
	assert.GreaterOrEqual(t, *frame.Geometry, 0)

	require.Contains(t, frame.Custom, "warp")
	assert.InDelta(t, 0.3, frame.Custom["warp"].Value, 1e-12)
	assert.NotNil(t, frame.Custom["warp"].Spec, "custom values carry their definition")

	for _, key := range []string{"cameraOrbit", "layerPulse", "glitch", "vignette"} {
		assert.Contains(t, frame.Extended, key)
	}

	assert.Equal(t, "quantum", frame.System, "segment selector wins over context system")
}

// TestEvaluate_SpeedBaseAtZeroEdge pins the zero edge: progress 0,
// silent audio, absoluteTime 0 resolves speed to its base within 1e-6.
func TestEvaluate_SpeedBaseAtZeroEdge(t *testing.T) {
	e := resolve.New(resolve.Options{Seed: 9})
	seg := declarativeSegment()
	ctx := &blueprint.Context{Progress: 0, AbsoluteTime: 0, BPM: 120}

	frame, err := e.Evaluate(seg, ctx)
	require.NoError(t, err)
	assert.InDelta(t, seg.Effects.Params["speed"].Base, frame.Parameters["speed"], 1e-6)
}

// TestEvaluate_SystemFallbacks verifies selector gating by the expansion
// option.
func TestEvaluate_SystemFallbacks(t *testing.T) {
	seg := declarativeSegment()
	seg.Effects.System = "polychora" // outside the base set

	ctx := quietCtx(0)
	ctx.CurrentSystem = "faceted"

	// Zero-value options permit expansion, the documented default.
	open := resolve.New(resolve.Options{Seed: 1})
	frame, err := open.Evaluate(seg, ctx)
	require.NoError(t, err)
	assert.Equal(t, "polychora", frame.System)

	closed := resolve.New(resolve.Options{Seed: 1, DisallowSystemExpansion: true})
	frame, err = closed.Evaluate(seg, ctx)
	require.NoError(t, err)
	assert.Equal(t, "faceted", frame.System, "expansion selectors fall back when gated")

	seg.Effects.System = ""
	frame, err = closed.Evaluate(seg, ctx)
	require.NoError(t, err)
	assert.Equal(t, "faceted", frame.System, "empty selector keeps the current system")
}

// TestEvaluate_AbsentSectionsSkipped verifies a minimal segment produces a
// minimal frame: no geometry, no extended maps, no custom values.
func TestEvaluate_AbsentSectionsSkipped(t *testing.T) {
	e := resolve.New(resolve.Options{Seed: 1})
	seg := &blueprint.Segment{
		Kind:     blueprint.KindDeclarative,
		Duration: 10,
		Effects: blueprint.EffectSet{
			Params: map[string]*blueprint.ParamSpec{"speed": blueprint.Lit(1)},
		},
	}

	frame, err := e.Evaluate(seg, quietCtx(0.3))
	require.NoError(t, err)
	assert.Nil(t, frame.Geometry)
	assert.Nil(t, frame.Custom)
	assert.Nil(t, frame.Extended)
	assert.Len(t, frame.Parameters, 1)
}

// TestEvaluate_DeterministicWithoutRNGStages verifies repeated evaluation
// of an RNG-free segment is bit-identical: the per-frame path is pure.
func TestEvaluate_DeterministicWithoutRNGStages(t *testing.T) {
	e := resolve.New(resolve.Options{Seed: 3})
	seg := declarativeSegment()
	ctx := quietCtx(0.42)
	ctx.AbsoluteTime = 7.7
	ctx.Audio = blueprint.AudioFrame{Bass: 0.4, Mid: 0.3, High: 0.2, Energy: 0.5}

	first, err := e.Evaluate(seg, ctx)
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		again, err := e.Evaluate(seg, ctx)
		require.NoError(t, err)
		require.Equal(t, first.Parameters, again.Parameters, "evaluation %d diverged", i)
		require.Equal(t, first.Extended, again.Extended)
	}
}
