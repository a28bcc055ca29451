package resolve

import (
	"github.com/Domusgpt/vib34d-music-video-choreographer-alternative-sub001/blueprint"
)

// Parameter names the rotation field resolves into.
const (
	paramRotXW = "rot4dXW"
	paramRotYW = "rot4dYW"
	paramRotZW = "rot4dZW"
	paramTwist = "rot4dTwist"
)

// Evaluate resolves one segment at one instant into a Frame.
//
// Returns blueprint.ErrLegacySegment when seg is nil or not tagged
// declarative — a dispatch signal for callers holding a legacy evaluator,
// not a failure. Everything else succeeds: malformed optional config
// degrades to defaults inside the individual resolvers.
//
// Exactly one Evaluate call may be in flight per engine (the geometry
// resolver consumes the engine's RNG); separate engines are independent.
// Complexity: O(parameters + spikes).
func (e *Engine) Evaluate(seg *blueprint.Segment, ctx *blueprint.Context) (*blueprint.Frame, error) {
	if seg == nil || seg.Kind != blueprint.KindDeclarative {
		return nil, blueprint.ErrLegacySegment
	}

	eff := &seg.Effects
	frame := &blueprint.Frame{
		Parameters: make(map[string]float64, len(eff.Params)+4),
		System:     e.resolveSystem(eff.System, ctx),
	}

	for name, spec := range eff.Params {
		if v, ok := ResolveParam(spec, ctx); ok {
			frame.Parameters[name] = v
		}
	}

	if idx, ok := e.ResolveGeometry(eff.Geometry, ctx); ok {
		frame.Geometry = &idx
	}

	if eff.Rotation != nil {
		rot := ResolveRotation(eff.Rotation, ctx)
		frame.Parameters[paramRotXW] = rot.XW
		frame.Parameters[paramRotYW] = rot.YW
		frame.Parameters[paramRotZW] = rot.ZW
		if rot.Twist != nil {
			frame.Parameters[paramTwist] = *rot.Twist
		}
	}

	if len(eff.Custom) > 0 {
		frame.Custom = make(map[string]blueprint.CustomValue, len(eff.Custom))
		for name, spec := range eff.Custom {
			if v, ok := ResolveParam(spec, ctx); ok {
				frame.Custom[name] = blueprint.CustomValue{Value: v, Spec: spec}
			}
		}
	}

	ext := make(map[string]map[string]float64, 4)
	if m := ResolveOrbit(eff.Extended.CameraOrbit, ctx); m != nil {
		ext["cameraOrbit"] = m
	}
	if m := ResolvePulse(eff.Extended.LayerPulse, ctx); m != nil {
		ext["layerPulse"] = m
	}
	if m := ResolveGlitch(eff.Extended.Glitch, ctx); m != nil {
		ext["glitch"] = m
	}
	if m := ResolveVignette(eff.Extended.Vignette, ctx); m != nil {
		ext["vignette"] = m
	}
	if len(ext) > 0 {
		frame.Extended = ext
	}

	return frame, nil
}

// resolveSystem picks the active system: the segment's selector when
// present (and permitted), otherwise the context's current system.
func (e *Engine) resolveSystem(selector string, ctx *blueprint.Context) string {
	if selector == "" {
		return ctx.CurrentSystem
	}
	if e.opts.DisallowSystemExpansion && !baseSystems[selector] {
		return ctx.CurrentSystem
	}
	return selector
}
