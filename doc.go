// Package choreographer turns declarative choreography blueprints into
// per-frame visual parameters driven by music.
//
// 🚀 What is this module?
//
//	A deterministic, audio-reactive evaluation engine:
//		• Blueprints: ordered segments, each carrying a declarative effect set
//		• Descriptors: base/range/drift/modulation/audio-weighted parameters
//		• Composites: geometry index, 4D rotation, camera orbit, layer pulse,
//		  glitch and vignette resolvers
//		• Timeline: seeded blueprint synthesis from an energy profile or a
//		  musical phase arc
//		• Tooling: choreoctl generates blueprints from YAML show configs and
//		  previews them along a synthetic audio sweep
//
// ✨ Why this engine?
//
//   - Deterministic – explicit seeds, replayable runs, no global state
//   - Tolerant – malformed blueprint fields degrade to defaults, never crash
//   - Frame-budget friendly – the per-frame path is pure and allocation-light
//
// Under the hood, everything is organized under small subpackages:
//
//	blueprint/ — segment schema, tolerant JSON codec, evaluation context
//	easing/    — the interpolation curve set
//	palette/   — geometry index palettes and fractional sampling
//	resolve/   — the per-frame evaluator (parameters, geometry, rotation,
//	             extended composites)
//	rng/       — seeded Mulberry32 stream with derived child seeds
//	timeline/  — blueprint generation from energy profiles
//	cmd/       — the choreoctl CLI
//
// Start with timeline.Generator to synthesize a blueprint, then feed each
// frame through resolve.Engine.Evaluate.
package choreographer
