// Package blueprint defines the declarative data model for a choreography
// run: an ordered sequence of time-bounded segments whose effect sets are
// resolved into concrete parameter values every frame.
//
// What:
//
//   - Blueprint: ordered Segments; slice order is playback order; spans are
//     contiguous and cover the requested total duration by construction.
//   - Segment: start offset, positive duration, and an EffectSet; tagged
//     KindDeclarative or KindLegacy exactly once at decode time, so the
//     per-frame evaluator never re-probes the structure.
//   - ParamSpec: a data-only definition of how one parameter's value is
//     computed (base, range, easing, drift, modulation, audio weights,
//     min/max clamps, wrap, path).
//   - AudioFrame / Context: the per-evaluation inputs supplied by the
//     external audio analysis collaborator and scheduler.
//   - Frame: the resolved output map handed to the rendering layer.
//
// Why:
//
//   - Blueprints travel as plain nested JSON. Decoding is tolerant by
//     contract: absent, non-object, or wrong-typed optional fields degrade
//     to documented defaults rather than failing, so a malformed blueprint
//     can never crash the per-frame path.
//
// Errors:
//
//   - ErrLegacySegment: the segment is not declarative; dispatch to another
//     evaluator. A routing signal, not a failure.
//   - ErrEmptyBlueprint: decode input held no segments.
package blueprint
