// Package resolve evaluates declarative effect descriptors into concrete
// per-frame parameter values.
//
// What:
//
//   - ResolveParam: one descriptor + one context → one number, in a fixed
//     twelve-step order (literal short-circuit, base, eased range, path
//     override, drift, pre-audio wrap, global-phase modulation, automation
//     override, midpoint bump, audio weighting, clamps, post-clamp wrap).
//   - Engine: the top-level blueprint evaluator. Evaluate orchestrates the
//     parameter resolver, the geometry resolver and the composite effect
//     resolvers (rotation field, camera orbit, layer pulse, glitch,
//     vignette) into a single resolved Frame per instant.
//
// Why:
//
//   - The per-frame path must reconcile several simultaneous value sources
//     (time-based easing, audio energy bands, seeded randomness, periodic
//     modulation) into bounded, numerically stable outputs inside a
//     real-time budget. Everything here is pure arithmetic over the inputs;
//     the only mutable state is the engine's private RNG, consumed solely by
//     the geometry resolver's energy-break and peak re-picks.
//
// Concurrency:
//
//   - One Evaluate call in flight per Engine. Engines are independent: each
//     owns its RNG and receives immutable segment snapshots, so concurrent
//     engines need no locking.
//
// Errors:
//
//   - blueprint.ErrLegacySegment from Evaluate is a dispatch signal ("use
//     the legacy evaluator"), never a failure. Nothing else on the
//     resolution path can fail: malformed optional config degrades to
//     documented defaults.
//
// Complexity: O(parameters + spikes) per Evaluate call, small constants.
package resolve
