// Package timeline synthesizes choreography blueprints: it partitions a
// total duration into segments and builds each segment's declarative
// effect set from a per-segment energy level.
//
// What:
//
//   - Generator.Generate partitions a requested duration across the energy
//     profile (one segment per entry), assigns each segment an anchor hue
//     and a system, and delegates the effect set to BuildSegment.
//   - BuildSegment derives every parameter descriptor and composite config
//     as a function of (index, duration, system, energy, palette,
//     anchorHue), using the generator's seeded RNG for variation.
//   - PhaseTemplate expands a musical arc (intro/build/peak/release) into
//     an energy profile when no explicit profile is supplied.
//
// Guarantees:
//
//   - Coverage: segment spans are contiguous and sum to the requested
//     duration exactly (within 1e-6); the last segment absorbs rounding.
//   - Monotonic energy bias: higher energy strictly raises the chaos,
//     speed and grid-density bases and the glitch/camera-orbit drive. The
//     RNG draw order is independent of the energy value, so the bias
//     cannot be washed out by jitter.
//   - Determinism: same seed and options ⇒ identical blueprint.
//
// Errors:
//
//   - ErrNonPositiveDuration: requested total duration ≤ 0.
//   - ErrEmptyProfile: neither an energy profile nor a phase template was
//     supplied.
//
// Complexity: O(segments) time and memory.
package timeline
