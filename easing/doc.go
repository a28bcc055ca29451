// Package easing maps normalized progress in [0,1] through a named
// acceleration curve back into [0,1].
//
// What:
//
//   - Ease applies one of the supported Penner polynomial curves to a
//     progress value, clamping the input to [0,1] first.
//   - ParseCurve resolves a string identifier ("easeOutCubic", ...) to a
//     Curve; unknown identifiers fall back to Linear.
//
// Why:
//
//   - Declarative parameter descriptors name their curve as data; the
//     resolver needs a pure, allocation-free mapping it can call once per
//     parameter per frame.
//
// Guarantees:
//
//   - Ease(0, c) == 0 and Ease(1, c) == 1 for every supported curve.
//   - Linear, EaseInCubic and EaseOutCubic are monotonic non-decreasing.
//   - Pure functions, no state, safe at arbitrary call frequency.
//
// Complexity: O(1) per call, zero allocations.
package easing
