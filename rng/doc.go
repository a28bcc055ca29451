// Package rng provides a deterministic 32-bit-state pseudo-random stream
// (Mulberry32) for blueprint generation and stochastic in-segment events.
//
// What:
//
//   - Generator produces floats in [0,1) from a single mutable 32-bit state.
//   - Two generators built with the same seed and invoked the same number
//     of times produce identical sequences, across platforms.
//   - DeriveSeed mixes a parent seed with a stream id into a decorrelated
//     child seed (SplitMix-style avalanche), for independent substreams.
//
// Why:
//
//   - Reproducible choreography: the same seed replays the same blueprint
//     and the same glitch/geometry re-picks, call for call.
//   - A tiny fixed mixing function keeps the stream identical regardless of
//     Go runtime version, unlike math/rand's unspecified source.
//
// Concurrency:
//
//   - Generator is NOT goroutine-safe. Each engine instance owns exactly
//     one; never share a Generator across concurrent engines.
//
// Complexity: O(1) per draw, zero allocations.
package rng
