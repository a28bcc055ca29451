// Package palette samples a continuous position over an ordered sequence of
// discrete values, interpolating between neighbors for smooth transitions.
//
// What:
//
//   - Sample maps a float position onto a palette: exact element at integer
//     positions, linear interpolation on the fractional part, clamped to the
//     end elements for out-of-range positions.
//   - SampleInt rounds the sampled value to the nearest integer index.
//   - DefaultGeometry returns the 8-slot fallback palette callers substitute
//     when a configured palette is empty.
//
// Contract:
//
//   - Callers guarantee a non-empty palette (precondition); Sample on an
//     empty slice returns 0 rather than panicking, but upstream code must
//     substitute DefaultGeometry before reaching this point.
//
// Complexity: O(1) per call, zero allocations.
package palette
