package palette

import "math"

// defaultGeometrySlots is the size of the fallback geometry palette.
const defaultGeometrySlots = 8

// DefaultGeometry returns the 8-slot fallback palette [0,1,...,7] used
// whenever a configured geometry palette is absent or empty. A fresh slice
// is returned each call so callers may mutate their copy freely.
func DefaultGeometry() []float64 {
	p := make([]float64, defaultGeometrySlots)
	for i := range p {
		p[i] = float64(i)
	}
	return p
}

// Sample maps a continuous position onto palette p.
//
// Policy, in order:
//   - empty palette: returns 0 (callers must have substituted a default;
//     see package doc).
//   - floor(pos) at or beyond the last index, via floor or ceil: returns
//     the last element (no out-of-bounds access).
//   - pos at or below 0: returns the first element.
//   - floor == ceil (integer pos): returns that exact element, with no
//     interpolation artifact.
//   - otherwise: linear interpolation between p[floor] and p[ceil]
//     weighted by the fractional part.
//
// Complexity: O(1).
func Sample(p []float64, pos float64) float64 {
	if len(p) == 0 {
		return 0
	}
	last := len(p) - 1

	if pos <= 0 {
		return p[0]
	}
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo >= last || hi > last {
		return p[last]
	}
	if lo == hi {
		return p[lo]
	}
	frac := pos - float64(lo)
	return p[lo] + (p[hi]-p[lo])*frac
}

// SampleInt samples p at pos and rounds to the nearest integer.
// Convenience for geometry indices, where the interpolated value must
// collapse back to a discrete slot.
// Complexity: O(1).
func SampleInt(p []float64, pos float64) int {
	return int(math.Round(Sample(p, pos)))
}
