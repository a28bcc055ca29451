package easing

// Curve selects one of the supported easing polynomials.
//
//   - Linear        — identity; also the fallback for unknown identifiers.
//   - EaseInCubic   — x³, slow start.
//   - EaseOutCubic  — 1-(1-x)³, slow finish.
//   - EaseInOutCubic — cubic on both ends, symmetric around x=0.5.
//   - EaseOutQuad   — 1-(1-x)², gentle slow finish.
//   - EaseInOutQuad — quadratic on both ends.
type Curve int

const (
	// Linear is the identity curve and the default for unknown ids.
	Linear Curve = iota
	// EaseInCubic accelerates from zero velocity: x³.
	EaseInCubic
	// EaseOutCubic decelerates to zero velocity: 1-(1-x)³.
	EaseOutCubic
	// EaseInOutCubic accelerates then decelerates, cubic both halves.
	EaseInOutCubic
	// EaseOutQuad decelerates to zero velocity: 1-(1-x)².
	EaseOutQuad
	// EaseInOutQuad accelerates then decelerates, quadratic both halves.
	EaseInOutQuad
)

// curveNames maps the wire identifiers used by blueprint data to curves.
// Keys match the identifiers emitted by the segment builder verbatim.
var curveNames = map[string]Curve{
	"linear":         Linear,
	"easeInCubic":    EaseInCubic,
	"easeOutCubic":   EaseOutCubic,
	"easeInOutCubic": EaseInOutCubic,
	"easeOutQuad":    EaseOutQuad,
	"easeInOutQuad":  EaseInOutQuad,
}

// ParseCurve resolves a wire identifier to a Curve.
// Unknown or empty identifiers resolve to Linear (never an error):
// blueprint data degrades, it does not fail.
// Complexity: O(1).
func ParseCurve(id string) Curve {
	if c, ok := curveNames[id]; ok {
		return c
	}
	return Linear
}

// String returns the wire identifier for c.
func (c Curve) String() string {
	switch c {
	case EaseInCubic:
		return "easeInCubic"
	case EaseOutCubic:
		return "easeOutCubic"
	case EaseInOutCubic:
		return "easeInOutCubic"
	case EaseOutQuad:
		return "easeOutQuad"
	case EaseInOutQuad:
		return "easeInOutQuad"
	default:
		return "linear"
	}
}

// Ease maps progress through curve c. The input is clamped to [0,1]
// before the transform, so out-of-range callers get the endpoint value
// rather than an extrapolation.
// Complexity: O(1), no allocations.
func Ease(progress float64, c Curve) float64 {
	x := progress
	if x < 0 {
		x = 0
	} else if x > 1 {
		x = 1
	}

	switch c {
	case EaseInCubic:
		return x * x * x
	case EaseOutCubic:
		inv := 1 - x
		return 1 - inv*inv*inv
	case EaseInOutCubic:
		if x < 0.5 {
			return 4 * x * x * x
		}
		inv := -2*x + 2
		return 1 - inv*inv*inv/2
	case EaseOutQuad:
		inv := 1 - x
		return 1 - inv*inv
	case EaseInOutQuad:
		if x < 0.5 {
			return 2 * x * x
		}
		inv := -2*x + 2
		return 1 - inv*inv/2
	default:
		return x
	}
}
