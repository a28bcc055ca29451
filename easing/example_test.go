package easing_test

import (
	"fmt"

	"github.com/Domusgpt/vib34d-music-video-choreographer-alternative-sub001/easing"
)

// ExampleEase demonstrates mapping segment progress through a named curve,
// the way a parameter descriptor references one.
func ExampleEase() {
	curve := easing.ParseCurve("easeOutCubic")
	for _, p := range []float64{0, 0.25, 0.5, 0.75, 1} {
		fmt.Printf("%.2f -> %.4f\n", p, easing.Ease(p, curve))
	}
	// Output:
	// 0.00 -> 0.0000
	// 0.25 -> 0.5781
	// 0.50 -> 0.8750
	// 0.75 -> 0.9844
	// 1.00 -> 1.0000
}
