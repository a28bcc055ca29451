package resolve_test

import (
	"fmt"

	"github.com/Domusgpt/vib34d-music-video-choreographer-alternative-sub001/blueprint"
	"github.com/Domusgpt/vib34d-music-video-choreographer-alternative-sub001/resolve"
)

// ExampleEngine_Evaluate resolves one declarative segment at its midpoint
// under a moderate audio frame.
func ExampleEngine_Evaluate() {
	seg := &blueprint.Segment{
		Kind:     blueprint.KindDeclarative,
		Duration: 16,
		Effects: blueprint.EffectSet{
			Params: map[string]*blueprint.ParamSpec{
				"speed": {Range: &[2]float64{0.8, 1.6}, Easing: "linear"},
				"hue":   {Base: 350, Drift: 30, Wrap: true},
			},
			System: "faceted",
		},
	}

	engine := resolve.New(resolve.Options{Seed: 11})
	frame, err := engine.Evaluate(seg, &blueprint.Context{
		Progress:     0.5,
		AbsoluteTime: 8,
		BPM:          124,
		Audio:        blueprint.AudioFrame{Bass: 0.4, Mid: 0.3, High: 0.2, Energy: 0.35},
	})
	if err != nil {
		fmt.Println("dispatch:", err)
		return
	}
	fmt.Printf("speed=%.2f\nhue=%.0f\nsystem=%s\n",
		frame.Parameters["speed"], frame.Parameters["hue"], frame.System)
	// Output:
	// speed=1.20
	// hue=5
	// system=faceted
}
