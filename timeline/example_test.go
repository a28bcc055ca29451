package timeline_test

import (
	"fmt"

	"github.com/Domusgpt/vib34d-music-video-choreographer-alternative-sub001/timeline"
)

// ExampleGenerator_Generate builds a five-segment run from an explicit
// energy profile.
func ExampleGenerator_Generate() {
	g := timeline.New(7)
	bp, err := g.Generate(timeline.GenerateOptions{
		TotalDuration: 90,
		EnergyProfile: []float64{0.2, 0.5, 0.8, 0.95, 0.4},
	})
	if err != nil {
		fmt.Println("generate:", err)
		return
	}

	fmt.Printf("segments=%d total=%.0f first=%s\n",
		len(bp.Segments), bp.TotalDuration(), bp.Segments[0].Effects.System)
	// Output:
	// segments=5 total=90 first=faceted
}
