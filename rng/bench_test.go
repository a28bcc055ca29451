package rng_test

import (
	"testing"

	"github.com/Domusgpt/vib34d-music-video-choreographer-alternative-sub001/rng"
)

// BenchmarkFloat64 measures the raw per-draw cost of the Mulberry32 mix.
func BenchmarkFloat64(b *testing.B) {
	g := rng.New(1)
	var sink float64
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = g.Float64()
	}
	_ = sink
}
