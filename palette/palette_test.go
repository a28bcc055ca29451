package palette_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Domusgpt/vib34d-music-video-choreographer-alternative-sub001/palette"
)

// TestSample_EndClamps verifies pos<=0 returns the first element and
// pos>=len-1 returns the last, with no out-of-bounds access.
func TestSample_EndClamps(t *testing.T) {
	p := []float64{10, 20, 30, 40}

	assert.Equal(t, 10.0, palette.Sample(p, 0), "pos=0 returns first element")
	assert.Equal(t, 10.0, palette.Sample(p, -2.5), "negative pos clamps to first element")
	assert.Equal(t, 40.0, palette.Sample(p, 3), "pos=len-1 returns last element")
	assert.Equal(t, 40.0, palette.Sample(p, 3.7), "pos beyond last index clamps to last element")
	assert.Equal(t, 40.0, palette.Sample(p, 100), "far out-of-range pos clamps to last element")
}

// TestSample_IntegerPositionsExact verifies integer positions return the
// element exactly, with no floating drift from interpolation.
func TestSample_IntegerPositionsExact(t *testing.T) {
	p := []float64{0.3, 7.1, -2.5, 9.9, 4.4}
	for i, want := range p {
		assert.Equal(t, want, palette.Sample(p, float64(i)), "integer pos %d must be exact", i)
	}
}

// TestSample_Interpolates verifies the fractional part weights a linear
// blend between neighboring elements.
func TestSample_Interpolates(t *testing.T) {
	p := []float64{0, 10, 20}

	assert.InDelta(t, 5.0, palette.Sample(p, 0.5), 1e-12, "midpoint of first span")
	assert.InDelta(t, 2.5, palette.Sample(p, 0.25), 1e-12, "quarter of first span")
	assert.InDelta(t, 17.5, palette.Sample(p, 1.75), 1e-12, "last span still interpolates below len-1")
}

// TestSample_SingleElement covers the degenerate one-entry palette.
func TestSample_SingleElement(t *testing.T) {
	p := []float64{5}
	assert.Equal(t, 5.0, palette.Sample(p, 0))
	assert.Equal(t, 5.0, palette.Sample(p, 0.5))
	assert.Equal(t, 5.0, palette.Sample(p, -1))
}

// TestSample_EmptyDegrades documents the no-panic policy for an empty
// palette (a caller precondition violation).
func TestSample_EmptyDegrades(t *testing.T) {
	assert.Equal(t, 0.0, palette.Sample(nil, 1.5))
	assert.Equal(t, 0.0, palette.Sample([]float64{}, 0))
}

// TestSampleInt_Rounds verifies discrete index collapse.
func TestSampleInt_Rounds(t *testing.T) {
	p := []float64{0, 1, 2, 3}
	assert.Equal(t, 0, palette.SampleInt(p, 0.2))
	assert.Equal(t, 1, palette.SampleInt(p, 0.6))
	assert.Equal(t, 3, palette.SampleInt(p, 9))
}

// TestDefaultGeometry verifies the 8-slot fallback and copy semantics.
func TestDefaultGeometry(t *testing.T) {
	p := palette.DefaultGeometry()
	assert.Len(t, p, 8)
	for i := range p {
		assert.Equal(t, float64(i), p[i])
	}

	p[0] = 99
	assert.Equal(t, 0.0, palette.DefaultGeometry()[0], "callers receive independent copies")
}
