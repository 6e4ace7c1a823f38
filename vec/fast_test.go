package vec

import (
	"math"
	"testing"
)

func TestFastSqrt(t *testing.T) {
	// One Newton step keeps relative error under ~0.2%.
	inputs := []float32{0.001, 0.25, 1, 2, 10, 100, 12345.678, 1e10}
	for _, x := range inputs {
		got := float64(FastSqrt(x))
		want := math.Sqrt(float64(x))
		relErr := math.Abs(got-want) / want
		if relErr > 2e-3 {
			t.Errorf("FastSqrt(%v) = %v, want %v (rel err %v)", x, got, want, relErr)
		}
	}
}

func TestFastSqrtNonPositive(t *testing.T) {
	if got := FastSqrt(0); got != 0 {
		t.Errorf("FastSqrt(0) = %v, want 0", got)
	}
	if got := FastSqrt(-4); got != 0 {
		t.Errorf("FastSqrt(-4) = %v, want 0", got)
	}
}

func TestFastLength(t *testing.T) {
	got := float64(FastLength(New[float32](3, 4)))
	if math.Abs(got-5)/5 > 2e-3 {
		t.Errorf("FastLength(3,4) = %v, want ~5", got)
	}
}

func TestFastNormalize(t *testing.T) {
	v := FastNormalize(New[float32](3, 4))
	length := float64(FastLength(v))
	if math.Abs(length-1) > 1e-2 {
		t.Errorf("FastNormalize length = %v, want ~1", length)
	}

	if zero := FastNormalize(New[float32](0, 0)); zero != (Vec2[float32]{}) {
		t.Errorf("FastNormalize(zero) = %v, want zero", zero)
	}
}
