package vec

import "math"

// Fast float32 approximations for hot-path callers that take many lengths per
// tick and can tolerate ~0.2% error. They avoid the float32->float64
// round trips that math.Sqrt forces. Use Length/Normalize when the unit-length
// guarantee matters.

// FastSqrt approximates sqrt(x) using the inverse square root bit trick with
// one Newton refinement step. Returns 0 for non-positive input.
func FastSqrt(x float32) float32 {
	if x <= 0 {
		return 0
	}
	i := math.Float32bits(x)
	i = 0x5f375a86 - (i >> 1)
	y := math.Float32frombits(i)
	y = y * (1.5 - 0.5*x*y*y)
	return x * y
}

// FastLength approximates the Euclidean length of v.
func FastLength(v Vec2[float32]) float32 {
	return FastSqrt(v[0]*v[0] + v[1]*v[1])
}

// FastNormalize approximately scales v to unit length. The result is an
// ordinary Vec2, not a UnitVec2: the approximation error is well above unit
// tolerance, so it carries no guarantee. A zero vector maps to zero.
func FastNormalize(v Vec2[float32]) Vec2[float32] {
	length := FastLength(v)
	if length == 0 {
		return Vec2[float32]{}
	}
	return Vec2[float32]{v[0] / length, v[1] / length}
}
