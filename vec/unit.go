package vec

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// UnitVec2 is a 2D vector whose length is 1 within floating tolerance. The
// fields are unexported and there is no mutator: the only way to obtain one
// is Normalize (directly or via the convenience constructors), so the
// invariant is established exactly once, at construction.
type UnitVec2[F Float] struct {
	x, y F
}

// X returns the first component.
func (u UnitVec2[F]) X() F { return u.x }

// Y returns the second component.
func (u UnitVec2[F]) Y() F { return u.y }

// AsVec2 downgrades u to an ordinary vector, discarding the unit-length
// guarantee. The result may be mutated or scaled freely; nothing about it is
// re-validated.
func (u UnitVec2[F]) AsVec2() Vec2[F] {
	return Vec2[F]{u.x, u.y}
}

// ApproxEqual reports whether u and o match component-wise within tol.
func (u UnitVec2[F]) ApproxEqual(o UnitVec2[F], tol float64) bool {
	return scalarsEqual(u.x, o.x, tol) && scalarsEqual(u.y, o.y, tol)
}

// Normalize scales v to unit length at floating precision F.
//
// It fails with ErrZeroLength when v has exactly zero length, and with a
// CastError when a component of v is not representable in F or the length
// computation overflows F. Dividing by the length is only ever done with a
// finite, nonzero divisor, so the result's unit-length invariant holds for
// every success. No other code path constructs a UnitVec2.
func Normalize[F Float, T Scalar](v Vec2[T]) (UnitVec2[F], error) {
	length, err := Length[F](v)
	if err != nil {
		return UnitVec2[F]{}, err
	}
	if length == 0 {
		return UnitVec2[F]{}, ErrZeroLength
	}
	x, err := toFloat[F](v[0])
	if err != nil {
		return UnitVec2[F]{}, err
	}
	y, err := toFloat[F](v[1])
	if err != nil {
		return UnitVec2[F]{}, err
	}
	// A non-finite length only survives Length when a component is itself
	// infinite or NaN; x/length would be NaN or 0, not a direction.
	if !isFinite(length) || math.IsNaN(float64(length)) {
		return UnitVec2[F]{}, newOverflowError(x, y)
	}
	return UnitVec2[F]{x: x / length, y: y / length}, nil
}

// NewUnit builds the vector (x, y) and normalizes it. Same failure modes as
// Normalize.
func NewUnit[F Float, T Scalar](x, y T) (UnitVec2[F], error) {
	return Normalize[F](New(x, y))
}

// UnitFromVec2 normalizes an existing vector. Same failure modes as
// Normalize.
func UnitFromVec2[F Float, T Scalar](v Vec2[T]) (UnitVec2[F], error) {
	return Normalize[F](v)
}

// Must unwraps a (UnitVec2, error) pair, panicking on error. It is the
// explicit escape hatch for callers with inputs known to be valid, typically
// package-level direction constants.
func Must[F Float](u UnitVec2[F], err error) UnitVec2[F] {
	if err != nil {
		panic(err)
	}
	return u
}

// scalarsEqual compares two floating components at float64 precision.
func scalarsEqual[F Float](a, b F, tol float64) bool {
	return scalar.EqualWithinAbs(float64(a), float64(b), tol)
}
