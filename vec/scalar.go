// Package vec provides generic 2D vector math with a type-level distinction
// between arbitrary vectors and unit-length vectors.
//
// Components may be any integer or floating type (Scalar); lengths, distances
// and unit vectors are always computed at an explicitly chosen floating
// precision (Float). A UnitVec2 can only be obtained through Normalize, so
// holding one is a guarantee that its length is 1 within floating tolerance.
package vec

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Scalar is the constraint for vector component types: any integer
// (signed or unsigned, any width) or floating type.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// SignedScalar restricts Scalar to types that can represent negative values.
// Abs requires it, so calling Abs on an unsigned vector fails to compile.
type SignedScalar interface {
	constraints.Signed | constraints.Float
}

// Float is the constraint for types that may back a UnitVec2 or hold a
// length/distance result.
type Float interface {
	constraints.Float
}

// toFloat converts a component value to the floating accumulator type F.
// The conversion fails when a finite input lands outside F's range and
// collapses to an infinity (e.g. a large float64 into float32). Infinities
// and NaN pass through unchanged.
func toFloat[F Float, T Scalar](v T) (F, error) {
	f := F(v)
	if math.IsInf(float64(f), 0) && !math.IsInf(float64(v), 0) {
		return 0, newCastError(v, f)
	}
	return f, nil
}
