// Package components defines the spatial value aggregates built on planar
// vectors.
package components

import "github.com/pthm-cable/planar/vec"

// Player pairs a world position with a facing direction. Position is an
// unconstrained vector; Direction is unit-length by construction. The two
// fields are independent: no cross-field constraint exists or is checked.
type Player[T vec.Scalar, F vec.Float] struct {
	Position  vec.Vec2[T]
	Direction vec.UnitVec2[F]
}

// NewPlayer builds a Player from its parts. Callers obtain Direction through
// vec.Normalize (or vec.NewUnit), which is where all validation happens.
func NewPlayer[T vec.Scalar, F vec.Float](position vec.Vec2[T], direction vec.UnitVec2[F]) Player[T, F] {
	return Player[T, F]{Position: position, Direction: direction}
}
