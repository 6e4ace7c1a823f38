package vec

import "math"

// Vec2Like is the capability shared by every 2-component vector type in this
// package: it exposes an x and a y component of some Scalar type. Length,
// Distance and Abs are defined over it, so they apply uniformly to Vec2 and
// UnitVec2.
type Vec2Like[T Scalar] interface {
	X() T
	Y() T
}

// Vec2 is an arbitrary 2D vector. It carries no invariant: construct it
// directly, mutate its elements, copy it freely.
type Vec2[T Scalar] [2]T

// New returns the vector (x, y).
func New[T Scalar](x, y T) Vec2[T] {
	return Vec2[T]{x, y}
}

// FromArray converts a fixed-size component pair into a vector.
func FromArray[T Scalar](a [2]T) Vec2[T] {
	return Vec2[T](a)
}

// X returns the first component.
func (v Vec2[T]) X() T { return v[0] }

// Y returns the second component.
func (v Vec2[T]) Y() T { return v[1] }

// Length returns the Euclidean length of v, computed in the floating type F.
// Components are converted to F before squaring; an unrepresentable component
// yields a CastError.
func Length[F Float, T Scalar](v Vec2Like[T]) (F, error) {
	sq, err := LengthSquared[F](v)
	if err != nil {
		return 0, err
	}
	return F(math.Sqrt(float64(sq))), nil
}

// LengthSquared returns the squared Euclidean length of v in the floating
// type F, avoiding the square root. Same failure modes as Length: a component
// that is not representable in F, or a squared sum that overflows F even
// though the components themselves fit.
func LengthSquared[F Float, T Scalar](v Vec2Like[T]) (F, error) {
	x, err := toFloat[F](v.X())
	if err != nil {
		return 0, err
	}
	y, err := toFloat[F](v.Y())
	if err != nil {
		return 0, err
	}
	sq := x*x + y*y
	if math.IsInf(float64(sq), 0) && isFinite(x) && isFinite(y) {
		return 0, newOverflowError(x, y)
	}
	return sq, nil
}

// Distance returns the Euclidean distance between a and b, computed in the
// floating type F. Components are converted to F before differencing so that
// unsigned component types cannot wrap around.
func Distance[F Float, T Scalar](a, b Vec2Like[T]) (F, error) {
	ax, err := toFloat[F](a.X())
	if err != nil {
		return 0, err
	}
	ay, err := toFloat[F](a.Y())
	if err != nil {
		return 0, err
	}
	bx, err := toFloat[F](b.X())
	if err != nil {
		return 0, err
	}
	by, err := toFloat[F](b.Y())
	if err != nil {
		return 0, err
	}
	dx := bx - ax
	dy := by - ay
	sq := dx*dx + dy*dy
	if math.IsInf(float64(sq), 0) && isFinite(ax) && isFinite(ay) && isFinite(bx) && isFinite(by) {
		return 0, newOverflowError(dx, dy)
	}
	return F(math.Sqrt(float64(sq))), nil
}

// isFinite reports whether f is not an infinity. NaN counts as finite here:
// it propagates through arithmetic rather than signaling overflow.
func isFinite[F Float](f F) bool {
	return !math.IsInf(float64(f), 0)
}

// Abs returns the component-wise absolute value of v. The SignedScalar
// constraint rejects unsigned component types at compile time.
func Abs[T SignedScalar](v Vec2Like[T]) Vec2[T] {
	x, y := v.X(), v.Y()
	if x < 0 {
		x = -x
	}
	if y < 0 {
		y = -y
	}
	return Vec2[T]{x, y}
}

// ApproxEqual reports whether a and b match component-wise within tol.
func ApproxEqual[F Float](a, b Vec2[F], tol float64) bool {
	return scalarsEqual(a[0], b[0], tol) && scalarsEqual(a[1], b[1], tol)
}
