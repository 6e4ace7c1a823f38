package vec

import (
	"errors"
	"fmt"
)

// ErrZeroLength reports an attempt to normalize a zero-length vector.
// A zero vector has no direction, so Normalize refuses to invent one.
var ErrZeroLength = errors.New("cannot normalize a zero-length vector")

// CastError reports a component value that is not representable in the
// requested floating accumulator type.
type CastError struct {
	From  string // source type name
	To    string // target type name
	Value string // offending value, formatted
}

func newCastError[T Scalar, F Float](v T, f F) *CastError {
	return &CastError{
		From:  fmt.Sprintf("%T", v),
		To:    fmt.Sprintf("%T", f),
		Value: fmt.Sprintf("%v", v),
	}
}

// newOverflowError reports a squared-magnitude accumulation that exceeded
// the range of the floating accumulator type.
func newOverflowError[F Float](x, y F) *CastError {
	t := fmt.Sprintf("%T", x)
	return &CastError{
		From:  t,
		To:    t,
		Value: fmt.Sprintf("%v^2 + %v^2", x, y),
	}
}

func (e *CastError) Error() string {
	return fmt.Sprintf("%s value %s is not representable as %s", e.From, e.Value, e.To)
}
