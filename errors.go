package spatialhasher

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedPoint is matched (via errors.Is) by every error returned
	// when decoding a point from a structured or binary record.
	ErrMalformedPoint = errors.New("malformed point")
)

// MissingCoordinateError indicates a record without one of the x, y or z fields.
type MissingCoordinateError struct {
	Axis string
}

func (e *MissingCoordinateError) Error() string {
	return fmt.Sprintf("malformed point: missing coordinate %q", e.Axis)
}

func (e *MissingCoordinateError) Unwrap() error { return ErrMalformedPoint }

// InvalidCoordinateError indicates a coordinate field that is present but not a number.
//
// The underlying parse error is returned unchanged by errors.Unwrap.
type InvalidCoordinateError struct {
	Axis  string
	cause error
}

func (e *InvalidCoordinateError) Error() string {
	return fmt.Sprintf("malformed point: invalid coordinate %q: %v", e.Axis, e.cause)
}

func (e *InvalidCoordinateError) Unwrap() error { return e.cause }

// Is makes errors.Is(err, ErrMalformedPoint) hold while Unwrap keeps the cause.
func (e *InvalidCoordinateError) Is(target error) bool { return target == ErrMalformedPoint }

// malformed wraps a decoder-level failure (bad framing, wrong type) so it
// matches ErrMalformedPoint and still unwraps to the library error.
func malformed(err error) error {
	if err == nil {
		return nil
	}
	var mc *MissingCoordinateError
	if errors.As(err, &mc) {
		return err
	}
	var ic *InvalidCoordinateError
	if errors.As(err, &ic) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrMalformedPoint, err)
}
