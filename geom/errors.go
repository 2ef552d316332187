package geom

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument is the only error kind raised by the point indexes.
// It signals a missing or malformed argument and is always returned before
// any mutation or traversal happens.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError describes which argument was rejected and why.
//
// It matches ErrInvalidArgument via errors.Is.
type InvalidArgumentError struct {
	Arg    string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Arg, e.Reason)
}

// Is reports whether target is ErrInvalidArgument.
func (e *InvalidArgumentError) Is(target error) bool { return target == ErrInvalidArgument }

// ValidatePoint returns an error if p cannot be used as a key or query point.
func ValidatePoint(arg string, p Point) error {
	if !p.IsFinite() {
		return &InvalidArgumentError{Arg: arg, Reason: fmt.Sprintf("coordinates of %s must be finite", p)}
	}
	return nil
}

// ValidateRect returns an error if r is not a well-formed rectangle.
// Infinite bounds are allowed, NaN bounds and inverted bounds are not.
func ValidateRect(arg string, r Rect) error {
	if math.IsNaN(r.XMin) || math.IsNaN(r.YMin) || math.IsNaN(r.XMax) || math.IsNaN(r.YMax) {
		return &InvalidArgumentError{Arg: arg, Reason: "bounds must not be NaN"}
	}
	if r.XMin > r.XMax || r.YMin > r.YMax {
		return &InvalidArgumentError{Arg: arg, Reason: fmt.Sprintf("inverted bounds %s", r)}
	}
	return nil
}
