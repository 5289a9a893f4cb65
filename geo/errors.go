// SPDX-License-Identifier: MIT
// Package geo: sentinel error set.
// Arithmetic sentinels are re-exported from package scalar so callers can
// match everything through geo; errors.Is works with either name.

package geo

import (
	"errors"
	"fmt"
	"io"

	"github.com/JochCool/GeoLinearMath/scalar"
)

var (
	// ErrOverflow is scalar.ErrOverflow: a checked result is out of range.
	ErrOverflow = scalar.ErrOverflow

	// ErrDivideByZero is scalar.ErrDivideByZero (checked division, including
	// the reciprocal of a zero vector or complex number).
	ErrDivideByZero = scalar.ErrDivideByZero

	// ErrNotImplemented is scalar.ErrNotImplemented (no square root available).
	ErrNotImplemented = scalar.ErrNotImplemented

	// ErrInvalidArgument is scalar.ErrInvalidArgument, returned e.g. when a
	// component slice does not match the vector's dimension.
	ErrInvalidArgument = scalar.ErrInvalidArgument

	// ErrFormat reports text that does not follow the configured layout:
	// missing delimiter, wrong field count, or an unparsable component.
	ErrFormat = errors.New("geo: malformed text")

	// ErrShortBuffer reports a TryFormat destination too small for the output.
	// It wraps io.ErrShortBuffer; retry with a larger buffer.
	ErrShortBuffer = fmt.Errorf("geo: destination too small: %w", io.ErrShortBuffer)
)

func geoErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
