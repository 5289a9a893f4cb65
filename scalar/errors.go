// SPDX-License-Identifier: MIT
// Package scalar: sentinel error set.
// Every message is prefixed with "scalar: ". Strategies wrap these with the
// failing operation via scalarErrorf; callers match with errors.Is.

package scalar

import (
	"errors"
	"fmt"
)

var (
	// ErrOverflow reports a checked operation whose exact result is not
	// representable in the scalar type.
	ErrOverflow = errors.New("scalar: arithmetic overflow")

	// ErrDivideByZero reports a checked division by a zero divisor.
	ErrDivideByZero = errors.New("scalar: division by zero")

	// ErrInvalidArgument reports an argument outside an operation's domain,
	// e.g. the square root of a negative value.
	ErrInvalidArgument = errors.New("scalar: invalid argument")

	// ErrNotImplemented reports a primitive the strategy does not provide
	// (e.g. square root for arbitrary-precision decimals).
	ErrNotImplemented = errors.New("scalar: operation not implemented")

	// ErrSyntax reports text that does not spell a value of the scalar type.
	ErrSyntax = errors.New("scalar: invalid syntax")
)

func scalarErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
