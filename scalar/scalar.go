// SPDX-License-Identifier: MIT

package scalar

import "github.com/JochCool/GeoLinearMath/locale"

// Arithmetic is the unchecked half of the scalar contract.
// Unchecked operations never report errors; overflow behaves as the scalar
// natively does.
type Arithmetic[T any] interface {
	// Zero returns the additive identity.
	Zero() T
	// One returns the multiplicative identity.
	One() T
	// Cmp returns -1, 0 or +1 as a is less than, equal to, or greater than b.
	Cmp(a, b T) int
	// IsZero reports whether x equals Zero() exactly.
	IsZero(x T) bool

	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	Quo(a, b T) T
	Neg(x T) T
	Abs(x T) T
}

// CheckedArithmetic is the checked half of the scalar contract. Each method
// computes the same value as its unchecked twin whenever that value is
// representable, and otherwise returns ErrOverflow (or ErrDivideByZero).
type CheckedArithmetic[T any] interface {
	AddChecked(a, b T) (T, error)
	SubChecked(a, b T) (T, error)
	MulChecked(a, b T) (T, error)
	QuoChecked(a, b T) (T, error)
	NegChecked(x T) (T, error)
	AbsChecked(x T) (T, error)
}

// Rooter is the square-root primitive. Strategies without an algorithm
// return ErrNotImplemented from both methods.
type Rooter[T any] interface {
	Sqrt(x T) (T, error)
	SqrtChecked(x T) (T, error)
}

// Codec converts values to and from text. Strategies produce and consume
// ASCII numerals and let nf localize them; nil nf means invariant symbols.
// Formatted text must parse back to an equal value.
type Codec[T any] interface {
	AppendText(dst []byte, x T, nf *locale.NumberFormat) []byte
	ParseText(s string, nf *locale.NumberFormat) (T, error)
}

// Scalar is the full contract required by quantity types.
type Scalar[T any] interface {
	Arithmetic[T]
	CheckedArithmetic[T]
	Rooter[T]
	Codec[T]
}
