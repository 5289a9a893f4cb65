// SPDX-License-Identifier: MIT

package quantity

import (
	"fmt"

	"github.com/JochCool/GeoLinearMath/scalar"
)

// SquareMagnituder exposes the sum of squares of a quantity's components.
type SquareMagnituder[T any] interface {
	SquareMagnitude() T
	SquareMagnitudeChecked() (T, error)
}

// Magnituder exposes the Euclidean magnitude. Both forms may fail with
// scalar.ErrNotImplemented when the scalar has no square root.
type Magnituder[T any] interface {
	Magnitude() (T, error)
	MagnitudeChecked() (T, error)
}

// Quantity is a value with squared magnitude and magnitude.
type Quantity[T any] interface {
	SquareMagnituder[T]
	Magnituder[T]
}

// Reciprocator computes a multiplicative inverse without overflow checks.
type Reciprocator[Q any] interface {
	Reciprocal() Q
}

// Invertible is a Reciprocator that also offers a checked form.
type Invertible[Q any] interface {
	Reciprocator[Q]
	ReciprocalChecked() (Q, error)
}

// Magnitude returns √(q.SquareMagnitude()) using R's unchecked square root.
// Complexity: one squared magnitude plus one square root.
func Magnitude[T any, R scalar.Rooter[T]](q SquareMagnituder[T]) (T, error) {
	var r R
	m, err := r.Sqrt(q.SquareMagnitude())
	if err != nil {
		return m, fmt.Errorf("quantity.Magnitude: %w", err)
	}
	return m, nil
}

// MagnitudeChecked returns √(q.SquareMagnitudeChecked()) using R's checked
// square root. Overflow while squaring surfaces as scalar.ErrOverflow.
func MagnitudeChecked[T any, R scalar.Rooter[T]](q SquareMagnituder[T]) (T, error) {
	var r R
	sq, err := q.SquareMagnitudeChecked()
	if err != nil {
		return sq, fmt.Errorf("quantity.MagnitudeChecked: %w", err)
	}
	m, err := r.SqrtChecked(sq)
	if err != nil {
		return m, fmt.Errorf("quantity.MagnitudeChecked: %w", err)
	}
	return m, nil
}

// Compare orders a and b by magnitude via their unchecked squared magnitudes,
// returning -1, 0 or +1.
func Compare[T any, A scalar.Arithmetic[T]](a, b SquareMagnituder[T]) int {
	var ar A
	return ar.Cmp(a.SquareMagnitude(), b.SquareMagnitude())
}

// Less reports whether a is shorter than b; see Compare.
func Less[T any, A scalar.Arithmetic[T]](a, b SquareMagnituder[T]) bool {
	return Compare[T, A](a, b) < 0
}

// CompareChecked is Compare using checked squared magnitudes.
func CompareChecked[T any, A scalar.Arithmetic[T]](a, b SquareMagnituder[T]) (int, error) {
	var ar A
	sa, err := a.SquareMagnitudeChecked()
	if err != nil {
		return 0, fmt.Errorf("quantity.CompareChecked: %w", err)
	}
	sb, err := b.SquareMagnitudeChecked()
	if err != nil {
		return 0, fmt.Errorf("quantity.CompareChecked: %w", err)
	}
	return ar.Cmp(sa, sb), nil
}

// Longest returns the index of the quantity with the greatest magnitude
// (first one on ties), or -1 for an empty list. Checked squared magnitudes are
// used so an overflowing candidate is reported instead of mis-ranked.
func Longest[T any, A scalar.Arithmetic[T], Q SquareMagnituder[T]](qs ...Q) (int, error) {
	var ar A
	best := -1
	var bestSq T
	for i, q := range qs {
		sq, err := q.SquareMagnitudeChecked()
		if err != nil {
			return -1, fmt.Errorf("quantity.Longest[%d]: %w", i, err)
		}
		if best < 0 || ar.Cmp(sq, bestSq) > 0 {
			best, bestSq = i, sq
		}
	}
	return best, nil
}

// AsInvertible adapts a Reciprocator into an Invertible whose checked form
// delegates to the unchecked one. Types whose reciprocal can overflow on its
// own (through an internal division) implement ReciprocalChecked themselves.
func AsInvertible[Q any](r Reciprocator[Q]) Invertible[Q] {
	return defaultInvertible[Q]{r}
}

type defaultInvertible[Q any] struct {
	Reciprocator[Q]
}

func (d defaultInvertible[Q]) ReciprocalChecked() (Q, error) {
	return d.Reciprocal(), nil
}
