// SPDX-License-Identifier: MIT

package scalar

import (
	"cmp"
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/JochCool/GeoLinearMath/locale"
)

// Uint is the strategy for unsigned machine integers.
// Unchecked Neg wraps (0 - x); checked Neg succeeds only for zero.
type Uint[T constraints.Unsigned] struct{}

func (Uint[T]) Zero() T                    { return 0 }
func (Uint[T]) One() T                     { return 1 }
func (Uint[T]) Cmp(a, b T) int             { return cmp.Compare(a, b) }
func (Uint[T]) IsZero(x T) bool            { return x == 0 }
func (Uint[T]) Add(a, b T) T               { return a + b }
func (Uint[T]) Sub(a, b T) T               { return a - b }
func (Uint[T]) Mul(a, b T) T               { return a * b }
func (Uint[T]) Quo(a, b T) T               { return a / b }
func (Uint[T]) Neg(x T) T                  { return -x }
func (Uint[T]) Abs(x T) T                  { return x }
func (Uint[T]) AbsChecked(x T) (T, error)  { return x, nil }
func (Uint[T]) Sqrt(x T) (T, error)        { return T(isqrt(uint64(x))), nil }
func (Uint[T]) SqrtChecked(x T) (T, error) { return T(isqrt(uint64(x))), nil }

func (Uint[T]) AddChecked(a, b T) (T, error) {
	r := a + b
	if r < a {
		return 0, scalarErrorf("Uint.AddChecked", ErrOverflow)
	}
	return r, nil
}

func (Uint[T]) SubChecked(a, b T) (T, error) {
	if b > a {
		return 0, scalarErrorf("Uint.SubChecked", ErrOverflow)
	}
	return a - b, nil
}

func (Uint[T]) MulChecked(a, b T) (T, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	r := a * b
	if r/a != b {
		return 0, scalarErrorf("Uint.MulChecked", ErrOverflow)
	}
	return r, nil
}

func (Uint[T]) QuoChecked(a, b T) (T, error) {
	if b == 0 {
		return 0, scalarErrorf("Uint.QuoChecked", ErrDivideByZero)
	}
	return a / b, nil
}

func (Uint[T]) NegChecked(x T) (T, error) {
	if x != 0 {
		return 0, scalarErrorf("Uint.NegChecked", ErrOverflow)
	}
	return 0, nil
}

func (Uint[T]) AppendText(dst []byte, x T, nf *locale.NumberFormat) []byte {
	var buf [24]byte
	return nf.AppendLocalized(dst, string(strconv.AppendUint(buf[:0], uint64(x), 10)))
}

func (Uint[T]) ParseText(s string, nf *locale.NumberFormat) (T, error) {
	ascii, err := nf.Delocalize(s)
	if err != nil {
		return 0, scalarErrorf("Uint.ParseText", fmt.Errorf("%w: %w", ErrSyntax, err))
	}
	v, err := strconv.ParseUint(ascii, 10, bitSize[T]())
	if err != nil {
		return 0, scalarErrorf("Uint.ParseText", parseError(err))
	}
	return T(v), nil
}
