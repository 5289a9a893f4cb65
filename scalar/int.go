// SPDX-License-Identifier: MIT

package scalar

import (
	"cmp"
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/JochCool/GeoLinearMath/locale"
)

// Int is the strategy for signed machine integers.
//
// Unchecked operations wrap in two's complement exactly like Go's operators;
// Quo panics on a zero divisor, as Go does. Checked operations report
// ErrOverflow for wrapped results (including MinInt / -1 and -MinInt) and
// ErrDivideByZero for zero divisors. Sqrt is the floor integer square root.
type Int[T constraints.Signed] struct{}

func (Int[T]) Zero() T             { return 0 }
func (Int[T]) One() T              { return 1 }
func (Int[T]) Cmp(a, b T) int      { return cmp.Compare(a, b) }
func (Int[T]) IsZero(x T) bool     { return x == 0 }
func (Int[T]) Add(a, b T) T        { return a + b }
func (Int[T]) Sub(a, b T) T        { return a - b }
func (Int[T]) Mul(a, b T) T        { return a * b }
func (Int[T]) Quo(a, b T) T        { return a / b }
func (Int[T]) Neg(x T) T           { return -x }
func (Int[T]) Abs(x T) T           { return absSigned(x) }
func (Int[T]) Sqrt(x T) (T, error) { return sqrtSigned(x) }

func (Int[T]) SqrtChecked(x T) (T, error) { return sqrtSigned(x) }

// AddChecked returns a+b or ErrOverflow.
// The sum wrapped iff adding a positive b made it smaller (or a negative b larger).
func (Int[T]) AddChecked(a, b T) (T, error) {
	r := a + b
	if (b > 0 && r < a) || (b < 0 && r > a) {
		return 0, scalarErrorf("Int.AddChecked", ErrOverflow)
	}
	return r, nil
}

// SubChecked returns a-b or ErrOverflow.
func (Int[T]) SubChecked(a, b T) (T, error) {
	r := a - b
	if (b > 0 && r > a) || (b < 0 && r < a) {
		return 0, scalarErrorf("Int.SubChecked", ErrOverflow)
	}
	return r, nil
}

// MulChecked returns a*b or ErrOverflow.
// Stage 1: zero short-circuit; Stage 2: the MinInt × -1 corner, which
// survives the division test; Stage 3: r/b must give a back.
func (Int[T]) MulChecked(a, b T) (T, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if (a == -1 && isMinSigned(b)) || (b == -1 && isMinSigned(a)) {
		return 0, scalarErrorf("Int.MulChecked", ErrOverflow)
	}
	r := a * b
	if r/b != a {
		return 0, scalarErrorf("Int.MulChecked", ErrOverflow)
	}
	return r, nil
}

// QuoChecked returns a/b (truncated toward zero), ErrDivideByZero or ErrOverflow.
func (Int[T]) QuoChecked(a, b T) (T, error) {
	if b == 0 {
		return 0, scalarErrorf("Int.QuoChecked", ErrDivideByZero)
	}
	if b == -1 && isMinSigned(a) {
		return 0, scalarErrorf("Int.QuoChecked", ErrOverflow)
	}
	return a / b, nil
}

// NegChecked returns -x or ErrOverflow for MinInt.
func (Int[T]) NegChecked(x T) (T, error) {
	if isMinSigned(x) {
		return 0, scalarErrorf("Int.NegChecked", ErrOverflow)
	}
	return -x, nil
}

// AbsChecked returns |x| or ErrOverflow for MinInt.
func (Int[T]) AbsChecked(x T) (T, error) {
	if isMinSigned(x) {
		return 0, scalarErrorf("Int.AbsChecked", ErrOverflow)
	}
	return absSigned(x), nil
}

// AppendText appends the base-10 spelling of x, localized through nf.
func (Int[T]) AppendText(dst []byte, x T, nf *locale.NumberFormat) []byte {
	var buf [24]byte
	return nf.AppendLocalized(dst, string(strconv.AppendInt(buf[:0], int64(x), 10)))
}

// ParseText parses a base-10 integer spelled with nf's symbols.
// Out-of-range values report ErrOverflow, anything else ErrSyntax.
func (Int[T]) ParseText(s string, nf *locale.NumberFormat) (T, error) {
	ascii, err := nf.Delocalize(s)
	if err != nil {
		return 0, scalarErrorf("Int.ParseText", fmt.Errorf("%w: %w", ErrSyntax, err))
	}
	v, err := strconv.ParseInt(ascii, 10, bitSize[T]())
	if err != nil {
		return 0, scalarErrorf("Int.ParseText", parseError(err))
	}
	return T(v), nil
}

// isMinSigned reports whether x is the most negative value of its type,
// the only non-zero value equal to its own negation.
func isMinSigned[T constraints.Signed](x T) bool {
	return x < 0 && -x < 0
}

func absSigned[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func sqrtSigned[T constraints.Signed](x T) (T, error) {
	if x < 0 {
		return 0, scalarErrorf("Int.Sqrt", ErrInvalidArgument)
	}
	return T(isqrt(uint64(x))), nil
}

// bitSize returns the width of T in bits, as strconv expects it.
func bitSize[T constraints.Integer | constraints.Float]() int {
	return reflect.TypeFor[T]().Bits()
}

// parseError maps strconv failures onto the package sentinels.
func parseError(err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return fmt.Errorf("%w: %w", ErrOverflow, err)
	}
	return fmt.Errorf("%w: %w", ErrSyntax, err)
}
