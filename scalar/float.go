// SPDX-License-Identifier: MIT

package scalar

import (
	"cmp"
	"fmt"
	"math"
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/JochCool/GeoLinearMath/locale"
)

// Float is the strategy for IEEE-754 floating-point types.
//
// Unchecked operations are plain IEEE-754 arithmetic (Inf and NaN propagate).
// Checked operations report ErrOverflow when finite operands produce an
// infinite result and ErrDivideByZero for a zero divisor; results that are
// already non-finite because an operand was are returned as computed.
// Sqrt uses math.Sqrt; SqrtChecked rejects negative input with
// ErrInvalidArgument where Sqrt returns NaN.
//
// Text uses the shortest representation that parses back to the same value.
type Float[T constraints.Float] struct{}

func (Float[T]) Zero() T         { return 0 }
func (Float[T]) One() T          { return 1 }
func (Float[T]) Cmp(a, b T) int  { return cmp.Compare(a, b) }
func (Float[T]) IsZero(x T) bool { return x == 0 }
func (Float[T]) Add(a, b T) T    { return a + b }
func (Float[T]) Sub(a, b T) T    { return a - b }
func (Float[T]) Mul(a, b T) T    { return a * b }
func (Float[T]) Quo(a, b T) T    { return a / b }
func (Float[T]) Neg(x T) T       { return -x }
func (Float[T]) Abs(x T) T       { return T(math.Abs(float64(x))) }

func (Float[T]) NegChecked(x T) (T, error) { return -x, nil }
func (Float[T]) AbsChecked(x T) (T, error) { return T(math.Abs(float64(x))), nil }

func (Float[T]) AddChecked(a, b T) (T, error) { return overflowed("Float.AddChecked", a+b, a, b) }
func (Float[T]) SubChecked(a, b T) (T, error) { return overflowed("Float.SubChecked", a-b, a, b) }
func (Float[T]) MulChecked(a, b T) (T, error) { return overflowed("Float.MulChecked", a*b, a, b) }

func (Float[T]) QuoChecked(a, b T) (T, error) {
	if b == 0 {
		return 0, scalarErrorf("Float.QuoChecked", ErrDivideByZero)
	}
	return overflowed("Float.QuoChecked", a/b, a, b)
}

func (Float[T]) Sqrt(x T) (T, error) {
	return T(math.Sqrt(float64(x))), nil
}

func (Float[T]) SqrtChecked(x T) (T, error) {
	if x < 0 {
		return 0, scalarErrorf("Float.SqrtChecked", ErrInvalidArgument)
	}
	return T(math.Sqrt(float64(x))), nil
}

func (Float[T]) AppendText(dst []byte, x T, nf *locale.NumberFormat) []byte {
	var buf [32]byte
	return nf.AppendLocalized(dst, string(strconv.AppendFloat(buf[:0], float64(x), 'g', -1, bitSize[T]())))
}

func (Float[T]) ParseText(s string, nf *locale.NumberFormat) (T, error) {
	ascii, err := nf.Delocalize(s)
	if err != nil {
		return 0, scalarErrorf("Float.ParseText", fmt.Errorf("%w: %w", ErrSyntax, err))
	}
	v, err := strconv.ParseFloat(ascii, bitSize[T]())
	if err != nil {
		return 0, scalarErrorf("Float.ParseText", parseError(err))
	}
	return T(v), nil
}

// overflowed returns r, or ErrOverflow when r is infinite but a and b are not.
func overflowed[T constraints.Float](tag string, r, a, b T) (T, error) {
	if math.IsInf(float64(r), 0) && !math.IsInf(float64(a), 0) && !math.IsInf(float64(b), 0) {
		return 0, scalarErrorf(tag, ErrOverflow)
	}
	return r, nil
}
