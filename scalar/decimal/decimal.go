// SPDX-License-Identifier: MIT

// Package decimal adapts github.com/govalues/decimal to the scalar contract,
// giving every quantity type an arbitrary-scale decimal component:
//
//	type Money2 = geo.Vector2[dec.Decimal, decimal.Scalar]
//
// The underlying library has no wrapping arithmetic: every operation either
// produces the correctly rounded value or fails. Checked operations surface
// those failures as scalar.ErrOverflow / scalar.ErrDivideByZero. Unchecked
// operations have no native fallback and therefore panic with the same error,
// mirroring Go's own integer division by zero.
//
// Sqrt is not provided: both Sqrt and SqrtChecked return scalar.ErrNotImplemented,
// so Magnitude fails loudly while SquareMagnitude works.
package decimal

import (
	"fmt"

	dec "github.com/govalues/decimal"

	"github.com/JochCool/GeoLinearMath/locale"
	"github.com/JochCool/GeoLinearMath/scalar"
)

// Scalar is the strategy type for dec.Decimal.
type Scalar struct{}

var _ scalar.Scalar[dec.Decimal] = Scalar{}

func (Scalar) Zero() dec.Decimal                { return dec.Zero }
func (Scalar) One() dec.Decimal                 { return dec.One }
func (Scalar) Cmp(a, b dec.Decimal) int         { return a.Cmp(b) }
func (Scalar) IsZero(x dec.Decimal) bool        { return x.IsZero() }
func (Scalar) Neg(x dec.Decimal) dec.Decimal    { return x.Neg() }
func (Scalar) Abs(x dec.Decimal) dec.Decimal    { return x.Abs() }
func (Scalar) Add(a, b dec.Decimal) dec.Decimal { return must(Scalar{}.AddChecked(a, b)) }
func (Scalar) Sub(a, b dec.Decimal) dec.Decimal { return must(Scalar{}.SubChecked(a, b)) }
func (Scalar) Mul(a, b dec.Decimal) dec.Decimal { return must(Scalar{}.MulChecked(a, b)) }
func (Scalar) Quo(a, b dec.Decimal) dec.Decimal { return must(Scalar{}.QuoChecked(a, b)) }

func (Scalar) NegChecked(x dec.Decimal) (dec.Decimal, error) { return x.Neg(), nil }
func (Scalar) AbsChecked(x dec.Decimal) (dec.Decimal, error) { return x.Abs(), nil }

func (Scalar) AddChecked(a, b dec.Decimal) (dec.Decimal, error) {
	return overflow("Decimal.AddChecked")(a.Add(b))
}

func (Scalar) SubChecked(a, b dec.Decimal) (dec.Decimal, error) {
	return overflow("Decimal.SubChecked")(a.Sub(b))
}

func (Scalar) MulChecked(a, b dec.Decimal) (dec.Decimal, error) {
	return overflow("Decimal.MulChecked")(a.Mul(b))
}

func (Scalar) QuoChecked(a, b dec.Decimal) (dec.Decimal, error) {
	if b.IsZero() {
		return dec.Decimal{}, fmt.Errorf("Decimal.QuoChecked: %w", scalar.ErrDivideByZero)
	}
	return overflow("Decimal.QuoChecked")(a.Quo(b))
}

func (Scalar) Sqrt(dec.Decimal) (dec.Decimal, error) {
	return dec.Decimal{}, fmt.Errorf("Decimal.Sqrt: %w", scalar.ErrNotImplemented)
}

func (Scalar) SqrtChecked(dec.Decimal) (dec.Decimal, error) {
	return dec.Decimal{}, fmt.Errorf("Decimal.SqrtChecked: %w", scalar.ErrNotImplemented)
}

// AppendText appends x in plain (non-exponent) notation, keeping its scale,
// so "1.50" stays "1.50".
func (Scalar) AppendText(dst []byte, x dec.Decimal, nf *locale.NumberFormat) []byte {
	return nf.AppendLocalized(dst, x.String())
}

// ParseText parses text spelled with nf's symbols.
func (Scalar) ParseText(s string, nf *locale.NumberFormat) (dec.Decimal, error) {
	ascii, err := nf.Delocalize(s)
	if err != nil {
		return dec.Decimal{}, fmt.Errorf("Decimal.ParseText: %w: %w", scalar.ErrSyntax, err)
	}
	d, err := dec.Parse(ascii)
	if err != nil {
		return dec.Decimal{}, fmt.Errorf("Decimal.ParseText: %w: %w", scalar.ErrSyntax, err)
	}
	return d, nil
}

// overflow returns a mapper tagging library failures as scalar.ErrOverflow
// while keeping the library's own message in the chain.
func overflow(tag string) func(dec.Decimal, error) (dec.Decimal, error) {
	return func(d dec.Decimal, err error) (dec.Decimal, error) {
		if err != nil {
			return dec.Decimal{}, fmt.Errorf("%s: %w: %w", tag, scalar.ErrOverflow, err)
		}
		return d, nil
	}
}

func must(d dec.Decimal, err error) dec.Decimal {
	if err != nil {
		panic(err)
	}
	return d
}
