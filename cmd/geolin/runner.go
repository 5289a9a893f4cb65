// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"

	dec "github.com/govalues/decimal"

	"github.com/JochCool/GeoLinearMath/geo"
	"github.com/JochCool/GeoLinearMath/locale"
	"github.com/JochCool/GeoLinearMath/scalar"
	"github.com/JochCool/GeoLinearMath/scalar/decimal"
)

// runner executes the subcommands for one scalar type.
type runner interface {
	norm(w io.Writer, v string) error
	product(w io.Writer, a, b string) error
	complexOp(w io.Writer, op, a, b string) error
	reformat(w io.Writer, v string, from locale.Provider) error
}

func newRunner(kind string, p locale.Provider, checked bool) (runner, error) {
	switch kind {
	case "float64":
		return engine[float64, scalar.Float[float64]]{p: p, checked: checked}, nil
	case "int64":
		return engine[int64, scalar.Int[int64]]{p: p, checked: checked}, nil
	case "int32":
		return engine[int32, scalar.Int[int32]]{p: p, checked: checked}, nil
	case "decimal":
		return engine[dec.Decimal, decimal.Scalar]{p: p, checked: checked}, nil
	}
	return nil, fmt.Errorf("unknown scalar %q (want float64, int64, int32 or decimal)", kind)
}

type engine[T any, N scalar.Scalar[T]] struct {
	p       locale.Provider
	checked bool
}

func (e engine[T, N]) scalarText(x T) string {
	var n N
	return string(n.AppendText(nil, x, locale.NumberFormatOf(e.p)))
}

// pick returns the checked result when --checked is set. Unchecked
// arithmetic panics where the scalar does natively (integer or decimal
// division by zero); pick turns that panic into an error.
func pick[R any](checked bool, unchecked func() R, withCheck func() (R, error)) (r R, err error) {
	if checked {
		return withCheck()
	}
	defer func() {
		switch p := recover().(type) {
		case nil:
		case error:
			err = fmt.Errorf("unchecked arithmetic failed (try --checked): %w", p)
		default:
			err = fmt.Errorf("unchecked arithmetic failed (try --checked): %v", p)
		}
	}()
	return unchecked(), nil
}

func (e engine[T, N]) norm(w io.Writer, s string) error {
	if v, ok := geo.TryParseVector2[T, N](s, e.p); ok {
		return e.printNorms(w, v)
	}
	v, err := geo.ParseVector3[T, N](s, e.p)
	if err != nil {
		return err
	}
	return e.printNorms(w, v)
}

// measurable is what printNorms needs from a vector.
type measurable[T any] interface {
	SquareMagnitude() T
	SquareMagnitudeChecked() (T, error)
	Magnitude() (T, error)
	MagnitudeChecked() (T, error)
	TaxicabMagnitude() T
	TaxicabMagnitudeChecked() (T, error)
}

func (e engine[T, N]) printNorms(w io.Writer, v measurable[T]) error {
	sq, err := pick(e.checked, v.SquareMagnitude, v.SquareMagnitudeChecked)
	if err != nil {
		return err
	}
	taxi, err := pick(e.checked, v.TaxicabMagnitude, v.TaxicabMagnitudeChecked)
	if err != nil {
		return err
	}
	magFn := v.Magnitude
	if e.checked {
		magFn = v.MagnitudeChecked
	}
	mag := "not available"
	switch m, err := magFn(); {
	case err == nil:
		mag = e.scalarText(m)
	case !errors.Is(err, scalar.ErrNotImplemented):
		return err
	}

	fmt.Fprintf(w, "square magnitude: %s\n", e.scalarText(sq))
	fmt.Fprintf(w, "magnitude: %s\n", mag)
	fmt.Fprintf(w, "taxicab: %s\n", e.scalarText(taxi))
	return nil
}

func (e engine[T, N]) product(w io.Writer, a, b string) error {
	va, err := geo.ParseVector2[T, N](a, e.p)
	if err != nil {
		return err
	}
	vb, err := geo.ParseVector2[T, N](b, e.p)
	if err != nil {
		return err
	}
	z, err := pick(e.checked,
		func() geo.Complex[T, N] { return va.Mul(vb) },
		func() (geo.Complex[T, N], error) { return va.MulChecked(vb) })
	if err != nil {
		return err
	}
	fmt.Fprintln(w, z.Text(e.p))
	return nil
}

func (e engine[T, N]) complexOp(w io.Writer, op, a, b string) error {
	za, err := geo.ParseComplex[T, N](a, e.p)
	if err != nil {
		return err
	}
	zb, err := geo.ParseComplex[T, N](b, e.p)
	if err != nil {
		return err
	}

	type pair struct {
		unchecked func(geo.Complex[T, N]) geo.Complex[T, N]
		checked   func(geo.Complex[T, N]) (geo.Complex[T, N], error)
	}
	ops := map[string]pair{
		"add": {za.Add, za.AddChecked},
		"sub": {za.Sub, za.SubChecked},
		"mul": {za.Mul, za.MulChecked},
		"quo": {za.Quo, za.QuoChecked},
	}
	fn, ok := ops[op]
	if !ok {
		return fmt.Errorf("unknown operation %q (want add, sub, mul or quo)", op)
	}
	z, err := pick(e.checked,
		func() geo.Complex[T, N] { return fn.unchecked(zb) },
		func() (geo.Complex[T, N], error) { return fn.checked(zb) })
	if err != nil {
		return err
	}
	fmt.Fprintln(w, z.Text(e.p))
	return nil
}

// reformat tries, in order, a 2D vector, a 3D vector and a complex number.
func (e engine[T, N]) reformat(w io.Writer, s string, from locale.Provider) error {
	if v, ok := geo.TryParseVector2[T, N](s, from); ok {
		fmt.Fprintln(w, v.Text(e.p))
		return nil
	}
	if v, ok := geo.TryParseVector3[T, N](s, from); ok {
		fmt.Fprintln(w, v.Text(e.p))
		return nil
	}
	z, err := geo.ParseComplex[T, N](s, from)
	if err != nil {
		return fmt.Errorf("%q is neither a vector nor a complex number: %w", s, err)
	}
	fmt.Fprintln(w, z.Text(e.p))
	return nil
}
