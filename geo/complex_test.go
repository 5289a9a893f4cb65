// SPDX-License-Identifier: MIT
package geo_test

import (
	"testing"

	dec "github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JochCool/GeoLinearMath/geo"
	"github.com/JochCool/GeoLinearMath/scalar"
)

type ci8 = geo.Complex[int8, scalar.Int[int8]]

func TestComplex_Constructors(t *testing.T) {
	t.Parallel()

	assert.Equal(t, geo.ComplexI64{Real: 3, Imag: 4}, geo.NewComplex[int64, scalar.Int[int64]](3, 4))
	assert.True(t, geo.ZeroComplex[int64, scalar.Int[int64]]().IsZero())
	assert.Equal(t, geo.ComplexI64{Real: 1}, geo.OneComplex[int64, scalar.Int[int64]]())
	assert.Equal(t, geo.ComplexI64{Imag: 1}, geo.ImaginaryUnit[int64, scalar.Int[int64]]())
}

func TestComplex_Predicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		z                         geo.ComplexI64
		isReal, isImaginary, zero bool
	}{
		{geo.ComplexI64{}, true, true, true},
		{geo.ComplexI64{Real: 2}, true, false, false},
		{geo.ComplexI64{Imag: -2}, false, true, false},
		{geo.ComplexI64{Real: 1, Imag: 1}, false, false, false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.isReal, tc.z.IsReal(), "%v", tc.z)
		assert.Equal(t, tc.isImaginary, tc.z.IsImaginary(), "%v", tc.z)
		assert.Equal(t, tc.zero, tc.z.IsZero(), "%v", tc.z)
	}
}

func TestComplex_Arithmetic(t *testing.T) {
	t.Parallel()

	a, b := geo.ComplexI64{Real: 1, Imag: 2}, geo.ComplexI64{Real: 3, Imag: -4}
	assert.Equal(t, geo.ComplexI64{Real: 4, Imag: -2}, a.Add(b))
	assert.Equal(t, geo.ComplexI64{Real: -2, Imag: 6}, a.Sub(b))
	assert.Equal(t, geo.ComplexI64{Real: -1, Imag: -2}, a.Neg())
	assert.Equal(t, geo.ComplexI64{Real: 1, Imag: -2}, a.Conjugate())
	assert.Equal(t, geo.ComplexI64{Real: 11, Imag: 2}, a.Mul(b))
	assert.Equal(t, geo.ComplexI64{Real: 2, Imag: 4}, a.Scale(2))
	assert.Equal(t, geo.ComplexI64{Real: 1, Imag: -2}, b.Div(2))
	assert.Equal(t, int64(25), b.SquareMagnitude())

	i := geo.ImaginaryUnit[int64, scalar.Int[int64]]()
	assert.Equal(t, geo.ComplexI64{Real: -1}, i.Mul(i))
}

func TestComplex_Quo(t *testing.T) {
	t.Parallel()

	a, b := geo.ComplexF64{Real: 1, Imag: 2}, geo.ComplexF64{Real: 3, Imag: -4}
	p := a.Mul(b)
	assert.Equal(t, a, p.Quo(b))
	assert.Equal(t, b, p.Quo(a))

	_, err := a.QuoChecked(geo.ComplexF64{})
	require.ErrorIs(t, err, geo.ErrDivideByZero)
}

func TestComplex_Reciprocal(t *testing.T) {
	t.Parallel()

	one := geo.OneComplex[float64, scalar.Float[float64]]()
	for _, z := range []geo.ComplexF64{{Real: 1, Imag: 1}, {Real: 2}, {Imag: -4}, {Real: 0.5, Imag: -0.5}} {
		assert.Equal(t, one, z.Mul(z.Reciprocal()), "z=%v", z)
		r, err := z.ReciprocalChecked()
		require.NoError(t, err)
		assert.Equal(t, z.Reciprocal(), r)
	}

	d := cdec{Real: dec.MustNew(3, 0), Imag: dec.MustNew(4, 0)}
	assert.True(t, d.Mul(d.Reciprocal()).Equal(cdec{Real: dec.One, Imag: dec.Zero}))

	_, err := geo.ComplexI64{}.ReciprocalChecked()
	require.ErrorIs(t, err, geo.ErrDivideByZero)
}

func TestComplex_Magnitude(t *testing.T) {
	t.Parallel()

	m, err := geo.ComplexF64{Real: -3, Imag: 4}.Magnitude()
	require.NoError(t, err)
	assert.Equal(t, 5.0, m)

	_, err = ci8{Real: 100, Imag: 100}.MagnitudeChecked()
	require.ErrorIs(t, err, geo.ErrOverflow)
}

func TestComplex_CheckedOverflow(t *testing.T) {
	t.Parallel()

	big := ci8{Real: 100, Imag: 100}
	_, err := big.AddChecked(big)
	require.ErrorIs(t, err, geo.ErrOverflow)
	_, err = big.MulChecked(big)
	require.ErrorIs(t, err, geo.ErrOverflow)
	_, err = ci8{Imag: -128}.ConjugateChecked()
	require.ErrorIs(t, err, geo.ErrOverflow)
	_, err = big.MulVectorChecked(v2i8{X: 2})
	require.ErrorIs(t, err, geo.ErrOverflow)

	small := ci8{Real: 3, Imag: -4}
	sq, err := small.SquareMagnitudeChecked()
	require.NoError(t, err)
	assert.Equal(t, small.SquareMagnitude(), sq)
	p, err := small.MulChecked(ci8{Real: 1, Imag: 2})
	require.NoError(t, err)
	assert.Equal(t, small.Mul(ci8{Real: 1, Imag: 2}), p)
}

func TestComplexVectorInterop(t *testing.T) {
	t.Parallel()

	vs := []geo.Vector2I64{{X: 1, Y: 2}, {X: -3, Y: 5}, {X: 7, Y: -1}, {X: 0, Y: 4}}
	zs := []geo.ComplexI64{{Real: 2, Imag: 3}, {Real: -1, Imag: 0}, {Real: 0, Imag: 1}}

	for _, v := range vs {
		assert.Equal(t, v, v.Complex().Vector())
		for _, z := range zs {
			assert.Equal(t, v.Complex().Mul(z).Vector(), v.MulComplex(z), "v=%v z=%v", v, z)
			assert.Equal(t, z.Conjugate().Mul(v.Complex()).Vector(), z.MulVector(v), "v=%v z=%v", v, z)
		}
	}

	// Acting from the right turns counterclockwise by arg z, from the left clockwise.
	i := geo.ImaginaryUnit[int64, scalar.Int[int64]]()
	x := geo.UnitX2[int64, scalar.Int[int64]]()
	assert.Equal(t, geo.Vector2I64{Y: 1}, x.MulComplex(i))
	assert.Equal(t, geo.Vector2I64{Y: -1}, i.MulVector(x))

	// The geometric product associates with both vector actions.
	for _, a := range vs {
		for _, b := range vs {
			for _, c := range vs {
				assert.Equal(t, a.MulComplex(b.Mul(c)), a.Mul(b).MulVector(c))
			}
		}
	}
}
