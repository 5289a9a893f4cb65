// SPDX-License-Identifier: MIT
package scalar_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JochCool/GeoLinearMath/locale"
	"github.com/JochCool/GeoLinearMath/scalar"
)

var german = &locale.NumberFormat{DecimalSeparator: ",", GroupSeparator: ".", NegativeSign: "-"}

func TestCodec_RoundTrip(t *testing.T) {
	t.Parallel()

	formats := []*locale.NumberFormat{nil, locale.Invariant(), german,
		{NegativeSign: "−", ZeroDigit: '٠', DecimalSeparator: "٫"}}

	for _, nf := range formats {
		var f scalar.Float[float64]
		for _, x := range []float64{0, -0.1, 1e21, -4.5e-7, math.MaxFloat64, math.SmallestNonzeroFloat64} {
			got, err := f.ParseText(string(f.AppendText(nil, x, nf)), nf)
			require.NoError(t, err)
			assert.Equal(t, x, got)
		}

		var f32 scalar.Float[float32]
		for _, x := range []float32{0.1, -3.4e38, 1.0000001} {
			got, err := f32.ParseText(string(f32.AppendText(nil, x, nf)), nf)
			require.NoError(t, err)
			assert.Equal(t, x, got)
		}

		var i scalar.Int[int64]
		for _, x := range []int64{0, -1, math.MinInt64, math.MaxInt64} {
			got, err := i.ParseText(string(i.AppendText(nil, x, nf)), nf)
			require.NoError(t, err)
			assert.Equal(t, x, got)
		}

		var u scalar.Uint[uint32]
		for _, x := range []uint32{0, 7, math.MaxUint32} {
			got, err := u.ParseText(string(u.AppendText(nil, x, nf)), nf)
			require.NoError(t, err)
			assert.Equal(t, x, got)
		}
	}
}

func TestCodec_Localized(t *testing.T) {
	t.Parallel()

	var f scalar.Float[float64]
	assert.Equal(t, "-1,25", string(f.AppendText(nil, -1.25, german)))
	assert.Equal(t, "x:1e+21", string(f.AppendText([]byte("x:"), 1e21, nil)))

	var i scalar.Int[int32]
	assert.Equal(t, "−٤٢", string(i.AppendText(nil, -42, &locale.NumberFormat{NegativeSign: "−", ZeroDigit: '٠'})))
}

func TestCodec_ParseErrors(t *testing.T) {
	t.Parallel()

	var i8 scalar.Int[int8]
	_, err := i8.ParseText("128", nil)
	require.ErrorIs(t, err, scalar.ErrOverflow)
	_, err = i8.ParseText("1.5", nil)
	require.ErrorIs(t, err, scalar.ErrSyntax)
	_, err = i8.ParseText("", nil)
	require.ErrorIs(t, err, scalar.ErrSyntax)

	var u scalar.Uint[uint16]
	_, err = u.ParseText("-1", nil)
	require.ErrorIs(t, err, scalar.ErrSyntax)

	var f scalar.Float[float32]
	_, err = f.ParseText("1e39", nil)
	require.ErrorIs(t, err, scalar.ErrOverflow)
	_, err = f.ParseText("1.5", german)
	require.ErrorIs(t, err, scalar.ErrSyntax, "dot is not the German decimal separator")
	_, err = f.ParseText("abc", nil)
	require.ErrorIs(t, err, scalar.ErrSyntax)

	v, err := f.ParseText(" 2,5 ", german)
	require.NoError(t, err)
	assert.Equal(t, float32(2.5), v)
}
