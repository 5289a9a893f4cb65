// SPDX-License-Identifier: MIT
// Package scalar_test covers the built-in strategies and the Mode/Eval plumbing.
package scalar_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JochCool/GeoLinearMath/scalar"
)

type i8 = scalar.Int[int8]

func TestInt_CheckedOverflow(t *testing.T) {
	t.Parallel()

	var n i8
	tests := []struct {
		name    string
		op      func() (int8, error)
		want    int8
		wantErr error
	}{
		{"add max+1", func() (int8, error) { return n.AddChecked(127, 1) }, 0, scalar.ErrOverflow},
		{"add min-1", func() (int8, error) { return n.AddChecked(-128, -1) }, 0, scalar.ErrOverflow},
		{"add fits", func() (int8, error) { return n.AddChecked(100, 27) }, 127, nil},
		{"sub min-1", func() (int8, error) { return n.SubChecked(-128, 1) }, 0, scalar.ErrOverflow},
		{"sub 0-min", func() (int8, error) { return n.SubChecked(0, -128) }, 0, scalar.ErrOverflow},
		{"sub fits", func() (int8, error) { return n.SubChecked(-1, -128) }, 127, nil},
		{"mul 16*8", func() (int8, error) { return n.MulChecked(16, 8) }, 0, scalar.ErrOverflow},
		{"mul -16*8", func() (int8, error) { return n.MulChecked(-16, 8) }, -128, nil},
		{"mul min*-1", func() (int8, error) { return n.MulChecked(-128, -1) }, 0, scalar.ErrOverflow},
		{"mul -1*min", func() (int8, error) { return n.MulChecked(-1, -128) }, 0, scalar.ErrOverflow},
		{"mul zero", func() (int8, error) { return n.MulChecked(0, -128) }, 0, nil},
		{"quo min/-1", func() (int8, error) { return n.QuoChecked(-128, -1) }, 0, scalar.ErrOverflow},
		{"quo by zero", func() (int8, error) { return n.QuoChecked(5, 0) }, 0, scalar.ErrDivideByZero},
		{"quo truncates", func() (int8, error) { return n.QuoChecked(-7, 2) }, -3, nil},
		{"neg min", func() (int8, error) { return n.NegChecked(-128) }, 0, scalar.ErrOverflow},
		{"neg max", func() (int8, error) { return n.NegChecked(127) }, -127, nil},
		{"abs min", func() (int8, error) { return n.AbsChecked(-128) }, 0, scalar.ErrOverflow},
		{"abs -5", func() (int8, error) { return n.AbsChecked(-5) }, 5, nil},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := tc.op()
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestInt_UncheckedWraps(t *testing.T) {
	t.Parallel()

	var n i8
	assert.Equal(t, int8(-128), n.Add(127, 1))
	assert.Equal(t, int8(127), n.Sub(-128, 1))
	assert.Equal(t, int8(-128), n.Neg(-128))
	assert.Equal(t, int8(-128), n.Abs(-128))
	assert.Equal(t, int8(-128), n.Quo(-128, -1))
	assert.Panics(t, func() { _ = n.Quo(1, 0) }, "native division by zero")
}

// TestInt_CheckedMatchesUnchecked: whenever the checked form succeeds it must
// agree with the unchecked form; whenever it fails the wide result is out of range.
func TestInt_CheckedMatchesUnchecked(t *testing.T) {
	t.Parallel()

	var n scalar.Int[int16]
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 5000; i++ {
		a := int16(rng.Intn(1<<16) - 1<<15)
		b := int16(rng.Intn(1<<16) - 1<<15)

		checks := []struct {
			wide      int64
			checked   func(int16, int16) (int16, error)
			unchecked func(int16, int16) int16
		}{
			{int64(a) + int64(b), n.AddChecked, n.Add},
			{int64(a) - int64(b), n.SubChecked, n.Sub},
			{int64(a) * int64(b), n.MulChecked, n.Mul},
		}
		for _, c := range checks {
			got, err := c.checked(a, b)
			inRange := c.wide >= math.MinInt16 && c.wide <= math.MaxInt16
			if inRange {
				require.NoError(t, err, "a=%d b=%d", a, b)
				require.Equal(t, c.unchecked(a, b), got)
			} else {
				require.ErrorIs(t, err, scalar.ErrOverflow, "a=%d b=%d", a, b)
			}
		}
	}
}

func TestInt_Sqrt(t *testing.T) {
	t.Parallel()

	var n scalar.Int[int64]
	for in, want := range map[int64]int64{0: 0, 1: 1, 15: 3, 16: 4, 24: 4, 25: 5, math.MaxInt64: 3037000499} {
		got, err := n.Sqrt(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, "sqrt(%d)", in)
		got, err = n.SqrtChecked(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := n.SqrtChecked(-4)
	require.ErrorIs(t, err, scalar.ErrInvalidArgument)
}

func TestUint_Checked(t *testing.T) {
	t.Parallel()

	var n scalar.Uint[uint8]
	_, err := n.AddChecked(200, 56)
	require.ErrorIs(t, err, scalar.ErrOverflow)
	_, err = n.SubChecked(1, 2)
	require.ErrorIs(t, err, scalar.ErrOverflow)
	_, err = n.MulChecked(16, 16)
	require.ErrorIs(t, err, scalar.ErrOverflow)
	_, err = n.NegChecked(1)
	require.ErrorIs(t, err, scalar.ErrOverflow)
	_, err = n.QuoChecked(1, 0)
	require.ErrorIs(t, err, scalar.ErrDivideByZero)

	v, err := n.NegChecked(0)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), v)
	v, err = n.MulChecked(15, 17)
	require.NoError(t, err)
	assert.Equal(t, uint8(255), v)

	assert.Equal(t, uint8(255), n.Neg(1), "unchecked negation wraps")
	assert.Equal(t, uint8(0), n.Add(255, 1))

	r, err := n.Sqrt(255)
	require.NoError(t, err)
	assert.Equal(t, uint8(15), r)

	var wide scalar.Uint[uint64]
	r64, err := wide.SqrtChecked(math.MaxUint64)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint32), r64)
}
