// SPDX-License-Identifier: MIT
package scalar_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JochCool/GeoLinearMath/scalar"
)

func TestFloat_Checked(t *testing.T) {
	t.Parallel()

	var n scalar.Float[float32]
	_, err := n.MulChecked(math.MaxFloat32, 2)
	require.ErrorIs(t, err, scalar.ErrOverflow)
	_, err = n.AddChecked(math.MaxFloat32, math.MaxFloat32)
	require.ErrorIs(t, err, scalar.ErrOverflow)
	_, err = n.QuoChecked(1, 0)
	require.ErrorIs(t, err, scalar.ErrDivideByZero)
	_, err = n.SqrtChecked(-1)
	require.ErrorIs(t, err, scalar.ErrInvalidArgument)

	inf := float32(math.Inf(1))
	got, err := n.AddChecked(inf, 1)
	require.NoError(t, err, "already infinite operands are not an overflow")
	assert.True(t, math.IsInf(float64(got), 1))

	got, err = n.MulChecked(1.5, 4)
	require.NoError(t, err)
	assert.Equal(t, float32(6), got)
}

func TestFloat_Unchecked(t *testing.T) {
	t.Parallel()

	var n scalar.Float[float64]
	assert.True(t, math.IsInf(n.Quo(1, 0), 1))
	assert.True(t, math.IsInf(n.Mul(math.MaxFloat64, 2), 1))
	assert.Equal(t, 2.5, n.Abs(-2.5))
	assert.Equal(t, 0, n.Cmp(0, math.Copysign(0, -1)))
	assert.True(t, n.IsZero(math.Copysign(0, -1)))

	r, err := n.Sqrt(2.25)
	require.NoError(t, err)
	assert.Equal(t, 1.5, r)
	r, err = n.Sqrt(-1)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(r))
}
