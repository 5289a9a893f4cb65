// SPDX-License-Identifier: MIT

package scalar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsqrt(t *testing.T) {
	t.Parallel()

	tests := []struct{ n, want uint64 }{
		{0, 0}, {1, 1}, {2, 1}, {3, 1}, {4, 2}, {99, 9}, {100, 10},
		{1<<52 + 1, 1 << 26},
		{(1<<32 - 1) * (1<<32 - 1), 1<<32 - 1},
		{math.MaxUint64, math.MaxUint32},
	}
	for _, tc := range tests {
		n, want := tc.n, tc.want
		assert.Equal(t, want, isqrt(n), "isqrt(%d)", n)
	}
}

func TestIsMinSigned(t *testing.T) {
	t.Parallel()

	assert.True(t, isMinSigned(int8(math.MinInt8)))
	assert.True(t, isMinSigned(int64(math.MinInt64)))
	assert.False(t, isMinSigned(int8(-127)))
	assert.False(t, isMinSigned(int8(0)))
}
