// SPDX-License-Identifier: MIT

package scalar

import "math"

// isqrt returns ⌊√n⌋.
// A float64 estimate is corrected by at most a few steps either way; the
// estimate is capped at MaxUint32 so r*r never wraps.
func isqrt(n uint64) uint64 {
	if n < 2 {
		return n
	}
	r := uint64(math.Sqrt(float64(n)))
	if r > math.MaxUint32 {
		r = math.MaxUint32
	}
	for r*r > n {
		r--
	}
	for r < math.MaxUint32 && (r+1)*(r+1) <= n {
		r++
	}
	return r
}
