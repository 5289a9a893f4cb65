// SPDX-License-Identifier: MIT

package geo

import "github.com/JochCool/GeoLinearMath/scalar"

// uncheckedEval and checkedEval select the overflow policy for one public
// entry point; the shared algorithm receives the evaluator.
func uncheckedEval[T any, N scalar.Scalar[T]]() scalar.Eval[T] {
	return scalar.NewEval[T](scalar.Unchecked[T, N]{})
}

func checkedEval[T any, N scalar.Scalar[T]]() scalar.Eval[T] {
	return scalar.NewEval[T](scalar.Checked[T, N]{})
}

// finish converts an evaluator's outcome into the (value, error) pair of a
// checked entry point, tagging the error with the operation name.
func finish[T, R any](e *scalar.Eval[T], tag string, r R) (R, error) {
	if err := e.Err(); err != nil {
		var zero R
		return zero, geoErrorf(tag, err)
	}
	return r, nil
}

// cmpClamp clamps x into [lo, hi]; when lo > hi the result is hi.
func cmpClamp[T any, N scalar.Scalar[T]](x, lo, hi T) T {
	var n N
	if n.Cmp(x, lo) < 0 {
		x = lo
	}
	if n.Cmp(x, hi) > 0 {
		x = hi
	}
	return x
}

// within reports lo ≤ x ≤ hi.
func within[T any, N scalar.Scalar[T]](x, lo, hi T) bool {
	var n N
	return n.Cmp(lo, x) <= 0 && n.Cmp(x, hi) <= 0
}
