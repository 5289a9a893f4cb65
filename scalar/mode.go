// SPDX-License-Identifier: MIT

package scalar

// Mode is one overflow policy applied to the scalar operations. Algorithms
// written against Mode run unchanged under Unchecked and Checked, so the two
// policies can only differ in overflow behavior, never in the computation.
type Mode[T any] interface {
	Add(a, b T) (T, error)
	Sub(a, b T) (T, error)
	Mul(a, b T) (T, error)
	Quo(a, b T) (T, error)
	Neg(x T) (T, error)
	Abs(x T) (T, error)
	Sqrt(x T) (T, error)
	// Checked reports whether the policy signals overflow.
	Checked() bool
}

// Unchecked applies the strategy's native (unchecked) operations.
// Only Sqrt can fail, with ErrNotImplemented or ErrInvalidArgument.
type Unchecked[T any, N Scalar[T]] struct{}

func (Unchecked[T, N]) Add(a, b T) (T, error) { var n N; return n.Add(a, b), nil }
func (Unchecked[T, N]) Sub(a, b T) (T, error) { var n N; return n.Sub(a, b), nil }
func (Unchecked[T, N]) Mul(a, b T) (T, error) { var n N; return n.Mul(a, b), nil }
func (Unchecked[T, N]) Quo(a, b T) (T, error) { var n N; return n.Quo(a, b), nil }
func (Unchecked[T, N]) Neg(x T) (T, error)    { var n N; return n.Neg(x), nil }
func (Unchecked[T, N]) Abs(x T) (T, error)    { var n N; return n.Abs(x), nil }
func (Unchecked[T, N]) Sqrt(x T) (T, error)   { var n N; return n.Sqrt(x) }
func (Unchecked[T, N]) Checked() bool         { return false }

// Checked applies the strategy's checked operations.
type Checked[T any, N Scalar[T]] struct{}

func (Checked[T, N]) Add(a, b T) (T, error) { var n N; return n.AddChecked(a, b) }
func (Checked[T, N]) Sub(a, b T) (T, error) { var n N; return n.SubChecked(a, b) }
func (Checked[T, N]) Mul(a, b T) (T, error) { var n N; return n.MulChecked(a, b) }
func (Checked[T, N]) Quo(a, b T) (T, error) { var n N; return n.QuoChecked(a, b) }
func (Checked[T, N]) Neg(x T) (T, error)    { var n N; return n.NegChecked(x) }
func (Checked[T, N]) Abs(x T) (T, error)    { var n N; return n.AbsChecked(x) }
func (Checked[T, N]) Sqrt(x T) (T, error)   { var n N; return n.SqrtChecked(x) }
func (Checked[T, N]) Checked() bool         { return true }

// Eval evaluates a chain of Mode operations and keeps the first error.
// After a failure every further operation is skipped and returns its first
// operand, so expressions can be written inline and checked once via Err.
// The zero Eval is not usable; build one with NewEval.
type Eval[T any] struct {
	mode Mode[T]
	err  error
}

// NewEval returns an evaluator applying mode.
func NewEval[T any](mode Mode[T]) Eval[T] {
	return Eval[T]{mode: mode}
}

// Err returns the first error observed, or nil.
func (e *Eval[T]) Err() error { return e.err }

// Checked reports whether the underlying mode is checked.
func (e *Eval[T]) Checked() bool { return e.mode.Checked() }

func (e *Eval[T]) Add(a, b T) T { return e.binary(e.mode.Add, a, b) }
func (e *Eval[T]) Sub(a, b T) T { return e.binary(e.mode.Sub, a, b) }
func (e *Eval[T]) Mul(a, b T) T { return e.binary(e.mode.Mul, a, b) }
func (e *Eval[T]) Quo(a, b T) T { return e.binary(e.mode.Quo, a, b) }
func (e *Eval[T]) Neg(x T) T    { return e.unary(e.mode.Neg, x) }
func (e *Eval[T]) Abs(x T) T    { return e.unary(e.mode.Abs, x) }
func (e *Eval[T]) Sqrt(x T) T   { return e.unary(e.mode.Sqrt, x) }

// Fail records err unless an earlier error is already held. It lets callers
// fold their own validation into the chain.
func (e *Eval[T]) Fail(err error) {
	if e.err == nil {
		e.err = err
	}
}

func (e *Eval[T]) binary(op func(T, T) (T, error), a, b T) T {
	if e.err != nil {
		return a
	}
	r, err := op(a, b)
	if err != nil {
		e.err = err
		return a
	}
	return r
}

func (e *Eval[T]) unary(op func(T) (T, error), x T) T {
	if e.err != nil {
		return x
	}
	r, err := op(x)
	if err != nil {
		e.err = err
		return x
	}
	return r
}
