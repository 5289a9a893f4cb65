// SPDX-License-Identifier: MIT

package geo

import (
	"github.com/JochCool/GeoLinearMath/quantity"
	"github.com/JochCool/GeoLinearMath/scalar"
)

// Complex is the complex number Real + Imag·i over the scalar T.
// In the plane it doubles as a rotation-scale (rotor) acting on Vector2.
type Complex[T any, N scalar.Scalar[T]] struct {
	Real, Imag T
}

var _ quantity.Quantity[float64] = Complex[float64, scalar.Float[float64]]{}

var _ quantity.Invertible[Complex[float64, scalar.Float[float64]]] = Complex[float64, scalar.Float[float64]]{}

// NewComplex returns re + im·i.
func NewComplex[T any, N scalar.Scalar[T]](re, im T) Complex[T, N] {
	return Complex[T, N]{Real: re, Imag: im}
}

// ZeroComplex returns 0.
func ZeroComplex[T any, N scalar.Scalar[T]]() Complex[T, N] {
	var n N
	return Complex[T, N]{Real: n.Zero(), Imag: n.Zero()}
}

// OneComplex returns 1, the multiplicative identity.
func OneComplex[T any, N scalar.Scalar[T]]() Complex[T, N] {
	var n N
	return Complex[T, N]{Real: n.One(), Imag: n.Zero()}
}

// ImaginaryUnit returns i.
func ImaginaryUnit[T any, N scalar.Scalar[T]]() Complex[T, N] {
	var n N
	return Complex[T, N]{Real: n.Zero(), Imag: n.One()}
}

// Equal reports exact equality of both parts.
func (z Complex[T, N]) Equal(w Complex[T, N]) bool {
	var n N
	return n.Cmp(z.Real, w.Real) == 0 && n.Cmp(z.Imag, w.Imag) == 0
}

// IsReal reports whether the imaginary part is exactly zero.
func (z Complex[T, N]) IsReal() bool {
	var n N
	return n.IsZero(z.Imag)
}

// IsImaginary reports whether the real part is exactly zero.
func (z Complex[T, N]) IsImaginary() bool {
	var n N
	return n.IsZero(z.Real)
}

// IsZero reports whether both parts are exactly zero.
func (z Complex[T, N]) IsZero() bool { return z.IsReal() && z.IsImaginary() }

// Vector returns z as the plane vector (Real, Imag).
func (z Complex[T, N]) Vector() Vector2[T, N] { return Vector2[T, N]{X: z.Real, Y: z.Imag} }

func (z Complex[T, N]) add(e *scalar.Eval[T], w Complex[T, N]) Complex[T, N] {
	return Complex[T, N]{Real: e.Add(z.Real, w.Real), Imag: e.Add(z.Imag, w.Imag)}
}

func (z Complex[T, N]) sub(e *scalar.Eval[T], w Complex[T, N]) Complex[T, N] {
	return Complex[T, N]{Real: e.Sub(z.Real, w.Real), Imag: e.Sub(z.Imag, w.Imag)}
}

func (z Complex[T, N]) neg(e *scalar.Eval[T]) Complex[T, N] {
	return Complex[T, N]{Real: e.Neg(z.Real), Imag: e.Neg(z.Imag)}
}

func (z Complex[T, N]) conj(e *scalar.Eval[T]) Complex[T, N] {
	return Complex[T, N]{Real: z.Real, Imag: e.Neg(z.Imag)}
}

func (z Complex[T, N]) scale(e *scalar.Eval[T], s T) Complex[T, N] {
	return Complex[T, N]{Real: e.Mul(z.Real, s), Imag: e.Mul(z.Imag, s)}
}

func (z Complex[T, N]) div(e *scalar.Eval[T], s T) Complex[T, N] {
	return Complex[T, N]{Real: e.Quo(z.Real, s), Imag: e.Quo(z.Imag, s)}
}

func (z Complex[T, N]) sqMag(e *scalar.Eval[T]) T {
	return e.Add(e.Mul(z.Real, z.Real), e.Mul(z.Imag, z.Imag))
}

// mul is (a+bi)(c+di) = (ac−bd) + (ad+bc)i.
func (z Complex[T, N]) mul(e *scalar.Eval[T], w Complex[T, N]) Complex[T, N] {
	return Complex[T, N]{
		Real: e.Sub(e.Mul(z.Real, w.Real), e.Mul(z.Imag, w.Imag)),
		Imag: e.Add(e.Mul(z.Real, w.Imag), e.Mul(z.Imag, w.Real)),
	}
}

// quo is ((ac+bd) + (bc−ad)i) / (c²+d²); the divisor is computed in the same
// mode as the rest of the expression.
func (z Complex[T, N]) quo(e *scalar.Eval[T], w Complex[T, N]) Complex[T, N] {
	sq := w.sqMag(e)
	re := e.Add(e.Mul(z.Real, w.Real), e.Mul(z.Imag, w.Imag))
	im := e.Sub(e.Mul(z.Imag, w.Real), e.Mul(z.Real, w.Imag))
	return Complex[T, N]{Real: e.Quo(re, sq), Imag: e.Quo(im, sq)}
}

// reciprocal is conj(z) / |z|².
func (z Complex[T, N]) reciprocal(e *scalar.Eval[T]) Complex[T, N] {
	return z.conj(e).div(e, z.sqMag(e))
}

// mulVector is z·v = (a·x + b·y, a·y − b·x), i.e. conj(z)·v in complex terms.
func (z Complex[T, N]) mulVector(e *scalar.Eval[T], v Vector2[T, N]) Vector2[T, N] {
	return Vector2[T, N]{
		X: e.Add(e.Mul(z.Real, v.X), e.Mul(z.Imag, v.Y)),
		Y: e.Sub(e.Mul(z.Real, v.Y), e.Mul(z.Imag, v.X)),
	}
}

// Add returns z + w.
func (z Complex[T, N]) Add(w Complex[T, N]) Complex[T, N] {
	e := uncheckedEval[T, N]()
	return z.add(&e, w)
}

// AddChecked returns z + w or an error wrapping ErrOverflow.
func (z Complex[T, N]) AddChecked(w Complex[T, N]) (Complex[T, N], error) {
	e := checkedEval[T, N]()
	return finish(&e, "Complex.AddChecked", z.add(&e, w))
}

// Sub returns z − w.
func (z Complex[T, N]) Sub(w Complex[T, N]) Complex[T, N] {
	e := uncheckedEval[T, N]()
	return z.sub(&e, w)
}

// SubChecked returns z − w or an error wrapping ErrOverflow.
func (z Complex[T, N]) SubChecked(w Complex[T, N]) (Complex[T, N], error) {
	e := checkedEval[T, N]()
	return finish(&e, "Complex.SubChecked", z.sub(&e, w))
}

// Neg returns −z.
func (z Complex[T, N]) Neg() Complex[T, N] {
	e := uncheckedEval[T, N]()
	return z.neg(&e)
}

// NegChecked returns −z or an error wrapping ErrOverflow.
func (z Complex[T, N]) NegChecked() (Complex[T, N], error) {
	e := checkedEval[T, N]()
	return finish(&e, "Complex.NegChecked", z.neg(&e))
}

// Conjugate returns Real − Imag·i.
func (z Complex[T, N]) Conjugate() Complex[T, N] {
	e := uncheckedEval[T, N]()
	return z.conj(&e)
}

// ConjugateChecked is Conjugate reporting overflow of the negation.
func (z Complex[T, N]) ConjugateChecked() (Complex[T, N], error) {
	e := checkedEval[T, N]()
	return finish(&e, "Complex.ConjugateChecked", z.conj(&e))
}

// Scale returns z·s for a real s.
func (z Complex[T, N]) Scale(s T) Complex[T, N] {
	e := uncheckedEval[T, N]()
	return z.scale(&e, s)
}

// ScaleChecked is Scale reporting overflow.
func (z Complex[T, N]) ScaleChecked(s T) (Complex[T, N], error) {
	e := checkedEval[T, N]()
	return finish(&e, "Complex.ScaleChecked", z.scale(&e, s))
}

// Div returns z / s for a real s.
func (z Complex[T, N]) Div(s T) Complex[T, N] {
	e := uncheckedEval[T, N]()
	return z.div(&e, s)
}

// DivChecked is Div reporting overflow and division by zero.
func (z Complex[T, N]) DivChecked(s T) (Complex[T, N], error) {
	e := checkedEval[T, N]()
	return finish(&e, "Complex.DivChecked", z.div(&e, s))
}

// Mul returns z·w.
func (z Complex[T, N]) Mul(w Complex[T, N]) Complex[T, N] {
	e := uncheckedEval[T, N]()
	return z.mul(&e, w)
}

// MulChecked is Mul reporting overflow.
func (z Complex[T, N]) MulChecked(w Complex[T, N]) (Complex[T, N], error) {
	e := checkedEval[T, N]()
	return finish(&e, "Complex.MulChecked", z.mul(&e, w))
}

// Quo returns z / w.
func (z Complex[T, N]) Quo(w Complex[T, N]) Complex[T, N] {
	e := uncheckedEval[T, N]()
	return z.quo(&e, w)
}

// QuoChecked is Quo reporting overflow and division by zero.
func (z Complex[T, N]) QuoChecked(w Complex[T, N]) (Complex[T, N], error) {
	e := checkedEval[T, N]()
	return finish(&e, "Complex.QuoChecked", z.quo(&e, w))
}

// SquareMagnitude returns Real² + Imag².
func (z Complex[T, N]) SquareMagnitude() T {
	e := uncheckedEval[T, N]()
	return z.sqMag(&e)
}

// SquareMagnitudeChecked is SquareMagnitude reporting overflow.
func (z Complex[T, N]) SquareMagnitudeChecked() (T, error) {
	e := checkedEval[T, N]()
	return finish(&e, "Complex.SquareMagnitudeChecked", z.sqMag(&e))
}

// Magnitude returns |z|.
func (z Complex[T, N]) Magnitude() (T, error) { return quantity.Magnitude[T, N](z) }

// MagnitudeChecked returns |z| with the squared magnitude checked.
func (z Complex[T, N]) MagnitudeChecked() (T, error) { return quantity.MagnitudeChecked[T, N](z) }

// Reciprocal returns conj(z) / |z|², so z.Mul(z.Reciprocal()) is one.
// Zero divides by zero with the scalar's native semantics.
func (z Complex[T, N]) Reciprocal() Complex[T, N] {
	e := uncheckedEval[T, N]()
	return z.reciprocal(&e)
}

// ReciprocalChecked is Reciprocal with every step checked; zero yields
// ErrDivideByZero.
func (z Complex[T, N]) ReciprocalChecked() (Complex[T, N], error) {
	e := checkedEval[T, N]()
	return finish(&e, "Complex.ReciprocalChecked", z.reciprocal(&e))
}

// MulVector rotates v clockwise by the argument of z (by -arg z) and scales it
// by |z|: ImaginaryUnit().MulVector(UnitX2()) is (0, -1). Use v.MulComplex(z)
// to rotate counterclockwise by arg z.
//
// It applies z to v from the left, matching the geometric product, so that
// a.Mul(b).MulVector(c) equals a.MulComplex(b.Mul(c)) for vectors a, b, c; in
// complex terms it is z.Conjugate().Mul(v.Complex()).Vector().
func (z Complex[T, N]) MulVector(v Vector2[T, N]) Vector2[T, N] {
	e := uncheckedEval[T, N]()
	return z.mulVector(&e, v)
}

// MulVectorChecked is MulVector reporting overflow.
func (z Complex[T, N]) MulVectorChecked(v Vector2[T, N]) (Vector2[T, N], error) {
	e := checkedEval[T, N]()
	return finish(&e, "Complex.MulVectorChecked", z.mulVector(&e, v))
}
