// SPDX-License-Identifier: MIT

package geo

import (
	"github.com/JochCool/GeoLinearMath/quantity"
	"github.com/JochCool/GeoLinearMath/scalar"
)

// Vector2 is a point or displacement in the plane, relative to the origin (0, 0).
// The zero value is the origin.
type Vector2[T any, N scalar.Scalar[T]] struct {
	X, Y T
}

var _ quantity.Quantity[float64] = Vector2[float64, scalar.Float[float64]]{}

var _ quantity.Invertible[Vector2[float64, scalar.Float[float64]]] = Vector2[float64, scalar.Float[float64]]{}

// NewVector2 returns (x, y).
func NewVector2[T any, N scalar.Scalar[T]](x, y T) Vector2[T, N] {
	return Vector2[T, N]{X: x, Y: y}
}

// Vector2FromSlice builds a vector from exactly two components.
// Any other length returns ErrInvalidArgument.
func Vector2FromSlice[T any, N scalar.Scalar[T]](c []T) (Vector2[T, N], error) {
	if len(c) != 2 {
		return Vector2[T, N]{}, geoErrorf("Vector2FromSlice", ErrInvalidArgument)
	}
	return Vector2[T, N]{X: c[0], Y: c[1]}, nil
}

// Origin2 returns (0, 0).
func Origin2[T any, N scalar.Scalar[T]]() Vector2[T, N] {
	var n N
	return Vector2[T, N]{X: n.Zero(), Y: n.Zero()}
}

// UnitX2 returns (1, 0).
func UnitX2[T any, N scalar.Scalar[T]]() Vector2[T, N] {
	var n N
	return Vector2[T, N]{X: n.One(), Y: n.Zero()}
}

// UnitY2 returns (0, 1).
func UnitY2[T any, N scalar.Scalar[T]]() Vector2[T, N] {
	var n N
	return Vector2[T, N]{X: n.Zero(), Y: n.One()}
}

// AxisUnitVectors2 returns the four vectors of length one along the axes:
// (±1, 0) and (0, ±1). Callers must not depend on the order.
// For unsigned scalars the negative directions wrap.
func AxisUnitVectors2[T any, N scalar.Scalar[T]]() []Vector2[T, N] {
	var n N
	x, y := UnitX2[T, N](), UnitY2[T, N]()
	return []Vector2[T, N]{
		x, y,
		{X: n.Neg(n.One()), Y: n.Zero()},
		{X: n.Zero(), Y: n.Neg(n.One())},
	}
}

// Components returns []T{X, Y}.
func (v Vector2[T, N]) Components() []T { return []T{v.X, v.Y} }

// Equal reports exact component-wise equality.
func (v Vector2[T, N]) Equal(w Vector2[T, N]) bool {
	var n N
	return n.Cmp(v.X, w.X) == 0 && n.Cmp(v.Y, w.Y) == 0
}

// IsZero reports whether v is the origin.
func (v Vector2[T, N]) IsZero() bool {
	var n N
	return n.IsZero(v.X) && n.IsZero(v.Y)
}

// Swizzle returns (Y, X).
func (v Vector2[T, N]) Swizzle() Vector2[T, N] { return Vector2[T, N]{X: v.Y, Y: v.X} }

// Extend augments v with a Z component.
func (v Vector2[T, N]) Extend(z T) Vector3[T, N] { return Vector3[T, N]{X: v.X, Y: v.Y, Z: z} }

// Complex returns v viewed as the complex number X + Yi.
func (v Vector2[T, N]) Complex() Complex[T, N] { return Complex[T, N]{Real: v.X, Imag: v.Y} }

// InBox reports lo.X ≤ v.X ≤ hi.X and lo.Y ≤ v.Y ≤ hi.Y.
func (v Vector2[T, N]) InBox(lo, hi Vector2[T, N]) bool {
	return within[T, N](v.X, lo.X, hi.X) && within[T, N](v.Y, lo.Y, hi.Y)
}

// Clamp clamps each component into [lo, hi]; where lo > hi the hi bound wins.
func (v Vector2[T, N]) Clamp(lo, hi Vector2[T, N]) Vector2[T, N] {
	return Vector2[T, N]{
		X: cmpClamp[T, N](v.X, lo.X, hi.X),
		Y: cmpClamp[T, N](v.Y, lo.Y, hi.Y),
	}
}

// ---------- shared algorithms (one implementation per operation) ----------

func (v Vector2[T, N]) add(e *scalar.Eval[T], w Vector2[T, N]) Vector2[T, N] {
	return Vector2[T, N]{X: e.Add(v.X, w.X), Y: e.Add(v.Y, w.Y)}
}

func (v Vector2[T, N]) sub(e *scalar.Eval[T], w Vector2[T, N]) Vector2[T, N] {
	return Vector2[T, N]{X: e.Sub(v.X, w.X), Y: e.Sub(v.Y, w.Y)}
}

func (v Vector2[T, N]) neg(e *scalar.Eval[T]) Vector2[T, N] {
	return Vector2[T, N]{X: e.Neg(v.X), Y: e.Neg(v.Y)}
}

func (v Vector2[T, N]) scale(e *scalar.Eval[T], s T) Vector2[T, N] {
	return Vector2[T, N]{X: e.Mul(v.X, s), Y: e.Mul(v.Y, s)}
}

func (v Vector2[T, N]) div(e *scalar.Eval[T], s T) Vector2[T, N] {
	return Vector2[T, N]{X: e.Quo(v.X, s), Y: e.Quo(v.Y, s)}
}

func (v Vector2[T, N]) dot(e *scalar.Eval[T], w Vector2[T, N]) T {
	return e.Add(e.Mul(v.X, w.X), e.Mul(v.Y, w.Y))
}

func (v Vector2[T, N]) det(e *scalar.Eval[T], w Vector2[T, N]) T {
	return e.Sub(e.Mul(v.X, w.Y), e.Mul(v.Y, w.X))
}

func (v Vector2[T, N]) taxicab(e *scalar.Eval[T]) T {
	return e.Add(e.Abs(v.X), e.Abs(v.Y))
}

// reciprocal divides v by its own squared magnitude, the inverse of v under
// the geometric product.
func (v Vector2[T, N]) reciprocal(e *scalar.Eval[T]) Vector2[T, N] {
	return v.div(e, v.dot(e, v))
}

// geometric is the geometric product v·w + (v∧w)i.
func (v Vector2[T, N]) geometric(e *scalar.Eval[T], w Vector2[T, N]) Complex[T, N] {
	return Complex[T, N]{Real: v.dot(e, w), Imag: v.det(e, w)}
}

// quo is v·w⁻¹ = (v·w + (v∧w)i) / |w|².
func (v Vector2[T, N]) quo(e *scalar.Eval[T], w Vector2[T, N]) Complex[T, N] {
	sq := w.dot(e, w)
	return Complex[T, N]{Real: e.Quo(v.dot(e, w), sq), Imag: e.Quo(v.det(e, w), sq)}
}

// mulComplex is v·z for z = a + bi: (a·x − b·y, a·y + b·x).
func (v Vector2[T, N]) mulComplex(e *scalar.Eval[T], z Complex[T, N]) Vector2[T, N] {
	return Vector2[T, N]{
		X: e.Sub(e.Mul(z.Real, v.X), e.Mul(z.Imag, v.Y)),
		Y: e.Add(e.Mul(z.Real, v.Y), e.Mul(z.Imag, v.X)),
	}
}

// ---------- public pairs ----------

// Add returns v + w.
func (v Vector2[T, N]) Add(w Vector2[T, N]) Vector2[T, N] {
	e := uncheckedEval[T, N]()
	return v.add(&e, w)
}

// AddChecked returns v + w or an error wrapping ErrOverflow.
func (v Vector2[T, N]) AddChecked(w Vector2[T, N]) (Vector2[T, N], error) {
	e := checkedEval[T, N]()
	return finish(&e, "Vector2.AddChecked", v.add(&e, w))
}

// Sub returns v − w.
func (v Vector2[T, N]) Sub(w Vector2[T, N]) Vector2[T, N] {
	e := uncheckedEval[T, N]()
	return v.sub(&e, w)
}

// SubChecked returns v − w or an error wrapping ErrOverflow.
func (v Vector2[T, N]) SubChecked(w Vector2[T, N]) (Vector2[T, N], error) {
	e := checkedEval[T, N]()
	return finish(&e, "Vector2.SubChecked", v.sub(&e, w))
}

// Neg returns −v.
func (v Vector2[T, N]) Neg() Vector2[T, N] {
	e := uncheckedEval[T, N]()
	return v.neg(&e)
}

// NegChecked returns −v or an error wrapping ErrOverflow.
func (v Vector2[T, N]) NegChecked() (Vector2[T, N], error) {
	e := checkedEval[T, N]()
	return finish(&e, "Vector2.NegChecked", v.neg(&e))
}

// Scale returns v·s.
func (v Vector2[T, N]) Scale(s T) Vector2[T, N] {
	e := uncheckedEval[T, N]()
	return v.scale(&e, s)
}

// ScaleChecked returns v·s or an error wrapping ErrOverflow.
func (v Vector2[T, N]) ScaleChecked(s T) (Vector2[T, N], error) {
	e := checkedEval[T, N]()
	return finish(&e, "Vector2.ScaleChecked", v.scale(&e, s))
}

// Div returns v / s with the scalar's native division semantics.
func (v Vector2[T, N]) Div(s T) Vector2[T, N] {
	e := uncheckedEval[T, N]()
	return v.div(&e, s)
}

// DivChecked returns v / s, or an error wrapping ErrDivideByZero / ErrOverflow.
func (v Vector2[T, N]) DivChecked(s T) (Vector2[T, N], error) {
	e := checkedEval[T, N]()
	return finish(&e, "Vector2.DivChecked", v.div(&e, s))
}

// Dot returns v.X·w.X + v.Y·w.Y.
func (v Vector2[T, N]) Dot(w Vector2[T, N]) T {
	e := uncheckedEval[T, N]()
	return v.dot(&e, w)
}

// DotChecked is Dot reporting overflow of any product or of the sum.
func (v Vector2[T, N]) DotChecked(w Vector2[T, N]) (T, error) {
	e := checkedEval[T, N]()
	return finish(&e, "Vector2.DotChecked", v.dot(&e, w))
}

// Determinant returns v.X·w.Y − v.Y·w.X, the determinant of the 2×2 matrix
// with columns v and w.
func (v Vector2[T, N]) Determinant(w Vector2[T, N]) T {
	e := uncheckedEval[T, N]()
	return v.det(&e, w)
}

// DeterminantChecked is Determinant reporting overflow.
func (v Vector2[T, N]) DeterminantChecked(w Vector2[T, N]) (T, error) {
	e := checkedEval[T, N]()
	return finish(&e, "Vector2.DeterminantChecked", v.det(&e, w))
}

// SquareMagnitude returns v·v. Prefer it over Magnitude for comparisons.
func (v Vector2[T, N]) SquareMagnitude() T { return v.Dot(v) }

// SquareMagnitudeChecked returns v·v or an error wrapping ErrOverflow.
func (v Vector2[T, N]) SquareMagnitudeChecked() (T, error) {
	e := checkedEval[T, N]()
	return finish(&e, "Vector2.SquareMagnitudeChecked", v.dot(&e, v))
}

// Magnitude returns √(v·v) via N's square root.
func (v Vector2[T, N]) Magnitude() (T, error) { return quantity.Magnitude[T, N](v) }

// MagnitudeChecked returns √(v·v) with the squared magnitude checked.
func (v Vector2[T, N]) MagnitudeChecked() (T, error) { return quantity.MagnitudeChecked[T, N](v) }

// TaxicabMagnitude returns |X| + |Y|, the Manhattan distance from the origin.
func (v Vector2[T, N]) TaxicabMagnitude() T {
	e := uncheckedEval[T, N]()
	return v.taxicab(&e)
}

// TaxicabMagnitudeChecked is TaxicabMagnitude reporting overflow.
func (v Vector2[T, N]) TaxicabMagnitudeChecked() (T, error) {
	e := checkedEval[T, N]()
	return finish(&e, "Vector2.TaxicabMagnitudeChecked", v.taxicab(&e))
}

// SquareDistance returns |v − w|².
func (v Vector2[T, N]) SquareDistance(w Vector2[T, N]) T {
	return v.Sub(w).SquareMagnitude()
}

// SquareDistanceChecked is SquareDistance reporting overflow.
func (v Vector2[T, N]) SquareDistanceChecked(w Vector2[T, N]) (T, error) {
	e := checkedEval[T, N]()
	d := v.sub(&e, w)
	return finish(&e, "Vector2.SquareDistanceChecked", d.dot(&e, d))
}

// Distance returns |v − w|.
func (v Vector2[T, N]) Distance(w Vector2[T, N]) (T, error) {
	return v.Sub(w).Magnitude()
}

// DistanceChecked returns |v − w| with the subtraction and squaring checked.
func (v Vector2[T, N]) DistanceChecked(w Vector2[T, N]) (T, error) {
	d, err := v.SubChecked(w)
	if err != nil {
		var zero T
		return zero, geoErrorf("Vector2.DistanceChecked", err)
	}
	return d.MagnitudeChecked()
}

// Reciprocal returns v / (v·v), the inverse of v under the geometric product:
// v.Mul(v.Reciprocal()) is the complex identity. The zero vector divides by
// zero with the scalar's native semantics.
func (v Vector2[T, N]) Reciprocal() Vector2[T, N] {
	e := uncheckedEval[T, N]()
	return v.reciprocal(&e)
}

// ReciprocalChecked is Reciprocal with the squared magnitude and the divisions
// checked; the zero vector yields ErrDivideByZero.
func (v Vector2[T, N]) ReciprocalChecked() (Vector2[T, N], error) {
	e := checkedEval[T, N]()
	return finish(&e, "Vector2.ReciprocalChecked", v.reciprocal(&e))
}

// Mul returns the geometric product v·w = Complex(v.Dot(w), v.Determinant(w)).
func (v Vector2[T, N]) Mul(w Vector2[T, N]) Complex[T, N] {
	e := uncheckedEval[T, N]()
	return v.geometric(&e, w)
}

// MulChecked is Mul reporting overflow.
func (v Vector2[T, N]) MulChecked(w Vector2[T, N]) (Complex[T, N], error) {
	e := checkedEval[T, N]()
	return finish(&e, "Vector2.MulChecked", v.geometric(&e, w))
}

// Quo returns v·w⁻¹, the rotation-scale taking w to v.
func (v Vector2[T, N]) Quo(w Vector2[T, N]) Complex[T, N] {
	e := uncheckedEval[T, N]()
	return v.quo(&e, w)
}

// QuoChecked is Quo reporting overflow and division by a zero vector.
func (v Vector2[T, N]) QuoChecked(w Vector2[T, N]) (Complex[T, N], error) {
	e := checkedEval[T, N]()
	return finish(&e, "Vector2.QuoChecked", v.quo(&e, w))
}

// MulComplex returns v·z, v rotated and scaled by z: equal to
// v.Complex().Mul(z).Vector().
func (v Vector2[T, N]) MulComplex(z Complex[T, N]) Vector2[T, N] {
	e := uncheckedEval[T, N]()
	return v.mulComplex(&e, z)
}

// MulComplexChecked is MulComplex reporting overflow.
func (v Vector2[T, N]) MulComplexChecked(z Complex[T, N]) (Vector2[T, N], error) {
	e := checkedEval[T, N]()
	return finish(&e, "Vector2.MulComplexChecked", v.mulComplex(&e, z))
}
