// SPDX-License-Identifier: MIT

package geo

import (
	"github.com/JochCool/GeoLinearMath/quantity"
	"github.com/JochCool/GeoLinearMath/scalar"
)

// Vector3 is a point or displacement in space, relative to the origin (0, 0, 0).
// The zero value is the origin.
type Vector3[T any, N scalar.Scalar[T]] struct {
	X, Y, Z T
}

var _ quantity.Quantity[float64] = Vector3[float64, scalar.Float[float64]]{}

var _ quantity.Invertible[Vector3[float64, scalar.Float[float64]]] = Vector3[float64, scalar.Float[float64]]{}

// NewVector3 returns (x, y, z).
func NewVector3[T any, N scalar.Scalar[T]](x, y, z T) Vector3[T, N] {
	return Vector3[T, N]{X: x, Y: y, Z: z}
}

// Vector3FromSlice builds a vector from exactly three components.
// Any other length returns ErrInvalidArgument.
func Vector3FromSlice[T any, N scalar.Scalar[T]](c []T) (Vector3[T, N], error) {
	if len(c) != 3 {
		return Vector3[T, N]{}, geoErrorf("Vector3FromSlice", ErrInvalidArgument)
	}
	return Vector3[T, N]{X: c[0], Y: c[1], Z: c[2]}, nil
}

// Origin3 returns (0, 0, 0).
func Origin3[T any, N scalar.Scalar[T]]() Vector3[T, N] {
	var n N
	return Vector3[T, N]{X: n.Zero(), Y: n.Zero(), Z: n.Zero()}
}

// UnitX3 returns (1, 0, 0).
func UnitX3[T any, N scalar.Scalar[T]]() Vector3[T, N] {
	var n N
	return Vector3[T, N]{X: n.One(), Y: n.Zero(), Z: n.Zero()}
}

// UnitY3 returns (0, 1, 0).
func UnitY3[T any, N scalar.Scalar[T]]() Vector3[T, N] {
	var n N
	return Vector3[T, N]{X: n.Zero(), Y: n.One(), Z: n.Zero()}
}

// UnitZ3 returns (0, 0, 1).
func UnitZ3[T any, N scalar.Scalar[T]]() Vector3[T, N] {
	var n N
	return Vector3[T, N]{X: n.Zero(), Y: n.Zero(), Z: n.One()}
}

// AxisUnitVectors3 returns the six vectors of length one along the axes.
// Callers must not depend on the order.
func AxisUnitVectors3[T any, N scalar.Scalar[T]]() []Vector3[T, N] {
	x, y, z := UnitX3[T, N](), UnitY3[T, N](), UnitZ3[T, N]()
	return []Vector3[T, N]{x, y, z, x.Neg(), y.Neg(), z.Neg()}
}

// Components returns []T{X, Y, Z}.
func (v Vector3[T, N]) Components() []T { return []T{v.X, v.Y, v.Z} }

// Equal reports exact component-wise equality.
func (v Vector3[T, N]) Equal(w Vector3[T, N]) bool {
	var n N
	return n.Cmp(v.X, w.X) == 0 && n.Cmp(v.Y, w.Y) == 0 && n.Cmp(v.Z, w.Z) == 0
}

// IsZero reports whether v is the origin.
func (v Vector3[T, N]) IsZero() bool {
	var n N
	return n.IsZero(v.X) && n.IsZero(v.Y) && n.IsZero(v.Z)
}

// XY drops the Z component.
func (v Vector3[T, N]) XY() Vector2[T, N] { return Vector2[T, N]{X: v.X, Y: v.Y} }

// InBox reports whether every component lies within the matching [lo, hi].
func (v Vector3[T, N]) InBox(lo, hi Vector3[T, N]) bool {
	return within[T, N](v.X, lo.X, hi.X) &&
		within[T, N](v.Y, lo.Y, hi.Y) &&
		within[T, N](v.Z, lo.Z, hi.Z)
}

// Clamp clamps each component into [lo, hi]; where lo > hi the hi bound wins.
func (v Vector3[T, N]) Clamp(lo, hi Vector3[T, N]) Vector3[T, N] {
	return Vector3[T, N]{
		X: cmpClamp[T, N](v.X, lo.X, hi.X),
		Y: cmpClamp[T, N](v.Y, lo.Y, hi.Y),
		Z: cmpClamp[T, N](v.Z, lo.Z, hi.Z),
	}
}

func (v Vector3[T, N]) add(e *scalar.Eval[T], w Vector3[T, N]) Vector3[T, N] {
	return Vector3[T, N]{X: e.Add(v.X, w.X), Y: e.Add(v.Y, w.Y), Z: e.Add(v.Z, w.Z)}
}

func (v Vector3[T, N]) sub(e *scalar.Eval[T], w Vector3[T, N]) Vector3[T, N] {
	return Vector3[T, N]{X: e.Sub(v.X, w.X), Y: e.Sub(v.Y, w.Y), Z: e.Sub(v.Z, w.Z)}
}

func (v Vector3[T, N]) neg(e *scalar.Eval[T]) Vector3[T, N] {
	return Vector3[T, N]{X: e.Neg(v.X), Y: e.Neg(v.Y), Z: e.Neg(v.Z)}
}

func (v Vector3[T, N]) scale(e *scalar.Eval[T], s T) Vector3[T, N] {
	return Vector3[T, N]{X: e.Mul(v.X, s), Y: e.Mul(v.Y, s), Z: e.Mul(v.Z, s)}
}

func (v Vector3[T, N]) div(e *scalar.Eval[T], s T) Vector3[T, N] {
	return Vector3[T, N]{X: e.Quo(v.X, s), Y: e.Quo(v.Y, s), Z: e.Quo(v.Z, s)}
}

func (v Vector3[T, N]) dot(e *scalar.Eval[T], w Vector3[T, N]) T {
	return e.Add(e.Add(e.Mul(v.X, w.X), e.Mul(v.Y, w.Y)), e.Mul(v.Z, w.Z))
}

func (v Vector3[T, N]) cross(e *scalar.Eval[T], w Vector3[T, N]) Vector3[T, N] {
	return Vector3[T, N]{
		X: e.Sub(e.Mul(v.Y, w.Z), e.Mul(v.Z, w.Y)),
		Y: e.Sub(e.Mul(v.Z, w.X), e.Mul(v.X, w.Z)),
		Z: e.Sub(e.Mul(v.X, w.Y), e.Mul(v.Y, w.X)),
	}
}

func (v Vector3[T, N]) taxicab(e *scalar.Eval[T]) T {
	return e.Add(e.Add(e.Abs(v.X), e.Abs(v.Y)), e.Abs(v.Z))
}

func (v Vector3[T, N]) reciprocal(e *scalar.Eval[T]) Vector3[T, N] {
	return v.div(e, v.dot(e, v))
}

// Add returns v + w.
func (v Vector3[T, N]) Add(w Vector3[T, N]) Vector3[T, N] {
	e := uncheckedEval[T, N]()
	return v.add(&e, w)
}

// AddChecked returns v + w or an error wrapping ErrOverflow.
func (v Vector3[T, N]) AddChecked(w Vector3[T, N]) (Vector3[T, N], error) {
	e := checkedEval[T, N]()
	return finish(&e, "Vector3.AddChecked", v.add(&e, w))
}

// Sub returns v − w.
func (v Vector3[T, N]) Sub(w Vector3[T, N]) Vector3[T, N] {
	e := uncheckedEval[T, N]()
	return v.sub(&e, w)
}

// SubChecked returns v − w or an error wrapping ErrOverflow.
func (v Vector3[T, N]) SubChecked(w Vector3[T, N]) (Vector3[T, N], error) {
	e := checkedEval[T, N]()
	return finish(&e, "Vector3.SubChecked", v.sub(&e, w))
}

// Neg returns −v.
func (v Vector3[T, N]) Neg() Vector3[T, N] {
	e := uncheckedEval[T, N]()
	return v.neg(&e)
}

// NegChecked returns −v or an error wrapping ErrOverflow.
func (v Vector3[T, N]) NegChecked() (Vector3[T, N], error) {
	e := checkedEval[T, N]()
	return finish(&e, "Vector3.NegChecked", v.neg(&e))
}

// Scale returns v·s.
func (v Vector3[T, N]) Scale(s T) Vector3[T, N] {
	e := uncheckedEval[T, N]()
	return v.scale(&e, s)
}

// ScaleChecked returns v·s or an error wrapping ErrOverflow.
func (v Vector3[T, N]) ScaleChecked(s T) (Vector3[T, N], error) {
	e := checkedEval[T, N]()
	return finish(&e, "Vector3.ScaleChecked", v.scale(&e, s))
}

// Div returns v / s.
func (v Vector3[T, N]) Div(s T) Vector3[T, N] {
	e := uncheckedEval[T, N]()
	return v.div(&e, s)
}

// DivChecked returns v / s, or an error wrapping ErrDivideByZero / ErrOverflow.
func (v Vector3[T, N]) DivChecked(s T) (Vector3[T, N], error) {
	e := checkedEval[T, N]()
	return finish(&e, "Vector3.DivChecked", v.div(&e, s))
}

// Dot returns v.X·w.X + v.Y·w.Y + v.Z·w.Z.
func (v Vector3[T, N]) Dot(w Vector3[T, N]) T {
	e := uncheckedEval[T, N]()
	return v.dot(&e, w)
}

// DotChecked is Dot reporting overflow.
func (v Vector3[T, N]) DotChecked(w Vector3[T, N]) (T, error) {
	e := checkedEval[T, N]()
	return finish(&e, "Vector3.DotChecked", v.dot(&e, w))
}

// Cross returns v × w, perpendicular to both operands (right-handed).
func (v Vector3[T, N]) Cross(w Vector3[T, N]) Vector3[T, N] {
	e := uncheckedEval[T, N]()
	return v.cross(&e, w)
}

// CrossChecked is Cross reporting overflow.
func (v Vector3[T, N]) CrossChecked(w Vector3[T, N]) (Vector3[T, N], error) {
	e := checkedEval[T, N]()
	return finish(&e, "Vector3.CrossChecked", v.cross(&e, w))
}

// SquareMagnitude returns v·v.
func (v Vector3[T, N]) SquareMagnitude() T { return v.Dot(v) }

// SquareMagnitudeChecked returns v·v or an error wrapping ErrOverflow.
func (v Vector3[T, N]) SquareMagnitudeChecked() (T, error) {
	e := checkedEval[T, N]()
	return finish(&e, "Vector3.SquareMagnitudeChecked", v.dot(&e, v))
}

// Magnitude returns √(v·v).
func (v Vector3[T, N]) Magnitude() (T, error) { return quantity.Magnitude[T, N](v) }

// MagnitudeChecked returns √(v·v) with the squared magnitude checked.
func (v Vector3[T, N]) MagnitudeChecked() (T, error) { return quantity.MagnitudeChecked[T, N](v) }

// TaxicabMagnitude returns |X| + |Y| + |Z|.
func (v Vector3[T, N]) TaxicabMagnitude() T {
	e := uncheckedEval[T, N]()
	return v.taxicab(&e)
}

// TaxicabMagnitudeChecked is TaxicabMagnitude reporting overflow.
func (v Vector3[T, N]) TaxicabMagnitudeChecked() (T, error) {
	e := checkedEval[T, N]()
	return finish(&e, "Vector3.TaxicabMagnitudeChecked", v.taxicab(&e))
}

// SquareDistance returns |v − w|².
func (v Vector3[T, N]) SquareDistance(w Vector3[T, N]) T {
	return v.Sub(w).SquareMagnitude()
}

// SquareDistanceChecked is SquareDistance reporting overflow.
func (v Vector3[T, N]) SquareDistanceChecked(w Vector3[T, N]) (T, error) {
	e := checkedEval[T, N]()
	d := v.sub(&e, w)
	return finish(&e, "Vector3.SquareDistanceChecked", d.dot(&e, d))
}

// Distance returns |v − w|.
func (v Vector3[T, N]) Distance(w Vector3[T, N]) (T, error) {
	return v.Sub(w).Magnitude()
}

// DistanceChecked returns |v − w| with the subtraction and squaring checked.
func (v Vector3[T, N]) DistanceChecked(w Vector3[T, N]) (T, error) {
	d, err := v.SubChecked(w)
	if err != nil {
		var zero T
		return zero, geoErrorf("Vector3.DistanceChecked", err)
	}
	return d.MagnitudeChecked()
}

// Reciprocal returns v / (v·v). For a nonzero v, v.Dot(v.Reciprocal()) is one
// up to rounding.
func (v Vector3[T, N]) Reciprocal() Vector3[T, N] {
	e := uncheckedEval[T, N]()
	return v.reciprocal(&e)
}

// ReciprocalChecked is Reciprocal with every step checked; the zero vector
// yields ErrDivideByZero.
func (v Vector3[T, N]) ReciprocalChecked() (Vector3[T, N], error) {
	e := checkedEval[T, N]()
	return finish(&e, "Vector3.ReciprocalChecked", v.reciprocal(&e))
}
