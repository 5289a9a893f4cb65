// SPDX-License-Identifier: MIT

// Package geo provides 2D vectors, 3D vectors and complex numbers over any
// scalar strategy from package scalar.
//
// 🚀 Types
//
//	Vector2[T, N] {X, Y}       — point/displacement in the plane
//	Vector3[T, N] {X, Y, Z}    — point/displacement in space
//	Complex[T, N] {Real, Imag} — field element; doubles as a 2D rotation-scale
//
// T is the component type, N its strategy (scalar.Int[int32],
// scalar.Float[float64], decimal.Scalar, ...). The aliases in aliases.go cover
// the common float64/int64 instantiations.
//
// ✨ Checked and unchecked
//
// Every arithmetic method comes in two explicitly named forms. The plain name
// (Add, Dot, SquareMagnitude, ...) follows the scalar's native overflow
// behavior; the ...Checked name returns an error wrapping scalar.ErrOverflow
// (or scalar.ErrDivideByZero) instead of a wrong value. Both forms share one
// implementation parameterized by scalar.Mode, so without overflow they always
// agree.
//
// Prefer SquareMagnitude over Magnitude for comparisons: it needs no square
// root, is exact for integers, and works with strategies that have none.
//
// 🔗 Vectors and complex numbers
//
// The geometric product of two plane vectors is a complex number:
//
//	a.Mul(b) == Complex{Real: a.Dot(b), Imag: a.Determinant(b)}
//
// and complex numbers act on vectors from either side (Vector2.MulComplex,
// Complex.MulVector) with the same rotation-scale semantics, so products
// associate: a.Mul(b).MulVector(c) == a.MulComplex(b.Mul(c)).
//
// 📝 Text
//
// Values format as "(x, y)", "(x, y, z)" and "a + bi" ("bi" when a is zero,
// "a" when b is zero). Delimiters and number symbols come from a
// locale.Provider resolved to a VectorFormatInfo or ComplexFormatInfo;
// parsing is the exact inverse. TryFormat writes into a bounded buffer and
// reports ErrShortBuffer without touching it when the buffer is too small.
//
// All values are immutable and safe for concurrent use.
package geo
