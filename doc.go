// SPDX-License-Identifier: MIT

// Package geolinearmath is a generic toolkit for 2D vectors, 3D vectors and
// complex numbers over any scalar type you choose: machine integers, floats or
// arbitrary-precision decimals.
//
// What is inside?
//
//	scalar/   — the scalar contract, checked/unchecked policies, Int/Uint/Float strategies
//	scalar/decimal — arbitrary-precision strategy over github.com/govalues/decimal
//	quantity/ — magnitude & reciprocal capability contracts and helpers
//	geo/      — Vector2, Vector3, Complex; arithmetic, interop, text round-trip
//	locale/   — number formats, culture providers (golang.org/x/text) and resolution
//	config/   — YAML delimiter/locale profiles
//	cmd/geolin — command line front-end
//
// Every arithmetic operation exists twice: the plain name follows the scalar's
// native behavior (wrapping for machine integers), while the ...Checked name
// reports scalar.ErrOverflow instead of returning a wrong value.
//
// Quick example:
//
//	type V = geo.Vector2[int64, scalar.Int[int64]]
//	a, b := V{X: 1, Y: 2}, V{X: 3, Y: 4}
//	z := a.Mul(b) // geometric product: Complex(11, -2)
//
// The library is silent by default; see SetLogger.
package geolinearmath
