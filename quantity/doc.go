// SPDX-License-Identifier: MIT

// Package quantity defines the capabilities shared by vector-like and
// complex-like types, as independent interfaces:
//
//   - SquareMagnituder: squared magnitude, checked and unchecked
//   - Magnituder:       magnitude, checked and unchecked
//   - Invertible:       multiplicative inverse, checked and unchecked
//
// The free functions here provide the default behavior a type can delegate to:
// Magnitude derives the magnitude from the squared magnitude through the
// scalar's square-root primitive, and AsInvertible gives a reciprocal-only type
// a checked form that delegates to the unchecked one.
//
// Comparing magnitudes? Use Compare/CompareChecked, which compare squared
// magnitudes and never take a square root. It is exact for integer scalars
// and works for strategies without a square root (scalar/decimal).
package quantity
