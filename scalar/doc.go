// SPDX-License-Identifier: MIT

// Package scalar defines the numeric contract every quantity type in this
// module is built on, and ships strategies for Go's built-in numbers.
//
// A strategy is a zero-size type whose methods implement arithmetic over some
// value type T. Quantity types take it as a second type parameter:
//
//	type V = geo.Vector2[int32, scalar.Int[int32]]
//
// The contract is split into capabilities that compose into Scalar:
//
//   - Arithmetic:        identities, ordering and the unchecked operations
//   - CheckedArithmetic: the same operations reporting ErrOverflow
//   - Rooter:            the square-root primitive (checked and unchecked)
//   - Codec:             ASCII text conversion localized through locale.NumberFormat
//
// Unchecked operations follow the scalar's native behavior (machine integers
// wrap, integer division by zero panics, floats follow IEEE-754). Checked
// operations never return a silently wrong value.
//
// Algorithms that must run under either policy are written once against Mode
// and evaluated through Eval, which threads the first error through a chain of
// operations:
//
//	e := scalar.NewEval[int32](scalar.Checked[int32, scalar.Int[int32]]{})
//	sq := e.Add(e.Mul(x, x), e.Mul(y, y))
//	if err := e.Err(); err != nil { ... } // errors.Is(err, scalar.ErrOverflow)
package scalar
