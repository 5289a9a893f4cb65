// SPDX-License-Identifier: MIT

package geo

import "github.com/JochCool/GeoLinearMath/scalar"

// Ready-made instantiations for the common scalars.
type (
	Vector2F64 = Vector2[float64, scalar.Float[float64]]
	Vector3F64 = Vector3[float64, scalar.Float[float64]]
	ComplexF64 = Complex[float64, scalar.Float[float64]]

	Vector2I64 = Vector2[int64, scalar.Int[int64]]
	Vector3I64 = Vector3[int64, scalar.Int[int64]]
	ComplexI64 = Complex[int64, scalar.Int[int64]]
)
