// SPDX-License-Identifier: MIT

package geo

import (
	"github.com/JochCool/GeoLinearMath/locale"
	"github.com/JochCool/GeoLinearMath/scalar"
)

// scratchSize covers typical output of TryFormat without a heap allocation.
const scratchSize = 128

// appendVector writes Open, comps joined by Separator, Close.
// Every composite vector type formats through this one function.
func appendVector[T any, N scalar.Scalar[T]](dst []byte, f *VectorFormatInfo, comps ...T) []byte {
	var n N
	dst = append(dst, f.Open...)
	for i, c := range comps {
		if i > 0 {
			dst = append(dst, f.Separator...)
		}
		dst = n.AppendText(dst, c, f.Number)
	}
	return append(dst, f.Close...)
}

// appendComplex writes "re", "im·unit" or "re op im·unit": a zero imaginary
// part is omitted, and so is a zero real part together with the operator.
func appendComplex[T any, N scalar.Scalar[T]](dst []byte, f *ComplexFormatInfo, re, im T) []byte {
	var n N
	if n.IsZero(im) {
		return n.AppendText(dst, re, f.Number)
	}
	if !n.IsZero(re) {
		dst = n.AppendText(dst, re, f.Number)
		dst = append(dst, f.Operator...)
	}
	dst = n.AppendText(dst, im, f.Number)
	return append(dst, f.Unit...)
}

// tryFormat copies the output of appendTo into dst when it fits. A short dst
// is left untouched and reported with ErrShortBuffer.
func tryFormat(dst []byte, tag string, appendTo func([]byte) []byte) (int, error) {
	var scratch [scratchSize]byte
	out := appendTo(scratch[:0])
	if len(out) > len(dst) {
		return 0, geoErrorf(tag, ErrShortBuffer)
	}
	return copy(dst, out), nil
}

// AppendFormat appends v formatted per p's vector layout to dst.
// nil p means locale.Current().
func (v Vector2[T, N]) AppendFormat(dst []byte, p locale.Provider) []byte {
	return appendVector[T, N](dst, VectorFormatInfoOf(p), v.X, v.Y)
}

// TryFormat writes v into dst and returns the number of bytes written.
// When dst is too small it returns ErrShortBuffer and writes nothing.
func (v Vector2[T, N]) TryFormat(dst []byte, p locale.Provider) (int, error) {
	return tryFormat(dst, "Vector2.TryFormat", func(b []byte) []byte { return v.AppendFormat(b, p) })
}

// Text returns v formatted per p.
func (v Vector2[T, N]) Text(p locale.Provider) string { return string(v.AppendFormat(nil, p)) }

// String formats v with the current locale.
func (v Vector2[T, N]) String() string { return v.Text(nil) }

// MarshalText implements encoding.TextMarshaler using invariant symbols.
func (v Vector2[T, N]) MarshalText() ([]byte, error) {
	return v.AppendFormat(nil, locale.InvariantCulture()), nil
}

// AppendFormat appends v formatted per p's vector layout to dst.
func (v Vector3[T, N]) AppendFormat(dst []byte, p locale.Provider) []byte {
	return appendVector[T, N](dst, VectorFormatInfoOf(p), v.X, v.Y, v.Z)
}

// TryFormat writes v into dst; see Vector2.TryFormat.
func (v Vector3[T, N]) TryFormat(dst []byte, p locale.Provider) (int, error) {
	return tryFormat(dst, "Vector3.TryFormat", func(b []byte) []byte { return v.AppendFormat(b, p) })
}

// Text returns v formatted per p.
func (v Vector3[T, N]) Text(p locale.Provider) string { return string(v.AppendFormat(nil, p)) }

// String formats v with the current locale.
func (v Vector3[T, N]) String() string { return v.Text(nil) }

// MarshalText implements encoding.TextMarshaler using invariant symbols.
func (v Vector3[T, N]) MarshalText() ([]byte, error) {
	return v.AppendFormat(nil, locale.InvariantCulture()), nil
}

// AppendFormat appends z formatted per p's complex layout to dst.
func (z Complex[T, N]) AppendFormat(dst []byte, p locale.Provider) []byte {
	return appendComplex[T, N](dst, ComplexFormatInfoOf(p), z.Real, z.Imag)
}

// TryFormat writes z into dst; see Vector2.TryFormat.
func (z Complex[T, N]) TryFormat(dst []byte, p locale.Provider) (int, error) {
	return tryFormat(dst, "Complex.TryFormat", func(b []byte) []byte { return z.AppendFormat(b, p) })
}

// Text returns z formatted per p.
func (z Complex[T, N]) Text(p locale.Provider) string { return string(z.AppendFormat(nil, p)) }

// String formats z with the current locale.
func (z Complex[T, N]) String() string { return z.Text(nil) }

// MarshalText implements encoding.TextMarshaler using invariant symbols.
func (z Complex[T, N]) MarshalText() ([]byte, error) {
	return z.AppendFormat(nil, locale.InvariantCulture()), nil
}
