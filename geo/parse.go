// SPDX-License-Identifier: MIT

package geo

import (
	"cmp"
	"fmt"
	"strings"

	geolinearmath "github.com/JochCool/GeoLinearMath"
	"github.com/JochCool/GeoLinearMath/locale"
	"github.com/JochCool/GeoLinearMath/scalar"
)

// parseVector splits s into exactly arity components per f and parses each
// with N. Every composite vector type parses through this one function.
//
//   - Stage 1: trim white space; require f.Open and f.Close.
//   - Stage 2: split the body with splitComponents.
//
// Complexity: O(len(s)) for separators that never occur inside a number.
func parseVector[T any, N scalar.Scalar[T]](s string, f *VectorFormatInfo, comps []T) error {
	body, ok := strings.CutPrefix(strings.TrimSpace(s), f.Open)
	if !ok {
		return fmt.Errorf("%w: missing %q", ErrFormat, f.Open)
	}
	body, ok = strings.CutSuffix(body, f.Close)
	if !ok {
		return fmt.Errorf("%w: missing %q", ErrFormat, f.Close)
	}
	return splitComponents[T, N](body, f, comps, 0)
}

// splitComponents parses comps[i:] from body. A separator may also occur
// inside a number (a "-" separator against a negative component), so every
// occurrence is tried in order until the remaining components parse too.
// The first failure is reported when none does.
func splitComponents[T any, N scalar.Scalar[T]](body string, f *VectorFormatInfo, comps []T, i int) error {
	var n N
	if i == len(comps)-1 {
		c, err := n.ParseText(body, f.Number)
		if err != nil {
			return fmt.Errorf("%w: component %d: %w", ErrFormat, i, err)
		}
		comps[i] = c
		return nil
	}

	var first error
	for off := 0; ; {
		k := strings.Index(body[off:], f.Separator)
		if k < 0 {
			break
		}
		k += off
		c, err := n.ParseText(body[:k], f.Number)
		if err != nil {
			err = fmt.Errorf("%w: component %d: %w", ErrFormat, i, err)
		} else if err = splitComponents[T, N](body[k+len(f.Separator):], f, comps, i+1); err == nil {
			comps[i] = c
			return nil
		}
		if first == nil {
			first = err
		}
		off = k + 1
	}
	if first == nil {
		return fmt.Errorf("%w: want %d components, got %d", ErrFormat, len(comps), i+1)
	}
	return first
}

// parseComplex reads "re op im·unit", "im·unit" or "re".
//
//   - Stage 1: try every occurrence of f.Operator as the split point; the first
//     one leaving a number before it and a number plus unit after it wins.
//   - Stage 2: without such a split, a unit suffix over a number is an
//     imaginary-only value.
//   - Stage 3: otherwise the whole text is the real part.
func parseComplex[T any, N scalar.Scalar[T]](s string, f *ComplexFormatInfo) (re, im T, err error) {
	var n N
	s = strings.TrimSpace(s)
	zero := n.Zero()

	var first error
	for off := 0; ; {
		k := strings.Index(s[off:], f.Operator)
		if k < 0 {
			break
		}
		k += off
		off = k + 1
		if re, err = n.ParseText(s[:k], f.Number); err != nil {
			first = cmp.Or(first, fmt.Errorf("%w: real part: %w", ErrFormat, err))
			continue
		}
		imagText, ok := strings.CutSuffix(strings.TrimSpace(s[k+len(f.Operator):]), f.Unit)
		if !ok {
			first = cmp.Or(first, fmt.Errorf("%w: missing %q", ErrFormat, f.Unit))
			continue
		}
		if im, err = n.ParseText(imagText, f.Number); err != nil {
			first = cmp.Or(first, fmt.Errorf("%w: imaginary part: %w", ErrFormat, err))
			continue
		}
		return re, im, nil
	}

	if t, ok := strings.CutSuffix(s, f.Unit); ok {
		if im, err = n.ParseText(t, f.Number); err == nil {
			return zero, im, nil
		}
		first = cmp.Or(first, fmt.Errorf("%w: imaginary part: %w", ErrFormat, err))
	}
	if re, err = n.ParseText(s, f.Number); err == nil {
		return re, zero, nil
	}
	return zero, zero, cmp.Or(first, fmt.Errorf("%w: real part: %w", ErrFormat, err))
}

func logParseFailure(tag, s string, err error) {
	geolinearmath.Logger().Debug("geo: parse failed", "op", tag, "input", s, "err", err)
}

// ParseVector2 reads a vector written per p's vector layout.
// nil p means locale.Current(). Failures wrap ErrFormat.
func ParseVector2[T any, N scalar.Scalar[T]](s string, p locale.Provider) (Vector2[T, N], error) {
	var c [2]T
	if err := parseVector[T, N](s, VectorFormatInfoOf(p), c[:]); err != nil {
		logParseFailure("ParseVector2", s, err)
		return Vector2[T, N]{}, geoErrorf("ParseVector2", err)
	}
	return Vector2[T, N]{X: c[0], Y: c[1]}, nil
}

// TryParseVector2 is ParseVector2 reporting failure as false.
func TryParseVector2[T any, N scalar.Scalar[T]](s string, p locale.Provider) (Vector2[T, N], bool) {
	v, err := ParseVector2[T, N](s, p)
	return v, err == nil
}

// ParseVector3 reads a three-component vector; see ParseVector2.
func ParseVector3[T any, N scalar.Scalar[T]](s string, p locale.Provider) (Vector3[T, N], error) {
	var c [3]T
	if err := parseVector[T, N](s, VectorFormatInfoOf(p), c[:]); err != nil {
		logParseFailure("ParseVector3", s, err)
		return Vector3[T, N]{}, geoErrorf("ParseVector3", err)
	}
	return Vector3[T, N]{X: c[0], Y: c[1], Z: c[2]}, nil
}

// TryParseVector3 is ParseVector3 reporting failure as false.
func TryParseVector3[T any, N scalar.Scalar[T]](s string, p locale.Provider) (Vector3[T, N], bool) {
	v, err := ParseVector3[T, N](s, p)
	return v, err == nil
}

// ParseComplex reads a complex number written per p's complex layout:
// "a + bi", "bi" or "a" with the default layout. Failures wrap ErrFormat.
func ParseComplex[T any, N scalar.Scalar[T]](s string, p locale.Provider) (Complex[T, N], error) {
	re, im, err := parseComplex[T, N](s, ComplexFormatInfoOf(p))
	if err != nil {
		logParseFailure("ParseComplex", s, err)
		return Complex[T, N]{}, geoErrorf("ParseComplex", err)
	}
	return Complex[T, N]{Real: re, Imag: im}, nil
}

// TryParseComplex is ParseComplex reporting failure as false.
func TryParseComplex[T any, N scalar.Scalar[T]](s string, p locale.Provider) (Complex[T, N], bool) {
	z, err := ParseComplex[T, N](s, p)
	return z, err == nil
}

// UnmarshalText implements encoding.TextUnmarshaler using invariant symbols.
func (v *Vector2[T, N]) UnmarshalText(b []byte) error {
	r, err := ParseVector2[T, N](string(b), locale.InvariantCulture())
	if err != nil {
		return err
	}
	*v = r
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler using invariant symbols.
func (v *Vector3[T, N]) UnmarshalText(b []byte) error {
	r, err := ParseVector3[T, N](string(b), locale.InvariantCulture())
	if err != nil {
		return err
	}
	*v = r
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler using invariant symbols.
func (z *Complex[T, N]) UnmarshalText(b []byte) error {
	r, err := ParseComplex[T, N](string(b), locale.InvariantCulture())
	if err != nil {
		return err
	}
	*z = r
	return nil
}
