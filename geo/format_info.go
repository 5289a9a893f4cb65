// SPDX-License-Identifier: MIT

// Package geo: text layout configuration for vectors and complex numbers.
// This file defines:
//   - documented default delimiters (single source of truth),
//   - VectorFormatInfo / ComplexFormatInfo, both locale.Providers,
//   - WithX option constructors (panic on empty delimiters),
//   - VectorFormatInfoOf / ComplexFormatInfoOf resolution through locale.Resolve.
//
// A format info never changes after construction; share it freely.

package geo

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/JochCool/GeoLinearMath/locale"
)

// ---------- Defaults ----------

const (
	// DefaultOpen and DefaultClose bracket vector components.
	DefaultOpen  = "("
	DefaultClose = ")"

	// DefaultOperator joins the real and imaginary part of a complex number.
	DefaultOperator = " + "

	// DefaultUnit marks the imaginary part.
	DefaultUnit = "i"
)

var (
	vectorFormatInfoType  = reflect.TypeFor[*VectorFormatInfo]()
	complexFormatInfoType = reflect.TypeFor[*ComplexFormatInfo]()
	numberFormatType      = reflect.TypeFor[*locale.NumberFormat]()
)

// VectorFormatInfo describes how vectors are written: Open, components joined
// by Separator, Close. Number renders each component.
type VectorFormatInfo struct {
	Open      string               `yaml:"open"`
	Separator string               `yaml:"separator"`
	Close     string               `yaml:"close"`
	Number    *locale.NumberFormat `yaml:"number,omitempty"`
}

// ComplexFormatInfo describes how complex numbers are written:
// real, Operator, imaginary, Unit.
type ComplexFormatInfo struct {
	Operator string               `yaml:"operator"`
	Unit     string               `yaml:"unit"`
	Number   *locale.NumberFormat `yaml:"number,omitempty"`
}

// VectorOption customizes a VectorFormatInfo.
type VectorOption func(*VectorFormatInfo)

// ComplexOption customizes a ComplexFormatInfo.
type ComplexOption func(*ComplexFormatInfo)

// WithBrackets sets the opening and closing delimiters.
// Panics on an empty delimiter.
func WithBrackets(open, closing string) VectorOption {
	mustDelimiter("WithBrackets", open)
	mustDelimiter("WithBrackets", closing)
	return func(f *VectorFormatInfo) { f.Open, f.Close = open, closing }
}

// WithSeparator sets the component separator. Panics on an empty separator.
func WithSeparator(sep string) VectorOption {
	mustDelimiter("WithSeparator", sep)
	return func(f *VectorFormatInfo) { f.Separator = sep }
}

// WithOperator sets the infix operator between real and imaginary part.
// Panics on an empty operator.
func WithOperator(op string) ComplexOption {
	mustDelimiter("WithOperator", op)
	return func(f *ComplexFormatInfo) { f.Operator = op }
}

// WithUnit sets the imaginary-unit marker. Panics on an empty unit.
func WithUnit(unit string) ComplexOption {
	mustDelimiter("WithUnit", unit)
	return func(f *ComplexFormatInfo) { f.Unit = unit }
}

func mustDelimiter(tag, s string) {
	if s == "" {
		panic("geo: " + tag + ": empty delimiter")
	}
}

// NewVectorFormatInfo returns the default vector layout for nf ("(x, y)" with
// invariant symbols; the separator is the locale's list separator plus a space)
// with opts applied. nil nf means locale.Invariant().
func NewVectorFormatInfo(nf *locale.NumberFormat, opts ...VectorOption) *VectorFormatInfo {
	nf = nf.Clone()
	f := &VectorFormatInfo{
		Open:      DefaultOpen,
		Separator: nf.List() + " ",
		Close:     DefaultClose,
		Number:    nf,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// NewComplexFormatInfo returns the default complex layout for nf ("a + bi")
// with opts applied. nil nf means locale.Invariant().
func NewComplexFormatInfo(nf *locale.NumberFormat, opts ...ComplexOption) *ComplexFormatInfo {
	f := &ComplexFormatInfo{
		Operator: DefaultOperator,
		Unit:     DefaultUnit,
		Number:   nf.Clone(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// VectorFormatInfoOf resolves the vector layout for p: p itself, p's lookup
// result, or NewVectorFormatInfo(p's number format). nil p means locale.Current().
func VectorFormatInfoOf(p locale.Provider) *VectorFormatInfo {
	return locale.Resolve(p, func(nf *locale.NumberFormat) *VectorFormatInfo {
		return NewVectorFormatInfo(nf)
	})
}

// ComplexFormatInfoOf is VectorFormatInfoOf for complex numbers.
func ComplexFormatInfoOf(p locale.Provider) *ComplexFormatInfo {
	return locale.Resolve(p, func(nf *locale.NumberFormat) *ComplexFormatInfo {
		return NewComplexFormatInfo(nf)
	})
}

// Lookup implements locale.Provider.
func (f *VectorFormatInfo) Lookup(t reflect.Type) any {
	switch t {
	case vectorFormatInfoType:
		return f
	case numberFormatType:
		return f.Number
	}
	return nil
}

// Lookup implements locale.Provider.
func (f *ComplexFormatInfo) Lookup(t reflect.Type) any {
	switch t {
	case complexFormatInfoType:
		return f
	case numberFormatType:
		return f.Number
	}
	return nil
}

// Validate checks that text written with f can be split back into components.
// Stage 1: every delimiter is non-empty.
// Stage 2: the separator does not occur inside a bracket and shares no digit,
// decimal separator or exponent marker with the numbers it separates. Signs
// are allowed; the parser tries every separator occurrence.
// Stage 3: the number format itself is valid.
func (f *VectorFormatInfo) Validate() error {
	if f.Open == "" || f.Separator == "" || f.Close == "" {
		return geoErrorf("VectorFormatInfo.Validate", ErrInvalidArgument)
	}
	if strings.Contains(f.Open, f.Separator) || strings.Contains(f.Close, f.Separator) {
		return geoErrorf("VectorFormatInfo.Validate", ErrInvalidArgument)
	}
	if overlapsNumber(f.Separator, f.Number) {
		return geoErrorf("VectorFormatInfo.Validate", ErrInvalidArgument)
	}
	if err := f.Number.Validate(); err != nil {
		return geoErrorf("VectorFormatInfo.Validate", err)
	}
	return nil
}

// Validate checks that complex text written with f can be read back: the
// operator and unit are non-empty and, as for vector separators, share no
// digit, decimal separator or exponent marker with the number format.
func (f *ComplexFormatInfo) Validate() error {
	if f.Operator == "" || f.Unit == "" {
		return geoErrorf("ComplexFormatInfo.Validate", ErrInvalidArgument)
	}
	if overlapsNumber(f.Operator, f.Number) || overlapsNumber(f.Unit, f.Number) {
		return geoErrorf("ComplexFormatInfo.Validate", ErrInvalidArgument)
	}
	if err := f.Number.Validate(); err != nil {
		return geoErrorf("ComplexFormatInfo.Validate", err)
	}
	return nil
}

// overlapsNumber reports whether delim contains a decimal digit (of any
// script), nf's decimal separator or an exponent marker.
func overlapsNumber(delim string, nf *locale.NumberFormat) bool {
	return strings.ContainsFunc(delim, unicode.IsDigit) ||
		strings.ContainsAny(delim, "eE") ||
		strings.Contains(delim, decimalOf(nf))
}

func decimalOf(nf *locale.NumberFormat) string {
	if nf == nil || nf.DecimalSeparator == "" {
		return locale.InvariantDecimalSeparator
	}
	return nf.DecimalSeparator
}
