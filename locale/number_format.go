// SPDX-License-Identifier: MIT

package locale

import (
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Invariant symbols (single source of truth).
const (
	InvariantDecimalSeparator = "."
	InvariantGroupSeparator   = ","
	InvariantListSeparator    = ","
	InvariantNegativeSign     = "-"
	InvariantPositiveSign     = "+"
	InvariantZeroDigit        = '0'
)

var numberFormatType = reflect.TypeFor[*NumberFormat]()

// NumberFormat carries the locale symbols used to render and read a single
// scalar component. Scalar codecs always work on ASCII text ("-12.5e+3");
// NumberFormat maps that text to and from its localized spelling.
//
// Empty fields fall back to the invariant symbol, so the zero value behaves like
// Invariant(). Group separators are informational only: components are never
// written with grouping, which keeps formatting lossless.
type NumberFormat struct {
	DecimalSeparator string `yaml:"decimal_separator"`
	GroupSeparator   string `yaml:"group_separator"`
	ListSeparator    string `yaml:"list_separator"`
	NegativeSign     string `yaml:"negative_sign"`
	PositiveSign     string `yaml:"positive_sign"`
	ZeroDigit        rune   `yaml:"zero_digit"`
}

// Invariant returns a fresh culture-independent number format.
func Invariant() *NumberFormat {
	return &NumberFormat{
		DecimalSeparator: InvariantDecimalSeparator,
		GroupSeparator:   InvariantGroupSeparator,
		ListSeparator:    InvariantListSeparator,
		NegativeSign:     InvariantNegativeSign,
		PositiveSign:     InvariantPositiveSign,
		ZeroDigit:        InvariantZeroDigit,
	}
}

// Lookup implements Provider: a NumberFormat provides itself.
func (nf *NumberFormat) Lookup(t reflect.Type) any {
	if t == numberFormatType {
		return nf
	}
	return nil
}

// Clone returns an independent copy (nil-safe: nil clones to Invariant()).
func (nf *NumberFormat) Clone() *NumberFormat {
	if nf == nil {
		return Invariant()
	}
	c := *nf
	return &c
}

// Validate checks that the symbols can be told apart while parsing.
// Stage 1: decimal separator must differ from the group separator and signs.
// Stage 2: zero digit, when set, must be a Unicode decimal digit.
func (nf *NumberFormat) Validate() error {
	if nf == nil {
		return nil
	}
	dec, neg, pos := nf.decimal(), nf.negative(), nf.positive()
	if dec == nf.GroupSeparator || dec == neg || dec == pos || neg == pos {
		return localeErrorf("NumberFormat.Validate", ErrInvalidNumberFormat)
	}
	if strings.ContainsFunc(dec, unicode.IsDigit) {
		return localeErrorf("NumberFormat.Validate", ErrInvalidNumberFormat)
	}
	if z := nf.zero(); !unicode.IsDigit(z) || !unicode.IsDigit(z+9) {
		return localeErrorf("NumberFormat.Validate", ErrInvalidNumberFormat)
	}
	return nil
}

// List returns the list separator, defaulting to ";" when the decimal
// separator is a comma and "," otherwise.
func (nf *NumberFormat) List() string {
	if nf != nil && nf.ListSeparator != "" {
		return nf.ListSeparator
	}
	if nf.decimal() == "," {
		return ";"
	}
	return InvariantListSeparator
}

func (nf *NumberFormat) decimal() string {
	if nf == nil || nf.DecimalSeparator == "" {
		return InvariantDecimalSeparator
	}
	return nf.DecimalSeparator
}

func (nf *NumberFormat) negative() string {
	if nf == nil || nf.NegativeSign == "" {
		return InvariantNegativeSign
	}
	return nf.NegativeSign
}

func (nf *NumberFormat) positive() string {
	if nf == nil || nf.PositiveSign == "" {
		return InvariantPositiveSign
	}
	return nf.PositiveSign
}

func (nf *NumberFormat) zero() rune {
	if nf == nil || nf.ZeroDigit == 0 {
		return InvariantZeroDigit
	}
	return nf.ZeroDigit
}

// AppendLocalized appends the localized spelling of ASCII numeric text
// (as produced by strconv) to dst.
// Complexity: O(len(ascii)).
func (nf *NumberFormat) AppendLocalized(dst []byte, ascii string) []byte {
	zero := nf.zero()
	for i := 0; i < len(ascii); i++ {
		c := ascii[i]
		switch {
		case c == '-':
			dst = append(dst, nf.negative()...)
		case c == '+':
			dst = append(dst, nf.positive()...)
		case c == '.':
			dst = append(dst, nf.decimal()...)
		case c >= '0' && c <= '9' && zero != InvariantZeroDigit:
			dst = utf8.AppendRune(dst, zero+rune(c-'0'))
		default:
			dst = append(dst, c)
		}
	}
	return dst
}

// Delocalize maps localized numeric text back to ASCII, trimming surrounding
// white space. A bare '.' is rejected when it is not the decimal separator so
// that "1.5" is not silently accepted under a comma-decimal locale.
// Complexity: O(len(s)).
func (nf *NumberFormat) Delocalize(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", localeErrorf("NumberFormat.Delocalize", ErrSyntax)
	}
	dec, neg, pos, zero := nf.decimal(), nf.negative(), nf.positive(), nf.zero()

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		rest := s[i:]
		switch {
		case strings.HasPrefix(rest, neg):
			b.WriteByte('-')
			i += len(neg)
		case strings.HasPrefix(rest, pos):
			b.WriteByte('+')
			i += len(pos)
		case strings.HasPrefix(rest, dec):
			b.WriteByte('.')
			i += len(dec)
		default:
			r, size := utf8.DecodeRuneInString(rest)
			switch {
			case r == '.':
				return "", localeErrorf("NumberFormat.Delocalize", ErrSyntax)
			case r >= zero && r <= zero+9:
				b.WriteByte(byte('0' + (r - zero)))
			default:
				b.WriteRune(r)
			}
			i += size
		}
	}
	return b.String(), nil
}
