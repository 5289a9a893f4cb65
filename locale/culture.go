// SPDX-License-Identifier: MIT

package locale

import (
	"reflect"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	geolinearmath "github.com/JochCool/GeoLinearMath"
)

// Culture is a locale-level Provider. It carries the CLDR number symbols of a
// language tag and any composite format infos registered with With.
// A Culture is immutable; With/WithNumberFormat return modified copies.
type Culture struct {
	tag   language.Tag
	nf    *NumberFormat
	infos map[reflect.Type]any
}

// probeCache memoizes CLDR probes per canonical tag string.
var probeCache sync.Map // string -> *NumberFormat

// InvariantCulture returns the culture-independent provider (tag "und").
func InvariantCulture() *Culture {
	return &Culture{tag: language.Und, nf: Invariant()}
}

// ForTag returns the culture for tag, deriving its number symbols from the
// CLDR data bundled with golang.org/x/text.
// Complexity: O(1) amortized (probe results are cached per tag).
func ForTag(tag language.Tag) *Culture {
	if tag == language.Und {
		return InvariantCulture()
	}
	key := tag.String()
	if nf, ok := probeCache.Load(key); ok {
		return &Culture{tag: tag, nf: nf.(*NumberFormat).Clone()}
	}
	nf := probeNumberFormat(tag)
	probeCache.Store(key, nf)

	geolinearmath.Logger().Debug("locale: probed number symbols",
		"tag", key, "decimal", nf.DecimalSeparator, "group", nf.GroupSeparator,
		"negative", nf.NegativeSign, "zero", string(nf.ZeroDigit))
	return &Culture{tag: tag, nf: nf.Clone()}
}

// Parse resolves a BCP 47 name ("de-CH") or a POSIX locale value
// ("de_CH.UTF-8@euro"). "C" and "POSIX" map to InvariantCulture().
func Parse(name string) (*Culture, error) {
	name = strings.TrimSpace(name)
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	switch name {
	case "":
		return nil, localeErrorf("Parse", ErrUnknownLocale)
	case "C", "POSIX":
		return InvariantCulture(), nil
	}
	tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		return nil, localeErrorf("Parse("+name+")", ErrUnknownLocale)
	}
	return ForTag(tag), nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level variables.
func MustParse(name string) *Culture {
	c, err := Parse(name)
	if err != nil {
		panic(err)
	}
	return c
}

// Tag returns the culture's language tag.
func (c *Culture) Tag() language.Tag { return c.tag }

// String returns the BCP 47 form of the tag.
func (c *Culture) String() string { return c.tag.String() }

// NumberFormat returns a copy of the culture's number symbols.
func (c *Culture) NumberFormat() *NumberFormat { return c.nf.Clone() }

// WithNumberFormat returns a copy of c using nf for its number symbols.
func (c *Culture) WithNumberFormat(nf *NumberFormat) *Culture {
	out := c.clone()
	out.nf = nf.Clone()
	return out
}

// With returns a copy of c that answers Lookup for the dynamic type of every
// info (typically *geo.VectorFormatInfo or *geo.ComplexFormatInfo).
// Later infos of the same type replace earlier ones; nil infos are ignored.
func (c *Culture) With(infos ...any) *Culture {
	out := c.clone()
	for _, info := range infos {
		if isNil(info) {
			continue
		}
		if nf, ok := info.(*NumberFormat); ok {
			out.nf = nf.Clone()
			continue
		}
		out.infos[reflect.TypeOf(info)] = info
	}
	return out
}

// Lookup implements Provider.
func (c *Culture) Lookup(t reflect.Type) any {
	if t == numberFormatType {
		return c.nf
	}
	if info, ok := c.infos[t]; ok {
		return info
	}
	return nil
}

func (c *Culture) clone() *Culture {
	out := &Culture{tag: c.tag, nf: c.nf, infos: make(map[reflect.Type]any, len(c.infos)+1)}
	for k, v := range c.infos {
		out.infos[k] = v
	}
	return out
}

// probeNumberFormat derives the symbols of tag by formatting known values
// through x/text and reading the separators back.
//
// Implementation:
//   - Stage 1: format 1234567.5 with grouping; split into digit and non-digit runs.
//     One non-digit run ⇒ decimal only; more ⇒ first is the group separator,
//     last is the decimal separator.
//   - Stage 2: the first digit of that probe is "1"; the zero digit is one below.
//   - Stage 3: the negative sign is everything before the first digit of -1.
func probeNumberFormat(tag language.Tag) *NumberFormat {
	p := message.NewPrinter(tag)
	grouped := p.Sprintf("%v", number.Decimal(1234567.5,
		number.MinFractionDigits(1), number.MaxFractionDigits(1)))
	negative := p.Sprintf("%v", number.Decimal(-1))

	nf := Invariant()
	var (
		seps []string
		run  strings.Builder
		zero rune = -1
	)
	for _, r := range grouped {
		if unicode.IsDigit(r) {
			if zero < 0 {
				zero = r - 1
			}
			if run.Len() > 0 {
				seps = append(seps, run.String())
				run.Reset()
			}
			continue
		}
		run.WriteRune(r)
	}

	switch len(seps) {
	case 0:
		// keep invariant symbols
	case 1:
		nf.DecimalSeparator = seps[0]
		nf.GroupSeparator = ""
	default:
		nf.GroupSeparator = seps[0]
		nf.DecimalSeparator = seps[len(seps)-1]
	}
	if zero >= 0 && unicode.IsDigit(zero) {
		nf.ZeroDigit = zero
	}
	if i := strings.IndexFunc(negative, unicode.IsDigit); i > 0 {
		nf.NegativeSign = negative[:i]
	}
	nf.ListSeparator = InvariantListSeparator
	if nf.DecimalSeparator == "," {
		nf.ListSeparator = ";"
	}

	if err := nf.Validate(); err != nil {
		geolinearmath.Logger().Warn("locale: unusable CLDR symbols, using invariant",
			"tag", tag.String(), "error", err)
		return Invariant()
	}
	return nf
}
