// SPDX-License-Identifier: MIT

// Package config loads text-layout profiles for vectors and complex numbers
// from YAML and turns them into a locale.Provider.
//
// Example profile:
//
//	locale: de-DE
//	number:
//	  negative_sign: "−"
//	vector:
//	  open: "["
//	  separator: " | "
//	  close: "]"
//	complex:
//	  unit: "j"
//
// Every field is optional. Empty fields keep the value derived from the
// locale, so the profile above still writes "1,5" for one and a half.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	geolinearmath "github.com/JochCool/GeoLinearMath"
	"github.com/JochCool/GeoLinearMath/geo"
	"github.com/JochCool/GeoLinearMath/locale"
)

// SystemLocale selects the locale from LC_ALL / LC_NUMERIC / LANG.
const SystemLocale = "system"

// Profile is the YAML shape of a text layout.
type Profile struct {
	// Locale is a BCP 47 tag or POSIX locale name. Empty means the invariant
	// culture; SystemLocale reads the environment.
	Locale string `yaml:"locale"`

	// Number overrides individual symbols of the locale's number format.
	Number locale.NumberFormat `yaml:"number"`

	Vector  VectorLayout  `yaml:"vector"`
	Complex ComplexLayout `yaml:"complex"`
}

// VectorLayout overrides the vector delimiters.
type VectorLayout struct {
	Open      string `yaml:"open"`
	Separator string `yaml:"separator"`
	Close     string `yaml:"close"`
}

// ComplexLayout overrides the complex-number delimiters.
type ComplexLayout struct {
	Operator string `yaml:"operator"`
	Unit     string `yaml:"unit"`
}

// Defaults returns the empty profile: invariant culture, default layout.
func Defaults() *Profile {
	return &Profile{}
}

// Parse decodes a YAML profile. Unknown keys are rejected so that typos do
// not silently fall back to defaults.
func Parse(data []byte) (*Profile, error) {
	p := Defaults()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(p); err != nil && !errors.Is(err, io.EOF) {
		return nil, configErrorf("config.Parse", fmt.Errorf("%w: %w", ErrInvalidProfile, err))
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// LoadFromFile reads and parses the profile at path.
func LoadFromFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, configErrorf("config.LoadFromFile", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, configErrorf("config.LoadFromFile", err)
	}
	geolinearmath.Logger().Info("config: profile loaded", "path", path, "locale", p.Locale)
	return p, nil
}

// Validate builds the provider once and reports whether it would be usable.
func (p *Profile) Validate() error {
	_, err := p.Provider()
	return err
}

// Provider resolves the profile into a culture that answers lookups for the
// number format, the vector layout and the complex layout.
//
//   - Stage 1: pick the base culture from Locale.
//   - Stage 2: overlay non-empty Number symbols.
//   - Stage 3: derive both layouts from the merged number format and overlay
//     non-empty delimiters.
//   - Stage 4: validate everything.
func (p *Profile) Provider() (*locale.Culture, error) {
	base, err := p.baseCulture()
	if err != nil {
		return nil, configErrorf("Profile.Provider", fmt.Errorf("%w: %w", ErrInvalidProfile, err))
	}

	nf := mergeNumber(base.NumberFormat(), &p.Number)
	if err := nf.Validate(); err != nil {
		return nil, configErrorf("Profile.Provider", fmt.Errorf("%w: %w", ErrInvalidProfile, err))
	}

	vf := geo.NewVectorFormatInfo(nf, p.Vector.options()...)
	if err := vf.Validate(); err != nil {
		return nil, configErrorf("Profile.Provider", fmt.Errorf("%w: %w", ErrInvalidProfile, err))
	}
	cf := geo.NewComplexFormatInfo(nf, p.Complex.options()...)
	if err := cf.Validate(); err != nil {
		return nil, configErrorf("Profile.Provider", fmt.Errorf("%w: %w", ErrInvalidProfile, err))
	}
	return base.With(nf, vf, cf), nil
}

func (p *Profile) baseCulture() (*locale.Culture, error) {
	switch p.Locale {
	case "":
		return locale.InvariantCulture(), nil
	case SystemLocale:
		return locale.FromEnv(), nil
	}
	return locale.Parse(p.Locale)
}

func (l VectorLayout) options() []geo.VectorOption {
	var opts []geo.VectorOption
	if l.Open != "" || l.Close != "" {
		open, closing := l.Open, l.Close
		if open == "" {
			open = geo.DefaultOpen
		}
		if closing == "" {
			closing = geo.DefaultClose
		}
		opts = append(opts, geo.WithBrackets(open, closing))
	}
	if l.Separator != "" {
		opts = append(opts, geo.WithSeparator(l.Separator))
	}
	return opts
}

func (l ComplexLayout) options() []geo.ComplexOption {
	var opts []geo.ComplexOption
	if l.Operator != "" {
		opts = append(opts, geo.WithOperator(l.Operator))
	}
	if l.Unit != "" {
		opts = append(opts, geo.WithUnit(l.Unit))
	}
	return opts
}

// mergeNumber overlays the non-empty symbols of over onto base (a private copy).
func mergeNumber(base, over *locale.NumberFormat) *locale.NumberFormat {
	if over.DecimalSeparator != "" {
		base.DecimalSeparator = over.DecimalSeparator
		// Drop inherited symbols that would now collide; List() then picks
		// a separator that cannot.
		if over.ListSeparator == "" && base.ListSeparator == over.DecimalSeparator {
			base.ListSeparator = ""
		}
		if over.GroupSeparator == "" && base.GroupSeparator == over.DecimalSeparator {
			base.GroupSeparator = ""
		}
	}
	if over.GroupSeparator != "" {
		base.GroupSeparator = over.GroupSeparator
	}
	if over.ListSeparator != "" {
		base.ListSeparator = over.ListSeparator
	}
	if over.NegativeSign != "" {
		base.NegativeSign = over.NegativeSign
	}
	if over.PositiveSign != "" {
		base.PositiveSign = over.PositiveSign
	}
	if over.ZeroDigit != 0 {
		base.ZeroDigit = over.ZeroDigit
	}
	return base
}
