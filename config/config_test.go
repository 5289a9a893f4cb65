// SPDX-License-Identifier: MIT
package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JochCool/GeoLinearMath/config"
	"github.com/JochCool/GeoLinearMath/geo"
	"github.com/JochCool/GeoLinearMath/locale"
	"github.com/JochCool/GeoLinearMath/scalar"
)

const germanBrackets = `
locale: de-DE
number:
  negative_sign: "−"
vector:
  open: "["
  separator: " | "
  close: "]"
complex:
  unit: "j"
`

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	p, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Defaults(), p)

	c, err := p.Provider()
	require.NoError(t, err)
	assert.Equal(t, "(1.5, -2)", geo.Vector2F64{X: 1.5, Y: -2}.Text(c))
	assert.Equal(t, "1 + 2i", geo.ComplexI64{Real: 1, Imag: 2}.Text(c))
}

func TestParse_Profile(t *testing.T) {
	t.Parallel()

	p, err := config.Parse([]byte(germanBrackets))
	require.NoError(t, err)
	assert.Equal(t, "de-DE", p.Locale)
	assert.Equal(t, "−", p.Number.NegativeSign)
	assert.Equal(t, " | ", p.Vector.Separator)

	c, err := p.Provider()
	require.NoError(t, err)

	v := geo.Vector3F64{X: 1.5, Y: -2, Z: 0}
	text := v.Text(c)
	assert.Equal(t, "[1,5 | −2 | 0]", text)
	back, err := geo.ParseVector3[float64, scalar.Float[float64]](text, c)
	require.NoError(t, err)
	assert.Equal(t, v, back)

	z := geo.ComplexF64{Real: -0.5, Imag: 2}
	assert.Equal(t, "−0,5 + 2j", z.Text(c))

	// The number format travels with the culture for plain scalar lookups.
	assert.Equal(t, ",", locale.NumberFormatOf(c).DecimalSeparator)
}

func TestParse_NumberOverrideKeepsListUnambiguous(t *testing.T) {
	t.Parallel()

	p, err := config.Parse([]byte("number:\n  decimal_separator: \",\"\n"))
	require.NoError(t, err)
	c, err := p.Provider()
	require.NoError(t, err)
	assert.Equal(t, "(0,25; 1)", geo.Vector2F64{X: 0.25, Y: 1}.Text(c))
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"unknown key":        "locale: en\ncolour: red\n",
		"not yaml":           "vector: [1, 2\n",
		"unknown locale":     "locale: not a locale!\n",
		"separator clash":    "number:\n  decimal_separator: \",\"\nvector:\n  separator: \",\"\n",
		"ambiguous symbols":  "number:\n  decimal_separator: \"-\"\n",
		"separator in close": "vector:\n  separator: \")\"\n",
	}
	for name, doc := range tests {
		doc := doc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := config.Parse([]byte(doc))
			require.ErrorIs(t, err, config.ErrInvalidProfile)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(germanBrackets), 0o600))

	p, err := config.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "j", p.Complex.Unit)

	_, err = config.LoadFromFile(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestProvider_SystemLocale(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_NUMERIC", "de_DE.UTF-8")
	t.Setenv("LANG", "en_US.UTF-8")

	c, err := (&config.Profile{Locale: config.SystemLocale}).Provider()
	require.NoError(t, err)
	assert.Equal(t, "(1,5; 2)", geo.Vector2F64{X: 1.5, Y: 2}.Text(c))
}
