// SPDX-License-Identifier: MIT
// Package locale_test covers NumberFormat localization round-trips.
package locale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JochCool/GeoLinearMath/locale"
)

// arabicIndic is a hand-built format exercising multi-byte symbols and digits.
func arabicIndic() *locale.NumberFormat {
	return &locale.NumberFormat{
		DecimalSeparator: "٫",
		GroupSeparator:   "٬",
		NegativeSign:     "؜-",
		PositiveSign:     "؜+",
		ZeroDigit:        '٠',
	}
}

func TestNumberFormat_LocalizeRoundTrip(t *testing.T) {
	t.Parallel()

	formats := map[string]*locale.NumberFormat{
		"invariant": locale.Invariant(),
		"zero":      {},
		"comma":     {DecimalSeparator: ",", GroupSeparator: "."},
		"minus":     {NegativeSign: "−"},
		"arabic":    arabicIndic(),
	}
	inputs := []string{"0", "-12.5", "1e+21", "-4.5e-07", "+Inf", "NaN", "18446744073709551615"}

	for name, nf := range formats {
		nf := nf
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			for _, in := range inputs {
				local := string(nf.AppendLocalized(nil, in))
				back, err := nf.Delocalize(local)
				require.NoError(t, err, "delocalize %q", local)
				assert.Equal(t, in, back)
			}
		})
	}
}

func TestNumberFormat_AppendLocalized(t *testing.T) {
	t.Parallel()

	nf := &locale.NumberFormat{DecimalSeparator: ",", NegativeSign: "−"}
	assert.Equal(t, "−1,5", string(nf.AppendLocalized(nil, "-1.5")))
	assert.Equal(t, "x=٣٫٥", string(arabicIndic().AppendLocalized([]byte("x="), "3.5")))
}

func TestNumberFormat_Delocalize(t *testing.T) {
	t.Parallel()

	comma := &locale.NumberFormat{DecimalSeparator: ","}
	tests := []struct {
		name    string
		nf      *locale.NumberFormat
		in      string
		want    string
		wantErr error
	}{
		{"trims space", locale.Invariant(), "  42 \t", "42", nil},
		{"comma decimal", comma, "-3,25", "-3.25", nil},
		{"rejects dot under comma", comma, "3.25", "", locale.ErrSyntax},
		{"empty", locale.Invariant(), "   ", "", locale.ErrSyntax},
		{"nil format", nil, "1.5", "1.5", nil},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := tc.nf.Delocalize(tc.in)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNumberFormat_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, locale.Invariant().Validate())
	require.NoError(t, (*locale.NumberFormat)(nil).Validate())
	require.NoError(t, arabicIndic().Validate())

	require.ErrorIs(t, (&locale.NumberFormat{DecimalSeparator: ",", GroupSeparator: ","}).Validate(),
		locale.ErrInvalidNumberFormat)
	require.ErrorIs(t, (&locale.NumberFormat{DecimalSeparator: "-"}).Validate(),
		locale.ErrInvalidNumberFormat)
	require.ErrorIs(t, (&locale.NumberFormat{ZeroDigit: 'a'}).Validate(),
		locale.ErrInvalidNumberFormat)
}

func TestNumberFormat_List(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ",", locale.Invariant().List())
	assert.Equal(t, ";", (&locale.NumberFormat{DecimalSeparator: ","}).List())
	assert.Equal(t, "|", (&locale.NumberFormat{ListSeparator: "|"}).List())
	assert.Equal(t, ",", (*locale.NumberFormat)(nil).List())
}

func TestNumberFormat_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	a := locale.Invariant()
	b := a.Clone()
	b.DecimalSeparator = ","
	assert.Equal(t, ".", a.DecimalSeparator)
	assert.Equal(t, locale.Invariant(), (*locale.NumberFormat)(nil).Clone())
}
