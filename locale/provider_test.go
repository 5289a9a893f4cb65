// SPDX-License-Identifier: MIT
package locale_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JochCool/GeoLinearMath/locale"
)

// testInfo stands in for a composite-type format info.
type testInfo struct {
	tag    string
	number *locale.NumberFormat
}

func (i *testInfo) Lookup(t reflect.Type) any {
	if t == reflect.TypeFor[*testInfo]() {
		return i
	}
	return i.number.Lookup(t)
}

func buildTestInfo(nf *locale.NumberFormat) *testInfo {
	return &testInfo{tag: "synthesized", number: nf}
}

// queryOnly answers Lookup but is not itself a *testInfo.
type queryOnly struct{ info *testInfo }

func (q queryOnly) Lookup(t reflect.Type) any {
	if t == reflect.TypeFor[*testInfo]() {
		return q.info
	}
	return nil
}

func TestResolve_Chain(t *testing.T) {
	t.Parallel()

	direct := &testInfo{tag: "direct"}
	queried := &testInfo{tag: "queried"}
	comma := &locale.NumberFormat{DecimalSeparator: ","}

	tests := []struct {
		name       string
		provider   locale.Provider
		wantTag    string
		wantDecSep string
	}{
		{"instance used directly", direct, "direct", ""},
		{"provider queried", queryOnly{info: queried}, "queried", ""},
		{"culture queried", locale.InvariantCulture().With(queried), "queried", ""},
		{"synthesized from number format", comma, "synthesized", ","},
		{"synthesized from culture", locale.MustParse("de"), "synthesized", ","},
		{"typed nil lookup falls through", queryOnly{}, "synthesized", "."},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := locale.Resolve(tc.provider, buildTestInfo)
			require.NotNil(t, got)
			assert.Equal(t, tc.wantTag, got.tag)
			if tc.wantDecSep != "" {
				assert.Equal(t, tc.wantDecSep, got.number.DecimalSeparator)
			}
		})
	}
}

func TestResolve_NilUsesCurrent(t *testing.T) {
	// mutates the process-wide default; not parallel
	t.Cleanup(func() { locale.SetCurrent(nil) })

	locale.SetCurrent(&locale.NumberFormat{DecimalSeparator: ","})
	got := locale.Resolve[*testInfo](nil, buildTestInfo)
	assert.Equal(t, ",", got.number.DecimalSeparator)

	var typedNil *testInfo
	got = locale.Resolve[*testInfo](typedNil, buildTestInfo)
	assert.Equal(t, "synthesized", got.tag)

	locale.SetCurrent(nil)
	assert.Equal(t, ".", locale.NumberFormatOf(nil).DecimalSeparator)
}

func TestNumberFormatOf(t *testing.T) {
	t.Parallel()

	nf := &locale.NumberFormat{DecimalSeparator: "'"}
	assert.Same(t, nf, locale.NumberFormatOf(nf))
	assert.Equal(t, "'", locale.NumberFormatOf(locale.InvariantCulture().With(nf)).DecimalSeparator)
	assert.Equal(t, locale.Invariant(), locale.NumberFormatOf(queryOnly{}))
}
