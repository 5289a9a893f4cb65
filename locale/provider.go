// SPDX-License-Identifier: MIT

package locale

import (
	"reflect"
	"sync/atomic"

	geolinearmath "github.com/JochCool/GeoLinearMath"
)

// Provider is a loosely typed source of formatting configuration: a culture,
// a number format, or a composite-type format info.
//
// Lookup returns the provider's configuration object of type t, or nil when it
// has none. Implementations must be safe for concurrent use.
type Provider interface {
	Lookup(t reflect.Type) any
}

// Resolve obtains a typed format configuration F from p using the one
// resolution chain shared by every composite type:
//
//   - Stage 1: nil p means Current().
//   - Stage 2: p already is an F — use it directly.
//   - Stage 3: p.Lookup(type of F) yields an F — use that.
//   - Stage 4: synthesize build(NumberFormatOf(p)).
//
// Complexity: O(1) plus the cost of build.
func Resolve[F any](p Provider, build func(nf *NumberFormat) F) F {
	if isNil(p) {
		p = Current()
	}
	if f, ok := p.(F); ok {
		return f
	}
	target := reflect.TypeFor[F]()
	if f, ok := p.Lookup(target).(F); ok && !isNil(f) {
		return f
	}

	nf := NumberFormatOf(p)
	geolinearmath.Logger().Debug("locale: synthesized format info",
		"type", target.String(), "decimal", nf.decimal())
	return build(nf)
}

// NumberFormatOf returns the number format carried by p, falling back to
// Invariant() when p has none. nil p means Current().
func NumberFormatOf(p Provider) *NumberFormat {
	if isNil(p) {
		p = Current()
	}
	if nf, ok := p.(*NumberFormat); ok {
		return nf
	}
	if nf, ok := p.Lookup(numberFormatType).(*NumberFormat); ok && nf != nil {
		return nf
	}
	return Invariant()
}

// isNil reports untyped nil and typed nil pointers alike.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Interface, reflect.Func, reflect.Slice:
		return rv.IsNil()
	}
	return false
}

// providerBox lets atomic.Pointer hold an interface value.
type providerBox struct{ p Provider }

var current atomic.Pointer[providerBox]

func init() {
	current.Store(&providerBox{p: InvariantCulture()})
}

// Current returns the process-wide default provider used when callers pass
// nil. It starts as InvariantCulture(); see SetCurrent and FromEnv.
func Current() Provider {
	return current.Load().p
}

// SetCurrent replaces the default provider. nil restores InvariantCulture().
// Safe for concurrent use.
func SetCurrent(p Provider) {
	if isNil(p) {
		p = InvariantCulture()
	}
	current.Store(&providerBox{p: p})
}
