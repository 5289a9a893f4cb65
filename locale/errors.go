// SPDX-License-Identifier: MIT
// Package locale: sentinel errors.
// Callers match them with errors.Is; call sites wrap with localeErrorf.

package locale

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownLocale is returned when a locale name cannot be parsed as a
	// BCP 47 tag (or a POSIX "ll_CC.codeset" value).
	ErrUnknownLocale = errors.New("locale: unknown locale")

	// ErrSyntax reports localized numeric text that cannot be mapped back to
	// the ASCII form understood by scalar parsers.
	ErrSyntax = errors.New("locale: malformed number")

	// ErrInvalidNumberFormat reports a NumberFormat whose symbols are ambiguous,
	// e.g. identical decimal and group separators.
	ErrInvalidNumberFormat = errors.New("locale: invalid number format")
)

func localeErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
