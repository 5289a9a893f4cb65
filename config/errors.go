// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
)

// ErrInvalidProfile reports a profile that cannot be turned into a provider:
// unknown YAML keys, an unknown locale, or delimiters that would make text
// ambiguous.
var ErrInvalidProfile = errors.New("config: invalid profile")

func configErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
