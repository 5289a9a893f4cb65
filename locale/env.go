// SPDX-License-Identifier: MIT

package locale

import (
	"os"

	geolinearmath "github.com/JochCool/GeoLinearMath"
)

// envKeys lists the POSIX variables consulted by FromEnv, highest priority first.
var envKeys = []string{"LC_ALL", "LC_NUMERIC", "LANG"}

// FromEnv returns the culture named by LC_ALL, LC_NUMERIC or LANG (first
// non-empty, parseable value wins), or InvariantCulture() when none is usable.
func FromEnv() *Culture {
	return fromEnv(os.Getenv)
}

func fromEnv(getenv func(string) string) *Culture {
	for _, key := range envKeys {
		v := getenv(key)
		if v == "" {
			continue
		}
		c, err := Parse(v)
		if err != nil {
			geolinearmath.Logger().Warn("locale: ignoring unusable environment value",
				"key", key, "value", v, "error", err)
			continue
		}
		return c
	}
	return InvariantCulture()
}
