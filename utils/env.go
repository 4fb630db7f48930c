// api/utils/env.go
package utils

import (
	"os"
	"strconv"
	"strings"
)

// EnvString returns the named environment variable, or def when unset or
// blank.
func EnvString(name, def string) string {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	return v
}

// EnvInt returns the named environment variable parsed as an int, or def
// when unset or unparseable.
func EnvInt(name string, def int) int {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}
