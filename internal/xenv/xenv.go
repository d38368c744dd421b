// Package xenv discovers the system and user dictionary search paths from
// the CHEWING_PATH and CHEWING_USER_PATH environment variables.
package xenv

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	pathVar     = "CHEWING_PATH"
	userPathVar = "CHEWING_USER_PATH"
)

// SystemPaths returns the ordered CHEWING_PATH search list, split on the
// platform's path-list separator (':' on unix, ';' on windows). An unset
// or empty CHEWING_PATH yields an empty slice; callers fall back to
// whatever default the host wants to apply.
func SystemPaths() []string {
	v, ok := os.LookupEnv(pathVar)
	if !ok || v == "" {
		return nil
	}
	parts := strings.Split(v, string(filepath.ListSeparator))
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// UserPath returns CHEWING_USER_PATH, if set.
func UserPath() (string, bool) {
	v, ok := os.LookupEnv(userPathVar)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// FindSystemFile searches SystemPaths() in order for name, returning the
// full path in the first directory where it exists: first hit wins per
// file name.
func FindSystemFile(name string) (string, bool) {
	for _, dir := range SystemPaths() {
		full := filepath.Join(dir, name)
		if _, err := os.Stat(full); err == nil {
			return full, true
		}
	}
	return "", false
}
