// internal/platform/validator/validator.go
package validator

import (
	"regexp"
	"strings"
)

// Package name validators

// packageNameRegex is the distribution name grammar of PEP 508.
var packageNameRegex = regexp.MustCompile(`^(?i:[a-z0-9]|[a-z0-9][a-z0-9._-]*[a-z0-9])$`)

// separatorRunRegex matches the separators PEP 503 folds together.
var separatorRunRegex = regexp.MustCompile(`[-_.]+`)

// IsPackageName reports whether name is a valid distribution name.
// Names starting with "-" are rejected, so a name can never be read as a
// package manager option.
func IsPackageName(name string) bool {
	if len(name) == 0 || len(name) > 214 {
		return false
	}
	return packageNameRegex.MatchString(name)
}

// NormalizePackageName returns the canonical form of a distribution name:
// lower case with runs of "-", "_" and "." collapsed to "-".
func NormalizePackageName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return separatorRunRegex.ReplaceAllString(name, "-")
}

// Module path validators

var identifierRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// IsModulePath reports whether path is a dotted import path such as
// "rich.console".
func IsModulePath(path string) bool {
	if path == "" {
		return false
	}
	for _, part := range strings.Split(path, ".") {
		if !identifierRegex.MatchString(part) {
			return false
		}
	}
	return true
}

// Interpreter validators

// IsCommandName reports whether s can name an executable: non-empty, no
// leading "-" and no control characters. Paths with spaces are allowed.
func IsCommandName(s string) bool {
	if s == "" || strings.HasPrefix(s, "-") {
		return false
	}
	for _, r := range s {
		if r < 0x20 || r == 0x7f {
			return false
		}
	}
	return true
}
