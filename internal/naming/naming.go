// Package naming validates module names and converts them between the
// casing conventions used for paths (kebab-case) and generated TypeScript
// type names (PascalCase).
package naming

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Sentinel errors returned by Validate.
var (
	// ErrNameRequired indicates an empty module name.
	ErrNameRequired = errors.New("module name is required")

	// ErrInvalidName indicates a name that does not match NamePattern.
	ErrInvalidName = errors.New("name must start with a letter and contain only letters, digits and hyphens")
)

// NamePattern is the accepted shape of a user supplied module name.
var NamePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9-]*$`)

var (
	lowerUpperPattern  = regexp.MustCompile(`([a-z])([A-Z])`)
	hyphenLowerPattern = regexp.MustCompile(`-([a-z])`)
)

// Clean trims surrounding whitespace and applies NFC normalization so that
// pasted input compares the same as typed input.
func Clean(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}

// Validate reports whether name is an acceptable module name.
func Validate(name string) error {
	name = Clean(name)
	if name == "" {
		return ErrNameRequired
	}
	if !NamePattern.MatchString(name) {
		return ErrInvalidName
	}
	return nil
}

// KebabCase inserts a hyphen between a lowercase letter and a following
// uppercase letter, then lowercases the result. "UserProfile" becomes
// "user-profile"; kebab-case input is returned unchanged.
func KebabCase(s string) string {
	return strings.ToLower(lowerUpperPattern.ReplaceAllString(s, "$1-$2"))
}

// CamelCase removes each hyphen followed by a lowercase letter and
// uppercases that letter: "user-profile" becomes "userProfile".
func CamelCase(s string) string {
	return hyphenLowerPattern.ReplaceAllStringFunc(s, func(m string) string {
		return strings.ToUpper(m[1:])
	})
}

// PascalCase capitalizes the first letter of CamelCase(s).
func PascalCase(s string) string {
	return Capitalize(CamelCase(s))
}

// Capitalize uppercases the first rune of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
