// Package validation holds the field predicates shared by the form client
// and the submission endpoints, so the required-field rules cannot drift
// between the two sides.
package validation

import (
	"regexp"
	"strings"
)

// Intentionally permissive local@domain.tld shape, not full RFC validation.
var emailRE = regexp.MustCompile(`^\S+@\S+\.\S+$`)

var digitsRE = regexp.MustCompile(`^\d+$`)

// Required reports whether s is non-empty after trimming surrounding
// whitespace.
func Required(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsEmail reports whether s looks like an email address.
func IsEmail(s string) bool {
	return emailRE.MatchString(strings.TrimSpace(s))
}

// IsDigits reports whether s consists solely of ASCII digits after trimming.
// A negative or empty value fails.
func IsDigits(s string) bool {
	return digitsRE.MatchString(strings.TrimSpace(s))
}

// Field pairs a payload field name with its submitted value.
type Field struct {
	Name  string
	Value string
}

// FirstMissing returns the name of the first field whose value is empty
// after trimming, or "" when every field is present. Order of the slice is
// the order errors are reported in.
func FirstMissing(fields ...Field) string {
	for _, f := range fields {
		if !Required(f.Value) {
			return f.Name
		}
	}
	return ""
}
