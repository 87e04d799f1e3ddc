package utils

import "unicode"

// IsValidQuery reports whether a query should be accepted for solving.
// Only letters and spaces are meaningful to the solver; digits and
// symbols would be matched literally against the dictionary and drown
// the results in noise, so they are rejected by default. Hosts can
// disable this filter to pass raw queries through.
func IsValidQuery(s string) bool {
	hasLetter := false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case r == ' ':
		default:
			return false
		}
	}
	return hasLetter
}
