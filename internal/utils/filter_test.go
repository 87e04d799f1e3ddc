package utils

import "testing"

func TestIsValidQuery(t *testing.T) {
	testCases := []struct {
		input    string
		expected bool
	}{
		{"dormitory", true},
		{"dirty room", true},
		{"", false},
		{"   ", false},
		{"abc123", false},
		{"hello!", false},
		{"café", true},
	}

	for _, tc := range testCases {
		if got := IsValidQuery(tc.input); got != tc.expected {
			t.Errorf("IsValidQuery(%q) = %v, want %v", tc.input, got, tc.expected)
		}
	}
}
