package anagram

import "testing"

func TestCanonicalize(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"eat", "aet"},
		{"dirty room", "dimoorrty"},
		{"a b c", "abc"},
		{"   ", ""},
		{"", ""},
		{"zzaa", "aazz"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got := Canonicalize(tc.input)
			if string(got) != tc.expected {
				t.Errorf("Canonicalize(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

// Canonicalizing an already sorted, space-free string must be a no-op.
func TestCanonicalizeIdempotent(t *testing.T) {
	for _, input := range []string{"eat", "dormitory", "aabbcc", "x"} {
		once := Canonicalize(input)
		twice := Canonicalize(string(once))
		if once != twice {
			t.Errorf("Canonicalize not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestContains(t *testing.T) {
	testCases := []struct {
		haystack string
		needle   string
		expected bool
		desc     string
	}{
		{"aet", "ae", true, "Subset matches"},
		{"aet", "aet", true, "Full inventory matches"},
		{"aet", "", false, "Empty needle is defined false"},
		{"aet", "aett", false, "Needle longer than haystack"},
		{"aab", "aa", true, "Repeat counts respected"},
		{"ab", "aa", false, "Not enough repeats"},
		{"aet", "z", false, "Missing letter"},
		{"", "a", false, "Empty haystack"},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			got := Multiset(tc.haystack).Contains(Multiset(tc.needle))
			if got != tc.expected {
				t.Errorf("Contains(%q in %q) = %v, want %v", tc.needle, tc.haystack, got, tc.expected)
			}
		})
	}
}

func TestLetters(t *testing.T) {
	if got := Canonicalize("dirty room").Letters(); got != 9 {
		t.Errorf("Letters() = %d, want 9", got)
	}
	if got := Canonicalize(" ").Letters(); got != 0 {
		t.Errorf("Letters() on spaces = %d, want 0", got)
	}
}
