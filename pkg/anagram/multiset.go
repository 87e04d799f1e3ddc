package anagram

import (
	"sort"
	"strings"
)

// Multiset is the canonical letter inventory of a string: its non-space
// characters sorted into ascending order. Two strings are anagrams of
// each other exactly when their Multisets are equal.
type Multiset string

// Canonicalize strips spaces from text and sorts the remaining
// characters. Canonicalizing an already canonical string is a no-op.
func Canonicalize(text string) Multiset {
	letters := []byte(strings.ReplaceAll(text, " ", ""))
	sort.Slice(letters, func(i, j int) bool {
		return letters[i] < letters[j]
	})
	return Multiset(letters)
}

// Contains reports whether every letter of needle is available in m,
// respecting repeat counts. Both sequences are sorted, so a single
// merge-style scan suffices. An empty needle never matches; a needle
// longer than m falls out of the scan without special-casing.
func (m Multiset) Contains(needle Multiset) bool {
	if len(needle) == 0 {
		return false
	}
	n := 0
	for i := 0; i < len(m); i++ {
		if m[i] == needle[n] {
			n++
			if n == len(needle) {
				return true
			}
		}
	}
	return false
}

// Letters returns the size of the inventory.
func (m Multiset) Letters() int {
	return len(m)
}
