package anagram

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedFiltersAndScores(t *testing.T) {
	store := NewStore(Canonicalize("eat"))

	accepted, err := store.Seed(WordList{
		"eat",   // full-length match
		"a",     // single letter, fits
		"at",    // fits
		"too",   // letters not available
		"treat", // longer than the query
		"",      // blank line
	})
	require.NoError(t, err)
	assert.Equal(t, 3, accepted)

	assert.Equal(t, 9, store.Bucket(3)["eat"])
	assert.Equal(t, 1, store.Bucket(1)["a"])
	assert.Equal(t, 4, store.Bucket(2)["at"])
	assert.NotContains(t, store.Bucket(3), "too")
	assert.Empty(t, store.Bucket(5), "over-length words must never be stored")
}

func TestSeedIdempotent(t *testing.T) {
	store := NewStore(Canonicalize("eat"))

	_, err := store.Seed(WordList{"at"})
	require.NoError(t, err)
	_, err = store.Seed(WordList{"at"})
	require.NoError(t, err)

	assert.Len(t, store.Bucket(2), 1)
	assert.Equal(t, 4, store.Bucket(2)["at"])
}

func TestSeedInvariants(t *testing.T) {
	query := Canonicalize("listen post")
	store := NewStore(query)

	_, err := store.Seed(WordList{"silent", "listen", "post", "stop", "spot", "tin", "in", "xyz", "enlist"})
	require.NoError(t, err)

	for length := range store.Sizes() {
		for word := range store.Bucket(length) {
			assert.Len(t, word, length, "bucket index must equal word length")
			assert.True(t, query.Contains(Canonicalize(word)), "stored word %q must fit the query", word)
		}
	}
}

func TestSeedMissingFile(t *testing.T) {
	store := NewStore(Canonicalize("eat"))

	accepted, err := store.Seed(FileSource{Path: "testdata/does-not-exist.txt"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSourceUnavailable))
	assert.Zero(t, accepted)

	for _, size := range store.Sizes() {
		assert.Zero(t, size, "failed seed must leave the store empty")
	}
}

func TestSameLetters(t *testing.T) {
	store := NewStore(Canonicalize("eat"))
	_, err := store.Seed(WordList{"eat", "ate", "tea", "a", "at", "ta"})
	require.NoError(t, err)

	assert.Equal(t, []string{"ate", "tea"}, store.SameLetters("eat"))
	assert.Equal(t, []string{"ta"}, store.SameLetters("at"))
	assert.Empty(t, store.SameLetters("a"), "a word with no other spellings has no anagrams")
}

func TestBucketOutOfRange(t *testing.T) {
	store := NewStore(Canonicalize("eat"))
	assert.Nil(t, store.Bucket(-1))
	assert.Nil(t, store.Bucket(42))
}
