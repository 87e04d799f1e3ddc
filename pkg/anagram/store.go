package anagram

import (
	"sort"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// indexSep joins canonical form and word inside a trie key. NUL sorts
// before every printable character, so all words sharing one letter
// inventory form a contiguous subtree.
const indexSep = "\x00"

// Store buckets accepted words and combinations by letter count.
// buckets[L] maps combination text to score; every key in buckets[L]
// has exactly L letters (separators excluded) and fits inside the
// query's letter inventory.
type Store struct {
	query   Multiset
	buckets []map[string]int
	index   *patricia.Trie
	seeded  int
}

// NewStore creates an empty store sized for the given query inventory.
func NewStore(query Multiset) *Store {
	s := &Store{
		query:   query,
		buckets: make([]map[string]int, query.Letters()+1),
		index:   patricia.NewTrie(),
	}
	for i := range s.buckets {
		s.buckets[i] = make(map[string]int)
	}
	return s
}

// Seed fills the length buckets from src. Words longer than the query
// or not fitting its letters are skipped. A word's score is the square
// of its length; re-seeding a duplicate word overwrites with the same
// score. Returns the number of accepted words.
func (s *Store) Seed(src Source) (int, error) {
	words, err := src.Words()
	if err != nil {
		return 0, err
	}

	accepted := 0
	for _, word := range words {
		length := len(word)
		if length == 0 || length > s.query.Letters() {
			continue
		}
		canonical := Canonicalize(word)
		if !s.query.Contains(canonical) {
			continue
		}
		s.buckets[length][word] = length * length
		s.index.Insert(patricia.Prefix(string(canonical)+indexSep+word), length*length)
		accepted++
	}
	s.seeded += accepted
	log.Debugf("Seeded %d candidate words for inventory [%s]", accepted, s.query)
	return accepted, nil
}

// Bucket returns the combination map for the given letter count.
// Out-of-range lengths yield an empty map so callers never index past
// the query length.
func (s *Store) Bucket(length int) map[string]int {
	if length < 0 || length >= len(s.buckets) {
		return nil
	}
	return s.buckets[length]
}

// Put records a combination with its score, overwriting any previous
// entry for the same text.
func (s *Store) Put(length int, text string, score int) {
	s.buckets[length][text] = score
}

// Seeded returns the number of words accepted across all Seed calls.
func (s *Store) Seeded() int {
	return s.seeded
}

// Sizes returns the entry count of every bucket, indexed by length.
func (s *Store) Sizes() []int {
	sizes := make([]int, len(s.buckets))
	for i, bucket := range s.buckets {
		sizes[i] = len(bucket)
	}
	return sizes
}

// SameLetters returns the seeded dictionary words that are single-word
// anagrams of word, the word itself excluded, sorted alphabetically.
func (s *Store) SameLetters(word string) []string {
	prefix := string(Canonicalize(word)) + indexSep
	var matches []string
	err := s.index.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		entry := string(p[len(prefix):])
		if entry != word {
			matches = append(matches, entry)
		}
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting index subtree: %v", err)
	}
	sort.Strings(matches)
	return matches
}

// Dump logs bucket occupancy at debug level, optionally listing every
// stored entry in sorted order.
func (s *Store) Dump(words bool) {
	log.Debug("Current bucket occupancy:")
	for length, bucket := range s.buckets {
		if len(bucket) == 0 {
			continue
		}
		log.Debugf("* bucket[%d]: %d", length, len(bucket))
		if !words {
			continue
		}
		keys := make([]string, 0, len(bucket))
		for key := range bucket {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			log.Debugf("  * %s", key)
		}
	}
}
