/*
Package anagram finds multi-word anagrams of a query string.

Candidate words from a dictionary source are bucketed by letter count,
keeping only words whose letters fit inside the query's inventory.
Longer combinations are then composed bottom-up: each target length is
filled by pairing every word of two complementary shorter buckets, and
any pair whose combined letters no longer fit the query is pruned on
the spot. The full-length bucket finally yields the true anagrams,
ranked by a simple score.

	solver, err := anagram.NewSolver("dormitory", anagram.Options{})
	if err != nil {
		return err
	}
	if _, err := solver.Seed(anagram.FileSource{Path: "data/words.txt"}); err != nil {
		return err
	}
	if err := solver.Solve(ctx); err != nil {
		return err
	}
	for _, res := range solver.Rank() {
		fmt.Println(res.Text, res.Score)
	}

The score of a single word is the square of its length; a combination
scores the sum of its parts. Scores only order the output, they carry
no correctness meaning. MinPart bounds the combinatorial blow-up by
forbidding splits with a half shorter than the configured minimum.
*/
package anagram

import (
	"context"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
)

// Historical heuristic constants for choosing MinPart from the query
// length when the caller does not pick one.
const (
	autoMinPartOffset = 3
	autoMinPartFloor  = 3
)

// parallelThreshold is the cross-product size below which a split is
// not worth fanning out to workers.
const parallelThreshold = 4096

// Options tune the combination engine.
type Options struct {
	// MinPart is the minimum letter count for either half of a split.
	// Zero selects AutoMinPart for the query.
	MinPart int
	// ForceExhaustive forces MinPart to 1, trading completeness for
	// combinatorial cost.
	ForceExhaustive bool
	// Workers parallelizes the cross product inside each split when
	// greater than one. Zero and one both mean serial.
	Workers int
}

// Result is one ranked anagram of the query.
type Result struct {
	Text  string
	Score int
}

// Stats holds the engine's diagnostic counters. They are meant for
// logging and observability, not correctness.
type Stats struct {
	Seeded      int
	Iterations  int
	Created     int
	BucketSizes []int
}

// Solver owns the bucketed store for a single query and runs the
// seed, expand, rank pipeline over it.
type Solver struct {
	query      string
	inventory  Multiset
	store      *Store
	minPart    int
	workers    int
	iterations int
	created    int
}

// AutoMinPart picks a minimum split length for a query of the given
// letter count: half the length minus a small offset, floored.
func AutoMinPart(queryLetters int) int {
	minPart := queryLetters/2 - autoMinPartOffset
	if minPart < autoMinPartFloor {
		minPart = autoMinPartFloor
	}
	return minPart
}

// NewSolver builds a solver for query. The query's inventory is
// computed once here and never changes. Returns ErrEmptyQuery when the
// query has no letters after space removal.
func NewSolver(query string, opts Options) (*Solver, error) {
	inventory := Canonicalize(query)
	if inventory.Letters() == 0 {
		return nil, ErrEmptyQuery
	}

	minPart := opts.MinPart
	switch {
	case opts.ForceExhaustive:
		minPart = 1
	case minPart < 1:
		minPart = AutoMinPart(inventory.Letters())
	}

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	return &Solver{
		query:     query,
		inventory: inventory,
		store:     NewStore(inventory),
		minPart:   minPart,
		workers:   workers,
	}, nil
}

// Query returns the original query text.
func (s *Solver) Query() string {
	return s.query
}

// Inventory returns the query's canonical letter inventory.
func (s *Solver) Inventory() Multiset {
	return s.inventory
}

// MinPart returns the effective minimum split length.
func (s *Solver) MinPart() int {
	return s.minPart
}

// Seed fills the store's buckets from src. See Store.Seed.
func (s *Solver) Seed(src Source) (int, error) {
	return s.store.Seed(src)
}

// SameLetters returns seeded single-word anagrams of word.
func (s *Solver) SameLetters(word string) []string {
	return s.store.SameLetters(word)
}

// Dump logs the store's bucket occupancy at debug level.
func (s *Solver) Dump(words bool) {
	s.store.Dump(words)
}

// Solve expands every length level in strictly increasing order up to
// the query length. A level only ever reads buckets shorter than
// itself, so each bucket is fully assembled before anything consumes
// it. Cancellation is checked between levels.
func (s *Solver) Solve(ctx context.Context) error {
	queryLen := s.inventory.Letters()
	log.Debugf("Solving %q (letters [%s]), minPart=%d, workers=%d",
		s.query, s.inventory, s.minPart, s.workers)

	for length := 0; length <= queryLen; length++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.created += s.expand(length)
	}

	log.Debugf("Total cross-product iterations: %d", s.iterations)
	return nil
}

// expand fills bucket[target] by pairing complementary shorter
// buckets. Each unordered split {leftLen, rightLen} is visited exactly
// once with leftLen >= rightLen; splits against an empty bucket are
// skipped. Returns the number of combinations stored.
func (s *Solver) expand(target int) int {
	created := 0
	for leftLen := target - s.minPart; leftLen >= s.minPart; leftLen-- {
		rightLen := target - leftLen
		if rightLen > leftLen {
			break
		}

		left := s.store.Bucket(leftLen)
		right := s.store.Bucket(rightLen)
		if len(left) == 0 || len(right) == 0 {
			continue
		}

		pairs := len(left) * len(right)
		s.iterations += pairs
		log.Debugf("* expand bucket[%d] <- bucket[%d] x bucket[%d] = %d * %d = %d pairs",
			target, leftLen, rightLen, len(left), len(right), pairs)

		if s.workers > 1 && pairs >= parallelThreshold {
			created += s.crossParallel(target, left, right)
			continue
		}
		created += s.cross(target, left, right)
	}
	return created
}

// cross pairs every entry of left with every entry of right. When left
// and right are the same bucket (equal split lengths) both loops range
// over the same map, so a word can pair with itself; the multiset
// check still rejects it unless the query really holds its letters
// twice.
func (s *Solver) cross(target int, left, right map[string]int) int {
	created := 0
	for a, scoreA := range left {
		for b, scoreB := range right {
			key, ok := s.combine(a, b)
			if !ok {
				continue
			}
			s.store.Put(target, key, scoreA+scoreB)
			created++
		}
	}
	return created
}

// crossParallel is cross with the left bucket partitioned across
// workers. Both source buckets are only read; writes to the target
// bucket go through a mutex, and all workers are joined before expand
// moves on, so later levels always see a finalized bucket.
func (s *Solver) crossParallel(target int, left, right map[string]int) int {
	keys := make([]string, 0, len(left))
	for key := range left {
		keys = append(keys, key)
	}

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		created int
	)

	chunk := (len(keys) + s.workers - 1) / s.workers
	for start := 0; start < len(keys); start += chunk {
		end := min(start+chunk, len(keys))
		wg.Add(1)
		go func(part []string) {
			defer wg.Done()
			stored := 0
			for _, a := range part {
				scoreA := left[a]
				for b, scoreB := range right {
					key, ok := s.combine(a, b)
					if !ok {
						continue
					}
					mu.Lock()
					s.store.Put(target, key, scoreA+scoreB)
					mu.Unlock()
					stored++
				}
			}
			mu.Lock()
			created += stored
			mu.Unlock()
		}(keys[start:end])
	}
	wg.Wait()
	return created
}

// combine builds the canonical order-independent key for a pair: the
// lexicographically smaller operand first, space-joined. Pairs whose
// combined letters no longer fit the query are pruned here; without
// this check the buckets would fill with partial combinations that can
// never complete into a valid anagram.
func (s *Solver) combine(a, b string) (string, bool) {
	var key string
	if a < b {
		key = a + " " + b
	} else {
		key = b + " " + a
	}
	if !s.inventory.Contains(Canonicalize(key)) {
		return "", false
	}
	return key, true
}

// Rank returns the full-length bucket entries whose letter inventory
// exactly equals the query's, best score first, alphabetical on ties.
// The result is recomputable, not a live stream.
func (s *Solver) Rank() []Result {
	full := s.store.Bucket(s.inventory.Letters())
	results := make([]Result, 0, len(full))
	for text, score := range full {
		if Canonicalize(text) != s.inventory {
			continue
		}
		results = append(results, Result{Text: text, Score: score})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score == results[j].Score {
			return results[i].Text < results[j].Text
		}
		return results[i].Score > results[j].Score
	})
	return results
}

// Stats returns the engine's diagnostic counters.
func (s *Solver) Stats() Stats {
	return Stats{
		Seeded:      s.store.Seeded(),
		Iterations:  s.iterations,
		Created:     s.created,
		BucketSizes: s.store.Sizes(),
	}
}
