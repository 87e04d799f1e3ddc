package anagram

import "errors"

var (
	// ErrEmptyQuery means the query has no letters left after space
	// removal. The solver refuses to run rather than produce trivial
	// output.
	ErrEmptyQuery = errors.New("query has no letters")

	// ErrSourceUnavailable means the candidate source could not be
	// opened or read. Seeding aborts; the caller decides what to do,
	// there is no partial-dictionary fallback.
	ErrSourceUnavailable = errors.New("candidate source unavailable")
)
