/*
Package server implements msgpack IPC for the anagram solver.

The server exposes a minimal request/response protocol over stdin and
stdout using binary msgpack encoding. Each message carries an ID field;
requests are discriminated by which fields they carry rather than by a
command string.

# IPC

Solve requests carry the query letters and optional tuning values:

	{"id": "req_001", "q": "dormitory", "l": 24, "mp": 3}

The server responds with ranked anagrams and timing info:

	{"id": "req_001", "s": [{"w": "dirty room", "sc": 41, "r": 1}], "c": 1, "t": 1840}

The "t" field is the solve time in microseconds. Setting "x" forces an
exhaustive search with a minimum split length of one, which can be
orders of magnitude slower on long queries.

Dictionary requests carry an action instead of a query:

	{"id": "dict_001", "action": "get_info"}
	{"id": "dict_002", "action": "lookup", "w": "listen"}

get_info reports the loaded word count and dictionary path; lookup
returns the dictionary words that are single-word anagrams of "w".

Failures come back as an error frame with a status code:

	{"id": "req_001", "e": "Missing 'q' parameter", "c": 400}

Every request builds a fresh solver; the store is query-dependent, so
nothing is shared between requests except the in-memory word list.
*/
package server

// SolveRequest - multi-word anagram search request
type SolveRequest struct {
	ID         string `msgpack:"id"`
	Query      string `msgpack:"q"`
	Limit      int    `msgpack:"l,omitempty"`
	MinPart    int    `msgpack:"mp,omitempty"`
	Exhaustive bool   `msgpack:"x,omitempty"`
}

// RankedAnagram - one result entry
type RankedAnagram struct {
	Text  string `msgpack:"w"`
	Score int    `msgpack:"sc"`
	Rank  uint16 `msgpack:"r"`
}

// SolveResponse - ranked anagram response
type SolveResponse struct {
	ID        string          `msgpack:"id"`
	Results   []RankedAnagram `msgpack:"s"`
	Count     int             `msgpack:"c"`
	TimeTaken int64           `msgpack:"t"`
}

// DictRequest - dictionary inspection request
type DictRequest struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"action"`      // "get_info", "lookup"
	Word   string `msgpack:"w,omitempty"` // for "lookup"
}

// DictResponse - dictionary operation response
type DictResponse struct {
	ID        string   `msgpack:"id"`
	Status    string   `msgpack:"status"`
	Error     string   `msgpack:"error,omitempty"`
	WordCount int      `msgpack:"word_count,omitempty"`
	DictPath  string   `msgpack:"dict_path,omitempty"`
	Anagrams  []string `msgpack:"anagrams,omitempty"`
}

// SolveError holds basic error information for failed requests
type SolveError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
