package server

import (
	"bytes"
	"testing"

	"github.com/bastiangx/anaserve/pkg/anagram"
	"github.com/bastiangx/anaserve/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

var testWords = anagram.WordList{"eat", "ate", "tea", "a", "e", "t"}

// runServer feeds encoded requests through a server instance and
// returns a decoder over everything it wrote back.
func runServer(t *testing.T, requests ...interface{}) *msgpack.Decoder {
	t.Helper()

	var in, out bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for _, req := range requests {
		require.NoError(t, enc.Encode(req))
	}

	srv := newServer(testWords, "testdata/words.txt", config.DefaultConfig(), &in, &out)
	require.NoError(t, srv.Start(), "server should return nil on EOF")

	return msgpack.NewDecoder(&out)
}

func TestSolveRequest(t *testing.T) {
	dec := runServer(t, SolveRequest{ID: "req_1", Query: "eat", MinPart: 1})

	var resp SolveResponse
	require.NoError(t, dec.Decode(&resp))

	assert.Equal(t, "req_1", resp.ID)
	assert.Equal(t, 5, resp.Count)
	require.NotEmpty(t, resp.Results)
	assert.Equal(t, "ate", resp.Results[0].Text)
	assert.Equal(t, 9, resp.Results[0].Score)
	assert.Equal(t, uint16(1), resp.Results[0].Rank)
}

func TestSolveRequestLimit(t *testing.T) {
	dec := runServer(t, SolveRequest{ID: "req_2", Query: "eat", MinPart: 1, Limit: 2})

	var resp SolveResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, 2, resp.Count)
	assert.Len(t, resp.Results, 2)
}

func TestSolveRequestEmptyQuery(t *testing.T) {
	dec := runServer(t, SolveRequest{ID: "req_3"})

	var errResp SolveError
	require.NoError(t, dec.Decode(&errResp))
	assert.Equal(t, "req_3", errResp.ID)
	assert.Equal(t, 400, errResp.Code)
}

func TestSolveRequestQueryTooLong(t *testing.T) {
	long := make([]byte, 100)
	for i := range long {
		long[i] = 'a'
	}
	dec := runServer(t, SolveRequest{ID: "req_4", Query: string(long)})

	var errResp SolveError
	require.NoError(t, dec.Decode(&errResp))
	assert.Equal(t, 400, errResp.Code)
}

func TestDictGetInfo(t *testing.T) {
	dec := runServer(t, DictRequest{ID: "dict_1", Action: "get_info"})

	var resp DictResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, len(testWords), resp.WordCount)
	assert.Equal(t, "testdata/words.txt", resp.DictPath)
}

func TestDictLookup(t *testing.T) {
	dec := runServer(t, DictRequest{ID: "dict_2", Action: "lookup", Word: "eat"})

	var resp DictResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, []string{"ate", "tea"}, resp.Anagrams)
}

func TestDictUnknownAction(t *testing.T) {
	dec := runServer(t, DictRequest{ID: "dict_3", Action: "flush"})

	var resp DictResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "error", resp.Status)
	assert.Contains(t, resp.Error, "flush")
}

func TestMultipleRequests(t *testing.T) {
	dec := runServer(t,
		SolveRequest{ID: "a", Query: "eat", MinPart: 1},
		DictRequest{ID: "b", Action: "get_info"},
	)

	var solve SolveResponse
	require.NoError(t, dec.Decode(&solve))
	assert.Equal(t, "a", solve.ID)

	var info DictResponse
	require.NoError(t, dec.Decode(&info))
	assert.Equal(t, "b", info.ID)
}
