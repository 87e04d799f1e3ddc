package server

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/bastiangx/anaserve/pkg/anagram"
	"github.com/bastiangx/anaserve/pkg/config"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// request is the decode probe: a union of every request's fields, so
// one Decode call can service both message kinds. Action set means a
// dictionary op, otherwise a solve.
type request struct {
	ID         string `msgpack:"id"`
	Query      string `msgpack:"q"`
	Limit      int    `msgpack:"l"`
	MinPart    int    `msgpack:"mp"`
	Exhaustive bool   `msgpack:"x"`
	Action     string `msgpack:"action"`
	Word       string `msgpack:"w"`
}

// Server handles the IPC for anagram solving
type Server struct {
	words    anagram.WordList
	dictPath string
	config   *config.Config
	decoder  *msgpack.Decoder
	encoder  *msgpack.Encoder
}

// NewServer creates a solve server using stdin/stdout for IPC
func NewServer(words anagram.WordList, dictPath string, cfg *config.Config) *Server {
	return newServer(words, dictPath, cfg, os.Stdin, os.Stdout)
}

func newServer(words anagram.WordList, dictPath string, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	return &Server{
		words:    words,
		dictPath: dictPath,
		config:   cfg,
		decoder:  msgpack.NewDecoder(r),
		encoder:  msgpack.NewEncoder(w),
	}
}

// Start begins listening for IPC requests. Returns nil on clean EOF.
func (s *Server) Start() error {
	log.Debug("Starting IPC server")

	for {
		var req request
		if err := s.decoder.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			return err
		}

		if req.Action != "" {
			s.handleDict(req)
			continue
		}
		s.handleSolve(req)
	}
}

// handleSolve validates a solve request, runs the full seed, expand,
// rank pipeline against the in-memory word list, and replies with the
// ranked results truncated to the requested limit.
func (s *Server) handleSolve(req request) {
	if req.Query == "" {
		s.sendError(req.ID, "Missing 'q' parameter", 400)
		log.Debug("Query is empty in request")
		return
	}
	if len(req.Query) > s.config.Dict.MaxQueryLen {
		s.sendError(req.ID, "Query exceeds maximum length", 400)
		log.Debugf("Query too long in request: %d chars", len(req.Query))
		return
	}

	limit := req.Limit
	if limit < 1 || limit > s.config.Solver.MaxResults {
		limit = s.config.Solver.MaxResults
	}

	minPart := req.MinPart
	if minPart < 1 {
		minPart = s.config.Solver.MinPart
	}

	solver, err := anagram.NewSolver(req.Query, anagram.Options{
		MinPart:         minPart,
		ForceExhaustive: req.Exhaustive || s.config.Solver.ForceExhaustive,
		Workers:         s.config.Solver.Workers,
	})
	if err != nil {
		s.sendError(req.ID, "Query has no letters", 400)
		return
	}

	start := time.Now()
	if _, err := solver.Seed(s.words); err != nil {
		s.sendError(req.ID, "Internal server error", 500)
		log.Errorf("Seeding solver: %v", err)
		return
	}
	if err := solver.Solve(context.Background()); err != nil {
		s.sendError(req.ID, "Solve aborted", 500)
		log.Errorf("Solving %q: %v", req.Query, err)
		return
	}
	ranked := solver.Rank()
	elapsed := time.Since(start)

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	results := make([]RankedAnagram, len(ranked))
	for i, res := range ranked {
		results[i] = RankedAnagram{
			Text:  res.Text,
			Score: res.Score,
			Rank:  uint16(i + 1),
		}
	}

	stats := solver.Stats()
	log.Debugf("Solved %q: %d results, %d iterations, %v",
		req.Query, len(results), stats.Iterations, elapsed)

	s.sendResponse(SolveResponse{
		ID:        req.ID,
		Results:   results,
		Count:     len(results),
		TimeTaken: elapsed.Microseconds(),
	})
}

// handleDict processes dictionary inspection requests
func (s *Server) handleDict(req request) {
	switch req.Action {
	case "get_info":
		s.sendResponse(DictResponse{
			ID:        req.ID,
			Status:    "ok",
			WordCount: len(s.words),
			DictPath:  s.dictPath,
		})
	case "lookup":
		if req.Word == "" {
			s.sendResponse(DictResponse{
				ID:     req.ID,
				Status: "error",
				Error:  "Missing 'w' parameter for lookup",
			})
			return
		}
		// A store seeded with the word's own inventory only accepts
		// words that fit those letters; SameLetters then narrows to
		// the exact matches.
		store := anagram.NewStore(anagram.Canonicalize(req.Word))
		if _, err := store.Seed(s.words); err != nil {
			s.sendResponse(DictResponse{ID: req.ID, Status: "error", Error: "Seed failed"})
			log.Errorf("Seeding lookup store: %v", err)
			return
		}
		s.sendResponse(DictResponse{
			ID:       req.ID,
			Status:   "ok",
			Anagrams: store.SameLetters(req.Word),
		})
	default:
		s.sendResponse(DictResponse{
			ID:     req.ID,
			Status: "error",
			Error:  "Unknown action: " + req.Action,
		})
	}
}

// sendResponse encodes a response frame onto the output stream.
func (s *Server) sendResponse(response interface{}) {
	if err := s.encoder.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error frame
func (s *Server) sendError(id, message string, code int) {
	s.sendResponse(SolveError{
		ID:    id,
		Error: message,
		Code:  code,
	})
}
