// Package cli handles cmd line input and result display for testing
// and debugging the solver without the IPC layer.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bastiangx/anaserve/internal/logger"
	"github.com/bastiangx/anaserve/internal/utils"
	"github.com/bastiangx/anaserve/pkg/anagram"
	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
)

// results get their own prefixed logger so they stand apart from the
// engine's debug chatter.
var out = logger.Default("results")

// InputHandler processes user queries from stdin and prints ranked
// anagrams. The dictionary is read once and kept in memory; every
// query seeds a fresh solver from it.
type InputHandler struct {
	words    anagram.WordList
	opts     anagram.Options
	limit    int
	noFilter bool
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(words anagram.WordList, opts anagram.Options, limit int, noFilter bool) *InputHandler {
	return &InputHandler{
		words:    words,
		opts:     opts,
		limit:    limit,
		noFilter: noFilter,
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin, and
// passes the trimmed query to Query for processing. The loop
// terminates if an error occurs while reading from stdin.
func (h *InputHandler) Start() error {
	log.Print("AnaServe CLI")
	reader := bufio.NewReader(os.Stdin)
	log.Print("type the letters to anagram and press Enter (Ctrl+C to exit):")

	for {
		log.Print("> ")
		query, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		query = strings.TrimSpace(query)
		if query == "" {
			continue
		}
		h.Query(query)
	}
}

// Query solves a single query and prints the ranked results.
// It validates the input, runs the full pipeline with timing, and
// logs the outcome in a human-readable form.
func (h *InputHandler) Query(query string) {
	if !h.noFilter {
		if !utils.IsValidQuery(query) {
			log.Warnf("Query contains non-letter characters: '%s'", query)
			return
		}
	} else {
		log.Debug("Input filtering disabled - query passed through raw")
	}

	solver, err := anagram.NewSolver(query, h.opts)
	if err != nil {
		log.Errorf("Cannot solve '%s': %v", query, err)
		return
	}

	start := time.Now()
	seeded, err := solver.Seed(h.words)
	if err != nil {
		log.Errorf("Seeding failed: %v", err)
		return
	}
	if seeded == 0 {
		log.Warnf("No dictionary words fit the letters of '%s'", query)
		return
	}

	if err := solver.Solve(context.Background()); err != nil {
		log.Errorf("Solve aborted: %v", err)
		return
	}
	results := solver.Rank()
	elapsed := time.Since(start)

	stats := solver.Stats()
	log.Debugf("Took [ %v ] for '%s' (%s candidate pairings)",
		elapsed, query, humanize.Comma(int64(stats.Iterations)))

	if len(results) == 0 {
		log.Warnf("No anagrams found for '%s' (minPart=%d, try -all)", query, solver.MinPart())
		return
	}

	shown := results
	if h.limit > 0 && len(shown) > h.limit {
		shown = shown[:h.limit]
	}

	out.Printf("Found %s anagrams for '%s', showing %d:",
		humanize.Comma(int64(len(results))), query, len(shown))
	for i, res := range shown {
		clText := fmt.Sprintf("\033[38;5;75m%s\033[0m", res.Text)
		out.Printf("%3d. %-40s (score: %4d)", i+1, clText, res.Score)
	}
}
