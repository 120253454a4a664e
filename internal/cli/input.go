// Package cli handles cmd line input for testing queries against a candidate list
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tokenpick/tokenpick/internal/logger"
	"github.com/tokenpick/tokenpick/pkg/search"
)

// InputHandler reads queries from stdin and prints the ranked candidates
// for each one. It is meant for testing and debugging the matcher; the
// msgpack server is the production surface.
type InputHandler struct {
	searcher       *search.Searcher
	out            *log.Logger
	maxQueryLength int
	limit          int
	requestCount   int
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(candidates []string, maxQueryLength, limit int, opts search.Options) *InputHandler {
	return &InputHandler{
		searcher:       search.NewSearcher(candidates, opts),
		out:            logger.NewWithConfig("", log.InfoLevel, false, false, log.TextFormatter),
		maxQueryLength: maxQueryLength,
		limit:          limit,
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin,
// and passes the trimmed query to handleInput() for processing.
// Loop terminates if an error occurs while reading from stdin
func (h *InputHandler) Start() error {
	h.out.Printf("tokenpick CLI -- %d candidates loaded", h.searcher.Len())
	reader := bufio.NewReader(os.Stdin)
	h.out.Print("type a query and press Enter to see the ranking (Ctrl+C to exit):")

	for {
		h.out.Print("> ")
		query, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		query = strings.TrimSpace(query)
		if query == "" {
			continue
		}
		h.handleInput(query)
	}
}

// handleInput ranks the held candidates for a single query and prints the
// results with their scores and matched byte positions.
func (h *InputHandler) handleInput(query string) {
	h.requestCount++

	if h.maxQueryLength > 0 && len(query) > h.maxQueryLength {
		log.Errorf("Query too long: %s", query)
		return
	}

	start := time.Now()
	results := h.searcher.Search(query)
	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for query '%s'", elapsed, query)

	if len(results) == 0 {
		log.Warnf("No matches found for query: '%s'", query)
		return
	}

	shown := results
	if h.limit > 0 && len(shown) > h.limit {
		shown = shown[:h.limit]
	}

	h.out.Printf("Found %d matches for query '%s':", len(results), query)
	for i, r := range shown {
		clSource := fmt.Sprintf("\033[38;5;75m%s\033[0m", r.Source)
		h.out.Printf("%2d. %-40s (score: %9.4f, at %v)", i+1, clSource, r.Score, r.Matches)
	}
}
