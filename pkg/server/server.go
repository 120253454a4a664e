package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/tokenpick/tokenpick/internal/logger"

	"github.com/tokenpick/tokenpick/pkg/config"
	"github.com/tokenpick/tokenpick/pkg/match"
	"github.com/tokenpick/tokenpick/pkg/search"
)

// Server handles the msgpack IPC for match and search requests.
type Server struct {
	store        *CandidateStore
	config       *config.Config
	configPath   string
	dec          *msgpack.Decoder
	enc          *msgpack.Encoder
	logr         *log.Logger
	requestCount int
}

// NewServer creates a new server using stdin/stdout for IPC.
func NewServer(cfg *config.Config, configPath string) *Server {
	return NewServerWithIO(cfg, configPath, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server over explicit streams.
func NewServerWithIO(cfg *config.Config, configPath string, in io.Reader, out io.Writer) *Server {
	return &Server{
		store:      NewCandidateStore(),
		config:     cfg,
		configPath: configPath,
		dec:        msgpack.NewDecoder(in),
		enc:        msgpack.NewEncoder(out),
		logr:       logger.New("ipc"),
	}
}

// Start begins listening for IPC requests. It returns nil when the client
// closes its end of the stream.
func (s *Server) Start() error {
	s.logr.Debug("Starting server.")

	// Signal that the server is ready
	s.sendResponse(map[string]string{"status": "ready"})

	for {
		var request Request
		if err := s.dec.Decode(&request); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil
			}
			// A broken msgpack stream cannot be resynced.
			s.logr.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(request)
	}
}

// handleRequest dispatches a decoded request.
func (s *Server) handleRequest(request Request) {
	s.requestCount++

	switch request.Cmd {
	case "search":
		s.handleSearch(request)
	case "match":
		s.handleMatch(request)
	case "candidates":
		s.handleCandidates(request)
	case "config":
		s.handleConfig(request)
	case "ping":
		s.sendResponse(map[string]string{"status": "ok"})
	default:
		s.sendError(request.ID, fmt.Sprintf("Unknown command: %s", request.Cmd), 400)
	}
}

// handleSearch ranks candidates against the request query. A request that
// carries its own candidate list is scored one-shot; otherwise the held
// candidate set is used.
func (s *Server) handleSearch(request Request) {
	if !s.validateQuery(request) {
		return
	}

	candidates := request.Candidates
	if candidates == nil {
		candidates = s.store.List()
	}

	limit := request.Limit
	if limit < 1 {
		limit = s.config.Server.DefaultLimit
	}

	start := time.Now()
	results := search.SearchWithOptions(request.Query, candidates, search.Options{
		Match: match.Options{TokenScoreBias: s.config.Match.TokenScoreBias},
		Limit: limit,
	})
	elapsed := time.Since(start)

	entries := make([]ResultEntry, len(results))
	for i, r := range results {
		entries[i] = ResultEntry{
			Source:      r.Source,
			SourceIndex: r.SourceIndex,
			Score:       r.Score,
			Matches:     r.Matches,
		}
	}

	s.sendResponse(SearchResponse{
		ID:        request.ID,
		Results:   entries,
		Count:     len(entries),
		TimeTaken: elapsed.Microseconds(),
	})
}

// handleMatch scores a single query/source pair.
func (s *Server) handleMatch(request Request) {
	if !s.validateQuery(request) {
		return
	}

	res := match.MatchWithOptions(request.Query, request.Source, match.Options{
		TokenScoreBias: s.config.Match.TokenScoreBias,
	})
	s.sendResponse(MatchResponse{
		ID:      request.ID,
		Score:   res.Score,
		Matches: res.Matches,
	})
}

// handleCandidates manages the held candidate set.
func (s *Server) handleCandidates(request Request) {
	switch request.Action {
	case "add":
		room := s.config.Server.MaxCandidates - s.store.Len()
		if len(request.Candidates) > room {
			s.sendResponse(CandidateResponse{
				ID:     request.ID,
				Status: "error",
				Count:  s.store.Len(),
				Error:  fmt.Sprintf("candidate limit of %d exceeded", s.config.Server.MaxCandidates),
			})
			return
		}
		added := s.store.Add(request.Candidates...)
		s.logr.Debugf("Added %d candidates (%d held)", added, s.store.Len())
	case "remove":
		removed := s.store.Remove(request.Candidates...)
		s.logr.Debugf("Removed %d candidates (%d held)", removed, s.store.Len())
	case "clear":
		s.store.Clear()
	case "count":
		// Fall through to the count-bearing response.
	default:
		s.sendError(request.ID, fmt.Sprintf("Unknown candidates action: %s", request.Action), 400)
		return
	}

	s.sendResponse(CandidateResponse{
		ID:     request.ID,
		Status: "ok",
		Count:  s.store.Len(),
	})
}

// handleConfig adjusts the token score bias at runtime, persisting the
// change when a config path is known.
func (s *Server) handleConfig(request Request) {
	if request.Bias != nil {
		if *request.Bias <= 0 {
			s.sendResponse(ConfigResponse{
				ID:     request.ID,
				Status: "error",
				Bias:   s.config.Match.TokenScoreBias,
				Error:  "bias must be positive",
			})
			return
		}
		s.config.Match.TokenScoreBias = *request.Bias
		if s.configPath != "" {
			if err := config.SaveConfig(s.config, s.configPath); err != nil {
				s.logr.Warnf("Failed to persist config to %s: %v", s.configPath, err)
			}
		}
	}

	s.sendResponse(ConfigResponse{
		ID:     request.ID,
		Status: "ok",
		Bias:   s.config.Match.TokenScoreBias,
	})
}

// validateQuery rejects empty and oversized queries with an error
// response. Returns true when the request may proceed.
func (s *Server) validateQuery(request Request) bool {
	if request.Query == "" {
		s.sendError(request.ID, "Missing 'q' parameter", 400)
		s.logr.Debug("Query is empty in request")
		return false
	}
	if max := s.config.Server.MaxQuery; max > 0 && len(request.Query) > max {
		s.sendError(request.ID, fmt.Sprintf("Query exceeds maximum length of %d characters", max), 400)
		s.logr.Debug("Query is too long in request")
		return false
	}
	return true
}

// sendResponse encodes a response onto the output stream.
func (s *Server) sendResponse(response interface{}) {
	if err := s.enc.Encode(response); err != nil {
		s.logr.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.sendResponse(ErrorResponse{
		ID:    id,
		Error: message,
		Code:  code,
	})
}
