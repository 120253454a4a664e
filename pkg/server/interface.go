/*
Package server implements msgpack IPC for query matching and ranking services.

The server package provides a minimal interface for token-aware fuzzy search
using msgpack serialization over stdin/stdout.

The protocol uses binary msgpack encoding and supports search requests,
single-pair match requests, candidate set management ops, and config updates.
Messages are processed synchronously with timing info included in responses.

# IPC

The server operates on a request response model where clients send structured
messages via stdin and receive responses through stdout.
Each message contains an ID field, a command field, and other fields based on
the operation type.

Search requests use mainly this structure:

	{"id": "req_001", "cmd": "search", "q": "text", "l": 24}

The server responds with candidates ranked by score:

	{"id": "req_001", "rs": [{"s": "DOM.getText", "i": 0, "r": 1.19, "m": [7,8,9,10]}], "c": 1, "t": 145}

Candidate management enables runtime adjustment of the held candidate set:

	{"id": "cand_001", "cmd": "candidates", "action": "add", "cs": ["DOM.getText"]}
	{"id": "cand_002", "cmd": "candidates", "action": "count"}

One-shot searches may carry their own candidate list in "cs" instead of using
the held set; such lists are scored and discarded, never stored.

Response structures include status information and error details when an op
fails.

# Message Types

Request is the single envelope for all client messages; the "cmd" field
selects the operation.
SearchResponse carries ranked results with source strings, input indices,
scores and matched byte positions, plus timing data.
MatchResponse carries the score and positions for a single query/source pair.
CandidateResponse reports the outcome of candidate set operations.
ConfigResponse reports the effective token score bias after an update.

msgpack encoding has ~30 to 50% smaller message sizes compared to JSON and
parses faster, which matters when a client re-sends a search on every
keystroke.
*/
package server

// Request is the envelope for incoming client messages.
type Request struct {
	ID  string `msgpack:"id"`
	Cmd string `msgpack:"cmd"`
	// Query for "search" and "match".
	Query string `msgpack:"q,omitempty"`
	// Source for "match".
	Source string `msgpack:"s,omitempty"`
	// Candidates for "candidates" actions, or a one-shot list for "search".
	Candidates []string `msgpack:"cs,omitempty"`
	Limit      int      `msgpack:"l,omitempty"`
	// Action for "candidates": "add", "remove", "clear", "count".
	Action string `msgpack:"action,omitempty"`
	// Bias for "config": new token score bias.
	Bias *float64 `msgpack:"bias,omitempty"`
}

// ResultEntry - one ranked candidate in a search response
type ResultEntry struct {
	Source      string  `msgpack:"s"`
	SourceIndex int     `msgpack:"i"`
	Score       float64 `msgpack:"r"`
	Matches     []int   `msgpack:"m,omitempty"`
}

// SearchResponse - ranked search response
type SearchResponse struct {
	ID        string        `msgpack:"id"`
	Results   []ResultEntry `msgpack:"rs"`
	Count     int           `msgpack:"c"`
	TimeTaken int64         `msgpack:"t"`
}

// MatchResponse - single pair match response
type MatchResponse struct {
	ID      string  `msgpack:"id"`
	Score   float64 `msgpack:"r"`
	Matches []int   `msgpack:"m,omitempty"`
}

// CandidateResponse - candidate set operation response
type CandidateResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
	Count  int    `msgpack:"count"`
	Error  string `msgpack:"error,omitempty"`
}

// ConfigResponse - config operation response
type ConfigResponse struct {
	ID     string  `msgpack:"id"`
	Status string  `msgpack:"status"`
	Bias   float64 `msgpack:"bias"`
	Error  string  `msgpack:"error,omitempty"`
}

// ErrorResponse holds basic error information for failed requests
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
