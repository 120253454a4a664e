package match

import "github.com/tokenpick/tokenpick/internal/utils"

// DefaultTokenScoreBias is the multiplier applied to token-aligned match
// scores before they are compared with wildcard scores.
const DefaultTokenScoreBias = 10

// Result holds the outcome of matching a query against a single source.
// Score is 0 if and only if Matches is empty, which means "no match".
type Result struct {
	Score float64
	// Matches holds the byte offset of each matched query character in the
	// source string, strictly increasing.
	Matches []int
}

// Options configures the match orchestration.
type Options struct {
	// TokenScoreBias multiplies token-based scores so that token-aligned
	// matches rank above wildcard matches of equal position quality.
	// Values <= 0 fall back to DefaultTokenScoreBias.
	TokenScoreBias float64
}

// DefaultOptions returns the standard matching options.
func DefaultOptions() Options {
	return Options{TokenScoreBias: DefaultTokenScoreBias}
}

// Match scores query against source with default options.
func Match(query, source string) Result {
	return MatchWithOptions(query, source, DefaultOptions())
}

// MatchWithOptions runs the token matcher and, when it finds nothing,
// falls back to the wildcard matcher. The bias is applied to the score
// only; matched positions are returned unchanged.
func MatchWithOptions(query, source string, opts Options) Result {
	bias := opts.TokenScoreBias
	if bias <= 0 {
		bias = DefaultTokenScoreBias
	}
	if res := MatchToken(query, source); res.Score > 0 {
		res.Score *= bias
		return res
	}
	return MatchWildcard(query, source)
}

// normalizeQuery strips all whitespace from the query and lower-cases it.
// Returns the query unchanged when no rewrite is needed.
func normalizeQuery(query string) string {
	dirty := false
	for i := 0; i < len(query); i++ {
		if utils.IsSpaceASCII(query[i]) || utils.IsUpperASCII(query[i]) {
			dirty = true
			break
		}
	}
	if !dirty {
		return query
	}
	buf := make([]byte, 0, len(query))
	for i := 0; i < len(query); i++ {
		if utils.IsSpaceASCII(query[i]) {
			continue
		}
		buf = append(buf, utils.ToLowerASCII(query[i]))
	}
	return string(buf)
}
