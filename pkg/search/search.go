// Package search ranks lists of candidate strings against a query using
// the token-aware matcher, highest score first.
package search

import (
	"sort"

	"github.com/tokenpick/tokenpick/pkg/match"
)

// Result is a match augmented with the candidate it was produced from.
type Result struct {
	match.Result
	// Source is the original candidate string, casing preserved.
	Source string
	// SourceIndex is the candidate's position in the input list.
	SourceIndex int
}

// Options configures a search.
type Options struct {
	// Match configures the underlying matcher.
	Match match.Options
	// Limit caps the number of returned results. Zero means no limit.
	Limit int
	// CacheSize is the number of query results a Searcher keeps. Zero
	// disables caching. Plain Search calls never cache.
	CacheSize int
}

// DefaultOptions returns the standard search options.
func DefaultOptions() Options {
	return Options{
		Match:     match.DefaultOptions(),
		Limit:     0,
		CacheSize: 0,
	}
}

// Search ranks candidates against query with default options. Candidates
// that do not match are dropped; the rest are sorted by score descending,
// with ties broken by candidate string ascending.
func Search(query string, candidates []string) []Result {
	return SearchWithOptions(query, candidates, DefaultOptions())
}

// SearchWithOptions is Search with explicit options.
func SearchWithOptions(query string, candidates []string, opts Options) []Result {
	results := scoreAll(query, candidates, opts.Match)
	sortResults(results)
	return applyLimit(results, opts.Limit)
}

// scoreAll fans the matcher out over candidates, keeping input order and
// dropping non-matches.
func scoreAll(query string, candidates []string, opts match.Options) []Result {
	var results []Result
	for i, candidate := range candidates {
		res := match.MatchWithOptions(query, candidate, opts)
		if res.Score == 0 {
			continue
		}
		results = append(results, Result{
			Result:      res,
			Source:      candidate,
			SourceIndex: i,
		})
	}
	return results
}

// sortResults orders by score descending, then source ascending
// (case-sensitive), then source index ascending. The last key only
// separates duplicate candidate strings, keeping the order fully
// deterministic regardless of input order.
func sortResults(results []Result) {
	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		if results[i].Source != results[j].Source {
			return results[i].Source < results[j].Source
		}
		return results[i].SourceIndex < results[j].SourceIndex
	})
}

func applyLimit(results []Result, limit int) []Result {
	if limit <= 0 || limit >= len(results) {
		return results
	}
	return results[:limit]
}
