package search

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Searcher ranks queries against a fixed candidate list, optionally
// caching results for repeated queries. Search-as-you-type frontends
// re-run the same shrinking/growing queries constantly, so even a small
// cache pays off. Safe for concurrent use.
type Searcher struct {
	mu         sync.RWMutex
	candidates []string
	opts       Options
	cache      *lru.Cache[string, []Result]
}

// NewSearcher creates a Searcher over a copy of candidates. A query cache
// is kept when opts.CacheSize is positive.
func NewSearcher(candidates []string, opts Options) *Searcher {
	s := &Searcher{
		candidates: append([]string(nil), candidates...),
		opts:       opts,
	}
	if opts.CacheSize > 0 {
		// lru.New only fails on a non-positive size.
		s.cache, _ = lru.New[string, []Result](opts.CacheSize)
	}
	return s
}

// Search ranks the held candidates against query.
func (s *Searcher) Search(query string) []Result {
	s.mu.RLock()
	cache := s.cache
	candidates := s.candidates
	opts := s.opts
	s.mu.RUnlock()

	if cache != nil {
		if cached, ok := cache.Get(query); ok {
			return copyResults(cached)
		}
	}

	results := SearchWithOptions(query, candidates, opts)
	if cache != nil {
		cache.Add(query, copyResults(results))
	}
	return results
}

// SetCandidates replaces the candidate list and drops all cached results.
func (s *Searcher) SetCandidates(candidates []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.candidates = append([]string(nil), candidates...)
	if s.cache != nil {
		s.cache.Purge()
	}
}

// Len returns the number of held candidates.
func (s *Searcher) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.candidates)
}

// ClearCache drops all cached query results.
func (s *Searcher) ClearCache() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cache != nil {
		s.cache.Purge()
	}
}

// copyResults guards cached slices against caller mutation.
func copyResults(results []Result) []Result {
	out := make([]Result, len(results))
	copy(out, results)
	return out
}
