package search

import (
	"context"
	"runtime"
	"sync"
)

// minParallelCandidates is the list size below which sharding costs more
// than it saves.
const minParallelCandidates = 512

// SearchParallel shards the candidate list across a worker pool, scores
// the shards concurrently and merges them into the same deterministic
// order SearchWithOptions produces. Matching itself is pure, so workers
// share nothing. workers <= 0 uses GOMAXPROCS. Returns nil when ctx is
// cancelled before the merge completes.
func SearchParallel(ctx context.Context, query string, candidates []string, opts Options, workers int) []Result {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers == 1 || len(candidates) < minParallelCandidates {
		return SearchWithOptions(query, candidates, opts)
	}

	chunk := (len(candidates) + workers - 1) / workers
	shards := make(chan []Result, workers)
	var wg sync.WaitGroup

	for start := 0; start < len(candidates); start += chunk {
		end := start + chunk
		if end > len(candidates) {
			end = len(candidates)
		}

		wg.Add(1)
		go func(offset int, shard []string) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				return
			default:
			}

			results := scoreAll(query, shard, opts.Match)
			for i := range results {
				// Shard-local indices back to input-list indices.
				results[i].SourceIndex += offset
			}
			select {
			case shards <- results:
			case <-ctx.Done():
			}
		}(start, candidates[start:end])
	}

	go func() {
		wg.Wait()
		close(shards)
	}()

	var merged []Result
	for shard := range shards {
		merged = append(merged, shard...)
	}
	if ctx.Err() != nil {
		return nil
	}

	sortResults(merged)
	return applyLimit(merged, opts.Limit)
}
