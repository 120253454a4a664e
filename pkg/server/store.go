package server

import (
	"sync"

	"github.com/tchap/go-patricia/v2/patricia"
)

// CandidateStore is the server's working candidate set. Insertion order is
// kept in a slice because search results report input-list indices; the
// patricia trie rejects duplicates and answers membership without scanning.
// The trie never participates in match scoring.
type CandidateStore struct {
	mu    sync.RWMutex
	trie  *patricia.Trie
	words []string
}

// NewCandidateStore creates an empty candidate store.
func NewCandidateStore() *CandidateStore {
	return &CandidateStore{
		trie: patricia.NewTrie(),
	}
}

// Add inserts candidates, skipping empty strings and duplicates.
// Returns the number actually added.
func (cs *CandidateStore) Add(candidates ...string) int {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	added := 0
	for _, word := range candidates {
		if word == "" {
			continue
		}
		if !cs.trie.Insert(patricia.Prefix(word), true) {
			continue
		}
		cs.words = append(cs.words, word)
		added++
	}
	return added
}

// Remove deletes candidates from the set, returning the number removed.
func (cs *CandidateStore) Remove(candidates ...string) int {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	removed := 0
	for _, word := range candidates {
		if !cs.trie.Delete(patricia.Prefix(word)) {
			continue
		}
		for i, held := range cs.words {
			if held == word {
				cs.words = append(cs.words[:i], cs.words[i+1:]...)
				break
			}
		}
		removed++
	}
	return removed
}

// Has reports whether word is in the set.
func (cs *CandidateStore) Has(word string) bool {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.trie.Get(patricia.Prefix(word)) != nil
}

// List returns a copy of the candidates in insertion order.
func (cs *CandidateStore) List() []string {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return append([]string(nil), cs.words...)
}

// Clear drops all candidates.
func (cs *CandidateStore) Clear() {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.trie = patricia.NewTrie()
	cs.words = nil
}

// Len returns the number of held candidates.
func (cs *CandidateStore) Len() int {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return len(cs.words)
}
