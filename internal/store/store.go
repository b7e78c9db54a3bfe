// Package store implements the favorites store: an in-memory, newest-first
// list of unique URLs mirrored to a storage adapter on every mutation.
package store

import (
	"fmt"
	"sync"

	"github.com/mesh-intelligence/keepsake/pkg/types"
)

// Store owns the in-memory favorites list for the duration of a session and
// keeps it durable through the injected Adapter. Every mutation persists
// before returning; if the persist fails, the in-memory list is rolled back
// so memory and storage never diverge.
//
// Store is safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	adapter types.Adapter
	urls    []string
}

// New creates a Store backed by adapter and loads the persisted list.
// Absent or malformed persisted state starts the store empty.
func New(adapter types.Adapter) (*Store, error) {
	urls, err := adapter.Load()
	if err != nil {
		return nil, fmt.Errorf("load favorites: %w", err)
	}
	return &Store{adapter: adapter, urls: dedupe(urls)}, nil
}

// Add saves url as the newest favorite. A URL already present (exact,
// case-sensitive match) is a no-op returning false. Returns true when an
// insertion occurred and was persisted.
func (s *Store) Add(url string) (bool, error) {
	if err := types.ValidateURL(url); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.urls {
		if u == url {
			return false, nil
		}
	}

	s.urls = append([]string{url}, s.urls...)
	if err := s.adapter.Save(s.urls); err != nil {
		s.urls = s.urls[1:]
		return false, fmt.Errorf("save favorites: %w", err)
	}
	return true, nil
}

// Remove deletes every entry exactly matching url and persists the result.
// An absent URL is a no-op returning false, not an error.
func (s *Store) Remove(url string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]string, 0, len(s.urls))
	for _, u := range s.urls {
		if u != url {
			kept = append(kept, u)
		}
	}
	if len(kept) == len(s.urls) {
		return false, nil
	}

	prev := s.urls
	s.urls = kept
	if err := s.adapter.Save(s.urls); err != nil {
		s.urls = prev
		return false, fmt.Errorf("save favorites: %w", err)
	}
	return true, nil
}

// List returns a copy of the current list, newest-first.
func (s *Store) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.urls))
	copy(out, s.urls)
	return out
}

// Len returns the number of favorites.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.urls)
}

// Clear empties the list and persists the empty sequence.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.urls
	s.urls = nil
	if err := s.adapter.Save(s.urls); err != nil {
		s.urls = prev
		return fmt.Errorf("save favorites: %w", err)
	}
	return nil
}

// dedupe drops later duplicates so a hand-edited or legacy persisted list
// still satisfies the uniqueness invariant after load.
func dedupe(urls []string) []string {
	if len(urls) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(urls))
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if u == "" || seen[u] {
			continue
		}
		seen[u] = true
		out = append(out, u)
	}
	return out
}
