package memory

import (
	"context"
	"sync"

	"slopbowl-service/internal/domain"
)

const historyLimit = 5

// HistoryStore is an in-memory implementation of app.HistoryStore, used when
// Redis is not configured and in tests.
type HistoryStore struct {
	mu      sync.RWMutex
	entries map[domain.Category][]domain.HistoryEntry
}

func NewHistoryStore() *HistoryStore {
	return &HistoryStore{
		entries: make(map[domain.Category][]domain.HistoryEntry),
	}
}

// Recent returns up to 5 entries for the category, most recent first.
func (s *HistoryStore) Recent(_ context.Context, category domain.Category) []domain.HistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored := s.entries[category]
	out := make([]domain.HistoryEntry, len(stored))
	copy(out, stored)
	return out
}

// Record prepends the entry and truncates the list to 5.
func (s *HistoryStore) Record(_ context.Context, category domain.Category, entry domain.HistoryEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	updated := append([]domain.HistoryEntry{entry}, s.entries[category]...)
	if len(updated) > historyLimit {
		updated = updated[:historyLimit]
	}
	s.entries[category] = updated
}
