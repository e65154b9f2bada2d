package redis

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/redis/go-redis/v9"

	"slopbowl-service/internal/domain"
)

const (
	historyKeyPrefix = "corporateslopbowl:history:"
	// historyLimit caps how many past roasts each category keeps.
	historyLimit = 5
)

// HistoryStore keeps recent roasts in a Redis list per category:
// LPUSH corporateslopbowl:history:{category} {json entry}, trimmed to 5.
// All failures are swallowed; history is an anti-repetition aid, not state
// the request flow depends on.
type HistoryStore struct {
	client *redis.Client
}

func NewHistoryStore(client *redis.Client) *HistoryStore {
	return &HistoryStore{client: client}
}

// Recent returns up to 5 entries for the category, most recent first. On any
// read failure it returns an empty slice.
func (s *HistoryStore) Recent(ctx context.Context, category domain.Category) []domain.HistoryEntry {
	raw, err := s.client.LRange(ctx, historyKey(category), 0, historyLimit-1).Result()
	if err != nil {
		log.Printf("history read failed for %s: %v", category, err)
		return nil
	}

	entries := make([]domain.HistoryEntry, 0, len(raw))
	for _, item := range raw {
		var entry domain.HistoryEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			// Skip entries written by incompatible versions.
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// Record prepends the entry and trims the list back to 5. Write failures are
// dropped without retry.
func (s *HistoryStore) Record(ctx context.Context, category domain.Category, entry domain.HistoryEntry) {
	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	key := historyKey(category)
	pipe := s.client.Pipeline()
	pipe.LPush(ctx, key, data)
	pipe.LTrim(ctx, key, 0, historyLimit-1)
	if _, err := pipe.Exec(ctx); err != nil {
		log.Printf("history write dropped for %s: %v", category, err)
	}
}

func historyKey(category domain.Category) string {
	return historyKeyPrefix + strings.ToLower(string(category))
}
