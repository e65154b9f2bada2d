package memory

import (
	"context"
	"fmt"
	"testing"

	"slopbowl-service/internal/domain"
)

func TestHistoryStoreCapsAtFive(t *testing.T) {
	ctx := context.Background()
	store := NewHistoryStore()

	for i := 1; i <= 8; i++ {
		store.Record(ctx, domain.CategoryChipotle, domain.HistoryEntry{
			Roast: fmt.Sprintf("roast %d", i),
		})
	}

	recent := store.Recent(ctx, domain.CategoryChipotle)
	if len(recent) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(recent))
	}
	if recent[0].Roast != "roast 8" || recent[4].Roast != "roast 4" {
		t.Fatalf("expected most-recent-first window, got %+v", recent)
	}
}

func TestHistoryStoreIsolatesCategories(t *testing.T) {
	ctx := context.Background()
	store := NewHistoryStore()

	store.Record(ctx, domain.CategoryCava, domain.HistoryEntry{Roast: "cava roast"})
	if recent := store.Recent(ctx, domain.CategorySweetgreen); len(recent) != 0 {
		t.Fatalf("expected no cross-category entries, got %+v", recent)
	}
}
