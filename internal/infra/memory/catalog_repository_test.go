package memory

import (
	"context"
	"testing"
	"time"

	"slopbowl-service/internal/domain"
)

func TestCatalogRepositoryCaches(t *testing.T) {
	loader := &countingLoader{
		CatalogLoader: NewStaticCatalogLoader(domain.DefaultCatalog()),
	}
	repo := NewCatalogRepository(loader, domain.DefaultCatalogID, time.Minute)

	if _, err := repo.GetCatalog(context.Background()); err != nil {
		t.Fatalf("get catalog: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected loader once, got %d", loader.calls)
	}

	if _, err := repo.GetCatalog(context.Background()); err != nil {
		t.Fatalf("get catalog 2: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected cache hit, loader calls %d", loader.calls)
	}
}

func TestCatalogRepositoryZeroTTLCachesIndefinitely(t *testing.T) {
	loader := &countingLoader{
		CatalogLoader: NewStaticCatalogLoader(domain.DefaultCatalog()),
	}
	repo := NewCatalogRepository(loader, domain.DefaultCatalogID, 0)
	repo.clock = func() time.Time { return time.Unix(0, 0) }

	if _, err := repo.GetCatalog(context.Background()); err != nil {
		t.Fatalf("get catalog: %v", err)
	}

	// Even far in the future the catalog stays cached.
	repo.clock = func() time.Time { return time.Unix(0, 0).Add(24 * time.Hour) }
	if _, err := repo.GetCatalog(context.Background()); err != nil {
		t.Fatalf("get catalog 2: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected loader once, got %d", loader.calls)
	}
}

func TestStaticCatalogLoaderUnknownID(t *testing.T) {
	loader := NewStaticCatalogLoader(domain.DefaultCatalog())
	if _, err := loader.LoadCatalog(context.Background(), "other"); err != domain.ErrCatalogNotFound {
		t.Fatalf("expected ErrCatalogNotFound, got %v", err)
	}
}

type countingLoader struct {
	CatalogLoader
	calls int
}

func (l *countingLoader) LoadCatalog(ctx context.Context, catalogID string) (domain.Catalog, error) {
	l.calls++
	return l.CatalogLoader.LoadCatalog(ctx, catalogID)
}
