package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"slopbowl-service/internal/domain"
)

// CatalogLoader fetches the question catalog from a backing store.
type CatalogLoader interface {
	LoadCatalog(ctx context.Context, catalogID string) (domain.Catalog, error)
}

// CatalogRepository caches the catalog with TTL to avoid repeated store hits.
type CatalogRepository struct {
	loader    CatalogLoader
	catalogID string
	ttl       time.Duration
	clock     func() time.Time
	sf        singleflight.Group
	rnd       *rand.Rand

	mu     sync.RWMutex
	cached domain.Catalog
	expiry time.Time
}

func NewCatalogRepository(loader CatalogLoader, catalogID string, ttl time.Duration) *CatalogRepository {
	return &CatalogRepository{
		loader:    loader,
		catalogID: catalogID,
		ttl:       ttl,
		clock:     time.Now,
		rnd:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *CatalogRepository) GetCatalog(ctx context.Context) (domain.Catalog, error) {
	if catalog, ok := r.cachedCatalog(r.clock()); ok {
		return catalog, nil
	}

	result, err, _ := r.sf.Do(r.catalogID, func() (interface{}, error) {
		now := r.clock()
		if catalog, ok := r.cachedCatalog(now); ok {
			return catalog, nil
		}

		catalog, err := r.loader.LoadCatalog(ctx, r.catalogID)
		if err != nil {
			return domain.Catalog{}, err
		}

		r.mu.Lock()
		r.cached = catalog
		r.expiry = now.Add(r.ttlWithJitter())
		r.mu.Unlock()
		return catalog, nil
	})
	if err != nil {
		return domain.Catalog{}, err
	}
	return result.(domain.Catalog), nil
}

// cachedCatalog returns the cached catalog if it is still usable. A
// non-positive TTL means the catalog is cached indefinitely once loaded.
func (r *CatalogRepository) cachedCatalog(now time.Time) (domain.Catalog, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.cached.Questions) == 0 {
		return domain.Catalog{}, false
	}
	if r.ttl > 0 && !r.expiry.After(now) {
		return domain.Catalog{}, false
	}
	return r.cached, true
}

// StaticCatalogLoader serves a fixed catalog (the built-in one in production,
// arbitrary ones in tests).
type StaticCatalogLoader struct {
	catalogs map[string]domain.Catalog
}

func NewStaticCatalogLoader(catalogs ...domain.Catalog) *StaticCatalogLoader {
	byID := make(map[string]domain.Catalog, len(catalogs))
	for _, c := range catalogs {
		byID[c.ID] = c
	}
	return &StaticCatalogLoader{catalogs: byID}
}

func (l *StaticCatalogLoader) LoadCatalog(_ context.Context, catalogID string) (domain.Catalog, error) {
	if catalog, ok := l.catalogs[catalogID]; ok {
		return catalog, nil
	}
	return domain.Catalog{}, domain.ErrCatalogNotFound
}

func (r *CatalogRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
