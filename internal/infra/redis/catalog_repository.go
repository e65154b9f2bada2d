package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"slopbowl-service/internal/domain"
)

// CatalogLoader fetches the question catalog from a backing store.
type CatalogLoader interface {
	LoadCatalog(ctx context.Context, catalogID string) (domain.Catalog, error)
}

// CatalogRepository caches the catalog JSON in Redis and falls back to the
// loader on cache miss. Cache fills are collapsed with singleflight so a cold
// start does not stampede the backing store.
type CatalogRepository struct {
	client    *redis.Client
	loader    CatalogLoader
	catalogID string
	ttl       time.Duration
	sf        singleflight.Group
	rnd       *rand.Rand
}

func NewCatalogRepository(client *redis.Client, loader CatalogLoader, catalogID string, ttl time.Duration) *CatalogRepository {
	return &CatalogRepository{
		client:    client,
		loader:    loader,
		catalogID: catalogID,
		ttl:       ttl,
		rnd:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *CatalogRepository) GetCatalog(ctx context.Context) (domain.Catalog, error) {
	key := r.key()

	raw, err := r.client.Get(ctx, key).Result()
	if err == nil && raw != "" {
		if catalog, ok := decodeCatalog(raw); ok {
			return catalog, nil
		}
	}

	result, err, _ := r.sf.Do(r.catalogID, func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		raw, err := r.client.Get(ctx, key).Result()
		if err == nil && raw != "" {
			if catalog, ok := decodeCatalog(raw); ok {
				return catalog, nil
			}
		}

		catalog, err := r.loader.LoadCatalog(ctx, r.catalogID)
		if err != nil {
			return domain.Catalog{}, err
		}

		if data, err := json.Marshal(catalog); err == nil {
			// best-effort cache fill
			_ = r.client.Set(ctx, key, data, r.ttlWithJitter()).Err()
		}
		return catalog, nil
	})
	if err != nil {
		return domain.Catalog{}, err
	}
	return result.(domain.Catalog), nil
}

func (r *CatalogRepository) key() string {
	return "corporateslopbowl:catalog:" + r.catalogID
}

func decodeCatalog(raw string) (domain.Catalog, bool) {
	var catalog domain.Catalog
	if err := json.Unmarshal([]byte(raw), &catalog); err != nil {
		return domain.Catalog{}, false
	}
	return catalog, len(catalog.Questions) > 0
}

func (r *CatalogRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
