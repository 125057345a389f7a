package countries

import (
	"context"
	"errors"
	"fmt"

	"github.com/joefazee/countries/internal/cache"
	"github.com/joefazee/countries/models"
)

// DefaultSnapshotKey is where the dataset lives in a cache-backed store
const DefaultSnapshotKey = "countries:all"

// cacheRepository keeps the whole dataset as a single cache entry
type cacheRepository struct {
	store cache.Cache[[]models.Country]
	key   string
}

// NewCacheRepository reads and writes the dataset under key in store
func NewCacheRepository(store cache.Cache[[]models.Country], key string) Store {
	if key == "" {
		key = DefaultSnapshotKey
	}
	return &cacheRepository{store: store, key: key}
}

func (r *cacheRepository) FetchAll(ctx context.Context) ([]models.Country, error) {
	countries, err := r.store.Get(ctx, r.key)
	if errors.Is(err, cache.ErrCacheMiss) {
		return nil, fmt.Errorf("snapshot %q: %w", r.key, models.ErrRecordNotFound)
	}
	if err != nil {
		return nil, err
	}
	return countries, nil
}

// Seed replaces the stored dataset
func (r *cacheRepository) Seed(ctx context.Context, countries []models.Country) error {
	for i := range countries {
		if err := countries[i].Validate(); err != nil {
			return err
		}
	}
	return r.store.Set(ctx, r.key, countries, 0)
}
