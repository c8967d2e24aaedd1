package catalog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/roamly/tourguide-backend/internal/domain/entities"
	"github.com/roamly/tourguide-backend/internal/domain/providers"
	"github.com/roamly/tourguide-backend/internal/infrastructure/observability"
)

const (
	cacheKey = "catalog:attractions"
	cacheTTL = time.Hour
)

// CachedCatalog decorates a CatalogProvider with a cache layer. The catalog
// is static for the process lifetime, so a long TTL is safe. Cache failures
// fall through to the inner provider.
type CachedCatalog struct {
	inner   providers.CatalogProvider
	cache   providers.CacheProvider
	metrics *observability.Metrics
}

// NewCachedCatalog wraps the given catalog provider with caching. Metrics
// may be nil.
func NewCachedCatalog(inner providers.CatalogProvider, cache providers.CacheProvider, metrics *observability.Metrics) providers.CatalogProvider {
	return &CachedCatalog{inner: inner, cache: cache, metrics: metrics}
}

// ListAttractions returns the attraction catalog, from cache when possible
func (c *CachedCatalog) ListAttractions(ctx context.Context) ([]entities.Attraction, error) {
	if data, err := c.cache.Get(ctx, cacheKey); err == nil {
		var attractions []entities.Attraction
		if err := json.Unmarshal(data, &attractions); err == nil {
			observability.RecordCacheHit(ctx, c.metrics, cacheKey)
			return attractions, nil
		}
		// Corrupt entry, drop it and fall through.
		_ = c.cache.Delete(ctx, cacheKey)
	}
	observability.RecordCacheMiss(ctx, c.metrics, cacheKey)

	attractions, err := c.inner.ListAttractions(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(attractions); err == nil {
		logger := observability.GetLogger()
		if err := c.cache.Set(ctx, cacheKey, data, cacheTTL); err != nil {
			logger.Warn().Err(err).Msg("failed to cache attraction catalog")
		}
	}
	return attractions, nil
}
