package pricing

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/davidbz/tariff/internal/domain"
	"github.com/davidbz/tariff/internal/observability"
	"github.com/davidbz/tariff/internal/source"
	"github.com/davidbz/tariff/internal/store"
)

// Resolver produces a catalog from the configured source chain.
type Resolver interface {
	Resolve(ctx context.Context) (*domain.Catalog, error)
}

// Cache owns the currently loaded catalog, decides staleness, and answers
// lookups and cost calculations against it.
//
// The catalog is swapped wholesale on refresh, never mutated, so lookup
// memoization is cleared on every swap and a generation ID ties diagnostics
// to one loaded catalog.
type Cache struct {
	autoUpdate bool
	ttl        time.Duration
	store      store.Store
	chain      Resolver
	events     domain.EventPublisher

	mu         sync.RWMutex
	catalog    *domain.Catalog
	generation string
	memo       map[string]domain.PriceRecord
}

// NewCache creates a cache over the given store and source chain. events
// may be nil.
func NewCache(
	autoUpdate bool,
	ttl time.Duration,
	st store.Store,
	chain Resolver,
	events domain.EventPublisher,
) *Cache {
	return &Cache{
		autoUpdate: autoUpdate,
		ttl:        ttl,
		store:      st,
		chain:      chain,
		events:     events,
		memo:       make(map[string]domain.PriceRecord),
	}
}

// Load ensures a catalog is loaded, refreshing through the source chain
// when the cached data is stale or force is set. Repeated calls while the
// data is fresh are no-ops returning the current catalog.
func (c *Cache) Load(ctx context.Context, force bool) (*domain.Catalog, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !force && c.catalog != nil && !c.shouldUpdate(ctx) {
		return c.catalog, nil
	}

	if force || c.shouldUpdate(ctx) {
		catalog, err := c.chain.Resolve(ctx)
		if err != nil {
			return nil, err
		}
		c.swap(ctx, catalog)
		return c.catalog, nil
	}

	// Fresh on disk but nothing in memory yet: serve the stored document
	// without touching the network. A corrupt store falls back to the
	// full chain.
	catalog, err := source.NewCached(c.store).Fetch(ctx)
	if err != nil {
		observability.FromContext(ctx).Warn("stored pricing unreadable, resolving chain",
			observability.Error(err))
		catalog, err = c.chain.Resolve(ctx)
		if err != nil {
			return nil, err
		}
	}
	c.swap(ctx, catalog)
	return c.catalog, nil
}

// shouldUpdate reports whether the persisted document is too old to trust.
// Callers must hold the lock.
func (c *Cache) shouldUpdate(ctx context.Context) bool {
	if !c.autoUpdate {
		return false
	}

	modified, err := c.store.LastModified(ctx)
	if err != nil {
		// Missing or unreadable metadata counts as stale.
		return true
	}

	return time.Since(modified) > c.ttl
}

// swap replaces the loaded catalog. Callers must hold the lock.
func (c *Cache) swap(ctx context.Context, catalog *domain.Catalog) {
	c.catalog = catalog
	c.generation = uuid.NewString()
	c.memo = make(map[string]domain.PriceRecord)

	validateCatalog(ctx, catalog)

	if c.events != nil {
		c.events.Publish(ctx, "pricing.catalog.swapped", map[string]interface{}{
			"generation":   c.generation,
			"models":       catalog.Len(),
			"default":      catalog.Default,
			"last_updated": catalog.LastUpdated,
		})
	}
}

// GetModelPricing returns the price record for a provider/model pair.
//
// Both inputs are lower-cased; the provider-qualified key is tried first,
// then the bare model name for catalogs keyed without a provider segment.
// Successful lookups are memoized for the lifetime of the loaded catalog.
func (c *Cache) GetModelPricing(ctx context.Context, provider, model string) (domain.PriceRecord, error) {
	key := strings.ToLower(provider) + "/" + strings.ToLower(model)

	c.mu.RLock()
	if c.catalog != nil {
		if rec, ok := c.memo[key]; ok {
			c.mu.RUnlock()
			return rec, nil
		}
	}
	loaded := c.catalog != nil
	c.mu.RUnlock()

	if !loaded {
		if _, err := c.Load(ctx, false); err != nil {
			return domain.PriceRecord{}, err
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	rec, ok := c.catalog.Models[key]
	if !ok {
		rec, ok = c.catalog.Models[strings.ToLower(model)]
	}
	if !ok {
		return domain.PriceRecord{}, &domain.NotFoundError{Provider: provider, Model: model}
	}

	c.memo[key] = rec
	return rec, nil
}

// CalculateCost computes the cost of a call for the given token counts.
func (c *Cache) CalculateCost(
	ctx context.Context,
	provider, model string,
	inputTokens, outputTokens int,
) (float64, error) {
	rec, err := c.GetModelPricing(ctx, provider, model)
	if err != nil {
		return 0, err
	}
	return domain.Cost(rec, inputTokens, outputTokens), nil
}

// ListModels returns all price records, or only those under the given
// provider. The returned map is a copy.
func (c *Cache) ListModels(ctx context.Context, provider string) (map[string]domain.PriceRecord, error) {
	catalog, err := c.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	models := make(map[string]domain.PriceRecord, catalog.Len())
	prefix := ""
	if provider != "" {
		prefix = strings.ToLower(provider) + "/"
	}
	for key, rec := range catalog.Models {
		if prefix == "" || strings.HasPrefix(key, prefix) {
			models[key] = rec
		}
	}
	return models, nil
}

// LastUpdated returns the loaded catalog's timestamp, loading first if
// nothing is in memory yet.
func (c *Cache) LastUpdated(ctx context.Context) (time.Time, error) {
	catalog, err := c.Snapshot(ctx)
	if err != nil {
		return time.Time{}, err
	}
	return catalog.LastUpdated, nil
}

// Snapshot returns the currently loaded catalog, loading first if needed.
// Treat the result as read-only.
func (c *Cache) Snapshot(ctx context.Context) (*domain.Catalog, error) {
	c.mu.RLock()
	catalog := c.catalog
	c.mu.RUnlock()

	if catalog != nil {
		return catalog, nil
	}
	return c.Load(ctx, false)
}

// Generation identifies the currently loaded catalog in diagnostics. Empty
// until the first successful load.
func (c *Cache) Generation() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.generation
}
