package source

import (
	"context"

	"github.com/davidbz/tariff/internal/domain"
	"github.com/davidbz/tariff/internal/store"
)

// Cached serves the document previously persisted by a successful remote
// fetch. It never writes.
type Cached struct {
	store store.Store
}

// NewCached creates a source over the given store.
func NewCached(st store.Store) *Cached {
	return &Cached{store: st}
}

// Name identifies the source in logs.
func (c *Cached) Name() string {
	return "cache"
}

// Fetch reads and parses the stored document.
func (c *Cached) Fetch(ctx context.Context) (*domain.Catalog, error) {
	data, err := c.store.Read(ctx)
	if err != nil {
		return nil, err
	}
	return domain.ParseCatalog(data)
}
