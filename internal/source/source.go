package source

import (
	"context"
	"errors"

	"github.com/davidbz/tariff/internal/domain"
	"github.com/davidbz/tariff/internal/observability"
)

// Source produces a pricing catalog from one backing location.
type Source interface {
	// Name identifies the source in logs and diagnostics.
	Name() string

	// Fetch attempts to produce a catalog. A failure is not fatal to the
	// chain; the next source is tried.
	Fetch(ctx context.Context) (*domain.Catalog, error)
}

// ErrExhausted indicates every source in a chain failed. A chain ending in
// the Defaults source never returns it.
var ErrExhausted = errors.New("all pricing sources failed")

// Chain resolves a catalog by trying sources in order and stopping at the
// first success. Failures along the way are warnings, not errors: the
// terminal source is expected to be infallible.
type Chain struct {
	sources []Source
}

// NewChain creates a chain over the given sources, tried in order.
func NewChain(sources ...Source) *Chain {
	return &Chain{sources: sources}
}

// Resolve returns the first catalog any source yields.
func (c *Chain) Resolve(ctx context.Context) (*domain.Catalog, error) {
	logger := observability.FromContext(ctx)

	for _, src := range c.sources {
		catalog, err := src.Fetch(ctx)
		if err != nil {
			logger.Warn("pricing source failed, trying next",
				observability.String("source", src.Name()),
				observability.Error(err))
			continue
		}

		logger.Info("pricing catalog resolved",
			observability.String("source", src.Name()),
			observability.Int("models", catalog.Len()),
			observability.Bool("default_catalog", catalog.Default))
		return catalog, nil
	}

	return nil, ErrExhausted
}
