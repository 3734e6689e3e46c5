package source

import (
	"context"

	"github.com/davidbz/tariff/internal/domain"
)

// Defaults serves the hardcoded catalog. It never fails, which is what lets
// the chain guarantee a catalog to every caller.
type Defaults struct{}

// NewDefaults creates the terminal fallback source.
func NewDefaults() *Defaults {
	return &Defaults{}
}

// Name identifies the source in logs.
func (d *Defaults) Name() string {
	return "defaults"
}

// Fetch returns the built-in default catalog.
func (d *Defaults) Fetch(_ context.Context) (*domain.Catalog, error) {
	return domain.DefaultCatalog(), nil
}
