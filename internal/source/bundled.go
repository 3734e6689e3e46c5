package source

import (
	"context"
	"embed"

	"github.com/davidbz/tariff/internal/domain"
)

// bundledFS embeds the pricing snapshot shipped with the binary.
//
//go:embed data/default_pricing.json
var bundledFS embed.FS

const bundledPath = "data/default_pricing.json"

// Bundled serves the snapshot document compiled into the binary. Used when
// neither the remote source nor the cache can produce a catalog.
type Bundled struct{}

// NewBundled creates the bundled-snapshot source.
func NewBundled() *Bundled {
	return &Bundled{}
}

// Name identifies the source in logs.
func (b *Bundled) Name() string {
	return "bundled"
}

// Fetch parses the embedded snapshot.
func (b *Bundled) Fetch(_ context.Context) (*domain.Catalog, error) {
	data, err := bundledFS.ReadFile(bundledPath)
	if err != nil {
		return nil, err
	}
	return domain.ParseCatalog(data)
}
