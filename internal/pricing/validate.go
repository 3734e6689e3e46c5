package pricing

import (
	"context"

	"github.com/davidbz/tariff/internal/domain"
	"github.com/davidbz/tariff/internal/observability"
)

// maxPlausiblePrice bounds the warn-only plausibility window: per-million
// prices outside (0, 1000] are flagged but never rejected.
const maxPlausiblePrice = 1000.0

// validateCatalog scans a freshly loaded catalog for suspicious prices.
// Diagnostics only - a catalog is served as-is regardless of warnings.
func validateCatalog(ctx context.Context, catalog *domain.Catalog) {
	logger := observability.FromContext(ctx)

	for key, rec := range catalog.Models {
		if rec.InputPrice <= 0 || rec.InputPrice > maxPlausiblePrice {
			logger.Warn("suspicious input price",
				observability.String("model", key),
				observability.Float64("input_price", rec.InputPrice))
		}
		if rec.OutputPrice <= 0 || rec.OutputPrice > maxPlausiblePrice {
			logger.Warn("suspicious output price",
				observability.String("model", key),
				observability.Float64("output_price", rec.OutputPrice))
		}
	}
}
