package domain

import "time"

// PriceRecord holds token pricing for a single model. Prices are USD per
// one million tokens unless Currency says otherwise. Records are immutable
// values owned by the catalog that contains them.
type PriceRecord struct {
	InputPrice  float64 `json:"input"`
	OutputPrice float64 `json:"output"`
	Currency    string  `json:"currency"`
	Notes       string  `json:"notes,omitempty"`
}

// Catalog is an immutable snapshot of model pricing at one point in time.
// Keys are "provider/model", both segments lower-case by convention; the
// catalog itself makes no normalization guarantee - lookups normalize.
// A catalog is replaced wholesale on refresh, never mutated in place.
type Catalog struct {
	LastUpdated time.Time
	Models      map[string]PriceRecord
	SourceURL   string

	// Default marks the hardcoded fallback catalog so diagnostics can
	// tell it apart from live data. Lookups behave identically.
	Default bool
}

// Len returns the number of models in the catalog.
func (c *Catalog) Len() int {
	return len(c.Models)
}
