package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// catalogDocument is the wire shape shared by the remote source, the cache
// store, and the bundled snapshot.
type catalogDocument struct {
	LastUpdated string                 `json:"last_updated"`
	SourceURL   string                 `json:"source_url,omitempty"`
	Pricing     map[string]PriceRecord `json:"pricing"`
}

// ParseCatalog decodes a pricing document into a Catalog.
//
// Missing input/output prices default to zero and a missing currency
// defaults to USD. A malformed last_updated fails open to the current time
// rather than returning an error; only a structurally invalid document is
// rejected, with ErrInvalidDocument in the chain. A document without a
// pricing section counts as structurally invalid rather than as an empty
// catalog: a blank document from one source must not shadow usable data
// further down the fallback chain.
func ParseCatalog(data []byte) (*Catalog, error) {
	var doc catalogDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if doc.Pricing == nil {
		return nil, fmt.Errorf("%w: missing pricing section", ErrInvalidDocument)
	}

	models := make(map[string]PriceRecord, len(doc.Pricing))
	for key, rec := range doc.Pricing {
		if rec.Currency == "" {
			rec.Currency = "USD"
		}
		models[key] = rec
	}

	lastUpdated, err := time.Parse(time.RFC3339, doc.LastUpdated)
	if err != nil {
		lastUpdated = time.Now().UTC()
	}

	return &Catalog{
		LastUpdated: lastUpdated,
		Models:      models,
		SourceURL:   doc.SourceURL,
	}, nil
}

// MarshalDocument encodes the catalog back into the wire shape.
//
// Timestamps serialize as RFC3339 with second precision, so a round-trip
// through ParseCatalog preserves models, prices, currencies, notes, and
// source URL exactly, and the timestamp up to sub-second truncation.
func (c *Catalog) MarshalDocument() ([]byte, error) {
	doc := catalogDocument{
		LastUpdated: c.LastUpdated.UTC().Format(time.RFC3339),
		SourceURL:   c.SourceURL,
		Pricing:     c.Models,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode pricing document: %w", err)
	}
	return data, nil
}
