package domain

import "time"

// DefaultCatalog returns the hardcoded fallback catalog used when every
// other pricing source fails. It is a safety net, not a source of truth:
// the rates cover well-known models and may lag published pricing.
func DefaultCatalog() *Catalog {
	return &Catalog{
		LastUpdated: time.Now().UTC(),
		Default:     true,
		Models: map[string]PriceRecord{
			"anthropic/claude-opus-4":    {InputPrice: 15.0, OutputPrice: 75.0, Currency: "USD"},
			"anthropic/claude-sonnet-4":  {InputPrice: 3.0, OutputPrice: 15.0, Currency: "USD"},
			"anthropic/claude-haiku-3-5": {InputPrice: 0.25, OutputPrice: 1.25, Currency: "USD"},
			"openai/gpt-4":               {InputPrice: 30.0, OutputPrice: 60.0, Currency: "USD"},
			"openai/gpt-4-turbo":         {InputPrice: 10.0, OutputPrice: 30.0, Currency: "USD"},
			"openai/gpt-3-5-turbo":       {InputPrice: 0.5, OutputPrice: 1.5, Currency: "USD"},
			"openai/gpt-4o":              {InputPrice: 5.0, OutputPrice: 15.0, Currency: "USD"},
			"openai/gpt-4o-mini":         {InputPrice: 0.15, OutputPrice: 0.6, Currency: "USD"},
		},
	}
}
