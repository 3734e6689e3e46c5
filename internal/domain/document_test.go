package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/tariff/internal/domain"
)

func TestParseCatalog(t *testing.T) {
	t.Run("parses a complete document", func(t *testing.T) {
		doc := `{
			"last_updated": "2025-06-01T12:00:00Z",
			"source_url": "https://example.com/pricing",
			"pricing": {
				"openai/gpt-4": {"input": 30.0, "output": 60.0},
				"anthropic/claude-opus-4": {
					"input": 15.0,
					"output": 75.0,
					"currency": "USD",
					"notes": "most capable"
				}
			}
		}`

		catalog, err := domain.ParseCatalog([]byte(doc))
		require.NoError(t, err)

		require.Equal(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), catalog.LastUpdated.UTC())
		require.Equal(t, "https://example.com/pricing", catalog.SourceURL)
		require.Len(t, catalog.Models, 2)
		require.False(t, catalog.Default)

		gpt4 := catalog.Models["openai/gpt-4"]
		require.InDelta(t, 30.0, gpt4.InputPrice, 0.0001)
		require.InDelta(t, 60.0, gpt4.OutputPrice, 0.0001)
		require.Equal(t, "USD", gpt4.Currency)

		opus := catalog.Models["anthropic/claude-opus-4"]
		require.Equal(t, "most capable", opus.Notes)
	})

	t.Run("missing prices default to zero", func(t *testing.T) {
		doc := `{"last_updated": "2025-06-01T12:00:00Z", "pricing": {"openai/gpt-4": {}}}`

		catalog, err := domain.ParseCatalog([]byte(doc))
		require.NoError(t, err)

		rec := catalog.Models["openai/gpt-4"]
		require.Zero(t, rec.InputPrice)
		require.Zero(t, rec.OutputPrice)
		require.Equal(t, "USD", rec.Currency)
	})

	t.Run("malformed timestamp fails open to now", func(t *testing.T) {
		doc := `{"last_updated": "not-a-timestamp", "pricing": {"openai/gpt-4": {"input": 1}}}`

		before := time.Now().UTC()
		catalog, err := domain.ParseCatalog([]byte(doc))
		require.NoError(t, err)

		require.False(t, catalog.LastUpdated.Before(before))
	})

	t.Run("invalid JSON is rejected", func(t *testing.T) {
		_, err := domain.ParseCatalog([]byte("{not json"))
		require.ErrorIs(t, err, domain.ErrInvalidDocument)
	})

	t.Run("missing pricing section is rejected", func(t *testing.T) {
		_, err := domain.ParseCatalog([]byte(`{"last_updated": "2025-06-01T12:00:00Z"}`))
		require.ErrorIs(t, err, domain.ErrInvalidDocument)
	})
}

func TestCatalogRoundTrip(t *testing.T) {
	original := &domain.Catalog{
		LastUpdated: time.Date(2025, 6, 1, 12, 30, 45, 0, time.UTC),
		SourceURL:   "https://example.com/pricing",
		Models: map[string]domain.PriceRecord{
			"openai/gpt-4":            {InputPrice: 30.0, OutputPrice: 60.0, Currency: "USD"},
			"anthropic/claude-opus-4": {InputPrice: 15.0, OutputPrice: 75.0, Currency: "USD", Notes: "premium"},
			"mistral/large":           {InputPrice: 2.0, OutputPrice: 6.0, Currency: "EUR"},
		},
	}

	data, err := original.MarshalDocument()
	require.NoError(t, err)

	parsed, err := domain.ParseCatalog(data)
	require.NoError(t, err)

	require.Equal(t, original.Models, parsed.Models)
	require.Equal(t, original.SourceURL, parsed.SourceURL)
	require.True(t, original.LastUpdated.Equal(parsed.LastUpdated))
}

func TestDefaultCatalog(t *testing.T) {
	catalog := domain.DefaultCatalog()

	require.True(t, catalog.Default)
	require.NotZero(t, catalog.LastUpdated)

	gpt4, ok := catalog.Models["openai/gpt-4"]
	require.True(t, ok)
	require.InDelta(t, 30.0, gpt4.InputPrice, 0.0001)
	require.InDelta(t, 60.0, gpt4.OutputPrice, 0.0001)

	opus, ok := catalog.Models["anthropic/claude-opus-4"]
	require.True(t, ok)
	require.InDelta(t, 15.0, opus.InputPrice, 0.0001)
	require.InDelta(t, 75.0, opus.OutputPrice, 0.0001)
}
