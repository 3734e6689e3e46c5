package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/davidbz/tariff/internal/domain"
	"github.com/davidbz/tariff/internal/observability"
	"github.com/davidbz/tariff/internal/store"
)

const maxDocumentSize = 4 << 20 // refuse pricing documents over 4 MiB

// Remote fetches the pricing document over HTTP. On success the raw bytes
// are persisted to the store so later runs can fall back to them; a persist
// failure is logged and the catalog still returned.
type Remote struct {
	url    string
	client *http.Client
	store  store.Store
}

// NewRemote creates a remote source for url. st may be nil to skip
// persistence.
func NewRemote(url string, timeout time.Duration, st store.Store) *Remote {
	return &Remote{
		url:    url,
		client: &http.Client{Timeout: timeout},
		store:  st,
	}
}

// Name identifies the source in logs.
func (r *Remote) Name() string {
	return "remote"
}

// Fetch retrieves and parses the pricing document.
func (r *Remote) Fetch(ctx context.Context) (*domain.Catalog, error) {
	logger := observability.FromContext(ctx)
	logger.Info("fetching latest pricing", observability.String("url", r.url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build pricing request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pricing fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("pricing fetch returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read pricing response: %w", err)
	}

	catalog, err := domain.ParseCatalog(data)
	if err != nil {
		return nil, err
	}

	// Persistence is a side effect independent of the in-memory catalog;
	// a full disk must not turn a successful fetch into a failure.
	if r.store != nil {
		if err := r.store.Write(ctx, data); err != nil {
			logger.Warn("failed to persist pricing document",
				observability.Error(err))
		}
	}

	logger.Info("successfully updated pricing data",
		observability.Int("models", catalog.Len()))
	return catalog, nil
}
