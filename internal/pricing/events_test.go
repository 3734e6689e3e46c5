package pricing_test

import (
	"context"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/tariff/internal/pricing"
	"github.com/davidbz/tariff/internal/source"
	"github.com/davidbz/tariff/internal/store"
)

type publishedEvent struct {
	eventType string
	data      map[string]interface{}
}

// recordingPublisher captures published events for assertions.
type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (p *recordingPublisher) Publish(_ context.Context, eventType string, data map[string]interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{eventType: eventType, data: data})
}

func (p *recordingPublisher) all() []publishedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]publishedEvent(nil), p.events...)
}

func TestCatalogSwapPublishesEvent(t *testing.T) {
	ctx := context.Background()

	dead := httptest.NewServer(nil)
	dead.Close()

	st, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, st.Write(ctx, []byte(cachedDoc)))

	chain := source.NewChain(
		source.NewRemote(dead.URL, time.Second, st),
		source.NewCached(st),
		source.NewDefaults(),
	)

	pub := &recordingPublisher{}
	cache := pricing.NewCache(true, 24*time.Hour, st, chain, pub)

	_, err = cache.Load(ctx, false)
	require.NoError(t, err)

	events := pub.all()
	require.Len(t, events, 1)
	require.Equal(t, "pricing.catalog.swapped", events[0].eventType)
	require.Equal(t, cache.Generation(), events[0].data["generation"])
	require.Equal(t, 4, events[0].data["models"])
	require.Equal(t, false, events[0].data["default"])

	// A fresh, unforced load does not swap and publishes nothing new.
	_, err = cache.Load(ctx, false)
	require.NoError(t, err)
	require.Len(t, pub.all(), 1)

	// A forced refresh swaps again under a new generation.
	_, err = cache.Load(ctx, true)
	require.NoError(t, err)

	events = pub.all()
	require.Len(t, events, 2)
	require.Equal(t, "pricing.catalog.swapped", events[1].eventType)
	require.NotEqual(t, events[0].data["generation"], events[1].data["generation"])
}
