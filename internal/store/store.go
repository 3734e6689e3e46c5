package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotExist indicates no cached pricing document has been written yet.
var ErrNotExist = errors.New("no cached pricing document")

// Store persists the raw pricing document between runs. The stored bytes
// are the document as fetched, not a parsed form, so any backend can serve
// as the fallback source for the chain.
type Store interface {
	// Read returns the cached document, or ErrNotExist.
	Read(ctx context.Context) ([]byte, error)

	// Write replaces the cached document.
	Write(ctx context.Context, data []byte) error

	// LastModified returns when the document was last written, or
	// ErrNotExist. This timestamp is the staleness signal; content is
	// never re-validated for freshness beyond parse success.
	LastModified(ctx context.Context) (time.Time, error)
}
