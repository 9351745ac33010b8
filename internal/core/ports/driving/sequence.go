package driving

import (
	"context"
	"time"

	"github.com/custodia-labs/seqres/internal/core/domain"
)

// SequenceService resolves addresses and extracts sequence content.
type SequenceService interface {
	// Fetch resolves addr and returns the content of r.
	// A nil r selects the whole known region starting at position 0.
	Fetch(ctx context.Context, addr domain.SequenceAddress, r *domain.Range) (string, domain.Range, error)

	// CanResolve reports whether any configured resolver handles addr.
	CanResolve(addr domain.SequenceAddress) bool
}

// CacheEntry describes one file in the download cache.
type CacheEntry struct {
	// Key is the cache key, which is also the file name.
	Key string

	// Size is the file size in bytes.
	Size int64

	// ModTime is when the file was written.
	ModTime time.Time
}

// CacheService inspects and clears the download cache.
type CacheService interface {
	// Dir returns the cache directory.
	Dir() string

	// List returns the cached entries sorted by key.
	List() ([]CacheEntry, error)

	// Clear removes all cached entries and returns how many were removed.
	Clear() (int, error)
}
