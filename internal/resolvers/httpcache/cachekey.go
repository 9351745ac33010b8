package httpcache

import (
	"encoding/hex"
	"strings"

	"github.com/zeebo/blake3"

	"github.com/custodia-labs/seqres/internal/core/domain"
)

// maxReadableKey bounds the human-readable part of a cache key.
const maxReadableKey = 64

// CacheKey derives the cache file name for a canonical address.
// The readable prefix is for humans; the digest of the full canonical form
// makes distinct addresses map to distinct keys.
func CacheKey(canonical domain.ParsedAddress) string {
	full := canonical.String()
	sum := blake3.Sum256([]byte(full))

	readable := sanitize(canonical.Payload)
	if canonical.Fragment != "" {
		readable += "_" + sanitize(canonical.Fragment)
	}
	if len(readable) > maxReadableKey {
		readable = readable[:maxReadableKey]
	}

	return canonical.Scheme + "-" + readable + "-" + hex.EncodeToString(sum[:8])
}

// sanitize replaces characters outside [A-Za-z0-9._-] with '_'.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			return r
		default:
			return '_'
		}
	}, s)
}
