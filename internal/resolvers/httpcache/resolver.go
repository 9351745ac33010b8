package httpcache

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/seqres/internal/core/domain"
	"github.com/custodia-labs/seqres/internal/core/ports/driven"
	"github.com/custodia-labs/seqres/internal/fasta"
	"github.com/custodia-labs/seqres/internal/logger"
)

// Locator maps addresses of one remote source to download locations.
type Locator interface {
	// Schemes lists the lower-case schemes handled.
	Schemes() []string

	// Canonical validates p and returns its canonical form.
	// Two spellings of the same record must yield equal canonical addresses.
	Canonical(p domain.ParsedAddress) (domain.ParsedAddress, error)

	// URL returns the download location for a canonical address.
	URL(canonical domain.ParsedAddress) (string, error)
}

// ParseFunc decodes a completed cache file into a provider.
// Any error marks the file as corrupted.
type ParseFunc func(path string, canonical domain.ParsedAddress) (driven.SequenceProvider, error)

// ParseFASTA is the default ParseFunc. The address fragment, if any, selects a record.
func ParseFASTA(path string, canonical domain.ParsedAddress) (driven.SequenceProvider, error) {
	doc, err := fasta.ParseFile(path)
	if err != nil {
		return nil, err
	}
	rec, err := doc.Select(canonical.Fragment)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// Stats counts how resolutions were satisfied.
type Stats struct {
	// Fetches is the number of HTTP requests issued.
	Fetches int
	// MemoHits were served from memory without I/O.
	MemoHits int
	// DiskHits were parsed from an existing cache file.
	DiskHits int
	// Recoveries counts corrupted cache files replaced by a re-download.
	Recoveries int
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithHTTPClient sets the client used for downloads.
func WithHTTPClient(c *http.Client) Option {
	return func(r *Resolver) {
		if c != nil {
			r.client = c
		}
	}
}

// WithLimiter paces downloads. Limiter waits honour the request context.
func WithLimiter(l *rate.Limiter) Option {
	return func(r *Resolver) { r.limiter = l }
}

// WithParser replaces ParseFASTA.
func WithParser(fn ParseFunc) Option {
	return func(r *Resolver) {
		if fn != nil {
			r.parse = fn
		}
	}
}

// WithChunkSize sets the download read size.
func WithChunkSize(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.chunkSize = n
		}
	}
}

// WithUserAgent sets the User-Agent header on downloads.
func WithUserAgent(ua string) Option {
	return func(r *Resolver) { r.userAgent = ua }
}

var _ driven.OptionalResolver = (*Resolver)(nil)

// Resolver is the caching download resolver.
type Resolver struct {
	mu        sync.Mutex
	dir       string
	locator   Locator
	parse     ParseFunc
	client    *http.Client
	limiter   *rate.Limiter
	chunkSize int
	userAgent string
	memo      map[string]driven.SequenceProvider
	stats     Stats
}

// New creates a resolver caching into dir.
func New(dir string, locator Locator, opts ...Option) *Resolver {
	r := &Resolver{
		dir:       dir,
		locator:   locator,
		parse:     ParseFASTA,
		client:    http.DefaultClient,
		chunkSize: DefaultChunkSize,
		memo:      make(map[string]driven.SequenceProvider),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Dir returns the cache directory.
func (r *Resolver) Dir() string {
	return r.dir
}

// CanResolve reports whether the locator accepts addr. It performs no I/O.
func (r *Resolver) CanResolve(addr domain.SequenceAddress) bool {
	_, err := r.canonical(addr)
	return err == nil
}

// CachePath returns the cache file path addr resolves to.
func (r *Resolver) CachePath(addr domain.SequenceAddress) (string, error) {
	canon, err := r.canonical(addr)
	if err != nil {
		return "", err
	}
	return filepath.Join(r.dir, CacheKey(canon)), nil
}

// Resolve returns the provider for addr, downloading it if not cached.
func (r *Resolver) Resolve(ctx context.Context, addr domain.SequenceAddress) (driven.SequenceProvider, error) {
	canon, err := r.canonical(addr)
	if err != nil {
		return nil, err
	}
	key := CacheKey(canon)

	r.mu.Lock()
	defer r.mu.Unlock()

	if prov, ok := r.memo[key]; ok {
		r.stats.MemoHits++
		logger.Debug("memo hit for %s", canon)
		return prov, nil
	}

	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}
	path := filepath.Join(r.dir, key)

	if _, err := os.Stat(path); err == nil {
		prov, perr := r.parse(path, canon)
		if perr == nil {
			r.stats.DiskHits++
			logger.Debug("cache hit for %s at %s", canon, path)
			r.memo[key] = prov
			return prov, nil
		}
		corrupt := &domain.Error{Kind: domain.KindCacheCorruption, Op: "read cache", Address: addr.Raw, Err: perr}
		logger.Warn("%v; removing %s and downloading again", corrupt, path)
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("removing corrupted cache file: %w", err)
		}
		r.stats.Recoveries++
	}

	url, err := r.locator.URL(canon)
	if err != nil {
		return nil, err
	}
	if err := r.download(ctx, url, path); err != nil {
		return nil, &domain.Error{Kind: domain.KindNetwork, Op: "download", Address: addr.Raw, Err: err}
	}

	prov, err := r.parse(path, canon)
	if err != nil {
		// An unparsable download must not stay in the cache.
		_ = os.Remove(path)
		return nil, &domain.Error{Kind: domain.KindParse, Op: "parse download", Address: addr.Raw, Err: err}
	}

	r.memo[key] = prov
	return prov, nil
}

// Stats returns a snapshot of the counters.
func (r *Resolver) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats
}

// Forget drops all memoized providers. Cache files are kept.
func (r *Resolver) Forget() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.memo)
}

func (r *Resolver) canonical(addr domain.SequenceAddress) (domain.ParsedAddress, error) {
	p, err := addr.Parse()
	if err != nil {
		return domain.ParsedAddress{}, err
	}
	if !slices.Contains(r.locator.Schemes(), p.Scheme) {
		return domain.ParsedAddress{}, &domain.Error{
			Kind:    domain.KindNoResolver,
			Op:      "resolve remote",
			Address: addr.Raw,
			Err:     fmt.Errorf("unsupported scheme %q", p.Scheme),
		}
	}
	return r.locator.Canonical(p)
}
