package filesystem

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/seqres/internal/core/domain"
	"github.com/custodia-labs/seqres/internal/core/ports/driven"
	"github.com/custodia-labs/seqres/internal/fasta"
	"github.com/custodia-labs/seqres/internal/logger"
)

// Scheme is the address scheme handled by this resolver.
const Scheme = "file"

var (
	_ driven.OptionalResolver = (*Resolver)(nil)
	_ driven.Closer           = (*Resolver)(nil)
)

// Resolver resolves file:// addresses.
type Resolver struct {
	mu      sync.Mutex
	memo    map[string]*fasta.Document
	watcher *fsnotify.Watcher
	watched map[string]bool
	done    chan struct{}
	wg      sync.WaitGroup
}

// New creates a resolver without file watching.
func New() *Resolver {
	return &Resolver{
		memo: make(map[string]*fasta.Document),
	}
}

// NewWatching creates a resolver that evicts memoized files when they change on disk.
func NewWatching() (*Resolver, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}

	r := New()
	r.watcher = w
	r.watched = make(map[string]bool)
	r.done = make(chan struct{})

	r.wg.Add(1)
	go r.watchLoop()

	return r, nil
}

// CanResolve reports whether addr is a well-formed file:// address.
func (r *Resolver) CanResolve(addr domain.SequenceAddress) bool {
	p, err := addr.Parse()
	return err == nil && p.Scheme == Scheme
}

// Resolve returns the record addressed by addr.
func (r *Resolver) Resolve(ctx context.Context, addr domain.SequenceAddress) (driven.SequenceProvider, error) {
	p, err := addr.Parse()
	if err != nil {
		return nil, err
	}
	if p.Scheme != Scheme {
		return nil, &domain.Error{
			Kind:    domain.KindNoResolver,
			Op:      "resolve file",
			Address: addr.Raw,
			Err:     fmt.Errorf("unsupported scheme %q", p.Scheme),
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := ResolvePath(addr.Context, p.Payload)
	if err != nil {
		return nil, err
	}

	doc, err := r.load(path)
	if err != nil {
		var pathErr *os.PathError
		if errors.As(err, &pathErr) {
			return nil, fmt.Errorf("resolving %s: %w: %w", addr.Raw, domain.ErrNotFound, err)
		}
		return nil, &domain.Error{Kind: domain.KindParse, Op: "resolve file", Address: addr.Raw, Err: err}
	}

	rec, err := doc.Select(p.Fragment)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", addr.Raw, err)
	}

	logger.Debug("resolved %s to record %s in %s (%d residues)", addr.Raw, rec.ID, path, len(rec.Sequence))
	return rec, nil
}

// load returns the parsed document at path, parsing it on first use.
func (r *Resolver) load(path string) (*fasta.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if doc, ok := r.memo[path]; ok {
		return doc, nil
	}

	doc, err := fasta.ParseFile(path)
	if err != nil {
		return nil, err
	}
	r.memo[path] = doc
	r.watchLocked(path)
	return doc, nil
}

// Evict drops the memoized document for path.
func (r *Resolver) Evict(path string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.memo[path]; !ok {
		return false
	}
	delete(r.memo, path)
	return true
}

// Cached returns the number of memoized files.
func (r *Resolver) Cached() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.memo)
}

// Close stops the file watcher, if any.
func (r *Resolver) Close() error {
	if r.watcher == nil {
		return nil
	}

	r.mu.Lock()
	select {
	case <-r.done:
		r.mu.Unlock()
		return nil
	default:
		close(r.done)
	}
	r.mu.Unlock()

	err := r.watcher.Close()
	r.wg.Wait()
	return err
}

// ResolvePath turns an address payload into an absolute file path.
// Relative payloads are resolved against contextPath: a directory is used
// directly, any other path contributes its parent directory.
func ResolvePath(contextPath, payload string) (string, error) {
	path := filepath.FromSlash(payload)
	if !filepath.IsAbs(path) && contextPath != "" {
		base := contextPath
		if info, err := os.Stat(contextPath); err != nil || !info.IsDir() {
			base = filepath.Dir(contextPath)
		}
		path = filepath.Join(base, path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path %q: %w", payload, err)
	}
	return abs, nil
}
