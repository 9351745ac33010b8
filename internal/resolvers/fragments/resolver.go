package fragments

import (
	"context"
	"fmt"

	"github.com/custodia-labs/seqres/internal/core/domain"
	"github.com/custodia-labs/seqres/internal/core/ports/driven"
	"github.com/custodia-labs/seqres/internal/logger"
)

// Scheme is the address scheme handled by this resolver.
const Scheme = "frag"

var _ driven.OptionalResolver = (*Resolver)(nil)

// Resolver serves frag://ACCESSION addresses from a FragmentStore.
type Resolver struct {
	store driven.FragmentStore
}

// New creates a resolver over store. The store must be safe for the
// concurrency the caller intends; services.FragmentService is.
func New(store driven.FragmentStore) *Resolver {
	return &Resolver{store: store}
}

// CanResolve reports whether addr is a frag:// address with an accession.
func (r *Resolver) CanResolve(addr domain.SequenceAddress) bool {
	p, err := addr.Parse()
	return err == nil && p.Scheme == Scheme && p.Fragment == ""
}

// Resolve returns a provider for a known accession.
func (r *Resolver) Resolve(ctx context.Context, addr domain.SequenceAddress) (driven.SequenceProvider, error) {
	p, err := addr.Parse()
	if err != nil {
		return nil, err
	}
	if p.Scheme != Scheme {
		return nil, &domain.Error{
			Kind:    domain.KindNoResolver,
			Op:      "resolve fragments",
			Address: addr.Raw,
			Err:     fmt.Errorf("unsupported scheme %q", p.Scheme),
		}
	}
	if p.Fragment != "" {
		return nil, domain.AddressError(addr.Raw, "fragment id not supported for %s addresses", Scheme)
	}

	spans, err := r.store.Spans(ctx, p.Payload)
	if err != nil {
		return nil, fmt.Errorf("loading spans for %s: %w", p.Payload, err)
	}
	if len(spans) == 0 {
		return nil, fmt.Errorf("%w: no fragments for accession %q", domain.ErrNotFound, p.Payload)
	}

	logger.Debug("resolved %s to %d stored span(s)", addr.Raw, len(spans))
	return &provider{store: r.store, accession: p.Payload}, nil
}

// provider reads one accession through to the store.
type provider struct {
	store     driven.FragmentStore
	accession string
}

func (p *provider) Region(ctx context.Context, r domain.Range) (string, error) {
	seq, ok, err := p.store.Get(ctx, p.accession, r)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", &domain.Error{
			Op:        "read fragments",
			Accession: p.accession,
			Range:     &r,
			Err:       domain.ErrRangeUnavailable,
		}
	}
	return seq, nil
}

func (p *provider) Available(ctx context.Context, r domain.Range) (domain.Range, bool) {
	avail, ok, err := p.store.AvailableRange(ctx, p.accession, r)
	if err != nil {
		logger.Debug("available range for %s %s: %v", p.accession, r, err)
		return domain.Range{}, false
	}
	return avail, ok
}
