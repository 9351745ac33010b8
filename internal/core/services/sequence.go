package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/seqres/internal/core/domain"
	"github.com/custodia-labs/seqres/internal/core/ports/driven"
	"github.com/custodia-labs/seqres/internal/core/ports/driving"
)

// Ensure SequenceService implements the interface.
var _ driving.SequenceService = (*SequenceService)(nil)

// SequenceService fetches sequence content through a resolver.
type SequenceService struct {
	resolver driven.OptionalResolver
}

// NewSequenceService creates a sequence service over resolver, usually a chain.
func NewSequenceService(resolver driven.OptionalResolver) *SequenceService {
	return &SequenceService{resolver: resolver}
}

// Fetch resolves addr and returns the content of r along with the range served.
// A nil r selects the known region starting at position 0.
func (s *SequenceService) Fetch(ctx context.Context, addr domain.SequenceAddress, r *domain.Range) (string, domain.Range, error) {
	provider, err := s.resolver.Resolve(ctx, addr)
	if err != nil {
		return "", domain.Range{}, err
	}

	var want domain.Range
	if r != nil {
		want = *r
	} else {
		avail, ok := provider.Available(ctx, domain.Range{})
		if !ok {
			return "", domain.Range{}, fmt.Errorf("%w: %s has no region starting at 0, give a range", domain.ErrRangeUnavailable, addr.Raw)
		}
		want = avail
	}

	seq, err := provider.Region(ctx, want)
	if err != nil {
		return "", domain.Range{}, err
	}
	return seq, want, nil
}

// CanResolve reports whether the resolver handles addr.
func (s *SequenceService) CanResolve(addr domain.SequenceAddress) bool {
	return s.resolver.CanResolve(addr)
}
