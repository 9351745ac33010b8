package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/seqres/internal/core/domain"
	"github.com/custodia-labs/seqres/internal/core/ports/driven"
	"github.com/custodia-labs/seqres/internal/logger"
)

var _ driven.OptionalResolver = (*ResolverChain)(nil)

// ResolverChain dispatches an address to the first member that can resolve it.
// Order is fixed at construction; the chain never reorders members.
type ResolverChain struct {
	resolvers []driven.OptionalResolver
}

// NewResolverChain creates a chain probing resolvers in the given order.
func NewResolverChain(resolvers ...driven.OptionalResolver) *ResolverChain {
	return &ResolverChain{resolvers: append([]driven.OptionalResolver(nil), resolvers...)}
}

// Resolve delegates addr to the first resolver whose CanResolve reports true.
func (c *ResolverChain) Resolve(ctx context.Context, addr domain.SequenceAddress) (driven.SequenceProvider, error) {
	if _, err := addr.Parse(); err != nil {
		return nil, err
	}

	for i, r := range c.resolvers {
		if r.CanResolve(addr) {
			logger.Debug("resolver %d (%T) handles %s", i, r, addr.Raw)
			return r.Resolve(ctx, addr)
		}
	}

	return nil, &domain.Error{
		Kind:    domain.KindNoResolver,
		Op:      "resolve",
		Address: addr.Raw,
		Err:     fmt.Errorf("none of %d resolvers accepts it", len(c.resolvers)),
	}
}

// CanResolve reports whether any member can resolve addr.
func (c *ResolverChain) CanResolve(addr domain.SequenceAddress) bool {
	for _, r := range c.resolvers {
		if r.CanResolve(addr) {
			return true
		}
	}
	return false
}

// Resolvers returns the members in probe order.
func (c *ResolverChain) Resolvers() []driven.OptionalResolver {
	return append([]driven.OptionalResolver(nil), c.resolvers...)
}

// Close closes every member implementing driven.Closer and returns the first error.
func (c *ResolverChain) Close() error {
	var first error
	for _, r := range c.resolvers {
		if closer, ok := r.(driven.Closer); ok {
			if err := closer.Close(); err != nil && first == nil {
				first = err
			}
		}
	}
	return first
}
