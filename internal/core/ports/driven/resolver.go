package driven

import (
	"context"

	"github.com/custodia-labs/seqres/internal/core/domain"
)

// SequenceProvider gives access to resolved sequence content.
// Implementations must be safe for concurrent reads.
type SequenceProvider interface {
	// Region returns the content of r.
	// Returns domain.ErrRangeUnavailable if r is not fully known.
	Region(ctx context.Context, r domain.Range) (string, error)

	// Available returns the maximal known range containing r.
	// The boolean is false when no single known range covers r.
	Available(ctx context.Context, r domain.Range) (domain.Range, bool)
}

// Resolver turns a sequence address into a provider.
type Resolver interface {
	// Resolve returns a provider for addr, or a *domain.Error describing
	// why the address could not be resolved.
	Resolve(ctx context.Context, addr domain.SequenceAddress) (SequenceProvider, error)
}

// OptionalResolver is a Resolver that can report whether it handles an address.
type OptionalResolver interface {
	Resolver

	// CanResolve is a cheap probe. It must not perform I/O or mutate state.
	CanResolve(addr domain.SequenceAddress) bool
}

// Closer is implemented by resolvers holding background resources.
type Closer interface {
	Close() error
}
