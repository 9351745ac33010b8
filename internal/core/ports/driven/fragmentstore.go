package driven

import (
	"context"

	"github.com/custodia-labs/seqres/internal/core/domain"
)

// FragmentStore holds disjoint known spans per accession and merges new
// fragments into them.
//
// Spans stored for one accession never intersect or touch. Implementations
// validate a fragment against every overlapping span before mutating; a
// mismatch returns a domain.KindOverlapMismatch error and leaves the
// accession unchanged.
type FragmentStore interface {
	// Put records that seq occupies [offset, offset+len(seq)) for accession.
	Put(ctx context.Context, accession string, offset int, seq string) error

	// Get returns the content for r if a single stored span contains it.
	Get(ctx context.Context, accession string, r domain.Range) (string, bool, error)

	// AvailableRange returns the stored span range that contains r.
	AvailableRange(ctx context.Context, accession string, r domain.Range) (domain.Range, bool, error)

	// Spans returns all stored spans for accession, ordered by position.
	Spans(ctx context.Context, accession string) ([]domain.Span, error)

	// Accessions lists every accession with at least one span, sorted.
	Accessions(ctx context.Context) ([]string, error)
}
