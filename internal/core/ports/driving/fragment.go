package driving

import (
	"context"

	"github.com/custodia-labs/seqres/internal/core/domain"
)

// FragmentService deposits and reads sequence fragments.
// Implementations are safe for concurrent use.
type FragmentService interface {
	// Put merges a fragment into the accession's spans.
	Put(ctx context.Context, accession string, offset int, seq string) error

	// Get returns the content for r if a single stored span contains it.
	Get(ctx context.Context, accession string, r domain.Range) (string, bool, error)

	// AvailableRange returns the stored span range containing r.
	AvailableRange(ctx context.Context, accession string, r domain.Range) (domain.Range, bool, error)

	// Spans returns the accession's spans ordered by position.
	Spans(ctx context.Context, accession string) ([]domain.Span, error)

	// Accessions lists accessions with stored spans.
	Accessions(ctx context.Context) ([]string, error)
}
