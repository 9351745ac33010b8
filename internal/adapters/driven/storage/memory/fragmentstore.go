package memory

import (
	"context"
	"sort"

	"github.com/custodia-labs/seqres/internal/core/domain"
	"github.com/custodia-labs/seqres/internal/core/ports/driven"
)

// Ensure FragmentStore implements the interface.
var _ driven.FragmentStore = (*FragmentStore)(nil)

// fragmentEntry holds the spans of one accession. Most accessions are
// assembled from a single contiguous download, so the sole span is kept
// outside the slice until a second disjoint span appears.
type fragmentEntry struct {
	single domain.Span
	multi  []domain.Span
}

func (e *fragmentEntry) spans() []domain.Span {
	if e.multi != nil {
		return e.multi
	}
	return []domain.Span{e.single}
}

func (e *fragmentEntry) set(spans []domain.Span) {
	if len(spans) == 1 {
		e.single = spans[0]
		e.multi = nil
		return
	}
	e.multi = spans
}

func (e *fragmentEntry) find(r domain.Range) (domain.Span, bool) {
	if e.multi == nil {
		if e.single.Range.Contains(r) {
			return e.single, true
		}
		return domain.Span{}, false
	}
	return domain.FindContaining(e.multi, r)
}

// FragmentStore is an in-memory implementation of driven.FragmentStore.
//
// It is NOT safe for concurrent use. Callers sharing one store between
// goroutines must serialize access, e.g. through services.FragmentService.
type FragmentStore struct {
	entries map[string]*fragmentEntry
}

// NewFragmentStore creates a new in-memory fragment store.
func NewFragmentStore() *FragmentStore {
	return &FragmentStore{
		entries: make(map[string]*fragmentEntry),
	}
}

// Put merges seq at offset into the spans of accession.
func (s *FragmentStore) Put(_ context.Context, accession string, offset int, seq string) error {
	entry, ok := s.entries[accession]

	var current []domain.Span
	if ok {
		current = entry.spans()
	}

	merged, changed, err := domain.MergeFragment(current, offset, seq)
	if err != nil {
		return domain.WithAccession(err, "put fragment", accession)
	}
	if !changed {
		return nil
	}

	if !ok {
		entry = &fragmentEntry{}
		s.entries[accession] = entry
	}
	entry.set(merged)
	return nil
}

// Get returns the content of r if one span contains it.
func (s *FragmentStore) Get(_ context.Context, accession string, r domain.Range) (string, bool, error) {
	entry, ok := s.entries[accession]
	if !ok {
		return "", false, nil
	}
	span, ok := entry.find(r)
	if !ok {
		return "", false, nil
	}
	return span.Region(r), true, nil
}

// AvailableRange returns the span range containing r.
func (s *FragmentStore) AvailableRange(_ context.Context, accession string, r domain.Range) (domain.Range, bool, error) {
	entry, ok := s.entries[accession]
	if !ok {
		return domain.Range{}, false, nil
	}
	span, ok := entry.find(r)
	if !ok {
		return domain.Range{}, false, nil
	}
	return span.Range, true, nil
}

// Spans returns a copy of the spans stored for accession.
func (s *FragmentStore) Spans(_ context.Context, accession string) ([]domain.Span, error) {
	entry, ok := s.entries[accession]
	if !ok {
		return nil, nil
	}
	return append([]domain.Span(nil), entry.spans()...), nil
}

// Accessions lists stored accessions, sorted.
func (s *FragmentStore) Accessions(_ context.Context) ([]string, error) {
	result := make([]string, 0, len(s.entries))
	for acc := range s.entries {
		result = append(result, acc)
	}
	sort.Strings(result)
	return result, nil
}
