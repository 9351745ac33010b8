package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/seqres/internal/core/domain"
	"github.com/custodia-labs/seqres/internal/core/ports/driven"
	"github.com/custodia-labs/seqres/internal/core/ports/driving"
	"github.com/custodia-labs/seqres/internal/logger"
)

// Ensure FragmentService implements both ports, so it can back a resolver.
var (
	_ driving.FragmentService = (*FragmentService)(nil)
	_ driven.FragmentStore    = (*FragmentService)(nil)
)

// concurrentStore is implemented by stores that are safe for concurrent use.
type concurrentStore interface {
	SupportsConcurrentAccess() bool
}

// FragmentService makes a FragmentStore safe for concurrent use.
//
// Deposits to one accession are serialized by a per-accession mutex, so the
// validate-then-merge step of one Put is never interleaved with another Put
// on the same accession. Stores that are not themselves safe for concurrent
// use (the in-memory store) are additionally guarded by a store-wide RWMutex.
type FragmentService struct {
	store driven.FragmentStore

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex

	guard   bool
	storeMu sync.RWMutex
}

// NewFragmentService creates a fragment service over store.
func NewFragmentService(store driven.FragmentStore) *FragmentService {
	cs, ok := store.(concurrentStore)
	return &FragmentService{
		store: store,
		locks: make(map[string]*sync.Mutex),
		guard: !ok || !cs.SupportsConcurrentAccess(),
	}
}

func (s *FragmentService) accessionLock(accession string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()

	mu, ok := s.locks[accession]
	if !ok {
		mu = &sync.Mutex{}
		s.locks[accession] = mu
	}
	return mu
}

func (s *FragmentService) lockStore(write bool) func() {
	if !s.guard {
		return func() {}
	}
	if write {
		s.storeMu.Lock()
		return s.storeMu.Unlock
	}
	s.storeMu.RLock()
	return s.storeMu.RUnlock
}

// Put merges a fragment into the accession's spans.
func (s *FragmentService) Put(ctx context.Context, accession string, offset int, seq string) error {
	if accession == "" {
		return fmt.Errorf("%w: empty accession", domain.ErrInvalidInput)
	}

	mu := s.accessionLock(accession)
	mu.Lock()
	defer mu.Unlock()

	unlock := s.lockStore(true)
	defer unlock()

	if err := s.store.Put(ctx, accession, offset, seq); err != nil {
		return err
	}
	logger.Debug("deposited %d residues at %d for %s", len(seq), offset, accession)
	return nil
}

// Get returns the content for r if a single stored span contains it.
func (s *FragmentService) Get(ctx context.Context, accession string, r domain.Range) (string, bool, error) {
	unlock := s.lockStore(false)
	defer unlock()
	return s.store.Get(ctx, accession, r)
}

// AvailableRange returns the stored span range containing r.
func (s *FragmentService) AvailableRange(ctx context.Context, accession string, r domain.Range) (domain.Range, bool, error) {
	unlock := s.lockStore(false)
	defer unlock()
	return s.store.AvailableRange(ctx, accession, r)
}

// Spans returns the accession's spans ordered by position.
func (s *FragmentService) Spans(ctx context.Context, accession string) ([]domain.Span, error) {
	unlock := s.lockStore(false)
	defer unlock()
	return s.store.Spans(ctx, accession)
}

// Accessions lists accessions with stored spans.
func (s *FragmentService) Accessions(ctx context.Context) ([]string, error) {
	unlock := s.lockStore(false)
	defer unlock()
	return s.store.Accessions(ctx)
}
