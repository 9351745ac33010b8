package memory

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/seqres/internal/core/domain"
)

func rng(begin, end int) domain.Range {
	return domain.Range{Begin: begin, End: end}
}

func TestNewFragmentStore(t *testing.T) {
	store := NewFragmentStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.entries)
}

func TestFragmentStore_GetUnknownAccession(t *testing.T) {
	store := NewFragmentStore()
	ctx := context.Background()

	seq, ok, err := store.Get(ctx, "missing", rng(0, 5))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, seq)

	_, ok, err = store.AvailableRange(ctx, "missing", rng(0, 5))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFragmentStore_DisjointFragments(t *testing.T) {
	store := NewFragmentStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "A1", 10, "ATTAGACACACAC"))
	require.NoError(t, store.Put(ctx, "A1", 30, "ATTACACA"))

	seq, ok, err := store.Get(ctx, "A1", rng(10, 23))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "ATTAGACACACAC", seq)

	// The gap between the two spans is not covered.
	_, ok, err = store.Get(ctx, "A1", rng(20, 32))
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = store.Get(ctx, "A1", rng(24, 28))
	require.NoError(t, err)
	assert.False(t, ok)

	spans, err := store.Spans(ctx, "A1")
	require.NoError(t, err)
	assert.Len(t, spans, 2)
}

func TestFragmentStore_InsertionOrderIndependent(t *testing.T) {
	ctx := context.Background()

	forward := NewFragmentStore()
	require.NoError(t, forward.Put(ctx, "A1", 10, "ATTAGACACACAC"))
	require.NoError(t, forward.Put(ctx, "A1", 18, "CAC"))

	reverse := NewFragmentStore()
	require.NoError(t, reverse.Put(ctx, "A1", 18, "CAC"))
	require.NoError(t, reverse.Put(ctx, "A1", 10, "ATTAGACACACAC"))

	for _, store := range []*FragmentStore{forward, reverse} {
		seq, ok, err := store.Get(ctx, "A1", rng(10, 21))
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "ATTAGACACAC", seq)
	}

	fs, _ := forward.Spans(ctx, "A1")
	rs, _ := reverse.Spans(ctx, "A1")
	assert.Equal(t, fs, rs)
}

func TestFragmentStore_MismatchLeavesStoreUnchanged(t *testing.T) {
	store := NewFragmentStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "A1", 10, "ATTAGACACACAC"))
	require.NoError(t, store.Put(ctx, "A1", 30, "ATTACACA"))
	before, _ := store.Spans(ctx, "A1")

	err := store.Put(ctx, "A1", 20, "CAGTTTTTTTTT")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOverlapMismatch)

	var domainErr *domain.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "A1", domainErr.Accession)

	after, _ := store.Spans(ctx, "A1")
	assert.Equal(t, before, after)
}

func TestFragmentStore_AvailableRange(t *testing.T) {
	store := NewFragmentStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "A1", 10, "ATTAGACACACAC"))
	require.NoError(t, store.Put(ctx, "A1", 30, "ATTACACA"))

	got, ok, err := store.AvailableRange(ctx, "A1", rng(12, 16))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, rng(10, 23), got)

	got, ok, err = store.AvailableRange(ctx, "A1", rng(31, 33))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, rng(30, 38), got)

	// Both spans overlap part of the query, neither contains it.
	_, ok, err = store.AvailableRange(ctx, "A1", rng(15, 35))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFragmentStore_SingleSpanPathGrowsToMulti(t *testing.T) {
	store := NewFragmentStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "A1", 0, "AAAA"))
	assert.Nil(t, store.entries["A1"].multi)

	require.NoError(t, store.Put(ctx, "A1", 10, "CCCC"))
	assert.Len(t, store.entries["A1"].multi, 2)

	// Bridging the gap collapses back to one span.
	require.NoError(t, store.Put(ctx, "A1", 4, "GGGGGG"))
	assert.Nil(t, store.entries["A1"].multi)

	seq, ok, err := store.Get(ctx, "A1", rng(0, 14))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "AAAAGGGGGGCCCC", seq)
}

func TestFragmentStore_EmptyFragmentCreatesNothing(t *testing.T) {
	store := NewFragmentStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "A1", 5, ""))

	accessions, err := store.Accessions(ctx)
	require.NoError(t, err)
	assert.Empty(t, accessions)
}

func TestFragmentStore_OverflowingFragmentRejected(t *testing.T) {
	store := NewFragmentStore()
	ctx := context.Background()

	err := store.Put(ctx, "A1", math.MaxInt-1, "ACGT")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	spans, err := store.Spans(ctx, "A1")
	require.NoError(t, err)
	assert.Empty(t, spans)
}

func TestFragmentStore_Accessions(t *testing.T) {
	store := NewFragmentStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "B2", 0, "AC"))
	require.NoError(t, store.Put(ctx, "A1", 0, "GT"))

	accessions, err := store.Accessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"A1", "B2"}, accessions)
}

func TestFragmentStore_AccessionsAreIndependent(t *testing.T) {
	store := NewFragmentStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "A1", 0, "AAAA"))
	require.NoError(t, store.Put(ctx, "B2", 0, "CCCC"))

	seq, ok, err := store.Get(ctx, "B2", rng(0, 4))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "CCCC", seq)
}

func TestFragmentStore_SpansReturnsCopy(t *testing.T) {
	store := NewFragmentStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "A1", 0, "AAAA"))
	require.NoError(t, store.Put(ctx, "A1", 10, "CCCC"))

	spans, err := store.Spans(ctx, "A1")
	require.NoError(t, err)
	spans[0].Sequence = "mutated"

	seq, ok, _ := store.Get(ctx, "A1", rng(0, 4))
	assert.True(t, ok)
	assert.Equal(t, "AAAA", seq)
}
