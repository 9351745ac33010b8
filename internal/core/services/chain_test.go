package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/seqres/internal/core/domain"
	"github.com/custodia-labs/seqres/internal/core/ports/driven"
)

// stubProvider serves a fixed sequence from position 0.
type stubProvider struct {
	name string
	seq  string
}

func (p *stubProvider) Region(_ context.Context, r domain.Range) (string, error) {
	if r.End > len(p.seq) {
		return "", domain.ErrRangeUnavailable
	}
	return p.seq[r.Begin:r.End], nil
}

func (p *stubProvider) Available(_ context.Context, r domain.Range) (domain.Range, bool) {
	full := domain.Range{Begin: 0, End: len(p.seq)}
	return full, full.Contains(r)
}

// stubResolver accepts a fixed set of schemes and records calls.
type stubResolver struct {
	name     string
	schemes  map[string]bool
	provider *stubProvider
	resolved int
	probed   int
	closed   bool
	closeErr error
}

func newStub(name, seq string, schemes ...string) *stubResolver {
	s := &stubResolver{name: name, schemes: map[string]bool{}, provider: &stubProvider{name: name, seq: seq}}
	for _, sc := range schemes {
		s.schemes[sc] = true
	}
	return s
}

func (s *stubResolver) CanResolve(addr domain.SequenceAddress) bool {
	s.probed++
	p, err := addr.Parse()
	return err == nil && s.schemes[p.Scheme]
}

func (s *stubResolver) Resolve(_ context.Context, _ domain.SequenceAddress) (driven.SequenceProvider, error) {
	s.resolved++
	return s.provider, nil
}

func (s *stubResolver) Close() error {
	s.closed = true
	return s.closeErr
}

func TestResolverChain_PrecedenceFollowsOrder(t *testing.T) {
	first := newStub("first", "AAAA", "nuccore")
	second := newStub("second", "CCCC", "nuccore", "gi")
	chain := NewResolverChain(first, second)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		prov, err := chain.Resolve(ctx, domain.NewAddress("nuccore://X1"))
		require.NoError(t, err)
		assert.Same(t, first.provider, prov)
	}
	assert.Equal(t, 3, first.resolved)
	assert.Equal(t, 0, second.resolved)

	// Reversed configuration reverses the outcome.
	prov, err := NewResolverChain(second, first).Resolve(ctx, domain.NewAddress("nuccore://X1"))
	require.NoError(t, err)
	assert.Same(t, second.provider, prov)
}

func TestResolverChain_FallsThroughToCapableResolver(t *testing.T) {
	first := newStub("first", "AAAA", "nuccore")
	second := newStub("second", "CCCC", "gi")
	chain := NewResolverChain(first, second)

	prov, err := chain.Resolve(context.Background(), domain.NewAddress("gi:195360724"))
	require.NoError(t, err)
	assert.Same(t, second.provider, prov)
	assert.Equal(t, 0, first.resolved)
	assert.Equal(t, 1, first.probed)
}

func TestResolverChain_NoResolver(t *testing.T) {
	chain := NewResolverChain(newStub("only", "A", "nuccore"))

	_, err := chain.Resolve(context.Background(), domain.NewAddress("s3://bucket/key"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoResolver)
	assert.Equal(t, domain.KindNoResolver, domain.KindOf(err))
	assert.Contains(t, err.Error(), "s3://bucket/key")
	assert.False(t, chain.CanResolve(domain.NewAddress("s3://bucket/key")))
}

func TestResolverChain_AddressSyntaxBeforeProbing(t *testing.T) {
	stub := newStub("only", "A", "nuccore")
	chain := NewResolverChain(stub)

	_, err := chain.Resolve(context.Background(), domain.NewAddress("no scheme here"))

	assert.ErrorIs(t, err, domain.ErrAddressSyntax)
	assert.Equal(t, 0, stub.probed)
}

func TestResolverChain_EmptyChain(t *testing.T) {
	_, err := NewResolverChain().Resolve(context.Background(), domain.NewAddress("gi:1"))
	assert.ErrorIs(t, err, domain.ErrNoResolver)
}

func TestResolverChain_Nests(t *testing.T) {
	inner := NewResolverChain(newStub("inner", "GGGG", "gi"))
	outer := NewResolverChain(newStub("outer", "AAAA", "nuccore"), inner)

	prov, err := outer.Resolve(context.Background(), domain.NewAddress("gi:7"))
	require.NoError(t, err)
	seq, err := prov.Region(context.Background(), domain.Range{Begin: 0, End: 4})
	require.NoError(t, err)
	assert.Equal(t, "GGGG", seq)
}

func TestResolverChain_ResolversIsCopy(t *testing.T) {
	a, b := newStub("a", "", "x"), newStub("b", "", "y")
	chain := NewResolverChain(a, b)

	got := chain.Resolvers()
	got[0] = b

	assert.Same(t, a, chain.Resolvers()[0].(*stubResolver))
}

func TestResolverChain_CloseClosesMembers(t *testing.T) {
	boom := errors.New("boom")
	a := newStub("a", "", "x")
	b := newStub("b", "", "y")
	b.closeErr = boom

	err := NewResolverChain(a, b).Close()

	assert.ErrorIs(t, err, boom)
	assert.True(t, a.closed)
	assert.True(t, b.closed)
}
