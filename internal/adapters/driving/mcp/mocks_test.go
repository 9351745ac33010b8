package mcp

import (
	"context"

	"github.com/custodia-labs/seqres/internal/core/domain"
)

// mockSequenceService records the last Fetch call.
type mockSequenceService struct {
	seq    string
	served domain.Range
	err    error

	lastAddr  domain.SequenceAddress
	lastRange *domain.Range
}

func (m *mockSequenceService) Fetch(
	_ context.Context,
	addr domain.SequenceAddress,
	r *domain.Range,
) (string, domain.Range, error) {
	m.lastAddr = addr
	m.lastRange = r
	return m.seq, m.served, m.err
}

func (m *mockSequenceService) CanResolve(_ domain.SequenceAddress) bool {
	return m.err == nil
}
