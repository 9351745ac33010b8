package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/seqres/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/seqres/internal/core/services"
)

func TestNewServer(t *testing.T) {
	t.Run("nil sequence service returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingSequenceService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		server, err := NewServer(&Ports{Sequences: &mockSequenceService{}})
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("sequences only is valid", func(t *testing.T) {
		ports := &Ports{Sequences: &mockSequenceService{}}
		assert.NoError(t, ports.Validate())
	})

	t.Run("all ports is valid", func(t *testing.T) {
		ports := &Ports{
			Sequences: &mockSequenceService{},
			Fragments: services.NewFragmentService(memory.NewFragmentStore()),
		}
		assert.NoError(t, ports.Validate())
	})
}
