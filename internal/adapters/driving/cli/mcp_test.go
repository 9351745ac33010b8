package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/seqres/internal/adapters/driving/mcp"
)

func TestMCPServeCmd_Flags(t *testing.T) {
	flag := mcpServeCmd.Flags().Lookup("port")
	require.NotNil(t, flag)
	assert.Equal(t, "p", flag.Shorthand)
	assert.Equal(t, "0", flag.DefValue)
}

func TestNewMCPServer(t *testing.T) {
	t.Run("requires sequence service", func(t *testing.T) {
		SetServices(Services{})

		_, err := newMCPServer()
		assert.ErrorIs(t, err, mcp.ErrMissingSequenceService)
	})

	t.Run("uses installed services", func(t *testing.T) {
		installServices(t)

		server, err := newMCPServer()
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}
