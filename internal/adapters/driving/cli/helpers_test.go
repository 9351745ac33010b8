package cli

import (
	"bytes"
	"testing"

	"github.com/custodia-labs/seqres/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/seqres/internal/core/services"
	"github.com/custodia-labs/seqres/internal/resolvers/filesystem"
	"github.com/custodia-labs/seqres/internal/resolvers/fragments"
)

// runCLI executes rootCmd with args and returns everything written to out and err.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	resolveContext = ""
	resolveRange = ""
	resolveRaw = false

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

type testServices struct {
	fragments *services.FragmentService
	cacheDir  string
}

// installServices wires the commands to in-memory stores and a temp cache dir.
func installServices(t *testing.T) *testServices {
	t.Helper()

	frags := services.NewFragmentService(memory.NewFragmentStore())
	fs := filesystem.New()
	chain := services.NewResolverChain(fs, fragments.New(frags))
	cacheDir := t.TempDir()

	SetServices(Services{
		Settings:  services.NewSettingsService(memory.NewConfigStore()),
		Fragments: frags,
		Sequences: services.NewSequenceService(chain),
		Cache:     services.NewCacheService(cacheDir),
	})
	t.Cleanup(func() {
		SetServices(Services{})
		_ = chain.Close()
	})

	return &testServices{fragments: frags, cacheDir: cacheDir}
}
