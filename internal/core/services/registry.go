package services

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/custodia-labs/seqres/internal/core/domain"
	"github.com/custodia-labs/seqres/internal/core/ports/driven"
	"github.com/custodia-labs/seqres/internal/logger"
	"github.com/custodia-labs/seqres/internal/resolvers/filesystem"
	"github.com/custodia-labs/seqres/internal/resolvers/fragments"
	"github.com/custodia-labs/seqres/internal/resolvers/httpcache"
	"github.com/custodia-labs/seqres/internal/resolvers/ncbi"
)

// RegistryConfig configures the default resolver chain.
type RegistryConfig struct {
	// CacheDir receives downloaded records. Empty means DefaultCacheDir().
	CacheDir string

	// NCBI configures the remote resolver.
	NCBI domain.NCBISettings

	// Fragments backs frag:// addresses. Required.
	Fragments driven.FragmentStore

	// WatchFiles evicts memoized local files when they change.
	WatchFiles bool

	// HTTPClient overrides the download client.
	HTTPClient *http.Client
}

// DefaultCacheDir returns ~/.seqres/cache.
func DefaultCacheDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".seqres", "cache"), nil
}

// DefaultRegistryConfig returns the default configuration over store.
func DefaultRegistryConfig(store driven.FragmentStore) RegistryConfig {
	return RegistryConfig{NCBI: domain.DefaultAppSettings().NCBI, Fragments: store}
}

// RegistryConfigFromSettings maps application settings to a registry configuration.
func RegistryConfigFromSettings(settings *domain.AppSettings, store driven.FragmentStore) RegistryConfig {
	return RegistryConfig{
		CacheDir:   settings.Cache.Dir,
		NCBI:       settings.NCBI,
		Fragments:  store,
		WatchFiles: settings.Resolver.WatchFiles,
	}
}

// ResolverSet is an explicitly constructed default chain together with its members.
// Callers that can pass it around should prefer it over the process-wide default.
type ResolverSet struct {
	Chain      *ResolverChain
	Fragments  *FragmentService
	Filesystem *filesystem.Resolver
	Remote     *httpcache.Resolver
	CacheDir   string
}

// NewResolverSet builds the chain filesystem, fragments, ncbi in that order.
func NewResolverSet(cfg RegistryConfig) (*ResolverSet, error) {
	cacheDir := cfg.CacheDir
	if cacheDir == "" {
		dir, err := DefaultCacheDir()
		if err != nil {
			return nil, err
		}
		cacheDir = dir
	}

	if err := cfg.NCBI.Validate(); err != nil {
		return nil, fmt.Errorf("ncbi settings: %w", err)
	}

	if cfg.Fragments == nil {
		return nil, fmt.Errorf("%w: fragment store is required", domain.ErrInvalidInput)
	}

	var local *filesystem.Resolver
	if cfg.WatchFiles {
		watching, err := filesystem.NewWatching()
		if err != nil {
			return nil, err
		}
		local = watching
	} else {
		local = filesystem.New()
	}

	fragmentSvc := NewFragmentService(cfg.Fragments)
	remote := ncbi.NewResolver(ncbi.Config{
		CacheDir:   cacheDir,
		Settings:   cfg.NCBI,
		HTTPClient: cfg.HTTPClient,
	})

	return &ResolverSet{
		Chain:      NewResolverChain(local, fragments.New(fragmentSvc), remote),
		Fragments:  fragmentSvc,
		Filesystem: local,
		Remote:     remote,
		CacheDir:   cacheDir,
	}, nil
}

// Close releases the file watcher, if any.
func (s *ResolverSet) Close() error {
	return s.Chain.Close()
}

var (
	registryMu sync.Mutex
	defaultSet *ResolverSet
	defaultCfg *RegistryConfig
)

// ConfigureDefaultResolver records cfg for the process-wide default chain,
// which is built on first use by DefaultResolver. Any existing default is
// closed.
func ConfigureDefaultResolver(cfg RegistryConfig) error {
	if cfg.Fragments == nil {
		return fmt.Errorf("%w: fragment store is required", domain.ErrInvalidInput)
	}

	registryMu.Lock()
	previous := defaultSet
	defaultSet = nil
	defaultCfg = &cfg
	registryMu.Unlock()

	if previous != nil {
		if err := previous.Close(); err != nil {
			logger.Warn("closing previous default resolver: %v", err)
		}
	}
	return nil
}

// InitDefaultResolver builds the process-wide default chain, replacing and
// closing any previous one.
func InitDefaultResolver(cfg RegistryConfig) (*ResolverChain, error) {
	set, err := NewResolverSet(cfg)
	if err != nil {
		return nil, err
	}

	registryMu.Lock()
	previous := defaultSet
	defaultSet = set
	defaultCfg = &cfg
	registryMu.Unlock()

	if previous != nil {
		if err := previous.Close(); err != nil {
			logger.Warn("closing previous default resolver: %v", err)
		}
	}
	logger.Debug("default resolver initialised with cache %s", set.CacheDir)
	return set.Chain, nil
}

// DefaultResolverSet returns the process-wide set, building it from the
// configuration given to ConfigureDefaultResolver on first use.
func DefaultResolverSet() (*ResolverSet, error) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if defaultSet != nil {
		return defaultSet, nil
	}
	if defaultCfg == nil {
		return nil, fmt.Errorf("%w: default resolver not initialised", domain.ErrNotFound)
	}

	set, err := NewResolverSet(*defaultCfg)
	if err != nil {
		return nil, err
	}
	defaultSet = set
	logger.Debug("default resolver built with cache %s", set.CacheDir)
	return set, nil
}

// DefaultResolver returns the process-wide default chain.
func DefaultResolver() (*ResolverChain, error) {
	set, err := DefaultResolverSet()
	if err != nil {
		return nil, err
	}
	return set.Chain, nil
}

// DefaultFragments returns the fragment service behind frag:// addresses of
// the default chain.
func DefaultFragments() (*FragmentService, error) {
	set, err := DefaultResolverSet()
	if err != nil {
		return nil, err
	}
	return set.Fragments, nil
}

// ResetDefaultResolver tears down the default chain and forgets its
// configuration. DefaultResolver fails until the registry is configured
// again. Tests call it between cases.
func ResetDefaultResolver() error {
	registryMu.Lock()
	previous := defaultSet
	defaultSet = nil
	defaultCfg = nil
	registryMu.Unlock()

	if previous == nil {
		return nil
	}
	return previous.Close()
}
