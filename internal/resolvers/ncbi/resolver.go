package ncbi

import (
	"net/http"

	"github.com/custodia-labs/seqres/internal/core/domain"
	"github.com/custodia-labs/seqres/internal/resolvers/httpcache"
)

// UserAgent identifies downloads to NCBI.
const UserAgent = "seqres (+https://github.com/custodia-labs/seqres)"

// Config configures the NCBI resolver.
type Config struct {
	// CacheDir receives downloaded records.
	CacheDir string

	// Settings holds endpoint, key, rate and timeout.
	Settings domain.NCBISettings

	// HTTPClient overrides the client built from Settings.Timeout.
	HTTPClient *http.Client
}

// NewResolver creates a caching resolver for NCBI addresses.
func NewResolver(cfg Config) *httpcache.Resolver {
	settings := cfg.Settings
	if settings.BaseURL == "" {
		settings.BaseURL = domain.DefaultNCBIBaseURL
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: settings.Timeout}
	}

	return httpcache.New(cfg.CacheDir,
		&Locator{BaseURL: settings.BaseURL, APIKey: settings.APIKey},
		httpcache.WithHTTPClient(client),
		httpcache.WithLimiter(NewLimiter(settings.RequestsPerSecond, settings.APIKey)),
		httpcache.WithUserAgent(UserAgent),
	)
}
