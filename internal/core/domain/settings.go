package domain

import (
	"fmt"
	"net/url"
	"time"
)

// Default NCBI E-utilities settings.
const (
	DefaultNCBIBaseURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/efetch.fcgi"

	// NCBI allows 3 requests/second without an API key and 10 with one.
	DefaultNCBIRate        = 3.0
	DefaultNCBIRateWithKey = 10.0

	DefaultNCBITimeout = 60 * time.Second
)

// CacheSettings controls where downloaded records are kept.
type CacheSettings struct {
	// Dir is the download cache directory. Empty means ~/.seqres/cache.
	Dir string
}

// NCBISettings configures the NCBI remote resolver.
type NCBISettings struct {
	// BaseURL is the efetch endpoint.
	BaseURL string

	// APIKey is optional; it raises the permitted request rate.
	APIKey string

	// RequestsPerSecond paces downloads. Zero selects the NCBI default.
	RequestsPerSecond float64

	// Timeout bounds a single download.
	Timeout time.Duration
}

// EffectiveRate returns the request rate to use.
func (n NCBISettings) EffectiveRate() float64 {
	if n.RequestsPerSecond > 0 {
		return n.RequestsPerSecond
	}
	if n.APIKey != "" {
		return DefaultNCBIRateWithKey
	}
	return DefaultNCBIRate
}

// Validate checks the NCBI settings.
func (n NCBISettings) Validate() error {
	u, err := url.Parse(n.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: ncbi base url %q", ErrInvalidInput, n.BaseURL)
	}
	if n.RequestsPerSecond < 0 {
		return fmt.Errorf("%w: negative request rate", ErrInvalidInput)
	}
	if n.Timeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidInput)
	}
	return nil
}

// FragmentSettings configures the persistent fragment store.
type FragmentSettings struct {
	// DBDir holds fragments.db. Empty means ~/.seqres/data.
	DBDir string
}

// ResolverSettings controls resolver behaviour.
type ResolverSettings struct {
	// WatchFiles evicts memoized local FASTA files when they change on disk.
	WatchFiles bool
}

// AppSettings holds all application settings.
type AppSettings struct {
	Cache     CacheSettings
	NCBI      NCBISettings
	Fragments FragmentSettings
	Resolver  ResolverSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		NCBI: NCBISettings{
			BaseURL: DefaultNCBIBaseURL,
			Timeout: DefaultNCBITimeout,
		},
	}
}

// Validate checks all settings.
func (s AppSettings) Validate() error {
	return s.NCBI.Validate()
}
