package services

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/custodia-labs/seqres/internal/core/domain"
	"github.com/custodia-labs/seqres/internal/core/ports/driven"
	"github.com/custodia-labs/seqres/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyCacheDir       = "cache.dir"
	keyNCBIBaseURL    = "ncbi.base_url"
	keyNCBIAPIKey     = "ncbi.api_key"
	keyNCBIRate       = "ncbi.requests_per_second"
	keyNCBITimeout    = "ncbi.timeout_seconds"
	keyFragmentsDBDir = "fragments.db_dir"
	keyWatchFiles     = "resolver.watch_files"
)

// settingKeys maps each recognised key to a setter that parses a CLI value.
var settingKeys = map[string]func(*domain.AppSettings, string) error{
	keyCacheDir: func(s *domain.AppSettings, v string) error {
		s.Cache.Dir = v
		return nil
	},
	keyNCBIBaseURL: func(s *domain.AppSettings, v string) error {
		s.NCBI.BaseURL = v
		return nil
	},
	keyNCBIAPIKey: func(s *domain.AppSettings, v string) error {
		s.NCBI.APIKey = v
		return nil
	},
	keyNCBIRate: func(s *domain.AppSettings, v string) error {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %s must be a number: %v", domain.ErrInvalidInput, keyNCBIRate, err)
		}
		s.NCBI.RequestsPerSecond = rate
		return nil
	},
	keyNCBITimeout: func(s *domain.AppSettings, v string) error {
		secs, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s must be whole seconds: %v", domain.ErrInvalidInput, keyNCBITimeout, err)
		}
		s.NCBI.Timeout = time.Duration(secs) * time.Second
		return nil
	},
	keyFragmentsDBDir: func(s *domain.AppSettings, v string) error {
		s.Fragments.DBDir = v
		return nil
	},
	keyWatchFiles: func(s *domain.AppSettings, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false: %v", domain.ErrInvalidInput, keyWatchFiles, err)
		}
		s.Resolver.WatchFiles = b
		return nil
	},
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Missing keys fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Cache: domain.CacheSettings{
			Dir: s.getString(keyCacheDir, defaults.Cache.Dir),
		},
		NCBI: domain.NCBISettings{
			BaseURL:           s.getString(keyNCBIBaseURL, defaults.NCBI.BaseURL),
			APIKey:            s.configStore.GetString(keyNCBIAPIKey),
			RequestsPerSecond: s.configStore.GetFloat(keyNCBIRate),
			Timeout:           s.getTimeout(defaults.NCBI.Timeout),
		},
		Fragments: domain.FragmentSettings{
			DBDir: s.getString(keyFragmentsDBDir, defaults.Fragments.DBDir),
		},
		Resolver: domain.ResolverSettings{
			WatchFiles: s.configStore.GetBool(keyWatchFiles),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	if err := s.configStore.Set(keyCacheDir, settings.Cache.Dir); err != nil {
		return fmt.Errorf("save cache dir: %w", err)
	}
	if err := s.configStore.Set(keyNCBIBaseURL, settings.NCBI.BaseURL); err != nil {
		return fmt.Errorf("save ncbi base_url: %w", err)
	}
	if settings.NCBI.APIKey != "" {
		if err := s.configStore.Set(keyNCBIAPIKey, settings.NCBI.APIKey); err != nil {
			return fmt.Errorf("save ncbi api_key: %w", err)
		}
	}
	if err := s.configStore.Set(keyNCBIRate, settings.NCBI.RequestsPerSecond); err != nil {
		return fmt.Errorf("save ncbi rate: %w", err)
	}
	if err := s.configStore.Set(keyNCBITimeout, int(settings.NCBI.Timeout/time.Second)); err != nil {
		return fmt.Errorf("save ncbi timeout: %w", err)
	}
	if err := s.configStore.Set(keyFragmentsDBDir, settings.Fragments.DBDir); err != nil {
		return fmt.Errorf("save fragments db_dir: %w", err)
	}
	if err := s.configStore.Set(keyWatchFiles, settings.Resolver.WatchFiles); err != nil {
		return fmt.Errorf("save resolver watch_files: %w", err)
	}

	return nil
}

// Set parses value for key, validates the result and persists all settings.
func (s *SettingsService) Set(key, value string) error {
	apply, ok := settingKeys[key]
	if !ok {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	if err := apply(settings, value); err != nil {
		return err
	}
	return s.Save(settings)
}

// Keys returns the recognised config keys, sorted.
func (s *SettingsService) Keys() []string {
	keys := make([]string, 0, len(settingKeys))
	for k := range settingKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Validate checks the current settings.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return settings.Validate()
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (s *SettingsService) getString(key, defaultVal string) string {
	if val := s.configStore.GetString(key); val != "" {
		return val
	}
	return defaultVal
}

func (s *SettingsService) getTimeout(defaultVal time.Duration) time.Duration {
	if secs := s.configStore.GetInt(keyNCBITimeout); secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return defaultVal
}
