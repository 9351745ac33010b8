package services

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/custodia-labs/seqres/internal/core/ports/driving"
	"github.com/custodia-labs/seqres/internal/resolvers/httpcache"
)

// Ensure CacheService implements the interface.
var _ driving.CacheService = (*CacheService)(nil)

// CacheService inspects and clears the download cache directory.
type CacheService struct {
	dir string
}

// NewCacheService creates a cache service for dir.
func NewCacheService(dir string) *CacheService {
	return &CacheService{dir: dir}
}

// Dir returns the cache directory.
func (s *CacheService) Dir() string {
	return s.dir
}

// List returns completed cache files sorted by key. In-progress downloads are skipped.
func (s *CacheService) List() ([]driving.CacheEntry, error) {
	entries, err := s.readDir()
	if err != nil {
		return nil, err
	}

	result := make([]driving.CacheEntry, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), httpcache.TempPrefix) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			// Removed since ReadDir.
			continue
		}
		result = append(result, driving.CacheEntry{
			Key:     e.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Key < result[j].Key })
	return result, nil
}

// Clear removes every file in the cache directory, including abandoned
// temporary downloads, and returns the number removed.
func (s *CacheService) Clear() (int, error) {
	entries, err := s.readDir()
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, e.Name())); err != nil && !errors.Is(err, os.ErrNotExist) {
			return removed, fmt.Errorf("removing %s: %w", e.Name(), err)
		}
		removed++
	}
	return removed, nil
}

func (s *CacheService) readDir() ([]os.DirEntry, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading cache directory: %w", err)
	}
	return entries, nil
}
