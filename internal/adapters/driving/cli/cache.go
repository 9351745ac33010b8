package cli

import (
	"errors"
	"time"

	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect the download cache",
}

var cachePathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the cache directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if cacheService == nil {
			return errors.New("cache service not configured")
		}
		cmd.Println(cacheService.Dir())
		return nil
	},
}

var cacheListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cached records",
	Args:  cobra.NoArgs,
	RunE:  runCacheList,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached records",
	Args:  cobra.NoArgs,
	RunE:  runCacheClear,
}

func init() {
	cacheCmd.AddCommand(cachePathCmd)
	cacheCmd.AddCommand(cacheListCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}

func runCacheList(cmd *cobra.Command, _ []string) error {
	if cacheService == nil {
		return errors.New("cache service not configured")
	}

	entries, err := cacheService.List()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		cmd.Println("Cache is empty.")
		return nil
	}

	cmd.Println(headingStyle.Render("Cached records"))
	var total int64
	for _, e := range entries {
		cmd.Printf("  %-48s %10d  %s\n", e.Key, e.Size, mutedStyle.Render(e.ModTime.Format(time.DateTime)))
		total += e.Size
	}
	cmd.Printf("%d record(s), %d bytes in %s\n", len(entries), total, cacheService.Dir())
	return nil
}

func runCacheClear(cmd *cobra.Command, _ []string) error {
	if cacheService == nil {
		return errors.New("cache service not configured")
	}

	removed, err := cacheService.Clear()
	if err != nil {
		return err
	}
	cmd.Printf("Removed %d file(s) from %s\n", removed, cacheService.Dir())
	return nil
}
