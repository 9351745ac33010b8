package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the cache location, NCBI access and resolver options.

Settings are stored in ~/.seqres/config.toml.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Change one setting",
	Long: `Change one setting by its config key, for example:

  seqres settings set ncbi.api_key 0123456789abcdef
  seqres settings set ncbi.requests_per_second 2
  seqres settings set resolver.watch_files true`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List recognised setting keys",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if settingsService == nil {
			return errors.New("settings service not configured")
		}
		for _, k := range settingsService.Keys() {
			cmd.Println(k)
		}
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsKeysCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	orDefault := func(v, def string) string {
		if v == "" {
			return def
		}
		return v
	}

	cmd.Println(headingStyle.Render("Current Settings"))
	cmd.Println()

	cmd.Println("[Cache]")
	cmd.Printf("  Directory: %s\n", orDefault(settings.Cache.Dir, "~/.seqres/cache"))
	cmd.Println()

	cmd.Println("[NCBI]")
	cmd.Printf("  Base URL: %s\n", settings.NCBI.BaseURL)
	if settings.NCBI.APIKey != "" {
		cmd.Printf("  API Key: %s\n", maskAPIKey(settings.NCBI.APIKey))
	} else {
		cmd.Printf("  API Key: (not set)\n")
	}
	cmd.Printf("  Requests/second: %g\n", settings.NCBI.EffectiveRate())
	cmd.Printf("  Timeout: %s\n", settings.NCBI.Timeout)
	cmd.Println()

	cmd.Println("[Fragments]")
	cmd.Printf("  Database directory: %s\n", orDefault(settings.Fragments.DBDir, "~/.seqres/data"))
	cmd.Println()

	cmd.Println("[Resolver]")
	cmd.Printf("  Watch files: %t\n", settings.Resolver.WatchFiles)

	if err := settings.Validate(); err != nil {
		cmd.Println()
		cmd.Printf("Warning: %v\n", err)
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}
	cmd.Printf("Set %s\n", args[0])
	return nil
}
