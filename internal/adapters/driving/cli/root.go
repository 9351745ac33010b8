// Package cli implements the seqres command line on top of cobra.
// Commands reach the core through driving ports installed with SetServices.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/seqres/internal/core/ports/driving"
	"github.com/custodia-labs/seqres/internal/logger"
)

var (
	version = "dev"
	verbose bool
)

// Services installed by the entry point.
var (
	settingsService driving.SettingsService
	fragmentService driving.FragmentService
	sequenceService driving.SequenceService
	cacheService    driving.CacheService
)

var rootCmd = &cobra.Command{
	Use:   "seqres",
	Short: "Resolve and assemble reference sequences",
	Long: `seqres resolves symbolic sequence addresses such as file://ref.fasta#id,
nuccore://EU877942.1 or gi:195360724 to sequence content. Remote records are
cached on disk; fragments deposited with "seqres fragment put" are merged into
a persistent store and served under frag://ACCESSION.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug output to stderr")
}

// Services bundles the driving ports used by the commands.
type Services struct {
	Settings  driving.SettingsService
	Fragments driving.FragmentService
	Sequences driving.SequenceService
	Cache     driving.CacheService
}

// SetServices installs the services used by the commands.
func SetServices(s Services) {
	settingsService = s.Settings
	fragmentService = s.Fragments
	sequenceService = s.Sequences
	cacheService = s.Cache
}

// SetVersion sets the version reported by "seqres version".
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command. Command output goes to stdout.
func Execute() error {
	rootCmd.SetOut(os.Stdout)
	return rootCmd.Execute()
}
