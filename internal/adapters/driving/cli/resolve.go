package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/seqres/internal/core/domain"
	"github.com/custodia-labs/seqres/internal/fasta"
)

var (
	resolveContext string
	resolveRange   string
	resolveRaw     bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve ADDRESS",
	Short: "Print the sequence an address refers to",
	Long: `Resolve a sequence address and print its content as FASTA.

Addresses:
  file://PATH[#RECORD]   local FASTA file (plain or gzip), relative to --context
  nuccore://ACCESSION    NCBI nucleotide record, downloaded and cached
  gi:NUMBER              NCBI record by gi number
  frag://ACCESSION       sequence assembled from deposited fragments`,
	Example: `  seqres resolve nuccore://EU877942.1 --range 0:120
  seqres resolve 'file://some.fasta#24.accession.Tag' --context library.json`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVarP(&resolveContext, "context", "c", "", "path that relative file:// addresses are resolved against")
	resolveCmd.Flags().StringVarP(&resolveRange, "range", "r", "", "half-open region BEGIN:END to print")
	resolveCmd.Flags().BoolVar(&resolveRaw, "raw", false, "print only the sequence, without FASTA header")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	if sequenceService == nil {
		return errors.New("sequence service not configured")
	}

	addr := domain.SequenceAddress{Context: resolveContext, Raw: args[0]}

	var rng *domain.Range
	if resolveRange != "" {
		r, err := domain.ParseRange(resolveRange)
		if err != nil {
			return err
		}
		rng = &r
	}

	seq, served, err := sequenceService.Fetch(context.Background(), addr, rng)
	if err != nil {
		return fmt.Errorf("resolve failed: %w", err)
	}

	if resolveRaw {
		cmd.Println(seq)
		return nil
	}
	return fasta.Write(cmd.OutOrStdout(), addr.Raw+" "+served.String(), seq, outputWidth(cmd.OutOrStdout()))
}
