package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/seqres/internal/core/domain"
)

var fragmentCmd = &cobra.Command{
	Use:   "fragment",
	Short: "Deposit and read sequence fragments",
	Long: `Fragments are pieces of one accession's sequence at known offsets.
Overlapping fragments must agree on their shared residues; agreeing and
adjacent fragments are merged. Stored fragments are served as frag://ACCESSION.`,
}

var fragmentPutCmd = &cobra.Command{
	Use:     "put ACCESSION OFFSET SEQUENCE",
	Short:   "Deposit a fragment",
	Example: `  seqres fragment put A1 10 ATTAGACACACAC`,
	Args:    cobra.ExactArgs(3),
	RunE:    runFragmentPut,
}

var fragmentGetCmd = &cobra.Command{
	Use:   "get ACCESSION BEGIN:END",
	Short: "Print a region covered by a single stored span",
	Args:  cobra.ExactArgs(2),
	RunE:  runFragmentGet,
}

var fragmentRangeCmd = &cobra.Command{
	Use:   "range ACCESSION BEGIN:END",
	Short: "Print the stored span containing a region",
	Args:  cobra.ExactArgs(2),
	RunE:  runFragmentRange,
}

var fragmentListCmd = &cobra.Command{
	Use:   "list [ACCESSION]",
	Short: "List accessions, or the spans of one accession",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runFragmentList,
}

func init() {
	fragmentCmd.AddCommand(fragmentPutCmd)
	fragmentCmd.AddCommand(fragmentGetCmd)
	fragmentCmd.AddCommand(fragmentRangeCmd)
	fragmentCmd.AddCommand(fragmentListCmd)
	rootCmd.AddCommand(fragmentCmd)
}

func runFragmentPut(cmd *cobra.Command, args []string) error {
	if fragmentService == nil {
		return errors.New("fragment service not configured")
	}

	offset, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%w: offset %q is not an integer", domain.ErrInvalidInput, args[1])
	}
	seq := strings.TrimSpace(args[2])

	if err := fragmentService.Put(context.Background(), args[0], offset, seq); err != nil {
		return fmt.Errorf("put failed: %w", err)
	}

	cmd.Printf("Stored %s %s\n", args[0], domain.Range{Begin: offset, End: offset + len(seq)})
	return nil
}

func runFragmentGet(cmd *cobra.Command, args []string) error {
	if fragmentService == nil {
		return errors.New("fragment service not configured")
	}

	r, err := domain.ParseRange(args[1])
	if err != nil {
		return err
	}

	seq, ok, err := fragmentService.Get(context.Background(), args[0], r)
	if err != nil {
		return fmt.Errorf("get failed: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: %s %s", domain.ErrRangeUnavailable, args[0], r)
	}

	cmd.Println(seq)
	return nil
}

func runFragmentRange(cmd *cobra.Command, args []string) error {
	if fragmentService == nil {
		return errors.New("fragment service not configured")
	}

	r, err := domain.ParseRange(args[1])
	if err != nil {
		return err
	}

	avail, ok, err := fragmentService.AvailableRange(context.Background(), args[0], r)
	if err != nil {
		return fmt.Errorf("range failed: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: %s %s", domain.ErrRangeUnavailable, args[0], r)
	}

	cmd.Println(avail.String())
	return nil
}

func runFragmentList(cmd *cobra.Command, args []string) error {
	if fragmentService == nil {
		return errors.New("fragment service not configured")
	}
	ctx := context.Background()

	if len(args) == 1 {
		spans, err := fragmentService.Spans(ctx, args[0])
		if err != nil {
			return fmt.Errorf("list failed: %w", err)
		}
		if len(spans) == 0 {
			cmd.Printf("No fragments for %s.\n", args[0])
			return nil
		}
		cmd.Println(headingStyle.Render(args[0]))
		for _, s := range spans {
			cmd.Printf("  %-20s %d residues\n", s.Range, s.Range.Len())
		}
		return nil
	}

	accessions, err := fragmentService.Accessions(ctx)
	if err != nil {
		return fmt.Errorf("list failed: %w", err)
	}
	if len(accessions) == 0 {
		cmd.Println("No fragments stored.")
		return nil
	}

	cmd.Println(headingStyle.Render("Accessions"))
	for _, acc := range accessions {
		spans, err := fragmentService.Spans(ctx, acc)
		if err != nil {
			return fmt.Errorf("list failed: %w", err)
		}
		cmd.Printf("  %-20s %d span(s)\n", acc, len(spans))
	}
	return nil
}
