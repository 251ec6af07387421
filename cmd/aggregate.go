package cmd

import (
	"github.com/spf13/cobra"

	"github.com/shikataNai/ScopeForge/internal/scope"
)

var blockInput bool

var aggregateCmd = &cobra.Command{
	Use:   "aggregate <scope_file>...",
	Short: "Print the minimal CIDR blocks covering one or more scope files",
	Long: `Print the minimal CIDR blocks covering one or more scope files.

With --blocks every entry is read as a whole network block, network and
broadcast addresses included, and blocks are merged without expanding them.
Use it to collapse existing block lists, however large.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAggregate,
}

var expandCmd = &cobra.Command{
	Use:   "expand <scope_file>...",
	Short: "Print every address named by one or more scope files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runExpand,
}

func init() {
	aggregateCmd.Flags().BoolVar(&blockInput, "blocks", false, "Read entries as CIDR blocks and merge them without expansion")

	rootCmd.AddCommand(aggregateCmd)
	rootCmd.AddCommand(expandCmd)
}

func runAggregate(cmd *cobra.Command, args []string) error {
	a, closeLog, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	if blockInput {
		blocks, err := a.CollectBlocks(args...)
		if err != nil {
			return err
		}
		a.Printer.Lines(scope.BlockStrings(scope.AggregateBlocks(blocks)))
		return nil
	}

	set, err := a.Collect(args...)
	if err != nil {
		return err
	}

	a.Printer.Lines(scope.BlockStrings(scope.Aggregate(set)))
	return nil
}

func runExpand(cmd *cobra.Command, args []string) error {
	a, closeLog, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	set, err := a.Collect(args...)
	if err != nil {
		return err
	}

	a.Printer.Lines(set.Strings())
	return nil
}
