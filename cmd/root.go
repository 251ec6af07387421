package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shikataNai/ScopeForge/internal/config"
	"github.com/shikataNai/ScopeForge/internal/logging"
	"github.com/shikataNai/ScopeForge/internal/output"
)

const appName = "scopeforge"

var (
	verbose    bool
	jsonOutput bool
	logFile    string
	configFile string

	includeNetwork   bool
	includeBroadcast bool

	outputDir        string
	allAddresses     bool
	summaryOnly      bool
	failOnEmptyScope bool
)

var rootCmd = &cobra.Command{
	Use:   appName + " <in_scope_file> <out_scope_file>",
	Short: "Create a refined scope by removing out-of-scope addresses from in-scope lists",
	Long: `scopeforge subtracts an out-of-scope list from an in-scope list and writes
the remaining targets as aggregated CIDR blocks.

Both files hold one entry per line:
  - single addresses     10.0.0.5
  - CIDR blocks          10.0.0.0/24 (host addresses only, see --include-*)
  - inclusive ranges     10.0.0.10-10.0.0.20
  - comments             lines starting with # or //

Output files written to --output-dir:
  - scope_cleaned                  final scope as CIDR blocks
  - scope_cleaned_every_ip_listed  every final address (--all-addresses)
  - out_of_scope_aggregated        exclusions as CIDR blocks`,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runClean,
}

// Execute runs the command line and reports a failure once on stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		logging.NewPrinter(rootCmd.OutOrStdout(), rootCmd.ErrOrStderr()).Error("%v", err)
	}
	return err
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	pf.BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	pf.StringVar(&logFile, "log-file", "", "Also write logs to a size-rotated file")
	pf.StringVarP(&configFile, "config", "c", "", "Config file (default ./"+config.DefaultConfigFile+" if present)")
	pf.BoolVar(&includeNetwork, "include-network", false, "Include the network address of CIDR blocks")
	pf.BoolVar(&includeBroadcast, "include-broadcast", false, "Include the broadcast address of CIDR blocks")

	f := rootCmd.Flags()
	f.StringVarP(&outputDir, "output-dir", "o", config.DefaultOutputDir, "Directory to write output files")
	f.BoolVar(&allAddresses, "all-addresses", false, "Also output every individual IP to a separate file")
	f.BoolVar(&summaryOnly, "summary-only", false, "Only display summary of in/out/final counts, no files written")
	f.BoolVar(&failOnEmptyScope, "fail-on-empty-scope", false, "Fail if final scope is empty after exclusion")

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

func runClean(cmd *cobra.Command, args []string) error {
	a, closeLog, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	a.Logger.Debug("resolved invocation", "command", equivalentCommand(args[0], args[1], a.Settings))

	summary, err := a.Clean(args[0], args[1])
	if summary != nil {
		displaySummary(a.Printer, summary)
	}
	if err != nil {
		return err
	}

	if a.Settings.SummaryOnly {
		a.Printer.Info("Summary only, no files written")
		return nil
	}
	for _, path := range summary.Artifacts {
		a.Printer.Success("Wrote %s", path)
	}
	return nil
}

// displaySummary shows the three set sizes to the user.
func displaySummary(p *logging.Printer, s *output.Summary) {
	p.Table([]string{"Set", "Addresses"},
		[]string{"in-scope", strconv.Itoa(s.InScope)},
		[]string{"out-of-scope", strconv.Itoa(s.Excluded)},
		[]string{"final", strconv.Itoa(s.Final)},
	)
}
