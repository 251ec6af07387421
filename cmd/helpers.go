package cmd

import (
	shellquote "github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/shikataNai/ScopeForge/internal/app"
	"github.com/shikataNai/ScopeForge/internal/config"
	"github.com/shikataNai/ScopeForge/internal/errors"
	"github.com/shikataNai/ScopeForge/internal/logging"
)

// newApp loads the layered settings, applies explicitly set flags and wires
// the logger and printer to the command's streams. The returned func closes
// the log file, if any.
func newApp(cmd *cobra.Command) (*app.App, func(), error) {
	settings, err := config.Load(configFile)
	if err != nil {
		return nil, nil, err
	}
	applyFlags(cmd, settings)

	if err := settings.Validate(); err != nil {
		return nil, nil, errors.ValidationError(err.Error())
	}

	logger, closer := logging.New(logging.Options{
		Verbose: settings.Log.Verbose,
		JSON:    settings.Log.JSON,
		Writer:  cmd.ErrOrStderr(),
		File:    settings.Log.File,
	})

	a := app.New(
		app.WithSettings(settings),
		app.WithLogger(logger),
		app.WithPrinter(logging.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr())),
	)
	return a, func() { closer.Close() }, nil
}

// applyFlags copies flags the user set on the command line over s.
// Flags left at their defaults do not mask config file or environment values.
func applyFlags(cmd *cobra.Command, s *config.Settings) {
	override(cmd, "output-dir", &s.OutputDir, outputDir)
	override(cmd, "all-addresses", &s.AllAddresses, allAddresses)
	override(cmd, "summary-only", &s.SummaryOnly, summaryOnly)
	override(cmd, "fail-on-empty-scope", &s.FailOnEmptyScope, failOnEmptyScope)
	override(cmd, "include-network", &s.IncludeNetwork, includeNetwork)
	override(cmd, "include-broadcast", &s.IncludeBroadcast, includeBroadcast)
	override(cmd, "verbose", &s.Log.Verbose, verbose)
	override(cmd, "json", &s.Log.JSON, jsonOutput)
	override(cmd, "log-file", &s.Log.File, logFile)
}

func override[T any](cmd *cobra.Command, name string, dst *T, value T) {
	if cmd.Flags().Changed(name) {
		*dst = value
	}
}

// equivalentCommand renders the flags-only command line that reproduces a
// run with the given settings, whatever config file or environment produced them.
func equivalentCommand(inPath, outPath string, s *config.Settings) string {
	argv := []string{appName, inPath, outPath, "--output-dir", s.OutputDir}

	for _, f := range []struct {
		name string
		set  bool
	}{
		{"--all-addresses", s.AllAddresses},
		{"--summary-only", s.SummaryOnly},
		{"--fail-on-empty-scope", s.FailOnEmptyScope},
		{"--include-network", s.IncludeNetwork},
		{"--include-broadcast", s.IncludeBroadcast},
	} {
		if f.set {
			argv = append(argv, f.name)
		}
	}

	return shellquote.Join(argv...)
}
