// Package app provides the application context for scopeforge.
// It allows dependency injection for testing.
package app

import (
	"log/slog"

	"github.com/shikataNai/ScopeForge/internal/config"
	"github.com/shikataNai/ScopeForge/internal/errors"
	"github.com/shikataNai/ScopeForge/internal/logging"
	"github.com/shikataNai/ScopeForge/internal/output"
	"github.com/shikataNai/ScopeForge/internal/scope"
)

// App holds the application dependencies
type App struct {
	// Settings is the fully layered configuration
	Settings *config.Settings

	// Logger receives diagnostics and parse warnings
	Logger *slog.Logger

	// Printer writes user-facing output
	Printer *logging.Printer
}

// Option is a function that configures the App
type Option func(*App)

// WithSettings sets custom settings
func WithSettings(s *config.Settings) Option {
	return func(a *App) {
		a.Settings = s
	}
}

// WithLogger sets a custom logger
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		a.Logger = l
	}
}

// WithPrinter sets a custom printer
func WithPrinter(p *logging.Printer) Option {
	return func(a *App) {
		a.Printer = p
	}
}

// New creates a new App with the given options.
// Missing dependencies fall back to default settings, a discarding logger
// and a printer on stdout/stderr.
func New(opts ...Option) *App {
	app := &App{}

	for _, opt := range opts {
		opt(app)
	}

	if app.Settings == nil {
		app.Settings = config.Default()
	}
	if app.Logger == nil {
		app.Logger = logging.Discard()
	}
	if app.Printer == nil {
		app.Printer = logging.NewPrinter(nil, nil)
	}

	return app
}

// ExpandOptions returns the CIDR expansion options from the settings.
func (a *App) ExpandOptions() scope.ExpandOptions {
	return scope.ExpandOptions{
		IncludeNetwork:   a.Settings.IncludeNetwork,
		IncludeBroadcast: a.Settings.IncludeBroadcast,
	}
}

// Mode returns the output mode from the settings.
func (a *App) Mode() output.Mode {
	return output.Mode{
		AllAddresses: a.Settings.AllAddresses,
		SummaryOnly:  a.Settings.SummaryOnly,
		FailOnEmpty:  a.Settings.FailOnEmptyScope,
	}
}

// Collect unions the addresses of every scope file in paths.
func (a *App) Collect(paths ...string) (scope.Set, error) {
	set := make(scope.Set)
	for _, path := range paths {
		s, err := scope.CollectFile(path, a.ExpandOptions(), a.Logger)
		if err != nil {
			return nil, err
		}
		if s.Len() == 0 {
			a.Printer.Warning("%s names no addresses", path)
		}
		set.AddSet(s)
	}
	return set, nil
}

// CollectBlocks reads every block list in paths without expanding the blocks.
func (a *App) CollectBlocks(paths ...string) ([]scope.Block, error) {
	var blocks []scope.Block
	for _, path := range paths {
		bs, err := scope.CollectBlocksFile(path, a.Logger)
		if err != nil {
			return nil, err
		}
		if len(bs) == 0 {
			a.Printer.Warning("%s names no blocks", path)
		}
		blocks = append(blocks, bs...)
	}
	return blocks, nil
}

// Clean subtracts the scope in outPath from the scope in inPath and writes
// the artifacts into the configured output directory.
func (a *App) Clean(inPath, outPath string) (*output.Summary, error) {
	if err := a.Settings.Validate(); err != nil {
		return nil, errors.ValidationError(err.Error())
	}

	dir, err := config.ResolveOutputDir(a.Settings.OutputDir)
	if err != nil {
		return nil, errors.OutputUnwritable(a.Settings.OutputDir, err)
	}

	in, err := a.Collect(inPath)
	if err != nil {
		return nil, err
	}
	out, err := a.Collect(outPath)
	if err != nil {
		return nil, err
	}

	a.Logger.Debug("running assembler", "output_dir", dir)
	return output.New(dir, a.Logger).Run(in, out, a.Mode())
}
