package output

import (
	"log/slog"

	"github.com/shikataNai/ScopeForge/internal/errors"
	"github.com/shikataNai/ScopeForge/internal/logging"
	"github.com/shikataNai/ScopeForge/internal/scope"
)

// Artifact file names written into the output directory.
const (
	ArtifactCleaned            = "scope_cleaned"
	ArtifactCleanedEveryIP     = "scope_cleaned_every_ip_listed"
	ArtifactExcludedAggregated = "out_of_scope_aggregated"
	ArtifactExcludedEveryIP    = "out_of_scope_addresses"
)

// Mode selects which artifacts a run produces.
type Mode struct {
	// AllAddresses also lists every final and excluded address.
	AllAddresses bool
	// SummaryOnly reports counts and writes nothing.
	SummaryOnly bool
	// FailOnEmpty turns an empty final scope into an error.
	FailOnEmpty bool
}

// Summary describes a completed run.
type Summary struct {
	InScope  int
	Excluded int
	Final    int
	// Artifacts lists the paths written, in write order.
	Artifacts []string
}

// Assembler computes the final scope and persists its artifacts.
type Assembler struct {
	dir    *Dir
	logger *slog.Logger
}

// New returns an Assembler writing into dir.
func New(dir string, logger *slog.Logger) *Assembler {
	return &Assembler{
		dir:    NewDir(dir),
		logger: logging.OrDiscard(logger),
	}
}

// Run computes in minus out, reports the counts and writes the artifacts
// selected by mode. When mode.FailOnEmpty is set and nothing remains, Run
// returns errors.EmptyScope before touching the output directory.
func (a *Assembler) Run(in, out scope.Set, mode Mode) (*Summary, error) {
	final := in.Difference(out)

	summary := &Summary{
		InScope:  in.Len(),
		Excluded: out.Len(),
		Final:    final.Len(),
	}

	a.logger.Info("in-scope addresses parsed", "count", summary.InScope)
	a.logger.Info("out-of-scope addresses parsed", "count", summary.Excluded)
	a.logger.Info("remaining in-scope after exclusion", "count", summary.Final)

	if mode.FailOnEmpty && final.Len() == 0 {
		return summary, errors.EmptyScope()
	}

	if mode.SummaryOnly {
		return summary, nil
	}

	if err := a.dir.Prepare(); err != nil {
		return summary, err
	}

	writes := []struct {
		name  string
		lines func() []string
		when  bool
	}{
		{ArtifactCleaned, func() []string { return scope.BlockStrings(scope.Aggregate(final)) }, true},
		{ArtifactCleanedEveryIP, final.Strings, mode.AllAddresses},
		{ArtifactExcludedAggregated, func() []string { return scope.BlockStrings(scope.Aggregate(out)) }, true},
		{ArtifactExcludedEveryIP, out.Strings, mode.AllAddresses},
	}

	for _, w := range writes {
		if !w.when {
			continue
		}
		path, err := a.dir.WriteLines(w.name, w.lines())
		if err != nil {
			return summary, err
		}
		a.logger.Info("artifact written", "name", w.name, "path", path)
		summary.Artifacts = append(summary.Artifacts, path)
	}

	return summary, nil
}
