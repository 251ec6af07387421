package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shikataNai/ScopeForge/internal/config"
	"github.com/shikataNai/ScopeForge/internal/errors"
	"github.com/shikataNai/ScopeForge/internal/logging"
	"github.com/shikataNai/ScopeForge/internal/output"
	"github.com/shikataNai/ScopeForge/internal/testutil"
)

func TestNew(t *testing.T) {
	app := New()

	if app == nil {
		t.Fatal("New() returned nil")
	}
	if app.Settings == nil {
		t.Error("Settings should not be nil")
	}
	if app.Logger == nil {
		t.Error("Logger should not be nil")
	}
	if app.Printer == nil {
		t.Error("Printer should not be nil")
	}
}

func TestNew_WithSettings(t *testing.T) {
	s := &config.Settings{OutputDir: "/custom", IncludeNetwork: true}

	app := New(WithSettings(s))

	if app.Settings != s {
		t.Error("WithSettings did not set settings")
	}
	if !app.ExpandOptions().IncludeNetwork {
		t.Error("ExpandOptions should follow the settings")
	}
}

func TestNew_WithLoggerAndPrinter(t *testing.T) {
	logger := logging.Discard()
	printer := logging.NewPrinter(&bytes.Buffer{}, &bytes.Buffer{})

	app := New(WithLogger(logger), WithPrinter(printer))

	if app.Logger != logger {
		t.Error("WithLogger did not set logger")
	}
	if app.Printer != printer {
		t.Error("WithPrinter did not set printer")
	}
}

func TestMode(t *testing.T) {
	app := New(WithSettings(&config.Settings{
		OutputDir:        ".",
		AllAddresses:     true,
		FailOnEmptyScope: true,
	}))

	want := output.Mode{AllAddresses: true, FailOnEmpty: true}
	if got := app.Mode(); got != want {
		t.Errorf("Mode() = %+v, want %+v", got, want)
	}
}

func TestCollect_Union(t *testing.T) {
	env := testutil.NewTestEnv(t)
	a := env.WriteScope("a", "10.0.0.1", "10.0.0.2")
	b := env.WriteScope("b", "10.0.0.2-10.0.0.3")

	set, err := New().Collect(a, b)
	if err != nil {
		t.Fatalf("Collect() error: %v", err)
	}
	if set.Len() != 3 {
		t.Errorf("Collect() = %v, want 3 addresses", set.Strings())
	}
}

func TestClean(t *testing.T) {
	env := testutil.NewTestEnv(t)
	in := env.CopyFixture("in_cidr")
	out := env.CopyFixture("out_cidr")

	app := New(WithSettings(&config.Settings{
		OutputDir:        env.OutputDir,
		IncludeNetwork:   true,
		IncludeBroadcast: true,
	}))

	summary, err := app.Clean(in, out)
	if err != nil {
		t.Fatalf("Clean() error: %v", err)
	}
	if summary.Final != 3+128 {
		t.Errorf("Final = %d, want %d", summary.Final, 3+128)
	}

	got := env.ReadArtifact(output.ArtifactCleaned)
	want := []string{"10.0.0.0/31", "10.0.0.3/32", "10.1.1.128/25"}
	if len(got) != len(want) {
		t.Fatalf("scope_cleaned = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("scope_cleaned[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestClean_MissingInput(t *testing.T) {
	env := testutil.NewTestEnv(t)
	out := env.CopyFixture("out_basic")

	app := New(WithSettings(&config.Settings{OutputDir: env.OutputDir}))

	_, err := app.Clean(env.InputDir+"/missing", out)
	if err == nil {
		t.Fatal("Clean() should fail for a missing input file")
	}
	if code := errors.GetExitCode(err); code != errors.ExitGeneralError {
		t.Errorf("exit code = %d, want %d", code, errors.ExitGeneralError)
	}
	if files := env.OutputFiles(); files != nil {
		t.Errorf("no files should be written, got %v", files)
	}
}

func TestClean_InvalidSettings(t *testing.T) {
	app := New(WithSettings(&config.Settings{OutputDir: ""}))

	_, err := app.Clean("in", "out")
	if code := errors.GetExitCode(err); code != errors.ExitConfigError {
		t.Errorf("exit code = %d, want %d", code, errors.ExitConfigError)
	}
}

func TestClean_UnresolvableOutputDir(t *testing.T) {
	env := testutil.NewTestEnv(t)
	in := env.CopyFixture("in_basic")
	out := env.CopyFixture("out_basic")
	t.Setenv("HOME", "")

	app := New(WithSettings(&config.Settings{OutputDir: "~/scope"}))

	_, err := app.Clean(in, out)
	if err == nil {
		t.Fatal("Clean() should fail when the output directory cannot be resolved")
	}
	if code := errors.GetExitCode(err); code != errors.ExitGeneralError {
		t.Errorf("exit code = %d, want %d", code, errors.ExitGeneralError)
	}
}

func TestCollect_WarnsOnEmptyFile(t *testing.T) {
	env := testutil.NewTestEnv(t)
	empty := env.WriteScope("empty", "# nothing here")

	var stderr bytes.Buffer
	app := New(WithPrinter(logging.NewPrinter(&bytes.Buffer{}, &stderr)))

	set, err := app.Collect(empty)
	if err != nil {
		t.Fatalf("Collect() error: %v", err)
	}
	if set.Len() != 0 {
		t.Errorf("Collect() = %v, want empty", set.Strings())
	}
	if !strings.Contains(stderr.String(), "⚠ "+empty+" names no addresses") {
		t.Errorf("missing warning, stderr = %q", stderr.String())
	}
}

func TestCollectBlocks(t *testing.T) {
	env := testutil.NewTestEnv(t)
	a := env.WriteScope("a", "10.0.0.0/25", "10.0.0.128/25")
	b := env.WriteScope("b", "10.0.1.0/24")

	blocks, err := New().CollectBlocks(a, b)
	if err != nil {
		t.Fatalf("CollectBlocks() error: %v", err)
	}
	if len(blocks) != 3 {
		t.Errorf("CollectBlocks() = %v, want 3 blocks", blocks)
	}
}
