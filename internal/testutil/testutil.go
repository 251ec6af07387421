// Package testutil provides test utilities shared by package and command tests
package testutil

import (
	"embed"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

//go:embed fixtures/*
var fixturesFS embed.FS

// LoadFixture loads an embedded scope file fixture by name.
func LoadFixture(name string) ([]byte, error) {
	return fixturesFS.ReadFile("fixtures/" + name)
}

// TestEnv holds the test environment
type TestEnv struct {
	T         *testing.T
	TmpDir    string
	InputDir  string
	OutputDir string
}

// NewTestEnv creates a temporary input directory. OutputDir is a path inside
// the temp dir that does not exist yet.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	tmpDir := t.TempDir()
	env := &TestEnv{
		T:         t,
		TmpDir:    tmpDir,
		InputDir:  filepath.Join(tmpDir, "input"),
		OutputDir: filepath.Join(tmpDir, "output"),
	}

	if err := os.MkdirAll(env.InputDir, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", env.InputDir, err)
	}

	return env
}

// WriteScope writes lines as a scope file and returns its path.
func (e *TestEnv) WriteScope(name string, lines ...string) string {
	e.T.Helper()

	path := filepath.Join(e.InputDir, name)
	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.T.Fatalf("Failed to write scope file %s: %v", name, err)
	}
	return path
}

// CopyFixture writes an embedded fixture into the input directory and
// returns its path.
func (e *TestEnv) CopyFixture(name string) string {
	e.T.Helper()

	data, err := LoadFixture(name)
	if err != nil {
		e.T.Fatalf("Failed to load fixture %s: %v", name, err)
	}
	path := filepath.Join(e.InputDir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		e.T.Fatalf("Failed to write fixture %s: %v", name, err)
	}
	return path
}

// ReadArtifact returns the lines of an output artifact.
func (e *TestEnv) ReadArtifact(name string) []string {
	e.T.Helper()

	data, err := os.ReadFile(filepath.Join(e.OutputDir, name))
	if err != nil {
		e.T.Fatalf("Failed to read artifact %s: %v", name, err)
	}
	content := strings.TrimSuffix(string(data), "\n")
	if content == "" {
		return []string{}
	}
	return strings.Split(content, "\n")
}

// ArtifactExists reports whether an output artifact was written.
func (e *TestEnv) ArtifactExists(name string) bool {
	_, err := os.Stat(filepath.Join(e.OutputDir, name))
	return err == nil
}

// OutputFiles lists the file names in the output directory, sorted. It
// returns nil when the directory does not exist.
func (e *TestEnv) OutputFiles() []string {
	e.T.Helper()

	entries, err := os.ReadDir(e.OutputDir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		e.T.Fatalf("Failed to list output directory: %v", err)
	}

	var names []string
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names
}
