package output

import (
	"bufio"
	"os"
	"path/filepath"

	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/shikataNai/ScopeForge/internal/errors"
)

// Dir is an output directory whose files are replaced atomically.
type Dir struct {
	Path string
}

// NewDir returns a Dir rooted at path.
func NewDir(path string) *Dir {
	return &Dir{Path: path}
}

// Prepare creates the directory if needed.
func (d *Dir) Prepare() error {
	if err := os.MkdirAll(d.Path, 0755); err != nil {
		return errors.OutputUnwritable(d.Path, err)
	}
	return nil
}

// Resolve returns the path of name inside the directory. Names cannot
// escape the directory through ".." or symlinks.
func (d *Dir) Resolve(name string) (string, error) {
	path, err := securejoin.SecureJoin(d.Path, name)
	if err != nil {
		return "", errors.OutputUnwritable(name, err)
	}
	return path, nil
}

// WriteLines replaces name with lines, one per line. The content is written
// to a temporary file in the same directory and renamed into place, so a
// failed write never leaves a truncated artifact behind.
func (d *Dir) WriteLines(name string, lines []string) (string, error) {
	path, err := d.Resolve(name)
	if err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*")
	if err != nil {
		return "", errors.OutputUnwritable(path, err)
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	w := bufio.NewWriter(tmp)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return "", errors.OutputUnwritable(path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return "", errors.OutputUnwritable(path, err)
	}
	if err := tmp.Chmod(0644); err != nil {
		return "", errors.OutputUnwritable(path, err)
	}
	if err := tmp.Close(); err != nil {
		return "", errors.OutputUnwritable(path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return "", errors.OutputUnwritable(path, err)
	}
	committed = true

	return path, nil
}
