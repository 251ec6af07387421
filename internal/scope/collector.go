package scope

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/shikataNai/ScopeForge/internal/errors"
	"github.com/shikataNai/ScopeForge/internal/logging"
)

// maxLineLength bounds a single scope entry.
const maxLineLength = 1 << 20

// CollectFile reads the scope file at path and returns the union of every
// address its entries name. Unparseable entries are logged and skipped.
// A missing or unreadable file is an error.
func CollectFile(path string, opts ExpandOptions, logger *slog.Logger) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.InputUnreadable(path, err)
	}
	defer f.Close()

	set, err := Collect(f, path, opts, logger)
	if err != nil {
		return nil, errors.InputUnreadable(path, err)
	}
	return set, nil
}

// Collect is CollectFile over an open reader. name identifies the input in
// warnings.
func Collect(r io.Reader, name string, opts ExpandOptions, logger *slog.Logger) (Set, error) {
	logger = logging.OrDiscard(logger)

	set := make(Set)
	lines, skipped, err := eachLine(r, name, logger, func(line string) error {
		addrs, err := ParseLine(line, opts)
		if err != nil {
			return err
		}
		set.Add(addrs...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("collected scope file",
		"file", name,
		"lines", lines,
		"skipped", skipped,
		"addresses", set.Len())
	return set, nil
}

// CollectBlocksFile reads a list of CIDR blocks from path without expanding
// them. Ranges are not accepted. Unparseable entries are logged and skipped.
func CollectBlocksFile(path string, logger *slog.Logger) ([]Block, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.InputUnreadable(path, err)
	}
	defer f.Close()

	blocks, err := CollectBlocks(f, path, logger)
	if err != nil {
		return nil, errors.InputUnreadable(path, err)
	}
	return blocks, nil
}

// CollectBlocks is CollectBlocksFile over an open reader.
func CollectBlocks(r io.Reader, name string, logger *slog.Logger) ([]Block, error) {
	logger = logging.OrDiscard(logger)

	var blocks []Block
	lines, skipped, err := eachLine(r, name, logger, func(line string) error {
		line = strings.TrimSpace(line)
		if IsComment(line) {
			return nil
		}
		b, err := ParseBlock(line)
		if err != nil {
			return &LineError{Kind: KindNetwork, Entry: line, Err: err}
		}
		blocks = append(blocks, b)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("collected block list",
		"file", name,
		"lines", lines,
		"skipped", skipped,
		"blocks", len(blocks))
	return blocks, nil
}

// eachLine feeds every line of r to fn. A line fn rejects, or one longer
// than maxLineLength, is logged as a warning and skipped. Only read errors
// are returned.
func eachLine(r io.Reader, name string, logger *slog.Logger, fn func(line string) error) (lines, skipped int, err error) {
	split := &lineSplitter{limit: maxLineLength}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	scanner.Split(split.split)

	for scanner.Scan() {
		lines++
		line := scanner.Text()

		if split.truncated {
			if IsComment(strings.TrimSpace(line)) {
				continue
			}
			skipped++
			logger.Warn((&LineError{Kind: KindLine, Entry: preview(line), Err: errLineTooLong}).Error(),
				"file", name, "line", lines)
			continue
		}

		if err := fn(line); err != nil {
			skipped++
			logger.Warn(err.Error(), "file", name, "line", lines)
		}
	}
	return lines, skipped, scanner.Err()
}

var errLineTooLong = fmt.Errorf("line exceeds %d bytes", maxLineLength)

// preview shortens an oversized entry for a warning.
func preview(s string) string {
	const n = 32
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// lineSplitter provides a bufio.SplitFunc accepting "\n", "\r\n" and a lone
// "\r" as line terminators. A line that fills the scan buffer is emitted
// cut at limit with truncated set, and the rest of it is dropped.
type lineSplitter struct {
	limit     int
	truncated bool
	skipping  bool
}

func (s *lineSplitter) split(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	i := bytes.IndexAny(data, "\r\n")

	if s.skipping {
		if i < 0 {
			return len(data), nil, nil
		}
		n := terminator(data[i:], atEOF)
		if n == 0 {
			return i, nil, nil
		}
		s.skipping = false
		return i + n, nil, nil
	}

	if i >= 0 {
		n := terminator(data[i:], atEOF)
		if n == 0 && len(data) >= s.limit {
			// Buffer is full; treat the "\r" as a terminator on its own.
			n = 1
		}
		if n == 0 {
			return 0, nil, nil
		}
		s.truncated = false
		return i + n, data[:i], nil
	}

	if len(data) >= s.limit {
		s.truncated = true
		s.skipping = true
		return len(data), data, nil
	}
	if atEOF {
		s.truncated = false
		return len(data), data, nil
	}
	return 0, nil, nil
}

// terminator returns the length of the line ending that starts data, or 0
// when more input is needed to tell "\r" from "\r\n".
func terminator(data []byte, atEOF bool) int {
	switch {
	case data[0] == '\n':
		return 1
	case len(data) > 1 && data[1] == '\n':
		return 2
	case len(data) > 1 || atEOF:
		return 1
	default:
		return 0
	}
}
