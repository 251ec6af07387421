package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// User-facing output with status prefixes.
// Kept separate from the structured logger so that scripted callers can
// silence diagnostics without losing results.

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Printer writes status-prefixed messages for end users.
type Printer struct {
	Out io.Writer
	Err io.Writer
}

// NewPrinter returns a Printer writing to out and errOut, falling back to
// stdout and stderr.
func NewPrinter(out, errOut io.Writer) *Printer {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return &Printer{Out: out, Err: errOut}
}

// Info prints an info message to Out.
func (p *Printer) Info(format string, args ...interface{}) {
	fmt.Fprintf(p.Out, "ℹ "+format+"\n", args...)
}

// Success prints a success message to Out.
func (p *Printer) Success(format string, args ...interface{}) {
	fmt.Fprintf(p.Out, "✓ "+format+"\n", args...)
}

// Warning prints a warning message to Err.
func (p *Printer) Warning(format string, args ...interface{}) {
	fmt.Fprintf(p.Err, "⚠ "+format+"\n", args...)
}

// Error prints an error message to Err.
func (p *Printer) Error(format string, args ...interface{}) {
	fmt.Fprintf(p.Err, "✗ "+format+"\n", args...)
}

// Table renders rows under headers as a bordered table on Out.
func (p *Printer) Table(headers []string, rows ...[]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	fmt.Fprintln(p.Out, t.String())
}

// Lines writes each line verbatim to Out.
func (p *Printer) Lines(lines []string) {
	for _, line := range lines {
		fmt.Fprintln(p.Out, line)
	}
}
