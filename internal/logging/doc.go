// Package logging provides logging utilities for scopeforge.
//
// This package provides two categories of output:
//   - Diagnostics: structured logs (via slog) injected into the engine
//   - User output: formatted messages and tables for end users
//
// # Diagnostics
//
// New builds a *slog.Logger. Text output goes through charmbracelet/log, which
// tags every line with its severity; JSON output uses slog's JSON handler:
//
//	logger, closer := logging.New(logging.Options{Verbose: verbose, File: logFile})
//	defer closer.Close()
//	logger.Warn("skipping unparseable line", "file", path, "line", n)
//
// Setting File tees every line into a size-rotated log file.
//
// # User Output
//
// Printer methods prepend status indicators:
//   - ℹ (info)
//   - ✓ (success)
//   - ⚠ (warning)
//   - ✗ (error)
//
// Info and Success go to Out; Warning and Error go to Err.
package logging
