// Package app provides the application context for scopeforge.
//
// This package manages the dependencies of a run using the functional
// options pattern, enabling easy testing through dependency injection.
//
// # App Context
//
//	type App struct {
//	    Settings *config.Settings  // Layered configuration
//	    Logger   *slog.Logger      // Diagnostics and parse warnings
//	    Printer  *logging.Printer  // User-facing output
//	}
//
// # Creating an App
//
//	// Production usage
//	a := app.New(app.WithSettings(settings), app.WithLogger(logger))
//	summary, err := a.Clean("in_scope.txt", "out_of_scope.txt")
//
// # Available Options
//
//	WithSettings(settings)  // Layered configuration
//	WithLogger(logger)      // Structured logger
//	WithPrinter(printer)    // User-facing output
package app
