// Package ashrae140 extracts standardized result tables from ASHRAE
// Standard 140 submittal workbooks and reshapes them into a nested
// mapping keyed by case, surface, and month.
package ashrae140

import (
	"log/slog"

	"github.com/bldgsim/ashrae140-go/pkg/ashrae140/parser"
)

// Options configures a processing run.
type Options struct {
	// Schema replaces the builtin region schema for the classified
	// section. A non-empty schema is used verbatim without validation;
	// callers supplying one take responsibility for its correctness.
	// Nil or empty keeps the builtin schema.
	Schema *parser.Schema
	// Logger receives classification and extraction diagnostics.
	// If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultOptions returns the default run configuration: builtin schemas
// and the default logger.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
