package ashrae140

import (
	"fmt"

	"github.com/bldgsim/ashrae140-go/pkg/ashrae140/extract"
	"github.com/bldgsim/ashrae140-go/pkg/ashrae140/models"
	"github.com/bldgsim/ashrae140-go/pkg/ashrae140/parser"
)

// Sentinels aliased from the packages that raise them, so callers can
// match failures with errors.Is without importing the sub-packages.
var (
	// ErrUnsupportedSection indicates an unrecognized submittal name or
	// section tag.
	ErrUnsupportedSection = parser.ErrUnsupportedSection
	// ErrRegionNotFound indicates the resolved schema lacks a region the
	// pipeline expects.
	ErrRegionNotFound = parser.ErrRegionNotFound
	// ErrSchemaMismatch indicates a region table with the wrong shape.
	ErrSchemaMismatch = extract.ErrSchemaMismatch
	// ErrMergeConflict indicates two fragments wrote different values to
	// the same key path.
	ErrMergeConflict = models.ErrMergeConflict
)

// ProcessError identifies which region a processing failure came from.
type ProcessError struct {
	Region string
	Err    error
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("processing region %q: %v", e.Region, e.Err)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}
