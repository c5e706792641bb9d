package ashrae140

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/bldgsim/ashrae140-go/pkg/ashrae140/extract"
	"github.com/bldgsim/ashrae140-go/pkg/ashrae140/models"
	"github.com/bldgsim/ashrae140-go/pkg/ashrae140/parser"
)

// Identification carries the submitting software's identity fields.
type Identification = extract.Identification

// Result is the outcome of one processing run: the merged result mapping
// plus the identification metadata captured alongside it.
type Result struct {
	// Section is the report layout the submittal was classified as.
	Section parser.Section
	// Data is the merged nested mapping contributed by every region.
	Data models.Mapping
	// Software identifies the simulation program that produced the
	// submittal. Fields absent from the workbook hold
	// extract.MissingField.
	Software Identification
}

// Process runs the extraction pipeline over one submittal workbook:
// classify the file name, resolve the region schema, read each region in
// declared order, reshape it, and deep-merge the fragments. The workbook
// is opened read-only and never mutated; running twice over the same
// inputs yields identical results. Any failure other than a missing
// identification field aborts the run, so callers see either a complete
// mapping or an error naming the offending region.
func Process(path string, opts Options) (*Result, error) {
	log := opts.logger()

	name := filepath.Base(path)
	section, err := parser.ClassifySection(name)
	if err != nil {
		log.Error("submittal file name not recognized", slog.String("file", name))
		return nil, err
	}

	schema, err := parser.ResolveSchema(section, opts.Schema)
	if err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open submittal: %w", err)
	}
	defer f.Close()

	ext := extract.New(log)
	steps, err := ext.Plan(section)
	if err != nil {
		return nil, err
	}

	data := models.Mapping{}
	for _, step := range steps {
		desc, ok := schema.Lookup(step.Region)
		if !ok {
			return nil, &ProcessError{Region: step.Region,
				Err: fmt.Errorf("%w: no extraction instructions for %q", parser.ErrRegionNotFound, step.Region)}
		}
		tbl, err := parser.ReadRegion(f, desc)
		if err != nil {
			return nil, &ProcessError{Region: step.Region, Err: err}
		}
		frag, err := step.Run(tbl)
		if err != nil {
			return nil, &ProcessError{Region: step.Region, Err: err}
		}
		if err := data.Merge(frag); err != nil {
			return nil, &ProcessError{Region: step.Region, Err: err}
		}
	}

	return &Result{Section: section, Data: data, Software: ext.Identification()}, nil
}
