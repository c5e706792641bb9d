// Package extract reshapes raw region tables into nested result
// fragments, one extractor per named region.
package extract

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/bldgsim/ashrae140-go/pkg/ashrae140/models"
	"github.com/bldgsim/ashrae140-go/pkg/ashrae140/parser"
)

// ErrSchemaMismatch indicates a region's raw table does not have the
// expected column count or shape.
var ErrSchemaMismatch = errors.New("region table shape mismatch")

// MissingField marks an identification field whose label or value was
// absent from the submittal. Identification is supplementary, so an
// absent field is logged and sentineled instead of failing the run.
const MissingField = "missing"

// Identification carries the submitting software's identity fields,
// populated by the identifying-information region.
type Identification struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	ReleaseDate string `json:"release_date"`
}

// Func reshapes one region's raw table into a result fragment.
type Func func(tbl *models.Table) (models.Mapping, error)

// Step pairs a region name with its reshaping function.
type Step struct {
	Region string
	Run    Func
}

// Extractor reshapes the raw region tables of one submittal. It holds the
// run's logger and captures identification metadata as the
// identifying-information region is processed.
type Extractor struct {
	log *slog.Logger
	id  Identification
}

// New returns an Extractor logging through log. A nil log uses
// slog.Default().
func New(log *slog.Logger) *Extractor {
	if log == nil {
		log = slog.Default()
	}
	return &Extractor{log: log}
}

// Plan returns the section's extraction steps in declaration order. The
// functions are references, not results: each runs only when the
// coordinator reaches its region, so a failure is attributable to that
// region before later regions have side effects.
func (e *Extractor) Plan(section parser.Section) ([]Step, error) {
	switch section {
	case parser.Section52A:
		return []Step{
			{parser.RegionIdentifyingInformation, e.identifyingInformation52A},
			{parser.RegionConditionedZoneLoads, e.conditionedZoneLoads},
			{parser.RegionSolarIncident, e.solarIncident},
			{parser.RegionSolarUnshaded, e.solarUnshaded},
			{parser.RegionSolarShaded, e.solarShaded},
			{parser.RegionSkyTemperature, e.skyTemperature},
			{parser.RegionTemperatureBins, e.temperatureBins},
			{parser.RegionFreeFloatTemperatures, e.freeFloatTemperatures},
			{parser.RegionMonthlyZoneLoads, e.monthlyZoneLoads},
		}, nil
	case parser.Section52B:
		return []Step{
			{parser.RegionIdentifyingInformation, e.identifyingInformation52B},
			{parser.RegionSteadyStateCases, e.steadyStateCases},
		}, nil
	default:
		return nil, fmt.Errorf("%w: section %q has no extractors", parser.ErrUnsupportedSection, section)
	}
}

// Identification returns the software identity captured by the
// identifying-information region. Fields never matched hold MissingField.
func (e *Extractor) Identification() Identification {
	return e.id
}

// nameColumns assigns semantic column names, reporting a mismatch as an
// ErrSchemaMismatch naming the region.
func nameColumns(tbl *models.Table, region string, names ...string) error {
	if err := tbl.SetColumns(names...); err != nil {
		return fmt.Errorf("%w: region %s: %v", ErrSchemaMismatch, region, err)
	}
	return nil
}

// casesByFirstColumn reshapes a one-row-per-case table into
// {case -> {column -> value}} with the case id stringified.
func casesByFirstColumn(tbl *models.Table) models.Mapping {
	out := models.Mapping{}
	for i := range tbl.Rows {
		rec := models.Mapping{}
		for c := 1; c < len(tbl.Columns); c++ {
			rec[tbl.Columns[c]] = tbl.Cell(i, c)
		}
		out[stringify(tbl.Cell(i, 0))] = rec
	}
	return out
}

// stringify renders a typed cell value as a key string.
func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", x)
	}
}
