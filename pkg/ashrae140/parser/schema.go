package parser

import (
	"errors"
	"fmt"
)

// Region names shared by the schema registry and the extractors.
const (
	RegionIdentifyingInformation = "identifying_information"
	RegionConditionedZoneLoads   = "conditioned_zone_loads_non_free_float"
	RegionSolarIncident          = "solar_radiation_annual_incident"
	RegionSolarUnshaded          = "solar_radiation_unshaded_annual_transmitted"
	RegionSolarShaded            = "solar_radiation_shaded_annual_transmitted"
	RegionSkyTemperature         = "sky_temperature_output"
	RegionTemperatureBins        = "annual_hourly_zone_temperature_bin_data"
	RegionFreeFloatTemperatures  = "free_float_case_zone_temperatures"
	RegionMonthlyZoneLoads       = "monthly_conditioned_zone_loads"
	RegionSteadyStateCases       = "steady_state_cases"
)

// ErrRegionNotFound indicates the resolved schema lacks a descriptor for
// a region the pipeline expects.
var ErrRegionNotFound = errors.New("region not found in schema")

// RegionDescriptor locates one named table within a submittal workbook.
// Descriptors are fixed coordinates, never derived from workbook contents.
type RegionDescriptor struct {
	// Sheet is the worksheet holding the region.
	Sheet string
	// SkipRows is the number of leading sheet rows above the region.
	SkipRows int
	// Columns is the Excel column range of the region, e.g. "B:L".
	Columns string
	// NumRows is the number of data rows to read.
	NumRows int
	// Raw suppresses in-sheet header inference: when false, one header
	// row after SkipRows is consumed before the data rows.
	Raw bool
}

// Schema is an ordered set of region descriptors for one report section.
// Declaration order is the extraction order.
type Schema struct {
	order []string
	desc  map[string]RegionDescriptor
}

// NewSchema returns an empty schema.
func NewSchema() *Schema {
	return &Schema{desc: make(map[string]RegionDescriptor)}
}

// Add appends a region descriptor, preserving declaration order. Adding a
// name twice overwrites the descriptor but keeps the original position.
func (s *Schema) Add(name string, d RegionDescriptor) *Schema {
	if _, ok := s.desc[name]; !ok {
		s.order = append(s.order, name)
	}
	s.desc[name] = d
	return s
}

// Regions returns the region names in declaration order.
func (s *Schema) Regions() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Lookup returns the descriptor for a named region.
func (s *Schema) Lookup(name string) (RegionDescriptor, bool) {
	d, ok := s.desc[name]
	return d, ok
}

// Len returns the number of declared regions.
func (s *Schema) Len() int {
	return len(s.order)
}

// ResolveSchema returns the extraction schema for a section. A non-empty
// override is returned verbatim without validation; callers supplying one
// take responsibility for its correctness. An unrecognized section is an
// ErrUnsupportedSection rather than an empty schema.
func ResolveSchema(section Section, override *Schema) (*Schema, error) {
	if override != nil && override.Len() > 0 {
		return override, nil
	}
	switch section {
	case Section52A:
		return schema52A(), nil
	case Section52B:
		return schema52B(), nil
	default:
		return nil, fmt.Errorf("%w: section %q has no builtin schema", ErrUnsupportedSection, section)
	}
}

const submittalSheet = "YourData"

func schema52A() *Schema {
	return NewSchema().
		Add(RegionIdentifyingInformation, RegionDescriptor{Sheet: submittalSheet, SkipRows: 60, Columns: "B:C", NumRows: 3, Raw: true}).
		Add(RegionConditionedZoneLoads, RegionDescriptor{Sheet: submittalSheet, SkipRows: 68, Columns: "B:L", NumRows: 46}).
		Add(RegionSolarIncident, RegionDescriptor{Sheet: submittalSheet, SkipRows: 153, Columns: "B:C", NumRows: 5}).
		Add(RegionSolarUnshaded, RegionDescriptor{Sheet: submittalSheet, SkipRows: 161, Columns: "B:C", NumRows: 4}).
		Add(RegionSolarShaded, RegionDescriptor{Sheet: submittalSheet, SkipRows: 168, Columns: "B:C", NumRows: 2}).
		Add(RegionSkyTemperature, RegionDescriptor{Sheet: submittalSheet, SkipRows: 176, Columns: "B:K", NumRows: 1}).
		Add(RegionTemperatureBins, RegionDescriptor{Sheet: submittalSheet, SkipRows: 328, Columns: "B:C", NumRows: 149}).
		Add(RegionFreeFloatTemperatures, RegionDescriptor{Sheet: submittalSheet, SkipRows: 128, Columns: "B:K", NumRows: 7}).
		Add(RegionMonthlyZoneLoads, RegionDescriptor{Sheet: submittalSheet, SkipRows: 188, Columns: "B:R", NumRows: 12})
}

func schema52B() *Schema {
	return NewSchema().
		Add(RegionIdentifyingInformation, RegionDescriptor{Sheet: submittalSheet, SkipRows: 4, Columns: "E:I", NumRows: 4, Raw: true}).
		Add(RegionSteadyStateCases, RegionDescriptor{Sheet: submittalSheet, SkipRows: 57, Columns: "D:H", NumRows: 6, Raw: true})
}
