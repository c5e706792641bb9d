package extract

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bldgsim/ashrae140-go/pkg/ashrae140/cleanse"
	"github.com/bldgsim/ashrae140-go/pkg/ashrae140/models"
	"github.com/bldgsim/ashrae140-go/pkg/ashrae140/parser"
)

// identifyingInformation52A reads the three labeled identification cells
// of a 5-2A submittal. Each label is checked against its expected prefix;
// a mismatch is logged and the field sentineled, since identification
// data is supplementary.
func (e *Extractor) identifyingInformation52A(tbl *models.Table) (models.Mapping, error) {
	e.id = Identification{
		Name:        e.labeledValue(tbl, 0, "Software", "software name"),
		Version:     e.labeledValue(tbl, 1, "Version", "software version"),
		ReleaseDate: e.labeledValue(tbl, 2, "Date", "software release date"),
	}
	return models.Mapping{
		"software_name":         e.id.Name,
		"software_version":      e.id.Version,
		"software_release_date": e.id.ReleaseDate,
	}, nil
}

// labeledValue returns the value cell of a label/value row when the label
// cell starts with prefix, or MissingField after logging the omission.
func (e *Extractor) labeledValue(tbl *models.Table, row int, prefix, field string) string {
	label, _ := tbl.Cell(row, 0).(string)
	if !strings.HasPrefix(label, prefix) {
		e.log.Error("identifying information field not found",
			slog.String("field", field),
			slog.Int("row", row))
		return MissingField
	}
	if tbl.Cell(row, 1) == nil {
		e.log.Error("identifying information field is empty",
			slog.String("field", field),
			slog.Int("row", row))
		return MissingField
	}
	// The verbatim text, not the typed value: a version cell reading
	// "1.0" must not come back as "1".
	return tbl.Text(row, 1)
}

func (e *Extractor) conditionedZoneLoads(tbl *models.Table) (models.Mapping, error) {
	if err := nameColumns(tbl, parser.RegionConditionedZoneLoads,
		"case", "annual_heating_MWh", "annual_cooling_MWh",
		"peak_heating_kW", "peak_heating_month", "peak_heating_day", "peak_heating_hour",
		"peak_cooling_kW", "peak_cooling_month", "peak_cooling_day", "peak_cooling_hour"); err != nil {
		return nil, err
	}
	cleansed, err := cleanse.Apply(tbl, cleanse.Rule{
		Region:    parser.RegionConditionedZoneLoads,
		Require:   []string{"case"},
		Numeric:   []string{"annual_heating_MWh", "annual_cooling_MWh", "peak_heating_kW", "peak_cooling_kW"},
		DropBlank: true,
		Dedupe:    true,
	})
	if err != nil {
		return nil, err
	}
	return casesByFirstColumn(cleansed), nil
}

// solarIncident reshapes the annual incident radiation table. All rows
// belong to case 600.
func (e *Extractor) solarIncident(tbl *models.Table) (models.Mapping, error) {
	if err := nameColumns(tbl, parser.RegionSolarIncident, "Surface", "kWh/m2"); err != nil {
		return nil, err
	}
	cleansed, err := cleanse.Apply(tbl, cleanse.Rule{
		Region:    parser.RegionSolarIncident,
		Require:   []string{"Surface"},
		Numeric:   []string{"kWh/m2"},
		DropBlank: true,
	})
	if err != nil {
		return nil, err
	}
	surfaces := models.Mapping{}
	for i := range cleansed.Rows {
		surfaces[stringify(cleansed.Cell(i, 0))] = models.Mapping{"kWh/m2": cleansed.Cell(i, 1)}
	}
	return models.Mapping{"600": models.Mapping{"Surface": surfaces}}, nil
}

func (e *Extractor) solarUnshaded(tbl *models.Table) (models.Mapping, error) {
	return e.transmittedSolar(tbl, parser.RegionSolarUnshaded)
}

func (e *Extractor) solarShaded(tbl *models.Table) (models.Mapping, error) {
	return e.transmittedSolar(tbl, parser.RegionSolarShaded)
}

// transmittedSolar reshapes the annual transmitted radiation tables,
// whose first column combines case and surface as "case/surface".
func (e *Extractor) transmittedSolar(tbl *models.Table, region string) (models.Mapping, error) {
	if err := nameColumns(tbl, region, "Case/Surface", "kWh/m2"); err != nil {
		return nil, err
	}
	cleansed, err := cleanse.Apply(tbl, cleanse.Rule{
		Region:    region,
		Require:   []string{"Case/Surface"},
		Numeric:   []string{"kWh/m2"},
		DropBlank: true,
	})
	if err != nil {
		return nil, err
	}
	out := models.Mapping{}
	for i := range cleansed.Rows {
		combined := stringify(cleansed.Cell(i, 0))
		caseID, surface, ok := strings.Cut(combined, "/")
		if !ok {
			return nil, &cleanse.Error{
				Region: region, Column: "Case/Surface", Row: i, Value: combined,
				Reason: "expected case and surface separated by '/'",
			}
		}
		out[caseID] = models.Mapping{
			"Surface": models.Mapping{
				surface: models.Mapping{"kWh/m2": cleansed.Cell(i, 1)},
			},
		}
	}
	return out, nil
}

// skyTemperature reshapes the single-row sky temperature table, always
// keyed under case 600. The Average, Minimum, and Maximum sub-keys are
// written separately so none clobbers another within the fragment.
func (e *Extractor) skyTemperature(tbl *models.Table) (models.Mapping, error) {
	if err := nameColumns(tbl, parser.RegionSkyTemperature,
		"case", "Ann. Hourly Average C",
		"Minimum C", "Minimum Month", "Minimum Day", "Minimum Hour",
		"Maximum C", "Maximum Month", "Maximum Day", "Maximum Hour"); err != nil {
		return nil, err
	}
	cleansed, err := cleanse.Apply(tbl, cleanse.Rule{
		Region:    parser.RegionSkyTemperature,
		Numeric:   []string{"Ann. Hourly Average C", "Minimum C", "Maximum C"},
		DropBlank: true,
	})
	if err != nil {
		return nil, err
	}
	sub := models.Mapping{}
	for i := range cleansed.Rows {
		sub["Average"] = models.Mapping{"C": cleansed.Cell(i, cleansed.Index("Ann. Hourly Average C"))}
		sub["Minimum"] = models.Mapping{
			"C":     cleansed.Cell(i, cleansed.Index("Minimum C")),
			"Month": cleansed.Cell(i, cleansed.Index("Minimum Month")),
			"Hour":  cleansed.Cell(i, cleansed.Index("Minimum Hour")),
		}
		sub["Maximum"] = models.Mapping{
			"C":     cleansed.Cell(i, cleansed.Index("Maximum C")),
			"Month": cleansed.Cell(i, cleansed.Index("Maximum Month")),
			"Hour":  cleansed.Cell(i, cleansed.Index("Maximum Hour")),
		}
	}
	return models.Mapping{"600": sub}, nil
}

// temperatureBins reshapes the hourly temperature bin distribution,
// always keyed under case 900FF. Bins and hour counts must be integers; a
// fractional or non-numeric value fails cleansing rather than truncating.
func (e *Extractor) temperatureBins(tbl *models.Table) (models.Mapping, error) {
	if err := nameColumns(tbl, parser.RegionTemperatureBins, "temperature_bin_c", "number_of_hours"); err != nil {
		return nil, err
	}
	cleansed, err := cleanse.Apply(tbl, cleanse.Rule{
		Region:    parser.RegionTemperatureBins,
		Require:   []string{"temperature_bin_c"},
		Integer:   []string{"temperature_bin_c", "number_of_hours"},
		DropBlank: true,
	})
	if err != nil {
		return nil, err
	}
	bins := models.Mapping{}
	for i := range cleansed.Rows {
		bins[cleansed.Cell(i, 0)] = models.Mapping{"number_of_hours": cleansed.Cell(i, 1)}
	}
	return models.Mapping{"900FF": models.Mapping{"temperature_bin_c": bins}}, nil
}

func (e *Extractor) freeFloatTemperatures(tbl *models.Table) (models.Mapping, error) {
	if err := nameColumns(tbl, parser.RegionFreeFloatTemperatures,
		"case", "average_temperature",
		"minimum_temperature", "minimum_month", "minimum_day", "minimum_hour",
		"maximum_temperature", "maximum_month", "maximum_day", "maximum_hour"); err != nil {
		return nil, err
	}
	cleansed, err := cleanse.Apply(tbl, cleanse.Rule{
		Region:    parser.RegionFreeFloatTemperatures,
		Require:   []string{"case"},
		Numeric:   []string{"average_temperature", "minimum_temperature", "maximum_temperature"},
		DropBlank: true,
		Dedupe:    true,
	})
	if err != nil {
		return nil, err
	}
	return casesByFirstColumn(cleansed), nil
}

// monthlyZoneLoads splits the 17-column monthly loads table into the case
// 600 block (columns 0-8) and the case 900 block (the shared month column
// plus columns 9-16), cleanses each independently, and keys the result by
// case then month.
func (e *Extractor) monthlyZoneLoads(tbl *models.Table) (models.Mapping, error) {
	const wideWidth = 17
	if w := tbl.Width(); w != wideWidth {
		return nil, fmt.Errorf("%w: region %s: expected %d columns, got %d",
			ErrSchemaMismatch, parser.RegionMonthlyZoneLoads, wideWidth, w)
	}
	names := []string{
		"month", "total_heating_kwh", "total_cooling_kwh",
		"peak_heating_kw", "peak_heating_day", "peak_heating_hour",
		"peak_cooling_kw", "peak_cooling_day", "peak_cooling_hour",
	}
	rule := cleanse.Rule{
		Region:    parser.RegionMonthlyZoneLoads,
		Require:   []string{"month"},
		Numeric:   []string{"total_heating_kwh", "total_cooling_kwh", "peak_heating_kw", "peak_cooling_kw"},
		DropBlank: true,
	}

	out := models.Mapping{}
	blocks := []struct {
		caseID string
		cols   []int
	}{
		{"600", []int{0, 1, 2, 3, 4, 5, 6, 7, 8}},
		{"900", []int{0, 9, 10, 11, 12, 13, 14, 15, 16}},
	}
	for _, blk := range blocks {
		block := tbl.Select(blk.cols...)
		if err := nameColumns(block, parser.RegionMonthlyZoneLoads, names...); err != nil {
			return nil, err
		}
		cleansed, err := cleanse.Apply(block, rule)
		if err != nil {
			return nil, err
		}
		months := models.Mapping{}
		for i := range cleansed.Rows {
			rec := models.Mapping{}
			for c := 1; c < len(cleansed.Columns); c++ {
				rec[cleansed.Columns[c]] = cleansed.Cell(i, c)
			}
			months[stringify(cleansed.Cell(i, 0))] = rec
		}
		out[blk.caseID] = months
	}
	return out, nil
}
