package extract

import (
	"log/slog"
	"strings"

	"github.com/bldgsim/ashrae140-go/pkg/ashrae140/cleanse"
	"github.com/bldgsim/ashrae140-go/pkg/ashrae140/models"
	"github.com/bldgsim/ashrae140-go/pkg/ashrae140/parser"
)

// identifyingInformation52B reads the identification block of a 5-2B
// submittal, which stores the program name and version combined in one
// cell and the remaining fields in the last column. The version string is
// derived by stripping the short program name out of the combined cell.
func (e *Extractor) identifyingInformation52B(tbl *models.Table) (models.Mapping, error) {
	nameAndVersion := e.requiredCell(tbl, 0, 0, "program name and version")
	release := e.requiredCell(tbl, 1, 4, "program release date")
	shortName := e.requiredCell(tbl, 2, 4, "program name")
	submitted := e.requiredCell(tbl, 3, 4, "results submittal date")

	version := MissingField
	if nameAndVersion != MissingField && shortName != MissingField {
		version = strings.TrimSpace(strings.ReplaceAll(nameAndVersion, shortName, ""))
	}
	e.id = Identification{Name: shortName, Version: version, ReleaseDate: release}

	return models.Mapping{
		"program_name_and_version":     nameAndVersion,
		"program_version_release_date": release,
		"program_name_short":           shortName,
		"results_submittal_date":       submitted,
	}, nil
}

// requiredCell stringifies one identification cell, logging the omission
// and substituting MissingField when the cell is blank.
func (e *Extractor) requiredCell(tbl *models.Table, row, col int, field string) string {
	text := tbl.Text(row, col)
	if tbl.Cell(row, col) == nil || strings.TrimSpace(text) == "" {
		e.log.Error("identifying information field not found",
			slog.String("field", field),
			slog.Int("row", row),
			slog.Int("column", col))
		return MissingField
	}
	return text
}

// steadyStateCases reshapes the steady-state case table. Case keys keep
// their cleansed native type; unlike the 5-2A regions they are not
// stringified.
func (e *Extractor) steadyStateCases(tbl *models.Table) (models.Mapping, error) {
	if err := nameColumns(tbl, parser.RegionSteadyStateCases,
		"cases", "qfloor", "qzone", "Tzone", "tsim"); err != nil {
		return nil, err
	}
	cleansed, err := cleanse.Apply(tbl, cleanse.Rule{
		Region:    parser.RegionSteadyStateCases,
		Require:   []string{"cases"},
		Numeric:   []string{"qfloor", "qzone", "Tzone", "tsim"},
		DropBlank: true,
	})
	if err != nil {
		return nil, err
	}
	out := models.Mapping{}
	for i := range cleansed.Rows {
		out[cleansed.Cell(i, 0)] = models.Mapping{
			"qfloor": cleansed.Cell(i, 1),
			"qzone":  cleansed.Cell(i, 2),
			"Tzone":  cleansed.Cell(i, 3),
			"tsim":   cleansed.Cell(i, 4),
		}
	}
	return out, nil
}
