// Package cleanse validates, types, and deduplicates raw region tables
// before they are reshaped into result fragments.
package cleanse

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bldgsim/ashrae140-go/pkg/ashrae140/models"
)

// Rule describes the cleansing applied to one region's table. Column
// names refer to the semantic names already assigned to the table.
type Rule struct {
	// Region names the region for error reporting.
	Region string
	// Require lists columns that must be non-empty for a row to be kept;
	// rows with an empty required column are dropped.
	Require []string
	// Numeric lists columns coerced to float64.
	Numeric []string
	// Integer lists columns coerced to int64. A fractional value is a
	// validation failure, never a truncation.
	Integer []string
	// DropBlank drops rows whose cells are all empty.
	DropBlank bool
	// Dedupe drops rows identical to an earlier row.
	Dedupe bool
}

// Error reports a cell that failed validation.
type Error struct {
	Region string
	Column string
	Row    int
	Value  any
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("cleansing %s: column %q row %d: %s (value %v)",
		e.Region, e.Column, e.Row, e.Reason, e.Value)
}

// Apply returns a cleansed copy of tbl per rule; tbl is not modified.
// String cells are trimmed, required columns enforced, and Numeric and
// Integer columns coerced. Any cell that cannot be coerced yields an
// *Error naming the region, column, and row.
func Apply(tbl *models.Table, rule Rule) (*models.Table, error) {
	require := columnIndexes(tbl, rule.Require)
	numeric := columnIndexes(tbl, rule.Numeric)
	integer := columnIndexes(tbl, rule.Integer)

	seen := make(map[string]bool)
	out := &models.Table{Columns: tbl.Columns}
	for i, row := range tbl.Rows {
		cells := make([]any, len(row))
		blank := true
		for c, v := range row {
			if s, ok := v.(string); ok {
				v = strings.TrimSpace(s)
				if v == "" {
					v = nil
				}
			}
			if v != nil {
				blank = false
			}
			cells[c] = v
		}
		if blank && rule.DropBlank {
			continue
		}
		if dropRow(cells, require) {
			continue
		}
		for _, c := range numeric {
			f, err := toFloat(cells[c])
			if err != nil {
				return nil, &Error{Region: rule.Region, Column: tbl.Columns[c], Row: i, Value: cells[c], Reason: err.Error()}
			}
			if cells[c] != nil {
				cells[c] = f
			}
		}
		for _, c := range integer {
			n, err := toInt(cells[c])
			if err != nil {
				return nil, &Error{Region: rule.Region, Column: tbl.Columns[c], Row: i, Value: cells[c], Reason: err.Error()}
			}
			if cells[c] != nil {
				cells[c] = n
			}
		}
		if rule.Dedupe {
			key := fmt.Sprintf("%v", cells)
			if seen[key] {
				continue
			}
			seen[key] = true
		}
		out.Rows = append(out.Rows, cells)
	}
	return out, nil
}

func columnIndexes(tbl *models.Table, names []string) []int {
	var out []int
	for _, n := range names {
		if i := tbl.Index(n); i >= 0 {
			out = append(out, i)
		}
	}
	return out
}

func dropRow(cells []any, require []int) bool {
	for _, c := range require {
		if c >= len(cells) || cells[c] == nil {
			return true
		}
	}
	return false
}

func toFloat(v any) (float64, error) {
	switch x := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return x, nil
	case int64:
		return float64(x), nil
	case string:
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0, fmt.Errorf("not a number")
		}
		return f, nil
	default:
		return 0, fmt.Errorf("not a number")
	}
}

func toInt(v any) (int64, error) {
	switch x := v.(type) {
	case nil:
		return 0, nil
	case int64:
		return x, nil
	case float64:
		if x != math.Trunc(x) {
			return 0, fmt.Errorf("not an integer")
		}
		return int64(x), nil
	case string:
		n, err := strconv.ParseInt(x, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("not an integer")
		}
		return n, nil
	default:
		return 0, fmt.Errorf("not an integer")
	}
}
