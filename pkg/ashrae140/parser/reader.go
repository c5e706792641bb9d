package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/bldgsim/ashrae140-go/pkg/ashrae140/models"
)

// ReadRegion slices one rectangular region out of a workbook. The result
// always has exactly desc.NumRows rows spanning the descriptor's column
// range; cells absent from the sheet are nil. No interpretation beyond
// cell typing is performed.
func ReadRegion(f *excelize.File, desc RegionDescriptor) (*models.Table, error) {
	startCol, endCol, err := columnSpan(desc.Columns)
	if err != nil {
		return nil, err
	}
	rows, err := f.GetRows(desc.Sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", desc.Sheet, err)
	}

	start := desc.SkipRows
	if !desc.Raw {
		// Consume the in-sheet header row; extractors assign their own
		// column names.
		start++
	}

	span := endCol - startCol + 1
	out := make([][]any, desc.NumRows)
	texts := make([][]string, desc.NumRows)
	for i := 0; i < desc.NumRows; i++ {
		cells := make([]any, span)
		raw := make([]string, span)
		if rowIdx := start + i; rowIdx < len(rows) {
			row := rows[rowIdx]
			for c := 0; c < span; c++ {
				if srcIdx := startCol - 1 + c; srcIdx < len(row) && row[srcIdx] != "" {
					cells[c] = parseValue(row[srcIdx])
					raw[c] = row[srcIdx]
				}
			}
		}
		out[i] = cells
		texts[i] = raw
	}
	return &models.Table{Rows: out, Texts: texts}, nil
}

// columnSpan resolves an Excel column range like "B:L" to 1-based column
// numbers.
func columnSpan(r string) (int, int, error) {
	first, second, ok := strings.Cut(r, ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid column range %q", r)
	}
	start, err := excelize.ColumnNameToNumber(first)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid column range %q: %w", r, err)
	}
	end, err := excelize.ColumnNameToNumber(second)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid column range %q: %w", r, err)
	}
	if end < start {
		return 0, 0, fmt.Errorf("invalid column range %q: end before start", r)
	}
	return start, end, nil
}

// parseValue types a raw cell string.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
