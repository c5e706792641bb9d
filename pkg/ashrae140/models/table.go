// Package models defines the data shapes shared by the extraction pipeline.
package models

import (
	"fmt"
	"strconv"
)

// Table is a rectangular region of typed cell values. Columns are
// positional until semantic names are assigned with SetColumns.
type Table struct {
	// Columns holds the semantic column names, empty until assigned.
	Columns []string
	// Rows holds the cell values. Every row has the same width; absent
	// cells are nil.
	Rows [][]any
	// Texts holds the verbatim cell text, same shape as Rows. Typing a
	// cell is lossy ("1.0" becomes 1), so readers populate Texts for
	// consumers that need the text exactly as written. Optional.
	Texts [][]string
}

// NewTable wraps rows in a Table. Rows are not copied.
func NewTable(rows [][]any) *Table {
	return &Table{Rows: rows}
}

// Width returns the table's column span.
func (t *Table) Width() int {
	if len(t.Columns) > 0 {
		return len(t.Columns)
	}
	if len(t.Rows) > 0 {
		return len(t.Rows[0])
	}
	return 0
}

// SetColumns assigns semantic names to the table's positional columns.
// The name count must match the column span exactly.
func (t *Table) SetColumns(names ...string) error {
	if len(t.Rows) > 0 && len(names) != len(t.Rows[0]) {
		return fmt.Errorf("expected %d columns, got %d", len(names), len(t.Rows[0]))
	}
	t.Columns = names
	return nil
}

// Index returns the position of a named column, or -1 if unassigned.
func (t *Table) Index(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Cell returns the value at (row, col), or nil when out of bounds.
func (t *Table) Cell(row, col int) any {
	if row < 0 || row >= len(t.Rows) {
		return nil
	}
	r := t.Rows[row]
	if col < 0 || col >= len(r) {
		return nil
	}
	return r[col]
}

// Text returns the verbatim cell text at (row, col). Tables read from a
// workbook keep the original text; for tables built without Texts, the
// typed value is rendered instead. Out-of-bounds positions yield "".
func (t *Table) Text(row, col int) string {
	if row >= 0 && row < len(t.Texts) {
		r := t.Texts[row]
		if col >= 0 && col < len(r) {
			return r[col]
		}
	}
	return formatValue(t.Cell(row, col))
}

func formatValue(v any) string {
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

// Select returns a new table holding only the given column positions, in
// the given order. Positions beyond the row width yield nil cells.
func (t *Table) Select(cols ...int) *Table {
	rows := make([][]any, len(t.Rows))
	for i, row := range t.Rows {
		sel := make([]any, len(cols))
		for j, c := range cols {
			if c >= 0 && c < len(row) {
				sel[j] = row[c]
			}
		}
		rows[i] = sel
	}
	return NewTable(rows)
}
