package cleanse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bldgsim/ashrae140-go/pkg/ashrae140/models"
)

func namedTable(t *testing.T, names []string, rows [][]any) *models.Table {
	t.Helper()
	tbl := models.NewTable(rows)
	require.NoError(t, tbl.SetColumns(names...))
	return tbl
}

func TestApplyTrimsAndDropsBlankRows(t *testing.T) {
	tbl := namedTable(t, []string{"case", "value"}, [][]any{
		{"  600  ", 1.5},
		{nil, nil},
		{"   ", nil},
		{"900", 2.5},
	})

	out, err := Apply(tbl, Rule{Region: "r", DropBlank: true})
	require.NoError(t, err)

	require.Len(t, out.Rows, 2)
	assert.Equal(t, "600", out.Cell(0, 0))
	assert.Equal(t, "900", out.Cell(1, 0))
}

func TestApplyRequireDropsIncompleteRows(t *testing.T) {
	tbl := namedTable(t, []string{"case", "value"}, [][]any{
		{int64(600), 1.5},
		{nil, 9.9}, // no case id, layout padding
	})

	out, err := Apply(tbl, Rule{Region: "r", Require: []string{"case"}})
	require.NoError(t, err)
	require.Len(t, out.Rows, 1)
	assert.Equal(t, int64(600), out.Cell(0, 0))
}

func TestApplyDedupe(t *testing.T) {
	tbl := namedTable(t, []string{"case", "value"}, [][]any{
		{int64(600), 1.5},
		{int64(600), 1.5},
		{int64(600), 2.5},
	})

	out, err := Apply(tbl, Rule{Region: "r", Dedupe: true})
	require.NoError(t, err)
	assert.Len(t, out.Rows, 2)
}

func TestApplyNumericCoercion(t *testing.T) {
	tbl := namedTable(t, []string{"case", "value"}, [][]any{
		{int64(600), int64(3)},
		{int64(610), "4.5"},
		{int64(620), nil},
	})

	out, err := Apply(tbl, Rule{Region: "r", Numeric: []string{"value"}})
	require.NoError(t, err)
	assert.Equal(t, 3.0, out.Cell(0, 1))
	assert.Equal(t, 4.5, out.Cell(1, 1))
	assert.Nil(t, out.Cell(2, 1))
}

func TestApplyNumericFailure(t *testing.T) {
	tbl := namedTable(t, []string{"case", "value"}, [][]any{
		{int64(600), "n/a"},
	})

	_, err := Apply(tbl, Rule{Region: "zone_loads", Numeric: []string{"value"}})
	require.Error(t, err)

	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "zone_loads", cerr.Region)
	assert.Equal(t, "value", cerr.Column)
	assert.Equal(t, 0, cerr.Row)
}

func TestApplyIntegerCoercion(t *testing.T) {
	tbl := namedTable(t, []string{"bin", "hours"}, [][]any{
		{int64(-5), int64(10)},
		{int64(0), 20.0}, // integral float coerces, never truncates
	})

	out, err := Apply(tbl, Rule{Region: "bins", Integer: []string{"bin", "hours"}})
	require.NoError(t, err)
	assert.Equal(t, int64(10), out.Cell(0, 1))
	assert.Equal(t, int64(20), out.Cell(1, 1))
}

func TestApplyIntegerRejectsFractionsAndText(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"fractional float", 20.5},
		{"text", "ten"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := namedTable(t, []string{"bin", "hours"}, [][]any{
				{tt.value, int64(10)},
			})

			_, err := Apply(tbl, Rule{Region: "bins", Integer: []string{"bin"}})
			require.Error(t, err)

			var cerr *Error
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, "bin", cerr.Column)
		})
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	tbl := namedTable(t, []string{"case"}, [][]any{{"  600  "}})

	_, err := Apply(tbl, Rule{Region: "r"})
	require.NoError(t, err)
	assert.Equal(t, "  600  ", tbl.Cell(0, 0))
}
