package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeDisjointKeys(t *testing.T) {
	m := Mapping{"600": Mapping{"annual_heating_MWh": 4.3}}

	require.NoError(t, m.Merge(Mapping{"900": Mapping{"annual_heating_MWh": 1.2}}))
	require.NoError(t, m.Merge(Mapping{"600": Mapping{"annual_cooling_MWh": 6.1}}))

	assert.Equal(t, Mapping{
		"600": Mapping{"annual_heating_MWh": 4.3, "annual_cooling_MWh": 6.1},
		"900": Mapping{"annual_heating_MWh": 1.2},
	}, m)
}

func TestMergeEqualLeafIsNotAConflict(t *testing.T) {
	m := Mapping{"600": Mapping{"C": 1.5}}
	require.NoError(t, m.Merge(Mapping{"600": Mapping{"C": 1.5}}))
	assert.Equal(t, 1.5, m["600"].(Mapping)["C"])
}

func TestMergeConflict(t *testing.T) {
	m := Mapping{"600": Mapping{"C": 1.5}}

	err := m.Merge(Mapping{"600": Mapping{"C": 2.5}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMergeConflict)
	assert.Contains(t, err.Error(), "/600/C")
}

func TestMergeConflictMapVersusScalar(t *testing.T) {
	m := Mapping{"600": Mapping{"Surface": Mapping{"North": 1.0}}}

	err := m.Merge(Mapping{"600": Mapping{"Surface": 2.0}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMergeConflict)
}

func TestMarshalJSONStringifiesKeys(t *testing.T) {
	m := Mapping{
		"900FF": Mapping{
			"temperature_bin_c": Mapping{
				int64(-5): Mapping{"number_of_hours": int64(10)},
				int64(0):  Mapping{"number_of_hours": int64(20)},
			},
		},
	}

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"900FF":{"temperature_bin_c":{"-5":{"number_of_hours":10},"0":{"number_of_hours":20}}}}`,
		string(data))
}
