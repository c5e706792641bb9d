package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSchema52A(t *testing.T) {
	schema, err := ResolveSchema(Section52A, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{
		RegionIdentifyingInformation,
		RegionConditionedZoneLoads,
		RegionSolarIncident,
		RegionSolarUnshaded,
		RegionSolarShaded,
		RegionSkyTemperature,
		RegionTemperatureBins,
		RegionFreeFloatTemperatures,
		RegionMonthlyZoneLoads,
	}, schema.Regions())

	desc, ok := schema.Lookup(RegionConditionedZoneLoads)
	require.True(t, ok)
	assert.Equal(t, RegionDescriptor{Sheet: "YourData", SkipRows: 68, Columns: "B:L", NumRows: 46}, desc)

	desc, ok = schema.Lookup(RegionIdentifyingInformation)
	require.True(t, ok)
	assert.True(t, desc.Raw)
	assert.Equal(t, 60, desc.SkipRows)
}

func TestResolveSchema52B(t *testing.T) {
	schema, err := ResolveSchema(Section52B, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{RegionIdentifyingInformation, RegionSteadyStateCases}, schema.Regions())

	desc, ok := schema.Lookup(RegionSteadyStateCases)
	require.True(t, ok)
	assert.Equal(t, RegionDescriptor{Sheet: "YourData", SkipRows: 57, Columns: "D:H", NumRows: 6, Raw: true}, desc)
}

func TestResolveSchemaUnsupportedSection(t *testing.T) {
	_, err := ResolveSchema(Section("5-2C"), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedSection)

	// An empty override must not bypass the section check.
	_, err = ResolveSchema(Section("5-2C"), NewSchema())
	assert.ErrorIs(t, err, ErrUnsupportedSection)
}

func TestResolveSchemaOverride(t *testing.T) {
	override := NewSchema().
		Add("custom_region", RegionDescriptor{Sheet: "Data", SkipRows: 1, Columns: "A:B", NumRows: 2})

	// A non-empty override is used verbatim, even for an unrecognized
	// section tag.
	schema, err := ResolveSchema(Section("bogus"), override)
	require.NoError(t, err)
	assert.Same(t, override, schema)
	assert.Equal(t, []string{"custom_region"}, schema.Regions())
}

func TestSchemaOrderAndOverwrite(t *testing.T) {
	s := NewSchema().
		Add("a", RegionDescriptor{NumRows: 1}).
		Add("b", RegionDescriptor{NumRows: 2}).
		Add("a", RegionDescriptor{NumRows: 3})

	assert.Equal(t, []string{"a", "b"}, s.Regions())
	assert.Equal(t, 2, s.Len())

	d, ok := s.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, 3, d.NumRows)

	_, ok = s.Lookup("missing")
	assert.False(t, ok)
}
