package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/complymap/complymap/pkg/model"
)

func TestValidateStrength(t *testing.T) {
	assert.NoError(t, ValidateStrength(0, DefaultStrengthCeiling))
	assert.NoError(t, ValidateStrength(100, DefaultStrengthCeiling))
	assert.NoError(t, ValidateStrength(150, DefaultStrengthCeiling))
	assert.ErrorIs(t, ValidateStrength(-1, DefaultStrengthCeiling), ErrInvalidMappingStrength)
	assert.ErrorIs(t, ValidateStrength(150.5, DefaultStrengthCeiling), ErrInvalidMappingStrength)
}

func TestMappingGraph(t *testing.T) {
	graph := NewMappingGraph([]model.Mapping{
		{ID: 1, SourceRequirementID: 10, TargetRequirementID: 20, MappingPercentage: 100, MappingType: model.MappingTypeFull},
		{ID: 2, SourceRequirementID: 10, TargetRequirementID: 21, MappingPercentage: 50, MappingType: model.MappingTypePartial},
		{ID: 3, SourceRequirementID: 11, TargetRequirementID: 20, MappingPercentage: 80, MappingType: model.MappingTypePartial, Bidirectional: true},
	})

	t.Run("bidirectional mappings expand into two edges", func(t *testing.T) {
		assert.Equal(t, 4, graph.EdgeCount())

		reverse := graph.BySource(20)
		require.Len(t, reverse, 1)
		assert.Equal(t, int64(3), reverse[0].MappingID)
		assert.Equal(t, int64(11), reverse[0].TargetRequirementID)
		assert.Equal(t, 80.0, reverse[0].Strength)
		assert.True(t, reverse[0].Reversed)
	})

	t.Run("queries by source and target", func(t *testing.T) {
		assert.Len(t, graph.BySource(10), 2)
		assert.Len(t, graph.ByTarget(20), 2)
		assert.Empty(t, graph.BySource(99))
	})

	t.Run("restricts edges to a framework pair", func(t *testing.T) {
		sources := map[int64]struct{}{10: {}, 11: {}}
		targets := map[int64]struct{}{20: {}, 21: {}}
		assert.Len(t, graph.EdgesBetween(sources, targets), 3)

		// The implied reverse edge only appears when the direction fits.
		edges := graph.EdgesBetween(targets, sources)
		require.Len(t, edges, 1)
		assert.True(t, edges[0].Reversed)
	})
}
