package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/complymap/complymap/pkg/model"
)

func TestAggregateFulfillments(t *testing.T) {
	own := []model.Fulfillment{
		{ID: 1, TenantID: 2, RequirementID: 10, Applicable: true, FulfillmentPercentage: 40},
	}
	parent := []model.Fulfillment{
		{ID: 2, TenantID: 1, RequirementID: 10, Applicable: true, FulfillmentPercentage: 90},
		{ID: 3, TenantID: 1, RequirementID: 11, Applicable: true, FulfillmentPercentage: 70},
	}

	merged := AggregateFulfillments(own, parent)

	require.Len(t, merged, 2)
	// The tenant's own record wins over the ancestor's.
	assert.Equal(t, 40.0, merged[10].FulfillmentPercentage)
	assert.Equal(t, int64(2), merged[10].TenantID)
	assert.Equal(t, 70.0, merged[11].FulfillmentPercentage)
}

func TestFulfillmentPercentages(t *testing.T) {
	merged := map[int64]model.Fulfillment{
		10: {RequirementID: 10, Applicable: true, FulfillmentPercentage: 80},
		11: {RequirementID: 11, Applicable: false, FulfillmentPercentage: 100},
	}

	percentages := FulfillmentPercentages(merged)

	require.Len(t, percentages, 1)
	assert.Equal(t, 80.0, percentages[10])
}
