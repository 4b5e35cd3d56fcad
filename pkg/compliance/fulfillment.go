package compliance

import "github.com/complymap/complymap/pkg/model"

// AggregateFulfillments merges fulfillment records across a tenant chain
// for hierarchical reporting. Pass the tenant's own records first, then
// each ancestor's from nearest to root; the nearest record wins per
// requirement. Non-hierarchical tenants pass a single set.
func AggregateFulfillments(chain ...[]model.Fulfillment) map[int64]model.Fulfillment {
	merged := map[int64]model.Fulfillment{}
	for _, records := range chain {
		for _, f := range records {
			if _, ok := merged[f.RequirementID]; !ok {
				merged[f.RequirementID] = f
			}
		}
	}
	return merged
}

// FulfillmentPercentages extracts the percentages that feed transitive
// benefit calculation. Requirements marked not applicable are left out;
// they grant no transitive benefit.
func FulfillmentPercentages(records map[int64]model.Fulfillment) map[int64]float64 {
	out := make(map[int64]float64, len(records))
	for reqID, f := range records {
		if !f.Applicable {
			continue
		}
		out[reqID] = f.FulfillmentPercentage
	}
	return out
}
