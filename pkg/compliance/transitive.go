package compliance

import "github.com/complymap/complymap/pkg/model"

// TransitiveContribution is the policy for how much benefit a fulfilled
// source requirement grants to a target requirement through one mapping
// edge. The contribution can exceed neither the source fulfillment nor the
// mapping strength, so it is the minimum of the two. An alternative
// multiplicative policy (fulfillment * strength / 100) was considered and
// rejected as harder to audit; changing the policy means changing only
// this function.
func TransitiveContribution(sourceFulfillment, mappingStrength float64) float64 {
	if sourceFulfillment < 0 {
		sourceFulfillment = 0
	}
	if mappingStrength < 0 {
		mappingStrength = 0
	}
	if sourceFulfillment < mappingStrength {
		return sourceFulfillment
	}
	return mappingStrength
}

// TransitiveEdgeContribution records one contributing edge for drill-down.
type TransitiveEdgeContribution struct {
	MappingID         int64   `json:"mapping_id"`
	SourceRequirement string  `json:"source_requirement"`
	TargetRequirement string  `json:"target_requirement"`
	MappingStrength   float64 `json:"mapping_strength"`
	SourceFulfillment float64 `json:"source_fulfillment"`
	Contribution      float64 `json:"contribution"`
	Retained          bool    `json:"retained"`
}

// TransitiveReport describes how a tenant's fulfillment of one framework
// propagates across mapping edges toward another framework.
type TransitiveReport struct {
	SourceFramework          string                       `json:"source_framework"`
	TargetFramework          string                       `json:"target_framework"`
	TenantCode               string                       `json:"tenant_code"`
	RequirementsHelped       int                          `json:"requirements_helped"`
	TotalBenefit             float64                      `json:"total_benefit"`
	AverageTransitiveBenefit float64                      `json:"average_transitive_benefit"`
	Contributions            []TransitiveEdgeContribution `json:"contributions"`
}

// CalculateTransitiveBenefit propagates a tenant's fulfillment percentages
// for the source framework across mapping edges into the target framework.
// Each target requirement retains only the best contribution across its
// incoming edges. fulfillments maps source requirement IDs to the tenant's
// fulfillment percentage within the aggregation scope; requirements with
// no entry contribute nothing. Inputs must come from one consistent
// snapshot.
func CalculateTransitiveBenefit(source, target model.Framework, tenant model.Tenant,
	sourceReqs, targetReqs []model.Requirement, graph *MappingGraph,
	fulfillments map[int64]float64) TransitiveReport {

	report := TransitiveReport{
		SourceFramework: source.Code,
		TargetFramework: target.Code,
		TenantCode:      tenant.Code,
		Contributions:   []TransitiveEdgeContribution{},
	}

	reqIDs := make(map[int64]string, len(sourceReqs)+len(targetReqs))
	for _, r := range sourceReqs {
		reqIDs[r.ID] = r.RequirementID
	}
	for _, r := range targetReqs {
		reqIDs[r.ID] = r.RequirementID
	}

	edges := graph.EdgesBetween(RequirementIDSet(sourceReqs), RequirementIDSet(targetReqs))
	best := NewBestOf()
	targetIDs := make([]int64, 0, len(edges))
	for _, e := range edges {
		fulfillment, ok := fulfillments[e.SourceRequirementID]
		if !ok {
			continue
		}
		contribution := TransitiveContribution(fulfillment, e.Strength)
		if contribution <= 0 {
			continue
		}
		best.Offer(e.TargetRequirementID, contribution)
		targetIDs = append(targetIDs, e.TargetRequirementID)
		report.Contributions = append(report.Contributions, TransitiveEdgeContribution{
			MappingID:         e.MappingID,
			SourceRequirement: reqIDs[e.SourceRequirementID],
			TargetRequirement: reqIDs[e.TargetRequirementID],
			MappingStrength:   e.Strength,
			SourceFulfillment: fulfillment,
			Contribution:      contribution,
		})
	}
	// Marking retained edges only after the reduction settles; an early
	// edge can be displaced by a later, stronger one.
	for i := range report.Contributions {
		retained, _ := best.Value(targetIDs[i])
		report.Contributions[i].Retained = report.Contributions[i].Contribution >= retained
	}

	report.RequirementsHelped = best.Len()
	report.TotalBenefit = best.Sum()
	if len(targetReqs) > 0 {
		report.AverageTransitiveBenefit = report.TotalBenefit / float64(len(targetReqs))
	}
	return report
}
