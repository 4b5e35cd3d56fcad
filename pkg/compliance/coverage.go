package compliance

import "github.com/complymap/complymap/pkg/model"

// Coverage strength buckets, applied to the capped per-requirement value.
const (
	strongCoverageFloor  = 100.0
	partialCoverageFloor = 50.0
)

// CoverageReport describes how completely mappings from a source framework
// cover a target framework's requirement set.
type CoverageReport struct {
	SourceFramework         string  `json:"source_framework"`
	TargetFramework         string  `json:"target_framework"`
	TotalTargetRequirements int     `json:"total_target_requirements"`
	CoveredRequirements     int     `json:"covered_requirements"`
	CoveragePercentage      float64 `json:"coverage_percentage"`
	StrongMappings          int     `json:"strong_mappings"`
	PartialMappings         int     `json:"partial_mappings"`
	WeakMappings            int     `json:"weak_mappings"`
}

// CalculateCoverage computes the coverage report for a framework pair.
// Each target requirement keeps the single best incoming edge strength,
// capped at 100 before aggregation. Requirements with no incoming mapping
// contribute zero. A target framework with zero requirements yields an
// all-zero report rather than a division error.
func CalculateCoverage(source, target model.Framework, sourceReqs, targetReqs []model.Requirement, graph *MappingGraph) CoverageReport {
	report := CoverageReport{
		SourceFramework:         source.Code,
		TargetFramework:         target.Code,
		TotalTargetRequirements: len(targetReqs),
	}

	edges := graph.EdgesBetween(RequirementIDSet(sourceReqs), RequirementIDSet(targetReqs))
	best := NewBestOf()
	for _, e := range edges {
		strength := e.Strength
		if strength > 100 {
			strength = 100
		}
		best.Offer(e.TargetRequirementID, strength)
	}

	report.CoveredRequirements = best.Len()
	if len(targetReqs) > 0 {
		report.CoveragePercentage = best.Sum() / float64(len(targetReqs))
	}
	for _, key := range best.Keys() {
		v, _ := best.Value(key)
		switch {
		case v >= strongCoverageFloor:
			report.StrongMappings++
		case v >= partialCoverageFloor:
			report.PartialMappings++
		default:
			report.WeakMappings++
		}
	}
	return report
}
