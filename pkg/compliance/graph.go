package compliance

import (
	"fmt"

	"github.com/complymap/complymap/pkg/model"
)

// DefaultStrengthCeiling bounds mapping percentages at write time. An
// "exceeds" mapping may legitimately record more than 100 to signal
// over-compliance, but unbounded values are rejected.
const DefaultStrengthCeiling = 150.0

// ValidateStrength rejects mapping percentages outside [0, ceiling].
// Out-of-range values fail at write time; they are never clamped on read.
func ValidateStrength(percentage, ceiling float64) error {
	if percentage < 0 || percentage > ceiling {
		return fmt.Errorf("mapping percentage %.2f not in [0, %.0f]: %w", percentage, ceiling, ErrInvalidMappingStrength)
	}
	return nil
}

// Edge is one logical directed edge of the mapping graph. A bidirectional
// mapping expands into two edges of equal strength; Reversed marks the
// implied inverse.
type Edge struct {
	MappingID           int64
	SourceRequirementID int64
	TargetRequirementID int64
	Strength            float64
	Type                model.MappingType
	Reversed            bool
}

// MappingGraph is a read-oriented index over mapping edges, queryable by
// source requirement, target requirement, or framework pair. Strength
// values are taken as stored.
type MappingGraph struct {
	edges    []Edge
	bySource map[int64][]int
	byTarget map[int64][]int
}

func NewMappingGraph(mappings []model.Mapping) *MappingGraph {
	g := &MappingGraph{
		bySource: map[int64][]int{},
		byTarget: map[int64][]int{},
	}
	for _, m := range mappings {
		g.add(Edge{
			MappingID:           m.ID,
			SourceRequirementID: m.SourceRequirementID,
			TargetRequirementID: m.TargetRequirementID,
			Strength:            m.MappingPercentage,
			Type:                m.MappingType,
		})
		if m.Bidirectional {
			g.add(Edge{
				MappingID:           m.ID,
				SourceRequirementID: m.TargetRequirementID,
				TargetRequirementID: m.SourceRequirementID,
				Strength:            m.MappingPercentage,
				Type:                m.MappingType,
				Reversed:            true,
			})
		}
	}
	return g
}

func (g *MappingGraph) add(e Edge) {
	i := len(g.edges)
	g.edges = append(g.edges, e)
	g.bySource[e.SourceRequirementID] = append(g.bySource[e.SourceRequirementID], i)
	g.byTarget[e.TargetRequirementID] = append(g.byTarget[e.TargetRequirementID], i)
}

// EdgeCount returns the number of logical edges, counting both directions
// of a bidirectional mapping.
func (g *MappingGraph) EdgeCount() int {
	return len(g.edges)
}

// BySource returns all edges leaving a requirement.
func (g *MappingGraph) BySource(requirementID int64) []Edge {
	return g.collect(g.bySource[requirementID])
}

// ByTarget returns all edges arriving at a requirement.
func (g *MappingGraph) ByTarget(requirementID int64) []Edge {
	return g.collect(g.byTarget[requirementID])
}

func (g *MappingGraph) collect(indices []int) []Edge {
	out := make([]Edge, 0, len(indices))
	for _, i := range indices {
		out = append(out, g.edges[i])
	}
	return out
}

// EdgesBetween returns all edges whose source requirement is in sources
// and whose target requirement is in targets, in insertion order.
func (g *MappingGraph) EdgesBetween(sources, targets map[int64]struct{}) []Edge {
	var out []Edge
	for _, e := range g.edges {
		if _, ok := sources[e.SourceRequirementID]; !ok {
			continue
		}
		if _, ok := targets[e.TargetRequirementID]; !ok {
			continue
		}
		out = append(out, e)
	}
	return out
}

// RequirementIDSet builds the membership set used to restrict graph
// queries to one framework's requirements.
func RequirementIDSet(reqs []model.Requirement) map[int64]struct{} {
	set := make(map[int64]struct{}, len(reqs))
	for _, r := range reqs {
		set[r.ID] = struct{}{}
	}
	return set
}
