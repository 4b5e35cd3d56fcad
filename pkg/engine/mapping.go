package engine

import (
	"fmt"

	"github.com/complymap/complymap/pkg/audit"
	"github.com/complymap/complymap/pkg/compliance"
	"github.com/complymap/complymap/pkg/model"
)

// MappingRequest identifies a mapping edge by framework codes and
// requirement identifiers.
type MappingRequest struct {
	SourceFramework   string
	SourceRequirement string
	TargetFramework   string
	TargetRequirement string
	MappingPercentage float64
	MappingType       model.MappingType
	Bidirectional     bool
	Notes             *string
}

// CreateMapping validates and stores a new mapping edge. Out-of-range
// strengths are rejected here, at write time, never clamped on read.
func (e *Engine) CreateMapping(req MappingRequest, ceiling float64) (*model.Mapping, error) {
	if err := compliance.ValidateStrength(req.MappingPercentage, ceiling); err != nil {
		audit.Log(audit.MappingWriteEvent{
			SourceRequirement: req.SourceRequirement,
			TargetRequirement: req.TargetRequirement,
			MappingPercentage: req.MappingPercentage,
			MappingType:       req.MappingType.String(),
			Bidirectional:     req.Bidirectional,
			StrengthRejected:  true,
			ErrorMessage:      err.Error(),
		})
		return nil, err
	}

	source, err := e.fetchRequirement(req.SourceFramework, req.SourceRequirement)
	if err != nil {
		return nil, err
	}
	target, err := e.fetchRequirement(req.TargetFramework, req.TargetRequirement)
	if err != nil {
		return nil, err
	}

	mapping := &model.Mapping{
		SourceRequirementID: source.ID,
		TargetRequirementID: target.ID,
		MappingPercentage:   req.MappingPercentage,
		MappingType:         req.MappingType,
		Bidirectional:       req.Bidirectional,
		Notes:               req.Notes,
	}
	if err := e.stores.Mappings.CreateMapping(mapping); err != nil {
		audit.Log(audit.MappingWriteEvent{
			SourceRequirement: req.SourceRequirement,
			TargetRequirement: req.TargetRequirement,
			MappingPercentage: req.MappingPercentage,
			MappingType:       req.MappingType.String(),
			Bidirectional:     req.Bidirectional,
			ErrorMessage:      err.Error(),
		})
		return nil, err
	}

	audit.Log(audit.MappingWriteEvent{
		SourceRequirement: req.SourceRequirement,
		TargetRequirement: req.TargetRequirement,
		MappingPercentage: req.MappingPercentage,
		MappingType:       req.MappingType.String(),
		Bidirectional:     req.Bidirectional,
		Success:           true,
	})
	return mapping, nil
}

func (e *Engine) fetchRequirement(frameworkCode, requirementID string) (*model.Requirement, error) {
	framework, err := e.stores.Frameworks.FetchFrameworkByCode(frameworkCode)
	if err != nil {
		return nil, fmt.Errorf("framework %q: %w", frameworkCode, err)
	}
	requirement, err := e.stores.Frameworks.FetchRequirement(framework.ID, requirementID)
	if err != nil {
		return nil, fmt.Errorf("requirement %s/%s: %w", frameworkCode, requirementID, err)
	}
	return requirement, nil
}
