package store

import "github.com/complymap/complymap/pkg/model"

// FrameworksStore abstracts framework and requirement reference data
type FrameworksStore interface {
	// ListFrameworks returns all frameworks
	ListFrameworks() ([]model.Framework, error)

	// FetchFrameworkByCode retrieves a single framework by code
	FetchFrameworkByCode(code string) (*model.Framework, error)

	// ListRequirements returns a framework's requirements in insertion
	// order; callers apply natural ordering
	ListRequirements(frameworkID int64) ([]model.Requirement, error)

	// FetchRequirement retrieves one requirement of a framework by its
	// requirement identifier
	FetchRequirement(frameworkID int64, requirementID string) (*model.Requirement, error)

	// UpsertFramework creates or updates a framework by code and fills
	// in its ID
	UpsertFramework(framework *model.Framework) error

	// UpsertRequirement creates or updates a requirement by
	// (framework, requirement identifier) and fills in its ID
	UpsertRequirement(requirement *model.Requirement) error
}
