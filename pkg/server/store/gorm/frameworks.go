package gorm

import (
	"gorm.io/gorm"

	"github.com/complymap/complymap/pkg/model"
	"github.com/complymap/complymap/pkg/server/store"
)

// Ensure FrameworksStore implements store.FrameworksStore
var _ store.FrameworksStore = (*FrameworksStore)(nil)

// FrameworksStore implements store.FrameworksStore using GORM
type FrameworksStore struct {
	db *gorm.DB
}

// NewFrameworksStore creates a new FrameworksStore
func NewFrameworksStore(db *gorm.DB) *FrameworksStore {
	return &FrameworksStore{db: db}
}

// ListFrameworks returns all frameworks ordered by code
func (s *FrameworksStore) ListFrameworks() ([]model.Framework, error) {
	var frameworks []model.Framework
	result := s.db.Raw(`
		SELECT id, code, name, version, industry, mandatory, active, created_at
		FROM frameworks
		ORDER BY code
	`).Scan(&frameworks)
	return frameworks, result.Error
}

// FetchFrameworkByCode retrieves a single framework by code
func (s *FrameworksStore) FetchFrameworkByCode(code string) (*model.Framework, error) {
	var framework model.Framework
	result := s.db.Raw(`
		SELECT id, code, name, version, industry, mandatory, active, created_at
		FROM frameworks
		WHERE code = ?
	`, code).Scan(&framework)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, store.ErrNotFound
	}
	return &framework, nil
}

// ListRequirements returns a framework's requirements
func (s *FrameworksStore) ListRequirements(frameworkID int64) ([]model.Requirement, error) {
	var requirements []model.Requirement
	result := s.db.Raw(`
		SELECT id, framework_id, requirement_id, title, priority, req_type, created_at
		FROM requirements
		WHERE framework_id = ?
		ORDER BY id
	`, frameworkID).Scan(&requirements)
	return requirements, result.Error
}

// FetchRequirement retrieves one requirement by its identifier within a
// framework
func (s *FrameworksStore) FetchRequirement(frameworkID int64, requirementID string) (*model.Requirement, error) {
	var requirement model.Requirement
	result := s.db.Raw(`
		SELECT id, framework_id, requirement_id, title, priority, req_type, created_at
		FROM requirements
		WHERE framework_id = ? AND requirement_id = ?
	`, frameworkID, requirementID).Scan(&requirement)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, store.ErrNotFound
	}
	return &requirement, nil
}

// UpsertFramework creates or updates a framework by code
func (s *FrameworksStore) UpsertFramework(framework *model.Framework) error {
	result := s.db.Raw(`
		INSERT INTO frameworks (code, name, version, industry, mandatory, active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, NOW())
		ON CONFLICT (code) DO UPDATE SET
			name = EXCLUDED.name,
			version = EXCLUDED.version,
			industry = EXCLUDED.industry,
			mandatory = EXCLUDED.mandatory,
			active = EXCLUDED.active
		RETURNING id
	`, framework.Code, framework.Name, framework.Version, framework.Industry,
		framework.Mandatory, framework.Active).Scan(&framework.ID)
	return result.Error
}

// UpsertRequirement creates or updates a requirement by
// (framework, requirement identifier)
func (s *FrameworksStore) UpsertRequirement(requirement *model.Requirement) error {
	result := s.db.Raw(`
		INSERT INTO requirements (framework_id, requirement_id, title, priority, req_type, created_at)
		VALUES (?, ?, ?, ?, ?, NOW())
		ON CONFLICT (framework_id, requirement_id) DO UPDATE SET
			title = EXCLUDED.title,
			priority = EXCLUDED.priority,
			req_type = EXCLUDED.req_type
		RETURNING id
	`, requirement.FrameworkID, requirement.RequirementID, requirement.Title,
		requirement.Priority, requirement.ReqType).Scan(&requirement.ID)
	return result.Error
}
