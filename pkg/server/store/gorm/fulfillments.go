package gorm

import (
	"time"

	"gorm.io/gorm"

	"github.com/complymap/complymap/pkg/model"
	"github.com/complymap/complymap/pkg/server/store"
)

// Ensure FulfillmentsStore implements store.FulfillmentsStore
var _ store.FulfillmentsStore = (*FulfillmentsStore)(nil)

// FulfillmentsStore implements store.FulfillmentsStore using GORM
type FulfillmentsStore struct {
	db *gorm.DB
}

// NewFulfillmentsStore creates a new FulfillmentsStore
func NewFulfillmentsStore(db *gorm.DB) *FulfillmentsStore {
	return &FulfillmentsStore{db: db}
}

const fulfillmentColumns = `
	f.id, f.tenant_id, f.requirement_id, f.applicable, f.fulfillment_percentage,
	f.status, f.justification, f.last_review, f.next_review, f.created_at, f.updated_at
`

// ListForTenantFramework returns the tenant's records for one framework's
// requirements
func (s *FulfillmentsStore) ListForTenantFramework(tenantID, frameworkID int64) ([]model.Fulfillment, error) {
	var fulfillments []model.Fulfillment
	result := s.db.Raw(`
		SELECT `+fulfillmentColumns+`
		FROM fulfillments f
		JOIN requirements r ON r.id = f.requirement_id
		WHERE f.tenant_id = ? AND r.framework_id = ?
		ORDER BY f.requirement_id
	`, tenantID, frameworkID).Scan(&fulfillments)
	return fulfillments, result.Error
}

// FetchFulfillment retrieves the record for a (tenant, requirement) pair
func (s *FulfillmentsStore) FetchFulfillment(tenantID, requirementID int64) (*model.Fulfillment, error) {
	var fulfillment model.Fulfillment
	result := s.db.Raw(`
		SELECT `+fulfillmentColumns+`
		FROM fulfillments f
		WHERE f.tenant_id = ? AND f.requirement_id = ?
	`, tenantID, requirementID).Scan(&fulfillment)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, store.ErrNotFound
	}
	return &fulfillment, nil
}

// CreateFulfillment inserts a record and fills in its generated ID
func (s *FulfillmentsStore) CreateFulfillment(fulfillment *model.Fulfillment) error {
	return s.db.Create(fulfillment).Error
}

// UpdateFulfillment persists changes to an existing record
func (s *FulfillmentsStore) UpdateFulfillment(fulfillment *model.Fulfillment) error {
	result := s.db.Exec(`
		UPDATE fulfillments
		SET applicable = ?, fulfillment_percentage = ?, status = ?, justification = ?,
			last_review = ?, next_review = ?, updated_at = NOW()
		WHERE id = ?
	`, fulfillment.Applicable, fulfillment.FulfillmentPercentage, fulfillment.Status,
		fulfillment.Justification, fulfillment.LastReview, fulfillment.NextReview, fulfillment.ID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// Stats aggregates the tenant's fulfillment records. Non-applicable
// requirements count as fully satisfied in the average.
func (s *FulfillmentsStore) Stats(tenantID int64) (*store.FulfillmentStats, error) {
	var stats store.FulfillmentStats
	result := s.db.Raw(`
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE applicable) AS applicable,
			COUNT(*) FILTER (WHERE NOT applicable) AS not_applicable,
			COUNT(*) FILTER (WHERE applicable AND status = 'fully_implemented') AS fully_implemented,
			COUNT(*) FILTER (WHERE applicable AND status = 'in_progress') AS in_progress,
			COUNT(*) FILTER (WHERE applicable AND status = 'not_started') AS not_started,
			COALESCE(AVG(CASE WHEN applicable THEN fulfillment_percentage ELSE 100 END), 0) AS average_fulfillment
		FROM fulfillments
		WHERE tenant_id = ?
	`, tenantID).Scan(&stats)
	if result.Error != nil {
		return nil, result.Error
	}
	return &stats, nil
}

// ListOverdue returns the tenant's records whose next review date has
// passed, soonest first
func (s *FulfillmentsStore) ListOverdue(tenantID int64, now time.Time) ([]model.Fulfillment, error) {
	var fulfillments []model.Fulfillment
	result := s.db.Raw(`
		SELECT `+fulfillmentColumns+`
		FROM fulfillments f
		WHERE f.tenant_id = ? AND f.next_review IS NOT NULL AND f.next_review < ?
		ORDER BY f.next_review
	`, tenantID, now).Scan(&fulfillments)
	return fulfillments, result.Error
}
