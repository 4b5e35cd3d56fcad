package store

import (
	"time"

	"github.com/complymap/complymap/pkg/model"
)

// FulfillmentStats summarizes a tenant's fulfillment records. The average
// counts non-applicable requirements as fully satisfied.
type FulfillmentStats struct {
	Total              int     `json:"total"`
	Applicable         int     `json:"applicable"`
	NotApplicable      int     `json:"not_applicable"`
	FullyImplemented   int     `json:"fully_implemented"`
	InProgress         int     `json:"in_progress"`
	NotStarted         int     `json:"not_started"`
	AverageFulfillment float64 `json:"average_fulfillment"`
}

// FulfillmentsStore abstracts per-tenant fulfillment records
type FulfillmentsStore interface {
	// ListForTenantFramework returns the tenant's fulfillment records
	// for one framework's requirements
	ListForTenantFramework(tenantID, frameworkID int64) ([]model.Fulfillment, error)

	// FetchFulfillment retrieves the record for a (tenant, requirement)
	// pair
	FetchFulfillment(tenantID, requirementID int64) (*model.Fulfillment, error)

	// CreateFulfillment inserts a record and fills in its generated ID
	CreateFulfillment(fulfillment *model.Fulfillment) error

	// UpdateFulfillment persists changes to an existing record
	UpdateFulfillment(fulfillment *model.Fulfillment) error

	// Stats aggregates the tenant's fulfillment records
	Stats(tenantID int64) (*FulfillmentStats, error)

	// ListOverdue returns the tenant's records whose next review date
	// has passed, soonest first
	ListOverdue(tenantID int64, now time.Time) ([]model.Fulfillment, error)
}
