package model

import "time"

// Fulfillment statuses.
const (
	FulfillmentStatusNotStarted       = "not_started"
	FulfillmentStatusInProgress       = "in_progress"
	FulfillmentStatusFullyImplemented = "fully_implemented"
)

// Fulfillment records how completely a tenant satisfies one requirement.
// Exactly one record exists per (tenant, requirement) pair; records are
// created lazily on first access.
type Fulfillment struct {
	ID                    int64      `gorm:"column:id;primaryKey"`
	TenantID              int64      `gorm:"column:tenant_id"`
	RequirementID         int64      `gorm:"column:requirement_id"`
	Applicable            bool       `gorm:"column:applicable"`
	FulfillmentPercentage float64    `gorm:"column:fulfillment_percentage"`
	Status                string     `gorm:"column:status"`
	Justification         *string    `gorm:"column:justification"`
	LastReview            *time.Time `gorm:"column:last_review"`
	NextReview            *time.Time `gorm:"column:next_review"`
	CreatedAt             time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt             *time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Fulfillment) TableName() string {
	return "fulfillments"
}
