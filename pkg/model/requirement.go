package model

import "time"

// Requirement priority tiers.
const (
	PriorityCritical = "critical"
	PriorityHigh     = "high"
	PriorityMedium   = "medium"
	PriorityLow      = "low"
)

// Requirement types.
const (
	RequirementTypeDetailed = "detailed"
	RequirementTypeSummary  = "summary"
)

// Requirement is an individual obligation within a Framework. RequirementID
// is the stable identifier within the framework (e.g. "A.5.1" or "5.10") and
// follows a natural ordering convention, not a lexicographic one.
type Requirement struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	FrameworkID   int64     `gorm:"column:framework_id"`
	RequirementID string    `gorm:"column:requirement_id"`
	Title         string    `gorm:"column:title"`
	Priority      string    `gorm:"column:priority"`
	ReqType       string    `gorm:"column:req_type"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Requirement) TableName() string {
	return "requirements"
}
