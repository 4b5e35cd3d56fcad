package model

import "time"

// Gap types.
const (
	GapTypeMissingControl        = "missing_control"
	GapTypePartialCoverage       = "partial_coverage"
	GapTypeScopeDifference       = "scope_difference"
	GapTypeAdditionalRequirement = "additional_requirement"
	GapTypeEvidenceGap           = "evidence_gap"
)

// Gap remediation statuses.
const (
	GapStatusIdentified = "identified"
	GapStatusPlanned    = "planned"
	GapStatusInProgress = "in_progress"
	GapStatusResolved   = "resolved"
	GapStatusWontFix    = "wont_fix"
)

// GapItem records a specific deficiency on a Mapping: what is missing to
// reach full coverage, how much it costs, and how far remediation has come.
// Resolved and wont_fix items stay retrievable but are excluded from
// outstanding-work aggregates.
type GapItem struct {
	ID                int64      `gorm:"column:id;primaryKey"`
	MappingID         int64      `gorm:"column:mapping_id"`
	GapType           string     `gorm:"column:gap_type"`
	Description       string     `gorm:"column:description"`
	Priority          string     `gorm:"column:priority"`
	PercentageImpact  int        `gorm:"column:percentage_impact"`
	EstimatedEffort   *int       `gorm:"column:estimated_effort"`
	Confidence        int        `gorm:"column:confidence"`
	Status            string     `gorm:"column:status"`
	RecommendedAction *string    `gorm:"column:recommended_action"`
	CreatedAt         time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         *time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (GapItem) TableName() string {
	return "gap_items"
}
