package model

import "time"

// Mapping is a directed edge from a source requirement to a target
// requirement, usually across frameworks. MappingPercentage records how much
// of the target the source covers; values above 100 are legal for "exceeds"
// mappings, up to the write-time ceiling. Bidirectional mappings imply the
// inverse edge with equal strength.
type Mapping struct {
	ID                  int64       `gorm:"column:id;primaryKey"`
	SourceRequirementID int64       `gorm:"column:source_requirement_id"`
	TargetRequirementID int64       `gorm:"column:target_requirement_id"`
	MappingPercentage   float64     `gorm:"column:mapping_percentage"`
	MappingType         MappingType `gorm:"column:mapping_type"`
	Bidirectional       bool        `gorm:"column:bidirectional"`
	Notes               *string     `gorm:"column:notes"`
	CreatedAt           time.Time   `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt           *time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (Mapping) TableName() string {
	return "mappings"
}
