package model

import "time"

// Tenant represents an organizational unit. Tenants form a tree via ParentID;
// a nil ParentID marks a root. Tenants are never hard-deleted while children
// or data reference them.
type Tenant struct {
	ID              int64      `gorm:"column:id;primaryKey"`
	Code            string     `gorm:"column:code;uniqueIndex"`
	Name            string     `gorm:"column:name"`
	ParentID        *int64     `gorm:"column:parent_id"`
	IsActive        bool       `gorm:"column:is_active"`
	CorporateParent bool       `gorm:"column:corporate_parent"`
	CreatedAt       time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       *time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Tenant) TableName() string {
	return "tenants"
}
