package model

import "time"

// ScopeDefault is the sentinel scope naming a tenant's global default rule.
const ScopeDefault = "default"

// GovernanceRule assigns a governance model to a tenant for a policy scope.
// ScopeID optionally narrows the rule to a single object within the scope.
// At most one rule exists per (tenant, scope, scopeID) triple, the
// scopeID = NULL "scope default" included.
type GovernanceRule struct {
	ID              int64           `gorm:"column:id;primaryKey"`
	TenantID        int64           `gorm:"column:tenant_id"`
	Scope           string          `gorm:"column:scope"`
	ScopeID         *string         `gorm:"column:scope_id"`
	GovernanceModel GovernanceModel `gorm:"column:governance_model"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       *time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

func (GovernanceRule) TableName() string {
	return "governance_rules"
}
