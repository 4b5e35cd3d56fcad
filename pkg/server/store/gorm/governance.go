package gorm

import (
	"gorm.io/gorm"

	"github.com/complymap/complymap/pkg/model"
	"github.com/complymap/complymap/pkg/server/store"
)

// Ensure GovernanceStore implements store.GovernanceStore
var _ store.GovernanceStore = (*GovernanceStore)(nil)

// GovernanceStore implements store.GovernanceStore using GORM
type GovernanceStore struct {
	db *gorm.DB
}

// NewGovernanceStore creates a new GovernanceStore
func NewGovernanceStore(db *gorm.DB) *GovernanceStore {
	return &GovernanceStore{db: db}
}

// ListRules returns every governance rule
func (s *GovernanceStore) ListRules() ([]model.GovernanceRule, error) {
	var rules []model.GovernanceRule
	result := s.db.Raw(`
		SELECT id, tenant_id, scope, scope_id, governance_model, created_at, updated_at
		FROM governance_rules
		ORDER BY id
	`).Scan(&rules)
	return rules, result.Error
}

// ListRulesForTenant returns all rules belonging to one tenant
func (s *GovernanceStore) ListRulesForTenant(tenantID int64) ([]model.GovernanceRule, error) {
	var rules []model.GovernanceRule
	result := s.db.Raw(`
		SELECT id, tenant_id, scope, scope_id, governance_model, created_at, updated_at
		FROM governance_rules
		WHERE tenant_id = ?
		ORDER BY scope, scope_id
	`, tenantID).Scan(&rules)
	return rules, result.Error
}

// UpsertRule creates or replaces the rule for the rule's
// (tenant, scope, scopeID) triple. At most one rule may exist per triple,
// including the scopeID-less scope default.
func (s *GovernanceStore) UpsertRule(rule *model.GovernanceRule) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var existingID int64
		result := tx.Raw(`
			SELECT id FROM governance_rules
			WHERE tenant_id = ? AND scope = ? AND scope_id IS NOT DISTINCT FROM ?
		`, rule.TenantID, rule.Scope, rule.ScopeID).Scan(&existingID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			rule.ID = existingID
			return tx.Exec(`
				UPDATE governance_rules SET governance_model = ?, updated_at = NOW() WHERE id = ?
			`, rule.GovernanceModel, existingID).Error
		}
		return tx.Create(rule).Error
	})
}
