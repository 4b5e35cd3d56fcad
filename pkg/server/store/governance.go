package store

import "github.com/complymap/complymap/pkg/model"

// GovernanceStore abstracts governance rule storage
type GovernanceStore interface {
	// ListRules returns every governance rule; resolvers are built from
	// a full scan
	ListRules() ([]model.GovernanceRule, error)

	// ListRulesForTenant returns all rules belonging to one tenant
	ListRulesForTenant(tenantID int64) ([]model.GovernanceRule, error)

	// UpsertRule creates or replaces the rule for the rule's
	// (tenant, scope, scopeID) triple
	UpsertRule(rule *model.GovernanceRule) error
}
