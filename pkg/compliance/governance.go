package compliance

import (
	"fmt"

	"github.com/complymap/complymap/pkg/model"
)

type ruleKey struct {
	tenantID   int64
	scope      string
	scopeID    string
	hasScopeID bool
}

// GovernanceResolver answers which governance rule applies to a tenant for
// a given policy scope. Resolution falls back through three levels, first
// match wins: the exact (scope, scopeID) rule, then the scope default
// (scopeID absent), then the tenant's global default (scope "default").
// Resolution never cascades across tenants; pushing a parent's rule down
// is a separate, explicit propagation action.
type GovernanceResolver struct {
	rules map[ruleKey]model.GovernanceRule
}

func NewGovernanceResolver(rules []model.GovernanceRule) *GovernanceResolver {
	r := &GovernanceResolver{rules: make(map[ruleKey]model.GovernanceRule, len(rules))}
	for _, rule := range rules {
		key := ruleKey{tenantID: rule.TenantID, scope: rule.Scope}
		if rule.ScopeID != nil {
			key.scopeID = *rule.ScopeID
			key.hasScopeID = true
		}
		r.rules[key] = rule
	}
	return r
}

// Resolve returns the governance rule in effect for the tenant and scope.
// When no rule matches at any fallback level it returns
// ErrNoGovernanceConfigured; the caller decides the fallback policy.
func (r *GovernanceResolver) Resolve(tenantID int64, scope string, scopeID *string) (model.GovernanceRule, error) {
	if scopeID != nil {
		if rule, ok := r.rules[ruleKey{tenantID: tenantID, scope: scope, scopeID: *scopeID, hasScopeID: true}]; ok {
			return rule, nil
		}
	}
	if rule, ok := r.rules[ruleKey{tenantID: tenantID, scope: scope}]; ok {
		return rule, nil
	}
	if rule, ok := r.rules[ruleKey{tenantID: tenantID, scope: model.ScopeDefault}]; ok {
		return rule, nil
	}
	return model.GovernanceRule{}, fmt.Errorf("tenant %d scope %q: %w", tenantID, scope, ErrNoGovernanceConfigured)
}

// HierarchicalSubsidiaries returns the direct children of parent whose own
// resolved rule for (scope, scopeID) is hierarchical. These are the
// tenants that mirror a change pushed down from the parent; children with
// no configured rule are not assumed hierarchical.
func (r *GovernanceResolver) HierarchicalSubsidiaries(hierarchy *HierarchyIndex, parentID int64, scope string, scopeID *string) []model.Tenant {
	var out []model.Tenant
	for _, child := range hierarchy.Children(parentID) {
		rule, err := r.Resolve(child.ID, scope, scopeID)
		if err != nil {
			continue
		}
		if rule.GovernanceModel == model.GovernanceModelHierarchical {
			out = append(out, child)
		}
	}
	return out
}
