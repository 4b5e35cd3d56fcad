package engine

import (
	"fmt"

	"github.com/complymap/complymap/pkg/audit"
	"github.com/complymap/complymap/pkg/compliance"
	"github.com/complymap/complymap/pkg/model"
)

// ResolveGovernance returns the rule in effect for the tenant and scope,
// applying the three-level fallback. ErrNoGovernanceConfigured surfaces
// unchanged for the caller to handle.
func (e *Engine) ResolveGovernance(tenantCode, scope string, scopeID *string) (*model.GovernanceRule, error) {
	tenant, err := e.stores.Tenants.FetchTenantByCode(tenantCode)
	if err != nil {
		return nil, fmt.Errorf("tenant %q: %w", tenantCode, err)
	}
	rules, err := e.stores.Governance.ListRules()
	if err != nil {
		return nil, err
	}

	rule, err := compliance.NewGovernanceResolver(rules).Resolve(tenant.ID, scope, scopeID)
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

// SetGovernance creates or replaces the tenant's rule for a
// (scope, scopeID) triple.
func (e *Engine) SetGovernance(tenantCode, scope string, scopeID *string, governanceModel model.GovernanceModel) (*model.GovernanceRule, error) {
	tenant, err := e.stores.Tenants.FetchTenantByCode(tenantCode)
	if err != nil {
		return nil, fmt.Errorf("tenant %q: %w", tenantCode, err)
	}

	rule := &model.GovernanceRule{
		TenantID:        tenant.ID,
		Scope:           scope,
		ScopeID:         scopeID,
		GovernanceModel: governanceModel,
	}
	if err := e.stores.Governance.UpsertRule(rule); err != nil {
		audit.Log(audit.GovernanceChangeEvent{
			TenantCode:      tenantCode,
			Scope:           scope,
			ScopeID:         deref(scopeID),
			GovernanceModel: governanceModel.String(),
			ErrorMessage:    err.Error(),
		})
		return nil, err
	}

	audit.Log(audit.GovernanceChangeEvent{
		TenantCode:      tenantCode,
		Scope:           scope,
		ScopeID:         deref(scopeID),
		GovernanceModel: governanceModel.String(),
		Success:         true,
	})
	return rule, nil
}

// PropagateGovernance pushes the tenant's rule for a (scope, scopeID)
// triple down to exactly those direct subsidiaries whose own rule for the
// scope is hierarchical, recursively. Resolution alone never cascades;
// this explicit action is the only way a rule travels down the tree. It
// returns the number of updated subsidiaries.
func (e *Engine) PropagateGovernance(tenantCode, scope string, scopeID *string) (int, error) {
	tenant, err := e.stores.Tenants.FetchTenantByCode(tenantCode)
	if err != nil {
		return 0, fmt.Errorf("tenant %q: %w", tenantCode, err)
	}
	rules, err := e.stores.Governance.ListRules()
	if err != nil {
		return 0, err
	}
	tenants, err := e.stores.Tenants.ListTenants()
	if err != nil {
		return 0, err
	}

	resolver := compliance.NewGovernanceResolver(rules)
	hierarchy := compliance.NewHierarchyIndex(tenants)

	rule, err := resolver.Resolve(tenant.ID, scope, scopeID)
	if err != nil {
		audit.Log(audit.GovernancePropagationEvent{
			TenantCode:   tenantCode,
			Scope:        scope,
			ScopeID:      deref(scopeID),
			ErrorMessage: err.Error(),
		})
		return 0, err
	}

	updated := 0
	visited := map[int64]bool{tenant.ID: true}
	var push func(parentID int64) error
	push = func(parentID int64) error {
		for _, child := range resolver.HierarchicalSubsidiaries(hierarchy, parentID, scope, scopeID) {
			if visited[child.ID] {
				return fmt.Errorf("propagation from tenant %d: %w", tenant.ID, compliance.ErrCycleDetected)
			}
			visited[child.ID] = true

			childRule := &model.GovernanceRule{
				TenantID:        child.ID,
				Scope:           scope,
				ScopeID:         scopeID,
				GovernanceModel: rule.GovernanceModel,
			}
			if err := e.stores.Governance.UpsertRule(childRule); err != nil {
				return err
			}
			updated++
			if err := push(child.ID); err != nil {
				return err
			}
		}
		return nil
	}
	if err := push(tenant.ID); err != nil {
		audit.Log(audit.GovernancePropagationEvent{
			TenantCode:   tenantCode,
			Scope:        scope,
			ScopeID:      deref(scopeID),
			UpdatedCount: updated,
			ErrorMessage: err.Error(),
		})
		return updated, err
	}

	audit.Log(audit.GovernancePropagationEvent{
		TenantCode:   tenantCode,
		Scope:        scope,
		ScopeID:      deref(scopeID),
		UpdatedCount: updated,
		Success:      true,
	})
	return updated, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
