package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/complymap/complymap/pkg/model"
)

func strPtr(s string) *string { return &s }

func TestGovernanceResolverResolve(t *testing.T) {
	resolver := NewGovernanceResolver([]model.GovernanceRule{
		{ID: 1, TenantID: 1, Scope: model.ScopeDefault, GovernanceModel: model.GovernanceModelHierarchical},
		{ID: 2, TenantID: 1, Scope: "risk_acceptance", GovernanceModel: model.GovernanceModelShared},
		{ID: 3, TenantID: 1, Scope: "risk_acceptance", ScopeID: strPtr("project-7"), GovernanceModel: model.GovernanceModelIndependent},
	})

	t.Run("scope specific rule wins over scope default", func(t *testing.T) {
		rule, err := resolver.Resolve(1, "risk_acceptance", strPtr("project-7"))
		require.NoError(t, err)
		assert.Equal(t, int64(3), rule.ID)
		assert.Equal(t, model.GovernanceModelIndependent, rule.GovernanceModel)
	})

	t.Run("scope default wins over global default", func(t *testing.T) {
		rule, err := resolver.Resolve(1, "risk_acceptance", strPtr("project-8"))
		require.NoError(t, err)
		assert.Equal(t, int64(2), rule.ID)
	})

	t.Run("falls through all levels to the global default", func(t *testing.T) {
		rule, err := resolver.Resolve(1, "data_retention", strPtr("archive-2"))
		require.NoError(t, err)
		assert.Equal(t, int64(1), rule.ID)
		assert.Equal(t, model.GovernanceModelHierarchical, rule.GovernanceModel)
	})

	t.Run("no rule at any level fails explicitly", func(t *testing.T) {
		_, err := resolver.Resolve(2, "risk_acceptance", strPtr("project-7"))
		assert.ErrorIs(t, err, ErrNoGovernanceConfigured)
	})
}

func TestGovernanceResolverHierarchicalSubsidiaries(t *testing.T) {
	idx := NewHierarchyIndex(testTenants())
	resolver := NewGovernanceResolver([]model.GovernanceRule{
		{ID: 1, TenantID: 2, Scope: "compliance", GovernanceModel: model.GovernanceModelHierarchical},
		{ID: 2, TenantID: 3, Scope: "compliance", GovernanceModel: model.GovernanceModelIndependent},
		// Tenant 4 resolves through its global default.
		{ID: 3, TenantID: 4, Scope: model.ScopeDefault, GovernanceModel: model.GovernanceModelHierarchical},
	})

	t.Run("direct children resolving to hierarchical", func(t *testing.T) {
		subs := resolver.HierarchicalSubsidiaries(idx, 1, "compliance", nil)
		require.Len(t, subs, 1)
		assert.Equal(t, "acme-eu", subs[0].Code)
	})

	t.Run("grandchildren are not included", func(t *testing.T) {
		subs := resolver.HierarchicalSubsidiaries(idx, 2, "compliance", nil)
		require.Len(t, subs, 1)
		assert.Equal(t, "acme-de", subs[0].Code)
	})

	t.Run("children without any rule are not assumed hierarchical", func(t *testing.T) {
		subs := resolver.HierarchicalSubsidiaries(idx, 2, "audit", nil)
		require.Len(t, subs, 1)
		assert.Equal(t, "acme-de", subs[0].Code)
	})
}
