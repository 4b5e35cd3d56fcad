package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/complymap/complymap/pkg/model"
	"github.com/complymap/complymap/pkg/server/store"
)

func strPtr(v string) *string   { return &v }
func boolPtr(v bool) *bool      { return &v }
func f64Ptr(v float64) *float64 { return &v }

func TestEngineGetOrCreateFulfillment(t *testing.T) {
	tenants := []model.Tenant{
		{ID: 1, Code: "acme"},
		{ID: 2, Code: "acme-eu", ParentID: int64Ptr(1)},
	}

	t.Run("returns the existing record unchanged", func(t *testing.T) {
		m := newMockStores()
		m.Tenants.On("FetchTenantByCode", "acme-eu").Return(&tenants[1], nil)
		m.Frameworks.On("FetchFrameworkByCode", "iso27001").Return(&fwkISO, nil)
		m.Frameworks.On("FetchRequirement", int64(1), "A.5.1").Return(&isoReqs[0], nil)
		existing := &model.Fulfillment{ID: 9, TenantID: 2, RequirementID: 10, FulfillmentPercentage: 40}
		m.Fulfillments.On("FetchFulfillment", int64(2), int64(10)).Return(existing, nil)

		fulfillment, err := newTestEngine(m).GetOrCreateFulfillment("acme-eu", "iso27001", "A.5.1")
		require.NoError(t, err)
		assert.Equal(t, 40.0, fulfillment.FulfillmentPercentage)
		m.Fulfillments.AssertNotCalled(t, "CreateFulfillment", mock.Anything)
	})

	t.Run("seeds applicability and justification from the parent, never the percentage", func(t *testing.T) {
		m := newMockStores()
		m.Tenants.On("FetchTenantByCode", "acme-eu").Return(&tenants[1], nil)
		m.Frameworks.On("FetchFrameworkByCode", "iso27001").Return(&fwkISO, nil)
		m.Frameworks.On("FetchRequirement", int64(1), "A.5.1").Return(&isoReqs[0], nil)
		m.Fulfillments.On("FetchFulfillment", int64(2), int64(10)).Return(nil, store.ErrNotFound)
		m.Governance.On("ListRules").Return([]model.GovernanceRule{
			{ID: 1, TenantID: 2, Scope: GovernanceScopeCompliance, GovernanceModel: model.GovernanceModelHierarchical},
		}, nil)
		m.Fulfillments.On("FetchFulfillment", int64(1), int64(10)).Return(&model.Fulfillment{
			TenantID:              1,
			RequirementID:         10,
			Applicable:            false,
			Justification:         strPtr("out of scope for the group"),
			FulfillmentPercentage: 90,
		}, nil)
		m.Fulfillments.On("CreateFulfillment", mock.MatchedBy(func(f *model.Fulfillment) bool {
			return !f.Applicable &&
				f.Justification != nil && *f.Justification == "out of scope for the group" &&
				f.FulfillmentPercentage == 0 &&
				f.Status == model.FulfillmentStatusNotStarted
		})).Return(nil)

		fulfillment, err := newTestEngine(m).GetOrCreateFulfillment("acme-eu", "iso27001", "A.5.1")
		require.NoError(t, err)
		assert.False(t, fulfillment.Applicable)
		assert.Equal(t, 0.0, fulfillment.FulfillmentPercentage)
		m.Fulfillments.AssertExpectations(t)
	})

	t.Run("independent governance never consults the parent", func(t *testing.T) {
		m := newMockStores()
		m.Tenants.On("FetchTenantByCode", "acme-eu").Return(&tenants[1], nil)
		m.Frameworks.On("FetchFrameworkByCode", "iso27001").Return(&fwkISO, nil)
		m.Frameworks.On("FetchRequirement", int64(1), "A.5.1").Return(&isoReqs[0], nil)
		m.Fulfillments.On("FetchFulfillment", int64(2), int64(10)).Return(nil, store.ErrNotFound)
		m.Governance.On("ListRules").Return([]model.GovernanceRule{
			{ID: 1, TenantID: 2, Scope: GovernanceScopeCompliance, GovernanceModel: model.GovernanceModelIndependent},
		}, nil)
		m.Fulfillments.On("CreateFulfillment", mock.MatchedBy(func(f *model.Fulfillment) bool {
			return f.Applicable && f.Justification == nil
		})).Return(nil)

		fulfillment, err := newTestEngine(m).GetOrCreateFulfillment("acme-eu", "iso27001", "A.5.1")
		require.NoError(t, err)
		assert.True(t, fulfillment.Applicable)
		m.Fulfillments.AssertNotCalled(t, "FetchFulfillment", int64(1), int64(10))
	})
}

func TestEngineUpdateFulfillment(t *testing.T) {
	tenant := model.Tenant{ID: 1, Code: "acme"}

	t.Run("rejects a percentage outside [0, 100]", func(t *testing.T) {
		m := newMockStores()
		_, err := newTestEngine(m).UpdateFulfillment("acme", "iso27001", "A.5.1", FulfillmentUpdate{
			Percentage: f64Ptr(120),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not in [0, 100]")
		m.Fulfillments.AssertNotCalled(t, "UpdateFulfillment", mock.Anything)
	})

	t.Run("applies only the fields set on the update", func(t *testing.T) {
		m := newMockStores()
		m.Tenants.On("FetchTenantByCode", "acme").Return(&tenant, nil)
		m.Frameworks.On("FetchFrameworkByCode", "iso27001").Return(&fwkISO, nil)
		m.Frameworks.On("FetchRequirement", int64(1), "A.5.1").Return(&isoReqs[0], nil)
		m.Fulfillments.On("FetchFulfillment", int64(1), int64(10)).Return(&model.Fulfillment{
			ID:            5,
			TenantID:      1,
			RequirementID: 10,
			Applicable:    true,
			Status:        model.FulfillmentStatusInProgress,
		}, nil)
		m.Fulfillments.On("UpdateFulfillment", mock.MatchedBy(func(f *model.Fulfillment) bool {
			return f.FulfillmentPercentage == 60 && f.Status == model.FulfillmentStatusInProgress && f.Applicable
		})).Return(nil)

		fulfillment, err := newTestEngine(m).UpdateFulfillment("acme", "iso27001", "A.5.1", FulfillmentUpdate{
			Percentage: f64Ptr(60),
		})
		require.NoError(t, err)
		assert.Equal(t, 60.0, fulfillment.FulfillmentPercentage)
		m.Fulfillments.AssertExpectations(t)
	})

	t.Run("can mark a requirement not applicable with a justification", func(t *testing.T) {
		m := newMockStores()
		m.Tenants.On("FetchTenantByCode", "acme").Return(&tenant, nil)
		m.Frameworks.On("FetchFrameworkByCode", "iso27001").Return(&fwkISO, nil)
		m.Frameworks.On("FetchRequirement", int64(1), "A.5.1").Return(&isoReqs[0], nil)
		m.Fulfillments.On("FetchFulfillment", int64(1), int64(10)).Return(&model.Fulfillment{
			ID: 5, TenantID: 1, RequirementID: 10, Applicable: true,
		}, nil)
		m.Fulfillments.On("UpdateFulfillment", mock.MatchedBy(func(f *model.Fulfillment) bool {
			return !f.Applicable && f.Justification != nil && *f.Justification == "cloud-only estate"
		})).Return(nil)

		_, err := newTestEngine(m).UpdateFulfillment("acme", "iso27001", "A.5.1", FulfillmentUpdate{
			Applicable:    boolPtr(false),
			Justification: strPtr("cloud-only estate"),
		})
		require.NoError(t, err)
		m.Fulfillments.AssertExpectations(t)
	})
}
