package endpoints

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/complymap/complymap/pkg/model"
	"github.com/complymap/complymap/pkg/server/store"
)

func TestFulfillmentsEndpoints(t *testing.T) {
	tenant := model.Tenant{ID: 1, Code: "acme", Name: "Acme Group"}
	requirement := model.Requirement{ID: 10, FrameworkID: 1, RequirementID: "A.5.1"}

	t.Run("GET list applies the aggregation scope", func(t *testing.T) {
		m := newMockStores()
		m.Tenants.On("FetchTenantByCode", "acme").Return(&tenant, nil)
		m.Frameworks.On("FetchFrameworkByCode", "iso27001").Return(&testFwkISO, nil)
		m.Fulfillments.On("ListForTenantFramework", int64(1), int64(1)).Return([]model.Fulfillment{
			{TenantID: 1, RequirementID: 10, Applicable: true, FulfillmentPercentage: 40, Status: model.FulfillmentStatusInProgress},
		}, nil)

		rec := doRequest(newTestServer(m), "GET", "/tenants/acme/frameworks/iso27001/fulfillments", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var out []FulfillmentResponse
		decodeBody(t, rec, &out)
		require.Len(t, out, 1)
		assert.Equal(t, 40.0, out[0].FulfillmentPercentage)
	})

	t.Run("GET single creates the record on first access", func(t *testing.T) {
		m := newMockStores()
		m.Tenants.On("FetchTenantByCode", "acme").Return(&tenant, nil)
		m.Frameworks.On("FetchFrameworkByCode", "iso27001").Return(&testFwkISO, nil)
		m.Frameworks.On("FetchRequirement", int64(1), "A.5.1").Return(&requirement, nil)
		m.Fulfillments.On("FetchFulfillment", int64(1), int64(10)).Return(nil, store.ErrNotFound)
		m.Fulfillments.On("CreateFulfillment", mock.MatchedBy(func(f *model.Fulfillment) bool {
			return f.Applicable && f.Status == model.FulfillmentStatusNotStarted && f.FulfillmentPercentage == 0
		})).Return(nil)

		rec := doRequest(newTestServer(m), "GET",
			"/tenants/acme/frameworks/iso27001/requirements/A.5.1/fulfillment", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		m.Fulfillments.AssertExpectations(t)
	})

	t.Run("PUT rejects a percentage above 100", func(t *testing.T) {
		m := newMockStores()
		rec := doRequest(newTestServer(m), "PUT",
			"/tenants/acme/frameworks/iso27001/requirements/A.5.1/fulfillment",
			map[string]interface{}{"fulfillment_percentage": 130})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("PUT rejects an unknown status", func(t *testing.T) {
		m := newMockStores()
		rec := doRequest(newTestServer(m), "PUT",
			"/tenants/acme/frameworks/iso27001/requirements/A.5.1/fulfillment",
			map[string]interface{}{"status": "done"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("PUT updates the assessment", func(t *testing.T) {
		m := newMockStores()
		m.Tenants.On("FetchTenantByCode", "acme").Return(&tenant, nil)
		m.Frameworks.On("FetchFrameworkByCode", "iso27001").Return(&testFwkISO, nil)
		m.Frameworks.On("FetchRequirement", int64(1), "A.5.1").Return(&requirement, nil)
		m.Fulfillments.On("FetchFulfillment", int64(1), int64(10)).Return(&model.Fulfillment{
			ID: 3, TenantID: 1, RequirementID: 10, Applicable: true, Status: model.FulfillmentStatusNotStarted,
		}, nil)
		m.Fulfillments.On("UpdateFulfillment", mock.MatchedBy(func(f *model.Fulfillment) bool {
			return f.FulfillmentPercentage == 55 && f.Status == model.FulfillmentStatusInProgress
		})).Return(nil)

		rec := doRequest(newTestServer(m), "PUT",
			"/tenants/acme/frameworks/iso27001/requirements/A.5.1/fulfillment",
			map[string]interface{}{
				"fulfillment_percentage": 55,
				"status":                 model.FulfillmentStatusInProgress,
			})
		require.Equal(t, http.StatusOK, rec.Code)

		var out FulfillmentResponse
		decodeBody(t, rec, &out)
		assert.Equal(t, 55.0, out.FulfillmentPercentage)
	})

	t.Run("GET stats proxies the store aggregate", func(t *testing.T) {
		m := newMockStores()
		m.Tenants.On("FetchTenantByCode", "acme").Return(&tenant, nil)
		m.Fulfillments.On("Stats", int64(1)).Return(&store.FulfillmentStats{
			Total:              10,
			Applicable:         8,
			NotApplicable:      2,
			AverageFulfillment: 72.5,
		}, nil)

		rec := doRequest(newTestServer(m), "GET", "/tenants/acme/fulfillments/stats", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var out store.FulfillmentStats
		decodeBody(t, rec, &out)
		assert.Equal(t, 72.5, out.AverageFulfillment)
	})

	t.Run("GET overdue lists lapsed reviews", func(t *testing.T) {
		m := newMockStores()
		m.Tenants.On("FetchTenantByCode", "acme").Return(&tenant, nil)
		past := time.Now().Add(-24 * time.Hour)
		m.Fulfillments.On("ListOverdue", int64(1), mock.AnythingOfType("time.Time")).Return([]model.Fulfillment{
			{TenantID: 1, RequirementID: 10, Applicable: true, NextReview: &past},
		}, nil)

		rec := doRequest(newTestServer(m), "GET", "/tenants/acme/fulfillments/overdue", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var out []FulfillmentResponse
		decodeBody(t, rec, &out)
		require.Len(t, out, 1)
	})
}
