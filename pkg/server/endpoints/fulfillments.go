package endpoints

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/complymap/complymap/pkg/engine"
	"github.com/complymap/complymap/pkg/model"
	"github.com/complymap/complymap/pkg/server"
	"github.com/complymap/complymap/pkg/server/store"
)

// FulfillmentResponse represents a fulfillment record in the API response
type FulfillmentResponse struct {
	TenantID              int64      `json:"tenant_id"`
	RequirementID         int64      `json:"requirement_id"`
	Applicable            bool       `json:"applicable"`
	FulfillmentPercentage float64    `json:"fulfillment_percentage"`
	Status                string     `json:"status"`
	Justification         *string    `json:"justification,omitempty"`
	LastReview            *time.Time `json:"last_review,omitempty"`
	NextReview            *time.Time `json:"next_review,omitempty"`
}

type updateFulfillmentRequest struct {
	Applicable    *bool      `json:"applicable"`
	Percentage    *float64   `json:"fulfillment_percentage"`
	Status        *string    `json:"status"`
	Justification *string    `json:"justification"`
	LastReview    *time.Time `json:"last_review"`
	NextReview    *time.Time `json:"next_review"`
}

var validFulfillmentStatuses = map[string]bool{
	model.FulfillmentStatusNotStarted:       true,
	model.FulfillmentStatusInProgress:       true,
	model.FulfillmentStatusFullyImplemented: true,
}

// RegisterFulfillmentsEndpoints registers the fulfillment assessment endpoints
func RegisterFulfillmentsEndpoints(s *server.Server) {
	eng := s.Engine
	fulfillments := s.Stores.Fulfillments
	tenants := s.Stores.Tenants

	r := s.Router.PathPrefix("/tenants/{code}").Subrouter()
	r.HandleFunc("/frameworks/{framework}/fulfillments", handleListFulfillments(eng)).Methods("GET")
	r.HandleFunc("/frameworks/{framework}/requirements/{requirement}/fulfillment",
		handleGetFulfillment(eng)).Methods("GET")
	r.HandleFunc("/frameworks/{framework}/requirements/{requirement}/fulfillment",
		handleUpdateFulfillment(eng)).Methods("PUT")
	r.HandleFunc("/fulfillments/stats", handleFulfillmentStats(tenants, fulfillments)).Methods("GET")
	r.HandleFunc("/fulfillments/overdue", handleOverdueReviews(tenants, fulfillments)).Methods("GET")
}

func handleListFulfillments(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)

		records, err := eng.FulfillmentsForTenant(vars["code"], vars["framework"])
		if err != nil {
			respondWithDomainError(w, err)
			return
		}

		out := make([]FulfillmentResponse, 0, len(records))
		for _, f := range records {
			out = append(out, fulfillmentResponse(f))
		}
		respondWithJSON(w, http.StatusOK, out)
	}
}

func handleGetFulfillment(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)

		fulfillment, err := eng.GetOrCreateFulfillment(vars["code"], vars["framework"], vars["requirement"])
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, fulfillmentResponse(*fulfillment))
	}
}

func handleUpdateFulfillment(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)

		var req updateFulfillmentRequest
		if !decodeJSONBody(w, r, &req) {
			return
		}
		if req.Status != nil && !validFulfillmentStatuses[*req.Status] {
			respondWithError(w, http.StatusBadRequest, "unknown fulfillment status: "+*req.Status)
			return
		}
		if req.Percentage != nil && (*req.Percentage < 0 || *req.Percentage > 100) {
			respondWithError(w, http.StatusBadRequest, "fulfillment_percentage must be in [0, 100]")
			return
		}

		fulfillment, err := eng.UpdateFulfillment(vars["code"], vars["framework"], vars["requirement"],
			engine.FulfillmentUpdate{
				Applicable:    req.Applicable,
				Percentage:    req.Percentage,
				Status:        req.Status,
				Justification: req.Justification,
				LastReview:    req.LastReview,
				NextReview:    req.NextReview,
			})
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, fulfillmentResponse(*fulfillment))
	}
}

func handleFulfillmentStats(tenants store.TenantsStore, fulfillments store.FulfillmentsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenant, err := tenants.FetchTenantByCode(mux.Vars(r)["code"])
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		stats, err := fulfillments.Stats(tenant.ID)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, stats)
	}
}

func handleOverdueReviews(tenants store.TenantsStore, fulfillments store.FulfillmentsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenant, err := tenants.FetchTenantByCode(mux.Vars(r)["code"])
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		overdue, err := fulfillments.ListOverdue(tenant.ID, time.Now())
		if err != nil {
			respondWithDomainError(w, err)
			return
		}

		out := make([]FulfillmentResponse, 0, len(overdue))
		for _, f := range overdue {
			out = append(out, fulfillmentResponse(f))
		}
		respondWithJSON(w, http.StatusOK, out)
	}
}

func fulfillmentResponse(f model.Fulfillment) FulfillmentResponse {
	return FulfillmentResponse{
		TenantID:              f.TenantID,
		RequirementID:         f.RequirementID,
		Applicable:            f.Applicable,
		FulfillmentPercentage: f.FulfillmentPercentage,
		Status:                f.Status,
		Justification:         f.Justification,
		LastReview:            f.LastReview,
		NextReview:            f.NextReview,
	}
}
