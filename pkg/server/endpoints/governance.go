package endpoints

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/complymap/complymap/pkg/engine"
	"github.com/complymap/complymap/pkg/model"
	"github.com/complymap/complymap/pkg/server"
)

// GovernanceResponse represents a resolved governance rule
type GovernanceResponse struct {
	TenantCode      string  `json:"tenant_code"`
	Scope           string  `json:"scope"`
	ScopeID         *string `json:"scope_id,omitempty"`
	GovernanceModel string  `json:"governance_model"`
}

type setGovernanceRequest struct {
	GovernanceModel string `json:"governance_model"`
}

// RegisterGovernanceEndpoints registers the governance rule endpoints
func RegisterGovernanceEndpoints(s *server.Server) {
	eng := s.Engine

	r := s.Router.PathPrefix("/tenants/{code}/governance").Subrouter()
	r.HandleFunc("/{scope}", handleResolveGovernance(eng)).Methods("GET")
	r.HandleFunc("/{scope}", handleSetGovernance(eng)).Methods("PUT")
	r.HandleFunc("/{scope}/propagate", handlePropagateGovernance(eng)).Methods("POST")
}

func scopeIDParam(r *http.Request) *string {
	if v := r.URL.Query().Get("scope_id"); v != "" {
		return &v
	}
	return nil
}

func handleResolveGovernance(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)

		rule, err := eng.ResolveGovernance(vars["code"], vars["scope"], scopeIDParam(r))
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, GovernanceResponse{
			TenantCode:      vars["code"],
			Scope:           rule.Scope,
			ScopeID:         rule.ScopeID,
			GovernanceModel: rule.GovernanceModel.String(),
		})
	}
}

func handleSetGovernance(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)

		var req setGovernanceRequest
		if !decodeJSONBody(w, r, &req) {
			return
		}
		governanceModel, err := model.GovernanceModelString(req.GovernanceModel)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "unknown governance model: "+req.GovernanceModel)
			return
		}

		scopeID := scopeIDParam(r)
		rule, err := eng.SetGovernance(vars["code"], vars["scope"], scopeID, governanceModel)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, GovernanceResponse{
			TenantCode:      vars["code"],
			Scope:           rule.Scope,
			ScopeID:         rule.ScopeID,
			GovernanceModel: rule.GovernanceModel.String(),
		})
	}
}

func handlePropagateGovernance(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)

		updated, err := eng.PropagateGovernance(vars["code"], vars["scope"], scopeIDParam(r))
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"tenant_code": vars["code"],
			"scope":       vars["scope"],
			"updated":     updated,
		})
	}
}
