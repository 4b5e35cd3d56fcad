package endpoints

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/complymap/complymap/pkg/compliance"
	"github.com/complymap/complymap/pkg/model"
	"github.com/complymap/complymap/pkg/server"
	"github.com/complymap/complymap/pkg/server/store"
)

// FrameworkResponse represents a framework in the API response
type FrameworkResponse struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	Version   string `json:"version,omitempty"`
	Industry  string `json:"industry"`
	Mandatory bool   `json:"mandatory"`
	Active    bool   `json:"active"`
}

// RequirementResponse represents a requirement in the API response
type RequirementResponse struct {
	RequirementID string `json:"requirement_id"`
	Title         string `json:"title"`
	Priority      string `json:"priority"`
	Type          string `json:"type"`
}

// RegisterFrameworksEndpoints registers the framework catalog endpoints
func RegisterFrameworksEndpoints(s *server.Server) {
	frameworks := s.Stores.Frameworks

	r := s.Router.PathPrefix("/frameworks").Subrouter()
	r.HandleFunc("", handleListFrameworks(frameworks)).Methods("GET")
	r.HandleFunc("/{code}", handleShowFramework(frameworks)).Methods("GET")
	r.HandleFunc("/{code}/requirements", handleListRequirements(frameworks)).Methods("GET")
}

func handleListFrameworks(frameworks store.FrameworksStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := frameworks.ListFrameworks()
		if err != nil {
			respondWithDomainError(w, err)
			return
		}

		out := make([]FrameworkResponse, 0, len(list))
		for _, f := range list {
			out = append(out, frameworkResponse(f))
		}
		respondWithJSON(w, http.StatusOK, out)
	}
}

func handleShowFramework(frameworks store.FrameworksStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		framework, err := frameworks.FetchFrameworkByCode(mux.Vars(r)["code"])
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, frameworkResponse(*framework))
	}
}

func handleListRequirements(frameworks store.FrameworksStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		framework, err := frameworks.FetchFrameworkByCode(mux.Vars(r)["code"])
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		requirements, err := frameworks.ListRequirements(framework.ID)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}

		// "1.10" sorts after "1.9", not after "1.1".
		compliance.SortRequirements(requirements)

		out := make([]RequirementResponse, 0, len(requirements))
		for _, req := range requirements {
			out = append(out, RequirementResponse{
				RequirementID: req.RequirementID,
				Title:         req.Title,
				Priority:      req.Priority,
				Type:          req.ReqType,
			})
		}
		respondWithJSON(w, http.StatusOK, out)
	}
}

func frameworkResponse(f model.Framework) FrameworkResponse {
	return FrameworkResponse{
		Code:      f.Code,
		Name:      f.Name,
		Version:   f.Version,
		Industry:  f.Industry,
		Mandatory: f.Mandatory,
		Active:    f.Active,
	}
}
