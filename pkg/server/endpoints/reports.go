package endpoints

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/complymap/complymap/pkg/engine"
	"github.com/complymap/complymap/pkg/server"
)

// RegisterReportsEndpoints registers the cross-framework report endpoints
func RegisterReportsEndpoints(s *server.Server) {
	eng := s.Engine

	r := s.Router.PathPrefix("/reports").Subrouter()
	r.HandleFunc("/coverage/{source}/{target}", handleCoverageReport(eng)).Methods("GET")
	r.HandleFunc("/transitive/{source}/{target}/{tenant}", handleTransitiveReport(eng)).Methods("GET")
}

func handleCoverageReport(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)

		report, err := eng.Coverage(vars["source"], vars["target"])
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, report)
	}
}

func handleTransitiveReport(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)

		report, err := eng.TransitiveBenefit(vars["source"], vars["target"], vars["tenant"])
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, report)
	}
}
