package endpoints

import (
	"net/http"
	"os"

	"github.com/complymap/complymap/pkg/server"
)

// HealthResponse represents the response from /health
type HealthResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Database string `json:"database"`
}

// StatusResponse represents the response from /
type StatusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// RegisterHealthEndpoints registers the health and info endpoints
func RegisterHealthEndpoints(s *server.Server) {
	db := s.DB

	// GET / - Status page (no auth required)
	s.Router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		version := os.Getenv("COMPLYMAP_VERSION_DISPLAY")
		if version == "" {
			version = "0.1.0"
		}
		respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok", Version: version})
	}).Methods("GET")

	s.Router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		version := os.Getenv("COMPLYMAP_VERSION_DISPLAY")
		if version == "" {
			version = "0.1.0"
		}

		resp := HealthResponse{Status: "ok", Version: version, Database: "ok"}
		code := http.StatusOK

		if db != nil {
			sqlDB, err := db.DB()
			if err == nil {
				err = sqlDB.Ping()
			}
			if err != nil {
				resp.Status = "error"
				resp.Database = "unreachable"
				code = http.StatusServiceUnavailable
			}
		}

		respondWithJSON(w, code, resp)
	}).Methods("GET")
}
