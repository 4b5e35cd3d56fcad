package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/complymap/complymap/pkg/compliance"
	"github.com/complymap/complymap/pkg/server/store"
)

func respondWithError(w http.ResponseWriter, code int, payload interface{}) {
	respondWithJSON(w, code, map[string]interface{}{"error": payload})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondWithDomainError maps store and calculation errors to HTTP codes.
func respondWithDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, compliance.ErrNoGovernanceConfigured):
		respondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, compliance.ErrCycleDetected):
		respondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, compliance.ErrInvalidMappingStrength):
		respondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, compliance.ErrInconsistentSnapshot):
		respondWithError(w, http.StatusServiceUnavailable, err.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, err.Error())
	}
}

func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondWithError(w, http.StatusBadRequest, "malformed request body")
		return false
	}
	return true
}
