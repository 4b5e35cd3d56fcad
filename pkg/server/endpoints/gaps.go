package endpoints

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/complymap/complymap/pkg/config"
	"github.com/complymap/complymap/pkg/engine"
	"github.com/complymap/complymap/pkg/model"
	"github.com/complymap/complymap/pkg/server"
)

// GapResponse represents a gap item in the API response
type GapResponse struct {
	ID                int64   `json:"id"`
	MappingID         int64   `json:"mapping_id"`
	GapType           string  `json:"gap_type"`
	Description       string  `json:"description"`
	Priority          string  `json:"priority"`
	PercentageImpact  int     `json:"percentage_impact"`
	EstimatedEffort   *int    `json:"estimated_effort,omitempty"`
	Confidence        int     `json:"confidence"`
	Status            string  `json:"status"`
	RecommendedAction *string `json:"recommended_action,omitempty"`
}

type createGapRequest struct {
	GapType           string  `json:"gap_type"`
	Description       string  `json:"description"`
	Priority          string  `json:"priority"`
	PercentageImpact  int     `json:"percentage_impact"`
	EstimatedEffort   *int    `json:"estimated_effort"`
	Confidence        int     `json:"confidence"`
	RecommendedAction *string `json:"recommended_action"`
}

type gapStatusRequest struct {
	Status string `json:"status"`
}

var validGapStatuses = map[string]bool{
	model.GapStatusIdentified: true,
	model.GapStatusPlanned:    true,
	model.GapStatusInProgress: true,
	model.GapStatusResolved:   true,
	model.GapStatusWontFix:    true,
}

var validGapPriorities = map[string]bool{
	model.PriorityCritical: true,
	model.PriorityHigh:     true,
	model.PriorityMedium:   true,
	model.PriorityLow:      true,
}

var validGapTypes = map[string]bool{
	model.GapTypeMissingControl:        true,
	model.GapTypePartialCoverage:       true,
	model.GapTypeScopeDifference:       true,
	model.GapTypeAdditionalRequirement: true,
	model.GapTypeEvidenceGap:           true,
}

// RegisterGapsEndpoints registers the gap analysis endpoints
func RegisterGapsEndpoints(s *server.Server) {
	eng := s.Engine
	cfg := s.Config

	s.Router.HandleFunc("/mappings/{id:[0-9]+}/gaps", handleListGaps(eng)).Methods("GET")
	s.Router.HandleFunc("/mappings/{id:[0-9]+}/gaps", handleCreateGap(eng)).Methods("POST")

	r := s.Router.PathPrefix("/gaps").Subrouter()
	r.HandleFunc("/open", handleOpenGaps(eng)).Methods("GET")
	r.HandleFunc("/summary", handleGapSummary(eng)).Methods("GET")
	r.HandleFunc("/review", handleGapReviewQueue(eng, cfg)).Methods("GET")
	r.HandleFunc("/{id:[0-9]+}/status", handleGapStatus(eng)).Methods("PATCH")
}

func pathID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id
}

func handleListGaps(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := eng.GapsForMapping(pathID(r))
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, gapResponses(items))
	}
}

func handleCreateGap(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createGapRequest
		if !decodeJSONBody(w, r, &req) {
			return
		}
		if !validGapTypes[req.GapType] {
			respondWithError(w, http.StatusBadRequest, "unknown gap type: "+req.GapType)
			return
		}
		if !validGapPriorities[req.Priority] {
			respondWithError(w, http.StatusBadRequest, "unknown priority: "+req.Priority)
			return
		}
		if req.PercentageImpact < 0 || req.PercentageImpact > 100 {
			respondWithError(w, http.StatusBadRequest, "percentage_impact must be in [0, 100]")
			return
		}

		gap := &model.GapItem{
			MappingID:         pathID(r),
			GapType:           req.GapType,
			Description:       req.Description,
			Priority:          req.Priority,
			PercentageImpact:  req.PercentageImpact,
			EstimatedEffort:   req.EstimatedEffort,
			Confidence:        req.Confidence,
			RecommendedAction: req.RecommendedAction,
		}
		if err := eng.CreateGap(gap); err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusCreated, gapResponse(*gap))
	}
}

func handleGapStatus(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req gapStatusRequest
		if !decodeJSONBody(w, r, &req) {
			return
		}
		if !validGapStatuses[req.Status] {
			respondWithError(w, http.StatusBadRequest, "unknown gap status: "+req.Status)
			return
		}

		gap, err := eng.TransitionGap(pathID(r), req.Status)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, gapResponse(*gap))
	}
}

func handleOpenGaps(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := eng.OpenHighPriorityGaps()
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, gapResponses(items))
	}
}

func handleGapSummary(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := eng.GapSummary()
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, summary)
	}
}

func handleGapReviewQueue(eng *engine.Engine, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		threshold := cfg.GapConfidenceReviewThreshold
		if v := r.URL.Query().Get("threshold"); v != "" {
			t, err := strconv.Atoi(v)
			if err != nil || t < 0 || t > 100 {
				respondWithError(w, http.StatusBadRequest, "threshold must be an integer in [0, 100]")
				return
			}
			threshold = t
		}

		items, err := eng.ReviewQueue(threshold)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, gapResponses(items))
	}
}

func gapResponse(g model.GapItem) GapResponse {
	return GapResponse{
		ID:                g.ID,
		MappingID:         g.MappingID,
		GapType:           g.GapType,
		Description:       g.Description,
		Priority:          g.Priority,
		PercentageImpact:  g.PercentageImpact,
		EstimatedEffort:   g.EstimatedEffort,
		Confidence:        g.Confidence,
		Status:            g.Status,
		RecommendedAction: g.RecommendedAction,
	}
}

func gapResponses(items []model.GapItem) []GapResponse {
	out := make([]GapResponse, 0, len(items))
	for _, g := range items {
		out = append(out, gapResponse(g))
	}
	return out
}
