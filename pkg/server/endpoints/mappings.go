package endpoints

import (
	"net/http"

	"github.com/complymap/complymap/pkg/config"
	"github.com/complymap/complymap/pkg/engine"
	"github.com/complymap/complymap/pkg/model"
	"github.com/complymap/complymap/pkg/server"
	"github.com/complymap/complymap/pkg/server/store"
)

// MappingResponse represents a mapping edge in the API response
type MappingResponse struct {
	ID                  int64   `json:"id"`
	SourceRequirementID int64   `json:"source_requirement_id"`
	TargetRequirementID int64   `json:"target_requirement_id"`
	MappingPercentage   float64 `json:"mapping_percentage"`
	MappingType         string  `json:"mapping_type"`
	Bidirectional       bool    `json:"bidirectional"`
	Notes               *string `json:"notes,omitempty"`
}

type createMappingRequest struct {
	SourceFramework   string  `json:"source_framework"`
	SourceRequirement string  `json:"source_requirement"`
	TargetFramework   string  `json:"target_framework"`
	TargetRequirement string  `json:"target_requirement"`
	MappingPercentage float64 `json:"mapping_percentage"`
	MappingType       string  `json:"mapping_type"`
	Bidirectional     bool    `json:"bidirectional"`
	Notes             *string `json:"notes"`
}

// RegisterMappingsEndpoints registers the mapping graph endpoints
func RegisterMappingsEndpoints(s *server.Server) {
	r := s.Router.PathPrefix("/mappings").Subrouter()
	r.HandleFunc("", handleListMappings(s.Stores.Frameworks, s.Stores.Mappings)).Methods("GET")
	r.HandleFunc("", handleCreateMapping(s.Engine, s.Config)).Methods("POST")
	r.HandleFunc("/stats", handleMappingStats(s.Stores.Frameworks, s.Stores.Mappings)).Methods("GET")
}

func resolveFrameworkPair(frameworks store.FrameworksStore, r *http.Request) (*model.Framework, *model.Framework, error) {
	source, err := frameworks.FetchFrameworkByCode(r.URL.Query().Get("source"))
	if err != nil {
		return nil, nil, err
	}
	target, err := frameworks.FetchFrameworkByCode(r.URL.Query().Get("target"))
	if err != nil {
		return nil, nil, err
	}
	return source, target, nil
}

func handleListMappings(frameworks store.FrameworksStore, mappings store.MappingsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("source") == "" || r.URL.Query().Get("target") == "" {
			respondWithError(w, http.StatusBadRequest, "source and target query parameters are required")
			return
		}
		source, target, err := resolveFrameworkPair(frameworks, r)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}

		list, err := mappings.ListMappingsBetween(source.ID, target.ID)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}

		out := make([]MappingResponse, 0, len(list))
		for _, m := range list {
			out = append(out, mappingResponse(m))
		}
		respondWithJSON(w, http.StatusOK, out)
	}
}

func handleCreateMapping(eng *engine.Engine, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createMappingRequest
		if !decodeJSONBody(w, r, &req) {
			return
		}
		mappingType, err := model.MappingTypeString(req.MappingType)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "unknown mapping type: "+req.MappingType)
			return
		}

		mapping, err := eng.CreateMapping(engine.MappingRequest{
			SourceFramework:   req.SourceFramework,
			SourceRequirement: req.SourceRequirement,
			TargetFramework:   req.TargetFramework,
			TargetRequirement: req.TargetRequirement,
			MappingPercentage: req.MappingPercentage,
			MappingType:       mappingType,
			Bidirectional:     req.Bidirectional,
			Notes:             req.Notes,
		}, cfg.MappingStrengthCeiling)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusCreated, mappingResponse(*mapping))
	}
}

func handleMappingStats(frameworks store.FrameworksStore, mappings store.MappingsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("source") == "" || r.URL.Query().Get("target") == "" {
			respondWithError(w, http.StatusBadRequest, "source and target query parameters are required")
			return
		}
		source, target, err := resolveFrameworkPair(frameworks, r)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}

		stats, err := mappings.Stats(source.ID, target.ID)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, stats)
	}
}

func mappingResponse(m model.Mapping) MappingResponse {
	return MappingResponse{
		ID:                  m.ID,
		SourceRequirementID: m.SourceRequirementID,
		TargetRequirementID: m.TargetRequirementID,
		MappingPercentage:   m.MappingPercentage,
		MappingType:         m.MappingType.String(),
		Bidirectional:       m.Bidirectional,
		Notes:               m.Notes,
	}
}
