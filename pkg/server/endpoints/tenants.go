package endpoints

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/complymap/complymap/pkg/compliance"
	"github.com/complymap/complymap/pkg/engine"
	"github.com/complymap/complymap/pkg/model"
	"github.com/complymap/complymap/pkg/server"
	"github.com/complymap/complymap/pkg/server/store"
)

// TenantResponse represents a tenant in the API response
type TenantResponse struct {
	Code            string  `json:"code"`
	Name            string  `json:"name"`
	ParentCode      *string `json:"parent_code,omitempty"`
	IsActive        bool    `json:"is_active"`
	CorporateParent bool    `json:"corporate_parent"`
}

// StructureNodeResponse represents one node of the tenant structure tree
type StructureNodeResponse struct {
	Code            string                  `json:"code"`
	Name            string                  `json:"name"`
	Depth           int                     `json:"depth"`
	GovernanceModel *string                 `json:"governance_model,omitempty"`
	Children        []StructureNodeResponse `json:"children"`
}

type createTenantRequest struct {
	Code            string  `json:"code"`
	Name            string  `json:"name"`
	ParentCode      *string `json:"parent_code"`
	CorporateParent bool    `json:"corporate_parent"`
}

type setParentRequest struct {
	ParentCode *string `json:"parent_code"`
}

// RegisterTenantsEndpoints registers the tenant hierarchy endpoints
func RegisterTenantsEndpoints(s *server.Server) {
	tenants := s.Stores.Tenants
	eng := s.Engine

	r := s.Router.PathPrefix("/tenants").Subrouter()
	r.HandleFunc("", handleListTenants(tenants)).Methods("GET")
	r.HandleFunc("", handleCreateTenant(tenants)).Methods("POST")
	r.HandleFunc("/{code}", handleShowTenant(tenants)).Methods("GET")
	r.HandleFunc("/{code}/parent", handleSetTenantParent(eng)).Methods("PUT")
	r.HandleFunc("/{code}/ancestors", handleTenantAncestors(eng)).Methods("GET")
	r.HandleFunc("/{code}/subsidiaries", handleTenantSubsidiaries(eng)).Methods("GET")
	r.HandleFunc("/{code}/structure", handleTenantStructure(eng)).Methods("GET")
}

func handleListTenants(tenants store.TenantsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := tenants.ListTenants()
		if err != nil {
			respondWithDomainError(w, err)
			return
		}

		index := compliance.NewHierarchyIndex(list)
		out := make([]TenantResponse, 0, len(list))
		for _, t := range list {
			out = append(out, tenantResponse(t, index))
		}
		respondWithJSON(w, http.StatusOK, out)
	}
}

func handleCreateTenant(tenants store.TenantsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createTenantRequest
		if !decodeJSONBody(w, r, &req) {
			return
		}
		if req.Code == "" || req.Name == "" {
			respondWithError(w, http.StatusBadRequest, "code and name are required")
			return
		}

		tenant := &model.Tenant{
			Code:            req.Code,
			Name:            req.Name,
			IsActive:        true,
			CorporateParent: req.CorporateParent,
		}
		if req.ParentCode != nil {
			parent, err := tenants.FetchTenantByCode(*req.ParentCode)
			if err != nil {
				respondWithDomainError(w, err)
				return
			}
			tenant.ParentID = &parent.ID
		}

		if err := tenants.CreateTenant(tenant); err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusCreated, TenantResponse{
			Code:            tenant.Code,
			Name:            tenant.Name,
			ParentCode:      req.ParentCode,
			IsActive:        tenant.IsActive,
			CorporateParent: tenant.CorporateParent,
		})
	}
}

func handleShowTenant(tenants store.TenantsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenant, err := tenants.FetchTenantByCode(mux.Vars(r)["code"])
		if err != nil {
			respondWithDomainError(w, err)
			return
		}

		list, err := tenants.ListTenants()
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, tenantResponse(*tenant, compliance.NewHierarchyIndex(list)))
	}
}

func handleSetTenantParent(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req setParentRequest
		if !decodeJSONBody(w, r, &req) {
			return
		}

		if err := eng.SetTenantParent(mux.Vars(r)["code"], req.ParentCode); err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"code":        mux.Vars(r)["code"],
			"parent_code": req.ParentCode,
		})
	}
}

func handleTenantAncestors(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		chain, err := eng.Ancestors(mux.Vars(r)["code"])
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, tenantCodes(chain))
	}
}

func handleTenantSubsidiaries(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subs, err := eng.Subsidiaries(mux.Vars(r)["code"])
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, tenantCodes(subs))
	}
}

func handleTenantStructure(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tree, err := eng.StructureTree(mux.Vars(r)["code"])
		if err != nil {
			respondWithDomainError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, structureResponse(*tree))
	}
}

func tenantResponse(t model.Tenant, index *compliance.HierarchyIndex) TenantResponse {
	resp := TenantResponse{
		Code:            t.Code,
		Name:            t.Name,
		IsActive:        t.IsActive,
		CorporateParent: t.CorporateParent,
	}
	if t.ParentID != nil {
		if parent, ok := index.Tenant(*t.ParentID); ok {
			resp.ParentCode = &parent.Code
		}
	}
	return resp
}

func tenantCodes(tenants []model.Tenant) []TenantResponse {
	out := make([]TenantResponse, 0, len(tenants))
	index := compliance.NewHierarchyIndex(tenants)
	for _, t := range tenants {
		out = append(out, tenantResponse(t, index))
	}
	return out
}

func structureResponse(node compliance.StructureNode) StructureNodeResponse {
	resp := StructureNodeResponse{
		Code:     node.Tenant.Code,
		Name:     node.Tenant.Name,
		Depth:    node.Depth,
		Children: []StructureNodeResponse{},
	}
	if node.GovernanceModel != nil {
		name := node.GovernanceModel.String()
		resp.GovernanceModel = &name
	}
	for _, child := range node.Children {
		resp.Children = append(resp.Children, structureResponse(*child))
	}
	return resp
}
