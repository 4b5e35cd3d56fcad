package engine

import (
	"errors"
	"fmt"

	"github.com/complymap/complymap/pkg/audit"
	"github.com/complymap/complymap/pkg/compliance"
	"github.com/complymap/complymap/pkg/model"
	"github.com/complymap/complymap/pkg/server/store"
)

// Ancestors returns the tenant's parent chain from immediate parent to
// root.
func (e *Engine) Ancestors(tenantCode string) ([]model.Tenant, error) {
	var chain []model.Tenant
	err := e.snapshotter.Snapshot(func(s store.Stores) error {
		tenant, hierarchy, err := loadHierarchy(s, tenantCode)
		if err != nil {
			return err
		}
		chain, err = hierarchy.Ancestors(tenant.ID)
		return err
	})
	return chain, err
}

// Subsidiaries returns the tenant's full descendant set.
func (e *Engine) Subsidiaries(tenantCode string) ([]model.Tenant, error) {
	var subs []model.Tenant
	err := e.snapshotter.Snapshot(func(s store.Stores) error {
		tenant, hierarchy, err := loadHierarchy(s, tenantCode)
		if err != nil {
			return err
		}
		subs, err = hierarchy.Subsidiaries(tenant.ID)
		return err
	})
	return subs, err
}

// StructureTree renders the tenant's subsidiary tree with per-node depth
// and resolved default governance model.
func (e *Engine) StructureTree(tenantCode string) (*compliance.StructureNode, error) {
	var tree *compliance.StructureNode
	err := e.snapshotter.Snapshot(func(s store.Stores) error {
		tenant, hierarchy, err := loadHierarchy(s, tenantCode)
		if err != nil {
			return err
		}
		rules, err := s.Governance.ListRules()
		if err != nil {
			return err
		}
		tree, err = hierarchy.StructureTree(tenant.ID, compliance.NewGovernanceResolver(rules))
		return err
	})
	return tree, err
}

// SetTenantParent reassigns a tenant's parent after checking the edit
// keeps the hierarchy acyclic. A nil parentCode detaches the tenant.
func (e *Engine) SetTenantParent(tenantCode string, parentCode *string) error {
	tenant, err := e.stores.Tenants.FetchTenantByCode(tenantCode)
	if err != nil {
		return fmt.Errorf("tenant %q: %w", tenantCode, err)
	}

	var parentID *int64
	var newParent string
	if parentCode != nil {
		newParent = *parentCode
		parent, err := e.stores.Tenants.FetchTenantByCode(*parentCode)
		if err != nil {
			return fmt.Errorf("parent tenant %q: %w", *parentCode, err)
		}

		tenants, err := e.stores.Tenants.ListTenants()
		if err != nil {
			return err
		}
		hierarchy := compliance.NewHierarchyIndex(tenants)
		if err := hierarchy.ValidateReparent(tenant.ID, parent.ID); err != nil {
			audit.Log(audit.HierarchyEditEvent{
				TenantCode:    tenantCode,
				NewParentCode: newParent,
				CycleRejected: errors.Is(err, compliance.ErrCycleDetected),
				ErrorMessage:  err.Error(),
			})
			return err
		}
		parentID = &parent.ID
	}

	if err := e.stores.Tenants.UpdateTenantParent(tenant.ID, parentID); err != nil {
		audit.Log(audit.HierarchyEditEvent{
			TenantCode:    tenantCode,
			NewParentCode: newParent,
			ErrorMessage:  err.Error(),
		})
		return err
	}

	audit.Log(audit.HierarchyEditEvent{
		TenantCode:    tenantCode,
		NewParentCode: newParent,
		Success:       true,
	})
	return nil
}

func loadHierarchy(s store.Stores, tenantCode string) (*model.Tenant, *compliance.HierarchyIndex, error) {
	tenant, err := s.Tenants.FetchTenantByCode(tenantCode)
	if err != nil {
		return nil, nil, fmt.Errorf("tenant %q: %w", tenantCode, err)
	}
	tenants, err := s.Tenants.ListTenants()
	if err != nil {
		return nil, nil, err
	}
	return tenant, compliance.NewHierarchyIndex(tenants), nil
}
