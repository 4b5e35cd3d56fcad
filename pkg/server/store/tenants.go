package store

import "github.com/complymap/complymap/pkg/model"

// TenantsStore abstracts tenant hierarchy storage
type TenantsStore interface {
	// ListTenants returns every tenant; hierarchy indexes are built from
	// a full scan
	ListTenants() ([]model.Tenant, error)

	// FetchTenantByCode retrieves a single tenant by its code
	FetchTenantByCode(code string) (*model.Tenant, error)

	// CreateTenant inserts a tenant and fills in its generated ID
	CreateTenant(tenant *model.Tenant) error

	// UpdateTenantParent reassigns a tenant's parent; nil detaches it
	UpdateTenantParent(tenantID int64, parentID *int64) error
}
