package gorm

import (
	"gorm.io/gorm"

	"github.com/complymap/complymap/pkg/model"
	"github.com/complymap/complymap/pkg/server/store"
)

// Ensure TenantsStore implements store.TenantsStore
var _ store.TenantsStore = (*TenantsStore)(nil)

// TenantsStore implements store.TenantsStore using GORM
type TenantsStore struct {
	db *gorm.DB
}

// NewTenantsStore creates a new TenantsStore
func NewTenantsStore(db *gorm.DB) *TenantsStore {
	return &TenantsStore{db: db}
}

// ListTenants returns every tenant ordered by ID
func (s *TenantsStore) ListTenants() ([]model.Tenant, error) {
	var tenants []model.Tenant
	result := s.db.Raw(`
		SELECT id, code, name, parent_id, is_active, corporate_parent, created_at, updated_at
		FROM tenants
		ORDER BY id
	`).Scan(&tenants)
	return tenants, result.Error
}

// FetchTenantByCode retrieves a single tenant by its code
func (s *TenantsStore) FetchTenantByCode(code string) (*model.Tenant, error) {
	var tenant model.Tenant
	result := s.db.Raw(`
		SELECT id, code, name, parent_id, is_active, corporate_parent, created_at, updated_at
		FROM tenants
		WHERE code = ?
	`, code).Scan(&tenant)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, store.ErrNotFound
	}
	return &tenant, nil
}

// CreateTenant inserts a tenant and fills in its generated ID
func (s *TenantsStore) CreateTenant(tenant *model.Tenant) error {
	return s.db.Create(tenant).Error
}

// UpdateTenantParent reassigns a tenant's parent; nil detaches it
func (s *TenantsStore) UpdateTenantParent(tenantID int64, parentID *int64) error {
	result := s.db.Exec(`
		UPDATE tenants SET parent_id = ?, updated_at = NOW() WHERE id = ?
	`, parentID, tenantID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}
