// Package store provides storage abstractions for the complymap server.
//
// This package defines interfaces for database operations, allowing the
// server endpoints and the compliance engine to be decoupled from the
// specific database implementation. This enables easier testing with mocks
// and potential support for different storage backends.
//
// # Available Stores
//
//   - TenantsStore: tenant hierarchy rows
//   - GovernanceStore: governance rules per tenant and scope
//   - FrameworksStore: framework and requirement reference data
//   - FulfillmentsStore: per-tenant requirement fulfillment records
//   - MappingsStore: requirement-to-requirement mapping edges
//   - GapsStore: gap items attached to mappings
//
// # Usage
//
//	tenants := gorm.NewTenantsStore(db)
//	tenant, err := tenants.FetchTenantByCode("acme")
//	if err != nil {
//	    if errors.Is(err, store.ErrNotFound) {
//	        // Handle not found
//	    }
//	}
package store
