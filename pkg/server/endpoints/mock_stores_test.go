package endpoints

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/complymap/complymap/pkg/engine"
	"github.com/complymap/complymap/pkg/model"
	"github.com/complymap/complymap/pkg/server/store"
)

// MockTenantsStore implements store.TenantsStore for testing using testify/mock
type MockTenantsStore struct {
	mock.Mock
}

func (m *MockTenantsStore) ListTenants() ([]model.Tenant, error) {
	args := m.Called()
	return args.Get(0).([]model.Tenant), args.Error(1)
}

func (m *MockTenantsStore) FetchTenantByCode(code string) (*model.Tenant, error) {
	args := m.Called(code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tenant), args.Error(1)
}

func (m *MockTenantsStore) CreateTenant(tenant *model.Tenant) error {
	args := m.Called(tenant)
	return args.Error(0)
}

func (m *MockTenantsStore) UpdateTenantParent(tenantID int64, parentID *int64) error {
	args := m.Called(tenantID, parentID)
	return args.Error(0)
}

// MockGovernanceStore implements store.GovernanceStore for testing using testify/mock
type MockGovernanceStore struct {
	mock.Mock
}

func (m *MockGovernanceStore) ListRules() ([]model.GovernanceRule, error) {
	args := m.Called()
	return args.Get(0).([]model.GovernanceRule), args.Error(1)
}

func (m *MockGovernanceStore) ListRulesForTenant(tenantID int64) ([]model.GovernanceRule, error) {
	args := m.Called(tenantID)
	return args.Get(0).([]model.GovernanceRule), args.Error(1)
}

func (m *MockGovernanceStore) UpsertRule(rule *model.GovernanceRule) error {
	args := m.Called(rule)
	return args.Error(0)
}

// MockFrameworksStore implements store.FrameworksStore for testing using testify/mock
type MockFrameworksStore struct {
	mock.Mock
}

func (m *MockFrameworksStore) ListFrameworks() ([]model.Framework, error) {
	args := m.Called()
	return args.Get(0).([]model.Framework), args.Error(1)
}

func (m *MockFrameworksStore) FetchFrameworkByCode(code string) (*model.Framework, error) {
	args := m.Called(code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Framework), args.Error(1)
}

func (m *MockFrameworksStore) ListRequirements(frameworkID int64) ([]model.Requirement, error) {
	args := m.Called(frameworkID)
	return args.Get(0).([]model.Requirement), args.Error(1)
}

func (m *MockFrameworksStore) FetchRequirement(frameworkID int64, requirementID string) (*model.Requirement, error) {
	args := m.Called(frameworkID, requirementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Requirement), args.Error(1)
}

func (m *MockFrameworksStore) UpsertFramework(framework *model.Framework) error {
	args := m.Called(framework)
	return args.Error(0)
}

func (m *MockFrameworksStore) UpsertRequirement(requirement *model.Requirement) error {
	args := m.Called(requirement)
	return args.Error(0)
}

// MockFulfillmentsStore implements store.FulfillmentsStore for testing using testify/mock
type MockFulfillmentsStore struct {
	mock.Mock
}

func (m *MockFulfillmentsStore) ListForTenantFramework(tenantID, frameworkID int64) ([]model.Fulfillment, error) {
	args := m.Called(tenantID, frameworkID)
	return args.Get(0).([]model.Fulfillment), args.Error(1)
}

func (m *MockFulfillmentsStore) FetchFulfillment(tenantID, requirementID int64) (*model.Fulfillment, error) {
	args := m.Called(tenantID, requirementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Fulfillment), args.Error(1)
}

func (m *MockFulfillmentsStore) CreateFulfillment(fulfillment *model.Fulfillment) error {
	args := m.Called(fulfillment)
	return args.Error(0)
}

func (m *MockFulfillmentsStore) UpdateFulfillment(fulfillment *model.Fulfillment) error {
	args := m.Called(fulfillment)
	return args.Error(0)
}

func (m *MockFulfillmentsStore) Stats(tenantID int64) (*store.FulfillmentStats, error) {
	args := m.Called(tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.FulfillmentStats), args.Error(1)
}

func (m *MockFulfillmentsStore) ListOverdue(tenantID int64, now time.Time) ([]model.Fulfillment, error) {
	args := m.Called(tenantID, now)
	return args.Get(0).([]model.Fulfillment), args.Error(1)
}

// MockMappingsStore implements store.MappingsStore for testing using testify/mock
type MockMappingsStore struct {
	mock.Mock
}

func (m *MockMappingsStore) ListMappingsBetween(frameworkAID, frameworkBID int64) ([]model.Mapping, error) {
	args := m.Called(frameworkAID, frameworkBID)
	return args.Get(0).([]model.Mapping), args.Error(1)
}

func (m *MockMappingsStore) ListMappingsForFrameworks(sourceID, targetID int64) ([]model.Mapping, error) {
	args := m.Called(sourceID, targetID)
	return args.Get(0).([]model.Mapping), args.Error(1)
}

func (m *MockMappingsStore) FetchMapping(id int64) (*model.Mapping, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Mapping), args.Error(1)
}

func (m *MockMappingsStore) CreateMapping(mapping *model.Mapping) error {
	args := m.Called(mapping)
	return args.Error(0)
}

func (m *MockMappingsStore) Stats(sourceID, targetID int64) (*store.MappingStats, error) {
	args := m.Called(sourceID, targetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.MappingStats), args.Error(1)
}

// MockGapsStore implements store.GapsStore for testing using testify/mock
type MockGapsStore struct {
	mock.Mock
}

func (m *MockGapsStore) ListGaps() ([]model.GapItem, error) {
	args := m.Called()
	return args.Get(0).([]model.GapItem), args.Error(1)
}

func (m *MockGapsStore) ListGapsForMapping(mappingID int64) ([]model.GapItem, error) {
	args := m.Called(mappingID)
	return args.Get(0).([]model.GapItem), args.Error(1)
}

func (m *MockGapsStore) FetchGap(id int64) (*model.GapItem, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GapItem), args.Error(1)
}

func (m *MockGapsStore) CreateGap(gap *model.GapItem) error {
	args := m.Called(gap)
	return args.Error(0)
}

func (m *MockGapsStore) UpdateGapStatus(id int64, status string) error {
	args := m.Called(id, status)
	return args.Error(0)
}

// mockStores bundles fresh mocks behind a store.Stores plus a
// pass-through snapshotter.
type mockStores struct {
	Tenants      *MockTenantsStore
	Governance   *MockGovernanceStore
	Frameworks   *MockFrameworksStore
	Fulfillments *MockFulfillmentsStore
	Mappings     *MockMappingsStore
	Gaps         *MockGapsStore
}

func newMockStores() *mockStores {
	return &mockStores{
		Tenants:      &MockTenantsStore{},
		Governance:   &MockGovernanceStore{},
		Frameworks:   &MockFrameworksStore{},
		Fulfillments: &MockFulfillmentsStore{},
		Mappings:     &MockMappingsStore{},
		Gaps:         &MockGapsStore{},
	}
}

func (m *mockStores) stores() store.Stores {
	return store.Stores{
		Tenants:      m.Tenants,
		Governance:   m.Governance,
		Frameworks:   m.Frameworks,
		Fulfillments: m.Fulfillments,
		Mappings:     m.Mappings,
		Gaps:         m.Gaps,
	}
}

// passthroughSnapshotter runs snapshot functions directly against the
// mocks; isolation is the database's concern, not the mocks'.
type passthroughSnapshotter struct {
	s store.Stores
}

func (p passthroughSnapshotter) Snapshot(fn func(s store.Stores) error) error {
	return fn(p.s)
}

func newTestEngine(m *mockStores) *engine.Engine {
	return engine.New(m.stores(), passthroughSnapshotter{s: m.stores()})
}
