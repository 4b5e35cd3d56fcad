package store

// Stores bundles every store behind one handle. Endpoints and CLI jobs
// receive a Stores and pick the interfaces they need.
type Stores struct {
	Tenants      TenantsStore
	Governance   GovernanceStore
	Frameworks   FrameworksStore
	Fulfillments FulfillmentsStore
	Mappings     MappingsStore
	Gaps         GapsStore
}

// Snapshotter runs a read-only computation against one consistent
// snapshot of the data. Coverage and transitive-benefit calculations
// issue many independent reads and must not observe a mid-calculation
// change.
type Snapshotter interface {
	Snapshot(fn func(s Stores) error) error
}
