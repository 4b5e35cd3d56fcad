package model

//go:generate go run github.com/dmarkham/enumer -type GovernanceModel -trimprefix GovernanceModel -transform snake -yaml -sql -output governance_model.gen.go

// GovernanceModel determines how much autonomy a subsidiary tenant has
// relative to its parent.
type GovernanceModel int

const (
	// GovernanceModelHierarchical subsidiaries mirror data pushed down from
	// the parent and aggregate with the ancestor chain.
	GovernanceModelHierarchical GovernanceModel = iota
	// GovernanceModelShared subsidiaries keep their own data but may use the
	// parent's as a template.
	GovernanceModelShared
	// GovernanceModelIndependent subsidiaries are fully self-contained.
	GovernanceModelIndependent
)
