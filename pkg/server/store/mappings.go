package store

import "github.com/complymap/complymap/pkg/model"

// MappingStats summarizes mapping edges by type and directionality.
type MappingStats struct {
	Total         int            `json:"total"`
	Bidirectional int            `json:"bidirectional"`
	ByType        map[string]int `json:"by_type"`
}

// MappingsStore abstracts requirement-to-requirement mapping edges
type MappingsStore interface {
	// ListMappingsBetween returns mappings touching the two frameworks
	// in either direction; graph construction decides traversability
	ListMappingsBetween(frameworkAID, frameworkBID int64) ([]model.Mapping, error)

	// ListMappingsForFrameworks returns mappings whose source framework
	// is sourceID and target framework is targetID, directed only
	ListMappingsForFrameworks(sourceID, targetID int64) ([]model.Mapping, error)

	// FetchMapping retrieves a single mapping by ID
	FetchMapping(id int64) (*model.Mapping, error)

	// CreateMapping inserts a mapping and fills in its generated ID;
	// strength validation happens before this call
	CreateMapping(mapping *model.Mapping) error

	// Stats aggregates all mappings, or one framework pair when both
	// IDs are non-zero
	Stats(sourceID, targetID int64) (*MappingStats, error)
}
