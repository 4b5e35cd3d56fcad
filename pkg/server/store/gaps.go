package store

import "github.com/complymap/complymap/pkg/model"

// GapsStore abstracts gap item storage
type GapsStore interface {
	// ListGaps returns every gap item; analysis helpers filter and
	// aggregate in process
	ListGaps() ([]model.GapItem, error)

	// ListGapsForMapping returns the gap items attached to one mapping
	ListGapsForMapping(mappingID int64) ([]model.GapItem, error)

	// FetchGap retrieves a single gap item by ID
	FetchGap(id int64) (*model.GapItem, error)

	// CreateGap inserts a gap item and fills in its generated ID
	CreateGap(gap *model.GapItem) error

	// UpdateGapStatus transitions a gap item's remediation status
	UpdateGapStatus(id int64, status string) error
}
