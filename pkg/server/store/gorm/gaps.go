package gorm

import (
	"gorm.io/gorm"

	"github.com/complymap/complymap/pkg/model"
	"github.com/complymap/complymap/pkg/server/store"
)

// Ensure GapsStore implements store.GapsStore
var _ store.GapsStore = (*GapsStore)(nil)

// GapsStore implements store.GapsStore using GORM
type GapsStore struct {
	db *gorm.DB
}

// NewGapsStore creates a new GapsStore
func NewGapsStore(db *gorm.DB) *GapsStore {
	return &GapsStore{db: db}
}

const gapColumns = `
	id, mapping_id, gap_type, description, priority, percentage_impact,
	estimated_effort, confidence, status, recommended_action, created_at, updated_at
`

// ListGaps returns every gap item
func (s *GapsStore) ListGaps() ([]model.GapItem, error) {
	var gaps []model.GapItem
	result := s.db.Raw(`
		SELECT ` + gapColumns + `
		FROM gap_items
		ORDER BY id
	`).Scan(&gaps)
	return gaps, result.Error
}

// ListGapsForMapping returns the gap items attached to one mapping
func (s *GapsStore) ListGapsForMapping(mappingID int64) ([]model.GapItem, error) {
	var gaps []model.GapItem
	result := s.db.Raw(`
		SELECT `+gapColumns+`
		FROM gap_items
		WHERE mapping_id = ?
		ORDER BY id
	`, mappingID).Scan(&gaps)
	return gaps, result.Error
}

// FetchGap retrieves a single gap item by ID
func (s *GapsStore) FetchGap(id int64) (*model.GapItem, error) {
	var gap model.GapItem
	result := s.db.Raw(`
		SELECT `+gapColumns+`
		FROM gap_items
		WHERE id = ?
	`, id).Scan(&gap)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, store.ErrNotFound
	}
	return &gap, nil
}

// CreateGap inserts a gap item and fills in its generated ID
func (s *GapsStore) CreateGap(gap *model.GapItem) error {
	return s.db.Create(gap).Error
}

// UpdateGapStatus transitions a gap item's remediation status
func (s *GapsStore) UpdateGapStatus(id int64, status string) error {
	result := s.db.Exec(`
		UPDATE gap_items SET status = ?, updated_at = NOW() WHERE id = ?
	`, status, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}
