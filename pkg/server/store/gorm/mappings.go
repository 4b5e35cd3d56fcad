package gorm

import (
	"gorm.io/gorm"

	"github.com/complymap/complymap/pkg/model"
	"github.com/complymap/complymap/pkg/server/store"
)

// Ensure MappingsStore implements store.MappingsStore
var _ store.MappingsStore = (*MappingsStore)(nil)

// MappingsStore implements store.MappingsStore using GORM
type MappingsStore struct {
	db *gorm.DB
}

// NewMappingsStore creates a new MappingsStore
func NewMappingsStore(db *gorm.DB) *MappingsStore {
	return &MappingsStore{db: db}
}

const mappingColumns = `
	m.id, m.source_requirement_id, m.target_requirement_id, m.mapping_percentage,
	m.mapping_type, m.bidirectional, m.notes, m.created_at, m.updated_at
`

// ListMappingsBetween returns mappings touching the two frameworks in
// either direction. The mapping graph decides traversability.
func (s *MappingsStore) ListMappingsBetween(frameworkAID, frameworkBID int64) ([]model.Mapping, error) {
	var mappings []model.Mapping
	result := s.db.Raw(`
		SELECT `+mappingColumns+`
		FROM mappings m
		JOIN requirements sr ON sr.id = m.source_requirement_id
		JOIN requirements tr ON tr.id = m.target_requirement_id
		WHERE (sr.framework_id = ? AND tr.framework_id = ?)
		   OR (sr.framework_id = ? AND tr.framework_id = ?)
		ORDER BY m.id
	`, frameworkAID, frameworkBID, frameworkBID, frameworkAID).Scan(&mappings)
	return mappings, result.Error
}

// ListMappingsForFrameworks returns directed mappings from sourceID's
// requirements to targetID's requirements
func (s *MappingsStore) ListMappingsForFrameworks(sourceID, targetID int64) ([]model.Mapping, error) {
	var mappings []model.Mapping
	result := s.db.Raw(`
		SELECT `+mappingColumns+`
		FROM mappings m
		JOIN requirements sr ON sr.id = m.source_requirement_id
		JOIN requirements tr ON tr.id = m.target_requirement_id
		WHERE sr.framework_id = ? AND tr.framework_id = ?
		ORDER BY m.id
	`, sourceID, targetID).Scan(&mappings)
	return mappings, result.Error
}

// FetchMapping retrieves a single mapping by ID
func (s *MappingsStore) FetchMapping(id int64) (*model.Mapping, error) {
	var mapping model.Mapping
	result := s.db.Raw(`
		SELECT `+mappingColumns+`
		FROM mappings m
		WHERE m.id = ?
	`, id).Scan(&mapping)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, store.ErrNotFound
	}
	return &mapping, nil
}

// CreateMapping inserts a mapping and fills in its generated ID
func (s *MappingsStore) CreateMapping(mapping *model.Mapping) error {
	return s.db.Create(mapping).Error
}

// Stats aggregates all mappings, or one framework pair when both IDs are
// non-zero
func (s *MappingsStore) Stats(sourceID, targetID int64) (*store.MappingStats, error) {
	query := `
		SELECT m.mapping_type, m.bidirectional, COUNT(*) AS count
		FROM mappings m
	`
	args := []interface{}{}

	if sourceID != 0 && targetID != 0 {
		query += `
		JOIN requirements sr ON sr.id = m.source_requirement_id
		JOIN requirements tr ON tr.id = m.target_requirement_id
		WHERE sr.framework_id = ? AND tr.framework_id = ?
		`
		args = append(args, sourceID, targetID)
	}

	query += ` GROUP BY m.mapping_type, m.bidirectional`

	type statsRow struct {
		MappingType   string
		Bidirectional bool
		Count         int
	}
	var rows []statsRow
	result := s.db.Raw(query, args...).Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	stats := &store.MappingStats{ByType: map[string]int{}}
	for _, row := range rows {
		stats.Total += row.Count
		stats.ByType[row.MappingType] += row.Count
		if row.Bidirectional {
			stats.Bidirectional += row.Count
		}
	}
	return stats, nil
}
