package gorm

import (
	"database/sql"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/complymap/complymap/pkg/compliance"
	"github.com/complymap/complymap/pkg/server/store"
)

// Ensure Stores implements store.Snapshotter
var _ store.Snapshotter = (*Stores)(nil)

// Stores builds the full store bundle over one GORM handle and runs
// snapshot reads.
type Stores struct {
	db *gorm.DB
}

// NewStores creates the store bundle factory
func NewStores(db *gorm.DB) *Stores {
	return &Stores{db: db}
}

// Stores returns the bundle bound to the live database handle
func (s *Stores) Stores() store.Stores {
	return bundle(s.db)
}

// Snapshot runs fn against one consistent snapshot. All reads inside fn
// share a repeatable-read, read-only transaction, so multi-step
// calculations never observe a mid-calculation change.
func (s *Stores) Snapshot(fn func(s store.Stores) error) error {
	tx := s.db.Begin(&sql.TxOptions{
		Isolation: sql.LevelRepeatableRead,
		ReadOnly:  true,
	})
	if tx.Error != nil {
		return fmt.Errorf("begin snapshot: %w", tx.Error)
	}
	defer tx.Rollback()

	if err := fn(bundle(tx)); err != nil {
		// Serialization failures mean the snapshot could not be held.
		if strings.Contains(err.Error(), "SQLSTATE 40001") {
			return fmt.Errorf("snapshot read: %w", compliance.ErrInconsistentSnapshot)
		}
		return err
	}
	return tx.Commit().Error
}

func bundle(db *gorm.DB) store.Stores {
	return store.Stores{
		Tenants:      NewTenantsStore(db),
		Governance:   NewGovernanceStore(db),
		Frameworks:   NewFrameworksStore(db),
		Fulfillments: NewFulfillmentsStore(db),
		Mappings:     NewMappingsStore(db),
		Gaps:         NewGapsStore(db),
	}
}
