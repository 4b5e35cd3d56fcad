package gorm

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/complymap/complymap/pkg/model"
	"github.com/complymap/complymap/pkg/server/store"
)

func TestGapsStoreListGapsForMapping(t *testing.T) {
	db, mock := newMockDB(t)
	gaps := NewGapsStore(db)

	rows := sqlmock.NewRows([]string{"id", "mapping_id", "gap_type", "priority", "percentage_impact", "confidence", "status"}).
		AddRow(1, 3, model.GapTypeMissingControl, model.PriorityHigh, 40, 85, model.GapStatusIdentified)
	mock.ExpectQuery(`SELECT .* FROM gap_items`).
		WithArgs(int64(3)).
		WillReturnRows(rows)

	items, err := gaps.ListGapsForMapping(3)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, model.GapTypeMissingControl, items[0].GapType)
	assert.Equal(t, 40, items[0].PercentageImpact)
}

func TestGapsStoreUpdateGapStatus(t *testing.T) {
	t.Run("transitions the status", func(t *testing.T) {
		db, mock := newMockDB(t)
		gaps := NewGapsStore(db)

		mock.ExpectExec(`UPDATE gap_items SET status`).
			WithArgs(model.GapStatusResolved, int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, gaps.UpdateGapStatus(1, model.GapStatusResolved))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing gap yields ErrNotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		gaps := NewGapsStore(db)

		mock.ExpectExec(`UPDATE gap_items SET status`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, gaps.UpdateGapStatus(99, model.GapStatusResolved), store.ErrNotFound)
	})
}
