package gorm

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/complymap/complymap/pkg/server/store"
)

func TestFulfillmentsStoreStats(t *testing.T) {
	db, mock := newMockDB(t)
	fulfillments := NewFulfillmentsStore(db)

	rows := sqlmock.NewRows([]string{
		"total", "applicable", "not_applicable",
		"fully_implemented", "in_progress", "not_started", "average_fulfillment",
	}).AddRow(10, 8, 2, 3, 4, 1, 62.5)
	mock.ExpectQuery(`SELECT .* FROM fulfillments`).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	stats, err := fulfillments.Stats(1)
	require.NoError(t, err)
	assert.Equal(t, 10, stats.Total)
	assert.Equal(t, 2, stats.NotApplicable)
	assert.Equal(t, 62.5, stats.AverageFulfillment)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFulfillmentsStoreFetchFulfillment(t *testing.T) {
	t.Run("returns the record", func(t *testing.T) {
		db, mock := newMockDB(t)
		fulfillments := NewFulfillmentsStore(db)

		rows := sqlmock.NewRows([]string{"id", "tenant_id", "requirement_id", "applicable", "fulfillment_percentage", "status"}).
			AddRow(5, 1, 10, true, 80.0, "in_progress")
		mock.ExpectQuery(`SELECT .* FROM fulfillments`).
			WithArgs(int64(1), int64(10)).
			WillReturnRows(rows)

		f, err := fulfillments.FetchFulfillment(1, 10)
		require.NoError(t, err)
		assert.Equal(t, 80.0, f.FulfillmentPercentage)
		assert.Equal(t, "in_progress", f.Status)
	})

	t.Run("missing record yields ErrNotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		fulfillments := NewFulfillmentsStore(db)

		mock.ExpectQuery(`SELECT .* FROM fulfillments`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := fulfillments.FetchFulfillment(1, 99)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestFulfillmentsStoreListOverdue(t *testing.T) {
	db, mock := newMockDB(t)
	fulfillments := NewFulfillmentsStore(db)

	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	overdueAt := now.AddDate(0, -1, 0)
	rows := sqlmock.NewRows([]string{"id", "tenant_id", "requirement_id", "next_review"}).
		AddRow(5, 1, 10, overdueAt)
	mock.ExpectQuery(`SELECT .* FROM fulfillments`).
		WithArgs(int64(1), now).
		WillReturnRows(rows)

	overdue, err := fulfillments.ListOverdue(1, now)
	require.NoError(t, err)
	require.Len(t, overdue, 1)
	assert.Equal(t, int64(10), overdue[0].RequirementID)
}
