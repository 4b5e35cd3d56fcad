package gorm

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/complymap/complymap/pkg/model"
)

func TestGovernanceStoreUpsertRule(t *testing.T) {
	t.Run("updates the existing rule for the triple", func(t *testing.T) {
		db, mock := newMockDB(t)
		governance := NewGovernanceStore(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT id FROM governance_rules`).
			WithArgs(int64(1), "risk_acceptance", nil).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
		mock.ExpectExec(`UPDATE governance_rules SET governance_model`).
			WithArgs("shared", int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		rule := &model.GovernanceRule{
			TenantID:        1,
			Scope:           "risk_acceptance",
			GovernanceModel: model.GovernanceModelShared,
		}
		require.NoError(t, governance.UpsertRule(rule))
		assert.Equal(t, int64(7), rule.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("inserts when no rule exists for the triple", func(t *testing.T) {
		db, mock := newMockDB(t)
		governance := NewGovernanceStore(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT id FROM governance_rules`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectQuery(`INSERT INTO "governance_rules"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(8))
		mock.ExpectCommit()

		rule := &model.GovernanceRule{
			TenantID:        2,
			Scope:           model.ScopeDefault,
			GovernanceModel: model.GovernanceModelHierarchical,
		}
		require.NoError(t, governance.UpsertRule(rule))
		assert.Equal(t, int64(8), rule.ID)
	})
}

func TestGovernanceStoreListRulesForTenant(t *testing.T) {
	db, mock := newMockDB(t)
	governance := NewGovernanceStore(db)

	rows := sqlmock.NewRows([]string{"id", "tenant_id", "scope", "scope_id", "governance_model"}).
		AddRow(1, 1, "default", nil, "hierarchical").
		AddRow(2, 1, "risk_acceptance", "project-7", "independent")
	mock.ExpectQuery(`SELECT .* FROM governance_rules`).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	rules, err := governance.ListRulesForTenant(1)
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, model.GovernanceModelHierarchical, rules[0].GovernanceModel)
	require.NotNil(t, rules[1].ScopeID)
	assert.Equal(t, "project-7", *rules[1].ScopeID)
}
