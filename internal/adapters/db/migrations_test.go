package db_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aileenong/kprimefood/internal/adapters/db"
	"github.com/aileenong/kprimefood/test/helpers"
)

func TestNewMigrator_RequiresConfig(t *testing.T) {
	_, err := db.NewMigrator(nil, helpers.TestLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration config is required")
}

func TestAppliedMigrations(t *testing.T) {
	query := regexp.QuoteMeta(
		"SELECT version, dirty FROM public.schema_migrations ORDER BY version ASC")

	t.Run("scans_applied_rows", func(t *testing.T) {
		mock, dbh := helpers.SetupMockDB(t)
		mock.ExpectQuery(query).WillReturnRows(
			sqlmock.NewRows([]string{"version", "dirty"}).
				AddRow(1, false).
				AddRow(2, true))

		applied, err := db.AppliedMigrations(context.Background(), dbh, "public", "schema_migrations")
		require.NoError(t, err)
		require.Len(t, applied, 2)
		assert.Equal(t, uint(1), applied[0].Version)
		assert.False(t, applied[0].Dirty)
		assert.Equal(t, uint(2), applied[1].Version)
		assert.True(t, applied[1].Dirty)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty_table", func(t *testing.T) {
		mock, dbh := helpers.SetupMockDB(t)
		mock.ExpectQuery(query).WillReturnRows(
			sqlmock.NewRows([]string{"version", "dirty"}))

		applied, err := db.AppliedMigrations(context.Background(), dbh, "public", "schema_migrations")
		require.NoError(t, err)
		assert.Empty(t, applied)
	})

	t.Run("propagates_query_error", func(t *testing.T) {
		mock, dbh := helpers.SetupMockDB(t)
		mock.ExpectQuery(query).WillReturnError(errors.New("connection reset"))

		_, err := db.AppliedMigrations(context.Background(), dbh, "public", "schema_migrations")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to query migrations")
	})
}
