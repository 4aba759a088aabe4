package db_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aileenong/kprimefood/internal/adapters/db"
	"github.com/aileenong/kprimefood/internal/core/domain"
	"github.com/aileenong/kprimefood/test/helpers"
)

func TestCatalogRepository_ApplyDelta_Unit(t *testing.T) {
	testDB := helpers.SetupTestDB(t)
	defer testDB.Database.Close()

	repo := db.NewCatalogRepository(testDB.Database, helpers.TestLogger())
	ctx := context.Background()

	helpers.SeedStockRows(t, testDB.PgxPool, helpers.CreateTestStockRows())

	rows, err := repo.RowsByName(ctx, "RIBEYE")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	fridgeA := rows[0]

	t.Run("deducts_within_quantity", func(t *testing.T) {
		updated, err := repo.ApplyDelta(ctx, fridgeA.ID, -2)
		require.NoError(t, err)
		assert.Equal(t, 1, updated.Quantity)
	})

	t.Run("accumulates_positive_delta", func(t *testing.T) {
		updated, err := repo.ApplyDelta(ctx, fridgeA.ID, 5)
		require.NoError(t, err)
		assert.Equal(t, 6, updated.Quantity)
	})

	t.Run("guard_rejects_overdraw", func(t *testing.T) {
		_, err := repo.ApplyDelta(ctx, fridgeA.ID, -999)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInsufficientStock)

		var insufficient *domain.InsufficientStockError
		require.ErrorAs(t, err, &insufficient)
		assert.Equal(t, 999, insufficient.Requested)
		assert.Equal(t, 6, insufficient.OnHand)

		// Row untouched after the rejected overdraw
		row, err := repo.FindRow(ctx, fridgeA.ID)
		require.NoError(t, err)
		assert.Equal(t, 6, row.Quantity)
	})

	t.Run("missing_row_is_not_found", func(t *testing.T) {
		_, err := repo.ApplyDelta(ctx, 999999, -1)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrRowNotFound)
		assert.NotErrorIs(t, err, domain.ErrInsufficientStock)
	})
}
