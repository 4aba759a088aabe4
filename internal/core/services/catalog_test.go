// internal/core/services/catalog_test.go
package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/aileenong/kprimefood/internal/core/domain"
	"github.com/aileenong/kprimefood/internal/core/services"
	"github.com/aileenong/kprimefood/test/helpers"
	"github.com/aileenong/kprimefood/test/mocks"
)

func TestCatalogService_UpsertStock(t *testing.T) {
	tests := []struct {
		name            string
		req             *domain.StockUpsert
		setupMocks      func(*testing.T, *mocks.MockCatalogRepository, *mocks.MockCacheRepository)
		expectedOutcome domain.UpsertOutcome
		expectedError   bool
		errorContains   string
	}{
		{
			name: "normalizes_names_before_persisting",
			req: &domain.StockUpsert{
				ItemName: "  ribeye ",
				Category: "beef",
				Quantity: 3,
				FridgeNo: " a",
				Username: "aileen",
			},
			setupMocks: func(t *testing.T, repo *mocks.MockCatalogRepository, cache *mocks.MockCacheRepository) {
				repo.EXPECT().
					Upsert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, req *domain.StockUpsert) (*domain.StockRow, domain.UpsertOutcome, error) {
						assert.Equal(t, "RIBEYE", req.ItemName)
						assert.Equal(t, domain.CategoryBeef, req.Category)
						assert.Equal(t, "A", req.FridgeNo)
						return helpers.CreateTestStockRow(), domain.OutcomeCreated, nil
					})
				cache.EXPECT().DeletePattern(gomock.Any(), "dashboard:*").Return(nil)
			},
			expectedOutcome: domain.OutcomeCreated,
		},
		{
			name: "accumulates_onto_existing_fridge_row",
			req: &domain.StockUpsert{
				ItemName: "RIBEYE",
				Category: "BEEF",
				Quantity: 2,
				FridgeNo: "A",
			},
			setupMocks: func(t *testing.T, repo *mocks.MockCatalogRepository, cache *mocks.MockCacheRepository) {
				repo.EXPECT().
					Upsert(gomock.Any(), gomock.Any()).
					Return(helpers.CreateTestStockRow(func(r *domain.StockRow) {
						r.Quantity = 5
					}), domain.OutcomeAccumulated, nil)
				cache.EXPECT().DeletePattern(gomock.Any(), "dashboard:*").Return(nil)
			},
			expectedOutcome: domain.OutcomeAccumulated,
		},
		{
			name: "validation_rejects_missing_item_name",
			req: &domain.StockUpsert{
				Quantity: 3,
				FridgeNo: "A",
			},
			setupMocks:    func(t *testing.T, repo *mocks.MockCatalogRepository, cache *mocks.MockCacheRepository) {},
			expectedError: true,
			errorContains: "item_name is required",
		},
		{
			name: "validation_rejects_non_positive_quantity",
			req: &domain.StockUpsert{
				ItemName: "RIBEYE",
				Quantity: 0,
				FridgeNo: "A",
			},
			setupMocks:    func(t *testing.T, repo *mocks.MockCatalogRepository, cache *mocks.MockCacheRepository) {},
			expectedError: true,
			errorContains: "quantity must be positive",
		},
		{
			name: "validation_rejects_missing_fridge",
			req: &domain.StockUpsert{
				ItemName: "RIBEYE",
				Quantity: 3,
			},
			setupMocks:    func(t *testing.T, repo *mocks.MockCatalogRepository, cache *mocks.MockCacheRepository) {},
			expectedError: true,
			errorContains: "fridge_no is required",
		},
		{
			name: "repository_error_propagates",
			req: &domain.StockUpsert{
				ItemName: "RIBEYE",
				Quantity: 3,
				FridgeNo: "A",
			},
			setupMocks: func(t *testing.T, repo *mocks.MockCatalogRepository, cache *mocks.MockCacheRepository) {
				repo.EXPECT().
					Upsert(gomock.Any(), gomock.Any()).
					Return(nil, domain.UpsertOutcome(""), errors.New("connection refused"))
			},
			expectedError: true,
			errorContains: "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockCatalogRepository(ctrl)
			cache := mocks.NewMockCacheRepository(ctrl)
			tt.setupMocks(t, repo, cache)

			service := services.NewCatalogService(repo, cache, helpers.TestLogger())

			row, outcome, err := service.UpsertStock(context.Background(), tt.req)

			if tt.expectedError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				assert.Nil(t, row)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, row)
			assert.Equal(t, tt.expectedOutcome, outcome)
		})
	}
}

func TestCatalogService_TotalOnHand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockCatalogRepository(ctrl)
	cache := mocks.NewMockCacheRepository(ctrl)
	service := services.NewCatalogService(repo, cache, helpers.TestLogger())

	t.Run("sums_across_fridges", func(t *testing.T) {
		repo.EXPECT().
			TotalOnHand(gomock.Any(), "RIBEYE").
			Return(7, nil)

		total, err := service.TotalOnHand(context.Background(), "ribeye")
		require.NoError(t, err)
		assert.Equal(t, 7, total)
	})

	t.Run("unknown_item_is_an_error_not_zero", func(t *testing.T) {
		repo.EXPECT().
			TotalOnHand(gomock.Any(), "WAGYU").
			Return(0, domain.ErrItemNotFound)

		_, err := service.TotalOnHand(context.Background(), "wagyu")
		require.ErrorIs(t, err, domain.ErrItemNotFound)
	})
}

func TestCatalogService_DeleteRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockCatalogRepository(ctrl)
	cache := mocks.NewMockCacheRepository(ctrl)
	service := services.NewCatalogService(repo, cache, helpers.TestLogger())

	t.Run("defaults_username", func(t *testing.T) {
		repo.EXPECT().
			DeleteRow(gomock.Any(), int64(1), "system").
			Return(nil)
		cache.EXPECT().DeletePattern(gomock.Any(), "dashboard:*").Return(nil)

		require.NoError(t, service.DeleteRow(context.Background(), 1, ""))
	})

	t.Run("missing_row", func(t *testing.T) {
		repo.EXPECT().
			DeleteRow(gomock.Any(), int64(99), "aileen").
			Return(domain.ErrRowNotFound)

		err := service.DeleteRow(context.Background(), 99, "aileen")
		require.ErrorIs(t, err, domain.ErrRowNotFound)
	})
}
