// internal/core/services/sale_test.go
package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/aileenong/kprimefood/internal/core/domain"
	"github.com/aileenong/kprimefood/internal/core/services"
	"github.com/aileenong/kprimefood/test/helpers"
	"github.com/aileenong/kprimefood/test/mocks"
)

type saleMocks struct {
	catalog *mocks.MockCatalogRepository
	pricing *mocks.MockPricingRepository
	sales   *mocks.MockSaleRepository
	locker  *mocks.MockItemLocker
	cache   *mocks.MockCacheRepository
}

func TestSaleService_RecordSale(t *testing.T) {
	tests := []struct {
		name          string
		req           *domain.SaleRequest
		setupMocks    func(t *testing.T, m saleMocks)
		check         func(t *testing.T, result *domain.SaleResult)
		expectedError error
		errorContains string
	}{
		{
			name: "tiered_sale_spans_two_fridges",
			req:  helpers.CreateTestSaleRequest(),
			setupMocks: func(t *testing.T, m saleMocks) {
				m.locker.EXPECT().
					AcquireItemLock(gomock.Any(), int64(100), gomock.Any()).
					Return(func() {}, nil)
				m.catalog.EXPECT().
					RowsByItemID(gomock.Any(), int64(100)).
					Return(helpers.CreateTestStockRows(), nil)
				m.pricing.EXPECT().
					ResolveTier(gomock.Any(), int64(100), 5).
					Return(helpers.CreateTestTier(), nil)
				m.sales.EXPECT().
					CommitSale(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, sale *domain.Sale, plan []domain.Deduction) (*domain.Sale, error) {
						assert.True(t, sale.SellingPrice.Equal(decimal.NewFromFloat(10.00)))
						assert.True(t, sale.TotalSale.Equal(decimal.NewFromFloat(50.00)))
						assert.True(t, sale.Cost.IsZero())
						assert.True(t, sale.Profit.IsZero())
						assert.False(t, sale.Overridden)
						require.Len(t, plan, 2)
						assert.Equal(t, 3, plan[0].Deducted)
						assert.Equal(t, 2, plan[1].Deducted)
						committed := *sale
						committed.ID = 42
						return &committed, nil
					})
				m.cache.EXPECT().DeletePattern(gomock.Any(), "dashboard:*").Return(nil)
			},
			check: func(t *testing.T, result *domain.SaleResult) {
				assert.Equal(t, domain.SaleCommitted, result.Status)
				assert.Equal(t, int64(42), result.Sale.ID)
				assert.Len(t, result.Deductions, 2)
				assert.Contains(t, result.Message, "RIBEYE")
			},
		},
		{
			name: "bulk_tier_applies_at_boundary",
			req: helpers.CreateTestSaleRequest(func(r *domain.SaleRequest) {
				r.Quantity = 6
			}),
			setupMocks: func(t *testing.T, m saleMocks) {
				m.locker.EXPECT().
					AcquireItemLock(gomock.Any(), int64(100), gomock.Any()).
					Return(func() {}, nil)
				m.catalog.EXPECT().
					RowsByItemID(gomock.Any(), int64(100)).
					Return(helpers.CreateTestStockRows(), nil)
				m.pricing.EXPECT().
					ResolveTier(gomock.Any(), int64(100), 6).
					Return(helpers.CreateTestTier(func(tier *domain.PricingTier) {
						tier.ID = 2
						tier.MinQty = 6
						tier.MaxQty = nil
						tier.PricePerUnit = decimal.NewFromFloat(8.00)
						tier.Label = "bulk"
					}), nil)
				m.sales.EXPECT().
					CommitSale(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, sale *domain.Sale, plan []domain.Deduction) (*domain.Sale, error) {
						assert.True(t, sale.SellingPrice.Equal(decimal.NewFromFloat(8.00)))
						assert.True(t, sale.TotalSale.Equal(decimal.NewFromFloat(48.00)))
						return sale, nil
					})
				m.cache.EXPECT().DeletePattern(gomock.Any(), "dashboard:*").Return(nil)
			},
			check: func(t *testing.T, result *domain.SaleResult) {
				assert.Equal(t, domain.SaleCommitted, result.Status)
			},
		},
		{
			name: "override_price_skips_tier_resolution",
			req: helpers.CreateTestSaleRequest(func(r *domain.SaleRequest) {
				price := decimal.NewFromFloat(7.77)
				r.OverridePrice = &price
			}),
			setupMocks: func(t *testing.T, m saleMocks) {
				m.locker.EXPECT().
					AcquireItemLock(gomock.Any(), int64(100), gomock.Any()).
					Return(func() {}, nil)
				m.catalog.EXPECT().
					RowsByItemID(gomock.Any(), int64(100)).
					Return(helpers.CreateTestStockRows(), nil)
				m.sales.EXPECT().
					CommitSale(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, sale *domain.Sale, plan []domain.Deduction) (*domain.Sale, error) {
						assert.True(t, sale.Overridden)
						assert.True(t, sale.SellingPrice.Equal(decimal.NewFromFloat(7.77)))
						return sale, nil
					})
				m.cache.EXPECT().DeletePattern(gomock.Any(), "dashboard:*").Return(nil)
			},
			check: func(t *testing.T, result *domain.SaleResult) {
				assert.True(t, result.Sale.Overridden)
			},
		},
		{
			name: "insufficient_stock_rejected_before_pricing",
			req: helpers.CreateTestSaleRequest(func(r *domain.SaleRequest) {
				r.Quantity = 9
			}),
			setupMocks: func(t *testing.T, m saleMocks) {
				m.locker.EXPECT().
					AcquireItemLock(gomock.Any(), int64(100), gomock.Any()).
					Return(func() {}, nil)
				m.catalog.EXPECT().
					RowsByItemID(gomock.Any(), int64(100)).
					Return(helpers.CreateTestStockRows(), nil)
			},
			expectedError: domain.ErrInsufficientStock,
		},
		{
			name: "no_matching_tier_rejects_sale",
			req:  helpers.CreateTestSaleRequest(),
			setupMocks: func(t *testing.T, m saleMocks) {
				m.locker.EXPECT().
					AcquireItemLock(gomock.Any(), int64(100), gomock.Any()).
					Return(func() {}, nil)
				m.catalog.EXPECT().
					RowsByItemID(gomock.Any(), int64(100)).
					Return(helpers.CreateTestStockRows(), nil)
				m.pricing.EXPECT().
					ResolveTier(gomock.Any(), int64(100), 5).
					Return(nil, domain.ErrNoPricingTier)
			},
			expectedError: domain.ErrNoPricingTier,
		},
		{
			name: "unknown_item_rejected",
			req:  helpers.CreateTestSaleRequest(),
			setupMocks: func(t *testing.T, m saleMocks) {
				m.locker.EXPECT().
					AcquireItemLock(gomock.Any(), int64(100), gomock.Any()).
					Return(func() {}, nil)
				m.catalog.EXPECT().
					RowsByItemID(gomock.Any(), int64(100)).
					Return(nil, nil)
			},
			expectedError: domain.ErrItemNotFound,
		},
		{
			name: "concurrent_drain_surfaces_allocation_failure",
			req:  helpers.CreateTestSaleRequest(),
			setupMocks: func(t *testing.T, m saleMocks) {
				m.locker.EXPECT().
					AcquireItemLock(gomock.Any(), int64(100), gomock.Any()).
					Return(func() {}, nil)
				m.catalog.EXPECT().
					RowsByItemID(gomock.Any(), int64(100)).
					Return(helpers.CreateTestStockRows(), nil)
				m.pricing.EXPECT().
					ResolveTier(gomock.Any(), int64(100), 5).
					Return(helpers.CreateTestTier(), nil)
				m.sales.EXPECT().
					CommitSale(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, &domain.AllocationFailedError{ItemName: "RIBEYE", RowID: 1})
			},
			expectedError: domain.ErrAllocationFailed,
		},
		{
			name: "lock_acquisition_failure_aborts",
			req:  helpers.CreateTestSaleRequest(),
			setupMocks: func(t *testing.T, m saleMocks) {
				m.locker.EXPECT().
					AcquireItemLock(gomock.Any(), int64(100), gomock.Any()).
					Return(nil, errors.New("item is locked by another sale"))
			},
			errorContains: "failed to acquire item lock",
		},
		{
			name: "validation_rejects_zero_quantity",
			req: helpers.CreateTestSaleRequest(func(r *domain.SaleRequest) {
				r.Quantity = 0
			}),
			setupMocks:    func(t *testing.T, m saleMocks) {},
			errorContains: "quantity must be positive",
		},
		{
			name: "validation_rejects_negative_override",
			req: helpers.CreateTestSaleRequest(func(r *domain.SaleRequest) {
				price := decimal.NewFromFloat(-1.00)
				r.OverridePrice = &price
			}),
			setupMocks:    func(t *testing.T, m saleMocks) {},
			errorContains: "override_price cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := saleMocks{
				catalog: mocks.NewMockCatalogRepository(ctrl),
				pricing: mocks.NewMockPricingRepository(ctrl),
				sales:   mocks.NewMockSaleRepository(ctrl),
				locker:  mocks.NewMockItemLocker(ctrl),
				cache:   mocks.NewMockCacheRepository(ctrl),
			}
			tt.setupMocks(t, m)

			service := services.NewSaleService(
				m.catalog, m.pricing, m.sales, m.locker, m.cache, helpers.TestLogger())

			result, err := service.RecordSale(context.Background(), tt.req)

			if tt.expectedError != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectedError),
					"expected %v, got %v", tt.expectedError, err)
				assert.Nil(t, result)
				return
			}
			if tt.errorContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)
			if tt.check != nil {
				tt.check(t, result)
			}
		})
	}
}

func TestSaleService_GetSale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	salesRepo := mocks.NewMockSaleRepository(ctrl)
	service := services.NewSaleService(
		mocks.NewMockCatalogRepository(ctrl),
		mocks.NewMockPricingRepository(ctrl),
		salesRepo,
		mocks.NewMockItemLocker(ctrl),
		mocks.NewMockCacheRepository(ctrl),
		helpers.TestLogger())

	t.Run("found", func(t *testing.T) {
		salesRepo.EXPECT().
			FindByID(gomock.Any(), int64(42)).
			Return(&domain.Sale{ID: 42, ItemName: "RIBEYE"}, nil)

		sale, err := service.GetSale(context.Background(), 42)
		require.NoError(t, err)
		assert.Equal(t, int64(42), sale.ID)
	})

	t.Run("missing", func(t *testing.T) {
		salesRepo.EXPECT().
			FindByID(gomock.Any(), int64(7)).
			Return(nil, nil)

		sale, err := service.GetSale(context.Background(), 7)
		require.ErrorIs(t, err, domain.ErrSaleNotFound)
		assert.Nil(t, sale)
	})
}
