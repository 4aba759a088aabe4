// internal/core/services/pricing_test.go
package services_test

import (
	"context"
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

func TestPricingService_ResolvePrice(t *testing.T) {
	tests := []struct {
		name          string
		itemID        int64
		qty           int
		setupMocks    func(*mocks.MockPricingRepository)
		check         func(*testing.T, *domain.ResolvedPrice)
		expectedError error
		errorContains string
	}{
		{
			name:   "resolves_retail_tier",
			itemID: 100,
			qty:    5,
			setupMocks: func(m *mocks.MockPricingRepository) {
				m.EXPECT().
					ResolveTier(gomock.Any(), int64(100), 5).
					Return(helpers.CreateTestTier(), nil)
			},
			check: func(t *testing.T, price *domain.ResolvedPrice) {
				assert.True(t, price.PricePerUnit.Equal(decimal.NewFromFloat(10.00)))
				assert.True(t, price.Total().Equal(decimal.NewFromFloat(50.00)))
				assert.Equal(t, "retail", price.TierLabel)
				assert.False(t, price.Overridden)
			},
		},
		{
			name:   "no_tier_is_rejection_not_zero_price",
			itemID: 100,
			qty:    500,
			setupMocks: func(m *mocks.MockPricingRepository) {
				m.EXPECT().
					ResolveTier(gomock.Any(), int64(100), 500).
					Return(nil, domain.ErrNoPricingTier)
			},
			expectedError: domain.ErrNoPricingTier,
		},
		{
			name:          "rejects_non_positive_quantity",
			itemID:        100,
			qty:           0,
			setupMocks:    func(m *mocks.MockPricingRepository) {},
			errorContains: "quantity must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockPricingRepository(ctrl)
			tt.setupMocks(repo)

			service := services.NewPricingService(repo, helpers.TestLogger())

			price, err := service.ResolvePrice(context.Background(), tt.itemID, tt.qty)

			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, price)
				return
			}
			if tt.errorContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, price)
			if tt.check != nil {
				tt.check(t, price)
			}
		})
	}
}

func TestPricingService_ResolvePrice_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockPricingRepository(ctrl)
	repo.EXPECT().
		ResolveTier(gomock.Any(), int64(100), 5).
		Return(helpers.CreateTestTier(), nil).
		Times(2)

	service := services.NewPricingService(repo, helpers.TestLogger())

	first, err := service.ResolvePrice(context.Background(), 100, 5)
	require.NoError(t, err)
	second, err := service.ResolvePrice(context.Background(), 100, 5)
	require.NoError(t, err)

	assert.True(t, first.PricePerUnit.Equal(second.PricePerUnit))
	assert.Equal(t, first.TierID, second.TierID)
}

func TestPricingService_UpsertTier(t *testing.T) {
	tests := []struct {
		name          string
		tier          *domain.PricingTier
		changedBy     string
		setupMocks    func(*testing.T, *mocks.MockPricingRepository)
		expectedError bool
		errorContains string
	}{
		{
			name:      "saves_valid_tier",
			tier:      helpers.CreateTestTier(),
			changedBy: "aileen",
			setupMocks: func(t *testing.T, m *mocks.MockPricingRepository) {
				m.EXPECT().
					Upsert(gomock.Any(), gomock.Any(), "aileen").
					DoAndReturn(func(ctx context.Context, tier *domain.PricingTier, changedBy string) (*domain.PricingTier, error) {
						return tier, nil
					})
			},
		},
		{
			name: "defaults_changed_by_to_system",
			tier: helpers.CreateTestTier(),
			setupMocks: func(t *testing.T, m *mocks.MockPricingRepository) {
				m.EXPECT().
					Upsert(gomock.Any(), gomock.Any(), "system").
					DoAndReturn(func(ctx context.Context, tier *domain.PricingTier, changedBy string) (*domain.PricingTier, error) {
						return tier, nil
					})
			},
		},
		{
			name: "rejects_min_qty_below_one",
			tier: helpers.CreateTestTier(func(tier *domain.PricingTier) {
				tier.MinQty = 0
			}),
			setupMocks:    func(t *testing.T, m *mocks.MockPricingRepository) {},
			expectedError: true,
			errorContains: "min_qty must be at least 1",
		},
		{
			name: "rejects_inverted_band",
			tier: helpers.CreateTestTier(func(tier *domain.PricingTier) {
				maxQty := 2
				tier.MinQty = 6
				tier.MaxQty = &maxQty
			}),
			setupMocks:    func(t *testing.T, m *mocks.MockPricingRepository) {},
			expectedError: true,
			errorContains: "max_qty cannot be below min_qty",
		},
		{
			name: "rejects_negative_price",
			tier: helpers.CreateTestTier(func(tier *domain.PricingTier) {
				tier.PricePerUnit = decimal.NewFromFloat(-2.00)
			}),
			setupMocks:    func(t *testing.T, m *mocks.MockPricingRepository) {},
			expectedError: true,
			errorContains: "price_per_unit cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockPricingRepository(ctrl)
			tt.setupMocks(t, repo)

			service := services.NewPricingService(repo, helpers.TestLogger())

			saved, err := service.UpsertTier(context.Background(), tt.tier, tt.changedBy)

			if tt.expectedError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				assert.Nil(t, saved)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, saved)
		})
	}
}

func TestPricingTier_Matches(t *testing.T) {
	maxQty := 5
	banded := &domain.PricingTier{MinQty: 1, MaxQty: &maxQty}
	open := &domain.PricingTier{MinQty: 6}

	assert.True(t, banded.Matches(1))
	assert.True(t, banded.Matches(5))
	assert.False(t, banded.Matches(6))
	assert.False(t, open.Matches(5))
	assert.True(t, open.Matches(6))
	assert.True(t, open.Matches(1000))
}
