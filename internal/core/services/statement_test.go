// internal/core/services/statement_test.go
package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/aileenong/kprimefood/internal/core/domain"
	"github.com/aileenong/kprimefood/internal/core/services"
	"github.com/aileenong/kprimefood/test/helpers"
	"github.com/aileenong/kprimefood/test/mocks"
)

func TestStatementService_BuildStatement(t *testing.T) {
	from := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 8, 31, 23, 59, 59, 0, time.UTC)

	t.Run("totals_cover_all_lines", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		customers := mocks.NewMockCustomerRepository(ctrl)
		sales := mocks.NewMockSaleRepository(ctrl)
		orders := mocks.NewMockOrderNumberRepository(ctrl)

		customers.EXPECT().
			FindByID(gomock.Any(), int64(1)).
			Return(helpers.CreateTestCustomer(), nil)
		sales.EXPECT().
			SalesByCustomer(gomock.Any(), int64(1), from, to).
			Return([]domain.Sale{
				{
					ID:           10,
					ItemName:     "RIBEYE",
					Quantity:     5,
					SellingPrice: decimal.NewFromFloat(10.00),
					TotalSale:    decimal.NewFromFloat(50.00),
					SaleDate:     from.AddDate(0, 0, 3),
				},
				{
					ID:           11,
					ItemName:     "PORK BELLY",
					Quantity:     10,
					SellingPrice: decimal.NewFromFloat(5.80),
					TotalSale:    decimal.NewFromFloat(58.00),
					SaleDate:     from.AddDate(0, 0, 12),
				},
			}, nil)

		service := services.NewStatementService(customers, sales, orders, helpers.TestLogger())

		stmt, err := service.BuildStatement(context.Background(), 1, from, to)
		require.NoError(t, err)
		require.Len(t, stmt.Lines, 2)
		assert.Equal(t, "GOLDEN WOK RESTAURANT", stmt.Customer.Name)
		assert.Equal(t, 15, stmt.TotalQuantity)
		assert.True(t, stmt.TotalAmount.Equal(decimal.NewFromFloat(108.00)))
		assert.Equal(t, from, stmt.PeriodStart)
		assert.Equal(t, to, stmt.PeriodEnd)
	})

	t.Run("empty_period_yields_zero_totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		customers := mocks.NewMockCustomerRepository(ctrl)
		sales := mocks.NewMockSaleRepository(ctrl)
		orders := mocks.NewMockOrderNumberRepository(ctrl)

		customers.EXPECT().
			FindByID(gomock.Any(), int64(1)).
			Return(helpers.CreateTestCustomer(), nil)
		sales.EXPECT().
			SalesByCustomer(gomock.Any(), int64(1), from, to).
			Return(nil, nil)

		service := services.NewStatementService(customers, sales, orders, helpers.TestLogger())

		stmt, err := service.BuildStatement(context.Background(), 1, from, to)
		require.NoError(t, err)
		assert.Empty(t, stmt.Lines)
		assert.Equal(t, 0, stmt.TotalQuantity)
		assert.True(t, stmt.TotalAmount.IsZero())
	})

	t.Run("unknown_customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		customers := mocks.NewMockCustomerRepository(ctrl)
		sales := mocks.NewMockSaleRepository(ctrl)
		orders := mocks.NewMockOrderNumberRepository(ctrl)

		customers.EXPECT().
			FindByID(gomock.Any(), int64(404)).
			Return(nil, nil)

		service := services.NewStatementService(customers, sales, orders, helpers.TestLogger())

		stmt, err := service.BuildStatement(context.Background(), 404, from, to)
		require.ErrorIs(t, err, domain.ErrCustomerNotFound)
		assert.Nil(t, stmt)
	})
}

func TestStatementService_NextOrderNumber(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customers := mocks.NewMockCustomerRepository(ctrl)
	sales := mocks.NewMockSaleRepository(ctrl)
	orders := mocks.NewMockOrderNumberRepository(ctrl)

	date := time.Date(2025, 9, 1, 10, 30, 0, 0, time.UTC)
	orders.EXPECT().
		NextSequence(gomock.Any(), date).
		Return(4, nil)

	service := services.NewStatementService(customers, sales, orders, helpers.TestLogger())

	po, err := service.NextOrderNumber(context.Background(), date)
	require.NoError(t, err)
	assert.Equal(t, "PO-20250901-4", po)
}

func TestPurchaseOrderNumber_Format(t *testing.T) {
	date := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "PO-20250105-1", domain.PurchaseOrderNumber(date, 1))
	assert.Equal(t, "PO-20250105-12", domain.PurchaseOrderNumber(date, 12))
}
