// internal/core/services/allocator_test.go
package services_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aileenong/kprimefood/internal/core/domain"
	"github.com/aileenong/kprimefood/internal/core/services"
	"github.com/aileenong/kprimefood/test/helpers"
)

func TestPlanDeductions(t *testing.T) {
	tests := []struct {
		name          string
		rows          []domain.StockRow
		quantity      int
		expectedPlan  []domain.Deduction
		expectedError bool
	}{
		{
			name:     "spans_two_fridges_in_order",
			rows:     helpers.CreateTestStockRows(),
			quantity: 5,
			expectedPlan: []domain.Deduction{
				{RowID: 1, FridgeNo: "A", Deducted: 3, NewQty: 0},
				{RowID: 2, FridgeNo: "B", Deducted: 2, NewQty: 2},
			},
		},
		{
			name:     "single_fridge_covers_request",
			rows:     helpers.CreateTestStockRows(),
			quantity: 2,
			expectedPlan: []domain.Deduction{
				{RowID: 1, FridgeNo: "A", Deducted: 2, NewQty: 1},
			},
		},
		{
			name:     "drains_all_fridges_exactly",
			rows:     helpers.CreateTestStockRows(),
			quantity: 7,
			expectedPlan: []domain.Deduction{
				{RowID: 1, FridgeNo: "A", Deducted: 3, NewQty: 0},
				{RowID: 2, FridgeNo: "B", Deducted: 4, NewQty: 0},
			},
		},
		{
			name: "skips_empty_rows",
			rows: []domain.StockRow{
				*helpers.CreateTestStockRow(func(r *domain.StockRow) { r.Quantity = 0 }),
				*helpers.CreateTestStockRow(func(r *domain.StockRow) {
					r.ID = 2
					r.FridgeNo = "B"
					r.Quantity = 4
				}),
			},
			quantity: 3,
			expectedPlan: []domain.Deduction{
				{RowID: 2, FridgeNo: "B", Deducted: 3, NewQty: 1},
			},
		},
		{
			name:          "insufficient_stock_abandons_plan",
			rows:          helpers.CreateTestStockRows(),
			quantity:      8,
			expectedError: true,
		},
		{
			name:          "no_rows_at_all",
			rows:          nil,
			quantity:      1,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := services.PlanDeductions(tt.rows, tt.quantity)

			if tt.expectedError {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrInsufficientStock))
				assert.Nil(t, plan)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedPlan, plan)
		})
	}
}

func TestPlanDeductions_ReportsOnHandInError(t *testing.T) {
	rows := helpers.CreateTestStockRows()

	_, err := services.PlanDeductions(rows, 10)

	var insufficientErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficientErr)
	assert.Equal(t, "RIBEYE", insufficientErr.ItemName)
	assert.Equal(t, 10, insufficientErr.Requested)
	assert.Equal(t, 7, insufficientErr.OnHand)
}
