// internal/core/services/allocator.go
package services

import (
	"github.com/aileenong/kprimefood/internal/core/domain"
)

// PlanDeductions walks the item's location rows in their stable order
// (fridge, then row id) and plans how a sale quantity is drawn down:
// each row gives up min(row quantity, remaining) until the request is
// satisfied. The plan carries the post-deduction quantity per row for
// operator confirmation lines.
//
// The walk is pure; nothing is persisted here. Rows with zero quantity
// are skipped. If the rows cannot cover the quantity the plan is
// abandoned and an insufficient stock error is returned.
func PlanDeductions(rows []domain.StockRow, quantity int) ([]domain.Deduction, error) {
	remaining := quantity
	plan := make([]domain.Deduction, 0, len(rows))

	for _, row := range rows {
		if remaining == 0 {
			break
		}
		if row.Quantity <= 0 {
			continue
		}

		take := row.Quantity
		if take > remaining {
			take = remaining
		}

		plan = append(plan, domain.Deduction{
			RowID:    row.ID,
			FridgeNo: row.FridgeNo,
			Deducted: take,
			NewQty:   row.Quantity - take,
		})
		remaining -= take
	}

	if remaining > 0 {
		name := ""
		if len(rows) > 0 {
			name = rows[0].ItemName
		}
		return nil, &domain.InsufficientStockError{
			ItemName:  name,
			Requested: quantity,
			OnHand:    quantity - remaining,
		}
	}

	return plan, nil
}
