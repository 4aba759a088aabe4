// internal/core/domain/statement.go
package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// StatementLine is one sale as it appears on a customer statement.
type StatementLine struct {
	SaleID    int64           `json:"sale_id"`
	SaleDate  time.Time       `json:"sale_date"`
	ItemName  string          `json:"item_name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
}

// Statement is the assembled statement-of-account data for one customer
// over a date range. Rendering (PDF, print layout) is the caller's job.
type Statement struct {
	Customer      Customer        `json:"customer"`
	PeriodStart   time.Time       `json:"period_start"`
	PeriodEnd     time.Time       `json:"period_end"`
	Lines         []StatementLine `json:"lines"`
	TotalQuantity int             `json:"total_quantity"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	GeneratedAt   time.Time       `json:"generated_at"`
}

// PurchaseOrderNumber formats a minted per-date sequence value as the
// order number handed to suppliers.
func PurchaseOrderNumber(date time.Time, seq int) string {
	return fmt.Sprintf("PO-%s-%d", date.Format("20060102"), seq)
}
