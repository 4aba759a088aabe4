// internal/core/domain/sale.go
package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// SaleStatus tracks a sale through its lifecycle. A sale only ever moves
// forward, or to Rejected before commit; a committed sale is immutable.
type SaleStatus string

const (
	SalePending       SaleStatus = "pending"
	SalePriceResolved SaleStatus = "price_resolved"
	SaleStockReserved SaleStatus = "stock_reserved"
	SaleCommitted     SaleStatus = "committed"
	SaleRejected      SaleStatus = "rejected"
)

// Sale is one committed sale transaction. Cost and Profit are kept for
// schema compatibility with cost-tracked ledgers and are always zero in
// the tiered pricing model.
type Sale struct {
	ID           int64           `json:"id"`
	ItemID       int64           `json:"item_id"`
	ItemName     string          `json:"item_name"`
	Category     ItemCategory    `json:"category"`
	Quantity     int             `json:"quantity"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	TotalSale    decimal.Decimal `json:"total_sale"`
	Cost         decimal.Decimal `json:"cost"`
	Profit       decimal.Decimal `json:"profit"`
	Overridden   bool            `json:"overridden"`
	CustomerID   *int64          `json:"customer_id,omitempty"`
	Username     string          `json:"username"`
	SaleDate     time.Time       `json:"sale_date"`
	CreatedAt    time.Time       `json:"created_at"`
}

// SaleRequest is what a caller submits to record a sale.
type SaleRequest struct {
	ItemID        int64            `json:"item_id"`
	Quantity      int              `json:"quantity"`
	CustomerID    *int64           `json:"customer_id,omitempty"`
	OverridePrice *decimal.Decimal `json:"override_price,omitempty"`
	SaleDate      time.Time        `json:"sale_date,omitempty"`
	Username      string           `json:"username"`
}

// Validate performs domain validation on the sale request
func (r *SaleRequest) Validate() error {
	if r.ItemID <= 0 {
		return fmt.Errorf("item_id is required")
	}
	if r.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive")
	}
	if r.OverridePrice != nil && r.OverridePrice.IsNegative() {
		return fmt.Errorf("override_price cannot be negative")
	}
	if r.Username == "" {
		r.Username = "system"
	}
	if r.SaleDate.IsZero() {
		r.SaleDate = time.Now()
	}
	return nil
}

// Deduction records one fridge's share of a sale's stock draw-down.
type Deduction struct {
	RowID    int64  `json:"row_id"`
	FridgeNo string `json:"fridge_no"`
	Deducted int    `json:"deducted"`
	NewQty   int    `json:"new_qty"`
}

// String renders the confirmation line shown to operators.
func (d Deduction) String() string {
	return fmt.Sprintf("Fridge %s: deducted %d, new qty=%d", d.FridgeNo, d.Deducted, d.NewQty)
}

// SaleResult is the full outcome of a committed sale.
type SaleResult struct {
	Sale       Sale        `json:"sale"`
	Status     SaleStatus  `json:"status"`
	Deductions []Deduction `json:"deductions"`
	Message    string      `json:"message"`
}
