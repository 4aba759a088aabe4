// internal/core/domain/audit.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuditAction identifies what a ledger entry records
type AuditAction string

// Audit action constants. The wording is part of the stored data and is
// matched by downstream reports, so it stays stable.
const (
	ActionAdd         AuditAction = "Add"
	ActionUpdate      AuditAction = "Update"
	ActionAddFridge   AuditAction = "Add (New Fridge)"
	ActionDelete      AuditAction = "Delete"
	ActionSale        AuditAction = "Sale"
	ActionPriceChange AuditAction = "Price Change"
)

// AuditEntry is one append-only ledger row. Entries are never updated
// or deleted; corrections land as new entries.
type AuditEntry struct {
	ID           int64           `json:"id"`
	ItemName     string          `json:"item_name"`
	Category     ItemCategory    `json:"category"`
	Action       AuditAction     `json:"action"`
	Quantity     int             `json:"quantity"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	Username     string          `json:"username"`
	RecordedAt   time.Time       `json:"recorded_at"`
}
