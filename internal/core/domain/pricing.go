// internal/core/domain/pricing.go
package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PricingTier maps an order-quantity band to a unit price for one item.
// MaxQty nil means the band is open-ended. Bands are not checked for
// overlap; resolution picks the matching tier with the greatest MinQty.
type PricingTier struct {
	ID           int64           `json:"id"`
	ItemID       int64           `json:"item_id"`
	MinQty       int             `json:"min_qty"`
	MaxQty       *int            `json:"max_qty,omitempty"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
	Label        string          `json:"label,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// Matches reports whether qty falls inside this tier's band.
func (t *PricingTier) Matches(qty int) bool {
	if qty < t.MinQty {
		return false
	}
	return t.MaxQty == nil || qty <= *t.MaxQty
}

// Validate performs domain validation on the tier
func (t *PricingTier) Validate() error {
	if t.ItemID <= 0 {
		return fmt.Errorf("item_id is required")
	}
	if t.MinQty < 1 {
		return fmt.Errorf("min_qty must be at least 1")
	}
	if t.MaxQty != nil && *t.MaxQty < t.MinQty {
		return fmt.Errorf("max_qty cannot be below min_qty")
	}
	if t.PricePerUnit.IsNegative() {
		return fmt.Errorf("price_per_unit cannot be negative")
	}
	return nil
}

// PriceChange is one recorded change of a tier's unit price.
type PriceChange struct {
	ID        int64           `json:"id"`
	ItemID    int64           `json:"item_id"`
	MinQty    int             `json:"min_qty"`
	MaxQty    *int            `json:"max_qty,omitempty"`
	OldPrice  decimal.Decimal `json:"old_price"`
	NewPrice  decimal.Decimal `json:"new_price"`
	ChangedBy string          `json:"changed_by"`
	ChangedAt time.Time       `json:"changed_at"`
}

// ResolvedPrice is the outcome of tier resolution for a quantity.
type ResolvedPrice struct {
	ItemID       int64           `json:"item_id"`
	Quantity     int             `json:"quantity"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
	TierID       int64           `json:"tier_id,omitempty"`
	TierLabel    string          `json:"tier_label,omitempty"`
	Overridden   bool            `json:"overridden"`
}

// Total returns quantity times unit price.
func (r ResolvedPrice) Total() decimal.Decimal {
	return r.PricePerUnit.Mul(decimal.NewFromInt(int64(r.Quantity)))
}
