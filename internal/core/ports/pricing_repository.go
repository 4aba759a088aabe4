// internal/core/ports/pricing_repository.go
package ports

import (
	"context"

	"github.com/aileenong/kprimefood/internal/core/domain"
)

// PricingRepository defines the persistence port for pricing tiers.
type PricingRepository interface {
	// ResolveTier returns the tier covering qty with the greatest
	// min_qty, or domain.ErrNoPricingTier when nothing matches.
	ResolveTier(ctx context.Context, itemID int64, qty int) (*domain.PricingTier, error)

	// Upsert updates the tier matching (item_id, min_qty, max_qty) in
	// place or inserts a new one. A price change also appends a price
	// history row and a ledger entry in the same transaction.
	Upsert(ctx context.Context, tier *domain.PricingTier, changedBy string) (*domain.PricingTier, error)

	TiersByItem(ctx context.Context, itemID int64) ([]domain.PricingTier, error)
	Delete(ctx context.Context, tierID int64) error
	PriceHistory(ctx context.Context, itemID int64) ([]domain.PriceChange, error)
}
