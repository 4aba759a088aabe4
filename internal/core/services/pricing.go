// internal/core/services/pricing.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aileenong/kprimefood/internal/core/domain"
	"github.com/aileenong/kprimefood/internal/core/ports"
)

// PricingService handles tier resolution and maintenance
type PricingService struct {
	repo   ports.PricingRepository
	logger *slog.Logger
}

// Statically assert that *PricingService implements the PricingService interface.
var _ ports.PricingService = (*PricingService)(nil)

// NewPricingService creates a new pricing service
func NewPricingService(repo ports.PricingRepository, logger *slog.Logger) *PricingService {
	return &PricingService{
		repo:   repo,
		logger: logger.With(slog.String("service", "pricing")),
	}
}

// ResolvePrice picks the unit price for an order quantity. Among tiers
// whose band covers the quantity, the one with the greatest min_qty
// wins. No matching tier is a rejection; it is never treated as a free
// or zero price.
func (s *PricingService) ResolvePrice(ctx context.Context, itemID int64, qty int) (*domain.ResolvedPrice, error) {
	if qty <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}

	tier, err := s.repo.ResolveTier(ctx, itemID, qty)
	if err != nil {
		return nil, err
	}

	return &domain.ResolvedPrice{
		ItemID:       itemID,
		Quantity:     qty,
		PricePerUnit: tier.PricePerUnit,
		TierID:       tier.ID,
		TierLabel:    tier.Label,
	}, nil
}

// UpsertTier updates the tier on its exact (item, min, max) band or
// inserts a new one. Price changes are journaled.
func (s *PricingService) UpsertTier(ctx context.Context, tier *domain.PricingTier, changedBy string) (*domain.PricingTier, error) {
	if err := tier.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if changedBy == "" {
		changedBy = "system"
	}

	saved, err := s.repo.Upsert(ctx, tier, changedBy)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert tier: %w", err)
	}

	s.logger.InfoContext(ctx, "pricing tier upserted",
		slog.Int64("item_id", saved.ItemID),
		slog.Int("min_qty", saved.MinQty),
		slog.String("price_per_unit", saved.PricePerUnit.String()))

	return saved, nil
}

// DeleteTier removes a tier. Committed sales keep the price they
// resolved at the time of sale.
func (s *PricingService) DeleteTier(ctx context.Context, tierID int64) error {
	if err := s.repo.Delete(ctx, tierID); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "pricing tier deleted", slog.Int64("tier_id", tierID))
	return nil
}

// TiersByItem lists an item's tiers ordered by min_qty.
func (s *PricingService) TiersByItem(ctx context.Context, itemID int64) ([]domain.PricingTier, error) {
	tiers, err := s.repo.TiersByItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tiers: %w", err)
	}
	return tiers, nil
}

// PriceHistory lists recorded price changes for an item, newest first.
func (s *PricingService) PriceHistory(ctx context.Context, itemID int64) ([]domain.PriceChange, error) {
	history, err := s.repo.PriceHistory(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to load price history: %w", err)
	}
	return history, nil
}
