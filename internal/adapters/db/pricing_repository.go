// internal/adapters/db/pricing_repository.go
package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/aileenong/kprimefood/internal/core/domain"
	"github.com/aileenong/kprimefood/internal/core/ports"
)

// pricingRepository implements ports.PricingRepository
type pricingRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewPricingRepository creates a new pricing repository
func NewPricingRepository(db *Database, logger *slog.Logger) ports.PricingRepository {
	return &pricingRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "pricing")),
	}
}

const tierColumns = `id, item_id, min_qty, max_qty, price_per_unit, label, created_at, updated_at`

// ResolveTier picks the covering tier with the greatest min_qty. Equal
// min_qty bands are broken by insertion order, which keeps resolution
// deterministic even with overlapping tiers.
func (r *pricingRepository) ResolveTier(ctx context.Context, itemID int64, qty int) (*domain.PricingTier, error) {
	query := `
		SELECT ` + tierColumns + `
		FROM pricing_tiers
		WHERE item_id = $1
		  AND min_qty <= $2
		  AND (max_qty IS NULL OR max_qty >= $2)
		ORDER BY min_qty DESC, id ASC
		LIMIT 1`

	tier := &domain.PricingTier{}
	var label *string
	err := r.db.QueryRow(ctx, query, itemID, qty).Scan(
		&tier.ID, &tier.ItemID, &tier.MinQty, &tier.MaxQty,
		&tier.PricePerUnit, &label, &tier.CreatedAt, &tier.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNoPricingTier
		}
		return nil, fmt.Errorf("failed to resolve pricing tier: %w", err)
	}
	if label != nil {
		tier.Label = *label
	}
	return tier, nil
}

// Upsert updates the tier on its exact (item, min, max) band or inserts
// a new one. A changed price also journals the old and new value and
// appends a Price Change ledger entry in the same transaction.
func (r *pricingRepository) Upsert(ctx context.Context, tier *domain.PricingTier, changedBy string) (*domain.PricingTier, error) {
	saved := *tier

	err := r.db.Transaction(ctx, func(tx pgx.Tx) error {
		var existingID int64
		var oldPrice decimal.Decimal

		err := tx.QueryRow(ctx, `
			SELECT id, price_per_unit FROM pricing_tiers
			WHERE item_id = $1 AND min_qty = $2 AND max_qty IS NOT DISTINCT FROM $3
			FOR UPDATE`,
			tier.ItemID, tier.MinQty, tier.MaxQty,
		).Scan(&existingID, &oldPrice)

		switch {
		case errors.Is(err, pgx.ErrNoRows):
			insert := `
				INSERT INTO pricing_tiers (item_id, min_qty, max_qty, price_per_unit, label)
				VALUES ($1, $2, $3, $4, NULLIF($5, ''))
				RETURNING id, created_at, updated_at`
			if err := tx.QueryRow(ctx, insert,
				tier.ItemID, tier.MinQty, tier.MaxQty, tier.PricePerUnit, tier.Label,
			).Scan(&saved.ID, &saved.CreatedAt, &saved.UpdatedAt); err != nil {
				return fmt.Errorf("failed to insert pricing tier: %w", err)
			}
			return nil

		case err != nil:
			return fmt.Errorf("failed to look up pricing tier: %w", err)
		}

		update := `
			UPDATE pricing_tiers
			SET price_per_unit = $2, label = NULLIF($3, ''), updated_at = NOW()
			WHERE id = $1
			RETURNING created_at, updated_at`
		if err := tx.QueryRow(ctx, update,
			existingID, tier.PricePerUnit, tier.Label,
		).Scan(&saved.CreatedAt, &saved.UpdatedAt); err != nil {
			return fmt.Errorf("failed to update pricing tier: %w", err)
		}
		saved.ID = existingID

		if oldPrice.Equal(tier.PricePerUnit) {
			return nil
		}

		if _, err := tx.Exec(ctx, `
			INSERT INTO price_history (item_id, min_qty, max_qty, old_price, new_price, changed_by)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			tier.ItemID, tier.MinQty, tier.MaxQty, oldPrice, tier.PricePerUnit, changedBy,
		); err != nil {
			return fmt.Errorf("failed to journal price change: %w", err)
		}

		itemName, category := r.itemIdentity(ctx, tx, tier.ItemID)
		return insertAuditEntry(ctx, tx, &domain.AuditEntry{
			ItemName:     itemName,
			Category:     category,
			Action:       domain.ActionPriceChange,
			Quantity:     tier.MinQty,
			UnitCost:     decimal.Zero,
			SellingPrice: tier.PricePerUnit,
			Username:     changedBy,
		})
	})
	if err != nil {
		return nil, err
	}

	r.logger.DebugContext(ctx, "pricing tier upserted",
		slog.Int64("tier_id", saved.ID),
		slog.Int64("item_id", saved.ItemID))
	return &saved, nil
}

// itemIdentity resolves the display name for ledger entries. Tiers can
// exist ahead of stock, so a missing item falls back to a placeholder.
func (r *pricingRepository) itemIdentity(ctx context.Context, tx pgx.Tx, itemID int64) (string, domain.ItemCategory) {
	var name string
	var category domain.ItemCategory
	err := tx.QueryRow(ctx,
		`SELECT item_name, category FROM items WHERE item_id = $1 ORDER BY id ASC LIMIT 1`,
		itemID,
	).Scan(&name, &category)
	if err != nil {
		return fmt.Sprintf("ITEM %d", itemID), domain.CategoryOther
	}
	return name, category
}

// TiersByItem lists an item's tiers ordered by band
func (r *pricingRepository) TiersByItem(ctx context.Context, itemID int64) ([]domain.PricingTier, error) {
	query := `
		SELECT ` + tierColumns + `
		FROM pricing_tiers
		WHERE item_id = $1
		ORDER BY min_qty ASC, id ASC`

	rows, err := r.db.Query(ctx, query, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to query pricing tiers: %w", err)
	}
	defer rows.Close()

	tiers := []domain.PricingTier{}
	for rows.Next() {
		var tier domain.PricingTier
		var label *string
		if err := rows.Scan(
			&tier.ID, &tier.ItemID, &tier.MinQty, &tier.MaxQty,
			&tier.PricePerUnit, &label, &tier.CreatedAt, &tier.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan pricing tier: %w", err)
		}
		if label != nil {
			tier.Label = *label
		}
		tiers = append(tiers, tier)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return tiers, nil
}

// Delete removes a tier unconditionally
func (r *pricingRepository) Delete(ctx context.Context, tierID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM pricing_tiers WHERE id = $1`, tierID)
	if err != nil {
		return fmt.Errorf("failed to delete pricing tier: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTierNotFound
	}
	return nil
}

// PriceHistory lists recorded price changes, newest first
func (r *pricingRepository) PriceHistory(ctx context.Context, itemID int64) ([]domain.PriceChange, error) {
	query := `
		SELECT id, item_id, min_qty, max_qty, old_price, new_price, changed_by, changed_at
		FROM price_history
		WHERE item_id = $1
		ORDER BY changed_at DESC, id DESC`

	rows, err := r.db.Query(ctx, query, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to query price history: %w", err)
	}
	defer rows.Close()

	history := []domain.PriceChange{}
	for rows.Next() {
		var change domain.PriceChange
		if err := rows.Scan(
			&change.ID, &change.ItemID, &change.MinQty, &change.MaxQty,
			&change.OldPrice, &change.NewPrice, &change.ChangedBy, &change.ChangedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan price change: %w", err)
		}
		history = append(history, change)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return history, nil
}
