// internal/workers/lowstock_processor.go
package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/aileenong/kprimefood/internal/adapters/db"
	redis_a "github.com/aileenong/kprimefood/internal/adapters/redis_adapter"
	"github.com/aileenong/kprimefood/internal/core/ports"
)

// lowStockCacheTTL keeps the last scan result available to the
// dashboard between scans.
const lowStockCacheTTL = time.Hour

// LowStockItem is one item whose total across fridges fell below the
// scan threshold.
type LowStockItem struct {
	ItemID   int64  `json:"item_id"`
	ItemName string `json:"item_name"`
	Category string `json:"category"`
	OnHand   int    `json:"on_hand"`
}

// LowStockProcessor scans the catalog for items running low.
type LowStockProcessor struct {
	db     *db.Database
	cache  ports.CacheRepository
	logger *slog.Logger
}

// NewLowStockProcessor creates a new low stock processor
func NewLowStockProcessor(database *db.Database, cache ports.CacheRepository, logger *slog.Logger) *LowStockProcessor {
	return &LowStockProcessor{
		db:     database,
		cache:  cache,
		logger: logger.With(slog.String("processor", "low_stock")),
	}
}

// ScanLowStock handles a low stock scan task
func (p *LowStockProcessor) ScanLowStock(ctx context.Context, t *asynq.Task) error {
	var payload LowStockScanPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal scan payload: %w", err)
	}
	if payload.Threshold <= 0 {
		payload.Threshold = 10
	}

	query := `
		SELECT item_id, item_name, category, SUM(quantity) AS on_hand
		FROM items
		GROUP BY item_id, item_name, category
		HAVING SUM(quantity) < $1
		ORDER BY on_hand ASC`

	rows, err := p.db.Query(ctx, query, payload.Threshold)
	if err != nil {
		return fmt.Errorf("failed to scan stock levels: %w", err)
	}
	defer rows.Close()

	items := []LowStockItem{}
	for rows.Next() {
		var item LowStockItem
		if err := rows.Scan(&item.ItemID, &item.ItemName, &item.Category, &item.OnHand); err != nil {
			return fmt.Errorf("failed to scan low stock row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating rows: %w", err)
	}

	for _, item := range items {
		p.logger.WarnContext(ctx, "item below stock threshold",
			slog.String("item_name", item.ItemName),
			slog.Int("on_hand", item.OnHand),
			slog.Int("threshold", payload.Threshold))
	}

	if p.cache != nil {
		key := redis_a.BuildKey(redis_a.PrefixStock, "low")
		if err := p.cache.SetWithTTL(ctx, key, items, lowStockCacheTTL); err != nil {
			p.logger.WarnContext(ctx, "failed to cache low stock list",
				slog.String("error", err.Error()))
		}
	}

	p.logger.InfoContext(ctx, "low stock scan complete",
		slog.Int("items_below_threshold", len(items)),
		slog.Int("threshold", payload.Threshold))

	return nil
}
