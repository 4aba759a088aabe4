// internal/workers/cleanup_processor.go
package workers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/aileenong/kprimefood/internal/adapters/db"
	"github.com/aileenong/kprimefood/internal/pkg/config"
)

// CleanupProcessor handles retention housekeeping tasks
type CleanupProcessor struct {
	db     *db.Database
	config *config.Config
	logger *slog.Logger
}

// NewCleanupProcessor creates a new cleanup processor
func NewCleanupProcessor(database *db.Database, cfg *config.Config, logger *slog.Logger) *CleanupProcessor {
	return &CleanupProcessor{
		db:     database,
		config: cfg,
		logger: logger.With(slog.String("processor", "cleanup")),
	}
}

// CleanupOldData prunes exhausted purchase order counters and stale
// price history. The audit ledger and sales are never touched here.
func (p *CleanupProcessor) CleanupOldData(ctx context.Context, t *asynq.Task) error {
	retentionDays := p.config.Retention.HistoryDays
	if retentionDays <= 0 {
		retentionDays = 365
	}

	p.logger.InfoContext(ctx, "cleaning up old data",
		slog.Int("retention_days", retentionDays))

	result, err := p.db.Exec(ctx,
		`DELETE FROM po_sequence WHERE order_date < NOW() - make_interval(days => $1)`,
		retentionDays,
	)
	if err != nil {
		return fmt.Errorf("failed to cleanup po sequence: %w", err)
	}
	poDeleted := result.RowsAffected()

	result, err = p.db.Exec(ctx,
		`DELETE FROM price_history WHERE changed_at < NOW() - make_interval(days => $1)`,
		retentionDays,
	)
	if err != nil {
		return fmt.Errorf("failed to cleanup price history: %w", err)
	}

	p.logger.InfoContext(ctx, "old data cleaned up",
		slog.Int64("po_rows_deleted", poDeleted),
		slog.Int64("price_history_deleted", result.RowsAffected()))

	return nil
}
