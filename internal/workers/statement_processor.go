// internal/workers/statement_processor.go
package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/hibiken/asynq"

	redis_a "github.com/aileenong/kprimefood/internal/adapters/redis_adapter"
	"github.com/aileenong/kprimefood/internal/adapters/storage"
	"github.com/aileenong/kprimefood/internal/core/ports"
)

// statementCacheTTL keeps freshly archived snapshots warm for reads.
const statementCacheTTL = 6 * time.Hour

// StatementProcessor assembles customer statements in the background
// and archives the JSON snapshot to object storage.
type StatementProcessor struct {
	statements ports.StatementService
	archive    storage.ArchiveClient
	cache      ports.CacheRepository
	logger     *slog.Logger
}

// NewStatementProcessor creates a new statement processor
func NewStatementProcessor(
	statements ports.StatementService,
	archive storage.ArchiveClient,
	cache ports.CacheRepository,
	logger *slog.Logger,
) *StatementProcessor {
	return &StatementProcessor{
		statements: statements,
		archive:    archive,
		cache:      cache,
		logger:     logger.With(slog.String("processor", "statement")),
	}
}

// ProcessSnapshot handles a statement snapshot task
func (p *StatementProcessor) ProcessSnapshot(ctx context.Context, t *asynq.Task) error {
	var payload StatementSnapshotPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal snapshot payload: %w", err)
	}

	p.logger.InfoContext(ctx, "assembling statement snapshot",
		slog.Int64("customer_id", payload.CustomerID),
		slog.Time("from", payload.From),
		slog.Time("to", payload.To))

	stmt, err := p.statements.BuildStatement(ctx, payload.CustomerID, payload.From, payload.To)
	if err != nil {
		return fmt.Errorf("failed to build statement: %w", err)
	}

	data, err := json.Marshal(stmt)
	if err != nil {
		return fmt.Errorf("failed to marshal statement: %w", err)
	}

	key, err := p.archive.ArchiveStatement(ctx, payload.CustomerID, payload.To, data)
	if err != nil {
		return fmt.Errorf("failed to archive statement: %w", err)
	}

	if p.cache != nil {
		cacheKey := redis_a.BuildKey(redis_a.PrefixStatement,
			strconv.FormatInt(payload.CustomerID, 10), payload.To.Format("20060102"))
		if err := p.cache.SetWithTTL(ctx, cacheKey, stmt, statementCacheTTL); err != nil {
			p.logger.WarnContext(ctx, "failed to cache statement snapshot",
				slog.String("key", cacheKey),
				slog.String("error", err.Error()))
		}
	}

	p.logger.InfoContext(ctx, "statement snapshot archived",
		slog.Int64("customer_id", payload.CustomerID),
		slog.String("archive_key", key),
		slog.Int("lines", len(stmt.Lines)))

	return nil
}
