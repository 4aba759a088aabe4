// internal/adapters/db/order_number_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aileenong/kprimefood/internal/core/ports"
)

// orderNumberRepository implements ports.OrderNumberRepository over the
// po_sequence table, one counter row per calendar date.
type orderNumberRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewOrderNumberRepository creates a new order number repository
func NewOrderNumberRepository(db *Database, logger *slog.Logger) ports.OrderNumberRepository {
	return &orderNumberRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "order_number")),
	}
}

// NextSequence advances and returns the counter for the given date.
// The upsert is a single statement, so concurrent callers each get a
// distinct value.
func (r *orderNumberRepository) NextSequence(ctx context.Context, date time.Time) (int, error) {
	query := `
		INSERT INTO po_sequence (order_date, seq)
		VALUES ($1, 1)
		ON CONFLICT (order_date) DO UPDATE SET seq = po_sequence.seq + 1
		RETURNING seq`

	var seq int
	if err := r.db.QueryRow(ctx, query, date.Format("2006-01-02")).Scan(&seq); err != nil {
		return 0, fmt.Errorf("failed to advance po sequence: %w", err)
	}

	r.logger.DebugContext(ctx, "po sequence advanced",
		slog.String("order_date", date.Format("2006-01-02")),
		slog.Int("seq", seq))
	return seq, nil
}
