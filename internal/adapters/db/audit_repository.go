// internal/adapters/db/audit_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/aileenong/kprimefood/internal/core/domain"
	"github.com/aileenong/kprimefood/internal/core/ports"
)

// auditRepository implements ports.AuditRepository. The ledger is
// append-only; there is no update or delete path here.
type auditRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *Database, logger *slog.Logger) ports.AuditRepository {
	return &auditRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "audit")),
	}
}

const insertAuditSQL = `
	INSERT INTO audit_log (item_name, category, action, quantity, unit_cost, selling_price, username)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING id, recorded_at`

// insertAuditEntry appends a ledger entry inside an open transaction.
// Mutating repositories call this as the last statement of their
// transaction so the entry commits or rolls back with the mutation.
func insertAuditEntry(ctx context.Context, tx pgx.Tx, e *domain.AuditEntry) error {
	err := tx.QueryRow(ctx, insertAuditSQL,
		e.ItemName, e.Category, e.Action, e.Quantity,
		e.UnitCost, e.SellingPrice, e.Username,
	).Scan(&e.ID, &e.RecordedAt)
	if err != nil {
		return fmt.Errorf("failed to append ledger entry: %w", err)
	}
	return nil
}

// Append records a ledger entry outside any caller transaction
func (r *auditRepository) Append(ctx context.Context, entry *domain.AuditEntry) error {
	err := r.db.QueryRow(ctx, insertAuditSQL,
		entry.ItemName, entry.Category, entry.Action, entry.Quantity,
		entry.UnitCost, entry.SellingPrice, entry.Username,
	).Scan(&entry.ID, &entry.RecordedAt)
	if err != nil {
		return fmt.Errorf("failed to append ledger entry: %w", err)
	}

	r.logger.DebugContext(ctx, "ledger entry appended",
		slog.Int64("entry_id", entry.ID),
		slog.String("action", string(entry.Action)))
	return nil
}

// List retrieves ledger entries with filtering, newest first
func (r *auditRepository) List(ctx context.Context, params ports.AuditListParams) (*ports.AuditListResult, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 || params.PageSize > 500 {
		params.PageSize = 50
	}

	applyFilters := func(qb squirrel.SelectBuilder) squirrel.SelectBuilder {
		if params.ItemName != "" {
			qb = qb.Where(squirrel.Eq{"item_name": domain.NormalizeName(params.ItemName)})
		}
		if params.Action != "" {
			qb = qb.Where(squirrel.Eq{"action": params.Action})
		}
		if params.Username != "" {
			qb = qb.Where(squirrel.Eq{"username": params.Username})
		}
		if params.From != nil {
			qb = qb.Where("recorded_at >= ?", *params.From)
		}
		if params.To != nil {
			qb = qb.Where("recorded_at <= ?", *params.To)
		}
		return qb
	}

	countSQL, countArgs, err := applyFilters(
		squirrel.Select("COUNT(*)").From("audit_log").PlaceholderFormat(squirrel.Dollar),
	).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build count query: %w", err)
	}

	var totalCount int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&totalCount); err != nil {
		return nil, fmt.Errorf("failed to count ledger entries: %w", err)
	}

	sqlQuery, args, err := applyFilters(squirrel.Select(
		"id", "item_name", "category", "action", "quantity",
		"unit_cost", "selling_price", "username", "recorded_at",
	).From("audit_log").
		PlaceholderFormat(squirrel.Dollar)).
		OrderBy("recorded_at DESC, id DESC").
		Limit(uint64(params.PageSize)).
		Offset(uint64((params.Page - 1) * params.PageSize)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries: %w", err)
	}
	defer rows.Close()

	result := &ports.AuditListResult{
		Entries:    []*domain.AuditEntry{},
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalCount: totalCount,
	}
	for rows.Next() {
		entry := &domain.AuditEntry{}
		if err := rows.Scan(
			&entry.ID, &entry.ItemName, &entry.Category, &entry.Action,
			&entry.Quantity, &entry.UnitCost, &entry.SellingPrice,
			&entry.Username, &entry.RecordedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		result.Entries = append(result.Entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	if params.PageSize > 0 {
		result.TotalPages = int(totalCount) / params.PageSize
		if int(totalCount)%params.PageSize > 0 {
			result.TotalPages++
		}
	}
	return result, nil
}
