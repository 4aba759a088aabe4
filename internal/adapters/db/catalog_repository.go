// internal/adapters/db/catalog_repository.go
package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/aileenong/kprimefood/internal/core/domain"
	"github.com/aileenong/kprimefood/internal/core/ports"
)

// catalogRepository implements ports.CatalogRepository
type catalogRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *Database, logger *slog.Logger) ports.CatalogRepository {
	return &catalogRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "catalog")),
	}
}

const stockRowColumns = `id, item_id, item_name, category, quantity, fridge_no, created_at, updated_at`

// Upsert applies a stock addition inside one transaction. The matching
// (item, fridge) row accumulates; otherwise a new row is inserted,
// reusing the item id when the item already lives in another fridge.
// The ledger entry is the last statement of the transaction so the row
// change and its entry commit or roll back together.
func (r *catalogRepository) Upsert(ctx context.Context, req *domain.StockUpsert) (*domain.StockRow, domain.UpsertOutcome, error) {
	var row domain.StockRow
	var outcome domain.UpsertOutcome

	err := r.db.Transaction(ctx, func(tx pgx.Tx) error {
		accumulate := `
			UPDATE items
			SET quantity = quantity + $4, updated_at = NOW()
			WHERE item_name = $1 AND category = $2 AND fridge_no = $3
			RETURNING ` + stockRowColumns

		err := tx.QueryRow(ctx, accumulate,
			req.ItemName, req.Category, req.FridgeNo, req.Quantity,
		).Scan(
			&row.ID, &row.ItemID, &row.ItemName, &row.Category,
			&row.Quantity, &row.FridgeNo, &row.CreatedAt, &row.UpdatedAt,
		)
		switch {
		case err == nil:
			outcome = domain.OutcomeAccumulated
		case errors.Is(err, pgx.ErrNoRows):
			outcome, err = r.insertRow(ctx, tx, req, &row)
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("failed to accumulate stock row: %w", err)
		}

		action := domain.ActionUpdate
		switch outcome {
		case domain.OutcomeCreated:
			action = domain.ActionAdd
		case domain.OutcomeNewFridge:
			action = domain.ActionAddFridge
		}

		return insertAuditEntry(ctx, tx, &domain.AuditEntry{
			ItemName:     row.ItemName,
			Category:     row.Category,
			Action:       action,
			Quantity:     req.Quantity,
			UnitCost:     decimal.Zero,
			SellingPrice: decimal.Zero,
			Username:     req.Username,
		})
	})
	if err != nil {
		return nil, "", err
	}

	r.logger.DebugContext(ctx, "stock row upserted",
		slog.Int64("row_id", row.ID),
		slog.String("outcome", string(outcome)))

	return &row, outcome, nil
}

// insertRow creates a new location row, minting a fresh item id when
// the item name is unknown to the catalog.
func (r *catalogRepository) insertRow(ctx context.Context, tx pgx.Tx, req *domain.StockUpsert, row *domain.StockRow) (domain.UpsertOutcome, error) {
	var itemID int64
	outcome := domain.OutcomeNewFridge

	err := tx.QueryRow(ctx,
		`SELECT item_id FROM items WHERE item_name = $1 ORDER BY id ASC LIMIT 1`,
		req.ItemName,
	).Scan(&itemID)
	if errors.Is(err, pgx.ErrNoRows) {
		if err := tx.QueryRow(ctx, `SELECT nextval('item_id_seq')`).Scan(&itemID); err != nil {
			return "", fmt.Errorf("failed to mint item id: %w", err)
		}
		outcome = domain.OutcomeCreated
	} else if err != nil {
		return "", fmt.Errorf("failed to look up item id: %w", err)
	}

	insert := `
		INSERT INTO items (item_id, item_name, category, quantity, fridge_no)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + stockRowColumns

	err = tx.QueryRow(ctx, insert,
		itemID, req.ItemName, req.Category, req.Quantity, req.FridgeNo,
	).Scan(
		&row.ID, &row.ItemID, &row.ItemName, &row.Category,
		&row.Quantity, &row.FridgeNo, &row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert stock row: %w", err)
	}
	return outcome, nil
}

// rowQuerier is satisfied by both the pool-backed Database and pgx.Tx,
// so the guarded update below can run standalone or inside a sale
// transaction.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// applyRowDelta runs the guarded quantity update on one location row.
// A missed guard is disambiguated with a follow-up read: the row being
// gone and the row holding too little are different failures.
func applyRowDelta(ctx context.Context, q rowQuerier, rowID int64, delta int) (*domain.StockRow, error) {
	guarded := `
		UPDATE items
		SET quantity = quantity + $2, updated_at = NOW()
		WHERE id = $1 AND quantity + $2 >= 0
		RETURNING ` + stockRowColumns

	var row domain.StockRow
	err := q.QueryRow(ctx, guarded, rowID, delta).Scan(
		&row.ID, &row.ItemID, &row.ItemName, &row.Category,
		&row.Quantity, &row.FridgeNo, &row.CreatedAt, &row.UpdatedAt,
	)
	if err == nil {
		return &row, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to apply stock delta: %w", err)
	}

	var current domain.StockRow
	err = q.QueryRow(ctx, `SELECT `+stockRowColumns+` FROM items WHERE id = $1`, rowID).Scan(
		&current.ID, &current.ItemID, &current.ItemName, &current.Category,
		&current.Quantity, &current.FridgeNo, &current.CreatedAt, &current.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrRowNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to inspect stock row: %w", err)
	}
	return nil, &domain.InsufficientStockError{
		ItemName:  current.ItemName,
		Requested: -delta,
		OnHand:    current.Quantity,
	}
}

// ApplyDelta adjusts a single location row by a signed delta
func (r *catalogRepository) ApplyDelta(ctx context.Context, rowID int64, delta int) (*domain.StockRow, error) {
	row, err := applyRowDelta(ctx, r.db, rowID, delta)
	if err != nil {
		return nil, err
	}

	r.logger.DebugContext(ctx, "stock delta applied",
		slog.Int64("row_id", rowID),
		slog.Int("delta", delta),
		slog.Int("new_quantity", row.Quantity))

	return row, nil
}

// RowsByName retrieves the item's location rows in deduction order
func (r *catalogRepository) RowsByName(ctx context.Context, itemName string) ([]domain.StockRow, error) {
	query := `
		SELECT ` + stockRowColumns + `
		FROM items
		WHERE item_name = $1
		ORDER BY fridge_no ASC, id ASC`

	return r.scanRows(ctx, query, itemName)
}

// RowsByItemID retrieves location rows sharing one logical item id
func (r *catalogRepository) RowsByItemID(ctx context.Context, itemID int64) ([]domain.StockRow, error) {
	query := `
		SELECT ` + stockRowColumns + `
		FROM items
		WHERE item_id = $1
		ORDER BY fridge_no ASC, id ASC`

	return r.scanRows(ctx, query, itemID)
}

func (r *catalogRepository) scanRows(ctx context.Context, query string, arg interface{}) ([]domain.StockRow, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock rows: %w", err)
	}
	defer rows.Close()

	result := []domain.StockRow{}
	for rows.Next() {
		var row domain.StockRow
		if err := rows.Scan(
			&row.ID, &row.ItemID, &row.ItemName, &row.Category,
			&row.Quantity, &row.FridgeNo, &row.CreatedAt, &row.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan stock row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return result, nil
}

// FindRow retrieves a single location row by its row id
func (r *catalogRepository) FindRow(ctx context.Context, rowID int64) (*domain.StockRow, error) {
	query := `SELECT ` + stockRowColumns + ` FROM items WHERE id = $1`

	var row domain.StockRow
	err := r.db.QueryRow(ctx, query, rowID).Scan(
		&row.ID, &row.ItemID, &row.ItemName, &row.Category,
		&row.Quantity, &row.FridgeNo, &row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find stock row: %w", err)
	}
	return &row, nil
}

// TotalOnHand sums quantity across all of the item's rows. A drained
// item reports zero; an unknown item reports ErrItemNotFound.
func (r *catalogRepository) TotalOnHand(ctx context.Context, itemName string) (int, error) {
	query := `SELECT COALESCE(SUM(quantity), 0), COUNT(*) FROM items WHERE item_name = $1`

	var total, count int
	if err := r.db.QueryRow(ctx, query, itemName).Scan(&total, &count); err != nil {
		return 0, fmt.Errorf("failed to sum stock: %w", err)
	}
	if count == 0 {
		return 0, domain.ErrItemNotFound
	}
	return total, nil
}

// DeleteRow removes one location row and its ledger entry atomically
func (r *catalogRepository) DeleteRow(ctx context.Context, rowID int64, username string) error {
	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		var row domain.StockRow
		err := tx.QueryRow(ctx,
			`DELETE FROM items WHERE id = $1 RETURNING `+stockRowColumns,
			rowID,
		).Scan(
			&row.ID, &row.ItemID, &row.ItemName, &row.Category,
			&row.Quantity, &row.FridgeNo, &row.CreatedAt, &row.UpdatedAt,
		)
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrRowNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to delete stock row: %w", err)
		}

		return insertAuditEntry(ctx, tx, &domain.AuditEntry{
			ItemName:     row.ItemName,
			Category:     row.Category,
			Action:       domain.ActionDelete,
			Quantity:     row.Quantity,
			UnitCost:     decimal.Zero,
			SellingPrice: decimal.Zero,
			Username:     username,
		})
	})
}

// List retrieves stock rows with filtering and pagination
func (r *catalogRepository) List(ctx context.Context, params ports.StockListParams) (*ports.StockListResult, error) {
	applyFilters := func(qb squirrel.SelectBuilder) squirrel.SelectBuilder {
		if params.Search != "" {
			qb = qb.Where("item_name ILIKE ?", "%"+params.Search+"%")
		}
		if params.Category != "" {
			qb = qb.Where(squirrel.Eq{"category": domain.NormalizeName(params.Category)})
		}
		if params.FridgeNo != "" {
			qb = qb.Where(squirrel.Eq{"fridge_no": domain.NormalizeName(params.FridgeNo)})
		}
		return qb
	}

	countSQL, countArgs, err := applyFilters(
		squirrel.Select("COUNT(*)").From("items").PlaceholderFormat(squirrel.Dollar),
	).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build count query: %w", err)
	}

	var totalCount int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&totalCount); err != nil {
		return nil, fmt.Errorf("failed to count stock rows: %w", err)
	}

	qb := applyFilters(squirrel.Select(
		"id", "item_id", "item_name", "category", "quantity", "fridge_no",
		"created_at", "updated_at",
	).From("items").
		PlaceholderFormat(squirrel.Dollar))

	direction := "ASC"
	if params.SortOrder == "desc" {
		direction = "DESC"
	}
	orderBy := "item_name ASC, fridge_no ASC"
	switch params.SortBy {
	case "quantity":
		orderBy = fmt.Sprintf("quantity %s", direction)
	case "updated":
		orderBy = fmt.Sprintf("updated_at %s", direction)
	case "created":
		orderBy = fmt.Sprintf("created_at %s", direction)
	}
	qb = qb.OrderBy(orderBy).
		Limit(uint64(params.PageSize)).
		Offset(uint64((params.Page - 1) * params.PageSize))

	sqlQuery, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock rows: %w", err)
	}
	defer rows.Close()

	result := &ports.StockListResult{
		Rows:       []*domain.StockRow{},
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalCount: totalCount,
	}
	for rows.Next() {
		row := &domain.StockRow{}
		if err := rows.Scan(
			&row.ID, &row.ItemID, &row.ItemName, &row.Category,
			&row.Quantity, &row.FridgeNo, &row.CreatedAt, &row.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan stock row: %w", err)
		}
		result.Rows = append(result.Rows, row)
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
