// internal/adapters/db/sale_repository.go
package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/aileenong/kprimefood/internal/core/domain"
	"github.com/aileenong/kprimefood/internal/core/ports"
)

// saleRepository implements ports.SaleRepository
type saleRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *Database, logger *slog.Logger) ports.SaleRepository {
	return &saleRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "sale")),
	}
}

const saleColumns = `id, item_id, item_name, category, quantity, selling_price, total_sale,
	cost, profit, overridden, customer_id, username, sale_date, created_at`

// CommitSale executes a planned deduction and records the sale in one
// transaction. Each row runs through the same guarded update as
// ApplyDelta, so a row drained or deleted by a concurrent writer after
// planning surfaces as an allocation failure; the transaction rolls
// back with nothing persisted. The ledger entry is written last.
func (r *saleRepository) CommitSale(ctx context.Context, sale *domain.Sale, plan []domain.Deduction) (*domain.Sale, error) {
	committed := *sale

	err := r.db.Transaction(ctx, func(tx pgx.Tx) error {
		for _, d := range plan {
			if _, err := applyRowDelta(ctx, tx, d.RowID, -d.Deducted); err != nil {
				if errors.Is(err, domain.ErrInsufficientStock) || errors.Is(err, domain.ErrRowNotFound) {
					return &domain.AllocationFailedError{ItemName: sale.ItemName, RowID: d.RowID}
				}
				return fmt.Errorf("failed to deduct stock row %d: %w", d.RowID, err)
			}
		}

		insert := `
			INSERT INTO sales (item_id, item_name, category, quantity, selling_price,
				total_sale, cost, profit, overridden, customer_id, username, sale_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			RETURNING id, created_at`

		if err := tx.QueryRow(ctx, insert,
			sale.ItemID, sale.ItemName, sale.Category, sale.Quantity, sale.SellingPrice,
			sale.TotalSale, sale.Cost, sale.Profit, sale.Overridden,
			sale.CustomerID, sale.Username, sale.SaleDate,
		).Scan(&committed.ID, &committed.CreatedAt); err != nil {
			return fmt.Errorf("failed to insert sale: %w", err)
		}

		return insertAuditEntry(ctx, tx, &domain.AuditEntry{
			ItemName:     sale.ItemName,
			Category:     sale.Category,
			Action:       domain.ActionSale,
			Quantity:     sale.Quantity,
			UnitCost:     sale.Cost,
			SellingPrice: sale.SellingPrice,
			Username:     sale.Username,
		})
	})
	if err != nil {
		return nil, err
	}

	r.logger.DebugContext(ctx, "sale committed",
		slog.Int64("sale_id", committed.ID),
		slog.Int("deductions", len(plan)))

	return &committed, nil
}

// FindByID retrieves a sale by id, (nil, nil) when absent
func (r *saleRepository) FindByID(ctx context.Context, saleID int64) (*domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`

	sale := &domain.Sale{}
	err := r.db.QueryRow(ctx, query, saleID).Scan(
		&sale.ID, &sale.ItemID, &sale.ItemName, &sale.Category, &sale.Quantity,
		&sale.SellingPrice, &sale.TotalSale, &sale.Cost, &sale.Profit,
		&sale.Overridden, &sale.CustomerID, &sale.Username, &sale.SaleDate, &sale.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find sale: %w", err)
	}
	return sale, nil
}

// List retrieves sales with filtering and pagination
func (r *saleRepository) List(ctx context.Context, params ports.SaleListParams) (*ports.SaleListResult, error) {
	applyFilters := func(qb squirrel.SelectBuilder) squirrel.SelectBuilder {
		if params.ItemName != "" {
			qb = qb.Where(squirrel.Eq{"item_name": domain.NormalizeName(params.ItemName)})
		}
		if params.CustomerID != nil {
			qb = qb.Where(squirrel.Eq{"customer_id": *params.CustomerID})
		}
		if params.From != nil {
			qb = qb.Where("sale_date >= ?", *params.From)
		}
		if params.To != nil {
			qb = qb.Where("sale_date <= ?", *params.To)
		}
		return qb
	}

	countSQL, countArgs, err := applyFilters(
		squirrel.Select("COUNT(*)").From("sales").PlaceholderFormat(squirrel.Dollar),
	).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build count query: %w", err)
	}

	var totalCount int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&totalCount); err != nil {
		return nil, fmt.Errorf("failed to count sales: %w", err)
	}

	order := "sale_date DESC, id DESC"
	if params.SortOrder == "asc" {
		order = "sale_date ASC, id ASC"
	}

	sqlQuery, args, err := applyFilters(
		squirrel.Select(
			"id", "item_id", "item_name", "category", "quantity", "selling_price",
			"total_sale", "cost", "profit", "overridden", "customer_id",
			"username", "sale_date", "created_at",
		).From("sales").PlaceholderFormat(squirrel.Dollar),
	).
		OrderBy(order).
		Limit(uint64(params.PageSize)).
		Offset(uint64((params.Page - 1) * params.PageSize)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	defer rows.Close()

	result := &ports.SaleListResult{
		Sales:      []*domain.Sale{},
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalCount: totalCount,
	}
	for rows.Next() {
		sale := &domain.Sale{}
		if err := rows.Scan(
			&sale.ID, &sale.ItemID, &sale.ItemName, &sale.Category, &sale.Quantity,
			&sale.SellingPrice, &sale.TotalSale, &sale.Cost, &sale.Profit,
			&sale.Overridden, &sale.CustomerID, &sale.Username, &sale.SaleDate, &sale.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan sale: %w", err)
		}
		result.Sales = append(result.Sales, sale)
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

// SalesByCustomer returns one customer's sales inside [from, to],
// oldest first, for statement assembly
func (r *saleRepository) SalesByCustomer(ctx context.Context, customerID int64, from, to time.Time) ([]domain.Sale, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM sales
		WHERE customer_id = $1 AND sale_date >= $2 AND sale_date <= $3
		ORDER BY sale_date ASC, id ASC`

	rows, err := r.db.Query(ctx, query, customerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query customer sales: %w", err)
	}
	defer rows.Close()

	sales := []domain.Sale{}
	for rows.Next() {
		var sale domain.Sale
		if err := rows.Scan(
			&sale.ID, &sale.ItemID, &sale.ItemName, &sale.Category, &sale.Quantity,
			&sale.SellingPrice, &sale.TotalSale, &sale.Cost, &sale.Profit,
			&sale.Overridden, &sale.CustomerID, &sale.Username, &sale.SaleDate, &sale.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan sale: %w", err)
		}
		sales = append(sales, sale)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return sales, nil
}
