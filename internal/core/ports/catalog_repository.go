// internal/core/ports/catalog_repository.go
package ports

import (
	"context"

	"github.com/aileenong/kprimefood/internal/core/domain"
)

// CatalogRepository defines the persistence port for per-fridge stock rows.
// This interface is implemented by the database adapter.
type CatalogRepository interface {
	// Upsert applies a stock addition: accumulate onto the matching
	// (item, fridge) row, open a new fridge row for a known item, or
	// create the item. The row mutation and its ledger entry commit in
	// one transaction.
	Upsert(ctx context.Context, req *domain.StockUpsert) (*domain.StockRow, domain.UpsertOutcome, error)

	// RowsByName returns all location rows for a normalized item name,
	// ordered by fridge then row id. Empty slice when unknown.
	RowsByName(ctx context.Context, itemName string) ([]domain.StockRow, error)

	// RowsByItemID returns all location rows sharing a logical item id,
	// in the same stable order.
	RowsByItemID(ctx context.Context, itemID int64) ([]domain.StockRow, error)

	FindRow(ctx context.Context, rowID int64) (*domain.StockRow, error)

	// ApplyDelta adjusts one location row's quantity by a signed delta,
	// guarded so the quantity never goes negative. Returns the updated
	// row, domain.ErrRowNotFound when the row is gone, or an
	// InsufficientStockError when the guard would be violated.
	ApplyDelta(ctx context.Context, rowID int64, delta int) (*domain.StockRow, error)

	// TotalOnHand sums quantity across all rows of the item. Returns
	// domain.ErrItemNotFound when no rows exist; an existing item whose
	// rows are drained reports zero.
	TotalOnHand(ctx context.Context, itemName string) (int, error)

	// DeleteRow removes one location row and appends a Delete ledger
	// entry in the same transaction.
	DeleteRow(ctx context.Context, rowID int64, username string) error

	List(ctx context.Context, params StockListParams) (*StockListResult, error)
}

// StockListParams holds parameters for listing stock rows
type StockListParams struct {
	Search    string
	Category  string
	FridgeNo  string
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
}

// StockListResult holds the result of listing stock rows
type StockListResult struct {
	Rows       []*domain.StockRow `json:"rows"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalCount int64              `json:"total_count"`
	TotalPages int                `json:"total_pages"`
}
