// internal/core/ports/sale_repository.go
package ports

import (
	"context"
	"time"

	"github.com/aileenong/kprimefood/internal/core/domain"
)

// SaleRepository defines the persistence port for sale transactions.
type SaleRepository interface {
	// CommitSale applies a planned deduction and records the sale in a
	// single transaction: guarded per-row quantity updates, the sale
	// insert, then the ledger entry. Any guard failure rolls the whole
	// transaction back and surfaces domain.ErrAllocationFailed.
	CommitSale(ctx context.Context, sale *domain.Sale, plan []domain.Deduction) (*domain.Sale, error)

	FindByID(ctx context.Context, saleID int64) (*domain.Sale, error)
	List(ctx context.Context, params SaleListParams) (*SaleListResult, error)

	// SalesByCustomer returns committed sales for one customer inside
	// [from, to], oldest first, for statement assembly.
	SalesByCustomer(ctx context.Context, customerID int64, from, to time.Time) ([]domain.Sale, error)
}

// SaleListParams holds parameters for listing sales
type SaleListParams struct {
	ItemName   string
	CustomerID *int64
	From       *time.Time
	To         *time.Time
	SortOrder  string
	Page       int
	PageSize   int
}

// SaleListResult holds the result of listing sales
type SaleListResult struct {
	Sales      []*domain.Sale `json:"sales"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalCount int64          `json:"total_count"`
	TotalPages int            `json:"total_pages"`
}
