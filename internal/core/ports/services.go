// internal/core/ports/services.go
package ports

import (
	"context"
	"time"

	"github.com/aileenong/kprimefood/internal/core/domain"
)

// CatalogService defines the application service port for stock.
type CatalogService interface {
	UpsertStock(ctx context.Context, req *domain.StockUpsert) (*domain.StockRow, domain.UpsertOutcome, error)
	RowsByName(ctx context.Context, itemName string) ([]domain.StockRow, error)
	TotalOnHand(ctx context.Context, itemName string) (int, error)
	DeleteRow(ctx context.Context, rowID int64, username string) error
	List(ctx context.Context, params StockListParams) (*StockListResult, error)
}

// PricingService defines the application service port for tiers.
type PricingService interface {
	// ResolvePrice is read-only and side-effect free; resolving the
	// same item and quantity twice yields the same price.
	ResolvePrice(ctx context.Context, itemID int64, qty int) (*domain.ResolvedPrice, error)
	UpsertTier(ctx context.Context, tier *domain.PricingTier, changedBy string) (*domain.PricingTier, error)
	DeleteTier(ctx context.Context, tierID int64) error
	TiersByItem(ctx context.Context, itemID int64) ([]domain.PricingTier, error)
	PriceHistory(ctx context.Context, itemID int64) ([]domain.PriceChange, error)
}

// SaleService defines the application service port for recording sales.
type SaleService interface {
	RecordSale(ctx context.Context, req *domain.SaleRequest) (*domain.SaleResult, error)
	GetSale(ctx context.Context, saleID int64) (*domain.Sale, error)
	List(ctx context.Context, params SaleListParams) (*SaleListResult, error)
}

// CustomerService defines the application service port for the
// customer book.
type CustomerService interface {
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context, search string) ([]domain.Customer, error)
	Delete(ctx context.Context, id int64) error
}

// StatementService assembles customer statement data and mints
// purchase order numbers.
type StatementService interface {
	BuildStatement(ctx context.Context, customerID int64, from, to time.Time) (*domain.Statement, error)
	NextOrderNumber(ctx context.Context, date time.Time) (string, error)
}

// ItemLocker serializes sale commits per item. Callers hold the lock
// across validation and allocation and release it once the transaction
// has committed or rolled back.
type ItemLocker interface {
	AcquireItemLock(ctx context.Context, itemID int64, ttl time.Duration) (release func(), err error)
}
