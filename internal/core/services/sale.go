// internal/core/services/sale.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aileenong/kprimefood/internal/core/domain"
	"github.com/aileenong/kprimefood/internal/core/ports"
)

// saleLockTTL bounds how long a crashed process can hold an item lock.
const saleLockTTL = 15 * time.Second

// SaleService drives a sale from request to committed transaction.
type SaleService struct {
	catalog ports.CatalogRepository
	pricing ports.PricingRepository
	sales   ports.SaleRepository
	locker  ports.ItemLocker
	cache   ports.CacheRepository
	logger  *slog.Logger
}

// Statically assert that *SaleService implements the SaleService interface.
var _ ports.SaleService = (*SaleService)(nil)

// NewSaleService creates a new sale service
func NewSaleService(
	catalog ports.CatalogRepository,
	pricing ports.PricingRepository,
	sales ports.SaleRepository,
	locker ports.ItemLocker,
	cache ports.CacheRepository,
	logger *slog.Logger,
) *SaleService {
	return &SaleService{
		catalog: catalog,
		pricing: pricing,
		sales:   sales,
		locker:  locker,
		cache:   cache,
		logger:  logger.With(slog.String("service", "sale")),
	}
}

// RecordSale validates the request, resolves the unit price, plans the
// multi-fridge deduction, and commits deduction, sale row and ledger
// entry as one transaction. Concurrent sales of the same item are
// serialized by a per-item lock; even without it, the guarded updates
// in the commit guarantee no partial deduction ever persists.
//
// The sale moves pending -> price_resolved -> stock_reserved ->
// committed, or to rejected with a typed error and untouched stock.
func (s *SaleService) RecordSale(ctx context.Context, req *domain.SaleRequest) (*domain.SaleResult, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if s.locker != nil {
		release, err := s.locker.AcquireItemLock(ctx, req.ItemID, saleLockTTL)
		if err != nil {
			return nil, fmt.Errorf("failed to acquire item lock: %w", err)
		}
		defer release()
	}

	rows, err := s.catalog.RowsByItemID(ctx, req.ItemID)
	if err != nil {
		return nil, fmt.Errorf("failed to load stock rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, domain.ErrItemNotFound
	}
	itemName := rows[0].ItemName
	category := rows[0].Category

	total := 0
	for _, row := range rows {
		total += row.Quantity
	}
	if total < req.Quantity {
		return nil, &domain.InsufficientStockError{
			ItemName:  itemName,
			Requested: req.Quantity,
			OnHand:    total,
		}
	}

	price, err := s.resolvePrice(ctx, req)
	if err != nil {
		return nil, err
	}

	plan, err := PlanDeductions(rows, req.Quantity)
	if err != nil {
		return nil, err
	}

	sale := &domain.Sale{
		ItemID:       req.ItemID,
		ItemName:     itemName,
		Category:     category,
		Quantity:     req.Quantity,
		SellingPrice: price.PricePerUnit,
		TotalSale:    price.Total(),
		Cost:         decimal.Zero,
		Profit:       decimal.Zero,
		Overridden:   price.Overridden,
		CustomerID:   req.CustomerID,
		Username:     req.Username,
		SaleDate:     req.SaleDate,
	}

	committed, err := s.sales.CommitSale(ctx, sale, plan)
	if err != nil {
		return nil, err
	}

	s.invalidateDashboard(ctx)

	lines := make([]string, 0, len(plan))
	for _, d := range plan {
		lines = append(lines, d.String())
	}

	s.logger.InfoContext(ctx, "sale committed",
		slog.Int64("sale_id", committed.ID),
		slog.String("item_name", committed.ItemName),
		slog.Int("quantity", committed.Quantity),
		slog.String("selling_price", committed.SellingPrice.String()),
		slog.Bool("overridden", committed.Overridden))

	return &domain.SaleResult{
		Sale:       *committed,
		Status:     domain.SaleCommitted,
		Deductions: plan,
		Message: fmt.Sprintf("Sold %d x %s at %s. %s",
			committed.Quantity, committed.ItemName,
			committed.SellingPrice.StringFixed(2), strings.Join(lines, "; ")),
	}, nil
}

// resolvePrice applies the caller override when present, otherwise
// resolves the tier table.
func (s *SaleService) resolvePrice(ctx context.Context, req *domain.SaleRequest) (*domain.ResolvedPrice, error) {
	if req.OverridePrice != nil {
		return &domain.ResolvedPrice{
			ItemID:       req.ItemID,
			Quantity:     req.Quantity,
			PricePerUnit: *req.OverridePrice,
			Overridden:   true,
		}, nil
	}

	tier, err := s.pricing.ResolveTier(ctx, req.ItemID, req.Quantity)
	if err != nil {
		return nil, err
	}
	return &domain.ResolvedPrice{
		ItemID:       req.ItemID,
		Quantity:     req.Quantity,
		PricePerUnit: tier.PricePerUnit,
		TierID:       tier.ID,
		TierLabel:    tier.Label,
	}, nil
}

// GetSale retrieves one committed sale.
func (s *SaleService) GetSale(ctx context.Context, saleID int64) (*domain.Sale, error) {
	sale, err := s.sales.FindByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrSaleNotFound
	}
	return sale, nil
}

// List retrieves sales with filtering and pagination
func (s *SaleService) List(ctx context.Context, params ports.SaleListParams) (*ports.SaleListResult, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 || params.PageSize > 500 {
		params.PageSize = 50
	}
	result, err := s.sales.List(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	return result, nil
}

func (s *SaleService) invalidateDashboard(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeletePattern(ctx, "dashboard:*"); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate dashboard cache",
			slog.String("error", err.Error()))
	}
}
