// internal/core/services/catalog.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aileenong/kprimefood/internal/core/domain"
	"github.com/aileenong/kprimefood/internal/core/ports"
)

// CatalogService handles stock catalog business logic
type CatalogService struct {
	repo   ports.CatalogRepository
	cache  ports.CacheRepository
	logger *slog.Logger
}

// Statically assert that *CatalogService implements the CatalogService interface.
var _ ports.CatalogService = (*CatalogService)(nil)

// NewCatalogService creates a new catalog service
func NewCatalogService(repo ports.CatalogRepository, cache ports.CacheRepository, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		repo:   repo,
		cache:  cache,
		logger: logger.With(slog.String("service", "catalog")),
	}
}

// UpsertStock applies a stock addition. An existing (item, fridge) row
// accumulates; a known item in a fresh fridge gets a new row under the
// same item id; an unknown item is created. Exactly one ledger entry is
// appended per call.
func (s *CatalogService) UpsertStock(ctx context.Context, req *domain.StockUpsert) (*domain.StockRow, domain.UpsertOutcome, error) {
	if err := req.Validate(); err != nil {
		return nil, "", fmt.Errorf("validation failed: %w", err)
	}
	req.PrepareForStorage()

	row, outcome, err := s.repo.Upsert(ctx, req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to upsert stock: %w", err)
	}

	s.invalidateDashboard(ctx)

	s.logger.InfoContext(ctx, "stock upserted",
		slog.String("item_name", row.ItemName),
		slog.String("fridge_no", row.FridgeNo),
		slog.Int("quantity", row.Quantity),
		slog.String("outcome", string(outcome)))

	return row, outcome, nil
}

// RowsByName returns the item's location rows in deduction order.
func (s *CatalogService) RowsByName(ctx context.Context, itemName string) ([]domain.StockRow, error) {
	rows, err := s.repo.RowsByName(ctx, domain.NormalizeName(itemName))
	if err != nil {
		return nil, fmt.Errorf("failed to load stock rows: %w", err)
	}
	return rows, nil
}

// TotalOnHand sums the item's quantity across all fridges. An unknown
// item is an error, not zero.
func (s *CatalogService) TotalOnHand(ctx context.Context, itemName string) (int, error) {
	total, err := s.repo.TotalOnHand(ctx, domain.NormalizeName(itemName))
	if err != nil {
		return 0, err
	}
	return total, nil
}

// DeleteRow removes one location row and records the deletion.
func (s *CatalogService) DeleteRow(ctx context.Context, rowID int64, username string) error {
	if username == "" {
		username = "system"
	}
	if err := s.repo.DeleteRow(ctx, rowID, username); err != nil {
		return err
	}

	s.invalidateDashboard(ctx)

	s.logger.InfoContext(ctx, "stock row deleted",
		slog.Int64("row_id", rowID),
		slog.String("username", username))
	return nil
}

// List retrieves stock rows with filtering and pagination
func (s *CatalogService) List(ctx context.Context, params ports.StockListParams) (*ports.StockListResult, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 || params.PageSize > 500 {
		params.PageSize = 50
	}
	result, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock rows: %w", err)
	}
	return result, nil
}

func (s *CatalogService) invalidateDashboard(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeletePattern(ctx, "dashboard:*"); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate dashboard cache",
			slog.String("error", err.Error()))
	}
}
