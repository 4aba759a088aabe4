// internal/core/services/statement.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aileenong/kprimefood/internal/core/domain"
	"github.com/aileenong/kprimefood/internal/core/ports"
)

// StatementService assembles statement-of-account data and mints
// purchase order numbers.
type StatementService struct {
	customers ports.CustomerRepository
	sales     ports.SaleRepository
	orders    ports.OrderNumberRepository
	logger    *slog.Logger
}

// Statically assert that *StatementService implements the StatementService interface.
var _ ports.StatementService = (*StatementService)(nil)

// NewStatementService creates a new statement service
func NewStatementService(
	customers ports.CustomerRepository,
	sales ports.SaleRepository,
	orders ports.OrderNumberRepository,
	logger *slog.Logger,
) *StatementService {
	return &StatementService{
		customers: customers,
		sales:     sales,
		orders:    orders,
		logger:    logger.With(slog.String("service", "statement")),
	}
}

// BuildStatement gathers a customer's sales in [from, to] into one
// statement structure. Rendering is left to the caller.
func (s *StatementService) BuildStatement(ctx context.Context, customerID int64, from, to time.Time) (*domain.Statement, error) {
	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}

	sales, err := s.sales.SalesByCustomer(ctx, customerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load customer sales: %w", err)
	}

	stmt := &domain.Statement{
		Customer:    *customer,
		PeriodStart: from,
		PeriodEnd:   to,
		Lines:       make([]domain.StatementLine, 0, len(sales)),
		TotalAmount: decimal.Zero,
		GeneratedAt: time.Now(),
	}

	for _, sale := range sales {
		stmt.Lines = append(stmt.Lines, domain.StatementLine{
			SaleID:    sale.ID,
			SaleDate:  sale.SaleDate,
			ItemName:  sale.ItemName,
			Quantity:  sale.Quantity,
			UnitPrice: sale.SellingPrice,
			Total:     sale.TotalSale,
		})
		stmt.TotalQuantity += sale.Quantity
		stmt.TotalAmount = stmt.TotalAmount.Add(sale.TotalSale)
	}

	s.logger.InfoContext(ctx, "statement assembled",
		slog.Int64("customer_id", customerID),
		slog.Int("lines", len(stmt.Lines)),
		slog.String("total_amount", stmt.TotalAmount.String()))

	return stmt, nil
}

// NextOrderNumber mints the next purchase order number for a date.
func (s *StatementService) NextOrderNumber(ctx context.Context, date time.Time) (string, error) {
	seq, err := s.orders.NextSequence(ctx, date)
	if err != nil {
		return "", fmt.Errorf("failed to advance order sequence: %w", err)
	}
	return domain.PurchaseOrderNumber(date, seq), nil
}
