// internal/core/services/customer.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aileenong/kprimefood/internal/core/domain"
	"github.com/aileenong/kprimefood/internal/core/ports"
)

// CustomerService handles the thin customer book-keeping layer.
type CustomerService struct {
	repo   ports.CustomerRepository
	logger *slog.Logger
}

// Statically assert that *CustomerService implements the service port.
var _ ports.CustomerService = (*CustomerService)(nil)

// NewCustomerService creates a new customer service
func NewCustomerService(repo ports.CustomerRepository, logger *slog.Logger) *CustomerService {
	return &CustomerService{
		repo:   repo,
		logger: logger.With(slog.String("service", "customer")),
	}
}

// Create validates and persists a new customer.
func (s *CustomerService) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if err := customer.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	saved, err := s.repo.Save(ctx, customer)
	if err != nil {
		return nil, fmt.Errorf("failed to save customer: %w", err)
	}
	s.logger.InfoContext(ctx, "customer created",
		slog.Int64("customer_id", saved.ID),
		slog.String("name", saved.Name))
	return saved, nil
}

// Update validates and stores changes to an existing customer.
func (s *CustomerService) Update(ctx context.Context, customer *domain.Customer) error {
	if err := customer.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	existing, err := s.repo.FindByID(ctx, customer.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrCustomerNotFound
	}
	if err := s.repo.Update(ctx, customer); err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}
	return nil
}

// GetByID retrieves one customer.
func (s *CustomerService) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}
	return customer, nil
}

// List retrieves customers, optionally filtered by a name search.
func (s *CustomerService) List(ctx context.Context, search string) ([]domain.Customer, error) {
	customers, err := s.repo.FindAll(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

// Delete soft deletes a customer; their sales history stays intact.
func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "customer deleted", slog.Int64("customer_id", id))
	return nil
}
