// internal/adapters/db/customer_repository.go
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/aileenong/kprimefood/internal/core/domain"
	"github.com/aileenong/kprimefood/internal/core/ports"
)

// customerRepository implements ports.CustomerRepository
type customerRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *Database, logger *slog.Logger) ports.CustomerRepository {
	return &customerRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "customer")),
	}
}

// Save creates a new customer
func (r *customerRepository) Save(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	query := `
		INSERT INTO customers (name, phone, email, address)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''))
		RETURNING id, created_at, updated_at`

	saved := *customer
	err := r.db.QueryRow(ctx, query,
		customer.Name, customer.Phone, customer.Email, customer.Address,
	).Scan(&saved.ID, &saved.CreatedAt, &saved.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save customer: %w", err)
	}

	r.logger.DebugContext(ctx, "customer saved", slog.Int64("customer_id", saved.ID))
	return &saved, nil
}

// Update stores changes to an existing customer
func (r *customerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	query := `
		UPDATE customers
		SET name = $2, phone = NULLIF($3, ''), email = NULLIF($4, ''),
			address = NULLIF($5, ''), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`

	tag, err := r.db.Exec(ctx, query,
		customer.ID, customer.Name, customer.Phone, customer.Email, customer.Address,
	)
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

// FindByID retrieves a customer, (nil, nil) when absent
func (r *customerRepository) FindByID(ctx context.Context, id int64) (*domain.Customer, error) {
	query := `
		SELECT id, name, phone, email, address, created_at, updated_at
		FROM customers
		WHERE id = $1 AND deleted_at IS NULL`

	customer := &domain.Customer{}
	var phone, email, address sql.NullString
	err := r.db.QueryRow(ctx, query, id).Scan(
		&customer.ID, &customer.Name, &phone, &email, &address,
		&customer.CreatedAt, &customer.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}

	customer.Phone = phone.String
	customer.Email = email.String
	customer.Address = address.String
	return customer, nil
}

// FindAll retrieves customers, optionally filtered by name
func (r *customerRepository) FindAll(ctx context.Context, search string) ([]domain.Customer, error) {
	query := `
		SELECT id, name, phone, email, address, created_at, updated_at
		FROM customers
		WHERE deleted_at IS NULL AND ($1 = '' OR name ILIKE '%' || $1 || '%')
		ORDER BY name ASC`

	rows, err := r.db.Query(ctx, query, search)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		var customer domain.Customer
		var phone, email, address sql.NullString
		if err := rows.Scan(
			&customer.ID, &customer.Name, &phone, &email, &address,
			&customer.CreatedAt, &customer.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customer.Phone = phone.String
		customer.Email = email.String
		customer.Address = address.String
		customers = append(customers, customer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return customers, nil
}

// SoftDelete marks a customer deleted; sales history keeps pointing at
// the row for statement assembly
func (r *customerRepository) SoftDelete(ctx context.Context, id int64) error {
	query := `UPDATE customers SET deleted_at = $2, updated_at = $2 WHERE id = $1 AND deleted_at IS NULL`

	tag, err := r.db.Exec(ctx, query, id, time.Now())
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCustomerNotFound
	}

	r.logger.InfoContext(ctx, "customer soft deleted", slog.Int64("customer_id", id))
	return nil
}
