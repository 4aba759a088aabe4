// internal/core/ports/customer_repository.go
package ports

import (
	"context"
	"time"

	"github.com/aileenong/kprimefood/internal/core/domain"
)

// CustomerRepository defines the persistence port for customers.
type CustomerRepository interface {
	Save(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	FindByID(ctx context.Context, id int64) (*domain.Customer, error)
	FindAll(ctx context.Context, search string) ([]domain.Customer, error)
	SoftDelete(ctx context.Context, id int64) error
}

// OrderNumberRepository mints per-date purchase order sequence values.
type OrderNumberRepository interface {
	// NextSequence increments and returns the counter for the given
	// date, starting at 1, atomically.
	NextSequence(ctx context.Context, date time.Time) (int, error)
}
