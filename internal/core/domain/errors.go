// internal/core/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors callers branch on with errors.Is.
var (
	ErrItemNotFound     = errors.New("item not found")
	ErrRowNotFound      = errors.New("stock row not found")
	ErrTierNotFound     = errors.New("pricing tier not found")
	ErrNoPricingTier    = errors.New("no pricing tier matches quantity")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrSaleNotFound     = errors.New("sale not found")
)

// InsufficientStockError reports a sale asking for more than the item
// holds across all fridges.
type InsufficientStockError struct {
	ItemName  string
	Requested int
	OnHand    int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: requested %d, on hand %d", e.ItemName, e.Requested, e.OnHand)
}

// ErrInsufficientStock matches any InsufficientStockError via errors.Is.
var ErrInsufficientStock = errors.New("insufficient stock")

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// AllocationFailedError reports a deduction plan that could not be
// applied, typically because a concurrent writer drained a row between
// planning and commit. Nothing is persisted when this is returned.
type AllocationFailedError struct {
	ItemName string
	RowID    int64
}

func (e *AllocationFailedError) Error() string {
	return fmt.Sprintf("stock allocation failed for %s at row %d", e.ItemName, e.RowID)
}

// ErrAllocationFailed matches any AllocationFailedError via errors.Is.
var ErrAllocationFailed = errors.New("stock allocation failed")

func (e *AllocationFailedError) Is(target error) bool {
	return target == ErrAllocationFailed
}

// StorageFaultError wraps an unexpected backing-store failure so that
// handlers can distinguish infrastructure faults from domain rejections.
type StorageFaultError struct {
	Op  string
	Err error
}

func (e *StorageFaultError) Error() string {
	return fmt.Sprintf("storage fault during %s: %v", e.Op, e.Err)
}

func (e *StorageFaultError) Unwrap() error {
	return e.Err
}

// ErrStorageFault matches any StorageFaultError via errors.Is.
var ErrStorageFault = errors.New("storage fault")

func (e *StorageFaultError) Is(target error) bool {
	return target == ErrStorageFault
}

// StorageFault wraps err as a storage fault, passing nil through.
func StorageFault(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageFaultError{Op: op, Err: err}
}
