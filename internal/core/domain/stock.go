// internal/core/domain/stock.go
package domain

import (
	"fmt"
	"strings"
	"time"
)

// ItemCategory represents stock categories
type ItemCategory string

// Category constants
const (
	CategoryBeef      ItemCategory = "BEEF"
	CategoryPork      ItemCategory = "PORK"
	CategoryPoultry   ItemCategory = "POULTRY"
	CategoryLamb      ItemCategory = "LAMB"
	CategorySeafood   ItemCategory = "SEAFOOD"
	CategoryProcessed ItemCategory = "PROCESSED"
	CategoryDryGoods  ItemCategory = "DRY GOODS"
	CategoryFrozen    ItemCategory = "FROZEN"
	CategoryOther     ItemCategory = "OTHER"
)

// StockRow is one item's stock held in one fridge. An item that lives in
// several fridges has several rows sharing the same ItemID; the row ID is
// unique per (item, fridge) pair.
type StockRow struct {
	ID        int64        `json:"id"`
	ItemID    int64        `json:"item_id"`
	ItemName  string       `json:"item_name"`
	Category  ItemCategory `json:"category"`
	Quantity  int          `json:"quantity"`
	FridgeNo  string       `json:"fridge_no"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// StockUpsert carries a stock addition or adjustment request.
type StockUpsert struct {
	ItemName string       `json:"item_name"`
	Category ItemCategory `json:"category"`
	Quantity int          `json:"quantity"`
	FridgeNo string       `json:"fridge_no"`
	Username string       `json:"username"`
}

// UpsertOutcome describes what an upsert actually did to the catalog.
type UpsertOutcome string

const (
	OutcomeCreated     UpsertOutcome = "created"
	OutcomeAccumulated UpsertOutcome = "accumulated"
	OutcomeNewFridge   UpsertOutcome = "new_fridge"
)

// NormalizeName uppercases and trims an item or category name so that
// "ribeye", "Ribeye " and "RIBEYE" address the same stock.
func NormalizeName(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Validate performs domain validation on the upsert request
func (s *StockUpsert) Validate() error {
	if strings.TrimSpace(s.ItemName) == "" {
		return fmt.Errorf("item_name is required")
	}
	if s.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive")
	}
	if strings.TrimSpace(s.FridgeNo) == "" {
		return fmt.Errorf("fridge_no is required")
	}
	if s.Category == "" {
		s.Category = CategoryOther
	}
	if s.Username == "" {
		s.Username = "system"
	}
	return nil
}

// PrepareForStorage normalizes names ahead of persistence
func (s *StockUpsert) PrepareForStorage() {
	s.ItemName = NormalizeName(s.ItemName)
	s.Category = ItemCategory(NormalizeName(string(s.Category)))
	s.FridgeNo = NormalizeName(s.FridgeNo)
}
