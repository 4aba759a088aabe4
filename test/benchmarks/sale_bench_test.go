package benchmarks

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/aileenong/kprimefood/internal/core/domain"
	"github.com/aileenong/kprimefood/internal/core/services"
)

// makeStockRows spreads stock across n fridges, one unit short of the
// last fridge so plans that span everything still succeed.
func makeStockRows(n, perFridge int) []domain.StockRow {
	rows := make([]domain.StockRow, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, domain.StockRow{
			ID:       int64(i + 1),
			ItemID:   100,
			ItemName: "RIBEYE",
			Category: domain.CategoryBeef,
			Quantity: perFridge,
			FridgeNo: fmt.Sprintf("F%02d", i),
		})
	}
	return rows
}

func BenchmarkPlanDeductions(b *testing.B) {
	cases := []struct {
		name     string
		fridges  int
		quantity int
	}{
		{"single_fridge", 1, 5},
		{"spans_three", 4, 25},
		{"spans_many", 32, 300},
	}

	for _, bc := range cases {
		rows := makeStockRows(bc.fridges, 10)
		b.Run(bc.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := services.PlanDeductions(rows, bc.quantity); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkTierMatch(b *testing.B) {
	tiers := make([]domain.PricingTier, 0, 10)
	for i := 0; i < 10; i++ {
		lo := i*10 + 1
		hi := (i + 1) * 10
		tiers = append(tiers, domain.PricingTier{
			ID:           int64(i + 1),
			ItemID:       100,
			MinQty:       lo,
			MaxQty:       &hi,
			PricePerUnit: decimal.NewFromInt(int64(20 - i)),
		})
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		qty := i%100 + 1
		for j := range tiers {
			if tiers[j].Matches(qty) {
				break
			}
		}
	}
}

func BenchmarkSaleTotals(b *testing.B) {
	price := decimal.RequireFromString("8.50")

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		qty := i%50 + 1
		total := price.Mul(decimal.NewFromInt(int64(qty)))
		if total.IsNegative() {
			b.Fatal("negative total")
		}
	}
}
