// internal/workers/dashboard_processor.go
package workers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"

	"github.com/aileenong/kprimefood/internal/adapters/db"
	redis_a "github.com/aileenong/kprimefood/internal/adapters/redis_adapter"
	"github.com/aileenong/kprimefood/internal/core/ports"
)

// dashboardCacheTTL bounds staleness between refreshes.
const dashboardCacheTTL = 5 * time.Minute

// DashboardSummary is the precomputed aggregate set served to the
// dashboard endpoint.
type DashboardSummary struct {
	StockByCategory map[string]int  `json:"stock_by_category"`
	TotalItems      int64           `json:"total_items"`
	TotalUnits      int64           `json:"total_units"`
	SalesToday      int64           `json:"sales_today"`
	RevenueToday    decimal.Decimal `json:"revenue_today"`
	Sales30Days     int64           `json:"sales_30_days"`
	Revenue30Days   decimal.Decimal `json:"revenue_30_days"`
	GeneratedAt     time.Time       `json:"generated_at"`
}

// DashboardProcessor precomputes dashboard aggregates into the cache.
type DashboardProcessor struct {
	db     *db.Database
	cache  ports.CacheRepository
	logger *slog.Logger
}

// NewDashboardProcessor creates a new dashboard processor
func NewDashboardProcessor(database *db.Database, cache ports.CacheRepository, logger *slog.Logger) *DashboardProcessor {
	return &DashboardProcessor{
		db:     database,
		cache:  cache,
		logger: logger.With(slog.String("processor", "dashboard")),
	}
}

// RefreshDashboard handles a dashboard refresh task
func (p *DashboardProcessor) RefreshDashboard(ctx context.Context, t *asynq.Task) error {
	summary, err := ComputeDashboardSummary(ctx, p.db)
	if err != nil {
		return err
	}

	key := redis_a.BuildKey(redis_a.PrefixDashboard, "summary")
	if err := p.cache.SetWithTTL(ctx, key, summary, dashboardCacheTTL); err != nil {
		return fmt.Errorf("failed to cache dashboard summary: %w", err)
	}

	p.logger.InfoContext(ctx, "dashboard refreshed",
		slog.Int64("total_items", summary.TotalItems),
		slog.Int64("sales_today", summary.SalesToday))

	return nil
}

// ComputeDashboardSummary gathers the aggregates behind the dashboard.
// Shared with the HTTP handler for cache-miss paths.
func ComputeDashboardSummary(ctx context.Context, database *db.Database) (*DashboardSummary, error) {
	summary := &DashboardSummary{
		StockByCategory: map[string]int{},
		RevenueToday:    decimal.Zero,
		Revenue30Days:   decimal.Zero,
		GeneratedAt:     time.Now(),
	}

	rows, err := database.Query(ctx,
		`SELECT category, SUM(quantity) FROM items GROUP BY category ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate stock: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var category string
		var units int
		if err := rows.Scan(&category, &units); err != nil {
			return nil, fmt.Errorf("failed to scan stock aggregate: %w", err)
		}
		summary.StockByCategory[category] = units
		summary.TotalUnits += int64(units)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	if err := database.QueryRow(ctx,
		`SELECT COUNT(DISTINCT item_id) FROM items`).Scan(&summary.TotalItems); err != nil {
		return nil, fmt.Errorf("failed to count items: %w", err)
	}

	if err := database.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(total_sale), 0)
		FROM sales WHERE sale_date::date = CURRENT_DATE`,
	).Scan(&summary.SalesToday, &summary.RevenueToday); err != nil {
		return nil, fmt.Errorf("failed to aggregate today sales: %w", err)
	}

	if err := database.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(total_sale), 0)
		FROM sales WHERE sale_date >= NOW() - INTERVAL '30 days'`,
	).Scan(&summary.Sales30Days, &summary.Revenue30Days); err != nil {
		return nil, fmt.Errorf("failed to aggregate 30 day sales: %w", err)
	}

	return summary, nil
}
