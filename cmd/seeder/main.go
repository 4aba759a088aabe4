// cmd/seeder/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// seedRow is one fridge's share of a seeded item.
type seedRow struct {
	FridgeNo string
	Quantity int
}

// seedTier is one quantity band for a seeded item. MaxQty 0 means the
// band is open-ended.
type seedTier struct {
	MinQty int
	MaxQty int
	Price  string
	Label  string
}

// seedItem describes one catalog item with its fridge split and tiers.
type seedItem struct {
	Name     string
	Category string
	Rows     []seedRow
	Tiers    []seedTier
}

var seedItems = []seedItem{
	{
		Name:     "RIBEYE",
		Category: "BEEF",
		Rows:     []seedRow{{"A", 3}, {"B", 4}},
		Tiers: []seedTier{
			{1, 5, "10.00", "retail"},
			{6, 0, "8.00", "bulk"},
		},
	},
	{
		Name:     "PORK BELLY",
		Category: "PORK",
		Rows:     []seedRow{{"A", 10}},
		Tiers: []seedTier{
			{1, 9, "6.50", "retail"},
			{10, 0, "5.80", "bulk"},
		},
	},
	{
		Name:     "CHICKEN THIGH",
		Category: "POULTRY",
		Rows:     []seedRow{{"B", 20}, {"C", 15}},
		Tiers: []seedTier{
			{1, 0, "3.20", "flat"},
		},
	},
	{
		Name:     "LAMB RACK",
		Category: "LAMB",
		Rows:     []seedRow{{"A", 6}},
		Tiers: []seedTier{
			{1, 2, "28.00", "retail"},
			{3, 0, "25.00", "bulk"},
		},
	},
	{
		Name:     "TIGER PRAWNS",
		Category: "SEAFOOD",
		Rows:     []seedRow{{"FZ1", 12}},
		Tiers: []seedTier{
			{1, 4, "15.00", "retail"},
			{5, 0, "13.50", "bulk"},
		},
	},
	{
		Name:     "BEEF SAUSAGES",
		Category: "PROCESSED",
		Rows:     []seedRow{{"C", 30}},
		Tiers: []seedTier{
			{1, 9, "4.00", "retail"},
			{10, 0, "3.40", "bulk"},
		},
	},
}

type seedCustomer struct {
	Name  string
	Phone string
	Email string
}

var seedCustomers = []seedCustomer{
	{"GOLDEN WOK RESTAURANT", "+65 6222 1111", "orders@goldenwok.example"},
	{"HAPPY HOTPOT", "+65 6333 2222", "kitchen@happyhotpot.example"},
	{"MDM TAN", "+65 9111 3333", ""},
}

func main() {
	var (
		dryRun   = flag.Bool("dry-run", false, "Preview changes without modifying database")
		logLevel = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	)
	flag.Parse()

	var slogLevel slog.Level
	switch *logLevel {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slogLevel}))
	slog.SetDefault(logger)

	dbURL := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		getEnv("DB_USER", "kprime"),
		getEnv("DB_PASSWORD", "kprime_dev_2025"),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "kprime_inventory"),
		getEnv("DB_SSL_MODE", "disable"),
	)

	ctx := context.Background()

	if *dryRun {
		for _, item := range seedItems {
			logger.Info("would seed item",
				slog.String("name", item.Name),
				slog.Int("fridges", len(item.Rows)),
				slog.Int("tiers", len(item.Tiers)))
		}
		for _, c := range seedCustomers {
			logger.Info("would seed customer", slog.String("name", c.Name))
		}
		return
	}

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		logger.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	seeded := 0
	for _, item := range seedItems {
		if err := seedOneItem(ctx, pool, item); err != nil {
			logger.Error("failed to seed item",
				slog.String("name", item.Name),
				slog.String("error", err.Error()))
			os.Exit(1)
		}
		seeded++
		logger.Info("seeded item", slog.String("name", item.Name))
	}

	for _, c := range seedCustomers {
		if err := seedOneCustomer(ctx, pool, c); err != nil {
			logger.Error("failed to seed customer",
				slog.String("name", c.Name),
				slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("seeding complete",
		slog.Int("items", seeded),
		slog.Int("customers", len(seedCustomers)))
}

// seedOneItem inserts the fridge rows, ledger entries and pricing tiers
// for one item inside a single transaction. Re-running the seeder skips
// items that already exist.
func seedOneItem(ctx context.Context, pool *pgxpool.Pool, item seedItem) error {
	tx, err := pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var exists bool
	if err := tx.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM items WHERE item_name = $1)`, item.Name,
	).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check item: %w", err)
	}
	if exists {
		return tx.Commit(ctx)
	}

	var itemID int64
	if err := tx.QueryRow(ctx, `SELECT nextval('item_id_seq')`).Scan(&itemID); err != nil {
		return fmt.Errorf("failed to allocate item id: %w", err)
	}

	for _, row := range item.Rows {
		if _, err := tx.Exec(ctx, `
			INSERT INTO items (item_id, item_name, category, quantity, fridge_no)
			VALUES ($1, $2, $3, $4, $5)`,
			itemID, item.Name, item.Category, row.Quantity, row.FridgeNo,
		); err != nil {
			return fmt.Errorf("failed to insert stock row: %w", err)
		}

		if _, err := tx.Exec(ctx, `
			INSERT INTO audit_log (item_name, category, action, quantity, unit_cost, selling_price, username)
			VALUES ($1, $2, 'Add', $3, 0, 0, 'seeder')`,
			item.Name, item.Category, row.Quantity,
		); err != nil {
			return fmt.Errorf("failed to insert ledger entry: %w", err)
		}
	}

	for _, tier := range item.Tiers {
		price, err := decimal.NewFromString(tier.Price)
		if err != nil {
			return fmt.Errorf("invalid tier price %q: %w", tier.Price, err)
		}

		var maxQty interface{}
		if tier.MaxQty > 0 {
			maxQty = tier.MaxQty
		}

		if _, err := tx.Exec(ctx, `
			INSERT INTO pricing_tiers (item_id, min_qty, max_qty, price_per_unit, label)
			VALUES ($1, $2, $3, $4, $5)`,
			itemID, tier.MinQty, maxQty, price, tier.Label,
		); err != nil {
			return fmt.Errorf("failed to insert pricing tier: %w", err)
		}
	}

	return tx.Commit(ctx)
}

func seedOneCustomer(ctx context.Context, pool *pgxpool.Pool, c seedCustomer) error {
	var exists bool
	if err := pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM customers WHERE name = $1 AND deleted_at IS NULL)`, c.Name,
	).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check customer: %w", err)
	}
	if exists {
		return nil
	}

	_, err := pool.Exec(ctx, `
		INSERT INTO customers (name, phone, email)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''))`,
		c.Name, c.Phone, c.Email,
	)
	if err != nil {
		return fmt.Errorf("failed to insert customer: %w", err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
