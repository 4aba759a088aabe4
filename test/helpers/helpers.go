// test/helpers/helpers.go
package helpers

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/aileenong/kprimefood/internal/adapters/db"
	"github.com/aileenong/kprimefood/internal/core/domain"
	"github.com/aileenong/kprimefood/internal/pkg/config"
)

// TestDB represents a test database instance
type TestDB struct {
	PgxPool  *pgxpool.Pool
	Database *db.Database
	Resource *dockertest.Resource
	Pool     *dockertest.Pool
	Config   *db.Config
}

// TestRedis represents a test Redis instance
type TestRedis struct {
	Client *redis.Client
	Server *miniredis.Miniredis
}

// TestLogger returns a test logger
func TestLogger() *slog.Logger {
	if testing.Verbose() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// SetupTestDB creates a PostgreSQL container for integration tests
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "Could not connect to Docker")

	// Pull PostgreSQL image
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=test",
			"POSTGRES_PASSWORD=test",
			"POSTGRES_DB=test_inventory",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err, "Could not start PostgreSQL container")

	// Clean up on test completion
	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("Could not purge resource: %s", err)
		}
	})

	// Get connection details
	dbConfig := &db.Config{
		Host:               "localhost",
		Port:               resource.GetPort("5432/tcp"),
		User:               "test",
		Password:           "test",
		Database:           "test_inventory",
		SSLMode:            "disable",
		MaxConnections:     5,
		MinConnections:     1,
		MaxConnLifetime:    time.Hour,
		MaxConnIdleTime:    time.Minute * 30,
		HealthCheckPeriod:  time.Minute,
		ConnectTimeout:     time.Second * 10,
		StatementCacheMode: "describe",
		EnableQueryLogging: testing.Verbose(),
	}

	// Wait for database to be ready
	var database *db.Database
	err = pool.Retry(func() error {
		ctx := context.Background()
		var err error
		database, err = db.NewDatabase(ctx, dbConfig, TestLogger())
		if err != nil {
			return err
		}
		return database.Ping(ctx)
	})
	require.NoError(t, err, "Could not connect to PostgreSQL")

	// Run migrations
	ctx := context.Background()
	migrationConfig := &db.MigrationConfig{
		DatabaseURL: fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
			dbConfig.User, dbConfig.Password, dbConfig.Host, dbConfig.Port,
			dbConfig.Database, dbConfig.SSLMode),
		SourcePath: "../../migrations",
		TableName:  "schema_migrations",
		SchemaName: "public",
	}

	err = db.RunMigrationsWithRetry(ctx, migrationConfig, TestLogger(), 3)
	require.NoError(t, err, "Could not run migrations")

	return &TestDB{
		PgxPool:  database.Pool(),
		Database: database,
		Resource: resource,
		Pool:     pool,
		Config:   dbConfig,
	}
}

// SetupTestRedis creates a mock Redis instance for testing
func SetupTestRedis(t *testing.T) *TestRedis {
	t.Helper()

	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	return &TestRedis{
		Client: client,
		Server: mr,
	}
}

// SetupMockDB creates a mock database for unit testing
func SetupMockDB(t *testing.T) (sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err, "Failed to create mock DB")

	t.Cleanup(func() {
		db.Close()
	})

	return mock, db
}

// LoadTestConfig returns a test configuration
func LoadTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        "test-api",
			Environment: "test",
			Version:     "test",
			LogLevel:    "debug",
			LogFormat:   "text",
			Debug:       true,
		},
		Database: config.DatabaseConfig{
			Host:               "localhost",
			Port:               "5432",
			User:               "test",
			Password:           "test",
			Name:               "test_inventory",
			SSLMode:            "disable",
			MaxConnections:     10,
			MinConnections:     2,
			EnableQueryLogging: true,
		},
		Redis: config.RedisConfig{
			Host:     "localhost",
			Port:     "6379",
			DB:       0,
			TTL:      time.Hour,
			PoolSize: 10,
		},
		Inventory: config.InventoryConfig{
			LowStockThreshold: 5,
			SaleLockTTL:       15 * time.Second,
			DashboardCacheTTL: time.Minute,
		},
		Security: config.SecurityConfig{
			RateLimitRequests: 100,
			RateLimitDuration: time.Minute,
			AllowedOrigins:    []string{"*"},
			SecureHeaders:     false,
		},
		Server: config.ServerConfig{
			Host:         "localhost",
			Port:         "8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
	}
}

// CreateTestStockRow creates a test stock row
func CreateTestStockRow(overrides ...func(*domain.StockRow)) *domain.StockRow {
	row := &domain.StockRow{
		ID:        1,
		ItemID:    100,
		ItemName:  "RIBEYE",
		Category:  domain.CategoryBeef,
		Quantity:  3,
		FridgeNo:  "A",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	for _, override := range overrides {
		override(row)
	}

	return row
}

// CreateTestStockRows creates the two-fridge split used across sale and
// allocation tests: fridge A holds 3, fridge B holds 4.
func CreateTestStockRows() []domain.StockRow {
	return []domain.StockRow{
		*CreateTestStockRow(),
		*CreateTestStockRow(func(r *domain.StockRow) {
			r.ID = 2
			r.Quantity = 4
			r.FridgeNo = "B"
		}),
	}
}

// CreateTestTier creates a test pricing tier
func CreateTestTier(overrides ...func(*domain.PricingTier)) *domain.PricingTier {
	maxQty := 5
	tier := &domain.PricingTier{
		ID:           1,
		ItemID:       100,
		MinQty:       1,
		MaxQty:       &maxQty,
		PricePerUnit: decimal.NewFromFloat(10.00),
		Label:        "retail",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	for _, override := range overrides {
		override(tier)
	}

	return tier
}

// CreateTestCustomer creates a test customer
func CreateTestCustomer(overrides ...func(*domain.Customer)) *domain.Customer {
	customer := &domain.Customer{
		ID:        1,
		Name:      "GOLDEN WOK RESTAURANT",
		Phone:     "+65 6222 1111",
		Email:     "orders@goldenwok.example",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	for _, override := range overrides {
		override(customer)
	}

	return customer
}

// CreateTestSaleRequest creates a test sale request
func CreateTestSaleRequest(overrides ...func(*domain.SaleRequest)) *domain.SaleRequest {
	req := &domain.SaleRequest{
		ItemID:   100,
		Quantity: 5,
		Username: "tester",
		SaleDate: time.Now(),
	}

	for _, override := range overrides {
		override(req)
	}

	return req
}

// SeedStockRows inserts stock rows directly, bypassing the service layer
func SeedStockRows(t *testing.T, db *pgxpool.Pool, rows []domain.StockRow) {
	t.Helper()

	ctx := context.Background()
	for _, row := range rows {
		_, err := db.Exec(ctx, `
			INSERT INTO items (item_id, item_name, category, quantity, fridge_no)
			VALUES ($1, $2, $3, $4, $5)`,
			row.ItemID, row.ItemName, row.Category, row.Quantity, row.FridgeNo,
		)
		require.NoError(t, err, "Failed to seed stock row")
	}
}

// SeedTiers inserts pricing tiers directly
func SeedTiers(t *testing.T, db *pgxpool.Pool, tiers []domain.PricingTier) {
	t.Helper()

	ctx := context.Background()
	for _, tier := range tiers {
		_, err := db.Exec(ctx, `
			INSERT INTO pricing_tiers (item_id, min_qty, max_qty, price_per_unit, label)
			VALUES ($1, $2, $3, $4, NULLIF($5, ''))`,
			tier.ItemID, tier.MinQty, tier.MaxQty, tier.PricePerUnit, tier.Label,
		)
		require.NoError(t, err, "Failed to seed pricing tier")
	}
}

// TruncateAllTables truncates all tables in the test database
func TruncateAllTables(t *testing.T, db *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()
	tables := []string{
		"price_history",
		"po_sequence",
		"audit_log",
		"sales",
		"customers",
		"pricing_tiers",
		"items",
	}

	for _, table := range tables {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err, "Failed to truncate table: %s", table)
	}
}

// AssertEventuallyWithTimeout asserts that a condition is met within a timeout
func AssertEventuallyWithTimeout(t *testing.T, condition func() bool, timeout time.Duration, msg string) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(100 * time.Millisecond)
	}

	t.Errorf("Condition not met within %v: %s", timeout, msg)
}
