//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/aileenong/kprimefood/internal/adapters/db"
	redis_a "github.com/aileenong/kprimefood/internal/adapters/redis_adapter"
	"github.com/aileenong/kprimefood/internal/core/services"
	"github.com/aileenong/kprimefood/internal/handlers"
	"github.com/aileenong/kprimefood/test/helpers"
)

// SaleWorkflowSuite drives the full path of a tiered sale over real
// infrastructure: PostgreSQL in a container, Redis via miniredis, and
// the HTTP layer wired the same way the API binary wires it.
type SaleWorkflowSuite struct {
	suite.Suite
	server    *httptest.Server
	client    *http.Client
	testDB    *helpers.TestDB
	testRedis *helpers.TestRedis
}

func TestSaleWorkflowSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e tests in short mode")
	}
	suite.Run(t, new(SaleWorkflowSuite))
}

func (s *SaleWorkflowSuite) SetupSuite() {
	s.testDB = helpers.SetupTestDB(s.T())
	s.testRedis = helpers.SetupTestRedis(s.T())

	logger := helpers.TestLogger()

	catalogRepo := db.NewCatalogRepository(s.testDB.Database, logger)
	pricingRepo := db.NewPricingRepository(s.testDB.Database, logger)
	saleRepo := db.NewSaleRepository(s.testDB.Database, logger)
	auditRepo := db.NewAuditRepository(s.testDB.Database, logger)
	customerRepo := db.NewCustomerRepository(s.testDB.Database, logger)
	orderNumberRepo := db.NewOrderNumberRepository(s.testDB.Database, logger)

	cache := redis_a.NewCache(s.testRedis.Client, time.Minute, logger)
	itemLock := redis_a.NewItemLock(s.testRedis.Client, logger)

	catalogService := services.NewCatalogService(catalogRepo, cache, logger)
	pricingService := services.NewPricingService(pricingRepo, logger)
	saleService := services.NewSaleService(catalogRepo, pricingRepo, saleRepo, itemLock, cache, logger)
	customerService := services.NewCustomerService(customerRepo, logger)
	statementService := services.NewStatementService(customerRepo, saleRepo, orderNumberRepo, logger)

	stockHandler := handlers.NewStockHandler(catalogService, logger)
	pricingHandler := handlers.NewPricingHandler(pricingService, logger)
	saleHandler := handlers.NewSaleHandler(saleService, logger)
	customerHandler := handlers.NewCustomerHandler(customerService, statementService, logger)
	auditHandler := handlers.NewAuditHandler(auditRepo, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/stock", stockHandler.UpsertStock)
	mux.HandleFunc("GET /api/v1/stock/{itemName}/rows", stockHandler.GetRows)
	mux.HandleFunc("GET /api/v1/stock/{itemName}/on-hand", stockHandler.GetOnHand)
	mux.HandleFunc("GET /api/v1/pricing/{itemID}/resolve", pricingHandler.ResolvePrice)
	mux.HandleFunc("PUT /api/v1/pricing/{itemID}/tiers", pricingHandler.UpsertTier)
	mux.HandleFunc("POST /api/v1/sales", saleHandler.RecordSale)
	mux.HandleFunc("GET /api/v1/sales/{id}", saleHandler.GetSale)
	mux.HandleFunc("POST /api/v1/customers", customerHandler.CreateCustomer)
	mux.HandleFunc("GET /api/v1/customers/{id}/statement", customerHandler.GetStatement)
	mux.HandleFunc("GET /api/v1/audit", auditHandler.ListAudit)

	s.server = httptest.NewServer(mux)
	s.client = s.server.Client()
}

func (s *SaleWorkflowSuite) TearDownSuite() {
	if s.server != nil {
		s.server.Close()
	}
}

func (s *SaleWorkflowSuite) SetupTest() {
	helpers.TruncateAllTables(s.T(), s.testDB.PgxPool)
}

func (s *SaleWorkflowSuite) postJSON(path string, body any, headers map[string]string) *http.Response {
	data, err := json.Marshal(body)
	s.Require().NoError(err)

	req, err := http.NewRequest(http.MethodPost, s.server.URL+path, bytes.NewReader(data))
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := s.client.Do(req)
	s.Require().NoError(err)
	return resp
}

func (s *SaleWorkflowSuite) putJSON(path string, body any) *http.Response {
	data, err := json.Marshal(body)
	s.Require().NoError(err)

	req, err := http.NewRequest(http.MethodPut, s.server.URL+path, bytes.NewReader(data))
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	s.Require().NoError(err)
	return resp
}

func (s *SaleWorkflowSuite) getJSON(path string, dest any) int {
	resp, err := s.client.Get(s.server.URL + path)
	s.Require().NoError(err)
	defer resp.Body.Close()

	if dest != nil {
		s.Require().NoError(json.NewDecoder(resp.Body).Decode(dest))
	}
	return resp.StatusCode
}

func (s *SaleWorkflowSuite) decode(resp *http.Response, dest any) {
	defer resp.Body.Close()
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(dest))
}

// seedRibeye puts 3 units in fridge A, 4 in fridge B, and installs the
// retail and bulk tiers. Returns the logical item id.
func (s *SaleWorkflowSuite) seedRibeye() int64 {
	resp := s.postJSON("/api/v1/stock", map[string]any{
		"item_name": "ribeye",
		"category":  "beef",
		"quantity":  3,
		"fridge_no": "A",
	}, nil)
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	var created struct {
		Row struct {
			ItemID int64 `json:"item_id"`
		} `json:"row"`
	}
	s.decode(resp, &created)
	itemID := created.Row.ItemID

	resp = s.postJSON("/api/v1/stock", map[string]any{
		"item_name": "RIBEYE",
		"category":  "BEEF",
		"quantity":  4,
		"fridge_no": "B",
	}, nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = s.putJSON(fmt.Sprintf("/api/v1/pricing/%d/tiers", itemID), map[string]any{
		"min_qty":        1,
		"max_qty":        5,
		"price_per_unit": "10.00",
		"label":          "retail",
	})
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = s.putJSON(fmt.Sprintf("/api/v1/pricing/%d/tiers", itemID), map[string]any{
		"min_qty":        6,
		"price_per_unit": "8.00",
		"label":          "bulk",
	})
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	return itemID
}

func (s *SaleWorkflowSuite) TestTieredSaleAcrossFridges() {
	itemID := s.seedRibeye()

	// Resolve the retail tier before selling
	var resolved struct {
		PricePerUnit decimal.Decimal `json:"price_per_unit"`
		Total        decimal.Decimal `json:"total"`
	}
	status := s.getJSON(fmt.Sprintf("/api/v1/pricing/%d/resolve?quantity=5", itemID), &resolved)
	s.Equal(http.StatusOK, status)
	s.True(resolved.PricePerUnit.Equal(decimal.NewFromInt(10)))
	s.True(resolved.Total.Equal(decimal.NewFromInt(50)))

	// Record a sale of 5: drains fridge A and takes 2 from fridge B
	resp := s.postJSON("/api/v1/sales", map[string]any{
		"item_id":  itemID,
		"quantity": 5,
	}, map[string]string{"X-User": "aileen"})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	var result struct {
		Status     string `json:"status"`
		Deductions []struct {
			FridgeNo string `json:"fridge_no"`
			Deducted int    `json:"deducted"`
			NewQty   int    `json:"new_qty"`
		} `json:"deductions"`
		Sale struct {
			ID        int64           `json:"id"`
			TotalSale decimal.Decimal `json:"total_sale"`
		} `json:"sale"`
	}
	s.decode(resp, &result)
	s.Equal("committed", result.Status)
	s.Require().Len(result.Deductions, 2)
	s.Equal("A", result.Deductions[0].FridgeNo)
	s.Equal(3, result.Deductions[0].Deducted)
	s.Equal("B", result.Deductions[1].FridgeNo)
	s.Equal(2, result.Deductions[1].Deducted)

	// On-hand total reflects the deduction
	var onHand struct {
		OnHand int `json:"on_hand"`
	}
	status = s.getJSON("/api/v1/stock/ribeye/on-hand", &onHand)
	s.Equal(http.StatusOK, status)
	s.Equal(2, onHand.OnHand)

	// The ledger recorded the sale
	var audit struct {
		Entries []struct {
			Action   string `json:"action"`
			Quantity int    `json:"quantity"`
		} `json:"entries"`
	}
	status = s.getJSON("/api/v1/audit?action=Sale", &audit)
	s.Equal(http.StatusOK, status)
	s.Require().NotEmpty(audit.Entries)
	s.Equal("Sale", audit.Entries[0].Action)
	s.Equal(5, audit.Entries[0].Quantity)
}

func (s *SaleWorkflowSuite) TestBulkTierAppliesAtBoundary() {
	itemID := s.seedRibeye()

	resp := s.postJSON("/api/v1/sales", map[string]any{
		"item_id":  itemID,
		"quantity": 6,
	}, nil)
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	var result struct {
		Sale struct {
			SellingPrice decimal.Decimal `json:"selling_price"`
			TotalSale    decimal.Decimal `json:"total_sale"`
		} `json:"sale"`
	}
	s.decode(resp, &result)
	s.True(result.Sale.SellingPrice.Equal(decimal.NewFromInt(8)))
	s.True(result.Sale.TotalSale.Equal(decimal.NewFromInt(48)))
}

func (s *SaleWorkflowSuite) TestOversellRejectedAndStockUntouched() {
	itemID := s.seedRibeye()

	resp := s.postJSON("/api/v1/sales", map[string]any{
		"item_id":  itemID,
		"quantity": 9,
	}, nil)
	s.Require().Equal(http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	var onHand struct {
		OnHand int `json:"on_hand"`
	}
	status := s.getJSON("/api/v1/stock/ribeye/on-hand", &onHand)
	s.Equal(http.StatusOK, status)
	s.Equal(7, onHand.OnHand)
}

func (s *SaleWorkflowSuite) TestQuantityOutsideAllTiersRejected() {
	// Single banded tier only, so large quantities have no price
	resp := s.postJSON("/api/v1/stock", map[string]any{
		"item_name": "LAMB RACK",
		"category":  "LAMB",
		"quantity":  50,
		"fridge_no": "A",
	}, nil)
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	var created struct {
		Row struct {
			ItemID int64 `json:"item_id"`
		} `json:"row"`
	}
	s.decode(resp, &created)

	tierResp := s.putJSON(fmt.Sprintf("/api/v1/pricing/%d/tiers", created.Row.ItemID), map[string]any{
		"min_qty":        1,
		"max_qty":        5,
		"price_per_unit": "28.00",
	})
	s.Require().Equal(http.StatusOK, tierResp.StatusCode)
	tierResp.Body.Close()

	resp = s.postJSON("/api/v1/sales", map[string]any{
		"item_id":  created.Row.ItemID,
		"quantity": 10,
	}, nil)
	s.Equal(http.StatusUnprocessableEntity, resp.StatusCode)
	resp.Body.Close()
}

func (s *SaleWorkflowSuite) TestCustomerStatementCollectsSales() {
	itemID := s.seedRibeye()

	resp := s.postJSON("/api/v1/customers", map[string]any{
		"name":  "GOLDEN WOK RESTAURANT",
		"phone": "+65 6222 1111",
	}, nil)
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	var customer struct {
		ID int64 `json:"id"`
	}
	s.decode(resp, &customer)

	resp = s.postJSON("/api/v1/sales", map[string]any{
		"item_id":     itemID,
		"quantity":    2,
		"customer_id": customer.ID,
	}, nil)
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = s.postJSON("/api/v1/sales", map[string]any{
		"item_id":     itemID,
		"quantity":    3,
		"customer_id": customer.ID,
	}, nil)
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	var statement struct {
		Lines []struct {
			ItemName string `json:"item_name"`
			Quantity int    `json:"quantity"`
		} `json:"lines"`
		TotalQuantity int             `json:"total_quantity"`
		TotalAmount   decimal.Decimal `json:"total_amount"`
	}
	status := s.getJSON(fmt.Sprintf("/api/v1/customers/%d/statement", customer.ID), &statement)
	s.Equal(http.StatusOK, status)
	s.Require().Len(statement.Lines, 2)
	s.Equal(5, statement.TotalQuantity)
	s.True(statement.TotalAmount.Equal(decimal.NewFromInt(50)))
}
