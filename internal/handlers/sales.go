// internal/handlers/sales.go
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aileenong/kprimefood/internal/core/domain"
	"github.com/aileenong/kprimefood/internal/core/ports"
)

// SaleHandler handles sale-related HTTP requests
type SaleHandler struct {
	service ports.SaleService
	logger  *slog.Logger
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(service ports.SaleService, logger *slog.Logger) *SaleHandler {
	return &SaleHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "sales")),
	}
}

// RecordSale handles POST /api/v1/sales
func (h *SaleHandler) RecordSale(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RecordSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.RecordSale(ctx, req.ToDomain(actingUser(r)))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrItemNotFound):
			h.respondError(w, http.StatusNotFound, "Item not found")
		case errors.Is(err, domain.ErrInsufficientStock):
			h.respondError(w, http.StatusConflict, err.Error())
		case errors.Is(err, domain.ErrAllocationFailed):
			h.respondError(w, http.StatusConflict, "Stock changed during sale, please retry")
		case errors.Is(err, domain.ErrNoPricingTier):
			h.respondError(w, http.StatusUnprocessableEntity, "No pricing tier covers this quantity")
		default:
			h.logger.ErrorContext(ctx, "failed to record sale",
				slog.Int64("item_id", req.ItemID),
				slog.String("error", err.Error()))
			h.respondError(w, http.StatusInternalServerError, "Failed to record sale")
		}
		return
	}

	h.logger.InfoContext(ctx, "sale recorded",
		slog.Int64("sale_id", result.Sale.ID),
		slog.String("item_name", result.Sale.ItemName),
		slog.Int("quantity", result.Sale.Quantity))

	h.respondJSON(w, http.StatusCreated, result)
}

// GetSale handles GET /api/v1/sales/{id}
func (h *SaleHandler) GetSale(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	saleID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid sale ID format")
		return
	}

	sale, err := h.service.GetSale(ctx, saleID)
	if err != nil {
		if errors.Is(err, domain.ErrSaleNotFound) {
			h.respondError(w, http.StatusNotFound, "Sale not found")
			return
		}
		h.logger.ErrorContext(ctx, "failed to get sale",
			slog.Int64("sale_id", saleID),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve sale")
		return
	}

	h.respondJSON(w, http.StatusOK, sale)
}

// ListSales handles GET /api/v1/sales
func (h *SaleHandler) ListSales(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	params := h.parseListParams(r)

	result, err := h.service.List(ctx, params)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list sales",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to list sales")
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// parseListParams parses query parameters for listing sales
func (h *SaleHandler) parseListParams(r *http.Request) ports.SaleListParams {
	params := ports.SaleListParams{
		Page:     1,
		PageSize: 50,
	}

	if page := r.URL.Query().Get("page"); page != "" {
		if p, err := strconv.Atoi(page); err == nil && p > 0 {
			params.Page = p
		}
	}

	if limit := r.URL.Query().Get("limit"); limit != "" {
		if l, err := strconv.Atoi(limit); err == nil && l > 0 && l <= 200 {
			params.PageSize = l
		}
	}

	params.ItemName = r.URL.Query().Get("item_name")

	if customerID := r.URL.Query().Get("customer_id"); customerID != "" {
		if id, err := strconv.ParseInt(customerID, 10, 64); err == nil {
			params.CustomerID = &id
		}
	}

	if from, ok := parseDateParam(r, "from"); ok {
		params.From = &from
	}
	if to, ok := parseDateParam(r, "to"); ok {
		params.To = &to
	}

	if order := r.URL.Query().Get("order"); order == "asc" || order == "desc" {
		params.SortOrder = order
	}

	return params
}

// Helper methods

func (h *SaleHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func (h *SaleHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// Request/Response DTOs

// RecordSaleRequest represents the request body for recording a sale
type RecordSaleRequest struct {
	ItemID        int64            `json:"item_id"`
	Quantity      int              `json:"quantity"`
	CustomerID    *int64           `json:"customer_id,omitempty"`
	OverridePrice *decimal.Decimal `json:"override_price,omitempty"`
	SaleDate      *time.Time       `json:"sale_date,omitempty"`
}

// Validate validates the sale request
func (r *RecordSaleRequest) Validate() error {
	if r.ItemID <= 0 {
		return errors.New("item_id is required")
	}
	if r.Quantity <= 0 {
		return errors.New("quantity must be positive")
	}
	if r.OverridePrice != nil && r.OverridePrice.IsNegative() {
		return errors.New("override_price cannot be negative")
	}
	return nil
}

// ToDomain converts the request to a domain sale request
func (r *RecordSaleRequest) ToDomain(username string) *domain.SaleRequest {
	req := &domain.SaleRequest{
		ItemID:        r.ItemID,
		Quantity:      r.Quantity,
		CustomerID:    r.CustomerID,
		OverridePrice: r.OverridePrice,
		Username:      username,
	}
	if r.SaleDate != nil {
		req.SaleDate = *r.SaleDate
	}
	return req
}
