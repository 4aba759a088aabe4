// internal/handlers/stock.go
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aileenong/kprimefood/internal/core/domain"
	"github.com/aileenong/kprimefood/internal/core/ports"
)

// StockHandler handles stock catalog HTTP requests
type StockHandler struct {
	service ports.CatalogService
	logger  *slog.Logger
}

// NewStockHandler creates a new stock handler
func NewStockHandler(service ports.CatalogService, logger *slog.Logger) *StockHandler {
	return &StockHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "stock")),
	}
}

// UpsertStock handles POST /api/v1/stock
func (h *StockHandler) UpsertStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req UpsertStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	upsert := req.ToDomain(actingUser(r))
	if err := upsert.Validate(); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	row, outcome, err := h.service.UpsertStock(ctx, upsert)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to upsert stock",
			slog.String("item_name", req.ItemName),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to record stock")
		return
	}

	status := http.StatusOK
	if outcome == domain.OutcomeCreated {
		status = http.StatusCreated
	}

	h.respondJSON(w, status, UpsertStockResponse{Row: row, Outcome: outcome})
}

// ListStock handles GET /api/v1/stock
func (h *StockHandler) ListStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	params := h.parseListParams(r)

	result, err := h.service.List(ctx, params)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list stock",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to list stock")
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// GetRows handles GET /api/v1/stock/{itemName}/rows
func (h *StockHandler) GetRows(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	itemName := r.PathValue("itemName")
	if itemName == "" {
		h.respondError(w, http.StatusBadRequest, "Item name is required")
		return
	}

	rows, err := h.service.RowsByName(ctx, itemName)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get stock rows",
			slog.String("item_name", itemName),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve stock rows")
		return
	}

	if len(rows) == 0 {
		h.respondError(w, http.StatusNotFound, "Item not found")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"item_name": domain.NormalizeName(itemName),
		"rows":      rows,
	})
}

// GetOnHand handles GET /api/v1/stock/{itemName}/on-hand
func (h *StockHandler) GetOnHand(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	itemName := r.PathValue("itemName")
	if itemName == "" {
		h.respondError(w, http.StatusBadRequest, "Item name is required")
		return
	}

	onHand, err := h.service.TotalOnHand(ctx, itemName)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			h.respondError(w, http.StatusNotFound, "Item not found")
			return
		}
		h.logger.ErrorContext(ctx, "failed to get on-hand total",
			slog.String("item_name", itemName),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve on-hand total")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"item_name": domain.NormalizeName(itemName),
		"on_hand":   onHand,
	})
}

// DeleteRow handles DELETE /api/v1/stock/rows/{id}
func (h *StockHandler) DeleteRow(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rowID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid row ID format")
		return
	}

	if err := h.service.DeleteRow(ctx, rowID, actingUser(r)); err != nil {
		if errors.Is(err, domain.ErrRowNotFound) {
			h.respondError(w, http.StatusNotFound, "Stock row not found")
			return
		}
		h.logger.ErrorContext(ctx, "failed to delete stock row",
			slog.Int64("row_id", rowID),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to delete stock row")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Stock row deleted",
		"row_id":  rowID,
	})
}

// parseListParams parses query parameters for listing stock
func (h *StockHandler) parseListParams(r *http.Request) ports.StockListParams {
	params := ports.StockListParams{
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

	params.Search = r.URL.Query().Get("search")
	params.Category = r.URL.Query().Get("category")
	params.FridgeNo = r.URL.Query().Get("fridge_no")

	if sortBy := r.URL.Query().Get("sort"); sortBy != "" {
		params.SortBy = sortBy
	}
	if order := r.URL.Query().Get("order"); order == "asc" || order == "desc" {
		params.SortOrder = order
	}

	return params
}

// Helper methods

func (h *StockHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func (h *StockHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// Request/Response DTOs

// UpsertStockRequest represents the request body for adding stock
type UpsertStockRequest struct {
	ItemName string `json:"item_name"`
	Category string `json:"category,omitempty"`
	Quantity int    `json:"quantity"`
	FridgeNo string `json:"fridge_no"`
}

// ToDomain converts the request to a domain upsert
func (r *UpsertStockRequest) ToDomain(username string) *domain.StockUpsert {
	return &domain.StockUpsert{
		ItemName: r.ItemName,
		Category: domain.ItemCategory(r.Category),
		Quantity: r.Quantity,
		FridgeNo: r.FridgeNo,
		Username: username,
	}
}

// UpsertStockResponse reports the row after the upsert and what the
// upsert did to it.
type UpsertStockResponse struct {
	Row     *domain.StockRow     `json:"row"`
	Outcome domain.UpsertOutcome `json:"outcome"`
}
