// internal/handlers/pricing.go
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/aileenong/kprimefood/internal/core/domain"
	"github.com/aileenong/kprimefood/internal/core/ports"
)

// PricingHandler handles pricing tier HTTP requests
type PricingHandler struct {
	service ports.PricingService
	logger  *slog.Logger
}

// NewPricingHandler creates a new pricing handler
func NewPricingHandler(service ports.PricingService, logger *slog.Logger) *PricingHandler {
	return &PricingHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "pricing")),
	}
}

// ResolvePrice handles GET /api/v1/pricing/{itemID}/resolve
func (h *PricingHandler) ResolvePrice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	itemID, err := strconv.ParseInt(r.PathValue("itemID"), 10, 64)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid item ID format")
		return
	}

	qty, err := strconv.Atoi(r.URL.Query().Get("quantity"))
	if err != nil || qty <= 0 {
		h.respondError(w, http.StatusBadRequest, "quantity must be a positive integer")
		return
	}

	resolved, err := h.service.ResolvePrice(ctx, itemID, qty)
	if err != nil {
		if errors.Is(err, domain.ErrNoPricingTier) {
			h.respondError(w, http.StatusUnprocessableEntity, "No pricing tier covers this quantity")
			return
		}
		h.logger.ErrorContext(ctx, "failed to resolve price",
			slog.Int64("item_id", itemID),
			slog.Int("quantity", qty),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to resolve price")
		return
	}

	h.respondJSON(w, http.StatusOK, ResolvePriceResponse{
		ResolvedPrice: *resolved,
		Total:         resolved.Total(),
	})
}

// ListTiers handles GET /api/v1/pricing/{itemID}/tiers
func (h *PricingHandler) ListTiers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	itemID, err := strconv.ParseInt(r.PathValue("itemID"), 10, 64)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid item ID format")
		return
	}

	tiers, err := h.service.TiersByItem(ctx, itemID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list tiers",
			slog.Int64("item_id", itemID),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to list pricing tiers")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"item_id": itemID,
		"tiers":   tiers,
	})
}

// UpsertTier handles PUT /api/v1/pricing/{itemID}/tiers
func (h *PricingHandler) UpsertTier(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	itemID, err := strconv.ParseInt(r.PathValue("itemID"), 10, 64)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid item ID format")
		return
	}

	var req UpsertTierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	tier := req.ToDomain(itemID)
	if err := tier.Validate(); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	saved, err := h.service.UpsertTier(ctx, tier, actingUser(r))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to upsert tier",
			slog.Int64("item_id", itemID),
			slog.Int("min_qty", req.MinQty),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to save pricing tier")
		return
	}

	h.respondJSON(w, http.StatusOK, saved)
}

// DeleteTier handles DELETE /api/v1/pricing/tiers/{id}
func (h *PricingHandler) DeleteTier(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tierID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid tier ID format")
		return
	}

	if err := h.service.DeleteTier(ctx, tierID); err != nil {
		if errors.Is(err, domain.ErrTierNotFound) {
			h.respondError(w, http.StatusNotFound, "Pricing tier not found")
			return
		}
		h.logger.ErrorContext(ctx, "failed to delete tier",
			slog.Int64("tier_id", tierID),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to delete pricing tier")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Pricing tier deleted",
		"tier_id": tierID,
	})
}

// PriceHistory handles GET /api/v1/pricing/{itemID}/history
func (h *PricingHandler) PriceHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	itemID, err := strconv.ParseInt(r.PathValue("itemID"), 10, 64)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid item ID format")
		return
	}

	history, err := h.service.PriceHistory(ctx, itemID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get price history",
			slog.Int64("item_id", itemID),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve price history")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"item_id": itemID,
		"changes": history,
	})
}

// Helper methods

func (h *PricingHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func (h *PricingHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// Request/Response DTOs

// UpsertTierRequest represents the request body for saving a pricing tier
type UpsertTierRequest struct {
	MinQty       int             `json:"min_qty"`
	MaxQty       *int            `json:"max_qty,omitempty"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
	Label        string          `json:"label,omitempty"`
}

// ToDomain converts the request to a domain pricing tier
func (r *UpsertTierRequest) ToDomain(itemID int64) *domain.PricingTier {
	return &domain.PricingTier{
		ItemID:       itemID,
		MinQty:       r.MinQty,
		MaxQty:       r.MaxQty,
		PricePerUnit: r.PricePerUnit,
		Label:        r.Label,
	}
}

// ResolvePriceResponse carries a resolved price plus its extended total.
type ResolvePriceResponse struct {
	domain.ResolvedPrice
	Total decimal.Decimal `json:"total"`
}
