// internal/handlers/dashboard.go
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/aileenong/kprimefood/internal/adapters/db"
	redis_a "github.com/aileenong/kprimefood/internal/adapters/redis_adapter"
	"github.com/aileenong/kprimefood/internal/core/ports"
	"github.com/aileenong/kprimefood/internal/workers"
)

// DashboardHandler serves precomputed shop aggregates
type DashboardHandler struct {
	db       *db.Database
	cache    ports.CacheRepository
	cacheTTL time.Duration
	logger   *slog.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(database *db.Database, cache ports.CacheRepository, cacheTTL time.Duration, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		db:       database,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger.With(slog.String("handler", "dashboard")),
	}
}

// GetDashboard handles GET /api/v1/dashboard. The background refresher
// keeps the cache warm; a miss recomputes inline.
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cacheKey := redis_a.BuildKey(redis_a.PrefixDashboard, "summary")
	var summary workers.DashboardSummary

	err := h.cache.GetOrSet(ctx, cacheKey, &summary, func() (interface{}, error) {
		return workers.ComputeDashboardSummary(ctx, h.db)
	}, h.cacheTTL)

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load dashboard",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	h.respondJSON(w, http.StatusOK, summary)
}

// GetLowStock handles GET /api/v1/dashboard/low-stock. It serves the
// last scan result; an empty list means no scan has flagged anything.
func (h *DashboardHandler) GetLowStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	items := []workers.LowStockItem{}
	key := redis_a.BuildKey(redis_a.PrefixStock, "low")
	if err := h.cache.Get(ctx, key, &items); err != nil && !errors.Is(err, redis_a.ErrCacheMiss) {
		h.logger.ErrorContext(ctx, "failed to load low stock list",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to load low stock list")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"items": items,
		"count": len(items),
	})
}

// Helper methods

func (h *DashboardHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func (h *DashboardHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
