// internal/handlers/audit.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aileenong/kprimefood/internal/core/ports"
)

// AuditHandler serves the append-only ledger
type AuditHandler struct {
	repo   ports.AuditRepository
	logger *slog.Logger
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(repo ports.AuditRepository, logger *slog.Logger) *AuditHandler {
	return &AuditHandler{
		repo:   repo,
		logger: logger.With(slog.String("handler", "audit")),
	}
}

// ListAudit handles GET /api/v1/audit
func (h *AuditHandler) ListAudit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	params := h.parseListParams(r)

	result, err := h.repo.List(ctx, params)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list audit entries",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to list audit entries")
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// parseListParams parses query parameters for listing ledger entries
func (h *AuditHandler) parseListParams(r *http.Request) ports.AuditListParams {
	params := ports.AuditListParams{
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
	params.Action = r.URL.Query().Get("action")
	params.Username = r.URL.Query().Get("username")

	if from, ok := parseDateParam(r, "from"); ok {
		params.From = &from
	}
	if to, ok := parseDateParam(r, "to"); ok {
		params.To = &to
	}

	return params
}

// Helper methods

func (h *AuditHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func (h *AuditHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
