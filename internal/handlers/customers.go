// internal/handlers/customers.go
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/aileenong/kprimefood/internal/core/domain"
	"github.com/aileenong/kprimefood/internal/core/ports"
)

// defaultStatementWindow is used when a statement request carries no
// explicit date range.
const defaultStatementWindow = 30 * 24 * time.Hour

// CustomerHandler handles customer and statement HTTP requests
type CustomerHandler struct {
	customers  ports.CustomerService
	statements ports.StatementService
	logger     *slog.Logger
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customers ports.CustomerService, statements ports.StatementService, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{
		customers:  customers,
		statements: statements,
		logger:     logger.With(slog.String("handler", "customers")),
	}
}

// CreateCustomer handles POST /api/v1/customers
func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	customer := req.ToDomain()
	if err := customer.Validate(); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	saved, err := h.customers.Create(ctx, customer)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create customer",
			slog.String("name", req.Name),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to create customer")
		return
	}

	h.respondJSON(w, http.StatusCreated, saved)
}

// GetCustomer handles GET /api/v1/customers/{id}
func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	customerID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	customer, err := h.customers.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			h.respondError(w, http.StatusNotFound, "Customer not found")
			return
		}
		h.logger.ErrorContext(ctx, "failed to get customer",
			slog.Int64("customer_id", customerID),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve customer")
		return
	}

	h.respondJSON(w, http.StatusOK, customer)
}

// UpdateCustomer handles PUT /api/v1/customers/{id}
func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	customerID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	var req CustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	customer := req.ToDomain()
	customer.ID = customerID
	if err := customer.Validate(); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.customers.Update(ctx, customer); err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			h.respondError(w, http.StatusNotFound, "Customer not found")
			return
		}
		h.logger.ErrorContext(ctx, "failed to update customer",
			slog.Int64("customer_id", customerID),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to update customer")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Customer updated successfully"})
}

// ListCustomers handles GET /api/v1/customers
func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	customers, err := h.customers.List(ctx, r.URL.Query().Get("search"))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list customers",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to list customers")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"customers": customers,
		"count":     len(customers),
	})
}

// DeleteCustomer handles DELETE /api/v1/customers/{id}
func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	customerID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	if err := h.customers.Delete(ctx, customerID); err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			h.respondError(w, http.StatusNotFound, "Customer not found")
			return
		}
		h.logger.ErrorContext(ctx, "failed to delete customer",
			slog.Int64("customer_id", customerID),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to delete customer")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message":     "Customer deleted",
		"customer_id": customerID,
	})
}

// GetStatement handles GET /api/v1/customers/{id}/statement
func (h *CustomerHandler) GetStatement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	customerID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	to, ok := parseDateParam(r, "to")
	if !ok {
		to = time.Now()
	}
	from, ok := parseDateParam(r, "from")
	if !ok {
		from = to.Add(-defaultStatementWindow)
	}
	if from.After(to) {
		h.respondError(w, http.StatusBadRequest, "from must not be after to")
		return
	}

	statement, err := h.statements.BuildStatement(ctx, customerID, from, to)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			h.respondError(w, http.StatusNotFound, "Customer not found")
			return
		}
		h.logger.ErrorContext(ctx, "failed to build statement",
			slog.Int64("customer_id", customerID),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to build statement")
		return
	}

	h.respondJSON(w, http.StatusOK, statement)
}

// NextOrderNumber handles POST /api/v1/purchase-orders/number
func (h *CustomerHandler) NextOrderNumber(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req OrderNumberRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	number, err := h.statements.NextOrderNumber(ctx, date)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to mint order number",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to generate order number")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]string{"po_number": number})
}

// Helper methods

func (h *CustomerHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func (h *CustomerHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// Request/Response DTOs

// CustomerRequest represents the request body for creating or updating
// a customer
type CustomerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// ToDomain converts the request to a domain customer
func (r *CustomerRequest) ToDomain() *domain.Customer {
	return &domain.Customer{
		Name:    r.Name,
		Phone:   r.Phone,
		Email:   r.Email,
		Address: r.Address,
	}
}

// OrderNumberRequest optionally pins the date an order number is minted
// for. An empty body mints for today.
type OrderNumberRequest struct {
	Date *time.Time `json:"date,omitempty"`
}
