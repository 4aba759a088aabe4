// internal/handlers/stock_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/aileenong/kprimefood/internal/core/domain"
	"github.com/aileenong/kprimefood/internal/handlers"
	"github.com/aileenong/kprimefood/test/helpers"
	"github.com/aileenong/kprimefood/test/mocks"
)

func TestStockHandler_UpsertStock(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*mocks.MockCatalogService)
		expectedStatus int
		checkBody      func(*testing.T, map[string]any)
	}{
		{
			name: "new_item_created",
			body: `{"item_name": "ribeye", "category": "beef", "quantity": 3, "fridge_no": "A"}`,
			setupMocks: func(m *mocks.MockCatalogService) {
				m.EXPECT().
					UpsertStock(gomock.Any(), gomock.Any()).
					Return(helpers.CreateTestStockRow(), domain.OutcomeCreated, nil)
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "created", body["outcome"])
			},
		},
		{
			name: "existing_row_accumulates",
			body: `{"item_name": "RIBEYE", "category": "BEEF", "quantity": 2, "fridge_no": "A"}`,
			setupMocks: func(m *mocks.MockCatalogService) {
				m.EXPECT().
					UpsertStock(gomock.Any(), gomock.Any()).
					Return(helpers.CreateTestStockRow(func(r *domain.StockRow) {
						r.Quantity = 5
					}), domain.OutcomeAccumulated, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "accumulated", body["outcome"])
			},
		},
		{
			name: "known_item_new_fridge",
			body: `{"item_name": "RIBEYE", "category": "BEEF", "quantity": 4, "fridge_no": "B"}`,
			setupMocks: func(m *mocks.MockCatalogService) {
				m.EXPECT().
					UpsertStock(gomock.Any(), gomock.Any()).
					Return(helpers.CreateTestStockRow(func(r *domain.StockRow) {
						r.ID = 2
						r.Quantity = 4
						r.FridgeNo = "B"
					}), domain.OutcomeNewFridge, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "new_fridge", body["outcome"])
			},
		},
		{
			name:           "rejects_missing_fridge",
			body:           `{"item_name": "RIBEYE", "quantity": 3}`,
			setupMocks:     func(m *mocks.MockCatalogService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "rejects_malformed_body",
			body:           `{"item_name"`,
			setupMocks:     func(m *mocks.MockCatalogService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mocks.NewMockCatalogService(ctrl)
			tt.setupMocks(service)

			handler := handlers.NewStockHandler(service, helpers.TestLogger())

			req := httptest.NewRequest(http.MethodPost, "/api/v1/stock",
				bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			handler.UpsertStock(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.checkBody != nil {
				var body map[string]any
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				tt.checkBody(t, body)
			}
		})
	}
}

func TestStockHandler_GetOnHand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockCatalogService(ctrl)
	handler := handlers.NewStockHandler(service, helpers.TestLogger())

	t.Run("reports_total", func(t *testing.T) {
		service.EXPECT().
			TotalOnHand(gomock.Any(), "ribeye").
			Return(7, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/stock/ribeye/on-hand", nil)
		req.SetPathValue("itemName", "ribeye")
		rec := httptest.NewRecorder()

		handler.GetOnHand(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "RIBEYE", body["item_name"])
		assert.Equal(t, float64(7), body["on_hand"])
	})

	t.Run("unknown_item", func(t *testing.T) {
		service.EXPECT().
			TotalOnHand(gomock.Any(), "wagyu").
			Return(0, domain.ErrItemNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/stock/wagyu/on-hand", nil)
		req.SetPathValue("itemName", "wagyu")
		rec := httptest.NewRecorder()

		handler.GetOnHand(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestStockHandler_DeleteRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockCatalogService(ctrl)
	handler := handlers.NewStockHandler(service, helpers.TestLogger())

	t.Run("deletes_with_acting_user", func(t *testing.T) {
		service.EXPECT().
			DeleteRow(gomock.Any(), int64(2), "aileen").
			Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/stock/rows/2", nil)
		req.Header.Set("X-User", "aileen")
		req.SetPathValue("id", "2")
		rec := httptest.NewRecorder()

		handler.DeleteRow(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing_row", func(t *testing.T) {
		service.EXPECT().
			DeleteRow(gomock.Any(), int64(99), "system").
			Return(domain.ErrRowNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/stock/rows/99", nil)
		req.SetPathValue("id", "99")
		rec := httptest.NewRecorder()

		handler.DeleteRow(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
