// internal/handlers/pricing_test.go
package handlers_test

import (
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

func TestPricingHandler_ResolvePrice(t *testing.T) {
	tests := []struct {
		name           string
		itemID         string
		query          string
		setupMocks     func(*mocks.MockPricingService)
		expectedStatus int
		checkBody      func(*testing.T, map[string]any)
	}{
		{
			name:   "resolves_and_reports_total",
			itemID: "100",
			query:  "quantity=5",
			setupMocks: func(m *mocks.MockPricingService) {
				m.EXPECT().
					ResolvePrice(gomock.Any(), int64(100), 5).
					Return(&domain.ResolvedPrice{
						ItemID:       100,
						Quantity:     5,
						PricePerUnit: helpers.CreateTestTier().PricePerUnit,
						TierID:       1,
						TierLabel:    "retail",
					}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "10", body["price_per_unit"])
				assert.Equal(t, "50", body["total"])
				assert.Equal(t, "retail", body["tier_label"])
			},
		},
		{
			name:   "uncovered_quantity_is_unprocessable",
			itemID: "100",
			query:  "quantity=500",
			setupMocks: func(m *mocks.MockPricingService) {
				m.EXPECT().
					ResolvePrice(gomock.Any(), int64(100), 500).
					Return(nil, domain.ErrNoPricingTier)
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "rejects_missing_quantity",
			itemID:         "100",
			query:          "",
			setupMocks:     func(m *mocks.MockPricingService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "rejects_non_positive_quantity",
			itemID:         "100",
			query:          "quantity=0",
			setupMocks:     func(m *mocks.MockPricingService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "rejects_bad_item_id",
			itemID:         "abc",
			query:          "quantity=5",
			setupMocks:     func(m *mocks.MockPricingService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mocks.NewMockPricingService(ctrl)
			tt.setupMocks(service)

			handler := handlers.NewPricingHandler(service, helpers.TestLogger())

			url := "/api/v1/pricing/" + tt.itemID + "/resolve"
			if tt.query != "" {
				url += "?" + tt.query
			}
			req := httptest.NewRequest(http.MethodGet, url, nil)
			req.SetPathValue("itemID", tt.itemID)
			rec := httptest.NewRecorder()

			handler.ResolvePrice(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.checkBody != nil {
				var body map[string]any
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				tt.checkBody(t, body)
			}
		})
	}
}

func TestPricingHandler_DeleteTier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockPricingService(ctrl)
	handler := handlers.NewPricingHandler(service, helpers.TestLogger())

	t.Run("deletes_existing_tier", func(t *testing.T) {
		service.EXPECT().DeleteTier(gomock.Any(), int64(1)).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/pricing/tiers/1", nil)
		req.SetPathValue("id", "1")
		rec := httptest.NewRecorder()

		handler.DeleteTier(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing_tier", func(t *testing.T) {
		service.EXPECT().DeleteTier(gomock.Any(), int64(99)).Return(domain.ErrTierNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/pricing/tiers/99", nil)
		req.SetPathValue("id", "99")
		rec := httptest.NewRecorder()

		handler.DeleteTier(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
