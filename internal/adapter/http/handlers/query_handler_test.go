package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel_procurement/internal/adapter/http/handlers/mocks"
	"hotel_procurement/internal/adapter/http/middlewares"
	"hotel_procurement/internal/domain/entities"
	"hotel_procurement/internal/domain/query"
	"hotel_procurement/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newQueryRouter(t *testing.T) (*gin.Engine, *mocks.MockIQueryUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	uc := mocks.NewMockIQueryUseCase(ctrl)
	h := NewQueryHandler(uc)

	r := gin.New()
	r.Use(middlewares.SetActor(manager))
	r.GET("/requests", h.ListRequests)
	r.GET("/requests/analytics", h.Analytics)
	return r, uc
}

func TestQueryHandler_ListRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid amount", func(t *testing.T) {
		r, _ := newQueryRouter(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/requests?minTotal=abc", nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "INVALID_FILTER" {
			t.Fatalf("expected INVALID_FILTER, got %v", body)
		}
	})

	t.Run("filters are passed through", func(t *testing.T) {
		r, uc := newQueryRouter(t)
		uc.EXPECT().List(gomock.Any(), manager, gomock.Any()).
			DoAndReturn(func(_ any, _ entities.User, f query.Filter) ([]usecase.RequestView, error) {
				if len(f.Statuses) != 3 || f.Statuses[2] != entities.StatusDraft {
					t.Fatalf("unexpected statuses: %v", f.Statuses)
				}
				if f.MinTotal == nil || !f.MinTotal.Equal(decimal.NewFromInt(100)) || f.Search != "towels" {
					t.Fatalf("unexpected filter: %+v", f)
				}
				return []usecase.RequestView{view("r1", entities.StatusDraft)}, nil
			})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/requests?search=towels&minTotal=100&status=pending_hm_approval&status=rejected,draft", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 {
			t.Fatalf("expected 1 request, got %d", len(body))
		}
	})

	t.Run("usecase validation", func(t *testing.T) {
		r, uc := newQueryRouter(t)
		uc.EXPECT().List(gomock.Any(), manager, gomock.Any()).Return(nil, entities.Validationf("minTotal greater than maxTotal"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/requests?minTotal=5&maxTotal=1", nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestQueryHandler_Analytics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r, uc := newQueryRouter(t)
	uc.EXPECT().Analytics(gomock.Any(), manager).Return(query.Analytics{AwaitingMyAction: 2, PendingSpend: decimal.NewFromInt(2125)}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/requests/analytics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["awaitingMyAction"] != float64(2) || body["pendingSpend"] != "2125" {
		t.Fatalf("unexpected analytics: %v", body)
	}
}
