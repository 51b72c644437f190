package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel_procurement/internal/adapter/http/handlers/mocks"
	"hotel_procurement/internal/adapter/http/middlewares"
	"hotel_procurement/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newReportRouter(t *testing.T) (*gin.Engine, *mocks.MockIReportUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	uc := mocks.NewMockIReportUseCase(ctrl)
	h := NewReportHandler(uc)

	r := gin.New()
	r.Use(middlewares.SetActor(manager))
	r.GET("/reports/monthly", h.MonthlyReport)
	r.GET("/reports/monthly/export", h.ExportMonthlyReport)
	return r, uc
}

func TestReportHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing month", func(t *testing.T) {
		r, _ := newReportRouter(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/monthly?branchId=b1", nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("no completed requests", func(t *testing.T) {
		r, uc := newReportRouter(t)
		uc.EXPECT().Monthly(gomock.Any(), manager, "b1", "2026-03").Return(entities.MonthlyReport{}, entities.NotFoundf("no completed requests"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/monthly?branchId=b1&month=2026-03", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("export", func(t *testing.T) {
		r, uc := newReportRouter(t)
		uc.EXPECT().Export(gomock.Any(), manager, "b1", "2026-02").Return("procurement-b1-2026-02.xlsx", []byte("PK"), nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/monthly/export?branchId=b1&month=2026-02", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := w.Header().Get("Content-Disposition"); got != `attachment; filename="procurement-b1-2026-02.xlsx"` {
			t.Fatalf("unexpected Content-Disposition: %s", got)
		}
		if got := w.Header().Get("Content-Type"); got != xlsxContentType {
			t.Fatalf("unexpected Content-Type: %s", got)
		}
	})

	t.Run("export writer failure", func(t *testing.T) {
		r, uc := newReportRouter(t)
		uc.EXPECT().Export(gomock.Any(), manager, "b1", "2026-02").Return("", nil, entities.ExternalServiceError("report writer", errors.New("disk full")))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/monthly/export?branchId=b1&month=2026-02", nil))
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}
