package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel_procurement/internal/adapter/http/handlers/mocks"
	"hotel_procurement/internal/adapter/http/middlewares"
	"hotel_procurement/internal/domain/entities"
	"hotel_procurement/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

var purchaser = entities.User{ID: "u-pr", Name: "Pia", Role: entities.RolePurchasingRep, Branches: []string{"b1"}}

func newInvoiceRouter(t *testing.T) (*gin.Engine, *mocks.MockIInvoiceUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	uc := mocks.NewMockIInvoiceUseCase(ctrl)
	h := NewInvoiceHandler(uc)

	r := gin.New()
	r.Use(middlewares.SetActor(purchaser))
	r.POST("/requests/:id/invoice/preview", h.PreviewInvoice)
	r.POST("/requests/:id/invoice/confirm", h.ConfirmInvoice)
	return r, uc
}

func TestInvoiceHandler_PreviewInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("analysis failure", func(t *testing.T) {
		r, uc := newInvoiceRouter(t)
		uc.EXPECT().Preview(gomock.Any(), purchaser, "r1", gomock.Any()).
			Return(entities.InvoicePreview{}, entities.ExternalServiceError("invoice analyzer", errors.New("deadline exceeded")))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, multipartFile(t, "/requests/r1/invoice/preview", "inv.png", pngHeader))
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		var body map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "INVOICE_ANALYSIS_FAILED" {
			t.Fatalf("expected INVOICE_ANALYSIS_FAILED, got %v", body)
		}
	})

	t.Run("success hides document bytes", func(t *testing.T) {
		r, uc := newInvoiceRouter(t)
		uc.EXPECT().Preview(gomock.Any(), purchaser, "r1", gomock.Any()).Return(entities.InvoicePreview{
			ID:        "p1",
			RequestID: "r1",
			Document:  pngHeader,
			Analysis:  entities.InvoiceAnalysis{ExtractedData: entities.ExtractedInvoice{VendorName: "Acme"}},
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, multipartFile(t, "/requests/r1/invoice/preview", "inv.png", pngHeader))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["previewId"] != "p1" {
			t.Fatalf("expected previewId p1, got %v", body["previewId"])
		}
		if _, ok := body["document"]; ok {
			t.Fatalf("document bytes leaked into response")
		}
	})
}

func TestInvoiceHandler_ConfirmInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing preview id", func(t *testing.T) {
		r, _ := newInvoiceRouter(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPost, "/requests/r1/invoice/confirm", `{}`))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("stale preview", func(t *testing.T) {
		r, uc := newInvoiceRouter(t)
		uc.EXPECT().Confirm(gomock.Any(), purchaser, "r1", "p1").Return(usecase.RequestView{}, entities.Conflictf("request changed"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPost, "/requests/r1/invoice/confirm", `{"previewId":"p1"}`))
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newInvoiceRouter(t)
		uc.EXPECT().Confirm(gomock.Any(), purchaser, "r1", "p1").Return(view("r1", entities.StatusPendingAMApproval), nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPost, "/requests/r1/invoice/confirm", `{"previewId":"p1"}`))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
