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

func newRegistryRouter(t *testing.T, u entities.User) (*gin.Engine, *mocks.MockIRegistryUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	uc := mocks.NewMockIRegistryUseCase(ctrl)
	h := NewRegistryHandler(uc)

	r := gin.New()
	r.Use(middlewares.SetActor(u))
	r.GET("/catalog", h.ListCatalog)
	r.GET("/suppliers", h.ListSuppliers)
	r.PUT("/suppliers", h.UpsertSupplier)
	r.POST("/suppliers/suggestions", h.SuggestSuppliers)
	return r, uc
}

func TestRegistryHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("catalog", func(t *testing.T) {
		r, uc := newRegistryRouter(t, requester)
		uc.EXPECT().ListCatalog(gomock.Any()).Return([]entities.CatalogItem{{Name: "Towels"}}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/catalog", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("suppliers of foreign branch", func(t *testing.T) {
		r, uc := newRegistryRouter(t, purchaser)
		uc.EXPECT().ListSuppliers(gomock.Any(), purchaser, "b9").Return(nil, entities.Authorizationf("branch b9"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/suppliers?branchId=b9", nil))
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("upsert rejects incomplete representative", func(t *testing.T) {
		r, _ := newRegistryRouter(t, purchaser)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPut, "/suppliers", `{"name":"Acme","representatives":[{"name":"Omar"}]}`))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("upsert", func(t *testing.T) {
		r, uc := newRegistryRouter(t, purchaser)
		uc.EXPECT().UpsertSupplier(gomock.Any(), purchaser, gomock.Any()).
			DoAndReturn(func(_ any, _ entities.User, s entities.Supplier) (entities.Supplier, error) {
				if s.Name != "Acme" || len(s.Representatives) != 1 || s.Representatives[0].Contact != "555" {
					t.Fatalf("unexpected supplier: %+v", s)
				}
				return s, nil
			})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPut, "/suppliers", `{"name":"Acme","branches":["b1"],"representatives":[{"name":"Omar","contact":" 555 "}]}`))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("suggestions advisor down", func(t *testing.T) {
		r, uc := newRegistryRouter(t, purchaser)
		uc.EXPECT().SuggestSuppliers(gomock.Any(), purchaser, "b1", gomock.Len(1)).
			Return(nil, entities.ExternalServiceError("supplier advisor", errors.New("timeout")))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPost, "/suppliers/suggestions", `{"branchId":"b1","items":[{"name":"Towels","quantity":"2"}]}`))
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}
