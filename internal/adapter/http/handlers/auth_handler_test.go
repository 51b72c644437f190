package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel_procurement/internal/adapter/http/handlers/mocks"
	"hotel_procurement/internal/adapter/http/middlewares"
	"hotel_procurement/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAuthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	setup := func(t *testing.T) (*gin.Engine, *mocks.MockIAuthUseCase) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)
		r := gin.New()
		r.POST("/auth/login", h.Login)
		r.GET("/auth/me", middlewares.SetActor(manager), h.Me)
		return r, uc
	}

	t.Run("invalid email", func(t *testing.T) {
		r, _ := setup(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPost, "/auth/login", `{"email":"nope","password":"x"}`))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("wrong credentials", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().Login(gomock.Any(), "hm@hotel.test", "bad").Return("", manager, usecase.ErrInvalidCredentials)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPost, "/auth/login", `{"email":"hm@hotel.test","password":"bad"}`))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().Login(gomock.Any(), "hm@hotel.test", "good").Return("tok", manager, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPost, "/auth/login", `{"email":"hm@hotel.test","password":"good"}`))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Token string `json:"token"`
			User  struct {
				ID   string `json:"id"`
				Role string `json:"role"`
			} `json:"user"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Token != "tok" || body.User.ID != manager.ID || body.User.Role != "hotel_manager" {
			t.Fatalf("unexpected login response: %+v", body)
		}
	})

	t.Run("me", func(t *testing.T) {
		r, _ := setup(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/me", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
