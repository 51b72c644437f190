package handlers

import (
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

var admin = entities.User{ID: "u-admin", Name: "Ada", Role: entities.RoleAdmin}

func newAdminRouter(t *testing.T, u entities.User) (*gin.Engine, *mocks.MockIAdminUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	uc := mocks.NewMockIAdminUseCase(ctrl)
	h := NewAdminHandler(uc)

	r := gin.New()
	r.Use(middlewares.SetActor(u))
	r.GET("/admin/users", h.ListUsers)
	r.POST("/admin/users", h.CreateUser)
	r.DELETE("/admin/users/:id", h.DeleteUser)
	r.PUT("/admin/roles/:name", h.PutRole)
	r.DELETE("/admin/roles/:name", h.DeleteRole)
	r.POST("/admin/branches", h.PutBranch)
	r.PUT("/admin/branches/:id", h.PutBranch)
	return r, uc
}

func TestAdminHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("non admin", func(t *testing.T) {
		r, uc := newAdminRouter(t, manager)
		uc.EXPECT().ListUsers(gomock.Any(), manager).Return(nil, entities.Authorizationf("admin only"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/users", nil))
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("create user", func(t *testing.T) {
		r, uc := newAdminRouter(t, admin)
		uc.EXPECT().CreateUser(gomock.Any(), admin, usecase.UserInput{
			Name:     "Quinn",
			Email:    "qs@hotel.test",
			Password: "secret1",
			Role:     entities.RoleQualitySupervisor,
			Branches: []string{"b1"},
		}).Return(entities.User{ID: "u9", Name: "Quinn", Role: entities.RoleQualitySupervisor}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPost, "/admin/users", `{"name":" Quinn ","email":"qs@hotel.test","password":"secret1","role":"quality_supervisor","branches":["b1"]}`))
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		r, uc := newAdminRouter(t, admin)
		uc.EXPECT().CreateUser(gomock.Any(), admin, gomock.Any()).Return(entities.User{}, entities.Conflictf("email taken"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPost, "/admin/users", `{"name":"Q","email":"qs@hotel.test","password":"secret1","role":"requester"}`))
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("delete user", func(t *testing.T) {
		r, uc := newAdminRouter(t, admin)
		uc.EXPECT().DeleteUser(gomock.Any(), admin, "u9").Return(nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/admin/users/u9", nil))
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("role in use", func(t *testing.T) {
		r, uc := newAdminRouter(t, admin)
		uc.EXPECT().DeleteRole(gomock.Any(), admin, entities.RoleAuditor).Return(entities.Conflictf("role auditor is assigned"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/admin/roles/auditor", nil))
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("put role", func(t *testing.T) {
		r, uc := newAdminRouter(t, admin)
		uc.EXPECT().PutRole(gomock.Any(), admin, entities.RoleDefinition{
			Name:        entities.RoleAuditor,
			Permissions: []entities.RequestStatus{entities.StatusCompleted},
		}).Return(entities.RoleDefinition{Name: entities.RoleAuditor}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPut, "/admin/roles/auditor", `{"permissions":[" completed "]}`))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("put branch", func(t *testing.T) {
		r, uc := newAdminRouter(t, admin)
		uc.EXPECT().PutBranch(gomock.Any(), admin, entities.Branch{Name: "Seaside", City: "Nice"}).Return(entities.Branch{ID: "b7", Name: "Seaside", City: "Nice"}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPost, "/admin/branches", `{"name":"Seaside","city":"Nice"}`))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("update branch takes id from path", func(t *testing.T) {
		r, uc := newAdminRouter(t, admin)
		uc.EXPECT().PutBranch(gomock.Any(), admin, entities.Branch{ID: "b7", Name: "Seaside", City: "Nice"}).Return(entities.Branch{ID: "b7", Name: "Seaside", City: "Nice"}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPut, "/admin/branches/b7", `{"id":"other","name":"Seaside","city":"Nice"}`))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
