package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel_procurement/internal/adapter/http/handlers/mocks"
	"hotel_procurement/internal/adapter/http/middlewares"
	"hotel_procurement/internal/domain/entities"
	"hotel_procurement/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

var (
	requester = entities.User{ID: "u-req", Name: "Rita", Role: entities.RoleRequester, Branches: []string{"b1"}}
	manager   = entities.User{ID: "u-hm", Name: "Hugo", Role: entities.RoleHotelManager, Branches: []string{"b1"}}
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func newRequestRouter(t *testing.T, u *entities.User) (*gin.Engine, *mocks.MockIPurchaseRequestUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	uc := mocks.NewMockIPurchaseRequestUseCase(ctrl)
	h := NewPurchaseRequestHandler(uc)

	r := gin.New()
	if u != nil {
		r.Use(middlewares.SetActor(*u))
	}
	r.POST("/requests", h.CreateRequest)
	r.GET("/requests/:id", h.GetRequest)
	r.POST("/requests/:id/approve", h.ApproveRequest)
	r.POST("/requests/:id/reject", h.RejectRequest)
	r.POST("/requests/:id/attachments", h.AddAttachment)
	r.DELETE("/requests/:id/attachments/:attachment_id", h.RemoveAttachment)
	return r, uc
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func view(id string, status entities.RequestStatus) usecase.RequestView {
	return usecase.RequestView{
		Request: &entities.PurchaseRequest{ID: id, Status: status, ReferenceNumber: 1001},
		Actions: usecase.ActionFlags{CanApprove: status == entities.StatusPendingHMApproval},
	}
}

func TestPurchaseRequestHandler_CreateRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	body := `{"branchId":" b1 ","department":"Housekeeping","submit":true,"items":[{"name":" Towels ","quantity":"10","unit":"pcs","estimatedCost":"4.5"}]}`

	t.Run("missing actor", func(t *testing.T) {
		r, _ := newRequestRouter(t, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPost, "/requests", body))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		r, _ := newRequestRouter(t, &requester)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPost, "/requests", "{"))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty items", func(t *testing.T) {
		r, _ := newRequestRouter(t, &requester)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPost, "/requests", `{"branchId":"b1","department":"Housekeeping","items":[]}`))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase validation error", func(t *testing.T) {
		r, uc := newRequestRouter(t, &requester)
		uc.EXPECT().Create(gomock.Any(), requester, gomock.Any(), true).Return(usecase.RequestView{}, entities.Validationf("quantity must be positive"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPost, "/requests", body))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newRequestRouter(t, &requester)
		uc.EXPECT().Create(gomock.Any(), requester, gomock.Any(), true).
			DoAndReturn(func(_ any, _ entities.User, in usecase.RequestInput, _ bool) (usecase.RequestView, error) {
				if in.BranchID != "b1" || in.Department != "Housekeeping" || len(in.Items) != 1 {
					t.Fatalf("unexpected input: %+v", in)
				}
				if in.Items[0].Name != "Towels" || !in.Items[0].EstimatedCost.Equal(decimal.RequireFromString("4.5")) {
					t.Fatalf("unexpected item: %+v", in.Items[0])
				}
				return view("r1", entities.StatusPendingHMApproval), nil
			})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPost, "/requests", body))
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if got["id"] != "r1" {
			t.Fatalf("expected id r1, got %v", got["id"])
		}
		if _, ok := got["actions"].(map[string]any); !ok {
			t.Fatalf("expected actions object, got %v", got["actions"])
		}
	})
}

func TestPurchaseRequestHandler_Transitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approve without body", func(t *testing.T) {
		r, uc := newRequestRouter(t, &manager)
		uc.EXPECT().Approve(gomock.Any(), manager, "r1", "").Return(view("r1", entities.StatusPendingPurchase), nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/requests/r1/approve", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("approve with comment", func(t *testing.T) {
		r, uc := newRequestRouter(t, &manager)
		uc.EXPECT().Approve(gomock.Any(), manager, "r1", "fine").Return(view("r1", entities.StatusPendingPurchase), nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPost, "/requests/r1/approve", `{"comment":"fine"}`))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("approve by wrong role", func(t *testing.T) {
		r, uc := newRequestRouter(t, &requester)
		uc.EXPECT().Approve(gomock.Any(), requester, "r1", "").Return(usecase.RequestView{}, entities.Authorizationf("requester cannot approve"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/requests/r1/approve", nil))
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("stale approve", func(t *testing.T) {
		r, uc := newRequestRouter(t, &manager)
		uc.EXPECT().Approve(gomock.Any(), manager, "r1", "").Return(usecase.RequestView{}, entities.Conflictf("request r1 was modified concurrently"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/requests/r1/approve", nil))
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "CONFLICT" {
			t.Fatalf("expected CONFLICT, got %v", body)
		}
	})

	t.Run("reject requires reason", func(t *testing.T) {
		r, _ := newRequestRouter(t, &manager)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPost, "/requests/r1/reject", `{}`))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("reject invalid transition", func(t *testing.T) {
		r, uc := newRequestRouter(t, &manager)
		uc.EXPECT().Reject(gomock.Any(), manager, "r1", "too pricey").Return(usecase.RequestView{}, entities.InvalidTransitionf("request is completed"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPost, "/requests/r1/reject", `{"reason":"too pricey"}`))
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("get not found", func(t *testing.T) {
		r, uc := newRequestRouter(t, &manager)
		uc.EXPECT().Get(gomock.Any(), manager, "nope").Return(usecase.RequestView{}, entities.NotFoundf("request nope"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/requests/nope", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func multipartFile(t *testing.T, path, name string, data []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if data != nil {
		fw, err := mw.CreateFormFile("file", name)
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		_, _ = fw.Write(data)
	}
	_ = mw.Close()
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestPurchaseRequestHandler_Attachments(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing file", func(t *testing.T) {
		r, _ := newRequestRouter(t, &requester)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, multipartFile(t, "/requests/r1/attachments", "", nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("sniffs content type", func(t *testing.T) {
		r, uc := newRequestRouter(t, &requester)
		uc.EXPECT().AddAttachment(gomock.Any(), requester, "r1", gomock.Any()).
			DoAndReturn(func(_ any, _ entities.User, _ string, f usecase.FileUpload) (usecase.RequestView, error) {
				if f.FileName != "quote.bin" || f.MimeType != "image/png" || len(f.Data) != len(pngHeader) {
					t.Fatalf("unexpected upload: name=%s mime=%s size=%d", f.FileName, f.MimeType, len(f.Data))
				}
				return view("r1", entities.StatusDraft), nil
			})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, multipartFile(t, "/requests/r1/attachments", "../../quote.bin", pngHeader))
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("remove", func(t *testing.T) {
		r, uc := newRequestRouter(t, &requester)
		uc.EXPECT().RemoveAttachment(gomock.Any(), requester, "r1", "a1").Return(view("r1", entities.StatusDraft), nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/requests/r1/attachments/a1", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMapDomainError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", entities.Validationf("bad"), http.StatusBadRequest},
		{"authorization", entities.Authorizationf("no"), http.StatusForbidden},
		{"transition", entities.InvalidTransitionf("no"), http.StatusConflict},
		{"conflict", entities.Conflictf("stale"), http.StatusConflict},
		{"not found", entities.NotFoundf("x"), http.StatusNotFound},
		{"external", entities.ExternalServiceError("ai", entities.Validationf("malformed")), http.StatusBadGateway},
		{"unknown", bytes.ErrTooLarge, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := mapDomainError(tc.err).HTTPStatus; got != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, got)
			}
		})
	}
}
