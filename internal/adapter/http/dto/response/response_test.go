package response

import (
	"encoding/json"
	"strings"
	"testing"

	"hotel_procurement/internal/domain/entities"
	"hotel_procurement/internal/usecase"
)

func TestFromUser(t *testing.T) {
	got := FromUser(entities.User{ID: "u1", Role: entities.RoleAdmin, PasswordHash: "hash"})
	if got.Branches == nil || len(got.Branches) != 0 {
		t.Fatalf("expected empty branch list, got %v", got.Branches)
	}
	raw, _ := json.Marshal(got)
	if strings.Contains(string(raw), "hash") {
		t.Fatalf("password hash leaked: %s", raw)
	}
}

func TestFromInvoicePreview(t *testing.T) {
	raw, err := json.Marshal(FromInvoicePreview(entities.InvoicePreview{ID: "p1", Document: []byte("secret-bytes")}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(raw), "document") {
		t.Fatalf("document leaked: %s", raw)
	}
}

func TestFromRequestView(t *testing.T) {
	v := usecase.RequestView{
		Request: &entities.PurchaseRequest{ID: "r1", Status: entities.StatusDraft},
		Actions: usecase.ActionFlags{CanEdit: true},
	}
	raw, err := json.Marshal(FromRequestView(v))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got map[string]any
	_ = json.Unmarshal(raw, &got)
	if got["id"] != "r1" || got["status"] != "draft" {
		t.Fatalf("request fields not inlined: %s", raw)
	}
	actions, ok := got["actions"].(map[string]any)
	if !ok || actions["canEdit"] != true {
		t.Fatalf("unexpected actions: %v", got["actions"])
	}
}
