package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel_procurement/internal/domain/entities"
	mock_interfaces "hotel_procurement/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestRegistryUseCase_Suppliers(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	uc := NewRegistryUseCase(e.catalog, e.suppliers, e.locker, nil, time.Second)

	_ = e.suppliers.Put(ctx, entities.Supplier{Name: "Acme", Category: "General", Branches: []string{"b1"}})
	_ = e.suppliers.Put(ctx, entities.Supplier{Name: "Red Sea Linen", Category: "Linen", Branches: []string{"b2"}})

	t.Run("list by branch", func(t *testing.T) {
		got, err := uc.ListSuppliers(ctx, purchaseMgr, "b1")
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(got) != 1 || got[0].Name != "Acme" {
			t.Fatalf("expected Acme only, got %+v", got)
		}
	})

	t.Run("list defaults to the actor's branches", func(t *testing.T) {
		got, _ := uc.ListSuppliers(ctx, otherHM, "")
		if len(got) != 1 || got[0].Name != "Red Sea Linen" {
			t.Fatalf("expected Red Sea Linen only, got %+v", got)
		}
		got, _ = uc.ListSuppliers(ctx, admin, "")
		if len(got) != 2 {
			t.Fatalf("expected admin to see every supplier, got %+v", got)
		}
	})

	t.Run("list for a foreign branch", func(t *testing.T) {
		if _, err := uc.ListSuppliers(ctx, purchaseMgr, "b2"); !errors.Is(err, entities.ErrAuthorization) {
			t.Fatalf("expected ErrAuthorization, got %v", err)
		}
	})

	t.Run("upsert normalizes and dedupes representatives", func(t *testing.T) {
		s, err := uc.UpsertSupplier(ctx, purchaseMgr, entities.Supplier{
			Name: "  Gulf Hygiene ",
			Representatives: []entities.SalesRepresentative{
				{Name: "Layla", Contact: "0501112222"},
				{Name: "layla", Contact: "0501112222"},
			},
		})
		if err != nil {
			t.Fatalf("upsert: %v", err)
		}
		if s.Name != "Gulf Hygiene" || s.Category != entities.DefaultSupplierCategory || len(s.Representatives) != 1 {
			t.Fatalf("unexpected supplier: %+v", s)
		}
		stored, _ := e.suppliers.Get(ctx, "gulf hygiene")
		if stored == nil {
			t.Fatalf("expected supplier to be stored")
		}
	})

	t.Run("upsert rejects", func(t *testing.T) {
		if _, err := uc.UpsertSupplier(ctx, requester, entities.Supplier{Name: "X"}); !errors.Is(err, entities.ErrAuthorization) {
			t.Fatalf("expected ErrAuthorization, got %v", err)
		}
		if _, err := uc.UpsertSupplier(ctx, admin, entities.Supplier{Name: " "}); !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected ErrValidation for empty name, got %v", err)
		}
		incomplete := entities.Supplier{Name: "X", Representatives: []entities.SalesRepresentative{{Name: "Nobody"}}}
		if _, err := uc.UpsertSupplier(ctx, admin, incomplete); !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected ErrValidation for incomplete rep, got %v", err)
		}
	})
}

func TestRegistryUseCase_SuggestSuppliers(t *testing.T) {
	ctx := context.Background()
	items := []entities.PurchaseRequestItem{item("Mop Heads", "10", "12.50")}

	t.Run("advisor receives branch suppliers", func(t *testing.T) {
		e := newEnv(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		advisor := mock_interfaces.NewMockISupplierAdvisor(ctrl)
		uc := NewRegistryUseCase(e.catalog, e.suppliers, e.locker, advisor, time.Second)
		_ = e.suppliers.Put(ctx, entities.Supplier{Name: "Acme", Branches: []string{"b1"}})

		want := []entities.SupplierSuggestion{{SupplierName: "Acme", Justification: "cleaning supplies"}}
		advisor.EXPECT().Suggest(gomock.Any(), items, gomock.Len(1)).Return(want, nil)

		got, err := uc.SuggestSuppliers(ctx, requester, "b1", items)
		if err != nil {
			t.Fatalf("suggest: %v", err)
		}
		if len(got) != 1 || got[0].SupplierName != "Acme" {
			t.Fatalf("unexpected suggestions: %+v", got)
		}
	})

	t.Run("no suppliers skips the advisor", func(t *testing.T) {
		e := newEnv(t)
		uc := NewRegistryUseCase(e.catalog, e.suppliers, e.locker, nil, time.Second)
		got, err := uc.SuggestSuppliers(ctx, requester, "b1", items)
		if err != nil || len(got) != 0 {
			t.Fatalf("expected empty suggestions, got %+v, %v", got, err)
		}
	})

	t.Run("advisor failure", func(t *testing.T) {
		e := newEnv(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		advisor := mock_interfaces.NewMockISupplierAdvisor(ctrl)
		uc := NewRegistryUseCase(e.catalog, e.suppliers, e.locker, advisor, time.Second)
		_ = e.suppliers.Put(ctx, entities.Supplier{Name: "Acme", Branches: []string{"b1"}})

		advisor.EXPECT().Suggest(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("rate limited"))
		if _, err := uc.SuggestSuppliers(ctx, requester, "b1", items); !errors.Is(err, entities.ErrExternalService) {
			t.Fatalf("expected ErrExternalService, got %v", err)
		}
	})

	t.Run("missing input", func(t *testing.T) {
		e := newEnv(t)
		uc := NewRegistryUseCase(e.catalog, e.suppliers, e.locker, nil, time.Second)
		if _, err := uc.SuggestSuppliers(ctx, requester, "", items); !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
		if _, err := uc.SuggestSuppliers(ctx, requester, "b1", nil); !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})
}
