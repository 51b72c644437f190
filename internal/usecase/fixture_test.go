package usecase

import (
	"context"
	"testing"
	"time"

	"hotel_procurement/internal/adapter/persistence/memory"
	"hotel_procurement/internal/domain/entities"
	"hotel_procurement/internal/domain/workflow"
	"hotel_procurement/internal/infrastructure/cache"
	"hotel_procurement/internal/infrastructure/locking"
	"hotel_procurement/internal/infrastructure/messaging"
	"hotel_procurement/internal/infrastructure/storage"

	"github.com/shopspring/decimal"
)

// env wires the in-memory adapters behind the use cases.
type env struct {
	store     *memory.Store
	requests  *memory.PurchaseRequestRepository
	catalog   *memory.CatalogRepository
	suppliers *memory.SupplierRepository
	commits   *memory.ReconciliationRepository
	users     *memory.UserRepository
	roles     *memory.RoleRepository
	branches  *memory.BranchRepository
	blobs     *storage.MemoryBlobStore
	previews  *cache.MemoryPreviewStore
	locker    *locking.LocalLocker
	engine    *workflow.Engine
}

func newEnv(t *testing.T) *env {
	t.Helper()
	store := memory.NewStore(1000)
	e := &env{
		store:     store,
		requests:  memory.NewPurchaseRequestRepository(store),
		catalog:   memory.NewCatalogRepository(store),
		suppliers: memory.NewSupplierRepository(store),
		commits:   memory.NewReconciliationRepository(store),
		users:     memory.NewUserRepository(store),
		roles:     memory.NewRoleRepository(store),
		branches:  memory.NewBranchRepository(store),
		blobs:     storage.NewMemoryBlobStore(),
		previews:  cache.NewMemoryPreviewStore(),
		locker:    locking.NewLocalLocker(),
		engine:    workflow.NewEngine(workflow.DefaultEscalationThreshold),
	}
	ctx := context.Background()
	_ = e.branches.Put(ctx, entities.Branch{ID: "b1", Name: "Riyadh Downtown", City: "Riyadh"})
	_ = e.branches.Put(ctx, entities.Branch{ID: "b2", Name: "Jeddah Corniche", City: "Jeddah"})
	return e
}

func (e *env) requestUseCase() *PurchaseRequestUseCase {
	return NewPurchaseRequestUseCase(e.requests, e.branches, e.blobs, messaging.LogPublisher{}, e.engine)
}

func user(id string, role entities.Role, branches ...string) entities.User {
	return entities.User{ID: id, Name: id, Email: id + "@hotel.test", Role: role, Branches: branches}
}

var (
	requester   = user("sara", entities.RoleRequester, "b1")
	hotelMgr    = user("hm", entities.RoleHotelManager, "b1")
	otherHM     = user("hm2", entities.RoleHotelManager, "b2")
	purchaser   = user("rep", entities.RolePurchasingRep, "b1")
	purchaseMgr = user("pm", entities.RolePurchasingManager, "b1")
	accountant  = user("acc", entities.RoleAccountant, "b1")
	acctMgr     = user("am", entities.RoleAccountingManager, "b1")
	bankOfficer = user("bank", entities.RoleBankRoundsOfficer, "b1")
	admin       = user("root", entities.RoleAdmin)
)

func item(name string, qty, cost string) entities.PurchaseRequestItem {
	return entities.PurchaseRequestItem{
		Name:          name,
		Quantity:      decimal.RequireFromString(qty),
		Unit:          "piece",
		EstimatedCost: decimal.RequireFromString(cost),
		Category:      "Housekeeping",
		Justification: "monthly restock",
	}
}

func housekeepingInput(items ...entities.PurchaseRequestItem) RequestInput {
	if len(items) == 0 {
		items = []entities.PurchaseRequestItem{item("Mop Heads", "10", "12.50")}
	}
	return RequestInput{BranchID: "b1", Department: entities.DepartmentHousekeeping, Items: items}
}

// toPendingInvoice drives a standard-path request below the threshold to PENDING_INVOICE.
func toPendingInvoice(t *testing.T, uc *PurchaseRequestUseCase) *entities.PurchaseRequest {
	t.Helper()
	ctx := context.Background()
	v, err := uc.Create(ctx, requester, housekeepingInput(), true)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := uc.Approve(ctx, hotelMgr, v.Request.ID, "ok"); err != nil {
		t.Fatalf("approve: %v", err)
	}
	v, err = uc.MarkAsPurchased(ctx, purchaser, v.Request.ID, "")
	if err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if v.Request.Status != entities.StatusPendingInvoice {
		t.Fatalf("expected PENDING_INVOICE, got %s", v.Request.Status)
	}
	return v.Request
}

func fixedClock(ts time.Time) func() time.Time {
	return func() time.Time { return ts }
}
