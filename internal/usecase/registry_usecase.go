package usecase

import (
	"context"
	"strings"
	"time"

	"hotel_procurement/internal/domain/entities"
	"hotel_procurement/internal/infrastructure/logging"
	"hotel_procurement/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

// IRegistryUseCase serves the catalog and supplier registries outside of
// reconciliation: item picker, supplier lists, manual supplier edits and
// supplier suggestions.
type IRegistryUseCase interface {
	ListCatalog(ctx context.Context) ([]entities.CatalogItem, error)
	ListSuppliers(ctx context.Context, actor entities.User, branchID string) ([]entities.Supplier, error)
	UpsertSupplier(ctx context.Context, actor entities.User, s entities.Supplier) (entities.Supplier, error)
	SuggestSuppliers(ctx context.Context, actor entities.User, branchID string, items []entities.PurchaseRequestItem) ([]entities.SupplierSuggestion, error)
}

type RegistryUseCase struct {
	catalog   interfaces.ICatalogRepository
	suppliers interfaces.ISupplierRepository
	locker    interfaces.IKeyLocker
	advisor   interfaces.ISupplierAdvisor
	timeout   time.Duration
}

var _ IRegistryUseCase = (*RegistryUseCase)(nil)

func NewRegistryUseCase(catalog interfaces.ICatalogRepository, suppliers interfaces.ISupplierRepository, locker interfaces.IKeyLocker, advisor interfaces.ISupplierAdvisor, timeout time.Duration) *RegistryUseCase {
	return &RegistryUseCase{catalog: catalog, suppliers: suppliers, locker: locker, advisor: advisor, timeout: timeout}
}

func (u *RegistryUseCase) ListCatalog(ctx context.Context) ([]entities.CatalogItem, error) {
	return u.catalog.List(ctx)
}

// ListSuppliers returns suppliers serving branchID, or every branch the actor
// belongs to when branchID is empty. Admins and auditors see the whole list.
func (u *RegistryUseCase) ListSuppliers(ctx context.Context, actor entities.User, branchID string) ([]entities.Supplier, error) {
	branchID = strings.TrimSpace(branchID)
	if branchID != "" && !actor.Role.SeesAllBranches() && !actor.HasBranch(branchID) {
		return nil, entities.Authorizationf("user %s is not assigned to branch %s", actor.ID, branchID)
	}
	all, err := u.suppliers.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Supplier, 0, len(all))
	for _, s := range all {
		switch {
		case branchID != "":
			if s.ServesBranch(branchID) {
				out = append(out, s)
			}
		case actor.Role.SeesAllBranches():
			out = append(out, s)
		default:
			for _, b := range actor.Branches {
				if s.ServesBranch(b) {
					out = append(out, s)
					break
				}
			}
		}
	}
	return out, nil
}

// UpsertSupplier is the manual edit path. It takes the same per-key lock as
// reconciliation so the two never interleave on one supplier.
func (u *RegistryUseCase) UpsertSupplier(ctx context.Context, actor entities.User, s entities.Supplier) (entities.Supplier, error) {
	if !actor.Role.IsAdmin() && actor.Role != entities.RolePurchasingManager {
		return entities.Supplier{}, entities.Authorizationf("role %s cannot edit suppliers", actor.Role)
	}
	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" {
		return entities.Supplier{}, entities.Validationf("supplier name is required")
	}
	if strings.TrimSpace(s.Category) == "" {
		s.Category = entities.DefaultSupplierCategory
	}
	reps := make([]entities.SalesRepresentative, 0, len(s.Representatives))
	for _, rep := range s.Representatives {
		if !rep.Complete() {
			return entities.Supplier{}, entities.Validationf("sales representatives need both a name and a contact")
		}
		check := entities.Supplier{Representatives: reps}
		if !check.HasRepresentative(rep) {
			reps = append(reps, rep)
		}
	}
	s.Representatives = reps
	if s.Branches == nil {
		s.Branches = []string{}
	}

	release, err := u.locker.Lock(ctx, []string{"supplier:" + s.Key()}, registryLockTTL)
	if err != nil {
		return entities.Supplier{}, err
	}
	defer release()

	if err := u.suppliers.Put(ctx, s); err != nil {
		return entities.Supplier{}, err
	}
	logging.GetLogger().WithFields(logrus.Fields{
		"supplier": s.Name,
		"actor_id": actor.ID,
	}).Info("[registry][usecase] supplier saved")
	return s, nil
}

func (u *RegistryUseCase) SuggestSuppliers(ctx context.Context, actor entities.User, branchID string, items []entities.PurchaseRequestItem) ([]entities.SupplierSuggestion, error) {
	if strings.TrimSpace(branchID) == "" {
		return nil, entities.Validationf("branch is required")
	}
	if len(items) == 0 {
		return nil, entities.Validationf("at least one item is required")
	}
	suppliers, err := u.ListSuppliers(ctx, actor, branchID)
	if err != nil {
		return nil, err
	}
	if len(suppliers) == 0 {
		return []entities.SupplierSuggestion{}, nil
	}
	return callExternal(ctx, u.timeout, "supplier-advisor", func(ctx context.Context) ([]entities.SupplierSuggestion, error) {
		return u.advisor.Suggest(ctx, items, suppliers)
	})
}
