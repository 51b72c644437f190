// Package memory keeps every aggregate in process memory behind a single
// mutex. It backs STORAGE_BACKEND=memory and the use case tests, and follows
// the same version and reference-number rules as the DynamoDB repositories.
package memory

import (
	"context"
	"sort"
	"sync"

	"hotel_procurement/internal/domain/entities"
	"hotel_procurement/internal/usecase/interfaces"
)

type Store struct {
	mu sync.Mutex

	requests  map[string]*entities.PurchaseRequest
	lastRef   int64
	catalog   map[string]entities.CatalogItem
	suppliers map[string]entities.Supplier
	users     map[string]entities.User
	roles     map[entities.Role]entities.RoleDefinition
	branches  map[string]entities.Branch
}

// NewStore creates an empty store; the first reference number is referenceStart+1.
func NewStore(referenceStart int64) *Store {
	return &Store{
		requests:  map[string]*entities.PurchaseRequest{},
		lastRef:   referenceStart,
		catalog:   map[string]entities.CatalogItem{},
		suppliers: map[string]entities.Supplier{},
		users:     map[string]entities.User{},
		roles:     map[entities.Role]entities.RoleDefinition{},
		branches:  map[string]entities.Branch{},
	}
}

// PurchaseRequestRepository

type PurchaseRequestRepository struct{ s *Store }

var _ interfaces.IPurchaseRequestRepository = (*PurchaseRequestRepository)(nil)

func NewPurchaseRequestRepository(s *Store) *PurchaseRequestRepository {
	return &PurchaseRequestRepository{s: s}
}

func (r *PurchaseRequestRepository) Create(_ context.Context, pr *entities.PurchaseRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.requests[pr.ID]; ok {
		return entities.Conflictf("request %s already exists", pr.ID)
	}
	r.s.write(pr)
	return nil
}

func (r *PurchaseRequestRepository) Update(_ context.Context, pr *entities.PurchaseRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.updateRequest(pr)
}

func (r *PurchaseRequestRepository) GetByID(_ context.Context, id string) (*entities.PurchaseRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	pr, ok := r.s.requests[id]
	if !ok {
		return nil, entities.NotFoundf("request %s", id)
	}
	return pr.Clone(), nil
}

func (r *PurchaseRequestRepository) List(_ context.Context) ([]*entities.PurchaseRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entities.PurchaseRequest, 0, len(r.s.requests))
	for _, pr := range r.s.requests {
		out = append(out, pr.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *PurchaseRequestRepository) InvoiceNumbersByBranch(_ context.Context, branchID string) ([]string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []string
	for _, pr := range r.s.requests {
		if pr.Branch.ID == branchID && pr.Invoice != nil && pr.Invoice.InvoiceNumber != "" {
			out = append(out, pr.Invoice.InvoiceNumber)
		}
	}
	sort.Strings(out)
	return out, nil
}

// write stores a copy of pr, assigning the reference number and bumping the version. Caller holds mu.
func (s *Store) write(pr *entities.PurchaseRequest) {
	if pr.NeedsReferenceNumber() {
		s.lastRef++
		pr.ReferenceNumber = s.lastRef
	}
	pr.Version++
	s.requests[pr.ID] = pr.Clone()
}

func (s *Store) updateRequest(pr *entities.PurchaseRequest) error {
	current, ok := s.requests[pr.ID]
	if !ok {
		return entities.NotFoundf("request %s", pr.ID)
	}
	if current.Version != pr.Version {
		return entities.Conflictf("request %s was modified concurrently (have version %d, stored %d)", pr.ID, pr.Version, current.Version)
	}
	s.write(pr)
	return nil
}

// CatalogRepository

type CatalogRepository struct{ s *Store }

var _ interfaces.ICatalogRepository = (*CatalogRepository)(nil)

func NewCatalogRepository(s *Store) *CatalogRepository {
	return &CatalogRepository{s: s}
}

func (r *CatalogRepository) List(_ context.Context) ([]entities.CatalogItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entities.CatalogItem, 0, len(r.s.catalog))
	for _, it := range r.s.catalog {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out, nil
}

func (r *CatalogRepository) GetByKeys(_ context.Context, keys []string) ([]entities.CatalogItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entities.CatalogItem, 0, len(keys))
	for _, k := range keys {
		if it, ok := r.s.catalog[entities.NormalizeKey(k)]; ok {
			out = append(out, it)
		}
	}
	return out, nil
}

// Put seeds a catalog entry outside of reconciliation.
func (r *CatalogRepository) Put(_ context.Context, it entities.CatalogItem) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.catalog[it.Key()] = it
}

// SupplierRepository

type SupplierRepository struct{ s *Store }

var _ interfaces.ISupplierRepository = (*SupplierRepository)(nil)

func NewSupplierRepository(s *Store) *SupplierRepository {
	return &SupplierRepository{s: s}
}

func (r *SupplierRepository) List(_ context.Context) ([]entities.Supplier, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entities.Supplier, 0, len(r.s.suppliers))
	for _, s := range r.s.suppliers {
		out = append(out, s.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out, nil
}

func (r *SupplierRepository) Get(_ context.Context, name string) (*entities.Supplier, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	s, ok := r.s.suppliers[entities.NormalizeKey(name)]
	if !ok {
		return nil, nil
	}
	c := s.Clone()
	return &c, nil
}

func (r *SupplierRepository) Put(_ context.Context, s entities.Supplier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.suppliers[s.Key()] = s.Clone()
	return nil
}

// ReconciliationRepository

type ReconciliationRepository struct{ s *Store }

var _ interfaces.IReconciliationRepository = (*ReconciliationRepository)(nil)

func NewReconciliationRepository(s *Store) *ReconciliationRepository {
	return &ReconciliationRepository{s: s}
}

// Commit applies catalog, supplier and request under one lock. The version
// check runs first so a conflict leaves the registries untouched.
func (r *ReconciliationRepository) Commit(_ context.Context, c interfaces.ReconciliationCommit) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	current, ok := r.s.requests[c.Request.ID]
	if !ok {
		return entities.NotFoundf("request %s", c.Request.ID)
	}
	if current.Version != c.Request.Version {
		return entities.Conflictf("request %s was modified concurrently", c.Request.ID)
	}
	for _, it := range c.Catalog {
		r.s.catalog[it.Key()] = it
	}
	r.s.suppliers[c.Supplier.Key()] = c.Supplier.Clone()
	r.s.write(c.Request)
	return nil
}

// UserRepository

type UserRepository struct{ s *Store }

var _ interfaces.IUserRepository = (*UserRepository)(nil)

func NewUserRepository(s *Store) *UserRepository {
	return &UserRepository{s: s}
}

func (r *UserRepository) Create(_ context.Context, u entities.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[u.ID]; ok {
		return entities.Conflictf("user %s already exists", u.ID)
	}
	r.s.users[u.ID] = cloneUser(u)
	return nil
}

func (r *UserRepository) Update(_ context.Context, u entities.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[u.ID]; !ok {
		return entities.NotFoundf("user %s", u.ID)
	}
	r.s.users[u.ID] = cloneUser(u)
	return nil
}

func (r *UserRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return entities.NotFoundf("user %s", id)
	}
	delete(r.s.users, id)
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (entities.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return entities.User{}, entities.NotFoundf("user %s", id)
	}
	return cloneUser(u), nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (entities.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := entities.NormalizeKey(email)
	for _, u := range r.s.users {
		if entities.NormalizeKey(u.Email) == key {
			return cloneUser(u), nil
		}
	}
	return entities.User{}, entities.NotFoundf("user with email %s", email)
}

func (r *UserRepository) List(_ context.Context) ([]entities.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entities.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		out = append(out, cloneUser(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func cloneUser(u entities.User) entities.User {
	u.Branches = append([]string{}, u.Branches...)
	return u
}

// RoleRepository

type RoleRepository struct{ s *Store }

var _ interfaces.IRoleRepository = (*RoleRepository)(nil)

func NewRoleRepository(s *Store) *RoleRepository {
	return &RoleRepository{s: s}
}

func (r *RoleRepository) Put(_ context.Context, def entities.RoleDefinition) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	def.Permissions = append([]entities.RequestStatus{}, def.Permissions...)
	r.s.roles[def.Name] = def
	return nil
}

func (r *RoleRepository) Delete(_ context.Context, name entities.Role) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.roles[name]; !ok {
		return entities.NotFoundf("role %s", name)
	}
	delete(r.s.roles, name)
	return nil
}

func (r *RoleRepository) Get(_ context.Context, name entities.Role) (entities.RoleDefinition, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	def, ok := r.s.roles[name]
	if !ok {
		return entities.RoleDefinition{}, entities.NotFoundf("role %s", name)
	}
	return def, nil
}

func (r *RoleRepository) List(_ context.Context) ([]entities.RoleDefinition, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entities.RoleDefinition, 0, len(r.s.roles))
	for _, def := range r.s.roles {
		out = append(out, def)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// BranchRepository

type BranchRepository struct{ s *Store }

var _ interfaces.IBranchRepository = (*BranchRepository)(nil)

func NewBranchRepository(s *Store) *BranchRepository {
	return &BranchRepository{s: s}
}

func (r *BranchRepository) Put(_ context.Context, b entities.Branch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.branches[b.ID] = b
	return nil
}

func (r *BranchRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.branches[id]; !ok {
		return entities.NotFoundf("branch %s", id)
	}
	delete(r.s.branches, id)
	return nil
}

func (r *BranchRepository) Get(_ context.Context, id string) (entities.Branch, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.branches[id]
	if !ok {
		return entities.Branch{}, entities.NotFoundf("branch %s", id)
	}
	return b, nil
}

func (r *BranchRepository) List(_ context.Context) ([]entities.Branch, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entities.Branch, 0, len(r.s.branches))
	for _, b := range r.s.branches {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
