package usecase

import (
	"context"
	"errors"
	"strings"

	"hotel_procurement/internal/domain/entities"
	"hotel_procurement/internal/infrastructure/logging"
	"hotel_procurement/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const minPasswordLength = 6

// UserInput is the admin form for a user. An empty Password on update keeps
// the current one.
type UserInput struct {
	Name     string
	Email    string
	Password string
	Role     entities.Role
	Branches []string
}

// IAdminUseCase manages users, roles and branches.
type IAdminUseCase interface {
	ListUsers(ctx context.Context, actor entities.User) ([]entities.User, error)
	CreateUser(ctx context.Context, actor entities.User, in UserInput) (entities.User, error)
	UpdateUser(ctx context.Context, actor entities.User, id string, in UserInput) (entities.User, error)
	DeleteUser(ctx context.Context, actor entities.User, id string) error

	ListRoles(ctx context.Context) ([]entities.RoleDefinition, error)
	PutRole(ctx context.Context, actor entities.User, def entities.RoleDefinition) (entities.RoleDefinition, error)
	DeleteRole(ctx context.Context, actor entities.User, name entities.Role) error

	ListBranches(ctx context.Context) ([]entities.Branch, error)
	PutBranch(ctx context.Context, actor entities.User, b entities.Branch) (entities.Branch, error)
	DeleteBranch(ctx context.Context, actor entities.User, id string) error

	Bootstrap(ctx context.Context, adminEmail, adminPassword string) error
}

type AdminUseCase struct {
	users    interfaces.IUserRepository
	roles    interfaces.IRoleRepository
	branches interfaces.IBranchRepository
	hasher   interfaces.IPasswordHasher
}

var _ IAdminUseCase = (*AdminUseCase)(nil)

func NewAdminUseCase(users interfaces.IUserRepository, roles interfaces.IRoleRepository, branches interfaces.IBranchRepository, hasher interfaces.IPasswordHasher) *AdminUseCase {
	return &AdminUseCase{users: users, roles: roles, branches: branches, hasher: hasher}
}

func (u *AdminUseCase) ListUsers(ctx context.Context, actor entities.User) ([]entities.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	return u.users.List(ctx)
}

func (u *AdminUseCase) CreateUser(ctx context.Context, actor entities.User, in UserInput) (entities.User, error) {
	if err := requireAdmin(actor); err != nil {
		return entities.User{}, err
	}
	if len(in.Password) < minPasswordLength {
		return entities.User{}, entities.Validationf("password must have at least %d characters", minPasswordLength)
	}
	user := entities.User{ID: uuid.NewString()}
	if err := u.applyUserInput(ctx, &user, in); err != nil {
		return entities.User{}, err
	}
	if err := u.ensureEmailFree(ctx, user.Email, ""); err != nil {
		return entities.User{}, err
	}
	if err := u.users.Create(ctx, user); err != nil {
		return entities.User{}, err
	}
	logging.GetLogger().WithFields(logrus.Fields{"user_id": user.ID, "actor_id": actor.ID, "role": user.Role}).Info("[admin][usecase] user created")
	return user, nil
}

func (u *AdminUseCase) UpdateUser(ctx context.Context, actor entities.User, id string, in UserInput) (entities.User, error) {
	if err := requireAdmin(actor); err != nil {
		return entities.User{}, err
	}
	user, err := u.users.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return entities.User{}, err
	}
	if in.Password != "" && len(in.Password) < minPasswordLength {
		return entities.User{}, entities.Validationf("password must have at least %d characters", minPasswordLength)
	}
	if err := u.applyUserInput(ctx, &user, in); err != nil {
		return entities.User{}, err
	}
	if err := u.ensureEmailFree(ctx, user.Email, user.ID); err != nil {
		return entities.User{}, err
	}
	if err := u.users.Update(ctx, user); err != nil {
		return entities.User{}, err
	}
	return user, nil
}

func (u *AdminUseCase) DeleteUser(ctx context.Context, actor entities.User, id string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	id = strings.TrimSpace(id)
	if id == actor.ID {
		return entities.Validationf("you cannot delete your own account")
	}
	return u.users.Delete(ctx, id)
}

func (u *AdminUseCase) ListRoles(ctx context.Context) ([]entities.RoleDefinition, error) {
	return u.roles.List(ctx)
}

func (u *AdminUseCase) PutRole(ctx context.Context, actor entities.User, def entities.RoleDefinition) (entities.RoleDefinition, error) {
	if err := requireAdmin(actor); err != nil {
		return entities.RoleDefinition{}, err
	}
	def.Name = entities.Role(strings.TrimSpace(string(def.Name)))
	if def.Name == "" {
		return entities.RoleDefinition{}, entities.Validationf("role name is required")
	}
	seen := map[entities.RequestStatus]bool{}
	perms := make([]entities.RequestStatus, 0, len(def.Permissions))
	for _, s := range def.Permissions {
		if !s.Valid() {
			return entities.RoleDefinition{}, entities.Validationf("unknown status %q", s)
		}
		if !seen[s] {
			seen[s] = true
			perms = append(perms, s)
		}
	}
	def.Permissions = perms
	if err := u.roles.Put(ctx, def); err != nil {
		return entities.RoleDefinition{}, err
	}
	return def, nil
}

// DeleteRole refuses the reserved admin role and any role still assigned.
func (u *AdminUseCase) DeleteRole(ctx context.Context, actor entities.User, name entities.Role) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if name.IsAdmin() {
		return entities.Validationf("the admin role cannot be deleted")
	}
	users, err := u.users.List(ctx)
	if err != nil {
		return err
	}
	for _, usr := range users {
		if usr.Role == name {
			return entities.Conflictf("role %s is assigned to user %s", name, usr.Email)
		}
	}
	return u.roles.Delete(ctx, name)
}

func (u *AdminUseCase) ListBranches(ctx context.Context) ([]entities.Branch, error) {
	return u.branches.List(ctx)
}

func (u *AdminUseCase) PutBranch(ctx context.Context, actor entities.User, b entities.Branch) (entities.Branch, error) {
	if err := requireAdmin(actor); err != nil {
		return entities.Branch{}, err
	}
	b.Name = strings.TrimSpace(b.Name)
	b.City = strings.TrimSpace(b.City)
	if b.Name == "" {
		return entities.Branch{}, entities.Validationf("branch name is required")
	}
	if strings.TrimSpace(b.ID) == "" {
		b.ID = uuid.NewString()
	}
	if err := u.branches.Put(ctx, b); err != nil {
		return entities.Branch{}, err
	}
	return b, nil
}

func (u *AdminUseCase) DeleteBranch(ctx context.Context, actor entities.User, id string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	users, err := u.users.List(ctx)
	if err != nil {
		return err
	}
	for _, usr := range users {
		if usr.HasBranch(id) {
			return entities.Conflictf("branch %s is assigned to user %s", id, usr.Email)
		}
	}
	return u.branches.Delete(ctx, id)
}

// Bootstrap seeds the default role table when it is empty and, on an empty
// user table, creates the first admin from the given credentials.
func (u *AdminUseCase) Bootstrap(ctx context.Context, adminEmail, adminPassword string) error {
	roles, err := u.roles.List(ctx)
	if err != nil {
		return err
	}
	if len(roles) == 0 {
		for _, def := range entities.DefaultRoleDefinitions() {
			if err := u.roles.Put(ctx, def); err != nil {
				return err
			}
		}
		logging.GetLogger().Info("[admin][usecase] default roles seeded")
	}

	users, err := u.users.List(ctx)
	if err != nil {
		return err
	}
	if len(users) > 0 || strings.TrimSpace(adminEmail) == "" || adminPassword == "" {
		return nil
	}
	hash, err := u.hasher.Hash(adminPassword)
	if err != nil {
		return err
	}
	admin := entities.User{
		ID:           uuid.NewString(),
		Name:         "Administrator",
		Email:        strings.TrimSpace(adminEmail),
		PasswordHash: hash,
		Role:         entities.RoleAdmin,
		Branches:     []string{},
	}
	if err := u.users.Create(ctx, admin); err != nil {
		return err
	}
	logging.GetLogger().WithField("user_id", admin.ID).Info("[admin][usecase] initial admin created")
	return nil
}

func (u *AdminUseCase) applyUserInput(ctx context.Context, user *entities.User, in UserInput) error {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" {
		return entities.Validationf("name is required")
	}
	if email == "" || !strings.Contains(email, "@") {
		return entities.Validationf("a valid email is required")
	}
	if _, err := u.roles.Get(ctx, in.Role); err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			return entities.Validationf("unknown role %q", in.Role)
		}
		return err
	}
	branches := make([]string, 0, len(in.Branches))
	seen := map[string]bool{}
	for _, id := range in.Branches {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		if _, err := u.branches.Get(ctx, id); err != nil {
			if errors.Is(err, entities.ErrNotFound) {
				return entities.Validationf("unknown branch %q", id)
			}
			return err
		}
		seen[id] = true
		branches = append(branches, id)
	}

	user.Name = name
	user.Email = email
	user.Role = in.Role
	user.Branches = branches
	if in.Password != "" {
		hash, err := u.hasher.Hash(in.Password)
		if err != nil {
			return err
		}
		user.PasswordHash = hash
	}
	return nil
}

func (u *AdminUseCase) ensureEmailFree(ctx context.Context, email, selfID string) error {
	existing, err := u.users.GetByEmail(ctx, email)
	if errors.Is(err, entities.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID != selfID {
		return entities.Conflictf("email %s is already in use", email)
	}
	return nil
}

func requireAdmin(actor entities.User) error {
	if !actor.Role.IsAdmin() {
		return entities.Authorizationf("only admins can manage settings")
	}
	return nil
}
