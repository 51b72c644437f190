package interfaces

import (
	"context"

	"hotel_procurement/internal/domain/entities"
)

// IUserRepository persists users. Lookups return ErrNotFound when missing.
type IUserRepository interface {
	Create(ctx context.Context, u entities.User) error
	Update(ctx context.Context, u entities.User) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	List(ctx context.Context) ([]entities.User, error)
}

// IRoleRepository persists role definitions keyed by name.
type IRoleRepository interface {
	Put(ctx context.Context, r entities.RoleDefinition) error
	Delete(ctx context.Context, name entities.Role) error
	Get(ctx context.Context, name entities.Role) (entities.RoleDefinition, error)
	List(ctx context.Context) ([]entities.RoleDefinition, error)
}

// IBranchRepository persists branches keyed by id.
type IBranchRepository interface {
	Put(ctx context.Context, b entities.Branch) error
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (entities.Branch, error)
	List(ctx context.Context) ([]entities.Branch, error)
}
