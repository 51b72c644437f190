package usecase

import (
	"context"
	"errors"
	"strings"

	"hotel_procurement/internal/domain/entities"
	"hotel_procurement/internal/usecase/interfaces"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type IAuthUseCase interface {
	Login(ctx context.Context, email, password string) (token string, user entities.User, err error)
	Authenticate(ctx context.Context, token string) (entities.User, error)
}

type AuthUseCase struct {
	users  interfaces.IUserRepository
	tokens interfaces.ITokenService
	hasher interfaces.IPasswordHasher
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository, tokens interfaces.ITokenService, hasher interfaces.IPasswordHasher) *AuthUseCase {
	return &AuthUseCase{users: users, tokens: tokens, hasher: hasher}
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (string, entities.User, error) {
	user, err := u.users.GetByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, entities.ErrNotFound) {
		return "", entities.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return "", entities.User{}, err
	}
	if user.PasswordHash == "" || u.hasher.Compare(user.PasswordHash, password) != nil {
		return "", entities.User{}, ErrInvalidCredentials
	}
	token, err := u.tokens.Issue(user)
	if err != nil {
		return "", entities.User{}, err
	}
	return token, user, nil
}

// Authenticate resolves a bearer token to the current user record, so role
// and branch changes apply without a new login.
func (u *AuthUseCase) Authenticate(ctx context.Context, token string) (entities.User, error) {
	id, err := u.tokens.Parse(token)
	if err != nil {
		return entities.User{}, ErrInvalidCredentials
	}
	user, err := u.users.GetByID(ctx, id)
	if errors.Is(err, entities.ErrNotFound) {
		return entities.User{}, ErrInvalidCredentials
	}
	return user, err
}
