package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel_procurement/internal/infrastructure/auth"
	mock_interfaces "hotel_procurement/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAuthUseCase(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	hasher := auth.NewBcryptHasher(4)
	hash, _ := hasher.Hash("pa55word")
	u := hotelMgr
	u.PasswordHash = hash
	if err := e.users.Create(ctx, u); err != nil {
		t.Fatalf("seed: %v", err)
	}
	uc := NewAuthUseCase(e.users, auth.NewJWTService("test-secret", time.Hour), hasher)

	t.Run("login and authenticate", func(t *testing.T) {
		token, got, err := uc.Login(ctx, " HM@hotel.test", "pa55word")
		if err != nil {
			t.Fatalf("login: %v", err)
		}
		if token == "" || got.ID != u.ID {
			t.Fatalf("unexpected login result: %q %+v", token, got)
		}
		me, err := uc.Authenticate(ctx, token)
		if err != nil || me.ID != u.ID {
			t.Fatalf("authenticate: %+v %v", me, err)
		}
	})

	t.Run("wrong password or user", func(t *testing.T) {
		if _, _, err := uc.Login(ctx, u.Email, "nope"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
		if _, _, err := uc.Login(ctx, "ghost@hotel.test", "pa55word"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		if _, err := uc.Authenticate(ctx, "not-a-token"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("token for a deleted user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tokens := mock_interfaces.NewMockITokenService(ctrl)
		uc := NewAuthUseCase(e.users, tokens, hasher)
		tokens.EXPECT().Parse("tok").Return("gone", nil)
		if _, err := uc.Authenticate(ctx, "tok"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

