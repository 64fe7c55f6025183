package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/repository"
)

func newTestAuthService() *AuthService {
	return NewAuthService(
		repository.NewUserRepository(nil),
		"test-secret",
		time.Hour,
	)
}

func TestRegister_EmptyEmail(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.Register(context.Background(), model.CreateUserRequest{
		Email:    "",
		Password: "password123",
	})
	if !errors.Is(err, ErrEmailRequired) {
		t.Errorf("expected ErrEmailRequired, got %v", err)
	}
}

func TestRegister_EmptyPassword(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.Register(context.Background(), model.CreateUserRequest{
		Email:    "test@example.com",
		Password: "",
	})
	if !errors.Is(err, ErrPasswordRequired) {
		t.Errorf("expected ErrPasswordRequired, got %v", err)
	}
}

func TestAuthSentinelErrors(t *testing.T) {
	if ErrInvalidCredentials.Error() != "invalid email or password" {
		t.Errorf("unexpected message: %s", ErrInvalidCredentials.Error())
	}
	if ErrEmailTaken.Error() != "email already taken" {
		t.Errorf("unexpected message: %s", ErrEmailTaken.Error())
	}
}
