package usecase

import (
	"context"
	"errors"
	"testing"

	"techassist/internal/adapter/persistence/repository"
	"techassist/internal/domain/entities"
)

func TestUserUseCase_RegisterAndLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("register rejects incomplete user", func(t *testing.T) {
		uc := NewUserUseCase(repository.NewMemoryStore())
		_, err := uc.Register(ctx, entities.User{Username: "tech2", Name: "No Password"})
		if !errors.Is(err, ErrInvalidUser) {
			t.Fatalf("expected ErrInvalidUser, got %v", err)
		}
	})

	t.Run("duplicate username conflicts", func(t *testing.T) {
		uc := NewUserUseCase(repository.NewMemoryStore())
		if _, err := uc.Register(ctx, entities.User{Username: "tech2", Password: "pw", Name: "First"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err := uc.Register(ctx, entities.User{Username: "tech2", Password: "pw", Name: "Second"})
		if !errors.Is(err, ErrUsernameTaken) {
			t.Fatalf("expected ErrUsernameTaken, got %v", err)
		}
	})

	t.Run("login with seeded technician", func(t *testing.T) {
		uc := NewUserUseCase(repository.NewSeededMemoryStore())
		user, err := uc.Login(ctx, "tech1", "password123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Name != "John Smith" {
			t.Fatalf("unexpected user: %+v", user)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		uc := NewUserUseCase(repository.NewSeededMemoryStore())
		if _, err := uc.Login(ctx, "tech1", "nope"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown username", func(t *testing.T) {
		uc := NewUserUseCase(repository.NewMemoryStore())
		if _, err := uc.Login(ctx, "ghost", "pw"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestUserUseCase_GetUser(t *testing.T) {
	ctx := context.Background()
	uc := NewUserUseCase(repository.NewMemoryStore())

	if _, err := uc.GetUser(ctx, 0); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := uc.GetUser(ctx, 42); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
