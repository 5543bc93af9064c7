package usecase

import (
	"context"
	"errors"
	"strings"

	"techassist/internal/domain/entities"
	"techassist/internal/usecase/interfaces"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidUser        = errors.New("invalid user")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type IUserUseCase interface {
	Register(ctx context.Context, u entities.User) (entities.User, error)
	Login(ctx context.Context, username, password string) (entities.User, error)
	GetUser(ctx context.Context, id int64) (entities.User, error)
}

type UserUseCase struct {
	repo interfaces.IUserRepository
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

func (u *UserUseCase) Register(ctx context.Context, user entities.User) (entities.User, error) {
	user.Username = strings.TrimSpace(user.Username)
	user.Name = strings.TrimSpace(user.Name)
	if user.Username == "" || user.Password == "" || user.Name == "" {
		return entities.User{}, ErrInvalidUser
	}

	existing, err := u.repo.GetUserByUsername(ctx, user.Username)
	if err != nil {
		return entities.User{}, err
	}
	if existing.ID != 0 {
		return entities.User{}, ErrUsernameTaken
	}

	return u.repo.CreateUser(ctx, user)
}

// Login compares the stored plain-text password. Hardening authentication is
// out of scope for this service.
func (u *UserUseCase) Login(ctx context.Context, username, password string) (entities.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return entities.User{}, ErrInvalidCredentials
	}

	user, err := u.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == 0 || user.Password != password {
		return entities.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (u *UserUseCase) GetUser(ctx context.Context, id int64) (entities.User, error) {
	if id <= 0 {
		return entities.User{}, ErrUserNotFound
	}
	user, err := u.repo.GetUser(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == 0 {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}
