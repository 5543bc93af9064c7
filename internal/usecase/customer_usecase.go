package usecase

import (
	"context"
	"errors"
	"strings"

	"techassist/internal/domain/entities"
	"techassist/internal/usecase/interfaces"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrInvalidCustomer  = errors.New("invalid customer")
)

type ICustomerUseCase interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	Get(ctx context.Context, id int64) (entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
}

type CustomerUseCase struct {
	repo interfaces.ICustomerRepository
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

func (u *CustomerUseCase) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return entities.Customer{}, ErrInvalidCustomer
	}
	return u.repo.CreateCustomer(ctx, c)
}

func (u *CustomerUseCase) Get(ctx context.Context, id int64) (entities.Customer, error) {
	if id <= 0 {
		return entities.Customer{}, ErrCustomerNotFound
	}
	c, err := u.repo.GetCustomer(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == 0 {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (u *CustomerUseCase) List(ctx context.Context) ([]entities.Customer, error) {
	return u.repo.ListCustomers(ctx)
}
