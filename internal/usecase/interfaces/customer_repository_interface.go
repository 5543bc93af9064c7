package interfaces

import (
	"context"

	"techassist/internal/domain/entities"
)

// ICustomerRepository abstracts persistence for customers.
type ICustomerRepository interface {
	CreateCustomer(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetCustomer(ctx context.Context, id int64) (entities.Customer, error)
	ListCustomers(ctx context.Context) ([]entities.Customer, error)
}
