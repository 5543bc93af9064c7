package interfaces

import (
	"context"

	"techassist/internal/domain/entities"
)

// IUserRepository abstracts persistence for technician accounts.
//
// A zero-ID result means "not found"; repositories reserve errors for real
// storage failures.
type IUserRepository interface {
	CreateUser(ctx context.Context, u entities.User) (entities.User, error)
	GetUser(ctx context.Context, id int64) (entities.User, error)
	GetUserByUsername(ctx context.Context, username string) (entities.User, error)
}
