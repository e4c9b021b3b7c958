package users

import (
	"context"

	"pet-identifier/internal/platform/apperr"
)

var (
	ErrUserExists   = apperr.Conflict("user_exists")
	ErrUserNotFound = apperr.NotFound("user_not_found")
)

// Repository persiste usuarios. Create devuelve ErrUserExists si el email
// o el nombre ya están tomados; GetByName devuelve ErrUserNotFound.
type Repository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByName(ctx context.Context, name string) (User, error)
	List(ctx context.Context) ([]User, error)
}
