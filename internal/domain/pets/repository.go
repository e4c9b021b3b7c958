package pets

import (
	"context"

	"pet-identifier/internal/platform/apperr"
)

var (
	ErrPetNotFound  = apperr.NotFound("pet_not_found")
	ErrUserNotFound = apperr.NotFound("user_not_found")
)

// Repository persiste mascotas.
//   - Create devuelve ErrUserNotFound si el dueño no existe (FK).
//   - Delete borra solo si (id, userID) coinciden; si no, ErrPetNotFound.
//   - ListByUser ordena por id ascendente.
type Repository interface {
	Create(ctx context.Context, p Pet) (Pet, error)
	Delete(ctx context.Context, id, userID int64) error
	ListByUser(ctx context.Context, userID int64) ([]Pet, error)
}
