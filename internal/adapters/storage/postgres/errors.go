package postgres

import (
	"errors"

	"pet-identifier/internal/platform/apperr"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// translate convierte violaciones de constraint en los errores del dominio.
// Un sentinel nil deja pasar el error original.
func translate(err error, onUnique, onForeignKey *apperr.Error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case codeUniqueViolation:
		if onUnique != nil {
			return onUnique.Wrap(err)
		}
	case codeForeignKeyViolation:
		if onForeignKey != nil {
			return onForeignKey.Wrap(err)
		}
	}
	return err
}
