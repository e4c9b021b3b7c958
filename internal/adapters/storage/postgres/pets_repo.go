package postgres

import (
	"context"
	"database/sql"

	"pet-identifier/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO pets (name, breed, description, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`,
		p.Name,
		p.Breed,
		p.Description,
		p.UserID,
		p.CreatedAt,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return pets.Pet{}, translate(err, nil, pets.ErrUserNotFound)
	}
	return p, nil
}

// Delete exige que coincidan id y dueño en la misma sentencia.
func (r *PetsRepo) Delete(ctx context.Context, id, userID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return pets.ErrPetNotFound
	}
	return nil
}

func (r *PetsRepo) ListByUser(ctx context.Context, userID int64) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, COALESCE(breed, ''), COALESCE(description, ''), user_id, created_at
		FROM pets
		WHERE user_id = $1
		ORDER BY id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		var p pets.Pet
		if err := rows.Scan(&p.ID, &p.Name, &p.Breed, &p.Description, &p.UserID, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
