package postgres

import (
	"context"
	"database/sql"
	"errors"

	"pet-identifier/internal/domain/users"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) (users.User, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (email, name, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`,
		u.Email,
		u.Name,
		u.PasswordHash,
		u.CreatedAt,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return users.User{}, translate(err, users.ErrUserExists, nil)
	}
	return u, nil
}

func (r *UsersRepo) GetByName(ctx context.Context, name string) (users.User, error) {
	return r.getOne(ctx, `
		SELECT id, email, name, password_hash, created_at
		FROM users
		WHERE name = $1
	`, name)
}

func (r *UsersRepo) List(ctx context.Context) ([]users.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, email, name, created_at
		FROM users
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]users.User, 0)
	for rows.Next() {
		var u users.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *UsersRepo) getOne(ctx context.Context, query string, arg any) (users.User, error) {
	var u users.User
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return users.User{}, users.ErrUserNotFound
	}
	if err != nil {
		return users.User{}, err
	}
	return u, nil
}
