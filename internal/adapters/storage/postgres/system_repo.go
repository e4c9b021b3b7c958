package postgres

import (
	"context"
	"database/sql"
)

type SystemRepo struct {
	db *sql.DB
}

func NewSystemRepo(db *sql.DB) *SystemRepo {
	return &SystemRepo{db: db}
}

func (r *SystemRepo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *SystemRepo) ListTables(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = 'public'
		ORDER BY table_name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}
