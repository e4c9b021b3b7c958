package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pet-identifier/internal/domain/catalog"

	"github.com/jackc/pgx/v5/pgtype"
)

type CatalogRepo struct {
	db *sql.DB
}

func NewCatalogRepo(db *sql.DB) *CatalogRepo {
	return &CatalogRepo{db: db}
}

func (r *CatalogRepo) ListCategories(ctx context.Context) ([]catalog.Category, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, COALESCE(description, ''), created_at
		FROM categories
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]catalog.Category, 0)
	for rows.Next() {
		var c catalog.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CatalogRepo) ListBreeds(ctx context.Context, f catalog.BreedFilter) ([]catalog.Breed, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT b.id, b.name,
		       COALESCE(b.scientific_name, ''), COALESCE(b.description, ''), COALESCE(b.default_image_url, ''),
		       b.category_id, c.name
		FROM breeds b
		JOIN categories c ON c.id = b.category_id
		WHERE ($1::bigint = 0 OR b.category_id = $1::bigint)
		  AND ($2::text = '' OR lower(c.name) = lower($2::text))
		ORDER BY c.id, b.id
	`, f.CategoryID, strings.TrimSpace(f.CategoryName))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]catalog.Breed, 0)
	for rows.Next() {
		var b catalog.Breed
		if err := rows.Scan(
			&b.ID, &b.Name,
			&b.ScientificName, &b.Description, &b.DefaultImageURL,
			&b.CategoryID, &b.CategoryName,
		); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *CatalogRepo) ListCuriosidades(ctx context.Context) ([]catalog.Curiosidad, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, content, COALESCE(image_url, ''),
		       COALESCE(tags, '{}'), visible, created_at
		FROM curiosidades
		WHERE visible = TRUE
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// pgtype.Map no es seguro entre goroutines: uno por query.
	m := pgtype.NewMap()
	out := make([]catalog.Curiosidad, 0)
	for rows.Next() {
		var c catalog.Curiosidad
		if err := rows.Scan(&c.ID, &c.Title, &c.Content, &c.ImageURL, m.SQLScanner(&c.Tags), &c.Visible, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// textArray codifica vals como literal text[] de Postgres, con el quoting de pgx.
func textArray(vals []string) (string, error) {
	if vals == nil {
		vals = []string{}
	}
	buf, err := pgtype.NewMap().Encode(pgtype.TextArrayOID, pgtype.TextFormatCode, vals, nil)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}
