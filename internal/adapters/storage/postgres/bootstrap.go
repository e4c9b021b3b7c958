package postgres

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"regexp"
	"strings"

	"pet-identifier/internal/domain/catalog"
	"pet-identifier/internal/platform/logger"

	"github.com/jackc/pgx/v5"
)

//go:embed schema.sql
var schemaSQL string

const adminDatabase = "postgres"

var statementSep = regexp.MustCompile(`;\s*\n`)

// EnsureDatabase se conecta a la base admin "postgres" y crea la base del DSN si falta.
func EnsureDatabase(ctx context.Context, dsn string, lg logger.Logger) error {
	cfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return fmt.Errorf("parse dsn: %w", err)
	}
	target := cfg.Database
	if target == "" || target == adminDatabase {
		return nil
	}

	admin := cfg.Copy()
	admin.Database = adminDatabase

	conn, err := pgx.ConnectConfig(ctx, admin)
	if err != nil {
		return fmt.Errorf("connect admin db: %w", err)
	}
	defer conn.Close(context.Background())

	var exists bool
	if err := conn.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)`, target).Scan(&exists); err != nil {
		return fmt.Errorf("check database: %w", err)
	}
	if exists {
		lg.Debug("database already exists", map[string]any{"database": target})
		return nil
	}

	if _, err := conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{target}.Sanitize()); err != nil {
		return fmt.Errorf("create database %s: %w", target, err)
	}
	lg.Info("database created", map[string]any{"database": target})
	return nil
}

// SplitStatements parte un script SQL en sentencias sueltas.
func SplitStatements(script string) []string {
	parts := statementSep.Split(script, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(p), ";"))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ApplySchema ejecuta schema.sql sentencia por sentencia. Una sentencia que
// falla se loguea y se sigue con la próxima; devuelve cuántas fallaron.
func ApplySchema(ctx context.Context, db *sql.DB, lg logger.Logger) int {
	failed := 0
	for _, stmt := range SplitStatements(schemaSQL) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			failed++
			lg.Warn("schema statement failed (continuing)", map[string]any{
				"statement": firstLine(stmt),
				"error":     err,
			})
		}
	}
	return failed
}

// Seed carga el catálogo por defecto en cada tabla que esté vacía.
func Seed(ctx context.Context, db *sql.DB, lg logger.Logger) error {
	steps := []struct {
		table string
		fill  func(context.Context, *sql.DB) error
	}{
		{"categories", seedCategories},
		{"breeds", seedBreeds},
		{"curiosidades", seedCuriosidades},
	}

	for _, s := range steps {
		var n int
		// table sale de la lista fija de arriba.
		if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+s.table).Scan(&n); err != nil {
			return fmt.Errorf("count %s: %w", s.table, err)
		}
		if n > 0 {
			continue
		}
		if err := s.fill(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", s.table, err)
		}
		lg.Info("table seeded", map[string]any{"table": s.table})
	}
	return nil
}

// Bootstrap aplica el esquema y el seed sobre un pool ya abierto.
func Bootstrap(ctx context.Context, db *sql.DB, lg logger.Logger) error {
	if failed := ApplySchema(ctx, db, lg); failed > 0 {
		lg.Warn("schema applied with failures", map[string]any{"failed": failed})
	}
	return Seed(ctx, db, lg)
}

func seedCategories(ctx context.Context, db *sql.DB) error {
	for _, c := range catalog.DefaultCategories {
		if _, err := db.ExecContext(ctx,
			`INSERT INTO categories (name, description) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`,
			c.Name, c.Description,
		); err != nil {
			return err
		}
	}
	return nil
}

func seedBreeds(ctx context.Context, db *sql.DB) error {
	for _, b := range catalog.DefaultBreeds {
		if _, err := db.ExecContext(ctx, `
			INSERT INTO breeds (name, scientific_name, description, default_image_url, category_id)
			SELECT $1, $2, $3, $4, id FROM categories WHERE name = $5
			ON CONFLICT (category_id, name) DO NOTHING
		`,
			b.Name, b.ScientificName, b.Description, b.DefaultImageURL, b.Category,
		); err != nil {
			return err
		}
	}
	return nil
}

func seedCuriosidades(ctx context.Context, db *sql.DB) error {
	for _, c := range catalog.DefaultCuriosidades {
		tags, err := textArray(c.Tags)
		if err != nil {
			return err
		}
		if _, err := db.ExecContext(ctx, `
			INSERT INTO curiosidades (title, content, image_url, tags, visible)
			VALUES ($1, $2, $3, $4::text[], $5)
		`,
			c.Title, c.Content, c.ImageURL, tags, c.Visible,
		); err != nil {
			return err
		}
	}
	return nil
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimSpace(line)
}
