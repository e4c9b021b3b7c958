package memory

import "context"

// SystemRepo reporta el modo in-memory: siempre sano, con las tablas lógicas.
type SystemRepo struct{}

func NewSystemRepo() SystemRepo { return SystemRepo{} }

func (SystemRepo) Ping(context.Context) error { return nil }

func (SystemRepo) ListTables(context.Context) ([]string, error) {
	return []string{"breeds", "categories", "curiosidades", "pets", "users"}, nil
}
