package system

import "context"

// Repository expone el estado del almacenamiento para /health y /tables.
type Repository interface {
	Ping(ctx context.Context) error
	ListTables(ctx context.Context) ([]string, error)
}
