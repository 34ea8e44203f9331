package catalog

import (
	"context"
	"database/sql"
)

// DBExecutor минимальный интерфейс для чтения из БД
// Подходит *sql.DB и *sql.Tx
type DBExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}
