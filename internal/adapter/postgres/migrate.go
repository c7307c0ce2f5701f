package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/kwokm/mk-todo/internal/adapter/migrations"
)

// Migrate applies the kv schema through a database/sql handle borrowed
// from pool (goose requires *sql.DB).
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	return migrations.Up(ctx, db, goose.DialectPostgres)
}
