package main

import (
	"context"
	"database/sql"

	"libraryapi/internal/config"
	"libraryapi/internal/platform/database"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// withGoose opens the configured database and points goose at the migrations.
func withGoose(ctx context.Context, cfg config.Config, fn func(dir string, db *sql.DB) error) error {
	pool, err := database.OpenPostgres(ctx, cfg.DBDSN)
	if err != nil {
		return err
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	fsys, dir := migrationsSource(cfg.MigrationsDir)
	goose.SetBaseFS(fsys)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return fn(dir, db)
}
