// Package bootstrap wires the book store selected by configuration.
package bootstrap

import (
	"context"
	"fmt"

	"libraryapi/internal/book"
	"libraryapi/internal/config"
	"libraryapi/internal/platform/database"

	"go.uber.org/zap"
)

// OpenBookStore connects the store named by cfg.DBDriver. The returned func
// releases its connections.
func OpenBookStore(ctx context.Context, cfg config.Config, log *zap.Logger) (book.Repository, func(), error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		pool, err := database.OpenPostgres(ctx, cfg.DBDSN)
		if err != nil {
			return nil, nil, err
		}
		log.Info("database connection OK", zap.String("driver", cfg.DBDriver), zap.String("dsn", database.RedactDSN(cfg.DBDSN)))
		return book.NewPostgresRepo(pool, cfg.DBTimeout), pool.Close, nil
	case config.DriverSQLite:
		db, err := database.OpenSQLite(ctx, cfg.DBDSN)
		if err != nil {
			return nil, nil, err
		}
		repo := book.NewSQLiteRepo(db, cfg.DBTimeout)
		if err := repo.Migrate(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		log.Info("database connection OK", zap.String("driver", cfg.DBDriver), zap.String("dsn", cfg.DBDSN))
		return repo, func() { _ = db.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}
}
