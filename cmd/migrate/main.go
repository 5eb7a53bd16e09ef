package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"libraryapi/internal/config"
	"libraryapi/internal/platform/logger"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg config.Config
	var log *zap.Logger

	root := &cobra.Command{
		Use:          "migrate",
		Short:        "Apply or inspect the Postgres schema migrations",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return err
			}
			if cfg.DBDriver != config.DriverPostgres {
				return fmt.Errorf("migrations target postgres; the %s store creates its own schema", cfg.DBDriver)
			}
			log, err = logger.New(cfg.LogLevel, cfg.LogFormat)
			return err
		},
	}

	run := func(name string, fn func(ctx context.Context, cfg config.Config, log *zap.Logger) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			defer func() { _ = log.Sync() }()
			if err := fn(cmd.Context(), cfg, log); err != nil {
				log.Error("migration command failed", zap.String("command", name), zap.Error(err))
				return err
			}
			return nil
		}
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: run("up", func(ctx context.Context, cfg config.Config, log *zap.Logger) error {
				return withGoose(ctx, cfg, func(dir string, db *sql.DB) error {
					if err := goose.UpContext(ctx, db, dir); err != nil {
						return err
					}
					log.Info("migrations applied")
					return nil
				})
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			RunE: run("down", func(ctx context.Context, cfg config.Config, log *zap.Logger) error {
				return withGoose(ctx, cfg, func(dir string, db *sql.DB) error {
					if err := goose.DownContext(ctx, db, dir); err != nil {
						return err
					}
					log.Info("migration rolled back")
					return nil
				})
			}),
		},
		&cobra.Command{
			Use:   "status",
			Short: "Print the state of every migration",
			RunE: run("status", func(ctx context.Context, cfg config.Config, log *zap.Logger) error {
				return withGoose(ctx, cfg, func(dir string, db *sql.DB) error {
					return goose.StatusContext(ctx, db, dir)
				})
			}),
		},
		newCreateCmd(),
	)
	return root
}

func newCreateCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Write a new empty SQL migration",
		Args:  cobra.ExactArgs(1),
		// create only touches files, so it skips config and database setup.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			goose.SetBaseFS(nil)
			if err := goose.Create(nil, createDir(dir), args[0], "sql"); err != nil {
				return fmt.Errorf("create migration: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Migration created: %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "directory for the new file (default $MIGRATIONS_DIR or db/migrations)")
	return cmd
}
