package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"libraryapi/internal/book"
	"libraryapi/internal/bootstrap"
	"libraryapi/internal/config"
	"libraryapi/internal/platform/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "seed",
		Short:        "Insert sample books through the book service",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			repo, closeStore, err := bootstrap.OpenBookStore(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer closeStore()

			res, err := seed(cmd.Context(), book.NewService(repo, log), sampleBooks(), log)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %d books, skipped %d\n", res.created, res.skipped)
			return nil
		},
	}
}

type result struct {
	created int
	skipped int
}

// seed saves every book; isbn collisions are skipped so the command can be rerun.
func seed(ctx context.Context, svc *book.Service, books []book.Book, log *zap.Logger) (result, error) {
	var res result
	for _, b := range books {
		saved, err := svc.Save(ctx, b)
		var be *book.BusinessError
		switch {
		case errors.As(err, &be):
			log.Info("skipping book", zap.String("isbn", b.ISBN), zap.String("reason", be.Message))
			res.skipped++
		case err != nil:
			return res, fmt.Errorf("seed %s: %w", b.ISBN, err)
		default:
			log.Debug("created book", zap.Int64("id", saved.ID), zap.String("isbn", saved.ISBN))
			res.created++
		}
	}
	return res, nil
}

func sampleBooks() []book.Book {
	return []book.Book{
		{Title: "The Go Programming Language", Author: "Alan A. A. Donovan", ISBN: "9780134190440"},
		{Title: "Introducing Go", Author: "Caleb Doxsey", ISBN: "9781491941959"},
		{Title: "Concurrency in Go", Author: "Katherine Cox-Buday", ISBN: "9781491941195"},
		{Title: "Go in Practice", Author: "Matt Butcher", ISBN: "9781633430075"},
		{Title: "Learning Go", Author: "Jon Bodner", ISBN: "9781492077213"},
	}
}
