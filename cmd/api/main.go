package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"libraryapi/internal/book"
	"libraryapi/internal/bootstrap"
	"libraryapi/internal/config"
	"libraryapi/internal/platform/logger"
	"libraryapi/internal/server"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeStore, err := bootstrap.OpenBookStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	bookService := book.NewService(repo, log.Named("book"))
	bookHandler := book.NewHTTPHandler(bookService, log.Named("book"))

	srv := server.New(ctx, cfg, bookHandler, bookService, log)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
