package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/haysc/careerscan/internal/server"
	"github.com/haysc/careerscan/internal/watcher"
)

var serveConfigPath string

var serveCommand = &cobra.Command{
	Use:   "serve",
	Short: "Run the watcher alongside a read-only HTTP API",
	Long: `Runs the document watcher and a read-only HTTP API exposing the current
profile and processing ledger (GET /profile, GET /documents, GET /health).`,
	RunE: runServe,
}

func init() {
	serveCommand.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json (optional)")
	rootCmd.AddCommand(serveCommand)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, serveConfigPath)
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.processExisting(ctx); err != nil {
		return err
	}

	w, err := watcher.New(watcher.Config{
		Root:       a.cfg.DocumentsPath,
		Extensions: a.cfg.SupportedExtensions,
		Debounce:   a.cfg.Debounce(),
		Logger:     a.log,
	}, func(path string) error {
		_, err := a.processor.Process(ctx, path)
		return err
	})
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()

	api := server.New(a.cfg.ListenAddr, a.store, a.ledger, a.log)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error { return w.Run(gCtx) })
	g.Go(func() error { return api.Run(gCtx) })

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	a.log.Info("shutdown complete")
	return nil
}
