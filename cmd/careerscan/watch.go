package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/haysc/careerscan/internal/watcher"
)

var watchConfigPath string

var watchCommand = &cobra.Command{
	Use:   "watch",
	Short: "Process existing documents, then watch the directory for changes",
	Long: `Scans the monitored directory once, then watches it for new or modified
career documents. Each stable file is fingerprinted, checked against the
processing ledger, extracted, and merged into the profile. Stop with Ctrl+C.`,
	RunE: runWatch,
}

func init() {
	watchCommand.Flags().StringVar(&watchConfigPath, "config", "", "Path to config.json (optional)")
	rootCmd.AddCommand(watchCommand)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, watchConfigPath)
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

	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	a.log.Info("shutdown complete")
	return nil
}
