package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/haysc/careerscan/internal/config"
	"github.com/haysc/careerscan/internal/extract"
	"github.com/haysc/careerscan/internal/ledger"
	"github.com/haysc/careerscan/internal/logging"
	"github.com/haysc/careerscan/internal/pipeline"
	"github.com/haysc/careerscan/internal/profile"
	"github.com/haysc/careerscan/internal/scanner"
)

// app holds the wired components shared by the scan, watch, and serve
// commands.
type app struct {
	cfg       *config.Config
	log       *slog.Logger
	ledger    *ledger.Ledger
	store     *profile.Store
	gateway   *extract.Gateway
	processor *pipeline.Processor
}

// newApp loads and validates configuration and wires the pipeline. Missing
// service credentials are fatal here, before any watching begins.
func newApp(ctx context.Context, configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.RequireCredentials(); err != nil {
		return nil, err
	}

	log := logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	client, err := extract.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to create extraction client: %w", err)
	}

	lgr := ledger.Load(cfg.LedgerPath(), log)
	store := profile.NewStore(cfg.ProfilePath(), log)
	gateway := extract.NewGateway(client, extract.WithLogger(log))

	processor := pipeline.New(pipeline.Config{
		Extractor:    gateway,
		Ledger:       lgr,
		ProfileStore: store,
		Extensions:   cfg.SupportedExtensions,
		MaxFileSize:  cfg.MaxFileSizeBytes(),
		Logger:       log,
	})

	return &app{
		cfg:       cfg,
		log:       log,
		ledger:    lgr,
		store:     store,
		gateway:   gateway,
		processor: processor,
	}, nil
}

// close releases the extraction client.
func (a *app) close() {
	_ = a.gateway.Close()
}

// processExisting runs the pipeline over every supported document already in
// the monitored directory. Per-document failures are logged, not fatal.
func (a *app) processExisting(ctx context.Context) error {
	docs, err := scanner.ScanDirectory(a.cfg.DocumentsPath, a.cfg.SupportedExtensions, a.log)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		a.log.Info("no existing documents found", "path", a.cfg.DocumentsPath)
		return nil
	}

	a.log.Info("processing existing documents", "count", len(docs))
	processed := 0
	for _, doc := range docs {
		result, err := a.processor.Process(ctx, doc.Path)
		if err != nil {
			a.log.Error("document failed", "path", doc.Path, "error", err)
			continue
		}
		if result.Status != pipeline.StatusFailed {
			processed++
		}
	}
	a.log.Info("startup scan complete", "processed", processed, "total", len(docs))
	return nil
}
