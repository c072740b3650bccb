// Package pipeline sequences the end-to-end processing of one career
// document: validation, fingerprinting, the ledger idempotency gate, text
// extraction, the understanding-service call, reconciliation, and durable
// persistence, with short-circuiting and failure recording at every stage.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/haysc/careerscan/internal/extract"
	"github.com/haysc/careerscan/internal/fingerprint"
	"github.com/haysc/careerscan/internal/ledger"
	"github.com/haysc/careerscan/internal/parser"
	"github.com/haysc/careerscan/internal/profile"
	"github.com/haysc/careerscan/internal/scanner"
	"github.com/haysc/careerscan/internal/types"
)

// Status describes the terminal state of one processing run.
type Status string

// Terminal statuses for a document run.
const (
	StatusProcessed Status = "processed" // extracted, merged, persisted
	StatusSkipped   Status = "skipped"   // unchanged content, ledger hit
	StatusFailed    Status = "failed"    // attempted, recorded as failure
)

// Result summarizes one processing run for callers and logs.
type Result struct {
	Path     string
	Status   Status
	Category types.DocumentCategory
	Hash     string
	Counts   types.ItemCounts
}

// Processor runs the document pipeline. A mutex serializes runs: the profile
// store and ledger have a single logical writer, and merges are not safe
// under interleaved read-modify-write.
type Processor struct {
	extractor   extract.Extractor
	ledger      *ledger.Ledger
	store       *profile.Store
	extensions  []string
	maxFileSize int64
	log         *slog.Logger

	mu sync.Mutex
}

// Config holds processor construction parameters.
type Config struct {
	Extractor    extract.Extractor
	Ledger       *ledger.Ledger
	ProfileStore *profile.Store
	Extensions   []string
	MaxFileSize  int64 // bytes
	Logger       *slog.Logger
}

// New creates a Processor.
func New(cfg Config) *Processor {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Processor{
		extractor:   cfg.Extractor,
		ledger:      cfg.Ledger,
		store:       cfg.ProfileStore,
		extensions:  cfg.Extensions,
		maxFileSize: cfg.MaxFileSize,
		log:         cfg.Logger,
	}
}

// Process runs one document through the pipeline.
//
// Stage order: validate, fingerprint, ledger check, parse text, extract,
// reconcile, persist profile, record ledger. The profile is persisted
// strictly before the ledger records success, so a crash between the two can
// never report success without a corresponding durable profile change.
func (p *Processor) Process(ctx context.Context, path string) (*Result, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	log := p.log.With("path", path)
	category := types.CategorizeFilename(path)
	result := &Result{Path: path, Category: category}

	if err := p.validate(path); err != nil {
		result.Status = StatusFailed
		return result, err
	}

	hash, err := fingerprint.File(path)
	if err != nil {
		result.Status = StatusFailed
		return result, fmt.Errorf("failed to fingerprint document: %w", err)
	}
	result.Hash = hash

	if p.ledger.IsUnchanged(path, hash) {
		log.Info("document unchanged, skipping", "hash", hash)
		result.Status = StatusSkipped
		return result, nil
	}

	parsed, err := parser.Parse(path)
	if err != nil {
		result.Status = StatusFailed
		p.recordFailure(path, hash, category)
		return result, fmt.Errorf("failed to parse document: %w", err)
	}
	log.Info("document text extracted", "chars", parsed.CharCount, "category", category)

	extraction, err := p.extractor.Extract(ctx, parsed.Text, category)
	if err != nil {
		result.Status = StatusFailed
		p.recordFailure(path, hash, category)
		return result, fmt.Errorf("extraction failed: %w", err)
	}
	result.Counts = extraction.Counts()

	current := p.store.Load()
	merged := profile.Merge(current, extraction)
	if err := p.store.Save(merged); err != nil {
		// Persistence failure: the temp file is cleaned up and the previous
		// profile is intact. No ledger entry, so a re-save retries cleanly.
		result.Status = StatusFailed
		return result, err
	}

	entry := ledger.Entry{
		FilePath:          path,
		FileHash:          hash,
		DocumentCategory:  category,
		ExtractionSuccess: true,
		ItemsExtracted:    result.Counts,
	}
	if err := p.ledger.Record(entry); err != nil {
		result.Status = StatusFailed
		return result, err
	}

	log.Info("document processed",
		"work_experience", result.Counts.WorkExperience,
		"education", result.Counts.Education,
		"projects", result.Counts.Projects,
		"job_applications", result.Counts.JobApplications)
	result.Status = StatusProcessed
	return result, nil
}

// validate checks existence, regular-file status, the size ceiling, and the
// extension whitelist. Violations are terminal with no ledger record.
func (p *Processor) validate(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &ValidationError{Path: path, Reason: "file does not exist"}
		}
		return &ValidationError{Path: path, Reason: err.Error()}
	}
	if !info.Mode().IsRegular() {
		return &ValidationError{Path: path, Reason: "not a regular file"}
	}
	if p.maxFileSize > 0 && info.Size() > p.maxFileSize {
		return &ValidationError{
			Path:   path,
			Reason: fmt.Sprintf("file size %d exceeds maximum %d bytes", info.Size(), p.maxFileSize),
		}
	}
	if !scanner.HasSupportedExtension(path, p.extensions) {
		return &ValidationError{Path: path, Reason: "unsupported file extension"}
	}
	return nil
}

// recordFailure writes an attempted-but-failed ledger entry so the ledger
// distinguishes "attempted, did not succeed" from "never attempted". The
// document is retried only when its content changes.
func (p *Processor) recordFailure(path, hash string, category types.DocumentCategory) {
	entry := ledger.Entry{
		FilePath:          path,
		FileHash:          hash,
		DocumentCategory:  category,
		ExtractionSuccess: false,
	}
	if err := p.ledger.Record(entry); err != nil {
		p.log.Error("failed to record ledger failure entry", "path", path, "error", err)
	}
}
