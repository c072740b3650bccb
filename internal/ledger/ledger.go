// Package ledger tracks per-path processing outcomes for idempotency and audit.
//
// The ledger answers "has this exact content already been handled?" so that
// unchanged documents are never re-sent to the extraction service, which is the
// most expensive and rate-limited step of the pipeline.
package ledger

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/haysc/careerscan/internal/storage"
	"github.com/haysc/careerscan/internal/types"
)

// Entry records one processing attempt for a path. Reprocessing the same path
// with a new hash overwrites the prior entry; there is at most one entry per
// path at any time.
type Entry struct {
	FilePath          string                 `json:"file_path"`
	FileHash          string                 `json:"file_hash"`
	ProcessedDate     string                 `json:"processed_date"` // RFC3339
	DocumentCategory  types.DocumentCategory `json:"document_category"`
	ExtractionSuccess bool                   `json:"extraction_success"`
	ItemsExtracted    types.ItemCounts       `json:"items_extracted"`
}

// document is the on-disk shape of the ledger file.
type document struct {
	Documents []Entry `json:"documents"`
}

// Ledger is the persisted list of processing records. The pipeline is the
// single writer, but the HTTP API reads entries concurrently, so access to
// the in-memory list is guarded.
type Ledger struct {
	path string
	log  *slog.Logger

	mu      sync.RWMutex
	entries []Entry
}

// Load reads the ledger file at path. A missing, unreadable, or corrupt file
// degrades to an empty ledger: favoring reprocessing over silent data loss.
func Load(path string, log *slog.Logger) *Ledger {
	if log == nil {
		log = slog.Default()
	}
	l := &Ledger{path: path, log: log}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn("ledger unreadable, starting empty", "path", path, "error", err)
		}
		return l
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Warn("ledger corrupt, starting empty", "path", path, "error", err)
		return l
	}

	l.entries = doc.Documents
	return l
}

// Lookup returns the entry for path, if one exists.
func (l *Ledger) Lookup(path string) (Entry, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, e := range l.entries {
		if e.FilePath == path {
			return e, true
		}
	}
	return Entry{}, false
}

// IsUnchanged reports whether an entry exists for path with the given content
// hash. This is the idempotency gate: unchanged content is never reprocessed
// even if the file's modification time changed.
func (l *Ledger) IsUnchanged(path, hash string) bool {
	e, ok := l.Lookup(path)
	return ok && e.FileHash == hash
}

// Record upserts an entry by path and persists the whole ledger. A new call
// for the same path replaces, not appends, the prior entry.
func (l *Ledger) Record(entry Entry) error {
	if entry.ProcessedDate == "" {
		entry.ProcessedDate = time.Now().UTC().Format(time.RFC3339)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	replaced := false
	for i, e := range l.entries {
		if e.FilePath == entry.FilePath {
			l.entries[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		l.entries = append(l.entries, entry)
	}

	if err := l.save(); err != nil {
		return fmt.Errorf("failed to persist ledger: %w", err)
	}
	return nil
}

// Entries returns a copy of all ledger entries.
func (l *Ledger) Entries() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of recorded paths.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// save persists the current entries. Caller holds the write lock.
func (l *Ledger) save() error {
	doc := document{Documents: l.entries}
	if doc.Documents == nil {
		doc.Documents = []Entry{}
	}
	return storage.WriteJSONAtomic(l.path, doc)
}
