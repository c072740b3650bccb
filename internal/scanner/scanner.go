// Package scanner discovers career documents under a directory tree.
// It is used for the startup pass over documents that arrived while the
// watcher was not running.
package scanner

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/haysc/careerscan/internal/types"
)

// ScanDirectory recursively walks root and returns a descriptor for every
// file with a supported extension. Unreadable subtrees are logged and
// skipped; a scan never fails on a single bad entry.
func ScanDirectory(root string, extensions []string, log *slog.Logger) ([]types.DocumentDescriptor, error) {
	if log == nil {
		log = slog.Default()
	}

	var documents []types.DocumentDescriptor
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Warn("skipping unreadable path", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !HasSupportedExtension(path, extensions) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			log.Warn("skipping file without metadata", "path", path, "error", err)
			return nil
		}

		documents = append(documents, types.DocumentDescriptor{
			Path:         path,
			Name:         d.Name(),
			Category:     types.CategorizeFilename(d.Name()),
			LastModified: info.ModTime(),
			Size:         info.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	return documents, nil
}

// HasSupportedExtension reports whether path ends in one of the supported
// document extensions (case-insensitive).
func HasSupportedExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range extensions {
		if ext == strings.ToLower(supported) {
			return true
		}
	}
	return false
}
