// Package fingerprint computes content-addressing digests for files.
// Digests detect unchanged content independent of filesystem timestamps.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// chunkSize bounds memory use while hashing; files are never loaded whole.
const chunkSize = 64 * 1024

// File returns the SHA-256 hex digest of the file's bytes.
// I/O errors (file vanished, permission denied) are propagated to the caller.
func File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file for hashing: %w", err)
	}
	defer func() { _ = f.Close() }()

	h := sha256.New()
	buf := make([]byte, chunkSize)
	if _, err := io.CopyBuffer(h, f, buf); err != nil {
		return "", fmt.Errorf("failed to read file for hashing: %w", err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// Bytes returns the SHA-256 hex digest of an in-memory byte slice.
func Bytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
