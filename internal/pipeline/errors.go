package pipeline

import "fmt"

// ValidationError means the input file was never identified as processable:
// missing, not a regular file, oversized, or an unsupported type. Validation
// failures are terminal, never retried, and leave the ledger untouched.
type ValidationError struct {
	Path   string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Path, e.Reason)
}
