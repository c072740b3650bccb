package types

import (
	"path/filepath"
	"strings"
	"time"
)

// DocumentCategory classifies a career document by its likely content.
type DocumentCategory string

// Document categories recognized by the scanner. Categorization is a hint for
// the extraction prompt, not a hard filter.
const (
	CategoryResume      DocumentCategory = "resume"
	CategoryCoverLetter DocumentCategory = "cover_letter"
	CategoryApplication DocumentCategory = "application"
	CategoryProject     DocumentCategory = "project"
	CategoryGeneral     DocumentCategory = "general"
)

// DocumentDescriptor describes a candidate file found by a scan or watch event.
// It is recomputed per event and discarded after use.
type DocumentDescriptor struct {
	Path         string           `json:"file_path"`
	Name         string           `json:"file_name"`
	Category     DocumentCategory `json:"document_category"`
	LastModified time.Time        `json:"last_modified"`
	Size         int64            `json:"file_size"`
}

// categoryKeywords maps filename substrings to categories, checked in order.
var categoryKeywords = []struct {
	keywords []string
	category DocumentCategory
}{
	{[]string{"resume", "cv", "curriculum", "vitae"}, CategoryResume},
	{[]string{"cover", "letter", "coverletter"}, CategoryCoverLetter},
	{[]string{"application", "job", "apply", "applied"}, CategoryApplication},
	{[]string{"project", "portfolio", "work"}, CategoryProject},
}

// CategorizeFilename guesses the document category from filename patterns.
func CategorizeFilename(name string) DocumentCategory {
	lower := strings.ToLower(filepath.Base(name))
	for _, group := range categoryKeywords {
		for _, kw := range group.keywords {
			if strings.Contains(lower, kw) {
				return group.category
			}
		}
	}
	return CategoryGeneral
}
