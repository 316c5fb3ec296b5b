package impex

import (
	"fmt"
	"strings"
	"time"

	"github.com/promptstash/promptstash-backend/internal/domain"
)

// SchemaVersion is bumped whenever the document layout changes incompatibly.
const SchemaVersion = 1

const (
	maxLabelLen   = 100
	maxTitleLen   = 200
	maxContentLen = 100_000
	maxTags       = 20
	maxTagLen     = 50
)

// Document is the on-disk export format: all prompts plus the user's custom
// templates. Version history is deliberately not exported; an import starts
// every prompt with a clean history.
type Document struct {
	SchemaVersion int              `json:"schema_version"`
	ExportedAt    time.Time        `json:"exported_at"`
	Prompts       []PromptRecord   `json:"prompts"`
	Templates     []TemplateRecord `json:"templates"`
}

// PromptRecord is one prompt in the document.
type PromptRecord struct {
	Title    string   `json:"title"`
	Category string   `json:"category"`
	Content  string   `json:"content"`
	Tags     []string `json:"tags"`
}

// TemplateRecord is one template in the document.
type TemplateRecord struct {
	Label    string   `json:"label"`
	Title    string   `json:"title"`
	Category string   `json:"category"`
	Content  string   `json:"content"`
	Tags     []string `json:"tags"`
}

// validate reports field errors for one prompt record, prefixed with the
// record's index so a failed import points at the offending entry.
func (r PromptRecord) validate(index int) []domain.FieldError {
	prefix := fmt.Sprintf("prompts[%d]", index)
	return validateRecordFields(prefix, r.Title, r.Content, r.Tags)
}

// validate reports field errors for one template record.
func (r TemplateRecord) validate(index int) []domain.FieldError {
	prefix := fmt.Sprintf("templates[%d]", index)
	errs := validateRecordFields(prefix, r.Title, r.Content, r.Tags)

	if strings.TrimSpace(r.Label) == "" {
		errs = append(errs, domain.FieldError{Field: prefix + ".label", Message: "required"})
	}
	if len(r.Label) > maxLabelLen {
		errs = append(errs, domain.FieldError{Field: prefix + ".label", Message: "max 100 characters"})
	}

	return errs
}

func validateRecordFields(prefix, title, content string, tags []string) []domain.FieldError {
	var errs []domain.FieldError

	if strings.TrimSpace(title) == "" {
		errs = append(errs, domain.FieldError{Field: prefix + ".title", Message: "required"})
	}
	if len(title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: prefix + ".title", Message: "max 200 characters"})
	}
	if strings.TrimSpace(content) == "" {
		errs = append(errs, domain.FieldError{Field: prefix + ".content", Message: "required"})
	}
	if len(content) > maxContentLen {
		errs = append(errs, domain.FieldError{Field: prefix + ".content", Message: "max 100000 characters"})
	}
	if len(tags) > maxTags {
		errs = append(errs, domain.FieldError{Field: prefix + ".tags", Message: "max 20 tags"})
	}
	for _, tag := range tags {
		if len(tag) > maxTagLen {
			errs = append(errs, domain.FieldError{Field: prefix + ".tags", Message: "tag max 50 characters"})
			break
		}
	}

	return errs
}

// normalizeTags trims whitespace, drops empties, and removes duplicates
// while preserving first-occurrence order.
func normalizeTags(tags []string) []string {
	result := []string{}
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		result = append(result, tag)
	}
	return result
}
