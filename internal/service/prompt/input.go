package prompt

import (
	"strings"

	"github.com/google/uuid"

	"github.com/promptstash/promptstash-backend/internal/domain"
)

const (
	MaxTitleLen   = 200
	MaxContentLen = 100_000
	MaxTags       = 20
	MaxTagLen     = 50
)

// CreatePromptInput holds the parameters for creating a prompt.
type CreatePromptInput struct {
	Title    string
	Category string
	Content  string
	Tags     []string
}

// Validate checks all fields and collects all errors.
func (i CreatePromptInput) Validate() error {
	errs := validatePromptFields(i.Title, i.Content, i.Tags)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdatePromptInput holds the parameters for updating a prompt.
// All fields are overwritten; there is no partial patch.
type UpdatePromptInput struct {
	PromptID uuid.UUID
	Title    string
	Category string
	Content  string
	Tags     []string
}

// Validate checks all fields and collects all errors.
func (i UpdatePromptInput) Validate() error {
	var errs []domain.FieldError
	if i.PromptID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "prompt_id", Message: "required"})
	}
	errs = append(errs, validatePromptFields(i.Title, i.Content, i.Tags)...)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeletePromptInput holds the parameters for deleting a prompt.
type DeletePromptInput struct {
	PromptID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeletePromptInput) Validate() error {
	if i.PromptID == uuid.Nil {
		return domain.NewValidationError("prompt_id", "required")
	}
	return nil
}

// RestoreVersionInput holds the parameters for restoring a prompt to a
// previous version.
type RestoreVersionInput struct {
	PromptID  uuid.UUID
	VersionID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i RestoreVersionInput) Validate() error {
	var errs []domain.FieldError
	if i.PromptID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "prompt_id", Message: "required"})
	}
	if i.VersionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "version_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validatePromptFields(title, content string, tags []string) []domain.FieldError {
	var errs []domain.FieldError

	if strings.TrimSpace(title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > MaxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if strings.TrimSpace(content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if len(content) > MaxContentLen {
		errs = append(errs, domain.FieldError{Field: "content", Message: "max 100000 characters"})
	}
	if len(tags) > MaxTags {
		errs = append(errs, domain.FieldError{Field: "tags", Message: "max 20 tags"})
	}
	for _, tag := range tags {
		if len(tag) > MaxTagLen {
			errs = append(errs, domain.FieldError{Field: "tags", Message: "tag max 50 characters"})
			break
		}
	}

	return errs
}
