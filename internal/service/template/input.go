package template

import (
	"strings"

	"github.com/google/uuid"

	"github.com/promptstash/promptstash-backend/internal/domain"
)

const (
	MaxLabelLen   = 100
	MaxTitleLen   = 200
	MaxContentLen = 100_000
	MaxTags       = 20
	MaxTagLen     = 50
)

// CreateTemplateInput holds the parameters for creating a user template.
// Templates created through the service are always custom (mutable).
type CreateTemplateInput struct {
	Label    string
	Title    string
	Category string
	Content  string
	Tags     []string
}

// Validate checks all fields and collects all errors.
func (i CreateTemplateInput) Validate() error {
	errs := validateTemplateFields(i.Label, i.Title, i.Content, i.Tags)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateTemplateInput holds the parameters for updating a template.
// All fields are overwritten; there is no partial patch.
type UpdateTemplateInput struct {
	TemplateID uuid.UUID
	Label      string
	Title      string
	Category   string
	Content    string
	Tags       []string
}

// Validate checks all fields and collects all errors.
func (i UpdateTemplateInput) Validate() error {
	var errs []domain.FieldError
	if i.TemplateID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "template_id", Message: "required"})
	}
	errs = append(errs, validateTemplateFields(i.Label, i.Title, i.Content, i.Tags)...)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteTemplateInput holds the parameters for deleting a template.
type DeleteTemplateInput struct {
	TemplateID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteTemplateInput) Validate() error {
	if i.TemplateID == uuid.Nil {
		return domain.NewValidationError("template_id", "required")
	}
	return nil
}

func validateTemplateFields(label, title, content string, tags []string) []domain.FieldError {
	var errs []domain.FieldError

	if strings.TrimSpace(label) == "" {
		errs = append(errs, domain.FieldError{Field: "label", Message: "required"})
	}
	if len(label) > MaxLabelLen {
		errs = append(errs, domain.FieldError{Field: "label", Message: "max 100 characters"})
	}
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
