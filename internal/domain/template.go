package domain

import (
	"time"

	"github.com/google/uuid"
)

// Template is a reusable starting point for new prompts. Seeded templates
// (IsCustom=false) ship with the application and cannot be modified or deleted;
// user-created templates are fully mutable. Templates carry no version history.
type Template struct {
	ID        uuid.UUID
	Label     string
	Title     string
	Category  string
	Content   string
	Tags      []string
	IsCustom  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TemplateUpdateParams holds the new field values for a template update.
type TemplateUpdateParams struct {
	Label    string
	Title    string
	Category string
	Content  string
	Tags     []string
}
