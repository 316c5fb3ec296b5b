package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCategory is assigned to prompts and templates created with a blank category.
const DefaultCategory = "Uncategorized"

// Prompt is a reusable text snippet with metadata and automatic version history.
type Prompt struct {
	ID        uuid.UUID
	Title     string
	Category  string
	Content   string
	Tags      []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Version is an immutable snapshot of a prompt's content, captured right
// before an update or restore overwrote it. A version never outlives its prompt.
type Version struct {
	ID        uuid.UUID
	PromptID  uuid.UUID
	Content   string
	CreatedAt time.Time
}

// PromptUpdateParams holds the new field values for a prompt update.
// All fields are overwritten; there is no partial patch at this level.
type PromptUpdateParams struct {
	Title    string
	Category string
	Content  string
	Tags     []string
}

// NormalizeCategory applies the blank-category default.
func NormalizeCategory(category string) string {
	if category == "" {
		return DefaultCategory
	}
	return category
}
