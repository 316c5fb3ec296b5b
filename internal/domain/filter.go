package domain

// PromptFilter narrows prompt listings. Zero values mean "no filter".
// Results are always ordered by UpdatedAt descending.
type PromptFilter struct {
	Category string
	Tag      string
	Search   string // substring match on title, case-insensitive
	Limit    int
	Offset   int
}
