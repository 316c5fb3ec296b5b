// Package taxonomy exposes the distinct categories and tags in use, unioned
// across prompts and templates, for filter dropdowns and autocomplete.
package taxonomy

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
)

type taxonomyRepo interface {
	DistinctCategories(ctx context.Context) ([]string, error)
	DistinctTags(ctx context.Context) ([]string, error)
}

// Service provides read-only taxonomy lookups.
type Service struct {
	repo taxonomyRepo
	log  *slog.Logger
}

// NewService creates a new Taxonomy service.
func NewService(log *slog.Logger, repo taxonomyRepo) *Service {
	return &Service{
		repo: repo,
		log:  log.With("service", "taxonomy"),
	}
}

// Categories returns every category referenced by at least one prompt or
// template, sorted, without duplicates.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.repo.DistinctCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("distinct categories: %w", err)
	}
	// Database collation order varies between installs; pin byte order here.
	sort.Strings(categories)
	return categories, nil
}

// Tags returns every tag referenced by at least one prompt or template,
// sorted, without duplicates.
func (s *Service) Tags(ctx context.Context) ([]string, error) {
	tags, err := s.repo.DistinctTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("distinct tags: %w", err)
	}
	sort.Strings(tags)
	return tags, nil
}
