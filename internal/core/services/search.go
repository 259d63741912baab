package services

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/filesafe/internal/core/domain"
	"github.com/custodia-labs/filesafe/internal/core/ports/driven"
	"github.com/custodia-labs/filesafe/internal/core/ports/driving"
	"github.com/custodia-labs/filesafe/internal/core/query"
	"github.com/custodia-labs/filesafe/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService answers vault queries over the stored profiles and documents.
type SearchService struct {
	profileStore driven.ProfileStore
	docStore     driven.DocumentStore
	searcher     *query.Searcher
	expiringDays int
	now          func() time.Time
}

// NewSearchService creates a new search service using the default lexicon.
func NewSearchService(profileStore driven.ProfileStore, docStore driven.DocumentStore) *SearchService {
	return &SearchService{
		profileStore: profileStore,
		docStore:     docStore,
		searcher:     query.NewSearcher(query.DefaultLexicon()),
		expiringDays: domain.DefaultExpiringDays,
		now:          time.Now,
	}
}

// SetExpiringDays sets the default horizon of the expiring shortcut.
// Non-positive values are ignored.
func (s *SearchService) SetExpiringDays(days int) {
	if days > 0 {
		s.expiringDays = days
	}
}

// SetClock replaces the time source. Used by tests.
func (s *SearchService) SetClock(now func() time.Time) {
	s.now = now
}

// snapshot loads every profile and document.
func (s *SearchService) snapshot(ctx context.Context) ([]domain.Profile, []domain.Document, error) {
	profiles, err := s.profileStore.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list profiles: %w", err)
	}
	docs, err := s.docStore.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list documents: %w", err)
	}
	return profiles, docs, nil
}

// Search parses the query and resolves it against the current snapshot.
func (s *SearchService) Search(ctx context.Context, q, activeProfileID string) (*domain.SearchResult, error) {
	logger.Section("Search")
	logger.Debug("Query: %q (active profile %q)", q, activeProfileID)

	profiles, docs, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	intent := s.searcher.Parse(q, profiles, activeProfileID)
	logger.Debug("Intent: profile=%q type=%q field=%q action=%s",
		intent.ProfileID, intent.DocumentType, intent.FieldName, intent.Action)

	result := query.Resolve(intent, docs, profiles, q)
	logger.Debug("Resolved %d of %d documents as %s", len(result.Documents), len(docs), result.Kind)
	return &result, nil
}

// Suggestions returns the quick-search chips for the active profile.
func (s *SearchService) Suggestions(ctx context.Context, activeProfileID string) ([]string, error) {
	docs, err := s.docStore.ListByProfile(ctx, activeProfileID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return query.Suggest(domain.Profile{ID: activeProfileID}, docs), nil
}

// RunSuggestion executes a chip label.
func (s *SearchService) RunSuggestion(ctx context.Context, label, activeProfileID string) (*domain.SearchResult, error) {
	if query.IsExpiringSuggestion(label) {
		return s.Expiring(ctx, 0), nil
	}
	return s.Search(ctx, label, activeProfileID)
}

// Expiring lists documents expiring within days, earliest first.
// It reads the store directly rather than the search snapshot and never
// fails: errors are logged and yield an empty result.
func (s *SearchService) Expiring(ctx context.Context, days int) *domain.SearchResult {
	if days <= 0 {
		days = s.expiringDays
	}

	docs, err := s.docStore.ListExpiring(ctx, s.now(), days)
	if err != nil {
		logger.Warn("Failed to load expiring documents: %v", err)
		docs = nil
	}
	if docs == nil {
		docs = []domain.Document{}
	}

	kind := domain.ResultKindMultiple
	if len(docs) == 1 {
		kind = domain.ResultKindDocument
	}
	return &domain.SearchResult{
		Kind:             kind,
		Documents:        docs,
		HighlightedField: domain.FieldExpiryDate,
		Query:            query.ExpiringSuggestion,
	}
}
