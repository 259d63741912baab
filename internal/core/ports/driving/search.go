package driving

import (
	"context"

	"github.com/custodia-labs/filesafe/internal/core/domain"
)

// SearchService answers natural-language vault queries.
type SearchService interface {
	// Search parses the query and resolves it against every profile and document.
	// activeProfileID is used when the query names no one.
	Search(ctx context.Context, query, activeProfileID string) (*domain.SearchResult, error)

	// Suggestions returns the quick-search chips for the active profile.
	Suggestions(ctx context.Context, activeProfileID string) ([]string, error)

	// RunSuggestion executes a chip. The expiring chip is answered by Expiring.
	RunSuggestion(ctx context.Context, label, activeProfileID string) (*domain.SearchResult, error)

	// Expiring lists documents expiring within days (0 uses the configured default).
	// Store failures are logged and produce an empty result.
	Expiring(ctx context.Context, days int) *domain.SearchResult
}
