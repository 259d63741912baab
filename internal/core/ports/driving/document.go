package driving

import (
	"context"

	"github.com/custodia-labs/filesafe/internal/core/domain"
)

// DocumentService manages vault documents.
type DocumentService interface {
	// Create adds a document to an existing profile and returns it with
	// its ID and timestamps set.
	Create(ctx context.Context, doc domain.Document) (*domain.Document, error)

	// Get retrieves a document without modifying it.
	Get(ctx context.Context, id string) (*domain.Document, error)

	// Open retrieves a document and records the access time.
	Open(ctx context.Context, id string) (*domain.Document, error)

	// ListRecent returns opened documents, most recently opened first.
	// A positive limit caps the result.
	ListRecent(ctx context.Context, limit int) ([]domain.Document, error)

	// List returns every document.
	List(ctx context.Context) ([]domain.Document, error)

	// ListByProfile returns a profile's documents.
	ListByProfile(ctx context.Context, profileID string) ([]domain.Document, error)

	// Update replaces a document's fields. The type cannot change.
	Update(ctx context.Context, doc *domain.Document) error

	// Delete removes a document.
	Delete(ctx context.Context, id string) error

	// Pin marks a document as pinned.
	Pin(ctx context.Context, id string) error

	// Unpin clears the pinned mark.
	Unpin(ctx context.Context, id string) error

	// FindDuplicate returns the profile's document with the same title key,
	// ignoring excludeID, or nil when the title is free.
	FindDuplicate(ctx context.Context, title, profileID, excludeID string) (*domain.Document, error)
}
