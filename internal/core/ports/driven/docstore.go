package driven

import (
	"context"
	"time"

	"github.com/custodia-labs/filesafe/internal/core/domain"
)

// DocumentStore persists vault documents.
// List methods return documents in insertion order, which is the order
// search results are presented in.
type DocumentStore interface {
	// Save creates or updates a document. Updating keeps the original
	// insertion position. Returns domain.ErrDuplicateTitle when the owning
	// profile already has another document with the same title key.
	Save(ctx context.Context, doc *domain.Document) error

	// Get retrieves a document by ID. Returns domain.ErrNotFound if missing.
	Get(ctx context.Context, id string) (*domain.Document, error)

	// Delete removes a document.
	Delete(ctx context.Context, id string) error

	// List returns every document.
	List(ctx context.Context) ([]domain.Document, error)

	// ListByProfile returns the documents owned by a profile.
	ListByProfile(ctx context.Context, profileID string) ([]domain.Document, error)

	// DeleteByProfile removes every document owned by a profile.
	DeleteByProfile(ctx context.Context, profileID string) error

	// ListExpiring returns documents whose expiry date falls between the
	// calendar day of now and now+days (inclusive), earliest first.
	ListExpiring(ctx context.Context, now time.Time, days int) ([]domain.Document, error)

	// FindByTitle returns the profile's document whose title key matches,
	// skipping excludeID. Returns nil and no error when there is none.
	FindByTitle(ctx context.Context, profileID, title, excludeID string) (*domain.Document, error)

	// DeleteAll removes every document.
	DeleteAll(ctx context.Context) error
}
