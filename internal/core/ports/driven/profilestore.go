package driven

import (
	"context"

	"github.com/custodia-labs/filesafe/internal/core/domain"
)

// ProfileStore persists family-member profiles.
type ProfileStore interface {
	// Save creates or updates a profile.
	Save(ctx context.Context, profile *domain.Profile) error

	// Get retrieves a profile by ID. Returns domain.ErrNotFound if missing.
	Get(ctx context.Context, id string) (*domain.Profile, error)

	// Delete removes a profile. Stores with referential integrity also
	// remove the profile's documents.
	Delete(ctx context.Context, id string) error

	// List returns all profiles in creation order.
	List(ctx context.Context) ([]domain.Profile, error)

	// DeleteAll removes every profile.
	DeleteAll(ctx context.Context) error
}
