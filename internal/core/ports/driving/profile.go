package driving

import (
	"context"

	"github.com/custodia-labs/filesafe/internal/core/domain"
)

// ProfileService manages family-member profiles and the active profile.
type ProfileService interface {
	// Create adds a profile. Name is required.
	Create(ctx context.Context, name string, relationship domain.Relationship, avatar string) (*domain.Profile, error)

	// Get retrieves a profile by ID.
	Get(ctx context.Context, id string) (*domain.Profile, error)

	// List returns all profiles in creation order.
	List(ctx context.Context) ([]domain.Profile, error)

	// Update changes a profile's name, relationship or avatar.
	Update(ctx context.Context, profile *domain.Profile) error

	// Delete removes a profile together with its documents.
	Delete(ctx context.Context, id string) error

	// Current returns the active profile, falling back to the first profile.
	// Returns domain.ErrNotFound when there are no profiles.
	Current(ctx context.Context) (*domain.Profile, error)

	// SetCurrent makes a profile active.
	SetCurrent(ctx context.Context, id string) error
}
