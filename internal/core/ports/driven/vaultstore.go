package driven

import (
	"context"

	"github.com/custodia-labs/filesafe/internal/core/domain"
)

// VaultStore persists the vault lock settings.
type VaultStore interface {
	// Get returns the stored settings. An uninitialised vault yields
	// settings with no PIN verifier, never an error.
	Get(ctx context.Context) (*domain.VaultSettings, error)

	// Save replaces the stored settings.
	Save(ctx context.Context, settings *domain.VaultSettings) error

	// Clear removes the stored settings.
	Clear(ctx context.Context) error
}
