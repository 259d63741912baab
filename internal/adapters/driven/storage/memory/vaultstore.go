package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/custodia-labs/filesafe/internal/core/domain"
	"github.com/custodia-labs/filesafe/internal/core/ports/driven"
)

// Ensure VaultStore implements the interface.
var _ driven.VaultStore = (*VaultStore)(nil)

// VaultStore is an in-memory implementation of driven.VaultStore.
type VaultStore struct {
	mu       sync.RWMutex
	settings domain.VaultSettings
}

// NewVaultStore creates a new in-memory vault store.
func NewVaultStore() *VaultStore {
	return &VaultStore{}
}

// Get returns a copy of the stored settings.
func (s *VaultStore) Get(_ context.Context) (*domain.VaultSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v := cloneVault(s.settings)
	return &v, nil
}

// Save replaces the stored settings.
func (s *VaultStore) Save(_ context.Context, settings *domain.VaultSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = cloneVault(*settings)
	return nil
}

// Clear removes the stored settings.
func (s *VaultStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = domain.VaultSettings{}
	return nil
}

func cloneVault(v domain.VaultSettings) domain.VaultSettings {
	v.PINVerifier = slices.Clone(v.PINVerifier)
	v.PINSalt = slices.Clone(v.PINSalt)
	v.RecoveryVerifier = slices.Clone(v.RecoveryVerifier)
	v.RecoverySalt = slices.Clone(v.RecoverySalt)
	return v
}
