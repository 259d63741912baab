package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/custodia-labs/filesafe/internal/core/domain"
	"github.com/custodia-labs/filesafe/internal/core/ports/driven"
)

// Ensure ProfileStore implements the interface.
var _ driven.ProfileStore = (*ProfileStore)(nil)

// ProfileStore is an in-memory implementation of driven.ProfileStore.
type ProfileStore struct {
	mu       sync.RWMutex
	profiles map[string]domain.Profile
	order    []string
}

// NewProfileStore creates a new in-memory profile store.
func NewProfileStore() *ProfileStore {
	return &ProfileStore{
		profiles: make(map[string]domain.Profile),
	}
}

// Save creates or updates a profile.
func (s *ProfileStore) Save(_ context.Context, profile *domain.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.profiles[profile.ID]; !ok {
		s.order = append(s.order, profile.ID)
	}
	s.profiles[profile.ID] = *profile
	return nil
}

// Get retrieves a profile by ID.
func (s *ProfileStore) Get(_ context.Context, id string) (*domain.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

// Delete removes a profile. Documents are held in a separate store and are
// removed by the caller.
func (s *ProfileStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.profiles, id)
	s.order = slices.DeleteFunc(s.order, func(v string) bool { return v == id })
	return nil
}

// List returns all profiles in creation order.
func (s *ProfileStore) List(_ context.Context) ([]domain.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Profile, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.profiles[id])
	}
	return result, nil
}

// DeleteAll removes every profile.
func (s *ProfileStore) DeleteAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles = make(map[string]domain.Profile)
	s.order = nil
	return nil
}
