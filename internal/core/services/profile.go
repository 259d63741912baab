package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/filesafe/internal/core/domain"
	"github.com/custodia-labs/filesafe/internal/core/ports/driven"
	"github.com/custodia-labs/filesafe/internal/core/ports/driving"
)

// Ensure ProfileService implements the interface.
var _ driving.ProfileService = (*ProfileService)(nil)

// keyCurrentProfile holds the active profile ID in the config store.
const keyCurrentProfile = "profile.current"

// ProfileService manages profiles and tracks the active one.
type ProfileService struct {
	profileStore driven.ProfileStore
	docStore     driven.DocumentStore
	configStore  driven.ConfigStore
	now          func() time.Time
}

// NewProfileService creates a new profile service.
func NewProfileService(
	profileStore driven.ProfileStore,
	docStore driven.DocumentStore,
	configStore driven.ConfigStore,
) *ProfileService {
	return &ProfileService{
		profileStore: profileStore,
		docStore:     docStore,
		configStore:  configStore,
		now:          time.Now,
	}
}

func validateProfile(name string, rel domain.Relationship) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: profile name is required", domain.ErrInvalidInput)
	}
	if !rel.IsValid() {
		return fmt.Errorf("%w: unknown relationship %q", domain.ErrInvalidInput, rel)
	}
	return nil
}

// Create adds a profile.
func (s *ProfileService) Create(
	ctx context.Context, name string, relationship domain.Relationship, avatar string,
) (*domain.Profile, error) {
	if err := validateProfile(name, relationship); err != nil {
		return nil, err
	}
	profile := &domain.Profile{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(name),
		Relationship: relationship,
		Avatar:       avatar,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.profileStore.Save(ctx, profile); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	return profile, nil
}

// Get retrieves a profile by ID.
func (s *ProfileService) Get(ctx context.Context, id string) (*domain.Profile, error) {
	return s.profileStore.Get(ctx, id)
}

// List returns all profiles.
func (s *ProfileService) List(ctx context.Context) ([]domain.Profile, error) {
	return s.profileStore.List(ctx)
}

// Update changes a profile. The ID and creation time are kept.
func (s *ProfileService) Update(ctx context.Context, profile *domain.Profile) error {
	if profile == nil || profile.ID == "" {
		return domain.ErrInvalidInput
	}
	if err := validateProfile(profile.Name, profile.Relationship); err != nil {
		return err
	}
	existing, err := s.profileStore.Get(ctx, profile.ID)
	if err != nil {
		return err
	}
	existing.Name = strings.TrimSpace(profile.Name)
	existing.Relationship = profile.Relationship
	existing.Avatar = profile.Avatar
	return s.profileStore.Save(ctx, existing)
}

// Delete removes a profile and every document it owns.
func (s *ProfileService) Delete(ctx context.Context, id string) error {
	if _, err := s.profileStore.Get(ctx, id); err != nil {
		return err
	}
	if err := s.docStore.DeleteByProfile(ctx, id); err != nil {
		return fmt.Errorf("delete documents of profile %s: %w", id, err)
	}
	if err := s.profileStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete profile %s: %w", id, err)
	}
	if s.configStore.GetString(keyCurrentProfile) == id {
		if err := s.configStore.Delete(keyCurrentProfile); err != nil {
			return fmt.Errorf("clear current profile: %w", err)
		}
	}
	return nil
}

// Current returns the active profile. A missing or stale selection falls
// back to the first profile.
func (s *ProfileService) Current(ctx context.Context) (*domain.Profile, error) {
	if id := s.configStore.GetString(keyCurrentProfile); id != "" {
		profile, err := s.profileStore.Get(ctx, id)
		if err == nil {
			return profile, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}

	profiles, err := s.profileStore.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, fmt.Errorf("%w: no profiles", domain.ErrNotFound)
	}
	return &profiles[0], nil
}

// SetCurrent makes a profile active.
func (s *ProfileService) SetCurrent(ctx context.Context, id string) error {
	if _, err := s.profileStore.Get(ctx, id); err != nil {
		return err
	}
	return s.configStore.Set(keyCurrentProfile, id)
}
