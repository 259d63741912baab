package services

import (
	"fmt"
	"strconv"

	"github.com/custodia-labs/filesafe/internal/core/domain"
	"github.com/custodia-labs/filesafe/internal/core/ports/driven"
	"github.com/custodia-labs/filesafe/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyStorageBackend = "storage.backend"
	keyStorageDataDir = "storage.data_dir"
	keyExpiringDays   = "search.expiring_days"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings, filling gaps with defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	backend := domain.StorageBackend(s.configStore.GetString(keyStorageBackend))
	if !backend.IsValid() {
		backend = defaults.Storage.Backend
	}
	days := s.configStore.GetInt(keyExpiringDays)
	if days <= 0 {
		days = defaults.Search.ExpiringDays
	}

	return &domain.AppSettings{
		Storage: domain.StorageSettings{
			Backend: backend,
			DataDir: s.configStore.GetString(keyStorageDataDir),
		},
		Search: domain.SearchSettings{
			ExpiringDays: days,
		},
		CurrentProfileID: s.configStore.GetString(keyCurrentProfile),
	}, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if settings == nil {
		return domain.ErrInvalidInput
	}
	if !settings.Storage.Backend.IsValid() {
		return fmt.Errorf("%w: unknown storage backend %q", domain.ErrInvalidInput, settings.Storage.Backend)
	}
	if settings.Search.ExpiringDays <= 0 {
		return fmt.Errorf("%w: expiring days must be positive", domain.ErrInvalidInput)
	}

	if err := s.configStore.Set(keyStorageBackend, settings.Storage.Backend.String()); err != nil {
		return fmt.Errorf("save storage backend: %w", err)
	}
	if err := s.configStore.Set(keyStorageDataDir, settings.Storage.DataDir); err != nil {
		return fmt.Errorf("save data dir: %w", err)
	}
	if err := s.configStore.Set(keyExpiringDays, settings.Search.ExpiringDays); err != nil {
		return fmt.Errorf("save expiring days: %w", err)
	}
	if settings.CurrentProfileID != "" {
		if err := s.configStore.Set(keyCurrentProfile, settings.CurrentProfileID); err != nil {
			return fmt.Errorf("save current profile: %w", err)
		}
	}
	return nil
}

// Set parses and stores one setting.
func (s *SettingsService) Set(key, value string) error {
	switch key {
	case keyStorageBackend:
		backend := domain.StorageBackend(value)
		if !backend.IsValid() {
			return fmt.Errorf("%w: unknown storage backend %q", domain.ErrInvalidInput, value)
		}
		return s.configStore.Set(key, backend.String())
	case keyStorageDataDir:
		return s.configStore.Set(key, value)
	case keyExpiringDays:
		days, err := strconv.Atoi(value)
		if err != nil || days <= 0 {
			return fmt.Errorf("%w: expiring days must be a positive integer", domain.ErrInvalidInput)
		}
		return s.configStore.Set(key, days)
	case keyCurrentProfile:
		return s.configStore.Set(key, value)
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
}

// Keys lists the settable keys.
func (s *SettingsService) Keys() []string {
	return []string{keyStorageBackend, keyStorageDataDir, keyExpiringDays, keyCurrentProfile}
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}
