package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/filesafe/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/filesafe/internal/core/domain"
)

func TestSettingsService_Get_Defaults(t *testing.T) {
	svc := NewSettingsService(memory.NewConfigStore())

	settings, err := svc.Get()

	require.NoError(t, err)
	assert.Equal(t, svc.GetDefaults(), *settings)
}

func TestSettingsService_SaveAndGet(t *testing.T) {
	svc := NewSettingsService(memory.NewConfigStore())

	want := domain.AppSettings{
		Storage:          domain.StorageSettings{Backend: domain.StorageBackendMemory, DataDir: "/tmp/vault"},
		Search:           domain.SearchSettings{ExpiringDays: 30},
		CurrentProfileID: "p1",
	}
	require.NoError(t, svc.Save(&want))

	got, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, want, *got)
}

func TestSettingsService_Save_Invalid(t *testing.T) {
	svc := NewSettingsService(memory.NewConfigStore())

	bad := domain.DefaultAppSettings()
	bad.Storage.Backend = "postgres"
	assert.ErrorIs(t, svc.Save(&bad), domain.ErrInvalidInput)

	bad = domain.DefaultAppSettings()
	bad.Search.ExpiringDays = 0
	assert.ErrorIs(t, svc.Save(&bad), domain.ErrInvalidInput)

	assert.ErrorIs(t, svc.Save(nil), domain.ErrInvalidInput)
}

func TestSettingsService_Set(t *testing.T) {
	store := memory.NewConfigStore()
	svc := NewSettingsService(store)

	require.NoError(t, svc.Set("search.expiring_days", "45"))
	assert.Equal(t, 45, store.GetInt("search.expiring_days"))

	require.NoError(t, svc.Set("storage.backend", "memory"))
	assert.Equal(t, "memory", store.GetString("storage.backend"))

	assert.ErrorIs(t, svc.Set("search.expiring_days", "soon"), domain.ErrInvalidInput)
	assert.ErrorIs(t, svc.Set("search.expiring_days", "-3"), domain.ErrInvalidInput)
	assert.ErrorIs(t, svc.Set("storage.backend", "postgres"), domain.ErrInvalidInput)
	assert.ErrorIs(t, svc.Set("llm.provider", "x"), domain.ErrInvalidInput)
}

func TestSettingsService_Keys(t *testing.T) {
	svc := NewSettingsService(memory.NewConfigStore())

	for _, key := range svc.Keys() {
		assert.NotEmpty(t, key)
	}
	assert.Contains(t, svc.Keys(), "search.expiring_days")
}
