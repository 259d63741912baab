package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/filesafe/internal/core/domain"
)

// setupTestStore creates a SQLite store in a temporary directory.
func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, store.Close()) })
	return store
}

// createTestProfile saves a profile to satisfy foreign key constraints.
func createTestProfile(t *testing.T, store *Store, id, name string) {
	t.Helper()
	err := store.ProfileStore().Save(context.Background(), &domain.Profile{
		ID:           id,
		Name:         name,
		Relationship: domain.RelationshipSelf,
		CreatedAt:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
}

func testDocument(id, profileID, title, expiry string) *domain.Document {
	return &domain.Document{
		ID:             id,
		ProfileID:      profileID,
		Type:           domain.DocumentTypePassport,
		Title:          title,
		PassportNumber: "P-" + id,
		ExpiryDate:     expiry,
		CustomFields:   []domain.CustomField{},
	}
}

func docIDs(docs []domain.Document) []string {
	ids := make([]string, len(docs))
	for i := range docs {
		ids[i] = docs[i].ID
	}
	return ids
}

// ==================== Store Creation Tests ====================

func TestNewStore_ErrorHandling(t *testing.T) {
	_, err := NewStore("/invalid\x00path")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "creating data directory")
}

func TestNewStore_Success(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	dbPath := filepath.Join(dir, DatabaseFile)
	assert.Equal(t, dbPath, store.Path())
	assert.FileExists(t, dbPath)
	assert.NoError(t, store.db.Ping())
}

func TestNewStore_MigrationsRecorded(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	version, err := store.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, 2, version)
	require.NoError(t, store.Close())

	// Reopening must not rerun applied migrations.
	store, err = NewStore(dir)
	require.NoError(t, err)
	defer store.Close()
	version, err = store.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, 2, version)
}

func TestNewStore_ForeignKeysEnabled(t *testing.T) {
	store := setupTestStore(t)
	var enabled int
	require.NoError(t, store.db.QueryRow("PRAGMA foreign_keys").Scan(&enabled))
	assert.Equal(t, 1, enabled)
}

// ==================== Profile Store Tests ====================

func TestProfileStore_SaveGetList(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	profiles := store.ProfileStore()

	createTestProfile(t, store, "p1", "Me")
	createTestProfile(t, store, "p2", "Sara")

	got, err := profiles.Get(ctx, "p2")
	require.NoError(t, err)
	assert.Equal(t, "Sara", got.Name)
	assert.Equal(t, domain.RelationshipSelf, got.Relationship)

	// Update keeps the creation position.
	got.Name = "Sarah"
	require.NoError(t, profiles.Save(ctx, got))
	createTestProfile(t, store, "p0", "Alex")

	list, err := profiles.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "p1", list[0].ID)
	assert.Equal(t, "Sarah", list[1].Name)
	assert.Equal(t, "p0", list[2].ID)
}

func TestProfileStore_GetNotFound(t *testing.T) {
	store := setupTestStore(t)
	_, err := store.ProfileStore().Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProfileStore_DeleteCascadesDocuments(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	createTestProfile(t, store, "p1", "Me")
	createTestProfile(t, store, "p2", "Sara")
	docs := store.DocumentStore()
	require.NoError(t, docs.Save(ctx, testDocument("d1", "p1", "Passport", "")))
	require.NoError(t, docs.Save(ctx, testDocument("d2", "p2", "Passport", "")))

	require.NoError(t, store.ProfileStore().Delete(ctx, "p1"))

	all, err := docs.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"d2"}, docIDs(all))
}

func TestProfileStore_DeleteAll(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	createTestProfile(t, store, "p1", "Me")
	require.NoError(t, store.DocumentStore().Save(ctx, testDocument("d1", "p1", "Passport", "")))

	require.NoError(t, store.ProfileStore().DeleteAll(ctx))

	profiles, err := store.ProfileStore().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, profiles)
	docs, err := store.DocumentStore().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

// ==================== Document Store Tests ====================

func TestDocumentStore_SaveAndGet(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	createTestProfile(t, store, "p1", "Me")

	pinned := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	doc := testDocument("d1", "p1", "My Passport", "2030-05-01")
	doc.IsPinned = true
	doc.PinnedAt = &pinned
	doc.CustomFields = []domain.CustomField{{ID: "c1", Label: "Locker", Value: "42", Type: domain.FieldTypeText}}
	require.NoError(t, store.DocumentStore().Save(ctx, doc))

	got, err := store.DocumentStore().Get(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, "P-d1", got.PassportNumber)
	assert.True(t, got.IsPinned)
	require.NotNil(t, got.PinnedAt)
	assert.True(t, pinned.Equal(*got.PinnedAt))
	assert.Equal(t, doc.CustomFields, got.CustomFields)
}

func TestDocumentStore_GetNotFound(t *testing.T) {
	store := setupTestStore(t)
	_, err := store.DocumentStore().Get(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentStore_UnknownProfile(t *testing.T) {
	store := setupTestStore(t)
	err := store.DocumentStore().Save(context.Background(), testDocument("d1", "ghost", "Passport", ""))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentStore_DuplicateTitle(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	createTestProfile(t, store, "p1", "Me")
	createTestProfile(t, store, "p2", "Sara")
	docs := store.DocumentStore()

	require.NoError(t, docs.Save(ctx, testDocument("d1", "p1", "Passport", "")))
	err := docs.Save(ctx, testDocument("d2", "p1", "  PASSPORT ", ""))
	assert.ErrorIs(t, err, domain.ErrDuplicateTitle)

	// Same title under another profile is fine.
	assert.NoError(t, docs.Save(ctx, testDocument("d3", "p2", "Passport", "")))
}

func TestDocumentStore_UpdateKeepsOrder(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	createTestProfile(t, store, "p1", "Me")
	docs := store.DocumentStore()
	require.NoError(t, docs.Save(ctx, testDocument("a", "p1", "A", "")))
	require.NoError(t, docs.Save(ctx, testDocument("b", "p1", "B", "")))

	updated := testDocument("a", "p1", "A renamed", "")
	require.NoError(t, docs.Save(ctx, updated))

	all, err := docs.ListByProfile(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, docIDs(all))
	assert.Equal(t, "A renamed", all[0].Title)
}

func TestDocumentStore_ListExpiring(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	createTestProfile(t, store, "p1", "Me")
	docs := store.DocumentStore()
	now := time.Date(2026, 10, 15, 18, 30, 0, 0, time.UTC)

	require.NoError(t, docs.Save(ctx, testDocument("late", "p1", "Late", "2027-01-13")))
	require.NoError(t, docs.Save(ctx, testDocument("past", "p1", "Past", "2026-10-14")))
	require.NoError(t, docs.Save(ctx, testDocument("today", "p1", "Today", "2026-10-15")))
	require.NoError(t, docs.Save(ctx, testDocument("beyond", "p1", "Beyond", "2027-01-14")))
	require.NoError(t, docs.Save(ctx, testDocument("bad", "p1", "Bad", "soon")))
	require.NoError(t, docs.Save(ctx, testDocument("tie", "p1", "Tie", "2027-01-13")))

	got, err := docs.ListExpiring(ctx, now, 90)
	require.NoError(t, err)
	assert.Equal(t, []string{"today", "late", "tie"}, docIDs(got))
}

func TestDocumentStore_FindByTitle(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	createTestProfile(t, store, "p1", "Me")
	docs := store.DocumentStore()
	require.NoError(t, docs.Save(ctx, testDocument("d1", "p1", "Health Card", "")))

	found, err := docs.FindByTitle(ctx, "p1", " health card", "")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "d1", found.ID)

	found, err = docs.FindByTitle(ctx, "p1", "Health Card", "d1")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestDocumentStore_DeleteByProfileAndAll(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	createTestProfile(t, store, "p1", "Me")
	createTestProfile(t, store, "p2", "Sara")
	docs := store.DocumentStore()
	require.NoError(t, docs.Save(ctx, testDocument("d1", "p1", "One", "")))
	require.NoError(t, docs.Save(ctx, testDocument("d2", "p2", "Two", "")))
	require.NoError(t, docs.Save(ctx, testDocument("d3", "p2", "Three", "")))

	require.NoError(t, docs.Delete(ctx, "d3"))
	require.NoError(t, docs.DeleteByProfile(ctx, "p1"))
	all, err := docs.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"d2"}, docIDs(all))

	require.NoError(t, docs.DeleteAll(ctx))
	all, err = docs.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

// ==================== Vault Store Tests ====================

func TestVaultStore_RoundTrip(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	vault := store.VaultStore()

	empty, err := vault.Get(ctx)
	require.NoError(t, err)
	assert.False(t, empty.Initialized())

	settings := &domain.VaultSettings{
		PINVerifier:       []byte{1, 2, 3},
		PINSalt:           []byte{4, 5},
		RecoveryVerifier:  []byte{6},
		RecoverySalt:      []byte{7},
		AutoLockSeconds:   120,
		BiometricsEnabled: true,
	}
	require.NoError(t, vault.Save(ctx, settings))

	got, err := vault.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings, got)

	require.NoError(t, vault.Clear(ctx))
	got, err = vault.Get(ctx)
	require.NoError(t, err)
	assert.False(t, got.Initialized())
}

func TestVaultStore_FailedAttemptsSurviveReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	failedAt := time.Date(2026, 10, 15, 9, 0, 30, 0, time.UTC)

	store, err := NewStore(dir)
	require.NoError(t, err)
	settings := &domain.VaultSettings{PINVerifier: []byte{1}, PINSalt: []byte{2}}
	settings.RecordFailure(failedAt)
	settings.RecordFailure(failedAt)
	require.NoError(t, store.VaultStore().Save(ctx, settings))
	require.NoError(t, store.Close())

	store, err = NewStore(dir)
	require.NoError(t, err)
	defer store.Close()
	got, err := store.VaultStore().Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, got.FailedAttempts)
	assert.True(t, failedAt.Equal(got.LastFailedAt))

	got.ClearFailures()
	require.NoError(t, store.VaultStore().Save(ctx, got))
	got, err = store.VaultStore().Get(ctx)
	require.NoError(t, err)
	assert.Zero(t, got.FailedAttempts)
	assert.True(t, got.LastFailedAt.IsZero())
}
