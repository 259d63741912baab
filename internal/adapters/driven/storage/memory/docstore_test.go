package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/filesafe/internal/core/domain"
)

func docIDs(docs []domain.Document) []string {
	ids := make([]string, len(docs))
	for i, d := range docs {
		ids[i] = d.ID
	}
	return ids
}

func TestDocumentStore_SaveGet(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	doc := &domain.Document{ID: "d1", ProfileID: "p1", Type: domain.DocumentTypePassport, Title: "Passport"}
	require.NoError(t, store.Save(ctx, doc))

	got, err := store.Get(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, "Passport", got.Title)
	assert.NotNil(t, got.CustomFields)

	_, err = store.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentStore_InsertionOrderSurvivesUpdate(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	for _, id := range []string{"b", "a", "c"} {
		require.NoError(t, store.Save(ctx, &domain.Document{ID: id, ProfileID: "p1", Title: id}))
	}
	require.NoError(t, store.Save(ctx, &domain.Document{ID: "b", ProfileID: "p1", Title: "renamed"}))

	docs, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c"}, docIDs(docs))
	assert.Equal(t, "renamed", docs[0].Title)
}

func TestDocumentStore_DuplicateTitle(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &domain.Document{ID: "d1", ProfileID: "p1", Title: "Passport"}))
	// Same title in another profile is allowed.
	require.NoError(t, store.Save(ctx, &domain.Document{ID: "d2", ProfileID: "p2", Title: "Passport"}))

	err := store.Save(ctx, &domain.Document{ID: "d3", ProfileID: "p1", Title: "  passport "})
	assert.ErrorIs(t, err, domain.ErrDuplicateTitle)
}

func TestDocumentStore_FindByTitle(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, &domain.Document{ID: "d1", ProfileID: "p1", Title: "Passport"}))

	found, err := store.FindByTitle(ctx, "p1", "PASSPORT", "")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "d1", found.ID)

	found, err = store.FindByTitle(ctx, "p1", "Passport", "d1")
	require.NoError(t, err)
	assert.Nil(t, found)

	found, err = store.FindByTitle(ctx, "p2", "Passport", "")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestDocumentStore_ProfileScoped(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, &domain.Document{ID: "d1", ProfileID: "p1", Title: "A"}))
	require.NoError(t, store.Save(ctx, &domain.Document{ID: "d2", ProfileID: "p2", Title: "B"}))
	require.NoError(t, store.Save(ctx, &domain.Document{ID: "d3", ProfileID: "p1", Title: "C"}))

	docs, err := store.ListByProfile(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, []string{"d1", "d3"}, docIDs(docs))

	require.NoError(t, store.DeleteByProfile(ctx, "p1"))
	docs, err = store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"d2"}, docIDs(docs))

	require.NoError(t, store.DeleteAll(ctx))
	docs, err = store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestDocumentStore_ListExpiring(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()
	now := time.Date(2026, 10, 15, 18, 30, 0, 0, time.UTC)

	fixtures := []domain.Document{
		{ID: "far", ExpiryDate: "2027-06-01"},
		{ID: "edge", ExpiryDate: "2027-01-13"},
		{ID: "today", ExpiryDate: "2026-10-15"},
		{ID: "past", ExpiryDate: "2026-10-14"},
		{ID: "none"},
		{ID: "soon", ExpiryDate: "2026-11-01"},
	}
	for i := range fixtures {
		fixtures[i].Title = fixtures[i].ID
		require.NoError(t, store.Save(ctx, &fixtures[i]))
	}

	docs, err := store.ListExpiring(ctx, now, 90)
	require.NoError(t, err)
	assert.Equal(t, []string{"today", "soon", "edge"}, docIDs(docs))
}

func TestDocumentStore_ReturnsCopies(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()
	doc := &domain.Document{
		ID: "d1", ProfileID: "p1", Title: "Policy",
		CustomFields: []domain.CustomField{{ID: "c1", Label: "Vehicle", Value: "Car"}},
	}
	require.NoError(t, store.Save(ctx, doc))
	doc.CustomFields[0].Value = "mutated"

	got, err := store.Get(ctx, "d1")
	require.NoError(t, err)
	got.CustomFields[0].Value = "mutated again"

	again, err := store.Get(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, "Car", again.CustomFields[0].Value)
}
