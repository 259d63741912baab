package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/filesafe/internal/core/domain"
)

func TestProfileStore_CRUD(t *testing.T) {
	store := NewProfileStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &domain.Profile{ID: "p2", Name: "Sara"}))
	require.NoError(t, store.Save(ctx, &domain.Profile{ID: "p1", Name: "Me"}))
	require.NoError(t, store.Save(ctx, &domain.Profile{ID: "p2", Name: "Sara Doe"}))

	profiles, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "p2", profiles[0].ID)
	assert.Equal(t, "Sara Doe", profiles[0].Name)

	got, err := store.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Me", got.Name)

	require.NoError(t, store.Delete(ctx, "p1"))
	_, err = store.Get(ctx, "p1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, store.DeleteAll(ctx))
	profiles, err = store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, profiles)
}
