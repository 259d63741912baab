package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/filesafe/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/filesafe/internal/core/domain"
	"github.com/custodia-labs/filesafe/internal/core/query"
)

func newSearch(s stores) *SearchService {
	svc := NewSearchService(s.profiles, s.docs)
	svc.SetClock(fixedClock)
	return svc
}

func resultIDs(r *domain.SearchResult) []string {
	ids := make([]string, len(r.Documents))
	for i, d := range r.Documents {
		ids[i] = d.ID
	}
	return ids
}

func TestSearchService_Search(t *testing.T) {
	svc := newSearch(seeded())

	result, err := svc.Search(context.Background(), "Sara's passport number", SampleProfileSelf)

	require.NoError(t, err)
	assert.Equal(t, domain.ResultKindField, result.Kind)
	assert.Equal(t, []string{"doc-4"}, resultIDs(result))
	assert.Equal(t, domain.FieldNumber, result.HighlightedField)
	require.NotNil(t, result.Profile)
	assert.Equal(t, "Sara", result.Profile.Name)
}

func TestSearchService_Search_Relationship(t *testing.T) {
	svc := newSearch(seeded())

	result, err := svc.Search(context.Background(), "kid passport", SampleProfileSelf)

	require.NoError(t, err)
	assert.Equal(t, []string{"doc-6"}, resultIDs(result))
}

func TestSearchService_Search_StoreError(t *testing.T) {
	s := newStores()
	svc := NewSearchService(s.profiles, failingDocStore{memory.NewDocumentStore()})

	_, err := svc.Search(context.Background(), "passport", "p1")

	assert.ErrorIs(t, err, errStoreDown)
}

func TestSearchService_Suggestions(t *testing.T) {
	svc := newSearch(seeded())

	got, err := svc.Suggestions(context.Background(), SampleProfileSelf)
	require.NoError(t, err)
	assert.Equal(t, []string{"🛂 Passport", "🚗 License", "🛡️ Insurance", "💳 Card", query.ExpiringSuggestion}, got)

	got, err = svc.Suggestions(context.Background(), SampleProfileSpouse)
	require.NoError(t, err)
	assert.Equal(t, []string{"🛂 Passport", "🏠 Permit", query.ExpiringSuggestion}, got)
}

func TestSearchService_RunSuggestion_Chip(t *testing.T) {
	svc := newSearch(seeded())

	result, err := svc.RunSuggestion(context.Background(), "🛡️ Insurance", SampleProfileSelf)

	require.NoError(t, err)
	assert.Equal(t, []string{"doc-8", "doc-9"}, resultIDs(result))
	assert.Equal(t, domain.ResultKindMultiple, result.Kind)
}

func TestSearchService_RunSuggestion_Expiring(t *testing.T) {
	svc := newSearch(seeded())

	// Only Alex's passport (2027-01-05) falls within 90 days of testNow.
	for _, label := range []string{query.ExpiringSuggestion, "Next expiring document"} {
		result, err := svc.RunSuggestion(context.Background(), label, SampleProfileSelf)
		require.NoError(t, err)
		assert.Equal(t, []string{"doc-6"}, resultIDs(result), label)
		assert.Equal(t, domain.ResultKindDocument, result.Kind)
		assert.Equal(t, domain.FieldExpiryDate, result.HighlightedField)
		assert.Nil(t, result.Profile)
	}
}

func TestSearchService_Expiring_Horizon(t *testing.T) {
	s := newStores()
	ctx := context.Background()
	for _, d := range []domain.Document{
		{ID: "a", Title: "a", ExpiryDate: "2027-03-01"},
		{ID: "b", Title: "b", ExpiryDate: "2026-10-20"},
	} {
		require.NoError(t, s.docs.Save(ctx, &d))
	}
	svc := newSearch(s)

	assert.Equal(t, []string{"b"}, resultIDs(svc.Expiring(ctx, 0)))
	assert.Equal(t, []string{"b", "a"}, resultIDs(svc.Expiring(ctx, 365)))

	svc.SetExpiringDays(200)
	assert.Equal(t, []string{"b", "a"}, resultIDs(svc.Expiring(ctx, 0)))
}

func TestSearchService_Expiring_FailSoft(t *testing.T) {
	s := newStores()
	svc := NewSearchService(s.profiles, failingDocStore{memory.NewDocumentStore()})

	result := svc.Expiring(context.Background(), 90)

	require.NotNil(t, result)
	assert.Equal(t, domain.ResultKindMultiple, result.Kind)
	assert.NotNil(t, result.Documents)
	assert.Empty(t, result.Documents)
	assert.Equal(t, query.ExpiringSuggestion, result.Query)
}
