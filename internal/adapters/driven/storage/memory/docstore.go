package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/custodia-labs/filesafe/internal/core/domain"
	"github.com/custodia-labs/filesafe/internal/core/ports/driven"
	"github.com/custodia-labs/filesafe/internal/core/query"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is an in-memory implementation of driven.DocumentStore.
type DocumentStore struct {
	mu        sync.RWMutex
	documents map[string]domain.Document
	order     []string
}

// NewDocumentStore creates a new in-memory document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		documents: make(map[string]domain.Document),
	}
}

// Save stores or updates a document, enforcing per-profile title uniqueness.
func (s *DocumentStore) Save(_ context.Context, doc *domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := domain.TitleKey(doc.Title)
	for id, other := range s.documents {
		if id != doc.ID && other.ProfileID == doc.ProfileID && domain.TitleKey(other.Title) == key {
			return domain.ErrDuplicateTitle
		}
	}
	if _, ok := s.documents[doc.ID]; !ok {
		s.order = append(s.order, doc.ID)
	}
	s.documents[doc.ID] = cloneDocument(*doc)
	return nil
}

// cloneDocument copies the slice and pointer fields so callers cannot
// mutate stored state.
func cloneDocument(d domain.Document) domain.Document {
	d.CustomFields = slices.Clone(d.CustomFields)
	if d.CustomFields == nil {
		d.CustomFields = []domain.CustomField{}
	}
	if d.PinnedAt != nil {
		t := *d.PinnedAt
		d.PinnedAt = &t
	}
	if d.LastAccessedAt != nil {
		t := *d.LastAccessedAt
		d.LastAccessedAt = &t
	}
	return d
}

// Get retrieves a document by ID.
func (s *DocumentStore) Get(_ context.Context, id string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.documents[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	doc = cloneDocument(doc)
	return &doc, nil
}

// Delete removes a document.
func (s *DocumentStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.documents, id)
	s.order = slices.DeleteFunc(s.order, func(v string) bool { return v == id })
	return nil
}

// filter returns matching documents in insertion order.
func (s *DocumentStore) filter(keep func(domain.Document) bool) []domain.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Document, 0)
	for _, id := range s.order {
		if d := s.documents[id]; keep(d) {
			result = append(result, cloneDocument(d))
		}
	}
	return result
}

// List returns every document.
func (s *DocumentStore) List(_ context.Context) ([]domain.Document, error) {
	return s.filter(func(domain.Document) bool { return true }), nil
}

// ListByProfile returns the documents owned by a profile.
func (s *DocumentStore) ListByProfile(_ context.Context, profileID string) ([]domain.Document, error) {
	return s.filter(func(d domain.Document) bool { return d.ProfileID == profileID }), nil
}

// DeleteByProfile removes every document owned by a profile.
func (s *DocumentStore) DeleteByProfile(_ context.Context, profileID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order = slices.DeleteFunc(s.order, func(id string) bool {
		if s.documents[id].ProfileID == profileID {
			delete(s.documents, id)
			return true
		}
		return false
	})
	return nil
}

// ListExpiring returns documents expiring within the window, earliest first.
func (s *DocumentStore) ListExpiring(_ context.Context, now time.Time, days int) ([]domain.Document, error) {
	docs := s.filter(func(d domain.Document) bool {
		return domain.ExpiresWithin(d.ExpiryDate, now, days)
	})
	return query.SortByExpiry(docs, "").Documents, nil
}

// FindByTitle returns the profile's document with the same title key.
func (s *DocumentStore) FindByTitle(_ context.Context, profileID, title, excludeID string) (*domain.Document, error) {
	key := domain.TitleKey(title)
	matches := s.filter(func(d domain.Document) bool {
		return d.ProfileID == profileID && d.ID != excludeID && domain.TitleKey(d.Title) == key
	})
	if len(matches) == 0 {
		return nil, nil
	}
	return &matches[0], nil
}

// DeleteAll removes every document.
func (s *DocumentStore) DeleteAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents = make(map[string]domain.Document)
	s.order = nil
	return nil
}
