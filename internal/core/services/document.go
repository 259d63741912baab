package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/filesafe/internal/core/domain"
	"github.com/custodia-labs/filesafe/internal/core/ports/driven"
	"github.com/custodia-labs/filesafe/internal/core/ports/driving"
	"github.com/custodia-labs/filesafe/internal/logger"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService manages vault documents.
type DocumentService struct {
	docStore     driven.DocumentStore
	profileStore driven.ProfileStore
	now          func() time.Time
}

// NewDocumentService creates a new document service.
func NewDocumentService(docStore driven.DocumentStore, profileStore driven.ProfileStore) *DocumentService {
	return &DocumentService{
		docStore:     docStore,
		profileStore: profileStore,
		now:          time.Now,
	}
}

// SetClock replaces the time source. Used by tests.
func (s *DocumentService) SetClock(now func() time.Time) {
	s.now = now
}

// Create validates and stores a new document.
func (s *DocumentService) Create(ctx context.Context, doc domain.Document) (*domain.Document, error) {
	if !doc.Type.IsValid() {
		return nil, fmt.Errorf("%w: unknown document type %q", domain.ErrInvalidInput, doc.Type)
	}
	if _, err := s.profileStore.Get(ctx, doc.ProfileID); err != nil {
		return nil, fmt.Errorf("owner profile %q: %w", doc.ProfileID, err)
	}

	doc.Title = strings.TrimSpace(doc.Title)
	if doc.Title == "" {
		doc.Title = domain.DefaultTitle(doc.Type)
	}
	if err := s.validate(ctx, &doc, ""); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	doc.ID = uuid.NewString()
	doc.CreatedAt = now
	doc.UpdatedAt = now
	doc.CustomFields = normaliseCustomFields(doc.CustomFields)

	if err := s.docStore.Save(ctx, &doc); err != nil {
		return nil, fmt.Errorf("save document: %w", err)
	}
	logger.Debug("Created document %s (%s) for profile %s", doc.ID, doc.Type, doc.ProfileID)
	return &doc, nil
}

// validate enforces required fields and per-profile title uniqueness.
func (s *DocumentService) validate(ctx context.Context, doc *domain.Document, excludeID string) error {
	if missing := doc.MissingRequiredFields(); len(missing) > 0 {
		labels := make([]string, len(missing))
		for i, f := range missing {
			labels[i] = domain.FieldLabel(f)
		}
		return fmt.Errorf("%w: %s", domain.ErrMissingRequiredField, strings.Join(labels, ", "))
	}
	dup, err := s.docStore.FindByTitle(ctx, doc.ProfileID, doc.Title, excludeID)
	if err != nil {
		return fmt.Errorf("check duplicate title: %w", err)
	}
	if dup != nil {
		return fmt.Errorf("%w: %q", domain.ErrDuplicateTitle, dup.Title)
	}
	return nil
}

func normaliseCustomFields(fields []domain.CustomField) []domain.CustomField {
	out := make([]domain.CustomField, 0, len(fields))
	for _, f := range fields {
		if strings.TrimSpace(f.Label) == "" {
			continue
		}
		if f.ID == "" {
			f.ID = uuid.NewString()
		}
		if f.Type == "" {
			f.Type = domain.FieldTypeText
		}
		out = append(out, f)
	}
	return out
}

// Get retrieves a document. It never writes, so browsing does not touch the store.
func (s *DocumentService) Get(ctx context.Context, id string) (*domain.Document, error) {
	return s.docStore.Get(ctx, id)
}

// Open retrieves a document and records the access time for ListRecent.
func (s *DocumentService) Open(ctx context.Context, id string) (*domain.Document, error) {
	doc, err := s.docStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	accessed := s.now().UTC()
	doc.LastAccessedAt = &accessed
	if err := s.docStore.Save(ctx, doc); err != nil {
		logger.Warn("Failed to record access to document %s: %v", id, err)
	}
	return doc, nil
}

// ListRecent returns opened documents, most recent first. A positive limit
// caps the result.
func (s *DocumentService) ListRecent(ctx context.Context, limit int) ([]domain.Document, error) {
	docs, err := s.docStore.List(ctx)
	if err != nil {
		return nil, err
	}
	recent := slices.DeleteFunc(docs, func(d domain.Document) bool { return d.LastAccessedAt == nil })
	slices.SortStableFunc(recent, func(a, b domain.Document) int {
		return b.LastAccessedAt.Compare(*a.LastAccessedAt)
	})
	if limit > 0 && len(recent) > limit {
		recent = recent[:limit]
	}
	return recent, nil
}

// List returns every document.
func (s *DocumentService) List(ctx context.Context) ([]domain.Document, error) {
	return s.docStore.List(ctx)
}

// ListByProfile returns a profile's documents.
func (s *DocumentService) ListByProfile(ctx context.Context, profileID string) ([]domain.Document, error) {
	return s.docStore.ListByProfile(ctx, profileID)
}

// Update replaces a document's fields. The type is fixed at creation.
func (s *DocumentService) Update(ctx context.Context, doc *domain.Document) error {
	if doc == nil || doc.ID == "" {
		return domain.ErrInvalidInput
	}
	existing, err := s.docStore.Get(ctx, doc.ID)
	if err != nil {
		return err
	}
	if doc.Type != existing.Type {
		return fmt.Errorf("%w: document type cannot change from %s to %s",
			domain.ErrInvalidInput, existing.Type, doc.Type)
	}
	if doc.ProfileID != existing.ProfileID {
		if _, err := s.profileStore.Get(ctx, doc.ProfileID); err != nil {
			return fmt.Errorf("owner profile %q: %w", doc.ProfileID, err)
		}
	}

	updated := *doc
	updated.Title = strings.TrimSpace(updated.Title)
	if err := s.validate(ctx, &updated, updated.ID); err != nil {
		return err
	}
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = s.now().UTC()
	updated.CustomFields = normaliseCustomFields(updated.CustomFields)

	if err := s.docStore.Save(ctx, &updated); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	*doc = updated
	return nil
}

// Delete removes a document.
func (s *DocumentService) Delete(ctx context.Context, id string) error {
	if _, err := s.docStore.Get(ctx, id); err != nil {
		return err
	}
	return s.docStore.Delete(ctx, id)
}

// Pin marks a document as pinned.
func (s *DocumentService) Pin(ctx context.Context, id string) error {
	return s.setPinned(ctx, id, true)
}

// Unpin clears the pinned mark.
func (s *DocumentService) Unpin(ctx context.Context, id string) error {
	return s.setPinned(ctx, id, false)
}

func (s *DocumentService) setPinned(ctx context.Context, id string, pinned bool) error {
	doc, err := s.docStore.Get(ctx, id)
	if err != nil {
		return err
	}
	doc.IsPinned = pinned
	doc.PinnedAt = nil
	if pinned {
		at := s.now().UTC()
		doc.PinnedAt = &at
	}
	return s.docStore.Save(ctx, doc)
}

// FindDuplicate returns the profile's document with the same title key.
func (s *DocumentService) FindDuplicate(
	ctx context.Context, title, profileID, excludeID string,
) (*domain.Document, error) {
	if strings.TrimSpace(title) == "" {
		return nil, nil
	}
	return s.docStore.FindByTitle(ctx, profileID, title, excludeID)
}
