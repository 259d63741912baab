package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sqlite3 "modernc.org/sqlite/lib"

	"github.com/custodia-labs/filesafe/internal/core/domain"
	"github.com/custodia-labs/filesafe/internal/core/ports/driven"
)

// expiryAtLayout sorts lexically in time order.
const expiryAtLayout = "2006-01-02T15:04:05Z"

// documentStore implements driven.DocumentStore.
type documentStore struct {
	store *Store
}

var _ driven.DocumentStore = (*documentStore)(nil)

// Save creates or updates a document. The upsert keeps seq, so an updated
// document stays in its original position.
func (s *documentStore) Save(ctx context.Context, doc *domain.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshalling document: %w", err)
	}

	var expiryDay, expiryAt string
	if t, ok := domain.ParseDate(doc.ExpiryDate); ok {
		expiryDay = domain.StartOfDay(t).Format(domain.DateLayout)
		expiryAt = t.UTC().Format(expiryAtLayout)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO documents (id, profile_id, type, title, title_key, expiry_day, expiry_at, data)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			profile_id = excluded.profile_id,
			type = excluded.type,
			title = excluded.title,
			title_key = excluded.title_key,
			expiry_day = excluded.expiry_day,
			expiry_at = excluded.expiry_at,
			data = excluded.data
	`, doc.ID, doc.ProfileID, string(doc.Type), doc.Title, domain.TitleKey(doc.Title), expiryDay, expiryAt, string(data))
	switch constraintCode(err) {
	case 0:
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE:
		return domain.ErrDuplicateTitle
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return fmt.Errorf("profile %q: %w", doc.ProfileID, domain.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("saving document: %w", err)
	}
	return nil
}

// Get retrieves a document by ID.
func (s *documentStore) Get(ctx context.Context, id string) (*domain.Document, error) {
	var data string
	err := s.store.db.QueryRowContext(ctx, "SELECT data FROM documents WHERE id = ?", id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting document: %w", err)
	}
	return decodeDocument(data)
}

// Delete removes a document.
func (s *documentStore) Delete(ctx context.Context, id string) error {
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM documents WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting document: %w", err)
	}
	return nil
}

// List returns every document in insertion order.
func (s *documentStore) List(ctx context.Context) ([]domain.Document, error) {
	return s.query(ctx, "SELECT data FROM documents ORDER BY seq")
}

// ListByProfile returns the documents owned by a profile.
func (s *documentStore) ListByProfile(ctx context.Context, profileID string) ([]domain.Document, error) {
	return s.query(ctx, "SELECT data FROM documents WHERE profile_id = ? ORDER BY seq", profileID)
}

// DeleteByProfile removes every document owned by a profile.
func (s *documentStore) DeleteByProfile(ctx context.Context, profileID string) error {
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM documents WHERE profile_id = ?", profileID); err != nil {
		return fmt.Errorf("deleting profile documents: %w", err)
	}
	return nil
}

// ListExpiring returns documents expiring within the window, earliest first.
// Ties keep insertion order.
func (s *documentStore) ListExpiring(ctx context.Context, now time.Time, days int) ([]domain.Document, error) {
	today := domain.StartOfDay(now)
	return s.query(ctx, `
		SELECT data FROM documents
		WHERE expiry_day <> '' AND expiry_day BETWEEN ? AND ?
		ORDER BY expiry_at, seq
	`, today.Format(domain.DateLayout), today.AddDate(0, 0, days).Format(domain.DateLayout))
}

// FindByTitle returns the profile's document with the same title key.
func (s *documentStore) FindByTitle(ctx context.Context, profileID, title, excludeID string) (*domain.Document, error) {
	docs, err := s.query(ctx, `
		SELECT data FROM documents
		WHERE profile_id = ? AND title_key = ? AND id <> ?
		ORDER BY seq LIMIT 1
	`, profileID, domain.TitleKey(title), excludeID)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	return &docs[0], nil
}

// DeleteAll removes every document.
func (s *documentStore) DeleteAll(ctx context.Context) error {
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM documents"); err != nil {
		return fmt.Errorf("deleting documents: %w", err)
	}
	return nil
}

func (s *documentStore) query(ctx context.Context, q string, args ...any) ([]domain.Document, error) {
	rows, err := s.store.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	defer rows.Close()

	docs := []domain.Document{}
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}
		doc, err := decodeDocument(data)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating documents: %w", err)
	}
	return docs, nil
}

func decodeDocument(data string) (*domain.Document, error) {
	var doc domain.Document
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return nil, fmt.Errorf("unmarshalling document: %w", err)
	}
	if doc.CustomFields == nil {
		doc.CustomFields = []domain.CustomField{}
	}
	return &doc, nil
}
