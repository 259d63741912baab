package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/filesafe/internal/core/domain"
	"github.com/custodia-labs/filesafe/internal/core/ports/driven"
)

// profileStore implements driven.ProfileStore.
type profileStore struct {
	store *Store
}

var _ driven.ProfileStore = (*profileStore)(nil)

// Save creates or updates a profile. Updates keep the creation position.
func (s *profileStore) Save(ctx context.Context, p *domain.Profile) error {
	createdAt := p.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO profiles (id, name, relationship, avatar, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			relationship = excluded.relationship,
			avatar = excluded.avatar
	`, p.ID, p.Name, string(p.Relationship), p.Avatar, createdAt)
	if err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	return nil
}

// Get retrieves a profile by ID.
func (s *profileStore) Get(ctx context.Context, id string) (*domain.Profile, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, name, relationship, avatar, created_at FROM profiles WHERE id = ?
	`, id)
	p, err := scanProfile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting profile: %w", err)
	}
	return p, nil
}

// Delete removes a profile. Its documents go with it.
func (s *profileStore) Delete(ctx context.Context, id string) error {
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM profiles WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting profile: %w", err)
	}
	return nil
}

// List returns all profiles in creation order.
func (s *profileStore) List(ctx context.Context) ([]domain.Profile, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, name, relationship, avatar, created_at FROM profiles ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("querying profiles: %w", err)
	}
	defer rows.Close()

	var profiles []domain.Profile //nolint:prealloc // size unknown from query
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning profile: %w", err)
		}
		profiles = append(profiles, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating profiles: %w", err)
	}
	return profiles, nil
}

// DeleteAll removes every profile and, by cascade, every document.
func (s *profileStore) DeleteAll(ctx context.Context) error {
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM profiles"); err != nil {
		return fmt.Errorf("deleting profiles: %w", err)
	}
	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (*domain.Profile, error) {
	var (
		p            domain.Profile
		relationship string
	)
	if err := row.Scan(&p.ID, &p.Name, &relationship, &p.Avatar, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.Relationship = domain.Relationship(relationship)
	return &p, nil
}
