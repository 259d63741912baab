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

// vaultStore implements driven.VaultStore on the single vault_settings row.
type vaultStore struct {
	store *Store
}

var _ driven.VaultStore = (*vaultStore)(nil)

// Get returns the stored settings, or empty settings before first Save.
func (s *vaultStore) Get(ctx context.Context) (*domain.VaultSettings, error) {
	var (
		v          domain.VaultSettings
		lastFailed string
	)
	err := s.store.db.QueryRowContext(ctx, `
		SELECT pin_verifier, pin_salt, recovery_verifier, recovery_salt, auto_lock_seconds, biometrics_enabled,
			failed_attempts, last_failed_at
		FROM vault_settings WHERE id = 1
	`).Scan(&v.PINVerifier, &v.PINSalt, &v.RecoveryVerifier, &v.RecoverySalt, &v.AutoLockSeconds, &v.BiometricsEnabled,
		&v.FailedAttempts, &lastFailed)
	if errors.Is(err, sql.ErrNoRows) {
		return &domain.VaultSettings{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting vault settings: %w", err)
	}
	if lastFailed != "" {
		if v.LastFailedAt, err = time.Parse(time.RFC3339Nano, lastFailed); err != nil {
			return nil, fmt.Errorf("parsing last failed attempt: %w", err)
		}
	}
	return &v, nil
}

// Save replaces the stored settings.
func (s *vaultStore) Save(ctx context.Context, v *domain.VaultSettings) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO vault_settings (id, pin_verifier, pin_salt, recovery_verifier, recovery_salt, auto_lock_seconds, biometrics_enabled,
			failed_attempts, last_failed_at)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			pin_verifier = excluded.pin_verifier,
			pin_salt = excluded.pin_salt,
			recovery_verifier = excluded.recovery_verifier,
			recovery_salt = excluded.recovery_salt,
			auto_lock_seconds = excluded.auto_lock_seconds,
			biometrics_enabled = excluded.biometrics_enabled,
			failed_attempts = excluded.failed_attempts,
			last_failed_at = excluded.last_failed_at
	`, v.PINVerifier, v.PINSalt, v.RecoveryVerifier, v.RecoverySalt, v.AutoLockSeconds, v.BiometricsEnabled,
		v.FailedAttempts, formatFailedAt(v.LastFailedAt))
	if err != nil {
		return fmt.Errorf("saving vault settings: %w", err)
	}
	return nil
}

func formatFailedAt(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

// Clear removes the stored settings.
func (s *vaultStore) Clear(ctx context.Context) error {
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM vault_settings"); err != nil {
		return fmt.Errorf("clearing vault settings: %w", err)
	}
	return nil
}
