package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/filesafe/internal/core/domain"
	"github.com/custodia-labs/filesafe/internal/core/ports/driven"
	"github.com/custodia-labs/filesafe/internal/core/ports/driving"
	"github.com/custodia-labs/filesafe/internal/logger"
)

// Ensure VaultService implements the interface.
var _ driving.VaultService = (*VaultService)(nil)

// In-process secret check throttling, matching the persisted one.
const (
	attemptBurst    = domain.FreeAttempts
	attemptInterval = domain.AttemptCooldown
)

// VaultService holds the PIN lock state of the vault.
type VaultService struct {
	vaultStore   driven.VaultStore
	hasher       driven.SecretHasher
	profileStore driven.ProfileStore
	docStore     driven.DocumentStore
	configStore  driven.ConfigStore
	now          func() time.Time

	mu           sync.Mutex
	attempts     *rate.Limiter
	unlocked     bool
	lastActivity time.Time
	autoLock     time.Duration
}

// NewVaultService creates a new vault service. The vault starts locked.
func NewVaultService(
	vaultStore driven.VaultStore,
	hasher driven.SecretHasher,
	profileStore driven.ProfileStore,
	docStore driven.DocumentStore,
	configStore driven.ConfigStore,
) *VaultService {
	return &VaultService{
		vaultStore:   vaultStore,
		hasher:       hasher,
		profileStore: profileStore,
		docStore:     docStore,
		configStore:  configStore,
		now:          time.Now,
		attempts:     newAttemptLimiter(),
		autoLock:     domain.DefaultAutoLockSeconds * time.Second,
	}
}

func newAttemptLimiter() *rate.Limiter {
	return rate.NewLimiter(rate.Every(attemptInterval), attemptBurst)
}

// SetClock replaces the time source. Used by tests.
func (s *VaultService) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// allowAttempt takes one attempt token, or fails with ErrTooManyAttempts.
func (s *VaultService) allowAttempt() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.attempts.AllowN(s.now(), 1) {
		logger.Warn("Vault secret check throttled")
		return domain.ErrTooManyAttempts
	}
	return nil
}

// checkSecret runs one throttled secret check. Both the in-process limiter
// and the persisted failure count must allow it. A failure is saved before
// wrong is returned; on success the count is cleared but not saved.
func (s *VaultService) checkSecret(ctx context.Context, settings *domain.VaultSettings, ok func() bool, wrong error) error {
	if err := s.allowAttempt(); err != nil {
		return err
	}
	if s.now().Before(settings.RetryAt()) {
		logger.Warn("Vault secret check throttled after %d failures", settings.FailedAttempts)
		return domain.ErrTooManyAttempts
	}
	if ok() {
		settings.ClearFailures()
		return nil
	}
	settings.RecordFailure(s.now())
	if err := s.vaultStore.Save(ctx, settings); err != nil {
		return fmt.Errorf("record failed attempt: %w", err)
	}
	return wrong
}

// markUnlocked records a successful secret check.
func (s *VaultService) markUnlocked(settings *domain.VaultSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts = newAttemptLimiter()
	s.unlocked = true
	s.lastActivity = s.now()
	s.autoLock = time.Duration(settings.AutoLockSeconds) * time.Second
}

func (s *VaultService) initializedSettings(ctx context.Context) (*domain.VaultSettings, error) {
	settings, err := s.vaultStore.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load vault settings: %w", err)
	}
	if !settings.Initialized() {
		return nil, domain.ErrVaultNotInitialized
	}
	return settings, nil
}

// Initialize sets the first PIN and returns the recovery key.
func (s *VaultService) Initialize(ctx context.Context, pin string) (string, error) {
	if err := domain.ValidatePIN(pin); err != nil {
		return "", err
	}
	settings, err := s.vaultStore.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("load vault settings: %w", err)
	}
	if settings.Initialized() {
		return "", domain.ErrVaultAlreadyInitialized
	}

	recoveryKey, err := domain.GenerateRecoveryKey()
	if err != nil {
		return "", fmt.Errorf("generate recovery key: %w", err)
	}
	if err := s.setPIN(settings, pin); err != nil {
		return "", err
	}
	settings.RecoveryVerifier, settings.RecoverySalt, err = s.hasher.Hash(domain.NormalizeRecoveryKey(recoveryKey))
	if err != nil {
		return "", fmt.Errorf("hash recovery key: %w", err)
	}
	if settings.AutoLockSeconds == 0 {
		settings.AutoLockSeconds = domain.DefaultAutoLockSeconds
	}
	if err := s.vaultStore.Save(ctx, settings); err != nil {
		return "", fmt.Errorf("save vault settings: %w", err)
	}

	s.markUnlocked(settings)
	logger.Info("Vault initialized")
	return recoveryKey, nil
}

func (s *VaultService) setPIN(settings *domain.VaultSettings, pin string) error {
	verifier, salt, err := s.hasher.Hash(pin)
	if err != nil {
		return fmt.Errorf("hash PIN: %w", err)
	}
	settings.PINVerifier = verifier
	settings.PINSalt = salt
	return nil
}

// IsInitialized reports whether a PIN has been set.
func (s *VaultService) IsInitialized(ctx context.Context) (bool, error) {
	settings, err := s.vaultStore.Get(ctx)
	if err != nil {
		return false, fmt.Errorf("load vault settings: %w", err)
	}
	return settings.Initialized(), nil
}

// Unlock checks the PIN.
func (s *VaultService) Unlock(ctx context.Context, pin string) error {
	settings, err := s.initializedSettings(ctx)
	if err != nil {
		return err
	}
	hadFailures := settings.FailedAttempts > 0
	err = s.checkSecret(ctx, settings, func() bool {
		return s.hasher.Verify(pin, settings.PINVerifier, settings.PINSalt)
	}, domain.ErrInvalidPIN)
	if err != nil {
		return err
	}
	if hadFailures {
		if err := s.vaultStore.Save(ctx, settings); err != nil {
			return fmt.Errorf("save vault settings: %w", err)
		}
	}
	s.markUnlocked(settings)
	logger.Debug("Vault unlocked")
	return nil
}

// Lock locks the vault.
func (s *VaultService) Lock() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unlocked = false
}

// Unlocked reports whether the vault is unlocked. An elapsed auto-lock
// delay locks the vault as a side effect. A zero delay never locks.
func (s *VaultService) Unlocked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.unlocked && s.autoLock > 0 && s.now().Sub(s.lastActivity) >= s.autoLock {
		logger.Debug("Vault auto-locked after %s idle", s.autoLock)
		s.unlocked = false
	}
	return s.unlocked
}

// Touch postpones auto-lock.
func (s *VaultService) Touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.unlocked {
		s.lastActivity = s.now()
	}
}

// ResetPIN replaces a forgotten PIN using the recovery key.
func (s *VaultService) ResetPIN(ctx context.Context, recoveryKey, newPIN string) error {
	if err := domain.ValidatePIN(newPIN); err != nil {
		return err
	}
	settings, err := s.initializedSettings(ctx)
	if err != nil {
		return err
	}
	if !domain.ValidRecoveryKeyFormat(domain.FormatRecoveryKeyInput(recoveryKey)) {
		return domain.ErrInvalidRecoveryKey
	}
	normalized := domain.NormalizeRecoveryKey(recoveryKey)
	err = s.checkSecret(ctx, settings, func() bool {
		return s.hasher.Verify(normalized, settings.RecoveryVerifier, settings.RecoverySalt)
	}, domain.ErrInvalidRecoveryKey)
	if err != nil {
		return err
	}
	if err := s.setPIN(settings, newPIN); err != nil {
		return err
	}
	if err := s.vaultStore.Save(ctx, settings); err != nil {
		return fmt.Errorf("save vault settings: %w", err)
	}
	s.markUnlocked(settings)
	logger.Info("PIN reset with recovery key")
	return nil
}

// ChangePIN replaces the PIN after checking the current one.
func (s *VaultService) ChangePIN(ctx context.Context, oldPIN, newPIN string) error {
	if err := domain.ValidatePIN(newPIN); err != nil {
		return err
	}
	settings, err := s.initializedSettings(ctx)
	if err != nil {
		return err
	}
	err = s.checkSecret(ctx, settings, func() bool {
		return s.hasher.Verify(oldPIN, settings.PINVerifier, settings.PINSalt)
	}, domain.ErrInvalidPIN)
	if err != nil {
		return err
	}
	if err := s.setPIN(settings, newPIN); err != nil {
		return err
	}
	if err := s.vaultStore.Save(ctx, settings); err != nil {
		return fmt.Errorf("save vault settings: %w", err)
	}
	s.markUnlocked(settings)
	return nil
}

// AutoLock returns the auto-lock delay in seconds.
func (s *VaultService) AutoLock(ctx context.Context) (int, error) {
	settings, err := s.vaultStore.Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("load vault settings: %w", err)
	}
	if !settings.Initialized() && settings.AutoLockSeconds == 0 {
		return domain.DefaultAutoLockSeconds, nil
	}
	return settings.AutoLockSeconds, nil
}

// SetAutoLock changes the auto-lock delay. Zero disables auto-lock.
func (s *VaultService) SetAutoLock(ctx context.Context, seconds int) error {
	if seconds < 0 {
		return fmt.Errorf("%w: auto-lock seconds must not be negative", domain.ErrInvalidInput)
	}
	settings, err := s.vaultStore.Get(ctx)
	if err != nil {
		return fmt.Errorf("load vault settings: %w", err)
	}
	settings.AutoLockSeconds = seconds
	if err := s.vaultStore.Save(ctx, settings); err != nil {
		return fmt.Errorf("save vault settings: %w", err)
	}

	s.mu.Lock()
	s.autoLock = time.Duration(seconds) * time.Second
	s.mu.Unlock()
	return nil
}

// FactoryReset deletes every profile, document and setting and locks the vault.
func (s *VaultService) FactoryReset(ctx context.Context) error {
	logger.Section("Factory reset")
	if err := s.docStore.DeleteAll(ctx); err != nil {
		return fmt.Errorf("delete documents: %w", err)
	}
	if err := s.profileStore.DeleteAll(ctx); err != nil {
		return fmt.Errorf("delete profiles: %w", err)
	}
	if err := s.vaultStore.Clear(ctx); err != nil {
		return fmt.Errorf("clear vault settings: %w", err)
	}
	if err := s.configStore.Reset(); err != nil {
		return fmt.Errorf("reset config: %w", err)
	}

	s.mu.Lock()
	s.unlocked = false
	s.attempts = newAttemptLimiter()
	s.autoLock = domain.DefaultAutoLockSeconds * time.Second
	s.mu.Unlock()
	logger.Info("Vault reset to factory state")
	return nil
}
