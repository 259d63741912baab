package domain

import "time"

// DefaultAutoLockSeconds is the idle time before the vault locks again.
const DefaultAutoLockSeconds = 300

// PINLength is the number of digits in a vault PIN.
const PINLength = 6

// Secret checks allow FreeAttempts failures, then one try per AttemptCooldown.
const (
	FreeAttempts    = 5
	AttemptCooldown = 30 * time.Second
)

// VaultSettings is the persisted lock configuration.
// The PIN and recovery key are never stored; only their verifiers are.
type VaultSettings struct {
	PINVerifier      []byte
	PINSalt          []byte
	RecoveryVerifier []byte
	RecoverySalt     []byte

	AutoLockSeconds   int
	BiometricsEnabled bool

	// FailedAttempts counts wrong PINs and recovery keys since the last
	// success. It is persisted so separate processes share the throttle.
	FailedAttempts int
	LastFailedAt   time.Time
}

// RetryAt returns when the next secret check is allowed. The zero time
// means immediately.
func (v *VaultSettings) RetryAt() time.Time {
	if v == nil || v.FailedAttempts < FreeAttempts || v.LastFailedAt.IsZero() {
		return time.Time{}
	}
	return v.LastFailedAt.Add(AttemptCooldown)
}

// RecordFailure counts a wrong secret at t.
func (v *VaultSettings) RecordFailure(t time.Time) {
	v.FailedAttempts++
	v.LastFailedAt = t.UTC()
}

// ClearFailures forgets past wrong secrets.
func (v *VaultSettings) ClearFailures() {
	v.FailedAttempts = 0
	v.LastFailedAt = time.Time{}
}

// Initialized reports whether a PIN has been set.
func (v *VaultSettings) Initialized() bool {
	return v != nil && len(v.PINVerifier) > 0
}

// ValidatePIN checks that a PIN is exactly PINLength ASCII digits.
func ValidatePIN(pin string) error {
	if len(pin) != PINLength {
		return ErrInvalidPIN
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return ErrInvalidPIN
		}
	}
	return nil
}
