package driving

import "context"

// VaultService guards the vault behind a PIN.
type VaultService interface {
	// Initialize sets the first PIN and returns a freshly generated
	// recovery key. The key is shown once and never stored.
	Initialize(ctx context.Context, pin string) (recoveryKey string, err error)

	// IsInitialized reports whether a PIN has been set.
	IsInitialized(ctx context.Context) (bool, error)

	// Unlock checks the PIN and unlocks the vault.
	Unlock(ctx context.Context, pin string) error

	// Lock locks the vault.
	Lock()

	// Unlocked reports whether the vault is unlocked and the auto-lock
	// delay has not elapsed since the last activity.
	Unlocked() bool

	// Touch records user activity, postponing auto-lock.
	Touch()

	// ResetPIN replaces the PIN after checking the recovery key.
	ResetPIN(ctx context.Context, recoveryKey, newPIN string) error

	// ChangePIN replaces the PIN after checking the current one.
	ChangePIN(ctx context.Context, oldPIN, newPIN string) error

	// AutoLock returns the auto-lock delay in seconds.
	AutoLock(ctx context.Context) (int, error)

	// SetAutoLock changes the auto-lock delay in seconds.
	SetAutoLock(ctx context.Context, seconds int) error

	// FactoryReset deletes every profile, document and setting.
	FactoryReset(ctx context.Context) error
}
