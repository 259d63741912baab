package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicateTitle indicates the owning profile already has a document
	// with the same title (compared case-insensitively, ignoring surrounding space).
	ErrDuplicateTitle = errors.New("document title already exists for this profile")

	// ErrMissingRequiredField indicates a document lacks a field its type requires.
	ErrMissingRequiredField = errors.New("missing required field")

	// Vault Errors.

	// ErrVaultNotInitialized indicates no PIN has been set up yet.
	ErrVaultNotInitialized = errors.New("vault not initialized")

	// ErrVaultAlreadyInitialized indicates a PIN already exists.
	ErrVaultAlreadyInitialized = errors.New("vault already initialized")

	// ErrVaultLocked indicates an operation needs an unlocked vault.
	ErrVaultLocked = errors.New("vault locked")

	// ErrInvalidPIN indicates the PIN is malformed or does not match.
	ErrInvalidPIN = errors.New("invalid PIN")

	// ErrInvalidRecoveryKey indicates the recovery key is malformed or does not match.
	ErrInvalidRecoveryKey = errors.New("invalid recovery key")

	// ErrTooManyAttempts indicates secret checks are throttled after repeated failures.
	ErrTooManyAttempts = errors.New("too many attempts, try again later")
)
