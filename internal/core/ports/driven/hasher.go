package driven

// SecretHasher derives verifiers for the vault PIN and recovery key.
// Secrets themselves are never persisted.
type SecretHasher interface {
	// Hash derives a verifier for secret under a fresh random salt.
	Hash(secret string) (verifier, salt []byte, err error)

	// Verify reports whether secret produces verifier under salt.
	Verify(secret string, verifier, salt []byte) bool
}
