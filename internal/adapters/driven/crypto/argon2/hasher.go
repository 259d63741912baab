// Package argon2 derives PIN and recovery key verifiers with Argon2id.
package argon2

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/argon2"

	"github.com/custodia-labs/filesafe/internal/core/ports/driven"
)

// Ensure Hasher implements the interface.
var _ driven.SecretHasher = (*Hasher)(nil)

// Params are the Argon2id cost parameters.
type Params struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
	KeyLen  uint32
	SaltLen int
}

// DefaultParams matches the interactive profile: one pass over 64 MiB.
var DefaultParams = Params{Time: 1, Memory: 64 * 1024, Threads: 4, KeyLen: 32, SaltLen: 16}

// Hasher implements driven.SecretHasher.
type Hasher struct {
	params Params
}

// New creates a hasher with the given parameters.
func New(params Params) *Hasher {
	return &Hasher{params: params}
}

// NewDefault creates a hasher with DefaultParams.
func NewDefault() *Hasher {
	return New(DefaultParams)
}

// Hash derives a verifier for secret under a fresh random salt.
func (h *Hasher) Hash(secret string) ([]byte, []byte, error) {
	salt := make([]byte, h.params.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return nil, nil, fmt.Errorf("generate salt: %w", err)
	}
	return h.derive(secret, salt), salt, nil
}

// Verify reports whether secret produces verifier under salt.
func (h *Hasher) Verify(secret string, verifier, salt []byte) bool {
	if len(verifier) == 0 || len(salt) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare(h.derive(secret, salt), verifier) == 1
}

func (h *Hasher) derive(secret string, salt []byte) []byte {
	return argon2.IDKey([]byte(secret), salt, h.params.Time, h.params.Memory, h.params.Threads, h.params.KeyLen)
}
