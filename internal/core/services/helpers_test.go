package services

import (
	"bytes"
	"context"
	"errors"
	"time"

	"github.com/custodia-labs/filesafe/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/filesafe/internal/core/domain"
)

var testNow = time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

// plainHasher stores secrets reversed; enough to exercise the vault flows.
type plainHasher struct {
	verified int
}

func (h *plainHasher) Hash(secret string) ([]byte, []byte, error) {
	return reverse([]byte(secret)), []byte("salt"), nil
}

func (h *plainHasher) Verify(secret string, verifier, _ []byte) bool {
	h.verified++
	return bytes.Equal(reverse([]byte(secret)), verifier)
}

func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i := range b {
		out[len(b)-1-i] = b[i]
	}
	return out
}

// failingDocStore fails every list query.
type failingDocStore struct {
	*memory.DocumentStore
}

var errStoreDown = errors.New("store down")

func (failingDocStore) List(context.Context) ([]domain.Document, error) {
	return nil, errStoreDown
}

func (failingDocStore) ListExpiring(context.Context, time.Time, int) ([]domain.Document, error) {
	return nil, errStoreDown
}

type stores struct {
	profiles *memory.ProfileStore
	docs     *memory.DocumentStore
	config   *memory.ConfigStore
	vault    *memory.VaultStore
}

func newStores() stores {
	return stores{
		profiles: memory.NewProfileStore(),
		docs:     memory.NewDocumentStore(),
		config:   memory.NewConfigStore(),
		vault:    memory.NewVaultStore(),
	}
}

// seeded returns stores holding the sample family.
func seeded() stores {
	s := newStores()
	if _, err := NewSampleDataService(s.profiles, s.docs).Seed(context.Background()); err != nil {
		panic(err)
	}
	return s
}
