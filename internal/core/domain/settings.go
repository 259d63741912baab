package domain

const unknownDescription = "Unknown"

// StorageBackend selects where profiles and documents are persisted.
type StorageBackend string

// Available storage backends.
const (
	// StorageBackendSQLite persists to a local SQLite database file.
	StorageBackendSQLite StorageBackend = "sqlite"

	// StorageBackendMemory keeps everything in process memory.
	StorageBackendMemory StorageBackend = "memory"
)

// IsValid returns true if the storage backend is recognised.
func (b StorageBackend) IsValid() bool {
	switch b {
	case StorageBackendSQLite, StorageBackendMemory:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (b StorageBackend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b StorageBackend) Description() string {
	switch b {
	case StorageBackendSQLite:
		return "SQLite (persistent)"
	case StorageBackendMemory:
		return "Memory (lost on exit)"
	default:
		return unknownDescription
	}
}

// StorageSettings holds persistence configuration.
type StorageSettings struct {
	// Backend is the storage implementation.
	Backend StorageBackend

	// DataDir is the directory holding the database. Empty means the default.
	DataDir string
}

// SearchSettings holds search behaviour configuration.
type SearchSettings struct {
	// ExpiringDays is the horizon of the "expiring" shortcut.
	ExpiringDays int
}

// AppSettings is the complete application configuration.
type AppSettings struct {
	Storage StorageSettings
	Search  SearchSettings

	// CurrentProfileID is the active profile; empty means the first profile.
	CurrentProfileID string
}

// DefaultExpiringDays is the default horizon of the "expiring" shortcut.
const DefaultExpiringDays = 90

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Storage: StorageSettings{
			Backend: StorageBackendSQLite,
		},
		Search: SearchSettings{
			ExpiringDays: DefaultExpiringDays,
		},
	}
}
