package driven

// ConfigStore persists vault settings, the PIN hashes and the current profile.
// Keys are dotted paths such as "search.expiring_days" or "profile.current".
// Typed getters return the zero value for missing keys and mismatched types.
type ConfigStore interface {
	Get(key string) (any, bool)
	GetString(key string) string
	GetInt(key string) int

	// Set stores a value and persists it.
	Set(key string, value any) error

	// Delete removes a key and persists the change. Missing keys are ignored.
	Delete(key string) error

	// Reset removes every key. Factory reset uses it to forget the PIN.
	Reset() error

	Save() error
	Load() error

	// Path returns where the configuration lives.
	Path() string
}
