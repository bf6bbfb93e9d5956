package driven

// ConfigStore reads and writes persisted application settings. Keys use
// dot notation ("embedding.provider"); typed getters return the zero
// value for missing keys or type mismatches rather than erroring.
type ConfigStore interface {
	// Get returns the raw value for key and whether the key exists.
	Get(key string) (any, bool)

	// GetString returns the string value for key, or "".
	GetString(key string) string

	// GetInt returns the integer value for key, or 0.
	GetInt(key string) int

	// GetBool returns the boolean value for key, or false.
	GetBool(key string) bool

	// Set stores a value under key and persists it immediately.
	Set(key string, value any) error

	// Save writes the current settings to the backing store.
	Save() error

	// Load replaces the in-memory settings from the backing store.
	Load() error

	// Path identifies the backing store location for diagnostics.
	Path() string
}
