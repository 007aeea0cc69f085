package driven

// ConfigStore provides access to application configuration. Keys use
// dot notation ("catalog.base_url"); implementations handle
// persistence and type conversion.
type ConfigStore interface {
	// Get retrieves a raw value and whether the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string value, or "" if absent or mistyped.
	GetString(key string) string

	// GetInt retrieves an integer value, or 0 if absent or mistyped.
	GetInt(key string) int

	// GetBool retrieves a boolean value, or false if absent or mistyped.
	GetBool(key string) bool

	// Set stores a value and persists it immediately.
	Set(key string, value any) error

	// Save persists the current configuration.
	Save() error

	// Load re-reads configuration from storage.
	Load() error

	// Path returns the backing file's path.
	Path() string
}
