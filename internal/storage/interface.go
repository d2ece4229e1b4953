package storage

// Record keys owned by the habit engine. No other component reads or
// writes these directly.
const (
	KeyHabits     = "habits"
	KeyCategories = "categories"
)

// Provider is the persistence adapter contract: an opaque key-value
// service holding serialized collection records as string blobs.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Records
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error

	// Utils
	Path() string
}
