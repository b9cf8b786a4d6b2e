package reference

import "time"

// Config holds configuration for the reference inventory source.
type Config struct {
	// Kind selects the source: http, storage or database.
	Kind string `mapstructure:"kind" default:"http"`
	// URL is the workbook location for the http source.
	URL string `mapstructure:"url" default:""`
	// Object is the workbook object key for the storage source.
	Object string `mapstructure:"object" default:"inventario.xlsx"`
	// VersionID pins a workbook version on versioned buckets. Empty means latest.
	VersionID string `mapstructure:"version_id" default:""`
	// TimeoutSeconds bounds a single fetch.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

const (
	KindHTTP     = "http"
	KindStorage  = "storage"
	KindDatabase = "database"
)

// IsValidKind checks if the configured source kind is supported.
func (c Config) IsValidKind() bool {
	switch c.Kind {
	case KindHTTP, KindStorage, KindDatabase:
		return true
	default:
		return false
	}
}

// Timeout returns the fetch timeout, defaulting to 30 seconds.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
