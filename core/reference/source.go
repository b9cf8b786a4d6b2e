package reference

import (
	"context"
	"errors"
	"fmt"

	"product-alternatives/core/storage"
	"product-alternatives/core/table"

	"gorm.io/gorm"
)

// ErrReferenceUnavailable wraps every failure to obtain the reference inventory.
var ErrReferenceUnavailable = errors.New("reference inventory unavailable")

// Source fetches one sheet of the reference inventory.
type Source interface {
	// Name identifies the source in logs and errors.
	Name() string
	// Fetch returns the sheet with its header row.
	Fetch(ctx context.Context, sheet string) (*table.Table, error)
}

// NewSource builds the source selected by cfg.Kind.
// store and db are only required by the storage and database kinds.
func NewSource(cfg Config, store storage.Client, bucket string, db *gorm.DB) (Source, error) {
	switch cfg.Kind {
	case KindHTTP:
		if cfg.URL == "" {
			return nil, fmt.Errorf("reference url is required for the %s source", KindHTTP)
		}
		return NewHTTPSource(cfg.URL, cfg.Timeout()), nil
	case KindStorage:
		if store == nil {
			return nil, fmt.Errorf("storage client is required for the %s source", KindStorage)
		}
		return NewStorageSource(store, bucket, cfg.Object, cfg.VersionID), nil
	case KindDatabase:
		if db == nil {
			return nil, fmt.Errorf("database connection is required for the %s source", KindDatabase)
		}
		return NewDatabaseSource(db), nil
	default:
		return nil, fmt.Errorf("unknown reference kind: %s", cfg.Kind)
	}
}
