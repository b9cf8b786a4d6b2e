package cmd

import (
	"fmt"

	"product-alternatives/core/config"
	"product-alternatives/core/database"
	"product-alternatives/core/reference"
	"product-alternatives/core/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// openReference builds the reference fetcher for the configured source kind.
// Only the backend the kind needs is connected.
func openReference(cfg *config.Config, l *zap.Logger) (*reference.Fetcher, storage.Client, error) {
	var store storage.Client
	var db *gorm.DB

	switch cfg.Reference.Kind {
	case reference.KindStorage:
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to storage: %w", err)
		}
		store = client
	case reference.KindDatabase:
		conn, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		db = conn
	}

	src, err := reference.NewSource(cfg.Reference, store, cfg.Storage.Bucket, db)
	if err != nil {
		return nil, nil, err
	}
	return reference.NewFetcher(src, cfg.Reference.Timeout(), l), store, nil
}
