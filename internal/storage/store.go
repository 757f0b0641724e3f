// Package storage holds the durable key-value stores behind the form slots.
package storage

import (
	"context"
	"fmt"

	"github.com/coursemind/landing-forms/config"
)

// Store is a string key-value store with overwrite semantics
type Store interface {
	// Get returns the value at key; ok is false when nothing is stored
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set stores value at key, replacing any previous value
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Open builds the store selected by cfg
func Open(ctx context.Context, cfg config.StorageConfig) (Store, error) {
	switch cfg.Driver {
	case config.StorageDriverSQLite:
		return NewSQLiteStore(ctx, cfg.Path)
	case config.StorageDriverMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
}
