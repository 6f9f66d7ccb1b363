package db

import "errors"

// DefaultSQLitePath is used when no SQLite file is configured.
const DefaultSQLitePath = ".linsearch.db"

// DefaultFilePath is used when no JSON history file is configured.
const DefaultFilePath = ".linsearch/history.json"

// ErrUnsupportedStore is returned by NewStore for an unknown store type.
var ErrUnsupportedStore = errors.New("unsupported store type")

// StoreConfig holds configuration for the history backend
type StoreConfig struct {
	Type             string // "file", "sqlite" or "postgres"
	ConnectionString string // File path for file and SQLite, DSN for Postgres
}
