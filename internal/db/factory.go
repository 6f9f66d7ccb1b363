package db

import (
	"fmt"
	"strings"

	"linsearch/internal/benchmark"
)

// NewStore creates the analysis history store selected by config.
func NewStore(config StoreConfig) (benchmark.Store, error) {
	switch strings.ToLower(config.Type) {
	case "postgres", "postgresql":
		if config.ConnectionString == "" {
			return nil, fmt.Errorf("postgres connection string is required")
		}
		return NewPostgresStore(config.ConnectionString)
	case "sqlite", "sqlite3", "":
		if config.ConnectionString == "" {
			config.ConnectionString = DefaultSQLitePath
		}
		return NewSQLiteStore(config.ConnectionString)
	case "file", "json":
		if config.ConnectionString == "" {
			config.ConnectionString = DefaultFilePath
		}
		return benchmark.NewFileStore(config.ConnectionString)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedStore, config.Type)
	}
}
