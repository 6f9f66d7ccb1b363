package db

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupPostgresStore connects to POSTGRES_DSN and truncates the history tables.
func setupPostgresStore(t *testing.T) *PostgresStore {
	t.Helper()

	dsn := os.Getenv("POSTGRES_DSN")
	if dsn == "" {
		t.Skip("POSTGRES_DSN not set")
	}

	store, err := NewPostgresStore(dsn)
	require.NoError(t, err, "Failed to create store")

	_, err = store.db.Exec("TRUNCATE TABLE analysis_runs RESTART IDENTITY CASCADE")
	require.NoError(t, err)

	t.Cleanup(func() { store.Close() })
	return store
}

func TestPostgresStore_SaveAndLoad(t *testing.T) {
	store := setupPostgresStore(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.Save(sampleRun(base.Add(time.Hour), "second", 2)))
	require.NoError(t, store.Save(sampleRun(base, "first", 1)))

	runs, err := store.LoadAll()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "first", runs[0].Label)
	assert.Equal(t, sampleRun(base, "", 1).Rows, runs[0].Rows)

	latest, err := store.LoadLatest()
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "second", latest.Label)
	assert.True(t, latest.Timestamp.Equal(base.Add(time.Hour)))
}

func TestPostgresStore_BadDSN(t *testing.T) {
	_, err := NewPostgresStore("postgres://nobody@127.0.0.1:1/none?sslmode=disable&connect_timeout=1")
	assert.Error(t, err)
}
