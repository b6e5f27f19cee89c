package testutil

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"restaurant-orders-api/config"
	"restaurant-orders-api/store"

	"github.com/stretchr/testify/require"
)

// NewConfig returns a config pointing at a fresh database file in t's temp dir.
func NewConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Port:           "0",
		GinMode:        "test",
		DBSource:       filepath.Join(t.TempDir(), "test.db"),
		DBMaxOpenConns: 1,
		DBLogLevel:     "silent",
		JWTSecret:      []byte("test-secret"),
		JWTTTL:         time.Hour,
		CORSOrigins:    []string{"*"},
	}
}

// NewStore opens a store with the schema applied and closes it when t ends.
func NewStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(NewConfig(t))
	require.NoError(t, err)
	require.NoError(t, s.InitSchema(context.Background()))
	t.Cleanup(func() { _ = s.Close() })
	return s
}
