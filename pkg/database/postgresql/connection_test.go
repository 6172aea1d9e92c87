package postgresql

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	for _, e := range entries {
		data, err := fs.ReadFile(migrationsFS, "migrations/"+e.Name())
		require.NoError(t, err)
		assert.Contains(t, string(data), "-- +goose Up", e.Name())
		assert.Contains(t, string(data), "-- +goose Down", e.Name())
	}
}

func TestInitSchemaDefinesTables(t *testing.T) {
	data, err := fs.ReadFile(migrationsFS, "migrations/00001_init_schema.sql")
	require.NoError(t, err)

	for _, table := range []string{
		"users", "maintenance_teams", "team_members", "equipment",
		"maintenance_requests", "request_comments", "request_status_logs",
	} {
		assert.True(t, strings.Contains(string(data), "CREATE TABLE IF NOT EXISTS "+table+" "), table)
	}
}

func TestConnectDB_InvalidDSN(t *testing.T) {
	_, err := ConnectDB(context.Background(), "://not a dsn", zap.NewNop())
	assert.Error(t, err)
}
