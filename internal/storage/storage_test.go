package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groupchat-dev/groupchat/config"
)

func TestOpen_Sqlite(t *testing.T) {
	db, err := Open(&config.DatabaseConfig{
		Driver: "sqlite",
		Path:   ":memory:",
	})
	require.NoError(t, err)

	for _, table := range []string{"users", "groups", "users_groups", "messages"} {
		assert.True(t, db.Migrator().HasTable(table), "expected table %s", table)
	}
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(&config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}

func TestBuildDSN(t *testing.T) {
	dsn := BuildDSN("localhost", "5432", "chat", "secret", "chatdb")
	assert.Equal(t, "host=localhost port=5432 user=chat password=secret dbname=chatdb sslmode=disable", dsn)
}
