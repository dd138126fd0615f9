package database

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConnectSQLiteInMemory(t *testing.T) {
	db, err := ConnectSQLite("file::memory:")
	require.NoError(t, err)
	require.NotNil(t, db)
}

func TestConnectSQLiteRejectsEmptyPath(t *testing.T) {
	_, err := ConnectSQLite("")
	require.Error(t, err)
}

func TestConnectRedisRejectsBadURL(t *testing.T) {
	_, err := ConnectRedis("")
	require.Error(t, err)

	_, err = ConnectRedis("not-a-url")
	require.Error(t, err)
}
