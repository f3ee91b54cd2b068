package storage

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE kvstore (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func TestSQLiteRepository_GetMissingKey(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	v, err := r.Get(context.Background(), KeyAuthToken)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestSQLiteRepository_SetGetOverwrite(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, KeyTheme, []byte("dark")))
	v, err := r.Get(ctx, KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, []byte("dark"), v)

	require.NoError(t, r.Set(ctx, KeyTheme, []byte("light")))
	v, err = r.Get(ctx, KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, []byte("light"), v)
}

func TestSQLiteRepository_Delete(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, KeyAuthToken, []byte("tok")))
	require.NoError(t, r.Delete(ctx, KeyAuthToken))

	v, err := r.Get(ctx, KeyAuthToken)
	require.NoError(t, err)
	assert.Nil(t, v)

	// deleting an absent key is not an error
	require.NoError(t, r.Delete(ctx, KeyAuthToken))
}

func TestSQLiteRepository_ListAndClear(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, KeyAuthToken, []byte("tok")))
	require.NoError(t, r.Set(ctx, KeyTheme, []byte("system")))

	all, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{
		KeyAuthToken: []byte("tok"),
		KeyTheme:     []byte("system"),
	}, all)

	require.NoError(t, r.Clear(ctx))
	all, err = r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestInitDatabase_AppliesMigrations(t *testing.T) {
	db, err := InitDatabase(context.Background(), "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	r := NewSQLiteRepository(db)
	require.NoError(t, r.Set(context.Background(), KeyTheme, []byte("dark")))
}
