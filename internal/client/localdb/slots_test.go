package localdb

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:slots?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS slots (
  key TEXT PRIMARY KEY,
  value BLOB NOT NULL,
  updated_at TEXT NOT NULL
);
DELETE FROM slots;
`)
	require.NoError(t, err)
	return db
}

func TestSlots_GetMissing(t *testing.T) {
	slots := NewSlots(setupDB(t))

	_, err := slots.Get(context.Background(), DraftKey)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSlots_PutGetRoundTrip(t *testing.T) {
	slots := NewSlots(setupDB(t))
	ctx := context.Background()

	require.NoError(t, slots.Put(ctx, DraftKey, []byte(`{"mode":"freeform"}`)))

	got, err := slots.Get(ctx, DraftKey)
	require.NoError(t, err)
	require.JSONEq(t, `{"mode":"freeform"}`, string(got))
}

func TestSlots_PutOverwrites(t *testing.T) {
	slots := NewSlots(setupDB(t))
	ctx := context.Background()

	require.NoError(t, slots.Put(ctx, CacheKey, []byte(`"old"`)))
	require.NoError(t, slots.Put(ctx, CacheKey, []byte(`"new"`)))

	got, err := slots.Get(ctx, CacheKey)
	require.NoError(t, err)
	require.Equal(t, `"new"`, string(got))
}

func TestSlots_KeysAreIndependent(t *testing.T) {
	slots := NewSlots(setupDB(t))
	ctx := context.Background()

	require.NoError(t, slots.Put(ctx, DraftKey, []byte(`"draft"`)))
	require.NoError(t, slots.Put(ctx, CacheKey, []byte(`"cache"`)))
	require.NoError(t, slots.Delete(ctx, DraftKey))

	_, err := slots.Get(ctx, DraftKey)
	require.ErrorIs(t, err, ErrNotFound)

	got, err := slots.Get(ctx, CacheKey)
	require.NoError(t, err)
	require.Equal(t, `"cache"`, string(got))
}

func TestSlots_DeleteMissingIsNoop(t *testing.T) {
	slots := NewSlots(setupDB(t))
	require.NoError(t, slots.Delete(context.Background(), DraftKey))
}

func TestInitDatabase_MigratesAndWorks(t *testing.T) {
	db, err := InitDatabase(context.Background(), t.TempDir()+"/client.db")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	slots := NewSlots(db)
	ctx := context.Background()

	require.NoError(t, slots.Put(ctx, LastSubmissionKey, []byte(`{}`)))
	got, err := slots.Get(ctx, LastSubmissionKey)
	require.NoError(t, err)
	require.Equal(t, `{}`, string(got))
}
