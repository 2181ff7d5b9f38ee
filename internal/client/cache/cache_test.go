package cache

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/kudos/internal/client/localdb"
)

const storeJSON = `[
  {"id":1,"quote":"old visible","author":"Ana","role":"PM","featured":true,"approved":true,"timestamp":"2024-01-01T00:00:00Z"},
  {"id":2,"quote":"hidden","author":"Bo","role":"CTO","featured":false,"approved":true,"timestamp":"2024-02-01T00:00:00Z"},
  {"id":3,"quote":"new visible","author":"Cy","role":"CEO","featured":true,"approved":true,"timestamp":"2024-03-01T00:00:00Z"},
  {"id":4,"quote":"unapproved","author":"Di","role":"VP","featured":true,"approved":false,"timestamp":"2024-04-01T00:00:00Z"}
]`

func setupSlots(t *testing.T) *localdb.Slots {
	t.Helper()
	db, err := sql.Open("sqlite", "file:cachetest?mode=memory&cache=shared")
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
	return localdb.NewSlots(db)
}

func countingServer(t *testing.T, body string, status int) (*httptest.Server, *int) {
	t.Helper()
	fetches := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches++
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &fetches
}

func TestVisible_FiltersAndSorts(t *testing.T) {
	srv, _ := countingServer(t, storeJSON, http.StatusOK)
	c := New(setupSlots(t), srv.URL, time.Hour)

	visible, err := c.Visible(context.Background())
	require.NoError(t, err)

	require.Len(t, visible, 2)
	require.Equal(t, "new visible", visible[0].Quote)
	require.Equal(t, "old visible", visible[1].Quote)
}

func TestVisible_SecondCallInsideTTLUsesCache(t *testing.T) {
	srv, fetches := countingServer(t, storeJSON, http.StatusOK)
	c := New(setupSlots(t), srv.URL, time.Hour)
	ctx := context.Background()

	first, err := c.Visible(ctx)
	require.NoError(t, err)
	second, err := c.Visible(ctx)
	require.NoError(t, err)

	require.Equal(t, 1, *fetches, "at most one fetch inside the TTL")
	require.Equal(t, first, second)
}

func TestVisible_ExpiredEntryFetchesAgain(t *testing.T) {
	srv, fetches := countingServer(t, storeJSON, http.StatusOK)

	current := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := New(setupSlots(t), srv.URL, time.Hour).WithClock(func() time.Time { return current })
	ctx := context.Background()

	_, err := c.Visible(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, *fetches)

	// still fresh just inside the window
	current = current.Add(59 * time.Minute)
	_, err = c.Visible(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, *fetches)

	// expired: exactly one more fetch
	current = current.Add(2 * time.Minute)
	_, err = c.Visible(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, *fetches)
}

func TestVisible_FetchFailureReturnsError(t *testing.T) {
	srv, _ := countingServer(t, "gone", http.StatusNotFound)
	c := New(setupSlots(t), srv.URL, time.Hour)

	_, err := c.Visible(context.Background())
	require.Error(t, err)
}

func TestVisible_ParseFailureReturnsError(t *testing.T) {
	srv, _ := countingServer(t, "<html>not json</html>", http.StatusOK)
	c := New(setupSlots(t), srv.URL, time.Hour)

	_, err := c.Visible(context.Background())
	require.Error(t, err)
}

func TestVisible_EmptyStoreCachesEmptyView(t *testing.T) {
	srv, fetches := countingServer(t, "[]", http.StatusOK)
	c := New(setupSlots(t), srv.URL, time.Hour)
	ctx := context.Background()

	visible, err := c.Visible(ctx)
	require.NoError(t, err)
	require.Empty(t, visible)

	// an empty view is still a valid cached answer
	_, err = c.Visible(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, *fetches)
}

func TestVisible_GarbageCacheEntryFallsBackToFetch(t *testing.T) {
	slots := setupSlots(t)
	require.NoError(t, slots.Put(context.Background(), localdb.CacheKey, []byte("not json")))

	srv, fetches := countingServer(t, storeJSON, http.StatusOK)
	c := New(slots, srv.URL, time.Hour)

	visible, err := c.Visible(context.Background())
	require.NoError(t, err)
	require.Len(t, visible, 2)
	require.Equal(t, 1, *fetches)
}
