// Package cache implements the client-resident display cache: a single
// time-boxed slot holding the store's approved-and-featured view, so repeat
// page loads inside the TTL never touch the network.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/kudos/internal/client/localdb"
	"github.com/dmitrijs2005/kudos/internal/testimonial"
)

// DefaultTTL is how long a cached view stays fresh.
const DefaultTTL = time.Hour

// Entry is the persisted cache slot.
type Entry struct {
	Data      []testimonial.Record `json:"data"`
	Timestamp time.Time            `json:"timestamp"`
}

// Cache serves the visible testimonial set, fetching the published store
// only when the single cached entry is absent or expired.
type Cache struct {
	slots    *localdb.Slots
	storeURL string
	ttl      time.Duration
	client   *http.Client
	now      func() time.Time
}

func New(slots *localdb.Slots, storeURL string, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		slots:    slots,
		storeURL: storeURL,
		ttl:      ttl,
		client:   &http.Client{Timeout: 15 * time.Second},
		now:      time.Now,
	}
}

// WithClock replaces the freshness clock; tests use it to step past the TTL.
func (c *Cache) WithClock(now func() time.Time) *Cache {
	c.now = now
	return c
}

// Visible returns the approved-and-featured records, newest first. A fresh
// cached entry is returned without network access; otherwise the store is
// fetched, filtered, sorted and cached. Fetch or parse failures surface as
// an error so the caller can keep its fallback content instead of showing
// an empty or partial view.
func (c *Cache) Visible(ctx context.Context) ([]testimonial.Record, error) {
	if data, ok := c.cached(ctx); ok {
		return data, nil
	}

	visible, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}

	c.put(ctx, visible)
	return visible, nil
}

// cached returns the stored view when the entry exists, parses and is still
// inside the TTL. An expired or unreadable entry is deleted so the next
// call goes to the network.
func (c *Cache) cached(ctx context.Context) ([]testimonial.Record, bool) {
	raw, err := c.slots.Get(ctx, localdb.CacheKey)
	if err != nil {
		return nil, false
	}

	var entry Entry
	if err := json.Unmarshal(raw, &entry); err != nil {
		_ = c.slots.Delete(ctx, localdb.CacheKey)
		return nil, false
	}

	if c.now().Sub(entry.Timestamp) > c.ttl {
		_ = c.slots.Delete(ctx, localdb.CacheKey)
		return nil, false
	}

	return entry.Data, true
}

func (c *Cache) fetch(ctx context.Context) ([]testimonial.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.storeURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build store request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch store: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch store: %s", resp.Status)
	}

	var records []testimonial.Record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("parse store: %w", err)
	}

	visible := testimonial.FilterVisible(records)
	testimonial.SortNewestFirst(visible)
	return visible, nil
}

// put stores a fresh entry, overwriting any prior one. A failed write only
// costs an extra fetch next time, so the error is dropped.
func (c *Cache) put(ctx context.Context, data []testimonial.Record) {
	entry := Entry{Data: data, Timestamp: c.now()}
	raw, err := json.Marshal(entry)
	if err != nil {
		return
	}
	_ = c.slots.Put(ctx, localdb.CacheKey, raw)
}
