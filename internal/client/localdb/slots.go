package localdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/kudos/internal/dbx"
)

// ErrNotFound is returned by Get when the slot has never been written or
// has been deleted.
var ErrNotFound = errors.New("not found")

// Slots reads and writes single-slot values. A Put overwrites whatever was
// there before; there is never more than one value per key.
type Slots struct {
	db dbx.DBTX
}

func NewSlots(db dbx.DBTX) *Slots {
	return &Slots{db: db}
}

// Get returns the stored value for key, or ErrNotFound.
func (s *Slots) Get(ctx context.Context, key string) ([]byte, error) {
	query := `select value from slots where key=?`
	row := s.db.QueryRowContext(ctx, query, key)

	var value []byte
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query slot %s: %w", key, err)
	}
	return value, nil
}

// Put upserts the value for key.
func (s *Slots) Put(ctx context.Context, key string, value []byte) error {
	query := `insert into slots (key, value, updated_at) values (?, ?, ?)
			on conflict(key) do update set value = excluded.value, updated_at = excluded.updated_at`
	_, err := s.db.ExecContext(ctx, query, key, value, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("upsert slot %s: %w", key, err)
	}
	return nil
}

// Delete removes the slot. Deleting an absent slot is not an error.
func (s *Slots) Delete(ctx context.Context, key string) error {
	query := `delete from slots where key=?`
	if _, err := s.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("delete slot %s: %w", key, err)
	}
	return nil
}
